//go:build debug

package dbg

import (
	"bytes"
	"strings"
	"testing"
)

func captureSink(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Sink
	Sink = &buf
	t.Cleanup(func() { Sink = prev })
	return &buf
}

func TestEnabledIsTrueWithTag(t *testing.T) {
	if !Enabled {
		t.Fatalf("Enabled must be true with the debug build tag")
	}
}

func TestMsgfOutput(t *testing.T) {
	buf := captureSink(t)
	Msgf("count=%d", 5)
	if got := buf.String(); got != "count=5\n" {
		t.Fatalf("expected %q, got %q", "count=5\n", got)
	}
}

func TestFormLogsExpressionAndValue(t *testing.T) {
	buf := captureSink(t)
	got := Form(2 + 2)
	if got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if out := buf.String(); out != "2 + 2 = 4\n" {
		t.Fatalf("expected %q, got %q", "2 + 2 = 4\n", out)
	}
}

func TestFormEvaluatesOnce(t *testing.T) {
	buf := captureSink(t)
	calls := 0
	bump := func() int {
		calls++
		return 7
	}
	got := Form(bump())
	if got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one evaluation, got %d", calls)
	}
	if out := buf.String(); out != "bump() = 7\n" {
		t.Fatalf("expected %q, got %q", "bump() = 7\n", out)
	}
}

func TestFormEmitsSingleLine(t *testing.T) {
	buf := captureSink(t)
	Form("hello")
	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected exactly one diagnostic line, got %q", out)
	}
	if !strings.Contains(out, `"hello"`) {
		t.Fatalf("expected value in output, got %q", out)
	}
}
