// Package gen renders the build-tag gate file pair for a resolved scope:
// debug_on.go compiled in when the scope's tag is set, debug_off.go with the
// no-op bodies otherwise. Output is gofmt-formatted.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/dbgscope/dbgscope/internal/manifest"
)

// Header marks files written by dbgen. Generate refuses to overwrite files
// that lack it unless forced.
const Header = "// Code generated by dbgen; DO NOT EDIT."

// File is one rendered output file
type File struct {
	Name    string
	Content []byte
}

var onTmpl = template.Must(template.New("on").Parse(Header + `

//go:build {{.Tag}}

package {{.Package}}

import (
	"fmt"
	"os"
)

// {{.Const}} indicates whether debug output is enabled
const {{.Const}} = true

// {{.Func}} prints a message only when the {{.Tag}} build tag is set
func {{.Func}}(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
`))

var offTmpl = template.Must(template.New("off").Parse(Header + `

//go:build !{{.Tag}}

package {{.Package}}

// {{.Const}} indicates whether debug output is enabled
const {{.Const}} = false

// {{.Func}} is a no-op without the {{.Tag}} build tag
func {{.Func}}(format string, args ...any) {
	// No output in release mode
}
`))

// Render produces the debug_on.go / debug_off.go pair for one scope
func Render(sc manifest.Resolved) ([]File, error) {
	on, err := render(onTmpl, sc)
	if err != nil {
		return nil, err
	}
	off, err := render(offTmpl, sc)
	if err != nil {
		return nil, err
	}
	return []File{
		{Name: "debug_on.go", Content: on},
		{Name: "debug_off.go", Content: off},
	}, nil
}

func render(t *template.Template, sc manifest.Resolved) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, sc); err != nil {
		return nil, fmt.Errorf("render %s for %s: %w", t.Name(), sc.Dir, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s for %s: %w", t.Name(), sc.Dir, err)
	}
	return src, nil
}

// IsGenerated reports whether data begins with the dbgen header
func IsGenerated(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Header))
}
