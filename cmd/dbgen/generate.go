package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dbgscope/dbgscope/internal/gen"
	"github.com/dbgscope/dbgscope/internal/manifest"
)

// GenerateCmd generates the gate file pairs for every scope
type GenerateCmd struct {
	Config string `short:"c" type:"path" help:"Path to TOML scope manifest"`
	Root   string `short:"r" default:"." type:"path" help:"Directory scope paths are relative to"`
	Flag   string `short:"f" help:"Override the manifest's global debug flag"`
	DryRun bool   `short:"n" help:"Resolve and render without writing files"`
	Force  bool   `help:"Overwrite existing files even without a generated-by header"`
}

// Run executes the generate command
func (c *GenerateCmd) Run() error {
	m, err := manifest.Load(c.Config)
	if err != nil {
		return err
	}

	// Override manifest with CLI flags
	if c.Flag != "" {
		m.Global.Flag = c.Flag
	}

	scopes, err := m.Resolve()
	if err != nil {
		return err
	}

	fmt.Printf("dbgen: generating gates for %d scope(s)\n", len(scopes))
	for _, sc := range scopes {
		files, err := gen.Render(sc)
		if err != nil {
			return err
		}
		dir := filepath.Join(c.Root, filepath.FromSlash(sc.Dir))
		for _, f := range files {
			target := filepath.Join(dir, f.Name)
			if c.DryRun {
				fmt.Printf("  %s %s\n", dimStyle.Render("would write"), scopeStyle.Render(target))
				continue
			}
			if err := writeGate(target, f.Content, c.Force); err != nil {
				return err
			}
		}
		fmt.Printf("  %s %s %s\n",
			successStyle.Render("✓"),
			scopeStyle.Render(sc.Dir),
			tagStyle.Render("["+sc.Tag+"]"))
	}
	return nil
}

// writeGate writes a gate file, refusing to clobber hand-written files
func writeGate(target string, content []byte, force bool) error {
	if existing, err := os.ReadFile(target); err == nil {
		if !gen.IsGenerated(existing) && !force {
			return fmt.Errorf("%s exists and was not generated by dbgen (use --force to overwrite)", target)
		}
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(target, content, 0644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}
