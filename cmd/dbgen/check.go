package main

import (
	"fmt"

	"github.com/dbgscope/dbgscope/internal/manifest"
)

// CheckCmd resolves the manifest without writing anything
type CheckCmd struct {
	Config string `short:"c" required:"" type:"path" help:"Path to TOML scope manifest"`
}

// Run executes the check command
func (c *CheckCmd) Run() error {
	m, err := manifest.Load(c.Config)
	if err != nil {
		return err
	}

	scopes, err := m.Resolve()
	if err != nil {
		return err
	}

	fmt.Printf("dbgen: manifest ok, %d scope(s)\n", len(scopes))
	for _, sc := range scopes {
		fmt.Printf("  %s %s\n",
			scopeStyle.Render(sc.Dir),
			tagStyle.Render("["+sc.Tag+"]"))
	}
	return nil
}
