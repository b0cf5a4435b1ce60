// Package manifest loads the dbgen scope manifest. A manifest declares the
// shared global debug flag, optional named flags, and the scopes (packages)
// that get a generated gate pair. A scope's flag selector must name a
// declared flag; an unknown name is a load error, never a silent default to
// off.
package manifest

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest holds the dbgen configuration
type Manifest struct {
	Global Global            `toml:"global"`
	Flags  map[string]string `toml:"flags"`
	Scopes []Scope           `toml:"scope"`
}

// Global names the shared debug flag consulted by scopes without a selector
type Global struct {
	Flag string `toml:"flag"`
}

// Scope is one package that receives a generated gate pair
type Scope struct {
	Package string `toml:"package"`
	Flag    string `toml:"flag"`
	Func    string `toml:"func"`
	Const   string `toml:"const"`
}

// Resolved is a scope with its flag selector resolved to a concrete build tag
type Resolved struct {
	Dir     string
	Package string
	Tag     string
	Func    string
	Const   string
}

// Default returns a manifest with sensible defaults
func Default() *Manifest {
	return &Manifest{
		Global: Global{Flag: "debug"},
	}
}

// Load loads a manifest from a TOML file
// If path is empty, returns the default manifest
func Load(p string) (*Manifest, error) {
	m := Default()

	if p == "" {
		return m, nil
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", p, err)
	}
	if m.Global.Flag == "" {
		m.Global.Flag = "debug"
	}

	return m, nil
}

// Resolve checks every scope's flag selector and returns the concrete
// generation plan. A selector naming an undeclared flag fails here.
func (m *Manifest) Resolve() ([]Resolved, error) {
	if !validTag(m.Global.Flag) {
		return nil, fmt.Errorf("global flag %q is not a valid build tag", m.Global.Flag)
	}
	for name, tag := range m.Flags {
		if !validTag(tag) {
			return nil, fmt.Errorf("flag %q: %q is not a valid build tag", name, tag)
		}
	}

	out := make([]Resolved, 0, len(m.Scopes))
	seen := make(map[string]string, len(m.Scopes))
	for _, s := range m.Scopes {
		if s.Package == "" {
			return nil, fmt.Errorf("scope with empty package path")
		}
		tag := m.Global.Flag
		if s.Flag != "" {
			t, ok := m.Flags[s.Flag]
			if !ok {
				return nil, fmt.Errorf("scope %q: flag selector %q names an undeclared debug flag", s.Package, s.Flag)
			}
			tag = t
		}
		if prev, dup := seen[s.Package]; dup {
			return nil, fmt.Errorf("scope %q declared twice (first with flag %q)", s.Package, prev)
		}
		seen[s.Package] = s.Flag

		fn := s.Func
		if fn == "" {
			fn = "debugf"
		}
		cn := s.Const
		if cn == "" {
			cn = "debugEnabled"
		}
		if !validIdent(fn) {
			return nil, fmt.Errorf("scope %q: func %q is not a valid identifier", s.Package, fn)
		}
		if !validIdent(cn) {
			return nil, fmt.Errorf("scope %q: const %q is not a valid identifier", s.Package, cn)
		}

		out = append(out, Resolved{
			Dir:     s.Package,
			Package: pkgName(s.Package),
			Tag:     tag,
			Func:    fn,
			Const:   cn,
		})
	}
	return out, nil
}

// pkgName derives the package identifier from the scope directory
func pkgName(dir string) string {
	base := path.Base(strings.TrimSuffix(dir, "/"))
	var b strings.Builder
	for i, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func validTag(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
