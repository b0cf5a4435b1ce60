// Package source recovers the source text of call arguments. Given a
// caller's file and line from runtime.Caller, it parses the file and prints
// the argument expression back out of the AST. Parsed files are cached.
package source

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"strings"
	"sync"
)

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
	err  error
}

var (
	mu    sync.Mutex
	cache = map[string]*parsedFile{}
)

func load(path string) *parsedFile {
	mu.Lock()
	defer mu.Unlock()
	if p, ok := cache[path]; ok {
		return p
	}
	p := &parsedFile{fset: token.NewFileSet()}
	p.file, p.err = parser.ParseFile(p.fset, path, nil, 0)
	cache[path] = p
	return p
}

// CallArg returns the source text of the first argument of the call to fn
// found on the given line of file. It matches the function by its final
// name component, so both Form(x) and dbg.Form(x) resolve.
func CallArg(file string, line int, fn string) (string, error) {
	p := load(file)
	if p.err != nil {
		return "", fmt.Errorf("parse %s: %w", file, p.err)
	}
	var arg ast.Expr
	ast.Inspect(p.file, func(n ast.Node) bool {
		if arg != nil {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if p.fset.Position(call.Lparen).Line != line {
			return true
		}
		if calleeName(call.Fun) != fn || len(call.Args) == 0 {
			return true
		}
		arg = call.Args[0]
		return false
	})
	if arg == nil {
		return "", fmt.Errorf("no call to %s with arguments on %s:%d", fn, file, line)
	}
	var b strings.Builder
	if err := printer.Fprint(&b, p.fset, arg); err != nil {
		return "", fmt.Errorf("print expression: %w", err)
	}
	return b.String(), nil
}

// calleeName unwraps selectors, parens and generic instantiation down to the
// called function's name.
func calleeName(e ast.Expr) string {
	switch f := e.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.ParenExpr:
		return calleeName(f.X)
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	}
	return ""
}
