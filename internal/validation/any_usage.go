package validation

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
)

// ExportedAnyUsages parses the Go files in dir (tests excluded) and
// reports every exported declaration whose surface mentions the `any`
// type. The engine's exported API trades in concrete records; `any`
// leaking out of it usually means a shortcut around the closed taxonomy.
// Allowed names exempt declarations that are deliberately generic, such
// as key/value logging interfaces.
func ExportedAnyUsages(dir string, allowed ...string) ([]Error, error) {
	allowedNames := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allowedNames[name] = struct{}{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read package dir: %w", err)
	}

	fset := token.NewFileSet()
	var violations []Error
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		for _, decl := range file.Decls {
			declName, node := exportedDecl(decl)
			if declName == "" {
				continue
			}
			if _, ok := allowedNames[declName]; ok {
				continue
			}
			if mentionsAny(node) {
				violations = append(violations, Error{
					Package: name,
					Message: fmt.Sprintf("exported %s uses any in its surface", declName),
				})
			}
		}
	}
	return violations, nil
}

// exportedDecl returns the exported name of a declaration and the node
// whose surface to inspect, or "" for unexported and import/const decls.
func exportedDecl(decl ast.Decl) (string, ast.Node) {
	switch node := decl.(type) {
	case *ast.FuncDecl:
		if !node.Name.IsExported() {
			return "", nil
		}
		return node.Name.Name, node.Type
	case *ast.GenDecl:
		for _, spec := range node.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || !typeSpec.Name.IsExported() {
				continue
			}
			return typeSpec.Name.Name, typeSpec.Type
		}
	}
	return "", nil
}

func mentionsAny(node ast.Node) bool {
	if node == nil {
		return false
	}
	found := false
	ast.Inspect(node, func(n ast.Node) bool {
		if ident, ok := n.(*ast.Ident); ok && ident.Name == "any" {
			found = true
			return false
		}
		return !found
	})
	return found
}
