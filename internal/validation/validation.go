// Package validation holds static contract checks the repo runs over its
// own source: import layering between the engine and the hosting layer,
// and the exported-API surface of the taxonomy packages. The checks are
// exercised from tests so violations fail the build.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Error locates one contract violation.
type Error struct {
	Package string
	Message string
}

func (e Error) String() string {
	return fmt.Sprintf("%s: %s", e.Package, e.Message)
}

// ImportRule forbids packages under Scope from importing anything under
// one of the Forbidden prefixes.
type ImportRule struct {
	Scope     string
	Forbidden []string
}

func matchesPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// CheckImports loads every package matching pattern and applies the
// rules, returning one Error per forbidden import edge.
func CheckImports(pattern string, rules []ImportRule) ([]Error, error) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("packages loaded with errors")
	}

	seen := make(map[string]Error)
	for _, pkg := range pkgs {
		for _, rule := range rules {
			if !matchesPrefix(pkg.PkgPath, rule.Scope) {
				continue
			}
			for importPath := range pkg.Imports {
				for _, forbidden := range rule.Forbidden {
					if matchesPrefix(importPath, forbidden) {
						key := pkg.PkgPath + " -> " + importPath
						seen[key] = Error{
							Package: pkg.PkgPath,
							Message: fmt.Sprintf("forbidden import %s", importPath),
						}
					}
				}
			}
		}
	}

	violations := make([]Error, 0, len(seen))
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		violations = append(violations, seen[key])
	}
	return violations, nil
}
