package olog

import (
	"testing"

	"anthromorph/testutil"
)

// The taxonomy model is importable on its own; it must never reach back
// into the engine or the hosting layer.
func TestPackageStandsAlone(t *testing.T) {
	testutil.AssertNoDirectImports(t, ".", testutil.EngineImportForbidden,
		"pkg/olog is the bottom of the dependency graph")
}
