package olog

import (
	_ "embed"
	"sync"
)

// Canonical anthrobot reference dataset embedded at build time so the
// process can serve without any external storage configured.
//
//go:embed anthrobot_morphology.olog.yaml
var embeddedDataset []byte

var (
	defaultOnce sync.Once
	defaultTax  *Taxonomy
	defaultErr  error
)

// DefaultBytes returns a copy of the embedded dataset document.
func DefaultBytes() []byte {
	out := make([]byte, len(embeddedDataset))
	copy(out, embeddedDataset)
	return out
}

// Default returns the embedded reference taxonomy, parsed and validated
// once per process. The returned handle is shared; callers must treat it
// as read-only.
func Default() (*Taxonomy, error) {
	defaultOnce.Do(func() {
		defaultTax, defaultErr = Parse(embeddedDataset)
	})
	return defaultTax, defaultErr
}
