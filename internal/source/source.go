// Package source loads the taxonomy document from pluggable backends.
// Every driver returns the raw YAML bytes; parsing and validation stay in
// pkg/olog so a bad backend and a bad document fail distinctly.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"anthromorph/pkg/olog"
)

// Driver identifies a taxonomy backend implementation.
type Driver string

// Supported drivers.
const (
	DriverEmbedded Driver = "embedded"
	DriverFS       Driver = "fs"
	DriverMemory   Driver = "memory"
	DriverS3       Driver = "s3"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Source fetches one taxonomy document. Fetch returns a fresh copy per
// call; callers own the bytes.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Driver() Driver
	Description() string
}

// Embedded serves the dataset compiled into pkg/olog. It is the default
// backend and can never fail at fetch time.
type Embedded struct{}

// NewEmbedded returns the compiled-in dataset source.
func NewEmbedded() Embedded { return Embedded{} }

func (Embedded) Fetch(context.Context) ([]byte, error) { return olog.DefaultBytes(), nil }
func (Embedded) Driver() Driver                        { return DriverEmbedded }
func (Embedded) Description() string                   { return "embedded dataset" }

// Memory serves a caller-supplied document, for tests and embedding
// callers that manage their own storage.
type Memory struct {
	payload []byte
}

// NewMemory copies the payload into a memory source.
func NewMemory(payload []byte) *Memory {
	return &Memory{payload: append([]byte(nil), payload...)}
}

func (m *Memory) Fetch(context.Context) ([]byte, error) {
	if len(m.payload) == 0 {
		return nil, fmt.Errorf("memory source holds no document")
	}
	return append([]byte(nil), m.payload...), nil
}

func (m *Memory) Driver() Driver      { return DriverMemory }
func (m *Memory) Description() string { return "in-memory document" }

// FS serves a single YAML document from the local filesystem. The path is
// fixed at construction; traversal outside it is impossible by design.
type FS struct {
	path string
}

// NewFS validates and normalizes the document path.
func NewFS(path string) (*FS, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("fs source requires a document path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve taxonomy path: %w", err)
	}
	return &FS{path: abs}, nil
}

func (f *FS) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy document: %w", err)
	}
	return data, nil
}

func (f *FS) Driver() Driver      { return DriverFS }
func (f *FS) Description() string { return f.path }

// Load fetches and parses a taxonomy in one step. A failure here is fatal
// to callers that serve requests: nothing may run against an incomplete
// taxonomy.
func Load(ctx context.Context, src Source) (*olog.Taxonomy, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s source: %w", src.Driver(), err)
	}
	tax, err := olog.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s source: %w", src.Driver(), err)
	}
	return tax, nil
}
