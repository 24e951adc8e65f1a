// Package schema exposes the embedded JSON Schema documents describing
// tool inputs, served through the tool listing endpoint.
package schema

import (
	_ "embed"
	"encoding/json"
	"sort"
	"sync"
)

//go:embed tool_inputs.json
var toolInputs []byte

var (
	once    sync.Once
	schemas map[string]json.RawMessage
	loadErr error
)

func load() (map[string]json.RawMessage, error) {
	once.Do(func() {
		loadErr = json.Unmarshal(toolInputs, &schemas)
	})
	return schemas, loadErr
}

// ToolInput returns the input schema for one tool name.
func ToolInput(name string) (json.RawMessage, bool) {
	docs, err := load()
	if err != nil {
		return nil, false
	}
	doc, ok := docs[name]
	return doc, ok
}

// ToolNames returns every schema-bearing tool name in sorted order.
func ToolNames() ([]string, error) {
	docs, err := load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
