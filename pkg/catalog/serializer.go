package catalog

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/phrasekit/phrasekit/pkg/ordered"
)

// Serializer renders a translation mapping to file bytes. The persistence
// step accepts any Serializer, so embedding applications can substitute
// their own deterministic rendering without touching reconciliation logic.
type Serializer func(m *ordered.Map) ([]byte, error)

// JSON renders the mapping as a pretty-printed JSON object with 2-space
// indentation and a trailing newline, keys in insertion order.
func JSON(m *ordered.Map) ([]byte, error) {
	compact, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// SortedJSON renders like JSON but with keys sorted alphabetically.
func SortedJSON(m *ordered.Map) ([]byte, error) {
	keys := m.Keys()
	sort.Strings(keys)
	sorted := ordered.NewMap()
	for _, k := range keys {
		v, _ := m.Get(k)
		sorted.Set(k, v)
	}
	return JSON(sorted)
}

// YAML renders the mapping as a flat YAML document, keys in insertion order.
func YAML(m *ordered.Map) ([]byte, error) {
	slice := make(yaml.MapSlice, 0, m.Len())
	m.Range(func(k, v string) bool {
		slice = append(slice, yaml.MapItem{Key: k, Value: v})
		return true
	})
	return yaml.MarshalWithOptions(slice, yaml.Indent(2))
}

// SerializerFor returns the default serializer for a format.
func SerializerFor(format Format) Serializer {
	if format == FormatYAML {
		return YAML
	}
	return JSON
}
