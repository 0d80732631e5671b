// Package ordered provides an insertion-ordered string-to-string map.
// Translation files are flat JSON objects whose key order is meaningful
// (template order for generated files, file order for prior files), so the
// standard map type cannot be used to round-trip them.
package ordered

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Map is a string-to-string mapping that remembers insertion order.
// The zero value is not usable; use NewMap.
type Map struct {
	keys   []string
	values map[string]string
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{
		values: make(map[string]string),
	}
}

// Set stores value under key. Setting an existing key overwrites its value
// but keeps its original position.
func (m *Map) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it exists.
func (m *Map) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key exists.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Range calls fn for each entry in insertion order. Iteration stops early
// if fn returns false.
func (m *Map) Range(fn func(key, value string) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	clone := NewMap()
	for _, k := range m.keys {
		clone.Set(k, m.values[k])
	}
	return clone
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, m.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object of string values, preserving the
// key order of the document. Nested values and non-string values are
// rejected. A duplicate key keeps its first position with the last value,
// matching Set semantics.
func (m *Map) UnmarshalJSON(data []byte) error {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.keys = m.keys[:0]
	for k := range m.values {
		delete(m.values, k)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		val, ok := valTok.(string)
		if !ok {
			return fmt.Errorf("value for key %q is not a string", key)
		}
		m.Set(key, val)
	}
	if _, err := dec.Token(); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// writeJSONString writes s as a JSON string literal.
func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
