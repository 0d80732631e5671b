// Package catalog reads and writes per-locale translation files. A locale's
// file lives at {translationsDir}/{locale}.{ext} and contains a flat mapping
// from message key to localized text; no nested structures or metadata.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/phrasekit/phrasekit/pkg/errors"
	"github.com/phrasekit/phrasekit/pkg/ordered"
)

// Path returns the translation file path for a locale.
func Path(dir, locale string, format Format) string {
	return filepath.Join(dir, locale+"."+format.Ext())
}

// Load reads a locale's translation file. A missing file is not an error:
// it returns (nil, nil), meaning the locale will be created from scratch.
// Any other read or parse failure is fatal.
func Load(dir, locale string, format Format) (*ordered.Map, error) {
	path := Path(dir, locale, format)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	m := ordered.NewMap()
	switch format {
	case FormatYAML:
		if err := unmarshalYAML(data, m); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	default:
		if err := json.Unmarshal(data, m); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	}
	return m, nil
}

// Write persists a locale's translation mapping, creating the translations
// directory on demand. The serializer defaults to the format's standard
// pretty-printer when nil.
func Write(dir, locale string, format Format, m *ordered.Map, serialize Serializer) error {
	if serialize == nil {
		serialize = SerializerFor(format)
	}
	data, err := serialize(m)
	if err != nil {
		return fmt.Errorf("serializing locale %s: %w", locale, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	path := Path(dir, locale, format)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// unmarshalYAML decodes a flat YAML mapping into m, preserving document
// order and rejecting non-string values.
func unmarshalYAML(data []byte, m *ordered.Map) error {
	var slice yaml.MapSlice
	if err := yaml.Unmarshal(data, &slice); err != nil {
		return err
	}
	for _, item := range slice {
		key, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("non-string key %v", item.Key)
		}
		switch v := item.Value.(type) {
		case string:
			m.Set(key, v)
		case nil:
			m.Set(key, "")
		default:
			return fmt.Errorf("value for key %q is not a string", key)
		}
	}
	return nil
}
