package catalog

import (
	"strings"

	"github.com/phrasekit/phrasekit/pkg/errors"
)

// Format identifies the on-disk translation file format.
type Format string

const (
	// FormatJSON stores each locale as a flat JSON object. This is the
	// default format.
	FormatJSON Format = "json"
	// FormatYAML stores each locale as a flat YAML mapping.
	FormatYAML Format = "yaml"
)

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.NewValidationError("format", s, "must be json or yaml")
	}
}
