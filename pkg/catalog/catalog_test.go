package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrasekit/phrasekit/pkg/ordered"
)

func sample() *ordered.Map {
	m := ordered.NewMap()
	m.Set("message_2", "Message 2")
	m.Set("message_1", "Message 1")
	m.Set("empty", "")
	return m
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("i18n", "de.json"), Path("i18n", "de", FormatJSON))
	assert.Equal(t, filepath.Join("i18n", "pt-BR.yaml"), Path("i18n", "pt-BR", FormatYAML))
}

func TestLoadMissingFileIsAbsent(t *testing.T) {
	m, err := Load(t.TempDir(), "de", FormatJSON)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestLoadMalformedJSONFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.json"), []byte(`{"a":`), 0o644))

	_, err := Load(dir, "de", FormatJSON)
	assert.Error(t, err)
}

func TestLoadNonStringValueFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.json"), []byte(`{"a":{"b":"c"}}`), 0o644))

	_, err := Load(dir, "de", FormatJSON)
	assert.Error(t, err)
}

func TestWriteAndLoadRoundTripJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "i18n")

	require.NoError(t, Write(dir, "de", FormatJSON, sample(), nil))

	loaded, err := Load(dir, "de", FormatJSON)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, []string{"message_2", "message_1", "empty"}, loaded.Keys())
	v, _ := loaded.Get("empty")
	assert.Equal(t, "", v)
}

func TestWriteJSONFormat(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, "en", FormatJSON, sample(), nil))

	data, err := os.ReadFile(filepath.Join(dir, "en.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"message_2\": \"Message 2\",\n  \"message_1\": \"Message 1\",\n  \"empty\": \"\"\n}\n", string(data))
}

func TestWriteSortedSerializer(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, "en", FormatJSON, sample(), SortedJSON))

	loaded, err := Load(dir, "en", FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"empty", "message_1", "message_2"}, loaded.Keys())
}

func TestWriteAndLoadRoundTripYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, "de", FormatYAML, sample(), nil))

	loaded, err := Load(dir, "de", FormatYAML)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, []string{"message_2", "message_1", "empty"}, loaded.Keys())
	v, ok := loaded.Get("message_1")
	require.True(t, ok)
	assert.Equal(t, "Message 1", v)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("toml")
	assert.Error(t, err)
}
