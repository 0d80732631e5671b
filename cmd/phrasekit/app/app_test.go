package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	pkerrors "github.com/phrasekit/phrasekit/pkg/errors"
)

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// newTestApp builds an App with a populated working configuration.
func newTestApp(t *testing.T) *App {
	t.Helper()

	dir := t.TempDir()
	messagesDir := filepath.Join(dir, "extracted")
	if err := os.MkdirAll(messagesDir, 0o755); err != nil {
		t.Fatalf("creating messages dir: %v", err)
	}
	messages := []byte(`[{"id": "app.title", "defaultMessage": "My App"}]`)
	if err := os.WriteFile(filepath.Join(messagesDir, "messages.json"), messages, 0o644); err != nil {
		t.Fatalf("writing messages file: %v", err)
	}

	app, err := New("test", "test", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	app.config.MessagesDir = messagesDir
	app.config.TranslationsDir = filepath.Join(dir, "lang")
	app.config.Locales = []string{"en", "de"}
	app.config.DefaultLocale = "en"
	app.config.FileFormat = "json"
	return app
}

// TestApp_Manager_Singleton verifies that Manager() returns the same instance.
func TestApp_Manager_Singleton(t *testing.T) {
	app := newTestApp(t)

	m1, err := app.Manager()
	if err != nil {
		t.Fatalf("Manager() failed: %v", err)
	}
	m2, err := app.Manager()
	if err != nil {
		t.Fatalf("Manager() failed on second call: %v", err)
	}
	if m1 != m2 {
		t.Error("Manager() returned different instances")
	}

	results := m1.Results()
	if len(results) != 2 {
		t.Fatalf("Results() returned %d results, want 2", len(results))
	}
}

// TestApp_ResetManager verifies that ResetManager forces a rebuild.
func TestApp_ResetManager(t *testing.T) {
	app := newTestApp(t)

	m1, err := app.Manager()
	if err != nil {
		t.Fatalf("Manager() failed: %v", err)
	}
	app.ResetManager()
	m2, err := app.Manager()
	if err != nil {
		t.Fatalf("Manager() failed after reset: %v", err)
	}
	if m1 == m2 {
		t.Error("Manager() returned the cached instance after ResetManager()")
	}
}

// TestApp_Manager_MissingSource verifies the error for an unconfigured app.
func TestApp_Manager_MissingSource(t *testing.T) {
	app, err := New("test", "test", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	app.config.MessagesDir = ""
	app.config.TranslationsDir = t.TempDir()
	app.config.Locales = []string{"en"}
	app.config.FileFormat = "json"

	if _, err := app.Manager(); !errors.Is(err, pkerrors.ErrNoMessageSource) {
		t.Errorf("Manager() error = %v, want ErrNoMessageSource", err)
	}
}

// TestApp_Manager_InvalidFormat verifies rejection of unknown file formats.
func TestApp_Manager_InvalidFormat(t *testing.T) {
	app := newTestApp(t)
	app.config.FileFormat = "toml"

	if _, err := app.Manager(); err == nil {
		t.Error("Manager() accepted an unknown file format")
	}
}
