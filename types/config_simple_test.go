package types

import (
	"testing"
)

func TestAppConfig_Structure(t *testing.T) {
	config := AppConfig{
		Verbose: true,
		Storage: StorageConfig{
			Path:   "/home/user/.todo",
			Atomic: true,
		},
		Display: DisplayConfig{
			Locale: "en",
			Output: "json",
		},
	}

	if config.Storage.Path != "/home/user/.todo" {
		t.Errorf("Storage.Path mismatch: got %q, want %q", config.Storage.Path, "/home/user/.todo")
	}
	if !config.Storage.Atomic {
		t.Error("Storage.Atomic should be true")
	}
	if config.Display.Output != "json" {
		t.Errorf("Display.Output mismatch: got %q, want %q", config.Display.Output, "json")
	}
}

func TestStorageConfig_ZeroValue(t *testing.T) {
	var config StorageConfig

	if config.Path != "" {
		t.Errorf("Path should default to empty, got %q", config.Path)
	}
	if config.Atomic {
		t.Error("Atomic should default to false")
	}
}
