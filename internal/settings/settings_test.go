package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDarkThemeDefaultsFalse(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), ".finance_app.properties"))
	if s.DarkTheme() {
		t.Error("missing settings file should mean dark theme off")
	}
}

func TestSetDarkThemeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".finance_app.properties")
	s := New(path)

	if err := s.SetDarkTheme(true); err != nil {
		t.Fatalf("set dark theme: %v", err)
	}
	if !s.DarkTheme() {
		t.Error("dark theme should read back true")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read settings file: %v", err)
	}
	if !strings.Contains(string(raw), "theme.dark=true") {
		t.Errorf("settings file missing key=value line:\n%s", raw)
	}

	if err := s.SetDarkTheme(false); err != nil {
		t.Fatalf("set dark theme off: %v", err)
	}
	if s.DarkTheme() {
		t.Error("dark theme should read back false")
	}
}

func TestSetDarkThemePreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".finance_app.properties")
	if err := os.WriteFile(path, []byte("some.future.key=42\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s := New(path)
	if err := s.SetDarkTheme(true); err != nil {
		t.Fatalf("set dark theme: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read settings file: %v", err)
	}
	if !strings.Contains(string(raw), "some.future.key=42") {
		t.Errorf("unrecognized keys must survive a write:\n%s", raw)
	}
}

func TestGarbageValueReadsFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".finance_app.properties")
	if err := os.WriteFile(path, []byte("theme.dark=maybe\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if New(path).DarkTheme() {
		t.Error("unparseable value should mean dark theme off")
	}
}
