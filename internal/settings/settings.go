// Package settings stores UI preferences in a key=value file in the user's
// home directory. Only the dark-theme flag is recognized today.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	fileName     = ".finance_app.properties"
	darkThemeKey = "theme.dark"
)

// Settings reads and writes one properties file. The zero value is not
// usable; construct with New or Default.
type Settings struct {
	path string
}

// New binds a Settings store to an explicit file path.
func New(path string) *Settings {
	return &Settings{path: path}
}

// Default binds to <user-home>/.finance_app.properties.
func Default() (*Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user home: %w", err)
	}
	return New(filepath.Join(home, fileName)), nil
}

// Path returns the bound settings file path.
func (s *Settings) Path() string {
	return s.path
}

// DarkTheme reports whether the dark-theme preference is set. A missing or
// unreadable file means false.
func (s *Settings) DarkTheme() bool {
	props, err := godotenv.Read(s.path)
	if err != nil {
		return false
	}
	dark, err := strconv.ParseBool(props[darkThemeKey])
	if err != nil {
		return false
	}
	return dark
}

// SetDarkTheme persists the dark-theme preference, preserving any other
// keys already present in the file.
func (s *Settings) SetDarkTheme(dark bool) error {
	props, err := godotenv.Read(s.path)
	if err != nil {
		props = map[string]string{}
	}
	props[darkThemeKey] = strconv.FormatBool(dark)

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, "# Finance App Settings")
	for k, v := range props {
		fmt.Fprintf(f, "%s=%s\n", k, v)
	}
	return nil
}
