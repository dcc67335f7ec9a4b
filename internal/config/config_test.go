package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.DBPath != "./finance.db" {
		t.Errorf("DBPath = %q, want ./finance.db", cfg.DBPath)
	}
	if cfg.BackupDir != "./db_backups" {
		t.Errorf("BackupDir = %q, want ./db_backups", cfg.BackupDir)
	}
	if cfg.ExportDir != "./exports" {
		t.Errorf("ExportDir = %q, want ./exports", cfg.ExportDir)
	}
	if cfg.SettingsPath != "" {
		t.Errorf("SettingsPath = %q, want empty (home default)", cfg.SettingsPath)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FINANCE_DB_PATH", filepath.Join(dir, "data", "test.db"))
	t.Setenv("FINANCE_BACKUP_DIR", filepath.Join(dir, "backups"))
	t.Setenv("FINANCE_EXPORT_DIR", filepath.Join(dir, "out"))
	t.Setenv("FINANCE_SETTINGS_FILE", filepath.Join(dir, "settings.properties"))

	cfg := Load()
	if cfg.DBPath != filepath.Join(dir, "data", "test.db") {
		t.Errorf("DBPath not taken from environment: %q", cfg.DBPath)
	}
	if cfg.SettingsPath != filepath.Join(dir, "settings.properties") {
		t.Errorf("SettingsPath not taken from environment: %q", cfg.SettingsPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty db path",
			mutate:  func(c *Config) { c.DBPath = "" },
			wantErr: true,
		},
		{
			name:    "empty backup dir",
			mutate:  func(c *Config) { c.BackupDir = "" },
			wantErr: true,
		},
		{
			name:    "empty export dir",
			mutate:  func(c *Config) { c.ExportDir = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCreatesDBDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FINANCE_DB_PATH", filepath.Join(dir, "nested", "finance.db"))

	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() should create missing db directory: %v", err)
	}
}
