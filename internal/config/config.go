package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Database
	DBPath string

	// Backup and export output directories
	BackupDir string
	ExportDir string

	// Settings file override; empty means <user-home>/.finance_app.properties
	SettingsPath string
}

func Load() *Config {
	return &Config{
		DBPath:       getEnv("FINANCE_DB_PATH", "./finance.db"),
		BackupDir:    getEnv("FINANCE_BACKUP_DIR", "./db_backups"),
		ExportDir:    getEnv("FINANCE_EXPORT_DIR", "./exports"),
		SettingsPath: getEnv("FINANCE_SETTINGS_FILE", ""),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	} else {
		dir := filepath.Dir(c.DBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.BackupDir == "" {
		errors = append(errors, "backup directory cannot be empty")
	}
	if c.ExportDir == "" {
		errors = append(errors, "export directory cannot be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
