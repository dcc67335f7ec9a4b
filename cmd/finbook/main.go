package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finbook/internal/cli"
	"finbook/internal/services"
	"finbook/internal/settings"
)

// The GUI is an external collaborator of the finance core. This shell wires
// the core up the way the presentation layer would: open the store, seed
// defaults, surface today's recurring-expense alerts and the total balance,
// then wait for shutdown.
func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := cli.OpenStore(ctx, logger, cfg.DBPath)
	defer store.Close()

	svc := services.NewFinanceService(store, cfg.BackupDir, cfg.ExportDir)

	prefs, err := loadSettings(cfg.SettingsPath)
	if err != nil {
		logger.Warn("Could not resolve settings file", "error", err)
	} else {
		logger.Info("Settings loaded", "path", prefs.Path(), "dark_theme", prefs.DarkTheme())
	}

	alerts, err := svc.CheckRecurringDue(ctx)
	if err != nil {
		logger.Error("Recurring-due scan failed", "error", err)
	}
	for _, alert := range alerts {
		fmt.Println(alert)
	}

	total, err := svc.TotalBalance(ctx)
	if err != nil {
		logger.Error("Failed to read total balance", "error", err)
		os.Exit(1)
	}
	logger.Info("Finance core ready", "total_balance", total.String(), "db", cfg.DBPath)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Shutdown signal received", "signal", sig.String())
}

func loadSettings(override string) (*settings.Settings, error) {
	if override != "" {
		return settings.New(override), nil
	}
	return settings.Default()
}
