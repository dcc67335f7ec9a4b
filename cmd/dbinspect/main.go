package main

import (
	"context"
	"fmt"

	"finbook/internal/cli"
)

// Developer tool: dumps the categories and accounts tables, seeding
// defaults first when the database is empty. Not part of the product
// surface.
func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()
	store := cli.OpenStore(ctx, logger, cfg.DBPath)
	defer store.Close()

	categories, err := store.Categories(ctx)
	if err != nil {
		logger.Error("Failed to list categories", "error", err)
		return
	}
	fmt.Println("dbinspect: categories in database:")
	for _, c := range categories {
		fmt.Printf("  id=%d name=%q budget_limit=%s type=%s\n", c.ID, c.Name, c.BudgetLimit, c.Type)
	}
	fmt.Printf("dbinspect: total categories = %d\n", len(categories))

	accounts, err := store.Accounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts", "error", err)
		return
	}
	fmt.Println("dbinspect: accounts in database:")
	for _, a := range accounts {
		fmt.Printf("  id=%d name=%q type=%s balance=%s\n", a.ID, a.Name, a.Type, a.Balance)
	}
	fmt.Printf("dbinspect: total accounts = %d\n", len(accounts))
}
