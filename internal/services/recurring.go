package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RecurringDueOn returns one alert per recurring expense whose due_day
// equals the day-of-month of date. The scan is read-only: templates are
// informational and never auto-post. A due day of 29, 30 or 31 simply never
// matches in months that lack that day.
func (s *FinanceService) RecurringDueOn(ctx context.Context, date time.Time) ([]string, error) {
	day := date.Day()
	due, err := s.store.RecurringExpensesDueOn(ctx, day)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to scan recurring expenses", "day", day, "error", err)
		return nil, fmt.Errorf("scan recurring expenses: %w", err)
	}

	alerts := make([]string, 0, len(due))
	for _, re := range due {
		alerts = append(alerts, fmt.Sprintf(
			"Recurring Expense Due Today (Day %d): %s - Amount: %s",
			re.DueDay, re.Name, re.Amount))
	}
	return alerts, nil
}

// CheckRecurringDue scans for recurring expenses due today.
func (s *FinanceService) CheckRecurringDue(ctx context.Context) ([]string, error) {
	return s.RecurringDueOn(ctx, time.Now())
}
