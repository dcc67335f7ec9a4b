package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"finbook/internal/core"
)

const (
	summarySheet      = "Summary"
	transactionsSheet = "Transactions"
)

// ExportMonthlyReport writes the month's report workbook to
// <exportDir>/finance-report-YYYY-MM.xlsx and returns its path.
//
// The Summary sheet carries a title row, a bold Category/Total header on
// row 3 and one row per expense category with in-month spending, descending
// by total. The Transactions sheet lists every in-month transaction
// ascending by date under a bold header.
func (s *FinanceService) ExportMonthlyReport(ctx context.Context, month core.Month) (string, error) {
	totals, err := s.store.ExpenseTotalsByCategory(ctx, month)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to query report summary",
			"month", month.String(), "error", err)
		return "", fmt.Errorf("query report summary: %w", err)
	}

	details, err := s.store.MonthTransactions(ctx, month)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to query report transactions",
			"month", month.String(), "error", err)
		return "", fmt.Errorf("query report transactions: %w", err)
	}

	if err := os.MkdirAll(s.exportDir, 0755); err != nil {
		slog.ErrorContext(ctx, "Failed to create export directory",
			"dir", s.exportDir, "error", err)
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(s.exportDir, fmt.Sprintf("finance-report-%s.xlsx", month))
	if err := writeReportWorkbook(path, month, totals, details); err != nil {
		slog.ErrorContext(ctx, "Failed to write report workbook",
			"path", path, "error", err)
		return "", err
	}

	slog.InfoContext(ctx, "Exported monthly report", "path", path, "month", month.String())
	return path, nil
}

func writeReportWorkbook(path string, month core.Month, totals []core.CategoryTotal, details []core.TransactionDetail) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	f.SetCellValue(summarySheet, "A1", "Finance Report")
	f.SetCellValue(summarySheet, "B1", month.String())
	f.SetCellValue(summarySheet, "A3", "Category")
	f.SetCellValue(summarySheet, "B3", "Total")
	if err := f.SetCellStyle(summarySheet, "A3", "B3", bold); err != nil {
		return fmt.Errorf("style summary header: %w", err)
	}
	for i, ct := range totals {
		row := 4 + i
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), ct.Name)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), ct.Total.Float64())
	}
	f.SetColWidth(summarySheet, "A", "B", 18)

	if _, err := f.NewSheet(transactionsSheet); err != nil {
		return fmt.Errorf("create transactions sheet: %w", err)
	}
	headers := []string{"Date", "Account", "Category", "Amount", "Note"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(transactionsSheet, cell, h)
	}
	if err := f.SetCellStyle(transactionsSheet, "A1", "E1", bold); err != nil {
		return fmt.Errorf("style transactions header: %w", err)
	}
	for i, d := range details {
		row := 2 + i
		f.SetCellValue(transactionsSheet, fmt.Sprintf("A%d", row), d.Date.String())
		f.SetCellValue(transactionsSheet, fmt.Sprintf("B%d", row), d.Account)
		f.SetCellValue(transactionsSheet, fmt.Sprintf("C%d", row), d.Category)
		f.SetCellValue(transactionsSheet, fmt.Sprintf("D%d", row), d.Amount.Float64())
		f.SetCellValue(transactionsSheet, fmt.Sprintf("E%d", row), d.Note)
	}
	f.SetColWidth(transactionsSheet, "A", "E", 16)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
