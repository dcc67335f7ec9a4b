package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"finbook/internal/core"
)

func TestExportMonthlyReport(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	checking := lookupAccount(t, svc, "Checking")
	groceries := lookupCategory(t, svc, "Groceries")
	transport := lookupCategory(t, svc, "Transport")
	month := core.Month{Year: 2026, Month: time.August}

	posts := []struct {
		categoryID int64
		cents      int64
		day        int
		note       string
	}{
		{groceries.ID, 3000, 3, "weekly shop"},
		{transport.ID, 12000, 10, ""},
	}
	for _, p := range posts {
		err := svc.AddTransaction(ctx, core.NewTransaction{
			AccountID:  checking.ID,
			CategoryID: p.categoryID,
			Amount:     core.MoneyFromCents(p.cents),
			Date:       core.NewDate(2026, time.August, p.day),
			Note:       p.note,
		})
		if err != nil {
			t.Fatalf("add transaction: %v", err)
		}
	}

	path, err := svc.ExportMonthlyReport(ctx, month)
	if err != nil {
		t.Fatalf("export monthly report: %v", err)
	}

	if filepath.Base(path) != "finance-report-2026-08.xlsx" {
		t.Errorf("export file name = %q, want finance-report-2026-08.xlsx", filepath.Base(path))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat export: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("export file is empty")
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Summary" || sheets[1] != "Transactions" {
		t.Fatalf("sheets = %v, want [Summary Transactions]", sheets)
	}

	t.Run("summary sheet", func(t *testing.T) {
		title, _ := f.GetCellValue("Summary", "A1")
		if title != "Finance Report" {
			t.Errorf("A1 = %q, want Finance Report", title)
		}
		monthCell, _ := f.GetCellValue("Summary", "B1")
		if monthCell != "2026-08" {
			t.Errorf("B1 = %q, want 2026-08", monthCell)
		}
		header, _ := f.GetCellValue("Summary", "A3")
		if header != "Category" {
			t.Errorf("A3 = %q, want Category", header)
		}
		// Descending by total: Transport 120 before Groceries 30
		first, _ := f.GetCellValue("Summary", "A4")
		if first != "Transport" {
			t.Errorf("A4 = %q, want Transport", first)
		}
		second, _ := f.GetCellValue("Summary", "A5")
		if second != "Groceries" {
			t.Errorf("A5 = %q, want Groceries", second)
		}
	})

	t.Run("transactions sheet", func(t *testing.T) {
		rows, err := f.GetRows("Transactions")
		if err != nil {
			t.Fatalf("read transactions sheet: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("rows = %d, want header + 2 transactions", len(rows))
		}
		wantHeader := []string{"Date", "Account", "Category", "Amount", "Note"}
		for i, h := range wantHeader {
			if rows[0][i] != h {
				t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
			}
		}
		if rows[1][0] != "2026-08-03" {
			t.Errorf("first transaction date = %q, want 2026-08-03", rows[1][0])
		}
		if rows[1][1] != "Checking" || rows[1][2] != "Groceries" {
			t.Errorf("first transaction names = %q/%q, want Checking/Groceries",
				rows[1][1], rows[1][2])
		}
		if rows[1][4] != "weekly shop" {
			t.Errorf("first transaction note = %q, want %q", rows[1][4], "weekly shop")
		}
		if rows[2][0] != "2026-08-10" {
			t.Errorf("second transaction date = %q, want 2026-08-10", rows[2][0])
		}
	})
}

func TestExportEmptyMonth(t *testing.T) {
	svc := newTestService(t)

	path, err := svc.ExportMonthlyReport(context.Background(), core.Month{Year: 2020, Month: time.January})
	if err != nil {
		t.Fatalf("export empty month: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue("Summary", "A4"); v != "" {
		t.Errorf("empty month should have no summary rows, got %q", v)
	}
}
