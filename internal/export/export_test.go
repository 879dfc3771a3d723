package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"sales-dashboard/internal/models"
)

func exportRecords() []models.SalesRecord {
	return []models.SalesRecord{
		{
			TransactionID:   "T001",
			Date:            time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			Quantity:        1,
			TotalAmount:     999.99,
			StoreCity:       "Austin",
			ProductName:     "Laptop",
			Brand:           "Acme",
			Category:        "Electronics",
			SalespersonName: "Alice",
		},
		{
			TransactionID:   "T002",
			Date:            time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC),
			Quantity:        2,
			TotalAmount:     59.9,
			StoreCity:       "Dallas",
			ProductName:     "Mouse",
			Brand:           "Acme",
			Category:        "Electronics",
			SalespersonName: "Bob",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, exportRecords()); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading exported CSV: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 data rows", len(rows))
	}

	if diff := cmp.Diff(DisplayColumns, rows[0]); diff != "" {
		t.Errorf("header row (-want +got):\n%s", diff)
	}

	want := []string{"2023-01-15", "Laptop", "Electronics", "Austin", "Alice", "1", "999.99"}
	if diff := cmp.Diff(want, rows[1]); diff != "" {
		t.Errorf("first data row (-want +got):\n%s", diff)
	}

	// Amounts are always two decimal places.
	if rows[2][6] != "59.90" {
		t.Errorf("amount = %q, want 59.90", rows[2][6])
	}
}

func TestWriteCSV_OnlyDisplayColumns(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, exportRecords()); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	// The export never leaks columns outside the display subset, brand and
	// customer fields included.
	if bytes.Contains(buf.Bytes(), []byte("Acme")) {
		t.Error("export should not contain the brand column")
	}
	if bytes.Contains(buf.Bytes(), []byte("T001")) {
		t.Error("export should not contain the transaction id column")
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading exported CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("empty dataset should export header only, got %d rows", len(rows))
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, exportRecords()); err != nil {
		t.Fatalf("WriteXLSX() error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("opening exported workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sales")
	if err != nil {
		t.Fatalf("reading Sales sheet: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 data rows", len(rows))
	}
	if diff := cmp.Diff(DisplayColumns, rows[0]); diff != "" {
		t.Errorf("header row (-want +got):\n%s", diff)
	}
	if rows[1][1] != "Laptop" || rows[1][3] != "Austin" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
}
