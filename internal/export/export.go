// Package export writes the filtered sales table in downloadable formats.
// Only the fixed display-column subset is exported; numeric formatting is
// plain "%.2f" for amounts.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"sales-dashboard/internal/models"
)

// DisplayColumns is the fixed column subset of the downloadable table.
var DisplayColumns = []string{
	"date",
	"product_name",
	"category",
	"store_city",
	"salesperson_name",
	"quantity_sold",
	"total_amount",
}

const sheetName = "Sales"

// WriteCSV writes the records as UTF-8 comma-separated values with a header
// row.
func WriteCSV(w io.Writer, records []models.SalesRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(DisplayColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Date.Format("2006-01-02"),
			r.ProductName,
			r.Category,
			r.StoreCity,
			r.SalespersonName,
			strconv.Itoa(r.Quantity),
			strconv.FormatFloat(r.TotalAmount, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the same table as a single-sheet spreadsheet.
func WriteXLSX(w io.Writer, records []models.SalesRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for col, header := range DisplayColumns {
		if err := setCell(f, col+1, 1, header); err != nil {
			return err
		}
	}

	for i, r := range records {
		row := i + 2 // 1-based, after the header
		values := []any{
			r.Date.Format("2006-01-02"),
			r.ProductName,
			r.Category,
			r.StoreCity,
			r.SalespersonName,
			r.Quantity,
			r.TotalAmount,
		}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}
