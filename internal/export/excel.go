package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"record-tracker/internal/models"
)

// SheetName is the single worksheet the export writes.
const SheetName = "All Records"

// Filename is the fixed attachment name for the admin export.
const Filename = "all-records.xlsx"

// ContentType is the MIME type for xlsx downloads.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var columns = []struct {
	header string
	width  float64
}{
	{"Record ID", 12},
	{"User Name", 20},
	{"User Email", 28},
	{"Input", 12},
	{"Output", 12},
	{"Remaining", 12},
	{"Note", 30},
	{"Created At (UTC)", 24},
}

// BuildWorkbook renders the joined record rows into an xlsx workbook, one row
// per record, preserving the order they were given in (newest first). The
// whole table is materialized in memory; fine for this dataset class.
func BuildWorkbook(rows []models.RecordWithOwner) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet failed: %w", err)
	}

	for i, col := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(SheetName, name, name, col.width); err != nil {
			return nil, err
		}
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, col.header); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.RecordID,
			row.UserName,
			row.UserEmail,
			row.InputValue,
			row.OutputValue,
			row.RemainingValue,
			row.Note,
			row.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
