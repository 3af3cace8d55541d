// Package xlsx writes flattened order lines to an Excel workbook.
package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"ccw_query/internal/domain/order"
)

const (
	SheetName = "Orders"
	Extension = ".xlsx"
	// dateFormat renders as 14-Sep-2021, matching the text report.
	dateFormat = "dd-mmm-yyyy"
)

// ValidPath reports whether path names an .xlsx file.
func ValidPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), Extension)
}

// Workbook collects export records from one or more orders into a single
// sheet, one row per line item under a header row of order.ExportColumns.
type Workbook struct {
	file      *excelize.File
	stream    *excelize.StreamWriter
	dateStyle int
	row       int
}

func NewWorkbook() (*Workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: ptr(dateFormat)})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create date style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open sheet writer: %w", err)
	}

	header := make([]interface{}, len(order.ExportColumns))
	for i, col := range order.ExportColumns {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: col}
	}
	if err := sw.SetRow("A1", header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	return &Workbook{file: f, stream: sw, dateStyle: dateStyle, row: 1}, nil
}

// Append adds one row per record. Date columns become real dates; values that
// do not parse are left empty.
func (w *Workbook) Append(records []order.ExportRecord) error {
	for _, rec := range records {
		w.row++
		cells := make([]interface{}, len(order.ExportColumns))
		for i, col := range order.ExportColumns {
			v := rec.Value(col)
			if !order.DateColumns[col] {
				cells[i] = v
				continue
			}
			if t, ok := order.ParseDate(v); ok {
				cells[i] = excelize.Cell{StyleID: w.dateStyle, Value: t}
			} else {
				cells[i] = nil
			}
		}

		axis, err := excelize.CoordinatesToCellName(1, w.row)
		if err != nil {
			return err
		}
		if err := w.stream.SetRow(axis, cells); err != nil {
			return fmt.Errorf("write row %d: %w", w.row, err)
		}
	}
	return nil
}

// Rows is the number of data rows written so far.
func (w *Workbook) Rows() int {
	return w.row - 1
}

func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	if err := w.stream.Flush(); err != nil {
		return 0, fmt.Errorf("flush sheet: %w", err)
	}
	return w.file.WriteTo(out)
}

// SaveAs writes the workbook to path, which must end in .xlsx.
func (w *Workbook) SaveAs(path string) error {
	if !ValidPath(path) {
		return fmt.Errorf("output file %q must end with %s", path, Extension)
	}
	if err := w.stream.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	return w.file.SaveAs(path)
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

func ptr(s string) *string {
	return &s
}
