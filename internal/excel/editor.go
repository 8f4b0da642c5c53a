package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

type Editor struct {
	file       *excelize.File
	filepath   string
	floatStyle int
}

// CreateNewFile creates a new Excel file in memory
func CreateNewFile() *Editor {
	return &Editor{
		file:     excelize.NewFile(),
		filepath: "",
	}
}

// GetSheetNames returns all sheet names in the workbook
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// RenameSheet renames an existing sheet
func (e *Editor) RenameSheet(oldName, newName string) error {
	if oldName == newName {
		return nil
	}
	return e.file.SetSheetName(oldName, newName)
}

// AddSheet creates a new sheet
func (e *Editor) AddSheet(sheetName string) error {
	_, err := e.file.NewSheet(sheetName)
	return err
}

// SetActiveSheet makes the named sheet the one shown on open
func (e *Editor) SetActiveSheet(sheetName string) error {
	index, err := e.file.GetSheetIndex(sheetName)
	if err != nil {
		return err
	}
	if index < 0 {
		return fmt.Errorf("sheet %s not found", sheetName)
	}
	e.file.SetActiveSheet(index)
	return nil
}

// SetRow writes values left to right starting in column A of the 1-based row
func (e *Editor) SetRow(sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := e.file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d on %s: %w", row, sheet, err)
	}
	return nil
}

// AddTable marks ref as a named table with row stripes and the given style
func (e *Editor) AddTable(sheet, name, ref, style string) error {
	showHeader := true
	showRowStripes := true
	err := e.file.AddTable(sheet, &excelize.Table{
		Range:             ref,
		Name:              name,
		StyleName:         style,
		ShowHeaderRow:     &showHeader,
		ShowRowStripes:    &showRowStripes,
		ShowFirstColumn:   false,
		ShowLastColumn:    false,
		ShowColumnStripes: false,
	})
	if err != nil {
		return fmt.Errorf("failed to add table %s at %s!%s: %w", name, sheet, ref, err)
	}
	return nil
}

// ApplyFloatFormatting shows two decimal places for a column over rows
// firstRow..lastRow. col is zero-based.
func (e *Editor) ApplyFloatFormatting(sheet string, col, firstRow, lastRow int) error {
	if e.floatStyle == 0 {
		style, err := e.file.NewStyle(&excelize.Style{
			NumFmt: 2, // Built-in format for 2 decimal places (0.00)
		})
		if err != nil {
			return fmt.Errorf("failed to create float style: %w", err)
		}
		e.floatStyle = style
	}

	top, err := excelize.CoordinatesToCellName(col+1, firstRow)
	if err != nil {
		return err
	}
	bottom, err := excelize.CoordinatesToCellName(col+1, lastRow)
	if err != nil {
		return err
	}
	if err := e.file.SetCellStyle(sheet, top, bottom, e.floatStyle); err != nil {
		return fmt.Errorf("failed to apply float style: %w", err)
	}
	return nil
}

// SetColumnWidths sets one width per column starting at A
func (e *Editor) SetColumnWidths(sheet string, widths []float64) error {
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := e.file.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set width of %s!%s: %w", sheet, col, err)
		}
	}
	return nil
}

// SetProperties stamps the document core properties
func (e *Editor) SetProperties(title, identifier string, created time.Time) error {
	return e.file.SetDocProps(&excelize.DocProperties{
		Title:      title,
		Creator:    "wbfix",
		Identifier: identifier,
		Created:    created.UTC().Format(time.RFC3339),
	})
}

// SaveAs saves the Excel file with a new name
func (e *Editor) SaveAs(filepath string) error {
	e.filepath = filepath
	return e.file.SaveAs(filepath)
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}

// TableRef returns the range covering a header row plus rows data rows,
// anchored at A1.
func TableRef(columns, rows int) (string, error) {
	end, err := excelize.CoordinatesToCellName(columns, rows+1)
	if err != nil {
		return "", err
	}
	return "A1:" + end, nil
}
