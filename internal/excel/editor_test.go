package excel

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestTableRef(t *testing.T) {
	tests := []struct {
		columns, rows int
		expected      string
	}{
		{4, 20, "A1:D21"},
		{5, 30, "A1:E31"},
		{6, 5, "A1:F6"},
		{5, 1, "A1:E2"},
		{28, 2, "A1:AB3"},
	}

	for _, tt := range tests {
		ref, err := TableRef(tt.columns, tt.rows)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, ref)
	}

	_, err := TableRef(0, 1)
	assert.Error(t, err)
}

func TestEditorWritesStyledTable(t *testing.T) {
	editor := CreateNewFile()
	defer editor.Close()

	require.NoError(t, editor.RenameSheet("Sheet1", "Data"))
	require.NoError(t, editor.AddSheet("Other"))
	require.NoError(t, editor.SetActiveSheet("Data"))
	assert.Equal(t, []string{"Data", "Other"}, editor.GetSheetNames())

	require.NoError(t, editor.SetRow("Data", 1, []any{"ID", "Amount"}))
	require.NoError(t, editor.SetRow("Data", 2, []any{1, 12.5}))
	require.NoError(t, editor.SetRow("Data", 3, []any{2, 7.25}))
	require.NoError(t, editor.ApplyFloatFormatting("Data", 1, 2, 3))
	require.NoError(t, editor.SetColumnWidths("Data", []float64{6, 12}))
	require.NoError(t, editor.AddTable("Data", "tblData", "A1:B3", "TableStyleMedium2"))
	require.NoError(t, editor.SetProperties("Fixtures", "run-1", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, editor.SaveAs(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	tables, err := f.GetTables("Data")
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "tblData", tables[0].Name)
	assert.Equal(t, "A1:B3", tables[0].Range)
	assert.Equal(t, "TableStyleMedium2", tables[0].StyleName)

	value, err := f.GetCellValue("Data", "B2")
	require.NoError(t, err)
	assert.Equal(t, "12.50", value)

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Fixtures", props.Title)
	assert.Equal(t, "run-1", props.Identifier)
}

func TestEditorRejectsDuplicateTableName(t *testing.T) {
	editor := CreateNewFile()
	defer editor.Close()

	require.NoError(t, editor.SetRow("Sheet1", 1, []any{"A", "B"}))
	require.NoError(t, editor.SetRow("Sheet1", 2, []any{"x", "y"}))
	require.NoError(t, editor.AddTable("Sheet1", "tblOne", "A1:B2", "TableStyleMedium2"))

	require.NoError(t, editor.AddSheet("Sheet2"))
	require.NoError(t, editor.SetRow("Sheet2", 1, []any{"A", "B"}))
	require.NoError(t, editor.SetRow("Sheet2", 2, []any{"x", "y"}))
	assert.Error(t, editor.AddTable("Sheet2", "tblOne", "A1:B2", "TableStyleMedium2"))
}

func TestSetActiveSheetUnknown(t *testing.T) {
	editor := CreateNewFile()
	defer editor.Close()

	assert.Error(t, editor.SetActiveSheet("Missing"))
}
