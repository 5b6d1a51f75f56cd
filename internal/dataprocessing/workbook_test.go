package dataprocessing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"jetaudit/internal/ledger"
)

func writeRows(t *testing.T, f *excelize.File, sheet string, rows [][]any) {
	t.Helper()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
}

func TestFindSheet(t *testing.T) {
	tests := []struct {
		name   string
		sheets []string
		prefer []string
		want   string
	}{
		{"exact match", []string{"Summary", "GL", "Notes"}, glSheetNames, "GL"},
		{"exact beats substring", []string{"GL data", "gl"}, glSheetNames, "gl"},
		{"exact ignores padding", []string{"Notes", " GL "}, glSheetNames, " GL "},
		{"substring match", []string{"Summary", "GL 2024"}, glSheetNames, "GL 2024"},
		{"preference order", []string{"Balance 2024", "TB"}, tbSheetNames, "TB"},
		{"fallback to first", []string{"Sheet1", "Sheet2"}, tbSheetNames, "Sheet1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := excelize.NewFile()
			defer f.Close()
			keepDefault := false
			for _, s := range tt.sheets {
				if s == "Sheet1" {
					keepDefault = true
					continue
				}
				_, err := f.NewSheet(s)
				require.NoError(t, err)
			}
			if !keepDefault {
				require.NoError(t, f.DeleteSheet("Sheet1"))
			}

			got, err := FindSheet(f, tt.prefer)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSheetTable_SkipsTitleBlock(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	writeRows(t, f, "Sheet1", [][]any{
		{"Company ABC LLC"},
		{"Journal entries 2024"},
		{},
		{"Данс", "Дебет", "Кредит"},
		{"1101", "100", ""},
		{"5101", "", "100"},
	})

	table, err := SheetTable(f, "Sheet1")
	require.NoError(t, err)

	assert.Equal(t, []string{"Данс", "Дебет", "Кредит"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "1101", table.Cell(0, 0))
}

func TestSheetTable_NoHeaderRow(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	writeRows(t, f, "Sheet1", [][]any{
		{"just", "some", "text"},
		{"no", "ledger", "here"},
	})

	_, err := SheetTable(f, "Sheet1")
	assert.ErrorContains(t, err, "no header row")
}

func TestLoadGL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gl.xlsx")

	f := excelize.NewFile()
	_, err := f.NewSheet("GL")
	require.NoError(t, err)
	f.DeleteSheet("Sheet1")
	writeRows(t, f, "GL", [][]any{
		{"Данс", "Дансны нэр", "Огноо", "Дебет", "Кредит", "Гүйлгээний утга"},
		{"1101", "Cash", "2024-03-05", "1,500.00", "", "Opening deposit"},
		{"5101", "Sales", "2024-03-05", "", "1,500.00", "Opening deposit"},
		{"6201", "Rent", "2024-03-09", "(700)", "", "March rent"},
	})
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	gl, err := LoadGL(path, nil)
	require.NoError(t, err)

	require.Len(t, gl.Entries, 3)
	assert.True(t, gl.Has(ledger.FieldAccount))
	assert.True(t, gl.Has(ledger.FieldDescription))
	// Transaction column is synthesized from debit and credit
	assert.Equal(t, ledger.DerivedColumn, gl.Columns[ledger.FieldTransaction])

	first := gl.Entries[0]
	assert.Equal(t, "1101", first.Account)
	assert.Equal(t, 1500.0, first.Debit.Or(0))
	assert.Equal(t, 1500.0, first.Transaction.Or(0))

	third := gl.Entries[2]
	assert.Equal(t, -700.0, third.Debit.Or(0))
}

func TestLoadGL_MissingFile(t *testing.T) {
	_, err := LoadGL(filepath.Join(t.TempDir(), "nope.xlsx"), nil)
	assert.Error(t, err)
}

func TestLoadTB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tb.xlsx")

	f := excelize.NewFile()
	_, err := f.NewSheet("Trial Balance")
	require.NoError(t, err)
	f.DeleteSheet("Sheet1")
	writeRows(t, f, "Trial Balance", [][]any{
		{"Trial balance as of year end"},
		{"Данс", "Эхний үлдэгдэл", "Эцсийн үлдэгдэл"},
		{"1101", "1,000", "2,500"},
		{"5101", "", "(1,500)"},
	})
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tb, err := LoadTB(path, nil)
	require.NoError(t, err)

	require.Len(t, tb, 2)
	assert.Equal(t, "1101", tb[0].Account)
	assert.Equal(t, 1000.0, tb[0].Opening.Or(0))
	assert.Equal(t, 2500.0, tb[0].Closing.Or(0))
	assert.Equal(t, -1500.0, tb[1].Closing.Or(0))
	assert.False(t, tb[1].Opening.Valid)
}

func TestLoadTB_EmptyPath(t *testing.T) {
	tb, err := LoadTB("", nil)
	require.NoError(t, err)
	assert.Empty(t, tb)
}
