package importer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestImportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"name", "color", "shape"},
		{"Slab A", "red", "000-100-010-110"},
		{"Slab B", "blue", "000-100-010-110"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result := ImportExcel(path)
	require.True(t, result.Ok(), "errors: %v", result.Errors)
	require.Len(t, result.Pieces, 2)
	assert.Equal(t, "Slab B", result.Pieces[1].Name)
	assert.Equal(t, 4, result.Pieces[1].Size())
}

func TestImportExcelMissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.False(t, result.Ok())
	require.NotEmpty(t, result.Errors)
}
