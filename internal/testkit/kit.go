// Package testkit holds fixtures shared by package tests: workbook writers and
// a seeded generator of synthetic lead lists.
package testkit

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet a new excelize workbook starts with
const DefaultSheet = "Sheet1"

// WriteWorkbook saves rows into sheet of a new workbook at path. An empty
// sheet name writes to DefaultSheet; any other name replaces it, so the
// written sheet is the only one in the file.
func WriteWorkbook(t testing.TB, path, sheet string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = DefaultSheet
	}
	if sheet != DefaultSheet {
		idx, err := f.NewSheet(sheet)
		require.NoError(t, err)
		f.SetActiveSheet(idx)
		require.NoError(t, f.DeleteSheet(DefaultSheet))
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}

	require.NoError(t, f.SaveAs(path))
}
