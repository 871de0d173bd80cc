package testkit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLeadGenerator_Deterministic(t *testing.T) {
	cfg := DefaultLeadConfig()
	cfg.Count = 50

	a := NewLeadGenerator(cfg).GenerateRows()
	b := NewLeadGenerator(cfg).GenerateRows()
	assert.Equal(t, a, b)

	cfg.Seed++
	c := NewLeadGenerator(cfg).GenerateRows()
	assert.NotEqual(t, a, c)
}

func TestLeadGenerator_Shape(t *testing.T) {
	cfg := DefaultLeadConfig()
	cfg.Count = 100
	cfg.MissingEmailRate = 1

	rows := NewLeadGenerator(cfg).GenerateRows()
	require.Len(t, rows, 101)
	assert.Equal(t, "Job Title", rows[0][2])

	seen := make(map[interface{}]bool)
	for _, row := range rows[1:] {
		require.Len(t, row, len(LeadHeaders))
		assert.Nil(t, row[4], "all emails blank at rate 1")
		assert.False(t, seen[row[5]], "duplicate profile URL %v", row[5])
		seen[row[5]] = true
	}
}

func TestWriteWorkbook_NamedSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.xlsx")
	WriteWorkbook(t, path, "Leads", [][]interface{}{{"First Name"}, {"Ann"}})

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Leads"}, f.GetSheetList())
	v, err := f.GetCellValue("Leads", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ann", v)
}
