package excel

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"cleanser/domain/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"yyyy-mm-dd", true},
		{"m/d/yy h:mm", true},
		{"dd mmm yyyy", true},
		{"hh:mm:ss AM/PM", true},
		{"[h]:mm:ss", true},
		{"[$-409]mmmm d, yyyy;@", true},
		{"General", false},
		{"0.00", false},
		{"#,##0.00 [$€-407]", false},
		{"[Red]#,##0", false},
		{`0 "days"`, false},
		{`#,##0\m`, false},
		{"0.00E+00", false},
		{"#,##0_);(#,##0)", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isDateFormatCode(tt.code), "code %q", tt.code)
	}
}

func TestIsDateStyle(t *testing.T) {
	custom := "0.0%"
	assert.True(t, isDateStyle(&excelize.Style{NumFmt: 14}))
	assert.True(t, isDateStyle(&excelize.Style{NumFmt: 22}))
	assert.False(t, isDateStyle(&excelize.Style{NumFmt: 2}))
	assert.False(t, isDateStyle(&excelize.Style{CustomNumFmt: &custom}))
	assert.False(t, isDateStyle(nil))
}

func TestParseISOCell(t *testing.T) {
	got, ok := parseISOCell("2025-01-08T09:30:00")
	require.True(t, ok)
	assert.True(t, time.Date(2025, 1, 8, 9, 30, 0, 0, time.UTC).Equal(got))

	_, ok = parseISOCell("next tuesday")
	assert.False(t, ok)
}

func TestReadData_XLSXDates(t *testing.T) {
	joined := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "dates.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow(DefaultSheet, "A1", &[]interface{}{"Name", "Joined", "Last Seen", "Score"}))
	require.NoError(t, f.SetSheetRow(DefaultSheet, "A2", &[]interface{}{"Ann", joined, 45665.5, 45665.5}))
	seenFmt := "dd/mm/yyyy hh:mm"
	seenStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &seenFmt})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(DefaultSheet, "C2", "C2", seenStyle))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := NewDataReader(path).ReadData()
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	row := ds.Rows[0]

	got, ok := row["Joined"].Time()
	require.True(t, ok, "Joined should be a datetime, got %v", row["Joined"].Type)
	assert.True(t, joined.Equal(got), "got %v", got)

	seen, ok := row["Last Seen"].Time()
	require.True(t, ok, "Last Seen should be a datetime, got %v", row["Last Seen"].Type)
	assert.True(t, time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC).Equal(seen), "got %v", seen)

	assert.Equal(t, dataset.NewNumericValue(45665.5), row["Score"], "unformatted numbers stay numeric")
}

func TestWriteXLSX_Datetimes(t *testing.T) {
	when := time.Date(2025, 1, 8, 9, 30, 0, 0, time.UTC)
	ds := dataset.New("leads.xlsx", []string{"First Name", "Joined"})
	ds.Rows = []dataset.Row{
		{"First Name": dataset.NewStringValue("Ann"), "Joined": dataset.NewDatetimeValue(when)},
	}

	path := filepath.Join(t.TempDir(), "email_leads.xlsx")
	require.NoError(t, WriteXLSX(path, ds))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	shown, err := f.GetCellValue(DefaultSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-08 09:30:00", shown)

	got, err := NewDataReader(path).ReadData()
	require.NoError(t, err)
	back, ok := got.Rows[0]["Joined"].Time()
	require.True(t, ok)
	assert.True(t, when.Equal(back), "got %v", back)
}

func TestEncodeCSV_Datetimes(t *testing.T) {
	midnight := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	morning := time.Date(2025, 1, 9, 9, 30, 0, 0, time.UTC)

	ds := dataset.New("", []string{"Joined", "Seen", "Note"})
	ds.Rows = []dataset.Row{
		{
			"Joined": dataset.NewDatetimeValue(midnight),
			"Seen":   dataset.NewDatetimeValue(midnight),
			"Note":   dataset.NewDatetimeValue(midnight),
		},
		{
			"Joined": dataset.NewMissingValue(),
			"Seen":   dataset.NewDatetimeValue(morning),
			"Note":   dataset.NewStringValue("n/a"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, ds))

	want := "\ufeffJoined,Seen,Note\n" +
		"2025-01-08,2025-01-08 00:00:00,2025-01-08 00:00:00\n" +
		",2025-01-09 09:30:00,n/a\n"
	assert.Equal(t, want, buf.String())
}
