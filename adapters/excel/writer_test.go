package excel

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cleanser/domain/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *dataset.Dataset {
	ds := dataset.New("leads.xlsx", []string{"Linkedin Url", "First Name", "Employees", "Active"})
	ds.Rows = []dataset.Row{
		{
			"Linkedin Url": dataset.NewStringValue("https://linkedin.com/in/ann"),
			"First Name":   dataset.NewStringValue("Ann"),
			"Employees":    dataset.NewNumericValue(1.5),
			"Active":       dataset.NewBooleanValue(true),
		},
		{
			"Linkedin Url": dataset.NewMissingValue(),
			"First Name":   dataset.NewStringValue("Bob, Jr."),
			"Employees":    dataset.NewNumericValue(3),
		},
	}
	return ds
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "email_leads.xlsx")
	ds := sampleDataset()

	require.NoError(t, WriteXLSX(path, ds))

	got, err := NewDataReader(path).ReadData()
	require.NoError(t, err)

	assert.Equal(t, ds.Headers, got.Headers)
	require.Equal(t, ds.Len(), got.Len())
	for i := range ds.Rows {
		assert.Equal(t, ds.Record(i), got.Record(i), "row %d", i)
	}
}

func TestEncodeCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, sampleDataset()))

	want := "\ufeffLinkedin Url,First Name,Employees,Active\n" +
		"https://linkedin.com/in/ann,Ann,1.5,True\n" +
		",\"Bob, Jr.\",3,\n"
	assert.Equal(t, want, buf.String())
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
}

func TestEncodeCSV_QuotesLeadingWhitespace(t *testing.T) {
	ds := dataset.New("", []string{"First Name", "Job Title"})
	ds.Rows = []dataset.Row{
		{"First Name": dataset.NewStringValue(" Ann"), "Job Title": dataset.NewStringValue("Vp of Sales")},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, ds))
	assert.Equal(t, "\ufeffFirst Name,Job Title\n\" Ann\",Vp of Sales\n", buf.String())

	back, err := DecodeCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, " Ann", back.Rows[0]["First Name"].Text())
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "LK_leads.csv")
	require.NoError(t, WriteCSV(path, sampleDataset()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	got, err := DecodeCSV(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"Linkedin Url", "First Name", "Employees", "Active"}, got.Headers)
	assert.Equal(t, "Bob, Jr.", got.Rows[1]["First Name"].Text())

	err = WriteCSV(filepath.Join(dir, "missing", "LK_leads.csv"), sampleDataset())
	assert.Error(t, err)
}
