package reports

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func intp(v int) *int { return &v }

func sampleDocs() []models.Document {
	return []models.Document{
		{ID: 1, EmployeeID: 42, EmployeeName: "Ada Lovelace", DocumentType: "PASSPORT", DocumentNumber: "P1", ExpiryDate: "2026-01-01", DaysUntilExpiry: intp(-3)},
		{ID: 2, EmployeeID: 43, DocumentType: "VISA", DaysUntilExpiry: intp(12)},
		{ID: 3, EmployeeID: 44, DocumentType: "ID"},
	}
}

func TestRowsFor(t *testing.T) {
	rows := rowsFor(sampleDocs())
	require.Len(t, rows, 3)
	assert.Equal(t, Row{Employee: "Ada Lovelace", Type: "PASSPORT", Number: "P1", Expires: "2026-01-01", Days: "-3", Status: "EXPIRED"}, rows[0])
	assert.Equal(t, "#43", rows[1].Employee)
	assert.Equal(t, "Expires in 12 days", rows[1].Status)
	assert.Equal(t, "", rows[2].Days)
	assert.Equal(t, "No expiry date", rows[2].Status)
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expiry.xlsx")
	require.NoError(t, Write(path, sampleDocs()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, "Ada Lovelace", rows[1][0])
	assert.Equal(t, "EXPIRED", rows[1][6])
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expiry.PDF")
	require.NoError(t, Write(path, sampleDocs()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestWritePDF_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, WritePDF(path, nil, time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestWrite_Unsupported(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "expiry.csv"), sampleDocs())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
