// Package reports exports a document list with its expiry classification
// as a spreadsheet or a PDF.
package reports

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported report format, use .xlsx or .pdf")

const sheetName = "Documents"

var header = []string{"Employee", "Type", "Number", "Issued", "Expires", "Days", "Status"}

// Row is one report line.
type Row struct {
	Employee string
	Type     string
	Number   string
	Issued   string
	Expires  string
	Days     string
	Status   string
}

func rowsFor(docs []models.Document) []Row {
	rows := make([]Row, 0, len(docs))
	for _, d := range docs {
		days := ""
		if d.DaysUntilExpiry != nil {
			days = strconv.Itoa(*d.DaysUntilExpiry)
		}
		employee := d.EmployeeName
		if employee == "" {
			employee = "#" + strconv.FormatInt(d.EmployeeID, 10)
		}
		rows = append(rows, Row{
			Employee: employee,
			Type:     d.DocumentType,
			Number:   d.DocumentNumber,
			Issued:   d.IssueDate,
			Expires:  d.ExpiryDate,
			Days:     days,
			Status:   d.Expiry().Text,
		})
	}
	return rows
}

func (r Row) cells() []string {
	return []string{r.Employee, r.Type, r.Number, r.Issued, r.Expires, r.Days, r.Status}
}

// Write picks the format from path's extension.
func Write(path string, docs []models.Document) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return WriteXLSX(path, docs)
	case ".pdf":
		return WritePDF(path, docs, time.Now())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func WriteXLSX(path string, docs []models.Document) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetRowStyle(sheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, r := range rowsFor(docs) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cells := r.cells()
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "G", 18); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

var pdfWidths = []float64{48, 34, 34, 26, 26, 16, 46}

func WritePDF(path string, docs []models.Document, generated time.Time) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Document expiry report")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s, %d document(s)", generated.Format("2006-01-02 15:04"), len(docs)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range header {
		pdf.CellFormat(pdfWidths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rowsFor(docs) {
		for i, c := range r.cells() {
			pdf.CellFormat(pdfWidths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
