package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/tanjid017/membership-registration-backend/internal/submission"
)

var columns = []string{"Submission ID", "Submitted At", "Name", "Name (English)", "NID", "Mobile", "Email"}

// Exporter renders admin submission listings as downloadable reports.
type Exporter struct {
	now func() time.Time
}

func NewExporter() *Exporter {
	return &Exporter{now: time.Now}
}

// Export renders rows in the requested format: csv, excel or pdf.
func (e *Exporter) Export(format string, rows []submission.Summary) ([]byte, string, string, error) {
	stamp := e.now().Format("20060102_150405")
	switch format {
	case "csv":
		data, err := renderCSV(rows)
		return data, "submissions_" + stamp + ".csv", "text/csv", err
	case "excel":
		data, err := renderExcel(rows)
		return data, "submissions_" + stamp + ".xlsx",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	case "pdf":
		data, err := renderPDF(rows)
		return data, "submissions_" + stamp + ".pdf", "application/pdf", err
	default:
		return nil, "", "", fmt.Errorf("unsupported export format: %s", format)
	}
}

func renderCSV(rows []submission.Summary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write(record(r)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderExcel(rows []submission.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Submissions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col)
	}
	for rowIdx, r := range rows {
		for colIdx, v := range record(r) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderPDF(rows []submission.Summary) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Membership Submissions", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	widths := []float64{52, 34, 45, 45, 32, 30, 39}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for i, col := range columns {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range rows {
		for i, v := range record(r) {
			pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func record(r submission.Summary) []string {
	return []string{r.SubmissionID, r.SubmittedAt, r.Name, r.NameEnglish, r.NID, r.Mobile, r.Email}
}
