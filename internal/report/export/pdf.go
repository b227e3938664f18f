package export

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

var ledgerColumnWidths = []float64{10, 38, 28, 28, 20, 32, 34, 32, 24, 30}

// PDFWriter пишет отчет в PDF (альбомная A4)
type PDFWriter struct{}

// ContentType MIME-тип pdf
func (PDFWriter) ContentType() string {
	return "application/pdf"
}

// Extension расширение файла
func (PDFWriter) Extension() string {
	return "pdf"
}

// Write рисует те же блоки, что и xlsx: таблицу бронирований и две сводки
func (PDFWriter) Write(w io.Writer, title string, rep domain.Report) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	for i, row := range Layout(rep) {
		if row == nil {
			pdf.Ln(4)
			continue
		}

		style := ""
		if i == 0 || isHeader(row) {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 8)

		for col, val := range row {
			width := 30.0
			if col < len(ledgerColumnWidths) {
				width = ledgerColumnWidths[col]
			}
			pdf.CellFormat(width, 6, formatCell(val), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

func formatCell(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
