package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

const maxSheetNameLength = 31

// XLSXWriter пишет отчет в книгу Excel с одним листом
type XLSXWriter struct{}

// ContentType MIME-тип xlsx
func (XLSXWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension расширение файла
func (XLSXWriter) Extension() string {
	return "xlsx"
}

// Write записывает отчет, title становится именем листа
func (XLSXWriter) Write(w io.Writer, title string, rep domain.Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := sheetName(title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	for i, row := range Layout(rep) {
		rowNum := i + 1
		if row == nil {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		values := []interface{}(row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", rowNum, err)
		}

		if isHeader(row) {
			end, err := excelize.CoordinatesToCellName(len(row), rowNum)
			if err != nil {
				return err
			}
			_ = f.SetCellStyle(sheet, cell, end, bold)
		}
	}

	if err := f.SetColWidth(sheet, "A", "J", 18); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	return f.Write(w)
}

func sheetName(title string) string {
	if title == "" {
		return "Sheet1"
	}
	if len(title) > maxSheetNameLength {
		return title[:maxSheetNameLength]
	}
	return title
}

func isHeader(row Row) bool {
	if len(row) < 2 {
		return false
	}
	switch row[1] {
	case LedgerHeader[1], paymentRecapHeader[1], capsterRecapHeader[1], grandTotalLabel:
		return true
	}
	return false
}
