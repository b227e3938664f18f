package export

import (
	"fmt"
	"io"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// Format формат выгрузки
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// Writer записывает отчет в конкретный формат
type Writer interface {
	Write(w io.Writer, title string, rep domain.Report) error
	ContentType() string
	Extension() string
}

// NewWriter возвращает writer для формата, пустой формат означает xlsx
func NewWriter(format Format) (Writer, error) {
	switch format {
	case "", FormatXLSX:
		return &XLSXWriter{}, nil
	case FormatPDF:
		return &PDFWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
