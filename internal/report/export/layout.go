package export

import (
	"errors"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// ErrUnsupportedFormat неизвестный формат выгрузки
var ErrUnsupportedFormat = errors.New("export: unsupported format")

// LedgerHeader заголовок таблицы бронирований
var LedgerHeader = []string{
	"No", "Nama Customer", "Telepon", "Tanggal Booking", "Jam Booking",
	"Capster", "Metode Pembayaran", "Layanan", "Harga", "Status",
}

var (
	paymentRecapHeader = []interface{}{"", "Metode Pembayaran", "Jumlah Transaksi", "Total Pendapatan (Rp)"}
	capsterRecapHeader = []interface{}{"", "Capster", "Total Customer"}
)

const grandTotalLabel = "Total Pendapatan"

// Row строка выгрузки, nil означает пустую строку-разделитель
type Row []interface{}

// Layout раскладывает отчет в строки таблицы:
// заголовок и строки бронирований, две пустые строки, итоги по способам оплаты,
// пустая строка и общий итог, пустая строка и количество клиентов по капстерам
func Layout(rep domain.Report) []Row {
	rows := make([]Row, 0, len(rep.Rows)+len(rep.TotalsByPayment)+len(rep.TotalsByCapster)+10)

	header := make(Row, len(LedgerHeader))
	for i, h := range LedgerHeader {
		header[i] = h
	}
	rows = append(rows, header)

	for _, r := range rep.Rows {
		rows = append(rows, Row{
			r.No, r.CustomerName, r.Phone, r.Date, r.Hour,
			r.CapsterName, r.PaymentMethod, r.ServiceName, r.Price, string(r.Status),
		})
	}

	rows = append(rows, nil, nil, Row(paymentRecapHeader))
	for _, p := range rep.TotalsByPayment {
		rows = append(rows, Row{"", p.Method, p.Count, p.Total})
	}

	rows = append(rows, nil, Row{"", grandTotalLabel, rep.GrandTotal})

	rows = append(rows, nil, Row(capsterRecapHeader))
	for _, c := range rep.TotalsByCapster {
		rows = append(rows, Row{"", c.Capster, c.Count})
	}

	return rows
}
