package get_report

import (
	"time"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
	generateReport "github.com/m04kA/SMC-CapsterBooking/internal/usecase/generate_report"
)

// ReportResponse HTTP response model
type ReportResponse struct {
	StartDate       *string        `json:"start_date"`
	EndDate         *string        `json:"end_date"`
	Rows            []ReportRow    `json:"rows"`
	TotalsByPayment []PaymentTotal `json:"totals_by_payment"`
	TotalsByCapster []CapsterTotal `json:"totals_by_capster"`
	GrandTotal      int64          `json:"grand_total"`
}

// ReportRow строка отчета
type ReportRow struct {
	No            int    `json:"no"`
	CustomerName  string `json:"customer_name"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
	Hour          int    `json:"hour"`
	CapsterName   string `json:"capster"`
	PaymentMethod string `json:"payment_method"`
	ServiceName   string `json:"service"`
	Price         int64  `json:"price"`
	Status        string `json:"status"`
}

// PaymentTotal итог по способу оплаты
type PaymentTotal struct {
	Method string `json:"payment_method"`
	Count  int    `json:"transactions"`
	Total  int64  `json:"total"`
}

// CapsterTotal итог по капстеру
type CapsterTotal struct {
	Capster string `json:"capster"`
	Count   int    `json:"customers"`
}

// ToUseCaseRequest формирует запрос use case, пустые даты означают период без границы
func ToUseCaseRequest(startDate, endDate *time.Time) *generateReport.Request {
	return &generateReport.Request{
		Period: domain.ReportPeriod{StartDate: startDate, EndDate: endDate},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateReport.Response) *ReportResponse {
	rep := resp.Report

	out := &ReportResponse{
		StartDate:       formatDate(resp.Period.StartDate),
		EndDate:         formatDate(resp.Period.EndDate),
		Rows:            make([]ReportRow, len(rep.Rows)),
		TotalsByPayment: make([]PaymentTotal, len(rep.TotalsByPayment)),
		TotalsByCapster: make([]CapsterTotal, len(rep.TotalsByCapster)),
		GrandTotal:      rep.GrandTotal,
	}

	for i, row := range rep.Rows {
		out.Rows[i] = ReportRow{
			No:            row.No,
			CustomerName:  row.CustomerName,
			Phone:         row.Phone,
			Date:          row.Date,
			Hour:          row.Hour,
			CapsterName:   row.CapsterName,
			PaymentMethod: row.PaymentMethod,
			ServiceName:   row.ServiceName,
			Price:         row.Price,
			Status:        string(row.Status),
		}
	}
	for i, p := range rep.TotalsByPayment {
		out.TotalsByPayment[i] = PaymentTotal{Method: p.Method, Count: p.Count, Total: p.Total}
	}
	for i, c := range rep.TotalsByCapster {
		out.TotalsByCapster[i] = CapsterTotal{Capster: c.Capster, Count: c.Count}
	}

	return out
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}
