package report

import (
	"sort"
	"strconv"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// Aggregate собирает отчет по завершенным бронированиям
// Вызывающий код уже отфильтровал бронирования по статусу и периоду
// Порядок групп в итогах совпадает с порядком первого появления во входном списке
func Aggregate(bookings []domain.BookingDetails) domain.Report {
	rep := domain.Report{
		Rows:            make([]domain.ReportRow, 0, len(bookings)),
		TotalsByPayment: []domain.PaymentTotal{},
		TotalsByCapster: []domain.CapsterTotal{},
	}

	paymentIdx := make(map[string]int)
	capsterIdx := make(map[string]int)

	for i, b := range bookings {
		price := valueOr(b.ServicePrice, 0)

		rep.Rows = append(rep.Rows, domain.ReportRow{
			No:            i + 1,
			CustomerName:  b.Name,
			Phone:         b.Phone,
			Date:          b.Date.Format(domain.DateFormat),
			Hour:          b.Hour,
			CapsterName:   valueOr(b.CapsterName, domain.UnresolvedName),
			PaymentMethod: valueOr(b.PaymentName, domain.UnresolvedName),
			ServiceName:   valueOr(b.ServiceName, domain.UnresolvedName),
			Price:         price,
			Status:        b.Status,
		})

		method := valueOr(b.PaymentName, domain.NoPaymentMethodLabel)
		idx, ok := paymentIdx[method]
		if !ok {
			idx = len(rep.TotalsByPayment)
			paymentIdx[method] = idx
			rep.TotalsByPayment = append(rep.TotalsByPayment, domain.PaymentTotal{Method: method})
		}
		rep.TotalsByPayment[idx].Count++
		rep.TotalsByPayment[idx].Total += price
		rep.GrandTotal += price

		capster := valueOr(b.CapsterName, domain.NoCapsterLabel)
		idx, ok = capsterIdx[capster]
		if !ok {
			idx = len(rep.TotalsByCapster)
			capsterIdx[capster] = idx
			rep.TotalsByCapster = append(rep.TotalsByCapster, domain.CapsterTotal{Capster: capster})
		}
		rep.TotalsByCapster[idx].Count++
	}

	return rep
}

// BuildQueues группирует бронирования дня по капстерам
// Внутри очереди бронирования идут по возрастанию часа, позиция начинается с 1
func BuildQueues(bookings []domain.BookingDetails) []domain.CapsterQueue {
	sorted := make([]domain.BookingDetails, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Hour < sorted[j].Hour
	})

	queues := []domain.CapsterQueue{}
	idx := make(map[string]int)

	for _, b := range sorted {
		capster := valueOr(b.CapsterName, domain.UnknownCapsterLabel)
		i, ok := idx[capster]
		if !ok {
			i = len(queues)
			idx[capster] = i
			queues = append(queues, domain.CapsterQueue{Capster: capster, Queue: []domain.QueueEntry{}})
		}
		queues[i].Queue = append(queues[i].Queue, domain.QueueEntry{
			Customer:  b.Name,
			HourLabel: HourLabel(b.Hour),
			Position:  len(queues[i].Queue) + 1,
		})
	}

	return queues
}

// Summary собирает сводку дашборда за день
func Summary(bookings []domain.BookingDetails, activeCapsters int) domain.BookingSummary {
	return domain.BookingSummary{
		CapsterActiveCount: activeCapsters,
		TotalBookingsToday: len(bookings),
		Queues:             BuildQueues(bookings),
	}
}

// HourLabel форматирует час как "H:00" (без ведущего нуля)
func HourLabel(hour int) string {
	return strconv.Itoa(hour) + ":00"
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
