package booking_summary

import (
	"time"

	"github.com/m04kA/SMC-CapsterBooking/internal/domain"
)

// Response сводка дашборда за сегодня
type Response struct {
	Date    time.Time
	Summary domain.BookingSummary
}
