package domain

import "time"

// Service priced catalog entry
type Service struct {
	ID          int64
	Name        string
	Price       int64 // rupiah
	Description string
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PaymentMethod payment method referenced by bookings
type PaymentMethod struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
