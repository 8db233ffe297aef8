package booking

import (
	"context"

	"travelmate/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error
	Cancel(ctx context.Context, bookingID int64, refund bool) error
}

// AccommodationGate is the slice of the catalog the booking flow needs.
type AccommodationGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Accommodation, error)
}
