package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"travelmate/internal/domain"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings       BookingRepository
	accommodations AccommodationGate
}

func NewService(bookings BookingRepository, accommodations AccommodationGate) *Service {
	return &Service{bookings: bookings, accommodations: accommodations}
}

// Create prices the stay from the accommodation's nightly rate at this moment.
// The total is stored on the booking and never recalculated afterwards.
func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return nil, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDates
	}

	accommodation, err := s.accommodations.GetByID(ctx, req.AccommodationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !accommodation.IsAvailable {
		return nil, ErrUnavailable
	}
	if req.Guests > accommodation.MaxGuests {
		return nil, ErrTooManyGuests
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	total := accommodation.PricePerNight * float64(nights) * float64(req.Guests)
	total = math.Round(total*100) / 100

	booking := &domain.Booking{
		UserID:          userID,
		AccommodationID: accommodation.ID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		TotalAmount:     total,
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
		SpecialRequests: req.SpecialRequests,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *Service) Get(ctx context.Context, actorID int64, isStaff bool, id int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if booking.UserID != actorID && !isStaff {
		return nil, ErrForbidden
	}
	return booking, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.GetByUser(ctx, userID, limit, offset)
}

// Cancel is allowed only while the booking is pending or confirmed. A paid
// booking is marked refunded in the same update; an unpaid one keeps its
// payment status.
func (s *Service) Cancel(ctx context.Context, actorID int64, isStaff bool, id int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if booking.UserID != actorID && !isStaff {
		return nil, ErrForbidden
	}
	if !booking.CanCancel() {
		return nil, ErrNotCancellable
	}

	refund := booking.PaymentStatus == domain.PaymentPaid
	if err := s.bookings.Cancel(ctx, id, refund); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, id)
}

// Confirm is staff-only at the route level. Cancellation must go through
// Cancel so the refund rule applies.
func (s *Service) Confirm(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if booking.Status != domain.BookingPending {
		return nil, ErrBadStatusChange
	}

	if err := s.bookings.UpdateStatus(ctx, id, domain.BookingConfirmed); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, id)
}

// Complete moves a confirmed booking to completed.
func (s *Service) Complete(ctx context.Context, actorID int64, isStaff bool, id int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if booking.UserID != actorID && !isStaff {
		return nil, ErrForbidden
	}
	if booking.Status != domain.BookingConfirmed {
		return nil, ErrBadStatusChange
	}

	if err := s.bookings.UpdateStatus(ctx, id, domain.BookingCompleted); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, id)
}

// MarkPayment records a paid or failed payment. Refunds happen only through
// Cancel; there is no payment provider behind this flag.
func (s *Service) MarkPayment(ctx context.Context, actorID int64, isStaff bool, id int64, status string) (*domain.Booking, error) {
	next := domain.PaymentStatus(status)
	if next != domain.PaymentPaid && next != domain.PaymentFailed {
		return nil, ErrBadPaymentStatus
	}

	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if booking.UserID != actorID && !isStaff {
		return nil, ErrForbidden
	}
	if booking.Status != domain.BookingPending && booking.Status != domain.BookingConfirmed {
		return nil, ErrBadStatusChange
	}

	if err := s.bookings.UpdatePaymentStatus(ctx, id, next); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, id)
}
