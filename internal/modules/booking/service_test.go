package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"travelmate/internal/domain"
)

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	b.ID = 55
	return args.Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepo) UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepo) Cancel(ctx context.Context, bookingID int64, refund bool) error {
	args := m.Called(ctx, bookingID, refund)
	return args.Error(0)
}

type MockAccommodationGate struct {
	mock.Mock
}

func (m *MockAccommodationGate) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Accommodation), args.Error(1)
}

func testAccommodation() *domain.Accommodation {
	return &domain.Accommodation{
		ID:            3,
		Name:          "Sea Pearl",
		PricePerNight: 100,
		MaxGuests:     2,
		IsAvailable:   true,
	}
}

func TestService_Create_TotalIsPriceTimesNightsTimesGuests(t *testing.T) {
	bookings := new(MockBookingRepo)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	gate := new(MockAccommodationGate)
	gate.On("GetByID", mock.Anything, int64(3)).Return(testAccommodation(), nil)

	service := NewService(bookings, gate)

	created, err := service.Create(context.Background(), 7, CreateBookingRequest{
		AccommodationID: 3,
		CheckIn:         "2026-09-01",
		CheckOut:        "2026-09-03",
		Guests:          2,
	})

	assert.NoError(t, err)
	assert.Equal(t, 400.0, created.TotalAmount) // 100 * 2 nights * 2 guests
	assert.Equal(t, domain.BookingPending, created.Status)
	assert.Equal(t, domain.PaymentPending, created.PaymentStatus)
}

func TestService_Create_RejectsNonPositiveNights(t *testing.T) {
	bookings := new(MockBookingRepo)
	gate := new(MockAccommodationGate)
	service := NewService(bookings, gate)

	for _, checkOut := range []string{"2026-09-01", "2026-08-30"} {
		_, err := service.Create(context.Background(), 7, CreateBookingRequest{
			AccommodationID: 3,
			CheckIn:         "2026-09-01",
			CheckOut:        checkOut,
			Guests:          1,
		})
		assert.ErrorIs(t, err, ErrInvalidDates)
	}
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_RejectsTooManyGuests(t *testing.T) {
	bookings := new(MockBookingRepo)
	gate := new(MockAccommodationGate)
	gate.On("GetByID", mock.Anything, int64(3)).Return(testAccommodation(), nil)

	service := NewService(bookings, gate)

	_, err := service.Create(context.Background(), 7, CreateBookingRequest{
		AccommodationID: 3,
		CheckIn:         "2026-09-01",
		CheckOut:        "2026-09-03",
		Guests:          5,
	})

	assert.ErrorIs(t, err, ErrTooManyGuests)
}

func TestService_Create_RejectsUnavailableAccommodation(t *testing.T) {
	accommodation := testAccommodation()
	accommodation.IsAvailable = false

	bookings := new(MockBookingRepo)
	gate := new(MockAccommodationGate)
	gate.On("GetByID", mock.Anything, int64(3)).Return(accommodation, nil)

	service := NewService(bookings, gate)

	_, err := service.Create(context.Background(), 7, CreateBookingRequest{
		AccommodationID: 3,
		CheckIn:         "2026-09-01",
		CheckOut:        "2026-09-03",
		Guests:          1,
	})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestService_Cancel_PaidBookingIsRefunded(t *testing.T) {
	now := time.Now()
	before := &domain.Booking{ID: 55, UserID: 7, Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPaid}
	after := &domain.Booking{ID: 55, UserID: 7, Status: domain.BookingCancelled, PaymentStatus: domain.PaymentRefunded, CancelledAt: &now}

	bookings := new(MockBookingRepo)
	bookings.On("GetByID", mock.Anything, int64(55)).Return(before, nil).Once()
	bookings.On("Cancel", mock.Anything, int64(55), true).Return(nil)
	bookings.On("GetByID", mock.Anything, int64(55)).Return(after, nil).Once()

	service := NewService(bookings, new(MockAccommodationGate))

	cancelled, err := service.Cancel(context.Background(), 7, false, 55)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, cancelled.Status)
	assert.Equal(t, domain.PaymentRefunded, cancelled.PaymentStatus)
	assert.NotNil(t, cancelled.CancelledAt)
}

func TestService_Cancel_UnpaidBookingKeepsPaymentStatus(t *testing.T) {
	before := &domain.Booking{ID: 55, UserID: 7, Status: domain.BookingPending, PaymentStatus: domain.PaymentPending}
	after := &domain.Booking{ID: 55, UserID: 7, Status: domain.BookingCancelled, PaymentStatus: domain.PaymentPending}

	bookings := new(MockBookingRepo)
	bookings.On("GetByID", mock.Anything, int64(55)).Return(before, nil).Once()
	bookings.On("Cancel", mock.Anything, int64(55), false).Return(nil)
	bookings.On("GetByID", mock.Anything, int64(55)).Return(after, nil).Once()

	service := NewService(bookings, new(MockAccommodationGate))

	cancelled, err := service.Cancel(context.Background(), 7, false, 55)

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, cancelled.PaymentStatus)
	bookings.AssertCalled(t, "Cancel", mock.Anything, int64(55), false)
}

func TestService_Cancel_RejectedForFinishedBookings(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.BookingCompleted, domain.BookingCancelled} {
		bookings := new(MockBookingRepo)
		bookings.On("GetByID", mock.Anything, int64(55)).Return(&domain.Booking{ID: 55, UserID: 7, Status: status}, nil)

		service := NewService(bookings, new(MockAccommodationGate))

		_, err := service.Cancel(context.Background(), 7, false, 55)

		assert.ErrorIs(t, err, ErrNotCancellable)
		bookings.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestService_Cancel_OtherUsersBookingForbidden(t *testing.T) {
	bookings := new(MockBookingRepo)
	bookings.On("GetByID", mock.Anything, int64(55)).Return(&domain.Booking{ID: 55, UserID: 7, Status: domain.BookingPending}, nil)

	service := NewService(bookings, new(MockAccommodationGate))

	_, err := service.Cancel(context.Background(), 8, false, 55)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Get_PriceChangeDoesNotTouchStoredTotal(t *testing.T) {
	// booking priced when the nightly rate was 100; the rate has since doubled
	stored := &domain.Booking{ID: 55, UserID: 7, TotalAmount: 400, Status: domain.BookingConfirmed}

	bookings := new(MockBookingRepo)
	bookings.On("GetByID", mock.Anything, int64(55)).Return(stored, nil)
	gate := new(MockAccommodationGate)

	service := NewService(bookings, gate)

	booking, err := service.Get(context.Background(), 7, false, 55)

	assert.NoError(t, err)
	assert.Equal(t, 400.0, booking.TotalAmount)
	gate.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Confirm_OnlyFromPending(t *testing.T) {
	bookings := new(MockBookingRepo)
	bookings.On("GetByID", mock.Anything, int64(55)).Return(&domain.Booking{ID: 55, UserID: 7, Status: domain.BookingConfirmed}, nil)

	service := NewService(bookings, new(MockAccommodationGate))

	_, err := service.Confirm(context.Background(), 55)

	assert.ErrorIs(t, err, ErrBadStatusChange)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Complete_OnlyFromConfirmed(t *testing.T) {
	bookings := new(MockBookingRepo)
	bookings.On("GetByID", mock.Anything, int64(55)).Return(&domain.Booking{ID: 55, UserID: 7, Status: domain.BookingPending}, nil)

	service := NewService(bookings, new(MockAccommodationGate))

	_, err := service.Complete(context.Background(), 7, false, 55)

	assert.ErrorIs(t, err, ErrBadStatusChange)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_MarkPayment_RefundMustGoThroughCancel(t *testing.T) {
	bookings := new(MockBookingRepo)
	service := NewService(bookings, new(MockAccommodationGate))

	for _, status := range []string{"refunded", "cancelled"} {
		_, err := service.MarkPayment(context.Background(), 7, false, 55, status)
		assert.ErrorIs(t, err, ErrBadPaymentStatus)
	}
	bookings.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_MarkPayment_RejectedOnceBookingFinished(t *testing.T) {
	bookings := new(MockBookingRepo)
	bookings.On("GetByID", mock.Anything, int64(55)).Return(&domain.Booking{ID: 55, UserID: 7, Status: domain.BookingCompleted}, nil)

	service := NewService(bookings, new(MockAccommodationGate))

	_, err := service.MarkPayment(context.Background(), 7, false, 55, "paid")

	assert.ErrorIs(t, err, ErrBadStatusChange)
	bookings.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything)
}
