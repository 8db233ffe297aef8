package repository

import (
	"context"
	"time"

	"travelmate/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	UserID          int64      `gorm:"column:user_id"`
	AccommodationID int64      `gorm:"column:accommodation_id"`
	CheckIn         time.Time  `gorm:"column:check_in"`
	CheckOut        time.Time  `gorm:"column:check_out"`
	Guests          int        `gorm:"column:guests"`
	TotalAmount     float64    `gorm:"column:total_amount"`
	Status          string     `gorm:"column:status"`
	PaymentStatus   string     `gorm:"column:payment_status"`
	SpecialRequests *string    `gorm:"column:special_requests"`
	CancelledAt     *time.Time `gorm:"column:cancelled_at"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var requests string
	if m.SpecialRequests != nil {
		requests = *m.SpecialRequests
	}

	return &domain.Booking{
		ID:              m.ID,
		UserID:          m.UserID,
		AccommodationID: m.AccommodationID,
		CheckIn:         m.CheckIn,
		CheckOut:        m.CheckOut,
		Guests:          m.Guests,
		TotalAmount:     m.TotalAmount,
		Status:          domain.BookingStatus(m.Status),
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		SpecialRequests: requests,
		CancelledAt:     m.CancelledAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var requests *string
	if b.SpecialRequests != "" {
		v := b.SpecialRequests
		requests = &v
	}

	return bookingModel{
		ID:              b.ID,
		UserID:          b.UserID,
		AccommodationID: b.AccommodationID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		TotalAmount:     b.TotalAmount,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		SpecialRequests: requests,
		CancelledAt:     b.CancelledAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Update("status", string(status)).Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Update("payment_status", string(status)).Error
}

// Cancel flips the booking to cancelled, stamps cancelled_at and, when the
// booking was paid, marks the payment refunded. One UPDATE, so the pair of
// transitions is atomic.
func (r *BookingRepository) Cancel(ctx context.Context, bookingID int64, refund bool) error {
	updates := map[string]any{
		"status":       string(domain.BookingCancelled),
		"cancelled_at": time.Now(),
	}
	if refund {
		updates["payment_status"] = string(domain.PaymentRefunded)
	}
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(updates).Error
}
