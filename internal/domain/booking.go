package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking reserves an accommodation for a date range. TotalAmount is computed
// once at creation from the accommodation's price at that moment and is never
// recalculated, so later price edits do not touch existing bookings.
type Booking struct {
	ID              int64         `json:"id"`
	UserID          int64         `json:"user_id"`
	AccommodationID int64         `json:"accommodation_id" validate:"required"`
	CheckIn         time.Time     `json:"check_in" validate:"required"`
	CheckOut        time.Time     `json:"check_out" validate:"required"`
	Guests          int           `json:"guests" validate:"required,gt=0"`
	TotalAmount     float64       `json:"total_amount"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	SpecialRequests string        `json:"special_requests,omitempty" gorm:"type:text"`
	CancelledAt     *time.Time    `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	User          *User          `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Accommodation *Accommodation `json:"accommodation,omitempty" gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE"`
}

// Nights returns the whole-day length of the stay.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// CanCancel reports whether a booking may still be cancelled.
func (b *Booking) CanCancel() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}
