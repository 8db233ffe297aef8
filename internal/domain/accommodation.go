package domain

import "time"

type AccommodationType string

const (
	AccommodationHotel      AccommodationType = "hotel"
	AccommodationGuestHouse AccommodationType = "guesthouse"
	AccommodationResort     AccommodationType = "resort"
	AccommodationHomestay   AccommodationType = "homestay"
	AccommodationHostel     AccommodationType = "hostel"
	AccommodationApartment  AccommodationType = "apartment"
)

func ValidAccommodationType(t AccommodationType) bool {
	switch t {
	case AccommodationHotel, AccommodationGuestHouse, AccommodationResort,
		AccommodationHomestay, AccommodationHostel, AccommodationApartment:
		return true
	}
	return false
}

type Accommodation struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name" validate:"required"`
	Type          AccommodationType `json:"type" gorm:"column:accommodation_type"`
	DestinationID int64             `json:"destination_id"`
	Address       string            `json:"address" gorm:"type:text"`
	Description   string            `json:"description" gorm:"type:text"`
	Amenities     string            `json:"amenities,omitempty" gorm:"type:text"`
	PricePerNight float64           `json:"price_per_night" validate:"gte=0"`
	MaxGuests     int               `json:"max_guests"`
	Phone         string            `json:"phone,omitempty"`
	Email         string            `json:"email,omitempty"`
	Website       string            `json:"website,omitempty"`
	Image         string            `json:"image,omitempty"`
	IsAvailable   bool              `json:"is_available"`
	Rating        float64           `json:"rating"`
	CheckInTime   string            `json:"check_in_time"`
	CheckOutTime  string            `json:"check_out_time"`
	CreatedBy     int64             `json:"created_by"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	Destination *Destination `json:"destination,omitempty" gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE"`
}

const (
	DefaultCheckInTime  = "14:00"
	DefaultCheckOutTime = "11:00"
	DefaultMaxGuests    = 2
)
