package catalog

type CreateDestinationRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Category        string   `json:"category" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	State           string   `json:"state"`
	Country         string   `json:"country"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	BestTimeToVisit string   `json:"best_time_to_visit"`
	EntryFee        float64  `json:"entry_fee" binding:"gte=0"`
}

type UpdateDestinationRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	Location        *string  `json:"location"`
	State           *string  `json:"state"`
	Country         *string  `json:"country"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	BestTimeToVisit *string  `json:"best_time_to_visit"`
	EntryFee        *float64 `json:"entry_fee"`
	IsFeatured      *bool    `json:"is_featured"`
}

type AddFeatureRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateAccommodationRequest struct {
	Name          string  `json:"name" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	DestinationID int64   `json:"destination_id" binding:"required"`
	Address       string  `json:"address"`
	Description   string  `json:"description"`
	Amenities     string  `json:"amenities"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
	MaxGuests     int     `json:"max_guests"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Website       string  `json:"website"`
	CheckInTime   string  `json:"check_in_time"`
	CheckOutTime  string  `json:"check_out_time"`
}

type UpdateAccommodationRequest struct {
	Name          *string  `json:"name"`
	Type          *string  `json:"type"`
	Address       *string  `json:"address"`
	Description   *string  `json:"description"`
	Amenities     *string  `json:"amenities"`
	PricePerNight *float64 `json:"price_per_night"`
	MaxGuests     *int     `json:"max_guests"`
	Phone         *string  `json:"phone"`
	Email         *string  `json:"email"`
	Website       *string  `json:"website"`
	IsAvailable   *bool    `json:"is_available"`
	CheckInTime   *string  `json:"check_in_time"`
	CheckOutTime  *string  `json:"check_out_time"`
}
