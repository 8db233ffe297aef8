package booking

type CreateBookingRequest struct {
	AccommodationID int64  `json:"accommodation_id" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`  // YYYY-MM-DD
	CheckOut        string `json:"check_out" binding:"required"` // YYYY-MM-DD
	Guests          int    `json:"guests" binding:"required,gt=0"`
	SpecialRequests string `json:"special_requests"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}
