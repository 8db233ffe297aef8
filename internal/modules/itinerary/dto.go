package itinerary

type CreateItineraryRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate     string `json:"end_date" binding:"required"`   // YYYY-MM-DD
	IsPublic    bool   `json:"is_public"`
}

type UpdateItineraryRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      *string `json:"status"`
	IsPublic    *bool   `json:"is_public"`
}

type CreateItemRequest struct {
	ItemType        string   `json:"item_type" binding:"required"`
	DestinationID   *int64   `json:"destination_id"`
	AccommodationID *int64   `json:"accommodation_id"`
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	StartDate       string   `json:"start_date" binding:"required"`
	EndDate         string   `json:"end_date"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	EstimatedCost   *float64 `json:"estimated_cost"`
	IsBooked        bool     `json:"is_booked"`
	SortOrder       int      `json:"sort_order"`
}

type UpdateItemRequest struct {
	ItemType      *string  `json:"item_type"`
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Location      *string  `json:"location"`
	StartDate     *string  `json:"start_date"`
	EndDate       *string  `json:"end_date"`
	StartTime     *string  `json:"start_time"`
	EndTime       *string  `json:"end_time"`
	EstimatedCost *float64 `json:"estimated_cost"`
	IsBooked      *bool    `json:"is_booked"`
	SortOrder     *int     `json:"sort_order"`
}

type AddCollaboratorRequest struct {
	Username   string `json:"username" binding:"required"`
	Permission string `json:"permission"`
}
