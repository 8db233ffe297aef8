package domain

import "time"

type DestinationCategory string

const (
	CategoryHistorical DestinationCategory = "historical"
	CategoryNatural    DestinationCategory = "natural"
	CategoryReligious  DestinationCategory = "religious"
	CategoryAdventure  DestinationCategory = "adventure"
	CategoryCultural   DestinationCategory = "cultural"
	CategoryBeach      DestinationCategory = "beach"
	CategoryMountain   DestinationCategory = "mountain"
	CategoryWildlife   DestinationCategory = "wildlife"
)

func ValidDestinationCategory(c DestinationCategory) bool {
	switch c {
	case CategoryHistorical, CategoryNatural, CategoryReligious, CategoryAdventure,
		CategoryCultural, CategoryBeach, CategoryMountain, CategoryWildlife:
		return true
	}
	return false
}

// Destination is created by a user but not owned by one: CreatedBy is an
// attribution reference, so deleting the creator leaves the destination alive.
type Destination struct {
	ID              int64               `json:"id"`
	Name            string              `json:"name" validate:"required"`
	Description     string              `json:"description" gorm:"type:text"`
	Category        DestinationCategory `json:"category"`
	Location        string              `json:"location"`
	State           string              `json:"state,omitempty"`
	Country         string              `json:"country"`
	Latitude        *float64            `json:"latitude,omitempty"`
	Longitude       *float64            `json:"longitude,omitempty"`
	BestTimeToVisit string              `json:"best_time_to_visit,omitempty"`
	EntryFee        float64             `json:"entry_fee"`
	IsFeatured      bool                `json:"is_featured"`
	CreatedBy       int64               `json:"created_by"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`

	Photos   []DestinationPhoto   `json:"photos,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Features []DestinationFeature `json:"features,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// DestinationPhoto: at most one photo per destination carries IsPrimary.
type DestinationPhoto struct {
	ID            int64     `json:"id"`
	DestinationID int64     `json:"destination_id"`
	Image         string    `json:"image"`
	Caption       string    `json:"caption,omitempty"`
	IsPrimary     bool      `json:"is_primary"`
	UploadedBy    int64     `json:"uploaded_by"`
	UploadedAt    time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

type DestinationFeature struct {
	ID            int64  `json:"id"`
	DestinationID int64  `json:"destination_id"`
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description,omitempty" gorm:"type:text"`
}
