package domain

import "time"

type TripStatus string

const (
	TripPlanning  TripStatus = "planning"
	TripConfirmed TripStatus = "confirmed"
	TripOngoing   TripStatus = "ongoing"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

func ValidTripStatus(s TripStatus) bool {
	switch s {
	case TripPlanning, TripConfirmed, TripOngoing, TripCompleted, TripCancelled:
		return true
	}
	return false
}

type ItemType string

const (
	ItemDestination   ItemType = "destination"
	ItemAccommodation ItemType = "accommodation"
	ItemTransport     ItemType = "transport"
	ItemActivity      ItemType = "activity"
	ItemMeal          ItemType = "meal"
	ItemOther         ItemType = "other"
)

func ValidItemType(t ItemType) bool {
	switch t {
	case ItemDestination, ItemAccommodation, ItemTransport, ItemActivity, ItemMeal, ItemOther:
		return true
	}
	return false
}

// Itinerary is a strictly user-owned aggregate: every mutation of the
// itinerary or its items requires the requester to be the owner.
type Itinerary struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Status      TripStatus `json:"status"`
	IsPublic    bool       `json:"is_public"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User          *User                   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Items         []ItineraryItem         `json:"items,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Collaborators []ItineraryCollaborator `json:"collaborators,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// TotalDays counts both endpoints, so a same-day trip is 1 day.
func (i *Itinerary) TotalDays() int {
	return int(i.EndDate.Sub(i.StartDate).Hours()/24) + 1
}

type ItineraryItem struct {
	ID              int64     `json:"id"`
	ItineraryID     int64     `json:"itinerary_id"`
	ItemType        ItemType  `json:"item_type"`
	DestinationID   *int64    `json:"destination_id,omitempty"`
	AccommodationID *int64    `json:"accommodation_id,omitempty"`
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description,omitempty" gorm:"type:text"`
	Location        string    `json:"location,omitempty"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	StartTime       string    `json:"start_time,omitempty"`
	EndTime         string    `json:"end_time,omitempty"`
	EstimatedCost   *float64  `json:"estimated_cost,omitempty"`
	IsBooked        bool      `json:"is_booked"`
	SortOrder       int       `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`

	Destination   *Destination   `json:"destination,omitempty" gorm:"foreignKey:DestinationID"`
	Accommodation *Accommodation `json:"accommodation,omitempty" gorm:"foreignKey:AccommodationID"`
}

type CollaboratorPermission string

const (
	CollaboratorView CollaboratorPermission = "view"
	CollaboratorEdit CollaboratorPermission = "edit"
)

// ItineraryCollaborator is owner-managed data. The permission level is stored
// but not consulted by item mutations, which stay owner-only.
type ItineraryCollaborator struct {
	ID          int64                  `json:"id"`
	ItineraryID int64                  `json:"itinerary_id" gorm:"uniqueIndex:idx_itinerary_collaborator"`
	UserID      int64                  `json:"user_id" gorm:"uniqueIndex:idx_itinerary_collaborator"`
	Permission  CollaboratorPermission `json:"permission"`
	CreatedAt   time.Time              `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
