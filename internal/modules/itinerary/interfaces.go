package itinerary

import (
	"context"

	"travelmate/internal/domain"
)

type ItineraryRepository interface {
	Create(ctx context.Context, it *domain.Itinerary) error
	GetByID(ctx context.Context, id int64) (*domain.Itinerary, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.Itinerary, error)
	GetPublic(ctx context.Context, limit, offset int) ([]domain.Itinerary, error)
	Update(ctx context.Context, it *domain.Itinerary) error
	Delete(ctx context.Context, id int64) error
	CreateItem(ctx context.Context, item *domain.ItineraryItem) error
	GetItem(ctx context.Context, itineraryID, itemID int64) (*domain.ItineraryItem, error)
	UpdateItem(ctx context.Context, item *domain.ItineraryItem) error
	DeleteItem(ctx context.Context, itineraryID, itemID int64) error
	AddCollaborator(ctx context.Context, c *domain.ItineraryCollaborator) error
	RemoveCollaborator(ctx context.Context, itineraryID, userID int64) error
}

// UserGate resolves collaborator usernames to accounts.
type UserGate interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
