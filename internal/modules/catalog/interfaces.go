package catalog

import (
	"context"

	"travelmate/internal/domain"
	"travelmate/internal/repository"
)

type DestinationRepository interface {
	GetAll(ctx context.Context, f repository.DestinationFilters) ([]domain.Destination, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Destination, error)
	Create(ctx context.Context, d *domain.Destination) error
	Update(ctx context.Context, d *domain.Destination) error
	Delete(ctx context.Context, id int64) error
	AddPhoto(ctx context.Context, p *domain.DestinationPhoto) error
	SetPrimaryPhoto(ctx context.Context, destinationID, photoID int64) error
	DeletePhoto(ctx context.Context, destinationID, photoID int64) error
	AddFeature(ctx context.Context, f *domain.DestinationFeature) error
	DeleteFeature(ctx context.Context, destinationID, featureID int64) error
}

type AccommodationRepository interface {
	GetAll(ctx context.Context, f repository.AccommodationFilters) ([]domain.Accommodation, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Accommodation, error)
	Create(ctx context.Context, a *domain.Accommodation) error
	Update(ctx context.Context, a *domain.Accommodation) error
	Delete(ctx context.Context, id int64) error
}

// ReviewGate lets catalog detail pages include approved reviews without
// importing the review module.
type ReviewGate interface {
	GetDestinationReviews(ctx context.Context, destinationID int64, limit, offset int) ([]domain.DestinationReview, error)
	GetAccommodationReviews(ctx context.Context, accommodationID int64, limit, offset int) ([]domain.AccommodationReview, error)
	HasUserReviewed(ctx context.Context, subject domain.ReviewSubject, subjectID, userID int64) (bool, error)
}
