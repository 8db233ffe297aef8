package repository

import (
	"context"

	"travelmate/internal/domain"

	"gorm.io/gorm"
)

type AccommodationFilters struct {
	Search        string
	Type          string
	DestinationID int64
	Limit         int
	Offset        int
}

type AccommodationRepository struct {
	db *gorm.DB
}

func NewAccommodationRepository(db *gorm.DB) *AccommodationRepository {
	return &AccommodationRepository{db: db}
}

func (r *AccommodationRepository) DB() *gorm.DB { return r.db }

// GetAll lists available accommodations, newest first. Search covers the
// accommodation name, its address and the destination name.
func (r *AccommodationRepository) GetAll(
	ctx context.Context,
	f AccommodationFilters,
) ([]domain.Accommodation, int64, error) {

	var accommodations []domain.Accommodation
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Accommodation{}).
		Where("accommodations.is_available = ?", true)

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.
			Joins("JOIN destinations ON destinations.id = accommodations.destination_id").
			Where("accommodations.name LIKE ? OR destinations.name LIKE ? OR accommodations.address LIKE ?",
				like, like, like)
	}

	if f.Type != "" {
		q = q.Where("accommodation_type = ?", f.Type)
	}

	if f.DestinationID > 0 {
		q = q.Where("destination_id = ?", f.DestinationID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	err := q.
		Preload("Destination").
		Order("accommodations.created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&accommodations).Error

	return accommodations, total, err
}

func (r *AccommodationRepository) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	var accommodation domain.Accommodation
	err := r.db.WithContext(ctx).
		Preload("Destination").
		First(&accommodation, id).Error
	if err != nil {
		return nil, err
	}
	return &accommodation, nil
}

func (r *AccommodationRepository) Create(ctx context.Context, a *domain.Accommodation) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccommodationRepository) Update(ctx context.Context, a *domain.Accommodation) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// Delete removes the accommodation together with its reviews, review photos,
// and bookings, and detaches itinerary items pointing at it. Child deletes
// are explicit so sqlite behaves the same as postgres.
func (r *AccommodationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reviewIDs := tx.Model(&domain.AccommodationReview{}).Select("id").Where("accommodation_id = ?", id)

		if err := tx.Where("subject_kind = ? AND review_id IN (?)", domain.SubjectAccommodation, reviewIDs).
			Delete(&domain.ReviewPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("accommodation_id = ?", id).Delete(&domain.AccommodationReview{}).Error; err != nil {
			return err
		}
		if err := tx.Where("accommodation_id = ?", id).Delete(&domain.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.ItineraryItem{}).Where("accommodation_id = ?", id).
			Update("accommodation_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Accommodation{}, id).Error
	})
}

func (r *AccommodationRepository) UpdateRating(ctx context.Context, id int64, rating float64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Accommodation{}).
		Where("id = ?", id).
		Update("rating", rating).Error
}
