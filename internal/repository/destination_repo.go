package repository

import (
	"context"

	"travelmate/internal/domain"

	"gorm.io/gorm"
)

type DestinationFilters struct {
	Search   string
	Category string
	Featured bool
	Limit    int
	Offset   int
}

type DestinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) DB() *gorm.DB { return r.db }

// GetAll returns destinations with optional substring search and filters
func (r *DestinationRepository) GetAll(
	ctx context.Context,
	f DestinationFilters,
) ([]domain.Destination, int64, error) {

	var destinations []domain.Destination
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Destination{})

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR location LIKE ? OR description LIKE ?", like, like, like)
	}

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	if f.Featured {
		q = q.Where("is_featured = ?", true)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	err := q.
		Preload("Photos").
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&destinations).Error

	return destinations, total, err
}

func (r *DestinationRepository) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	var destination domain.Destination
	err := r.db.WithContext(ctx).
		Preload("Photos").
		Preload("Features").
		First(&destination, id).Error
	if err != nil {
		return nil, err
	}
	return &destination, nil
}

func (r *DestinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DestinationRepository) Update(ctx context.Context, d *domain.Destination) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// Delete removes the destination and everything hanging off it: photos,
// features, reviews, and child accommodations with their reviews and
// bookings. Itinerary items keep their rows but drop the dangling reference.
// Child deletes are explicit so sqlite behaves the same as postgres.
func (r *DestinationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accommodationIDs := tx.Model(&domain.Accommodation{}).Select("id").Where("destination_id = ?", id)
		accommodationReviewIDs := tx.Model(&domain.AccommodationReview{}).Select("id").Where("accommodation_id IN (?)", accommodationIDs)
		destinationReviewIDs := tx.Model(&domain.DestinationReview{}).Select("id").Where("destination_id = ?", id)

		if err := tx.Where("subject_kind = ? AND review_id IN (?)", domain.SubjectAccommodation, accommodationReviewIDs).
			Delete(&domain.ReviewPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_kind = ? AND review_id IN (?)", domain.SubjectDestination, destinationReviewIDs).
			Delete(&domain.ReviewPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("accommodation_id IN (?)", accommodationIDs).Delete(&domain.AccommodationReview{}).Error; err != nil {
			return err
		}
		if err := tx.Where("accommodation_id IN (?)", accommodationIDs).Delete(&domain.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.ItineraryItem{}).Where("accommodation_id IN (?)", accommodationIDs).
			Update("accommodation_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.ItineraryItem{}).Where("destination_id = ?", id).
			Update("destination_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("destination_id = ?", id).Delete(&domain.Accommodation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("destination_id = ?", id).Delete(&domain.DestinationReview{}).Error; err != nil {
			return err
		}
		if err := tx.Where("destination_id = ?", id).Delete(&domain.DestinationPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("destination_id = ?", id).Delete(&domain.DestinationFeature{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Destination{}, id).Error
	})
}

func (r *DestinationRepository) AddPhoto(ctx context.Context, p *domain.DestinationPhoto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// SetPrimaryPhoto marks one photo primary and clears the flag on the rest,
// inside one transaction so two primaries can never be observed.
func (r *DestinationRepository) SetPrimaryPhoto(ctx context.Context, destinationID, photoID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.DestinationPhoto{}).
			Where("destination_id = ? AND id <> ?", destinationID, photoID).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		res := tx.Model(&domain.DestinationPhoto{}).
			Where("destination_id = ? AND id = ?", destinationID, photoID).
			Update("is_primary", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *DestinationRepository) DeletePhoto(ctx context.Context, destinationID, photoID int64) error {
	res := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationID).
		Delete(&domain.DestinationPhoto{}, photoID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DestinationRepository) AddFeature(ctx context.Context, f *domain.DestinationFeature) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *DestinationRepository) DeleteFeature(ctx context.Context, destinationID, featureID int64) error {
	res := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationID).
		Delete(&domain.DestinationFeature{}, featureID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
