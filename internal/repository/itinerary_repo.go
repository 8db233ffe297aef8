package repository

import (
	"context"

	"travelmate/internal/domain"

	"gorm.io/gorm"
)

type ItineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

func (r *ItineraryRepository) DB() *gorm.DB { return r.db }

func (r *ItineraryRepository) Create(ctx context.Context, it *domain.Itinerary) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *ItineraryRepository) GetByID(ctx context.Context, id int64) (*domain.Itinerary, error) {
	var itinerary domain.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date, sort_order")
		}).
		Preload("Items.Destination").
		Preload("Items.Accommodation").
		Preload("Collaborators").
		First(&itinerary, id).Error
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (r *ItineraryRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Itinerary, error) {
	var itineraries []domain.Itinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&itineraries).Error
	return itineraries, err
}

func (r *ItineraryRepository) GetPublic(ctx context.Context, limit, offset int) ([]domain.Itinerary, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var itineraries []domain.Itinerary
	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&itineraries).Error
	return itineraries, err
}

func (r *ItineraryRepository) Update(ctx context.Context, it *domain.Itinerary) error {
	return r.db.WithContext(ctx).Omit("Items", "Collaborators").Save(it).Error
}

// Delete removes the itinerary with its items and collaborator rows. The
// child deletes are explicit so sqlite behaves the same as postgres here.
func (r *ItineraryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("itinerary_id = ?", id).Delete(&domain.ItineraryItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", id).Delete(&domain.ItineraryCollaborator{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Itinerary{}, id).Error
	})
}

func (r *ItineraryRepository) CreateItem(ctx context.Context, item *domain.ItineraryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *ItineraryRepository) GetItem(ctx context.Context, itineraryID, itemID int64) (*domain.ItineraryItem, error) {
	var item domain.ItineraryItem
	err := r.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		First(&item, itemID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItineraryRepository) UpdateItem(ctx context.Context, item *domain.ItineraryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *ItineraryRepository) DeleteItem(ctx context.Context, itineraryID, itemID int64) error {
	res := r.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		Delete(&domain.ItineraryItem{}, itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ItineraryRepository) AddCollaborator(ctx context.Context, c *domain.ItineraryCollaborator) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ItineraryRepository) RemoveCollaborator(ctx context.Context, itineraryID, userID int64) error {
	res := r.db.WithContext(ctx).
		Where("itinerary_id = ? AND user_id = ?", itineraryID, userID).
		Delete(&domain.ItineraryCollaborator{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
