package repository

import (
	"context"

	"travelmate/internal/domain"

	"gorm.io/gorm"
)

type GuideRepository struct {
	db *gorm.DB
}

func NewGuideRepository(db *gorm.DB) *GuideRepository {
	return &GuideRepository{db: db}
}

func (r *GuideRepository) DB() *gorm.DB { return r.db }

func (r *GuideRepository) GetByID(ctx context.Context, id int64) (*domain.LocalGuide, error) {
	var guide domain.LocalGuide
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&guide, id).Error
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

// GetAll returns verified guides ordered best-rated first, newest breaking ties.
func (r *GuideRepository) GetAll(ctx context.Context, limit, offset int) ([]domain.LocalGuide, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	q := r.db.WithContext(ctx).
		Model(&domain.LocalGuide{}).
		Where("is_verified = ?", true)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var guides []domain.LocalGuide
	err := q.
		Preload("User").
		Order("rating DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&guides).Error
	return guides, total, err
}

func (r *GuideRepository) UpdateRating(ctx context.Context, guideID int64, rating float64) error {
	return r.db.WithContext(ctx).
		Model(&domain.LocalGuide{}).
		Where("id = ?", guideID).
		Update("rating", rating).Error
}
