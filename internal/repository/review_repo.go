package repository

import (
	"context"

	"travelmate/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) DB() *gorm.DB { return r.db }

// ---- destination reviews ----

func (r *ReviewRepository) CreateDestinationReview(ctx context.Context, rv *domain.DestinationReview) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetDestinationReviews(ctx context.Context, destinationID int64, limit, offset int) ([]domain.DestinationReview, error) {
	var rows []domain.DestinationReview
	err := r.db.WithContext(ctx).
		Where("destination_id = ? AND is_approved = ?", destinationID, true).
		Preload("User").
		Order("created_at DESC").
		Limit(clampLimit(limit)).
		Offset(max(offset, 0)).
		Find(&rows).Error
	return rows, err
}

func (r *ReviewRepository) GetDestinationReviewByID(ctx context.Context, id int64) (*domain.DestinationReview, error) {
	var rv domain.DestinationReview
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) DeleteDestinationReview(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.DestinationReview{}, id).Error
}

// ---- accommodation reviews ----

func (r *ReviewRepository) CreateAccommodationReview(ctx context.Context, rv *domain.AccommodationReview) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetAccommodationReviews(ctx context.Context, accommodationID int64, limit, offset int) ([]domain.AccommodationReview, error) {
	var rows []domain.AccommodationReview
	err := r.db.WithContext(ctx).
		Where("accommodation_id = ? AND is_approved = ?", accommodationID, true).
		Preload("User").
		Order("created_at DESC").
		Limit(clampLimit(limit)).
		Offset(max(offset, 0)).
		Find(&rows).Error
	return rows, err
}

func (r *ReviewRepository) GetAccommodationReviewByID(ctx context.Context, id int64) (*domain.AccommodationReview, error) {
	var rv domain.AccommodationReview
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) DeleteAccommodationReview(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.AccommodationReview{}, id).Error
}

// AverageApprovedAccommodationRating returns the unrounded mean over approved
// reviews, 0 when there are none.
func (r *ReviewRepository) AverageApprovedAccommodationRating(ctx context.Context, accommodationID int64) (float64, error) {
	var avg float64
	q := `
SELECT COALESCE(AVG(rating), 0)
FROM accommodation_reviews
WHERE accommodation_id = ? AND is_approved = ?
`
	tx := r.db.WithContext(ctx).Raw(q, accommodationID, true).Scan(&avg)
	return avg, tx.Error
}

// ---- guide reviews ----

func (r *ReviewRepository) CreateGuideReview(ctx context.Context, rv *domain.GuideReview) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetGuideReviews(ctx context.Context, guideID int64, limit, offset int) ([]domain.GuideReview, error) {
	var rows []domain.GuideReview
	err := r.db.WithContext(ctx).
		Where("guide_id = ? AND is_approved = ?", guideID, true).
		Preload("User").
		Order("created_at DESC").
		Limit(clampLimit(limit)).
		Offset(max(offset, 0)).
		Find(&rows).Error
	return rows, err
}

func (r *ReviewRepository) GetGuideReviewByID(ctx context.Context, id int64) (*domain.GuideReview, error) {
	var rv domain.GuideReview
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) DeleteGuideReview(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.GuideReview{}, id).Error
}

func (r *ReviewRepository) AverageApprovedGuideRating(ctx context.Context, guideID int64) (float64, error) {
	var avg float64
	q := `
SELECT COALESCE(AVG(rating), 0)
FROM guide_reviews
WHERE guide_id = ? AND is_approved = ?
`
	tx := r.db.WithContext(ctx).Raw(q, guideID, true).Scan(&avg)
	return avg, tx.Error
}

// HasUserReviewed reports whether the user already reviewed the subject. The
// unique index stays authoritative; this only exists for friendlier errors on
// the common path.
func (r *ReviewRepository) HasUserReviewed(ctx context.Context, subject domain.ReviewSubject, subjectID, userID int64) (bool, error) {
	var cnt int64
	q := r.db.WithContext(ctx)
	switch subject {
	case domain.SubjectDestination:
		q = q.Model(&domain.DestinationReview{}).Where("destination_id = ? AND user_id = ?", subjectID, userID)
	case domain.SubjectAccommodation:
		q = q.Model(&domain.AccommodationReview{}).Where("accommodation_id = ? AND user_id = ?", subjectID, userID)
	case domain.SubjectGuide:
		q = q.Model(&domain.GuideReview{}).Where("guide_id = ? AND user_id = ?", subjectID, userID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ---- review photos ----

func (r *ReviewRepository) AddPhoto(ctx context.Context, p *domain.ReviewPhoto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ReviewRepository) GetPhotos(ctx context.Context, subject domain.ReviewSubject, reviewID int64) ([]domain.ReviewPhoto, error) {
	var photos []domain.ReviewPhoto
	err := r.db.WithContext(ctx).
		Where("subject_kind = ? AND review_id = ?", subject, reviewID).
		Order("uploaded_at").
		Find(&photos).Error
	return photos, err
}

func (r *ReviewRepository) DeletePhotos(ctx context.Context, subject domain.ReviewSubject, reviewID int64) error {
	return r.db.WithContext(ctx).
		Where("subject_kind = ? AND review_id = ?", subject, reviewID).
		Delete(&domain.ReviewPhoto{}).Error
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
