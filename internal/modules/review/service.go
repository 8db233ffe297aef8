package review

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"travelmate/internal/domain"
	"travelmate/internal/repository"
)

type Service struct {
	reviews        *repository.ReviewRepository
	destinations   *repository.DestinationRepository
	accommodations *repository.AccommodationRepository
	guides         *repository.GuideRepository
}

func NewService(
	reviews *repository.ReviewRepository,
	destinations *repository.DestinationRepository,
	accommodations *repository.AccommodationRepository,
	guides *repository.GuideRepository,
) *Service {
	return &Service{
		reviews:        reviews,
		destinations:   destinations,
		accommodations: accommodations,
		guides:         guides,
	}
}

// roundRating keeps aggregate ratings at one decimal place.
func roundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

func (s *Service) GetDestinationReviews(ctx context.Context, destinationID int64, limit, offset int) ([]domain.DestinationReview, error) {
	return s.reviews.GetDestinationReviews(ctx, destinationID, limit, offset)
}

func (s *Service) GetAccommodationReviews(ctx context.Context, accommodationID int64, limit, offset int) ([]domain.AccommodationReview, error) {
	return s.reviews.GetAccommodationReviews(ctx, accommodationID, limit, offset)
}

func (s *Service) GetGuideReviews(ctx context.Context, guideID int64, limit, offset int) ([]domain.GuideReview, error) {
	return s.reviews.GetGuideReviews(ctx, guideID, limit, offset)
}

func (s *Service) HasUserReviewed(ctx context.Context, subject domain.ReviewSubject, subjectID, userID int64) (bool, error) {
	return s.reviews.HasUserReviewed(ctx, subject, subjectID, userID)
}

// CreateDestinationReview stores the review. Destinations keep no aggregate
// rating column, so there is nothing to recompute here.
func (s *Service) CreateDestinationReview(ctx context.Context, userID, destinationID int64, req CreateReviewRequest) (*domain.DestinationReview, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}
	if _, err := s.destinations.GetByID(ctx, destinationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reviewed, err := s.reviews.HasUserReviewed(ctx, domain.SubjectDestination, destinationID, userID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, ErrAlreadyReviewed
	}

	rv := &domain.DestinationReview{
		DestinationID: destinationID,
		UserID:        userID,
		Content:       req.Content,
		Rating:        req.Rating,
		IsApproved:    true,
	}
	if err := s.reviews.CreateDestinationReview(ctx, rv); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) CreateAccommodationReview(ctx context.Context, userID, accommodationID int64, req CreateReviewRequest) (*domain.AccommodationReview, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}
	if _, err := s.accommodations.GetByID(ctx, accommodationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reviewed, err := s.reviews.HasUserReviewed(ctx, domain.SubjectAccommodation, accommodationID, userID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, ErrAlreadyReviewed
	}

	rv := &domain.AccommodationReview{
		AccommodationID: accommodationID,
		UserID:          userID,
		Content:         req.Content,
		Rating:          req.Rating,
		IsApproved:      true,
	}
	if err := s.reviews.CreateAccommodationReview(ctx, rv); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	if err := s.recomputeAccommodationRating(ctx, accommodationID); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) CreateGuideReview(ctx context.Context, userID, guideID int64, req CreateReviewRequest) (*domain.GuideReview, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}
	if _, err := s.guides.GetByID(ctx, guideID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reviewed, err := s.reviews.HasUserReviewed(ctx, domain.SubjectGuide, guideID, userID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, ErrAlreadyReviewed
	}

	rv := &domain.GuideReview{
		GuideID:    guideID,
		UserID:     userID,
		Content:    req.Content,
		Rating:     req.Rating,
		IsApproved: true,
	}
	if err := s.reviews.CreateGuideReview(ctx, rv); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	if err := s.recomputeGuideRating(ctx, guideID); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) DeleteDestinationReview(ctx context.Context, actorID int64, isStaff bool, id int64) error {
	rv, err := s.reviews.GetDestinationReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if rv.UserID != actorID && !isStaff {
		return ErrForbidden
	}

	if err := s.reviews.DeletePhotos(ctx, domain.SubjectDestination, id); err != nil {
		return err
	}
	return s.reviews.DeleteDestinationReview(ctx, id)
}

func (s *Service) DeleteAccommodationReview(ctx context.Context, actorID int64, isStaff bool, id int64) error {
	rv, err := s.reviews.GetAccommodationReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if rv.UserID != actorID && !isStaff {
		return ErrForbidden
	}

	if err := s.reviews.DeletePhotos(ctx, domain.SubjectAccommodation, id); err != nil {
		return err
	}
	if err := s.reviews.DeleteAccommodationReview(ctx, id); err != nil {
		return err
	}
	return s.recomputeAccommodationRating(ctx, rv.AccommodationID)
}

func (s *Service) DeleteGuideReview(ctx context.Context, actorID int64, isStaff bool, id int64) error {
	rv, err := s.reviews.GetGuideReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if rv.UserID != actorID && !isStaff {
		return ErrForbidden
	}

	if err := s.reviews.DeletePhotos(ctx, domain.SubjectGuide, id); err != nil {
		return err
	}
	if err := s.reviews.DeleteGuideReview(ctx, id); err != nil {
		return err
	}
	return s.recomputeGuideRating(ctx, rv.GuideID)
}

// AddPhoto attaches an uploaded image to the author's own review.
func (s *Service) AddPhoto(ctx context.Context, actorID int64, subject domain.ReviewSubject, reviewID int64, url, caption string) (*domain.ReviewPhoto, error) {
	var authorID int64
	switch subject {
	case domain.SubjectDestination:
		rv, err := s.reviews.GetDestinationReviewByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		authorID = rv.UserID
	case domain.SubjectAccommodation:
		rv, err := s.reviews.GetAccommodationReviewByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		authorID = rv.UserID
	case domain.SubjectGuide:
		rv, err := s.reviews.GetGuideReviewByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		authorID = rv.UserID
	default:
		return nil, ErrValidation
	}

	if authorID != actorID {
		return nil, ErrForbidden
	}

	photo := &domain.ReviewPhoto{
		Subject:  subject,
		ReviewID: reviewID,
		Image:    url,
		Caption:  caption,
	}
	if err := s.reviews.AddPhoto(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *Service) GetPhotos(ctx context.Context, subject domain.ReviewSubject, reviewID int64) ([]domain.ReviewPhoto, error) {
	return s.reviews.GetPhotos(ctx, subject, reviewID)
}

// The stored aggregate is the rounded mean over approved reviews, recomputed
// whenever a review is added or removed.
func (s *Service) recomputeAccommodationRating(ctx context.Context, accommodationID int64) error {
	avg, err := s.reviews.AverageApprovedAccommodationRating(ctx, accommodationID)
	if err != nil {
		return err
	}
	return s.accommodations.UpdateRating(ctx, accommodationID, roundRating(avg))
}

func (s *Service) recomputeGuideRating(ctx context.Context, guideID int64) error {
	avg, err := s.reviews.AverageApprovedGuideRating(ctx, guideID)
	if err != nil {
		return err
	}
	return s.guides.UpdateRating(ctx, guideID, roundRating(avg))
}
