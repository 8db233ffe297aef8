package guide

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travelmate/internal/domain"
	"travelmate/internal/repository"
)

type GuideReviewGate interface {
	GetGuideReviews(ctx context.Context, guideID int64, limit, offset int) ([]domain.GuideReview, error)
	HasUserReviewed(ctx context.Context, subject domain.ReviewSubject, subjectID, userID int64) (bool, error)
}

type Service struct {
	guides  *repository.GuideRepository
	users   *repository.UserRepository
	reviews GuideReviewGate
}

func NewService(guides *repository.GuideRepository, users *repository.UserRepository, reviews GuideReviewGate) *Service {
	return &Service{guides: guides, users: users, reviews: reviews}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.LocalGuide, int64, error) {
	guides, total, err := s.guides.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for i := range guides {
		if guides[i].User != nil {
			guides[i].User.PasswordHash = ""
		}
	}
	return guides, total, nil
}

type GuideDetail struct {
	Guide           *domain.LocalGuide   `json:"guide"`
	Reviews         []domain.GuideReview `json:"reviews"`
	UserHasReviewed bool                 `json:"user_has_reviewed"`
}

// Get returns the guide together with its latest approved reviews and, when a
// viewer is known, whether that viewer has already reviewed the guide.
func (s *Service) Get(ctx context.Context, id, viewerID int64) (*GuideDetail, error) {
	guide, err := s.guides.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if guide.User != nil {
		guide.User.PasswordHash = ""
	}

	reviews, err := s.reviews.GetGuideReviews(ctx, id, 5, 0)
	if err != nil {
		return nil, err
	}

	hasReviewed := false
	if viewerID > 0 {
		hasReviewed, err = s.reviews.HasUserReviewed(ctx, domain.SubjectGuide, id, viewerID)
		if err != nil {
			return nil, err
		}
	}

	return &GuideDetail{Guide: guide, Reviews: reviews, UserHasReviewed: hasReviewed}, nil
}

// Create makes the user account and the guide profile inside one transaction
// so a user without a guide profile can never be observed. Staff-only at the
// route level.
func (s *Service) Create(ctx context.Context, req CreateGuideRequest) (*domain.LocalGuide, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" || email == "" || strings.TrimSpace(req.Region) == "" {
		return nil, ErrValidation
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var passwordHash string
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		passwordHash = string(hash)
	}

	var guide *domain.LocalGuide
	err := s.guides.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := &domain.User{
			Username:     username,
			Email:        email,
			PasswordHash: passwordHash,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Phone:        req.Phone,
			Role:         domain.RoleTraveller,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		guide = &domain.LocalGuide{
			UserID:          user.ID,
			Region:          req.Region,
			Description:     req.Description,
			ExperienceYears: req.ExperienceYears,
			Languages:       req.Languages,
			HourlyRate:      req.HourlyRate,
			Phone:           req.Phone,
			References:      req.References,
			IsVerified:      true, // staff-created guides are auto-verified
		}
		if err := tx.Create(guide).Error; err != nil {
			return err
		}

		guide.User = user
		return nil
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	guide.User.PasswordHash = ""
	return guide, nil
}

// Update touches the user row and the guide row in one transaction.
func (s *Service) Update(ctx context.Context, id int64, req UpdateGuideRequest) (*domain.LocalGuide, error) {
	guide, err := s.guides.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err = s.guides.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := guide.User
		if req.Username != nil {
			user.Username = strings.TrimSpace(*req.Username)
		}
		if req.Email != nil {
			user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
		}
		if req.FirstName != nil {
			user.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			user.LastName = *req.LastName
		}
		if err := tx.Save(user).Error; err != nil {
			return err
		}

		if req.Region != nil {
			guide.Region = *req.Region
		}
		if req.Description != nil {
			guide.Description = *req.Description
		}
		if req.ExperienceYears != nil {
			guide.ExperienceYears = *req.ExperienceYears
		}
		if req.Languages != nil {
			guide.Languages = *req.Languages
		}
		if req.HourlyRate != nil {
			guide.HourlyRate = *req.HourlyRate
		}
		if req.Phone != nil {
			guide.Phone = *req.Phone
		}
		if req.References != nil {
			guide.References = *req.References
		}
		if req.IsVerified != nil {
			guide.IsVerified = *req.IsVerified
		}
		return tx.Omit("User").Save(guide).Error
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	guide.User.PasswordHash = ""
	return guide, nil
}

// Delete removes the guide profile and its user account as an explicit pair
// inside one transaction. The user delete is deliberate, not an FK cascade:
// the guide is the child, so deleting it alone would leave the account behind.
func (s *Service) Delete(ctx context.Context, id int64) error {
	guide, err := s.guides.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.guides.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.LocalGuide{}, guide.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.User{}, guide.UserID).Error
	})
}

func (s *Service) SetPhoto(ctx context.Context, id int64, url string) (*domain.LocalGuide, error) {
	guide, err := s.guides.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	guide.GuidePhoto = url
	if err := s.guides.DB().WithContext(ctx).Omit("User").Save(guide).Error; err != nil {
		return nil, err
	}
	if guide.User != nil {
		guide.User.PasswordHash = ""
	}
	return guide, nil
}
