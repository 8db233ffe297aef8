package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"travelmate/internal/domain"
	"travelmate/internal/pkg/validator"
	"travelmate/internal/repository"
)

const defaultCountry = "Bangladesh"

type Service struct {
	destinations   DestinationRepository
	accommodations AccommodationRepository
	reviews        ReviewGate
}

func NewService(destinations DestinationRepository, accommodations AccommodationRepository, reviews ReviewGate) *Service {
	return &Service{destinations: destinations, accommodations: accommodations, reviews: reviews}
}

func canManage(resourceOwner, actorID int64, isStaff bool) bool {
	return isStaff || resourceOwner == actorID
}

// --- destinations ---

func (s *Service) ListDestinations(ctx context.Context, f repository.DestinationFilters) ([]domain.Destination, int64, error) {
	return s.destinations.GetAll(ctx, f)
}

type DestinationDetail struct {
	Destination     *domain.Destination        `json:"destination"`
	Accommodations  []domain.Accommodation     `json:"accommodations"`
	Reviews         []domain.DestinationReview `json:"reviews"`
	UserHasReviewed bool                       `json:"user_has_reviewed"`
}

func (s *Service) GetDestination(ctx context.Context, id, viewerID int64) (*DestinationDetail, error) {
	destination, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	accommodations, _, err := s.accommodations.GetAll(ctx, repository.AccommodationFilters{
		DestinationID: id,
		Limit:         50,
	})
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.GetDestinationReviews(ctx, id, 10, 0)
	if err != nil {
		return nil, err
	}

	hasReviewed := false
	if viewerID > 0 {
		hasReviewed, err = s.reviews.HasUserReviewed(ctx, domain.SubjectDestination, id, viewerID)
		if err != nil {
			return nil, err
		}
	}

	return &DestinationDetail{
		Destination:     destination,
		Accommodations:  accommodations,
		Reviews:         reviews,
		UserHasReviewed: hasReviewed,
	}, nil
}

func (s *Service) CreateDestination(ctx context.Context, actorID int64, req CreateDestinationRequest) (*domain.Destination, error) {
	category := domain.DestinationCategory(req.Category)
	if !domain.ValidDestinationCategory(category) {
		return nil, ErrValidation
	}

	country := strings.TrimSpace(req.Country)
	if country == "" {
		country = defaultCountry
	}

	destination := &domain.Destination{
		Name:            req.Name,
		Description:     req.Description,
		Category:        category,
		Location:        req.Location,
		State:           req.State,
		Country:         country,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		BestTimeToVisit: req.BestTimeToVisit,
		EntryFee:        req.EntryFee,
		CreatedBy:       actorID,
	}
	if fields := validator.Validate(destination); fields != nil {
		return nil, ErrValidation
	}
	if err := s.destinations.Create(ctx, destination); err != nil {
		return nil, err
	}
	return destination, nil
}

func (s *Service) UpdateDestination(ctx context.Context, actorID int64, isStaff bool, id int64, req UpdateDestinationRequest) (*domain.Destination, error) {
	destination, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !canManage(destination.CreatedBy, actorID, isStaff) {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		destination.Name = *req.Name
	}
	if req.Description != nil {
		destination.Description = *req.Description
	}
	if req.Category != nil {
		category := domain.DestinationCategory(*req.Category)
		if !domain.ValidDestinationCategory(category) {
			return nil, ErrValidation
		}
		destination.Category = category
	}
	if req.Location != nil {
		destination.Location = *req.Location
	}
	if req.State != nil {
		destination.State = *req.State
	}
	if req.Country != nil {
		destination.Country = *req.Country
	}
	if req.Latitude != nil {
		destination.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		destination.Longitude = req.Longitude
	}
	if req.BestTimeToVisit != nil {
		destination.BestTimeToVisit = *req.BestTimeToVisit
	}
	if req.EntryFee != nil {
		if *req.EntryFee < 0 {
			return nil, ErrValidation
		}
		destination.EntryFee = *req.EntryFee
	}
	if req.IsFeatured != nil {
		// only staff curate the featured list
		if !isStaff {
			return nil, ErrForbidden
		}
		destination.IsFeatured = *req.IsFeatured
	}

	if err := s.destinations.Update(ctx, destination); err != nil {
		return nil, err
	}
	return destination, nil
}

func (s *Service) DeleteDestination(ctx context.Context, actorID int64, isStaff bool, id int64) error {
	destination, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !canManage(destination.CreatedBy, actorID, isStaff) {
		return ErrForbidden
	}
	return s.destinations.Delete(ctx, id)
}

func (s *Service) AddDestinationPhoto(ctx context.Context, actorID int64, isStaff bool, destinationID int64, url, caption string, isPrimary bool) (*domain.DestinationPhoto, error) {
	destination, err := s.destinations.GetByID(ctx, destinationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !canManage(destination.CreatedBy, actorID, isStaff) {
		return nil, ErrForbidden
	}

	photo := &domain.DestinationPhoto{
		DestinationID: destinationID,
		Image:         url,
		Caption:       caption,
		UploadedBy:    actorID,
	}
	if err := s.destinations.AddPhoto(ctx, photo); err != nil {
		return nil, err
	}
	if isPrimary {
		if err := s.destinations.SetPrimaryPhoto(ctx, destinationID, photo.ID); err != nil {
			return nil, err
		}
		photo.IsPrimary = true
	}
	return photo, nil
}

func (s *Service) SetPrimaryDestinationPhoto(ctx context.Context, actorID int64, isStaff bool, destinationID, photoID int64) error {
	destination, err := s.destinations.GetByID(ctx, destinationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !canManage(destination.CreatedBy, actorID, isStaff) {
		return ErrForbidden
	}
	if err := s.destinations.SetPrimaryPhoto(ctx, destinationID, photoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) DeleteDestinationPhoto(ctx context.Context, actorID int64, isStaff bool, destinationID, photoID int64) error {
	destination, err := s.destinations.GetByID(ctx, destinationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !canManage(destination.CreatedBy, actorID, isStaff) {
		return ErrForbidden
	}
	if err := s.destinations.DeletePhoto(ctx, destinationID, photoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) AddDestinationFeature(ctx context.Context, actorID int64, isStaff bool, destinationID int64, req AddFeatureRequest) (*domain.DestinationFeature, error) {
	destination, err := s.destinations.GetByID(ctx, destinationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !canManage(destination.CreatedBy, actorID, isStaff) {
		return nil, ErrForbidden
	}

	feature := &domain.DestinationFeature{
		DestinationID: destinationID,
		Name:          req.Name,
		Description:   req.Description,
	}
	if err := s.destinations.AddFeature(ctx, feature); err != nil {
		return nil, err
	}
	return feature, nil
}

func (s *Service) DeleteDestinationFeature(ctx context.Context, actorID int64, isStaff bool, destinationID, featureID int64) error {
	destination, err := s.destinations.GetByID(ctx, destinationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !canManage(destination.CreatedBy, actorID, isStaff) {
		return ErrForbidden
	}
	if err := s.destinations.DeleteFeature(ctx, destinationID, featureID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// --- accommodations ---

func (s *Service) ListAccommodations(ctx context.Context, f repository.AccommodationFilters) ([]domain.Accommodation, int64, error) {
	return s.accommodations.GetAll(ctx, f)
}

type AccommodationDetail struct {
	Accommodation   *domain.Accommodation        `json:"accommodation"`
	Reviews         []domain.AccommodationReview `json:"reviews"`
	UserHasReviewed bool                         `json:"user_has_reviewed"`
}

func (s *Service) GetAccommodation(ctx context.Context, id, viewerID int64) (*AccommodationDetail, error) {
	accommodation, err := s.accommodations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reviews, err := s.reviews.GetAccommodationReviews(ctx, id, 10, 0)
	if err != nil {
		return nil, err
	}

	hasReviewed := false
	if viewerID > 0 {
		hasReviewed, err = s.reviews.HasUserReviewed(ctx, domain.SubjectAccommodation, id, viewerID)
		if err != nil {
			return nil, err
		}
	}

	return &AccommodationDetail{
		Accommodation:   accommodation,
		Reviews:         reviews,
		UserHasReviewed: hasReviewed,
	}, nil
}

func (s *Service) CreateAccommodation(ctx context.Context, actorID int64, req CreateAccommodationRequest) (*domain.Accommodation, error) {
	accType := domain.AccommodationType(req.Type)
	if !domain.ValidAccommodationType(accType) {
		return nil, ErrValidation
	}
	if _, err := s.destinations.GetByID(ctx, req.DestinationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	maxGuests := req.MaxGuests
	if maxGuests <= 0 {
		maxGuests = domain.DefaultMaxGuests
	}
	checkIn := req.CheckInTime
	if checkIn == "" {
		checkIn = domain.DefaultCheckInTime
	}
	checkOut := req.CheckOutTime
	if checkOut == "" {
		checkOut = domain.DefaultCheckOutTime
	}

	accommodation := &domain.Accommodation{
		Name:          req.Name,
		Type:          accType,
		DestinationID: req.DestinationID,
		Address:       req.Address,
		Description:   req.Description,
		Amenities:     req.Amenities,
		PricePerNight: req.PricePerNight,
		MaxGuests:     maxGuests,
		Phone:         req.Phone,
		Email:         req.Email,
		Website:       req.Website,
		IsAvailable:   true,
		CheckInTime:   checkIn,
		CheckOutTime:  checkOut,
		CreatedBy:     actorID,
	}
	if fields := validator.Validate(accommodation); fields != nil {
		return nil, ErrValidation
	}
	if err := s.accommodations.Create(ctx, accommodation); err != nil {
		return nil, err
	}
	return accommodation, nil
}

func (s *Service) UpdateAccommodation(ctx context.Context, id int64, req UpdateAccommodationRequest) (*domain.Accommodation, error) {
	accommodation, err := s.accommodations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		accommodation.Name = *req.Name
	}
	if req.Type != nil {
		accType := domain.AccommodationType(*req.Type)
		if !domain.ValidAccommodationType(accType) {
			return nil, ErrValidation
		}
		accommodation.Type = accType
	}
	if req.Address != nil {
		accommodation.Address = *req.Address
	}
	if req.Description != nil {
		accommodation.Description = *req.Description
	}
	if req.Amenities != nil {
		accommodation.Amenities = *req.Amenities
	}
	if req.PricePerNight != nil {
		if *req.PricePerNight <= 0 {
			return nil, ErrValidation
		}
		accommodation.PricePerNight = *req.PricePerNight
	}
	if req.MaxGuests != nil {
		if *req.MaxGuests <= 0 {
			return nil, ErrValidation
		}
		accommodation.MaxGuests = *req.MaxGuests
	}
	if req.Phone != nil {
		accommodation.Phone = *req.Phone
	}
	if req.Email != nil {
		accommodation.Email = *req.Email
	}
	if req.Website != nil {
		accommodation.Website = *req.Website
	}
	if req.IsAvailable != nil {
		accommodation.IsAvailable = *req.IsAvailable
	}
	if req.CheckInTime != nil {
		accommodation.CheckInTime = *req.CheckInTime
	}
	if req.CheckOutTime != nil {
		accommodation.CheckOutTime = *req.CheckOutTime
	}

	if err := s.accommodations.Update(ctx, accommodation); err != nil {
		return nil, err
	}
	return accommodation, nil
}

func (s *Service) DeleteAccommodation(ctx context.Context, id int64) error {
	if _, err := s.accommodations.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.accommodations.Delete(ctx, id)
}

func (s *Service) SetAccommodationImage(ctx context.Context, id int64, url string) (*domain.Accommodation, error) {
	accommodation, err := s.accommodations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	accommodation.Image = url
	if err := s.accommodations.Update(ctx, accommodation); err != nil {
		return nil, err
	}
	return accommodation, nil
}
