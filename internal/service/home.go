package service

import (
	"context"
	"errors"

	"github.com/homequest/homequest-go/internal/model"
	"github.com/homequest/homequest-go/internal/repository"
)

var (
	ErrHomeNotFound = errors.New("home not found")
	ErrNotOwner     = errors.New("caller does not own this listing")

	ErrAddressRequired     = errors.New("address is required")
	ErrCityRequired        = errors.New("city is required")
	ErrInvalidPrice        = errors.New("price must be positive")
	ErrInvalidLandSize     = errors.New("land_size must be positive")
	ErrInvalidBedrooms     = errors.New("number_of_bedrooms must be positive")
	ErrInvalidBathrooms    = errors.New("number_of_bathrooms must be positive")
	ErrInvalidPropertyType = errors.New("invalid property_type")
	ErrListedDateRequired  = errors.New("listed_date is required")
	ErrImageURLRequired    = errors.New("image url is required")
)

// HomeStore is the listing store contract the home service consumes.
type HomeStore interface {
	Create(ctx context.Context, home *model.Home) error
	GetByID(ctx context.Context, id int64) (*model.Home, error)
	List(ctx context.Context, filter model.HomeFilter) ([]model.Home, error)
	Update(ctx context.Context, id int64, req model.UpdateHomeRequest) error
	Delete(ctx context.Context, id int64) error
	GetRealtorByHomeID(ctx context.Context, homeID int64) (*model.Owner, error)
}

// HomeService handles listing CRUD and the ownership guard on mutation.
type HomeService struct {
	homes HomeStore
}

// NewHomeService creates a new HomeService.
func NewHomeService(homes HomeStore) *HomeService {
	return &HomeService{homes: homes}
}

// ListHomes returns listings matching the filter. An empty result set
// is reported as not found.
func (s *HomeService) ListHomes(ctx context.Context, filter model.HomeFilter) ([]model.HomeResponse, error) {
	homes, err := s.homes.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(homes) == 0 {
		return nil, ErrHomeNotFound
	}

	result := make([]model.HomeResponse, len(homes))
	for i, h := range homes {
		result[i] = homeResponse(h, false)
	}
	return result, nil
}

// GetHome retrieves a single listing with all of its images.
func (s *HomeService) GetHome(ctx context.Context, id int64) (model.HomeResponse, error) {
	home, err := s.homes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHomeNotFound) {
			return model.HomeResponse{}, ErrHomeNotFound
		}
		return model.HomeResponse{}, err
	}
	return homeResponse(*home, true), nil
}

// CreateHome stores a new listing owned by the calling realtor.
func (s *HomeService) CreateHome(ctx context.Context, realtorID int64, req model.CreateHomeRequest) (model.HomeResponse, error) {
	propertyType, err := validateCreateHome(req)
	if err != nil {
		return model.HomeResponse{}, err
	}

	home := &model.Home{
		Address:           req.Address,
		City:              req.City,
		Price:             req.Price,
		LandSize:          req.LandSize,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		PropertyType:      propertyType,
		ListedDate:        req.ListedDate,
		RealtorID:         realtorID,
	}
	for _, img := range req.Images {
		home.Images = append(home.Images, img.URL)
	}

	if err := s.homes.Create(ctx, home); err != nil {
		return model.HomeResponse{}, err
	}

	return homeResponse(*home, true), nil
}

// UpdateHome applies a partial update to a listing the caller owns.
func (s *HomeService) UpdateHome(ctx context.Context, callerID, homeID int64, req model.UpdateHomeRequest) (model.HomeResponse, error) {
	if err := validateUpdateHome(req); err != nil {
		return model.HomeResponse{}, err
	}

	if err := s.requireOwner(ctx, callerID, homeID); err != nil {
		return model.HomeResponse{}, err
	}

	if err := s.homes.Update(ctx, homeID, req); err != nil {
		if errors.Is(err, repository.ErrHomeNotFound) {
			return model.HomeResponse{}, ErrHomeNotFound
		}
		return model.HomeResponse{}, err
	}

	return s.GetHome(ctx, homeID)
}

// DeleteHome removes a listing the caller owns.
func (s *HomeService) DeleteHome(ctx context.Context, callerID, homeID int64) error {
	if err := s.requireOwner(ctx, callerID, homeID); err != nil {
		return err
	}

	err := s.homes.Delete(ctx, homeID)
	if errors.Is(err, repository.ErrHomeNotFound) {
		return ErrHomeNotFound
	}
	return err
}

// GetOwner resolves the realtor who owns a listing.
func (s *HomeService) GetOwner(ctx context.Context, homeID int64) (*model.Owner, error) {
	owner, err := s.homes.GetRealtorByHomeID(ctx, homeID)
	if err != nil {
		if errors.Is(err, repository.ErrHomeNotFound) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}
	return owner, nil
}

// requireOwner resolves a listing's owning realtor and rejects callers
// who are not that realtor. It performs no mutation itself.
func (s *HomeService) requireOwner(ctx context.Context, callerID, homeID int64) error {
	owner, err := s.GetOwner(ctx, homeID)
	if err != nil {
		return err
	}
	if owner.ID != callerID {
		return ErrNotOwner
	}
	return nil
}

func homeResponse(h model.Home, allImages bool) model.HomeResponse {
	resp := model.HomeResponse{
		ID:                h.ID,
		Address:           h.Address,
		City:              h.City,
		Price:             h.Price,
		LandSize:          h.LandSize,
		NumberOfBedrooms:  h.NumberOfBedrooms,
		NumberOfBathrooms: h.NumberOfBathrooms,
		PropertyType:      h.PropertyType,
		ListedDate:        h.ListedDate,
	}
	if len(h.Images) > 0 {
		resp.Image = h.Images[0]
	}
	if allImages {
		resp.Images = h.Images
	}
	return resp
}

func validateCreateHome(req model.CreateHomeRequest) (model.PropertyType, error) {
	if req.Address == "" {
		return "", ErrAddressRequired
	}
	if req.City == "" {
		return "", ErrCityRequired
	}
	if req.Price <= 0 {
		return "", ErrInvalidPrice
	}
	if req.LandSize <= 0 {
		return "", ErrInvalidLandSize
	}
	if req.NumberOfBedrooms <= 0 {
		return "", ErrInvalidBedrooms
	}
	if req.NumberOfBathrooms <= 0 {
		return "", ErrInvalidBathrooms
	}
	if req.ListedDate.IsZero() {
		return "", ErrListedDateRequired
	}
	propertyType, ok := model.ParsePropertyType(req.PropertyType)
	if !ok {
		return "", ErrInvalidPropertyType
	}
	for _, img := range req.Images {
		if img.URL == "" {
			return "", ErrImageURLRequired
		}
	}
	return propertyType, nil
}

func validateUpdateHome(req model.UpdateHomeRequest) error {
	if req.Address != nil && *req.Address == "" {
		return ErrAddressRequired
	}
	if req.City != nil && *req.City == "" {
		return ErrCityRequired
	}
	if req.Price != nil && *req.Price <= 0 {
		return ErrInvalidPrice
	}
	if req.LandSize != nil && *req.LandSize <= 0 {
		return ErrInvalidLandSize
	}
	if req.NumberOfBedrooms != nil && *req.NumberOfBedrooms <= 0 {
		return ErrInvalidBedrooms
	}
	if req.NumberOfBathrooms != nil && *req.NumberOfBathrooms <= 0 {
		return ErrInvalidBathrooms
	}
	if req.PropertyType != nil {
		if _, ok := model.ParsePropertyType(*req.PropertyType); !ok {
			return ErrInvalidPropertyType
		}
	}
	if req.ListedDate != nil && req.ListedDate.IsZero() {
		return ErrListedDateRequired
	}
	return nil
}
