package service

import (
	"blogicum/internal/models"
	"blogicum/internal/repository"
	"context"
	"fmt"
)

type CategoryInput struct {
	Title       string
	Slug        string
	Description string
	IsPublished bool
}

type LocationInput struct {
	Name        string
	IsPublished bool
}

// CatalogService manages categories and locations. Access control is the
// router's job: every route of it is behind the Admin role.
type CatalogService interface {
	CreateCategory(ctx context.Context, req CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, slug string, req CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, slug string) error
	CreateLocation(ctx context.Context, req LocationInput) (*models.Location, error)
	UpdateLocation(ctx context.Context, locationID string, req LocationInput) (*models.Location, error)
	DeleteLocation(ctx context.Context, locationID string) error
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
}

func NewCatalogService(categoryRepo repository.CategoryRepository, locationRepo repository.LocationRepository) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

func (s *catalogService) CreateCategory(ctx context.Context, req CategoryInput) (*models.Category, error) {
	category := &models.Category{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		IsPublished: req.IsPublished,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, slug string, req CategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	category.Title = req.Title
	category.Slug = req.Slug
	category.Description = req.Description
	category.IsPublished = req.IsPublished

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, slug string) error {
	return s.categoryRepo.Delete(ctx, slug)
}

func (s *catalogService) CreateLocation(ctx context.Context, req LocationInput) (*models.Location, error) {
	location := &models.Location{
		Name:        req.Name,
		IsPublished: req.IsPublished,
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}

	return location, nil
}

func (s *catalogService) UpdateLocation(ctx context.Context, locationID string, req LocationInput) (*models.Location, error) {
	if !validID(locationID) {
		return nil, fmt.Errorf("местоположение %s: %w", locationID, ErrNotFound)
	}

	location, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}

	location.Name = req.Name
	location.IsPublished = req.IsPublished

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}

	return location, nil
}

func (s *catalogService) DeleteLocation(ctx context.Context, locationID string) error {
	if !validID(locationID) {
		return fmt.Errorf("местоположение %s: %w", locationID, ErrNotFound)
	}

	return s.locationRepo.Delete(ctx, locationID)
}
