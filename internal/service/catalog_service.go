package service

import (
	"context"

	"nutriplan/internal/catalog"
	"nutriplan/internal/model"
	"nutriplan/internal/repository"
)

// CatalogService publishes and serves the questionnaire template document
type CatalogService struct {
	catalogRepo repository.CatalogRepo
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepo) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
	}
}

// Publish writes the shipped catalog content as a versioned template
func (s *CatalogService) Publish(ctx context.Context, version string) (*model.CatalogTemplate, error) {
	template := &model.CatalogTemplate{
		Version:       version,
		Questions:     catalog.AllQuestions(),
		BranchingKeys: catalog.BranchingKeys(),
	}
	if err := s.catalogRepo.Publish(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// Latest returns the most recently published template
func (s *CatalogService) Latest(ctx context.Context) (*model.CatalogTemplate, error) {
	return s.catalogRepo.GetLatest(ctx)
}
