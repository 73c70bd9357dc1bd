package service

import (
	"github.com/greenbowl/greenbowl-backend/internal/app/model"
	"github.com/greenbowl/greenbowl-backend/internal/app/repository"
	"github.com/greenbowl/greenbowl-backend/pkg/logger"
)

type CatalogService interface {
	ListMenu() ([]model.Category, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(categoryRepo repository.CategoryRepository) CatalogService {
	return &catalogService{categoryRepo: categoryRepo}
}

// ListMenu returns every category in id order, each carrying its available
// products in insertion order. Unavailable products never appear.
func (s *catalogService) ListMenu() ([]model.Category, error) {
	categories, err := s.categoryRepo.FindAllWithAvailableProducts()
	if err != nil {
		logger.Error("Failed to list menu", err, nil)
		return nil, err
	}

	logger.Debug("Menu listed", map[string]interface{}{
		"categories": len(categories),
	})
	return categories, nil
}
