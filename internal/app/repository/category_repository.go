package repository

import (
	"github.com/greenbowl/greenbowl-backend/internal/app/model"
	"github.com/greenbowl/greenbowl-backend/pkg/logger"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindByName(name string) (*model.Category, error)
	FindAllWithAvailableProducts() ([]model.Category, error)
	Count() (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	logger.Debug("Creating category in database", map[string]interface{}{
		"name": category.Name,
	})

	if err := r.db.Create(category).Error; err != nil {
		logger.Error("Failed to create category in database", err, map[string]interface{}{
			"name": category.Name,
		})
		return err
	}
	return nil
}

func (r *categoryRepository) FindByName(name string) (*model.Category, error) {
	var category model.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindAllWithAvailableProducts loads the whole menu in two queries:
// categories in id order, then one conditioned preload for their available
// products in insertion order. No per-category queries.
func (r *categoryRepository) FindAllWithAvailableProducts() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.
		Order("id ASC").
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_available = ?", true).Order("products.id ASC")
		}).
		Find(&categories).Error
	if err != nil {
		logger.Error("Failed to load categories with products", err, nil)
		return nil, err
	}

	logger.Debug("Categories loaded with available products", map[string]interface{}{
		"count": len(categories),
	})
	return categories, nil
}

func (r *categoryRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
