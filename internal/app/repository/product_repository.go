package repository

import (
	"github.com/greenbowl/greenbowl-backend/internal/app/model"
	"github.com/greenbowl/greenbowl-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindByID(id uint) (*model.Product, error)
	FindByName(name string) (*model.Product, error)
	Count() (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"name":        product.Name,
		"category_id": product.CategoryID,
		"price":       product.Price,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"name": product.Name,
		})
		return err
	}

	logger.Debug("Product created in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, id).Error; err != nil {
		logger.Debug("Failed to find product by ID in database", map[string]interface{}{
			"product_id": id,
			"error":      err.Error(),
		})
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByName(name string) (*model.Product, error) {
	var product model.Product
	err := r.db.Where("name = ?", name).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
