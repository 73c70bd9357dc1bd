package repository

import (
	"time"

	"github.com/greenbowl/greenbowl-backend/internal/app/model"
	"github.com/greenbowl/greenbowl-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	Upsert(cartItem *model.CartItem) error
	FindByID(id uint) (*model.CartItem, error)
	FindByUserID(userID uint) ([]model.CartItem, error)
	CountByUserID(userID uint) (int64, error)
	Update(cartItem *model.CartItem) error
	Delete(id uint) error
	DeleteByUserID(userID uint) error
	DeleteStale(olderThan time.Time) (int64, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// Upsert inserts a cart row or, when the (user_id, product_id) unique index
// trips, adds the incoming quantity to the existing row. This keeps
// concurrent adds of the same product from losing updates or duplicating
// rows.
func (r *cartRepository) Upsert(cartItem *model.CartItem) error {
	logger.Debug("Upserting cart item in database", map[string]interface{}{
		"user_id":    cartItem.UserID,
		"product_id": cartItem.ProductID,
		"quantity":   cartItem.Quantity,
	})

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", cartItem.Quantity),
			"updated_at": time.Now(),
		}),
	}).Create(cartItem).Error
	if err != nil {
		logger.Error("Failed to upsert cart item in database", err, map[string]interface{}{
			"user_id":    cartItem.UserID,
			"product_id": cartItem.ProductID,
		})
		return err
	}

	logger.Debug("Cart item upserted in database", map[string]interface{}{
		"user_id":    cartItem.UserID,
		"product_id": cartItem.ProductID,
	})
	return nil
}

func (r *cartRepository) FindByID(id uint) (*model.CartItem, error) {
	var cartItem model.CartItem
	err := r.db.Preload("Product").First(&cartItem, id).Error
	if err != nil {
		logger.Debug("Failed to find cart item by ID in database", map[string]interface{}{
			"cart_item_id": id,
			"error":        err.Error(),
		})
		return nil, err
	}
	return &cartItem, nil
}

func (r *cartRepository) FindByUserID(userID uint) ([]model.CartItem, error) {
	var cartItems []model.CartItem
	err := r.db.Where("user_id = ?", userID).
		Preload("Product").
		Order("id ASC").
		Find(&cartItems).Error
	if err != nil {
		logger.Error("Failed to find cart items by user ID in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Debug("Cart items found by user ID in database", map[string]interface{}{
		"user_id": userID,
		"count":   len(cartItems),
	})
	return cartItems, nil
}

func (r *cartRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.CartItem{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *cartRepository) Update(cartItem *model.CartItem) error {
	logger.Debug("Updating cart item in database", map[string]interface{}{
		"cart_item_id": cartItem.ID,
		"quantity":     cartItem.Quantity,
	})

	if err := r.db.Save(cartItem).Error; err != nil {
		logger.Error("Failed to update cart item in database", err, map[string]interface{}{
			"cart_item_id": cartItem.ID,
		})
		return err
	}
	return nil
}

func (r *cartRepository) Delete(id uint) error {
	logger.Debug("Deleting cart item from database", map[string]interface{}{
		"cart_item_id": id,
	})

	if err := r.db.Delete(&model.CartItem{}, id).Error; err != nil {
		logger.Error("Failed to delete cart item from database", err, map[string]interface{}{
			"cart_item_id": id,
		})
		return err
	}
	return nil
}

func (r *cartRepository) DeleteByUserID(userID uint) error {
	logger.Debug("Deleting cart items by user ID from database", map[string]interface{}{
		"user_id": userID,
	})

	if err := r.db.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error; err != nil {
		logger.Error("Failed to delete cart items by user ID from database", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}
	return nil
}

// DeleteStale removes cart rows untouched since olderThan. Only the opt-in
// cleanup scheduler calls this.
func (r *cartRepository) DeleteStale(olderThan time.Time) (int64, error) {
	result := r.db.Where("updated_at < ?", olderThan).Delete(&model.CartItem{})
	if result.Error != nil {
		logger.Error("Failed to delete stale cart items from database", result.Error, map[string]interface{}{
			"older_than": olderThan,
		})
		return 0, result.Error
	}

	logger.Debug("Stale cart items deleted from database", map[string]interface{}{
		"older_than": olderThan,
		"count":      result.RowsAffected,
	})
	return result.RowsAffected, nil
}
