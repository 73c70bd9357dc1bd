package service

import (
	"errors"

	"github.com/greenbowl/greenbowl-backend/internal/app/model"
	"github.com/greenbowl/greenbowl-backend/internal/app/repository"
	"github.com/greenbowl/greenbowl-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrCartItemForbidden = errors.New("cart item belongs to another user")
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidCartAction = errors.New("invalid cart action")
)

// Cart update actions accepted by UpdateItem.
const (
	CartActionIncrease = "increase"
	CartActionDecrease = "decrease"
)

// Cart holds a user's line items and their freshly computed total.
type Cart struct {
	Items []model.CartItem
	Total float64
}

type CartService interface {
	GetUserCart(userID uint) (*Cart, error)
	AddItem(userID, productID uint, quantity int) error
	UpdateItem(userID, cartItemID uint, action string) (removed bool, err error)
	RemoveItem(userID, cartItemID uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetUserCart returns the cart with its total recomputed from the current
// rows; nothing is cached.
func (s *cartService) GetUserCart(userID uint) (*Cart, error) {
	cartItems, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch user cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	cart := &Cart{Items: cartItems}
	for i := range cartItems {
		cart.Total += cartItems[i].Subtotal()
	}

	logger.Debug("User cart fetched", map[string]interface{}{
		"user_id": userID,
		"count":   len(cartItems),
		"total":   cart.Total,
	})
	return cart, nil
}

// AddItem accumulates quantity on the (user, product) row through the
// repository upsert; repeated adds stack rather than overwrite.
func (s *cartService) AddItem(userID, productID uint, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	logger.Info("Adding item to cart", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
		"quantity":   quantity,
	})

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
				"user_id":    userID,
				"product_id": productID,
			})
			return ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": productID,
		})
		return err
	}

	if !product.IsAvailable {
		logger.Warn("Cannot add to cart: product unavailable", map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return ErrProductNotFound
	}

	cartItem := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Upsert(cartItem); err != nil {
		logger.Error("Failed to upsert cart item", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return err
	}

	logger.Info("Cart item added successfully", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})
	return nil
}

// UpdateItem applies an increase or decrease of exactly 1. A decrease from
// quantity 1 deletes the row instead; quantity never reaches 0. The removed
// return reports that deletion so the caller can tell the user.
func (s *cartService) UpdateItem(userID, cartItemID uint, action string) (bool, error) {
	logger.Info("Updating cart item", map[string]interface{}{
		"user_id":      userID,
		"cart_item_id": cartItemID,
		"action":       action,
	})

	if action != CartActionIncrease && action != CartActionDecrease {
		return false, ErrInvalidCartAction
	}

	cartItem, err := s.ownedCartItem(userID, cartItemID)
	if err != nil {
		return false, err
	}

	switch action {
	case CartActionIncrease:
		cartItem.Quantity++
	case CartActionDecrease:
		if cartItem.Quantity <= 1 {
			if err := s.cartRepo.Delete(cartItem.ID); err != nil {
				return false, err
			}
			logger.Info("Cart item removed by decrease", map[string]interface{}{
				"cart_item_id": cartItem.ID,
			})
			return true, nil
		}
		cartItem.Quantity--
	}

	if err := s.cartRepo.Update(cartItem); err != nil {
		logger.Error("Failed to update cart item", err, map[string]interface{}{
			"cart_item_id": cartItemID,
		})
		return false, err
	}

	logger.Info("Cart item updated successfully", map[string]interface{}{
		"cart_item_id": cartItemID,
		"quantity":     cartItem.Quantity,
	})
	return false, nil
}

func (s *cartService) RemoveItem(userID, cartItemID uint) error {
	logger.Info("Removing cart item", map[string]interface{}{
		"user_id":      userID,
		"cart_item_id": cartItemID,
	})

	cartItem, err := s.ownedCartItem(userID, cartItemID)
	if err != nil {
		return err
	}

	if err := s.cartRepo.Delete(cartItem.ID); err != nil {
		logger.Error("Failed to delete cart item", err, map[string]interface{}{
			"cart_item_id": cartItemID,
		})
		return err
	}

	logger.Info("Cart item removed", map[string]interface{}{
		"cart_item_id": cartItemID,
	})
	return nil
}

// ownedCartItem loads a cart row and enforces that it belongs to the
// requester. Every mutation goes through this check.
func (s *cartService) ownedCartItem(userID, cartItemID uint) (*model.CartItem, error) {
	cartItem, err := s.cartRepo.FindByID(cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cart item not found", map[string]interface{}{
				"cart_item_id": cartItemID,
			})
			return nil, ErrCartItemNotFound
		}
		logger.Error("Failed to fetch cart item", err, map[string]interface{}{
			"cart_item_id": cartItemID,
		})
		return nil, err
	}

	if cartItem.UserID != userID {
		logger.Warn("Cart item access denied: ownership mismatch", map[string]interface{}{
			"user_id":      userID,
			"cart_item_id": cartItemID,
			"owner_id":     cartItem.UserID,
		})
		return nil, ErrCartItemForbidden
	}
	return cartItem, nil
}
