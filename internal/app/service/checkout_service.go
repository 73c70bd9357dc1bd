package service

import (
	"context"
	"errors"
	"time"

	"github.com/greenbowl/greenbowl-backend/internal/app/repository"
	"github.com/greenbowl/greenbowl-backend/pkg/logger"
)

var ErrEmptyCart = errors.New("cart is empty")

type CheckoutService interface {
	PrepareOrder(userID uint) (*Cart, error)
	ProcessPayment(ctx context.Context, userID uint) error
}

type checkoutService struct {
	cartRepo  repository.CartRepository
	stubDelay time.Duration
}

// NewCheckoutService wires the payment stub. stubDelay simulates the
// round trip to a payment gateway; pass 0 in tests.
func NewCheckoutService(cartRepo repository.CartRepository, stubDelay time.Duration) CheckoutService {
	return &checkoutService{
		cartRepo:  cartRepo,
		stubDelay: stubDelay,
	}
}

// PrepareOrder returns the order summary shown on the checkout page.
// An empty cart is rejected so the payment stub never runs on nothing.
func (s *checkoutService) PrepareOrder(userID uint) (*Cart, error) {
	cartItems, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch cart for checkout", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	cart := &Cart{Items: cartItems}
	for i := range cartItems {
		cart.Total += cartItems[i].Subtotal()
	}
	return cart, nil
}

// ProcessPayment runs the mocked payment and clears the cart. The payment
// always succeeds, even on an empty cart: clearing nothing is still a
// success. No order record is written; the cart rows are simply deleted.
func (s *checkoutService) ProcessPayment(ctx context.Context, userID uint) error {
	logger.Info("Processing payment", map[string]interface{}{
		"user_id": userID,
	})

	if s.stubDelay > 0 {
		select {
		case <-time.After(s.stubDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := s.cartRepo.DeleteByUserID(userID); err != nil {
		logger.Error("Failed to clear cart after payment", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	logger.Info("Payment processed, cart cleared", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}
