package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/greenbowl/greenbowl-backend/internal/app/service"
	apperrors "github.com/greenbowl/greenbowl-backend/internal/errors"
	"github.com/greenbowl/greenbowl-backend/internal/flash"
	"github.com/greenbowl/greenbowl-backend/internal/middleware"
)

type CheckoutController struct {
	checkoutService service.CheckoutService
}

func NewCheckoutController(checkoutService service.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
	}
}

// Checkout renders the order summary before payment
// GET /checkout
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	userID, _ := middleware.GetUserID(c)

	cart, err := ctrl.checkoutService.PrepareOrder(userID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			apperrors.RedirectWithNotice(c, "/cart", flash.LevelWarning, "Your cart is empty!")
			return
		}
		log.Error("Failed to prepare checkout", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRedirect(c, "/cart", err, "checkout")
		return
	}

	render(c, "checkout.html", gin.H{
		"CartItems": cart.Items,
		"Total":     cart.Total,
	})
}

// ProcessPayment runs the mocked payment and clears the cart
// POST /process-payment
func (ctrl *CheckoutController) ProcessPayment(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	userID, _ := middleware.GetUserID(c)

	if err := ctrl.checkoutService.ProcessPayment(c.Request.Context(), userID); err != nil {
		log.Error("Payment processing failed", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRedirect(c, "/checkout", err, "process payment")
		return
	}

	apperrors.RedirectWithNotice(c, "/payment-success", flash.LevelSuccess, "Payment successful! Your order has been placed.")
}

// PaymentSuccess renders the confirmation page
// GET /payment-success
func (ctrl *CheckoutController) PaymentSuccess(c *gin.Context) {
	render(c, "payment_success.html", nil)
}

// Orders renders the order history page. Orders are not persisted, so the
// page is always empty; it exists so the navigation has somewhere to go.
// GET /orders
func (ctrl *CheckoutController) Orders(c *gin.Context) {
	render(c, "orders.html", gin.H{
		"Orders": []struct{}{},
	})
}
