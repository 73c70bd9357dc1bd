package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/greenbowl/greenbowl-backend/internal/app/service"
	apperrors "github.com/greenbowl/greenbowl-backend/internal/errors"
	"github.com/greenbowl/greenbowl-backend/internal/flash"
	"github.com/greenbowl/greenbowl-backend/internal/middleware"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartForm struct {
	Quantity int `form:"quantity"`
}

type UpdateCartForm struct {
	Action string `form:"action" binding:"required"`
}

// AddToCart puts a product in the cart, stacking quantity on repeats
// POST /add_to_cart/:product_id
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	userID, _ := middleware.GetUserID(c)

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "/menu", "Invalid product.")
		return
	}

	// Missing or malformed quantity falls back to 1.
	var form AddToCartForm
	_ = c.ShouldBind(&form)
	if form.Quantity < 1 {
		form.Quantity = 1
	}

	if err := ctrl.cartService.AddItem(userID, uint(productID), form.Quantity); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, "/menu", "That item is not on the menu.")
			return
		}
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		apperrors.ParseAndRedirect(c, "/menu", err, "add to cart")
		return
	}

	apperrors.RedirectWithNotice(c, "/menu", flash.LevelSuccess, "Item added to cart successfully!")
}

// ViewCart renders the cart page with its total
// GET /cart
func (ctrl *CartController) ViewCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	userID, _ := middleware.GetUserID(c)

	cart, err := ctrl.cartService.GetUserCart(userID)
	if err != nil {
		log.Error("Failed to load cart", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRedirect(c, "/menu", err, "load cart")
		return
	}

	render(c, "cart.html", gin.H{
		"CartItems": cart.Items,
		"Total":     cart.Total,
	})
}

// UpdateCart applies an increase/decrease action to a cart line
// POST /cart/update/:cart_id
func (ctrl *CartController) UpdateCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	userID, _ := middleware.GetUserID(c)

	cartID, err := strconv.ParseUint(c.Param("cart_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "/cart", "Invalid cart item.")
		return
	}

	var form UpdateCartForm
	if err := c.ShouldBind(&form); err != nil {
		apperrors.BadRequest(c, "/cart", "Invalid cart action.")
		return
	}

	removed, err := ctrl.cartService.UpdateItem(userID, uint(cartID), form.Action)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartItemForbidden):
			apperrors.Forbidden(c, "/cart", "Unauthorized action.")
		case errors.Is(err, service.ErrCartItemNotFound):
			apperrors.NotFound(c, "/cart", "Cart item not found.")
		case errors.Is(err, service.ErrInvalidCartAction):
			apperrors.BadRequest(c, "/cart", "Invalid cart action.")
		default:
			log.Error("Failed to update cart item", err, map[string]interface{}{
				"user_id": userID,
				"cart_id": cartID,
			})
			apperrors.ParseAndRedirect(c, "/cart", err, "update cart")
		}
		return
	}

	// Decreasing past 1 deletes the line; tell the user it is gone.
	if removed {
		apperrors.RedirectWithNotice(c, "/cart", flash.LevelInfo, "Item removed from cart.")
		return
	}

	c.Redirect(http.StatusSeeOther, "/cart")
}

// RemoveFromCart deletes a cart line
// POST /cart/remove/:cart_id
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	userID, _ := middleware.GetUserID(c)

	cartID, err := strconv.ParseUint(c.Param("cart_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "/cart", "Invalid cart item.")
		return
	}

	if err := ctrl.cartService.RemoveItem(userID, uint(cartID)); err != nil {
		switch {
		case errors.Is(err, service.ErrCartItemForbidden):
			apperrors.Forbidden(c, "/cart", "Unauthorized action.")
		case errors.Is(err, service.ErrCartItemNotFound):
			apperrors.NotFound(c, "/cart", "Cart item not found.")
		default:
			log.Error("Failed to remove cart item", err, map[string]interface{}{
				"user_id": userID,
				"cart_id": cartID,
			})
			apperrors.ParseAndRedirect(c, "/cart", err, "remove from cart")
		}
		return
	}

	apperrors.RedirectWithNotice(c, "/cart", flash.LevelSuccess, "Item removed from cart.")
}
