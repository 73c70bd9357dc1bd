package controller

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/greenbowl/greenbowl-backend/internal/app/model"
	"github.com/greenbowl/greenbowl-backend/internal/app/repository"
	"github.com/greenbowl/greenbowl-backend/internal/app/service"
	"github.com/greenbowl/greenbowl-backend/internal/db"
	"github.com/greenbowl/greenbowl-backend/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCheckoutControllerTest(t *testing.T) (*gin.Engine, *gorm.DB, *model.User, *model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	checkoutService := service.NewCheckoutService(cartRepo, 0)
	checkoutController := NewCheckoutController(checkoutService)

	user := &model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	testDB.Create(user)

	category := &model.Category{Name: "Desserts"}
	testDB.Create(category)
	product := &model.Product{
		Name:        "Chocolate Cake",
		Price:       149.00,
		CategoryID:  category.ID,
		IsAvailable: true,
	}
	testDB.Create(product)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLGlob("../../../web/templates/*.html")

	asUser := func(c *gin.Context) {
		c.Set(middleware.UserIDKey, user.ID)
		c.Set(middleware.UsernameKey, user.Username)
	}

	router.GET("/checkout", asUser, checkoutController.Checkout)
	router.POST("/process-payment", asUser, checkoutController.ProcessPayment)
	router.GET("/payment-success", asUser, checkoutController.PaymentSuccess)
	router.GET("/orders", asUser, checkoutController.Orders)

	return router, testDB, user, product
}

func TestCheckoutController_Checkout_EmptyCart(t *testing.T) {
	router, _, _, _ := setupCheckoutControllerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))
}

func TestCheckoutController_Checkout_ShowsSummary(t *testing.T) {
	router, testDB, user, product := setupCheckoutControllerTest(t)

	require.NoError(t, testDB.Create(&model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  2,
	}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Chocolate Cake")
	assert.Contains(t, w.Body.String(), "298.00")
}

func TestCheckoutController_ProcessPayment_ClearsCart(t *testing.T) {
	router, testDB, user, product := setupCheckoutControllerTest(t)

	require.NoError(t, testDB.Create(&model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  2,
	}).Error)

	w := postForm(router, "/process-payment", url.Values{})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/payment-success", w.Header().Get("Location"))

	var count int64
	testDB.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
}

func TestCheckoutController_ProcessPayment_EmptyCart(t *testing.T) {
	router, _, _, _ := setupCheckoutControllerTest(t)

	// Paying with nothing in the cart is still a success; there is no
	// failure branch on the payment stub.
	w := postForm(router, "/process-payment", url.Values{})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/payment-success", w.Header().Get("Location"))
}

func TestCheckoutController_Orders_Empty(t *testing.T) {
	router, _, _, _ := setupCheckoutControllerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "no past orders")
}
