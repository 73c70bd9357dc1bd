package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/greenbowl/greenbowl-backend/internal/app/model"
	"github.com/greenbowl/greenbowl-backend/internal/app/repository"
	"github.com/greenbowl/greenbowl-backend/internal/app/service"
	"github.com/greenbowl/greenbowl-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalogControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	categoryRepo := repository.NewCategoryRepository(testDB)
	catalogService := service.NewCatalogService(categoryRepo)
	catalogController := NewCatalogController(catalogService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLGlob("../../../web/templates/*.html")

	router.GET("/", catalogController.Index)
	router.GET("/menu", catalogController.Menu)

	return router, testDB
}

func TestCatalogController_Index(t *testing.T) {
	router, _ := setupCatalogControllerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to GreenBowl")
}

func TestCatalogController_Menu(t *testing.T) {
	router, testDB := setupCatalogControllerTest(t)

	category := &model.Category{Name: "Beverages"}
	require.NoError(t, testDB.Create(category).Error)
	require.NoError(t, testDB.Create(&model.Product{
		Name: "Masala Chai", Description: "Traditional Indian spiced tea",
		Price: 39.00, CategoryID: category.ID, IsAvailable: true,
	}).Error)
	require.NoError(t, testDB.Create(&model.Product{
		Name: "Off Menu Drink", Price: 10.00, CategoryID: category.ID, IsAvailable: false,
	}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Beverages")
	assert.Contains(t, w.Body.String(), "Masala Chai")
	assert.NotContains(t, w.Body.String(), "Off Menu Drink")
}

func TestCatalogController_Menu_ImagePaths(t *testing.T) {
	router, testDB := setupCatalogControllerTest(t)

	category := &model.Category{Name: "Main Dishes"}
	require.NoError(t, testDB.Create(category).Error)

	// Seeded products store a bare filename, admin uploads an absolute path.
	require.NoError(t, testDB.Create(&model.Product{
		Name: "Paneer Tikka", Price: 249.00, CategoryID: category.ID,
		ImagePath: "paneer_tikka.jpg", IsAvailable: true,
	}).Error)
	require.NoError(t, testDB.Create(&model.Product{
		Name: "Special Thali", Price: 299.00, CategoryID: category.ID,
		ImagePath: "/uploads/products/special_thali.jpg", IsAvailable: true,
	}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `src="/static/images/paneer_tikka.jpg"`)
	assert.Contains(t, w.Body.String(), `src="/uploads/products/special_thali.jpg"`)
}
