package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/greenbowl/greenbowl-backend/internal/app/service"
	apperrors "github.com/greenbowl/greenbowl-backend/internal/errors"
	"github.com/greenbowl/greenbowl-backend/internal/middleware"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// Index renders the landing page
// GET /
func (ctrl *CatalogController) Index(c *gin.Context) {
	render(c, "index.html", nil)
}

// Menu renders the menu grouped by category, available items only
// GET /menu
func (ctrl *CatalogController) Menu(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, err := ctrl.catalogService.ListMenu()
	if err != nil {
		log.Error("Failed to load menu", err, nil)
		apperrors.ParseAndRedirect(c, "/", err, "load menu")
		return
	}

	render(c, "menu.html", gin.H{
		"Categories": categories,
	})
}
