package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenbowl/greenbowl-backend/internal/app/service"
	"github.com/greenbowl/greenbowl-backend/internal/middleware"
	"github.com/greenbowl/greenbowl-backend/internal/storage"
)

// AdminController exposes the one-shot setup endpoints and the image
// upload. These are plain-text convenience routes, not a rendered admin UI.
type AdminController struct {
	seedService service.SeedService
	storage     storage.ImageStorage
}

func NewAdminController(seedService service.SeedService, imageStorage storage.ImageStorage) *AdminController {
	return &AdminController{
		seedService: seedService,
		storage:     imageStorage,
	}
}

// Setup creates the menu categories, skipping existing ones
// GET /admin/setup
func (ctrl *AdminController) Setup(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if _, err := ctrl.seedService.SeedCategories(); err != nil {
		log.Error("Category setup failed", err, nil)
		c.String(http.StatusInternalServerError, "Failed to create categories: %v", err)
		return
	}

	c.String(http.StatusOK, "Categories created successfully!")
}

// AddProducts loads the sample menu, skipping existing products
// GET /admin/add_products
func (ctrl *AdminController) AddProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	created, err := ctrl.seedService.SeedSampleProducts()
	if err != nil {
		log.Error("Sample product load failed", err, nil)
		c.String(http.StatusInternalServerError, "Failed to add products: %v", err)
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Added %d vegetarian products successfully!", created))
}

// UploadImage stores a product image and returns its public path
// POST /admin/upload_image
func (ctrl *AdminController) UploadImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := storage.ValidateImageUpload(fileHeader.Size, contentType); err != nil {
		log.Warn("Rejected image upload", map[string]interface{}{
			"filename":     fileHeader.Filename,
			"content_type": contentType,
			"size":         fileHeader.Size,
		})
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files up to 5 MB are allowed"})
		return
	}

	folder := c.DefaultPostForm("folder", "products")

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	path, err := ctrl.storage.Save(c.Request.Context(), folder, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		log.Error("Failed to store image", err, map[string]interface{}{
			"filename": fileHeader.Filename,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	log.Info("Image uploaded", map[string]interface{}{
		"path": path,
	})
	c.JSON(http.StatusOK, gin.H{"path": path})
}
