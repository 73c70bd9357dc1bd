package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	ImagePath   string         `gorm:"default:'placeholder.jpg'" json:"image_path"`
	IsAvailable bool           `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Category  Category   `gorm:"foreignKey:CategoryID" json:"-"`
	CartItems []CartItem `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ImageURL resolves the image path for the templates. Seeded products carry
// bare filenames served from the static bundle; uploaded images already store
// an absolute path such as /uploads/products/<name>.
func (p Product) ImageURL() string {
	if strings.HasPrefix(p.ImagePath, "/") {
		return p.ImagePath
	}
	return "/static/images/" + p.ImagePath
}
