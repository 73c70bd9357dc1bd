package service

import (
	"errors"

	"github.com/greenbowl/greenbowl-backend/internal/app/model"
	"github.com/greenbowl/greenbowl-backend/internal/app/repository"
	"github.com/greenbowl/greenbowl-backend/pkg/logger"
	"gorm.io/gorm"
)

// Category names in menu display order.
var seedCategoryNames = []string{"Main Dishes", "Snacks", "Beverages", "Desserts"}

type seedProduct struct {
	Name        string
	Description string
	Price       float64
	Category    string
	ImagePath   string
}

var seedProducts = []seedProduct{
	{"Margherita Pizza", "Fresh mozzarella, tomato sauce, and basil leaves", 399.00, "Main Dishes", "MainDishes/pizza_margherita.jpg"},
	{"Vegetable Pasta", "Creamy alfredo sauce with mixed vegetables", 299.00, "Main Dishes", "MainDishes/pasta_alfredo.jpg"},
	{"Vegetable Fried Rice", "Aromatic basmati rice with mixed vegetables", 249.00, "Main Dishes", "MainDishes/rice_fried.jpg"},
	{"Vegetable Hakka Noodles", "Stir-fried noodles with fresh vegetables", 219.00, "Main Dishes", "MainDishes/noodles_hakka.jpg"},
	{"Paneer Wrap", "Grilled paneer with fresh vegetables in a tortilla", 179.00, "Main Dishes", "MainDishes/wrap_paneer.jpg"},
	{"Cheese Quesadilla", "Melted cheese in a crispy tortilla", 229.00, "Main Dishes", "MainDishes/quesadilla_cheese.jpg"},
	{"Veggie Burger", "Plant-based patty with fresh vegetables", 189.00, "Main Dishes", "MainDishes/burger_veggie.jpg"},
	{"Grilled Cheese Sandwich", "Golden grilled sandwich with melted cheese", 159.00, "Main Dishes", "MainDishes/sandwich_cheese.jpg"},
	{"French Fries", "Crispy golden potato fries", 99.00, "Snacks", "Snacks/fries_regular.jpg"},
	{"Loaded Nachos", "Tortilla chips with cheese and toppings", 149.00, "Snacks", "Snacks/nachos_loaded.jpg"},
	{"Vegetable Samosa", "Crispy pastry filled with spiced vegetables", 49.00, "Snacks", "Snacks/samosa_veg.jpg"},
	{"Onion Pakora", "Deep-fried onion fritters", 79.00, "Snacks", "Snacks/pakora_onion.jpg"},
	{"Vegetable Spring Rolls", "Crispy rolls filled with fresh vegetables", 119.00, "Snacks", "Snacks/roll_spring.jpg"},
	{"Potato Wedges", "Seasoned potato wedges", 109.00, "Snacks", "Snacks/wedges_potato.jpg"},
	{"Cheese Sticks", "Fried mozzarella sticks", 129.00, "Snacks", "Snacks/sticks_cheese.jpg"},
	{"Latte", "Espresso with steamed milk", 89.00, "Beverages", "Beverages/coffee_latte.jpg"},
	{"Masala Chai", "Traditional Indian spiced tea", 39.00, "Beverages", "Beverages/tea_masala.jpg"},
	{"Fresh Orange Juice", "Freshly squeezed orange juice", 69.00, "Beverages", "Beverages/juice_orange.jpg"},
	{"Mango Smoothie", "Creamy mango smoothie", 99.00, "Beverages", "Beverages/smoothie_mango.jpg"},
	{"Cola", "Chilled cola", 49.00, "Beverages", "Beverages/soda_cola.jpg"},
	{"Bottled Water", "Pure drinking water", 29.00, "Beverages", "Beverages/water_bottle.jpg"},
	{"Iced Tea", "Refreshing iced tea", 59.00, "Beverages", "Beverages/tea_iced.jpg"},
	{"Chocolate Cake", "Rich chocolate cake slice", 149.00, "Desserts", "Desserts/cake_chocolate.jpg"},
	{"Vanilla Ice Cream", "Creamy vanilla ice cream", 79.00, "Desserts", "Desserts/icecream_vanilla.jpg"},
	{"Chocolate Chip Cookie", "Homemade chocolate chip cookie", 39.00, "Desserts", "Desserts/cookie_chocolate.jpg"},
	{"Fudge Brownie", "Decadent chocolate brownie", 119.00, "Desserts", "Desserts/brownie_fudge.jpg"},
	{"Strawberry Ice Cream", "Fresh strawberry ice cream", 89.00, "Desserts", "Desserts/icecream_strawberry.jpg"},
}

type SeedService interface {
	SeedCategories() (int, error)
	SeedSampleProducts() (int, error)
	ImportProducts(products []ProductImport) (int, error)
}

// ProductImport is one row of an external menu import, matched to a
// category by name.
type ProductImport struct {
	CategoryName string
	Name         string
	Description  string
	Price        float64
	ImagePath    string
}

type seedService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewSeedService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) SeedService {
	return &seedService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// SeedCategories creates the standard menu categories, skipping names
// that already exist. Safe to call repeatedly.
func (s *seedService) SeedCategories() (int, error) {
	created := 0
	for _, name := range seedCategoryNames {
		_, err := s.categoryRepo.FindByName(name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		if err := s.categoryRepo.Create(&model.Category{Name: name}); err != nil {
			logger.Error("Failed to create category", err, map[string]interface{}{
				"name": name,
			})
			return created, err
		}
		created++
	}

	logger.Info("Categories seeded", map[string]interface{}{
		"created": created,
	})
	return created, nil
}

// SeedSampleProducts loads the sample menu, skipping products whose
// name already exists. Categories must be seeded first.
func (s *seedService) SeedSampleProducts() (int, error) {
	imports := make([]ProductImport, 0, len(seedProducts))
	for _, p := range seedProducts {
		imports = append(imports, ProductImport{
			CategoryName: p.Category,
			Name:         p.Name,
			Description:  p.Description,
			Price:        p.Price,
			ImagePath:    p.ImagePath,
		})
	}
	return s.ImportProducts(imports)
}

func (s *seedService) ImportProducts(products []ProductImport) (int, error) {
	categoryIDs := make(map[string]uint)

	created := 0
	for _, p := range products {
		categoryID, ok := categoryIDs[p.CategoryName]
		if !ok {
			category, err := s.categoryRepo.FindByName(p.CategoryName)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					logger.Warn("Skipping product: unknown category", map[string]interface{}{
						"product":  p.Name,
						"category": p.CategoryName,
					})
					continue
				}
				return created, err
			}
			categoryID = category.ID
			categoryIDs[p.CategoryName] = categoryID
		}

		_, err := s.productRepo.FindByName(p.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		product := &model.Product{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			CategoryID:  categoryID,
			ImagePath:   p.ImagePath,
			IsAvailable: true,
		}
		if err := s.productRepo.Create(product); err != nil {
			logger.Error("Failed to create product", err, map[string]interface{}{
				"name": p.Name,
			})
			return created, err
		}
		created++
	}

	logger.Info("Products imported", map[string]interface{}{
		"created": created,
		"total":   len(products),
	})
	return created, nil
}
