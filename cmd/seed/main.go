package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/greenbowl/greenbowl-backend/config"
	"github.com/greenbowl/greenbowl-backend/internal/app/repository"
	"github.com/greenbowl/greenbowl-backend/internal/app/service"
	"github.com/greenbowl/greenbowl-backend/internal/db"
	"github.com/greenbowl/greenbowl-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// Seeds the menu. With no arguments it loads the built-in sample menu;
// given an XLSX path it imports the menu from the spreadsheet instead.
// Expected columns: category, name, description, price, image_path.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Initialize(logger.Config{
		Level:  "info",
		Format: "console",
	})

	database, err := db.Connect(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close(database)

	if err := db.Migrate(database); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	categoryRepo := repository.NewCategoryRepository(database)
	productRepo := repository.NewProductRepository(database)
	seedService := service.NewSeedService(categoryRepo, productRepo)

	createdCategories, err := seedService.SeedCategories()
	if err != nil {
		log.Fatal("Failed to seed categories:", err)
	}
	fmt.Printf("Categories created: %d\n", createdCategories)

	if len(os.Args) < 2 {
		created, err := seedService.SeedSampleProducts()
		if err != nil {
			log.Fatal("Failed to seed sample products:", err)
		}
		fmt.Printf("Sample products created: %d\n", created)
		return
	}

	filePath := os.Args[1]
	fmt.Printf("Reading XLSX file: %s\n", filePath)

	products, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}
	fmt.Printf("Total products to import: %d\n", len(products))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	created, err := seedService.ImportProducts(products)
	if err != nil {
		log.Fatal("Failed to import products:", err)
	}
	fmt.Printf("Import completed: %d products created\n", created)
}

func readProductsFromXLSX(filePath string) ([]service.ProductImport, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var products []service.ProductImport
	skipped := 0

	// Row 0 is the header.
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 4 {
			skipped++
			continue
		}

		category := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		description := strings.TrimSpace(row[2])
		priceStr := strings.TrimSpace(row[3])

		imagePath := ""
		if len(row) > 4 {
			imagePath = strings.TrimSpace(row[4])
		}

		if category == "" || name == "" || priceStr == "" {
			skipped++
			continue
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price <= 0 {
			skipped++
			continue
		}

		products = append(products, service.ProductImport{
			CategoryName: category,
			Name:         name,
			Description:  description,
			Price:        price,
			ImagePath:    imagePath,
		})
	}

	if skipped > 0 {
		fmt.Printf("Skipped %d invalid rows\n", skipped)
	}
	return products, nil
}
