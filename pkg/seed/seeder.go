// Package seed loads the sample catalog and bills used for demos and local
// development. Production deployments start with empty stores.
package seed

import (
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/models"
	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/store"
)

// SampleProducts returns the demo catalog.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			ID:       "1",
			Name:     "Instant Noodles",
			Category: models.CategoryNoodles,
			Price:    decimal.RequireFromString("2.50"),
			Stock:    100,
			Image:    "https://images.pexels.com/photos/884600/pexels-photo-884600.jpeg",
		},
		{
			ID:       "2",
			Name:     "Chicken Burger",
			Category: models.CategoryBurger,
			Price:    decimal.RequireFromString("5.99"),
			Stock:    30,
			Image:    "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg",
		},
		{
			ID:       "3",
			Name:     "Vegetable Noodles",
			Category: models.CategoryNoodles,
			Price:    decimal.RequireFromString("3.75"),
			Stock:    45,
			Image:    "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg",
		},
		{
			ID:       "4",
			Name:     "Hot Sauce",
			Category: models.CategorySauce,
			Price:    decimal.RequireFromString("1.99"),
			Stock:    75,
			Image:    "https://images.pexels.com/photos/2612371/pexels-photo-2612371.jpeg",
		},
		{
			ID:       "5",
			Name:     "Cheese Burger",
			Category: models.CategoryBurger,
			Price:    decimal.RequireFromString("6.50"),
			Stock:    25,
			Image:    "https://images.pexels.com/photos/2983101/pexels-photo-2983101.jpeg",
		},
		{
			ID:       "6",
			Name:     "Soy Sauce",
			Category: models.CategorySauce,
			Price:    decimal.RequireFromString("2.25"),
			Stock:    60,
			Image:    "https://images.pexels.com/photos/5175606/pexels-photo-5175606.jpeg",
		},
		{
			ID:       "7",
			Name:     "Spicy Noodles",
			Category: models.CategoryNoodles,
			Price:    decimal.RequireFromString("3.99"),
			Stock:    40,
			Image:    "https://images.pexels.com/photos/1907244/pexels-photo-1907244.jpeg",
		},
		{
			ID:       "8",
			Name:     "Vegan Burger",
			Category: models.CategoryBurger,
			Price:    decimal.RequireFromString("7.25"),
			Stock:    15,
			Image:    "https://images.pexels.com/photos/3607284/pexels-photo-3607284.jpeg",
		},
	}
}

// SampleBills returns three historical bills referencing the sample catalog.
func SampleBills(products []models.Product) []models.Bill {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return []models.Bill{
		{
			ID: "B001",
			Items: []models.CartLine{
				{Product: byID["1"], Quantity: 2},
				{Product: byID["4"], Quantity: 1},
			},
			Total:         decimal.RequireFromString("7.00"),
			Status:        models.PaymentPaid,
			CustomerName:  "John Smith",
			CustomerPhone: "555-1234",
			Date:          time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC),
		},
		{
			ID: "B002",
			Items: []models.CartLine{
				{Product: byID["2"], Quantity: 1},
				{Product: byID["6"], Quantity: 1},
			},
			Total:           decimal.RequireFromString("8.24"),
			Status:          models.PaymentPending,
			CustomerName:    "Sarah Johnson",
			CustomerPhone:   "555-5678",
			Date:            time.Date(2025, 1, 11, 12, 15, 0, 0, time.UTC),
			DeliveryAddress: "123 Main St, Apt 4B",
		},
		{
			ID: "B003",
			Items: []models.CartLine{
				{Product: byID["3"], Quantity: 2},
				{Product: byID["5"], Quantity: 1},
			},
			Total:        decimal.RequireFromString("14.00"),
			Status:       models.PaymentPending,
			CustomerName: "Michael Brown",
			Date:         time.Date(2025, 1, 11, 16, 45, 0, 0, time.UTC),
		},
	}
}

// Apply loads the sample catalog and bills into the given stores.
func Apply(inventory *store.Inventory, bills *store.Bills) {
	products := SampleProducts()
	for _, p := range products {
		if err := inventory.AddProduct(p); err != nil {
			log.Printf("Failed to seed product %s: %v", p.ID, err)
		}
	}
	for _, b := range SampleBills(products) {
		if err := bills.Add(b); err != nil {
			log.Printf("Failed to seed bill %s: %v", b.ID, err)
		}
	}
	log.Printf("Sample data seeded: %d products, %d bills", len(products), bills.Count())
}
