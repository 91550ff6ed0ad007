package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/models"
	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/store"
)

type DashboardHandler struct {
	Inventory         *store.Inventory
	Bills             *store.Bills
	LowStockThreshold int
}

func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	totalRevenue := decimal.Zero
	pendingBills := 0
	for _, bill := range h.Bills.All() {
		switch bill.Status {
		case models.PaymentPaid:
			totalRevenue = totalRevenue.Add(bill.Total)
		case models.PaymentPending:
			pendingBills++
		}
	}

	products := h.Inventory.Products()
	inventoryValue := decimal.Zero
	for _, p := range products {
		inventoryValue = inventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}

	c.JSON(http.StatusOK, gin.H{
		"total_revenue":   totalRevenue,
		"pending_bills":   pendingBills,
		"total_products":  len(products),
		"inventory_value": inventoryValue,
		"low_stock_count": len(h.Inventory.LowStock(h.LowStockThreshold)),
	})
}

func (h *DashboardHandler) GetSalesReport(c *gin.Context) {
	startDateStr := c.Query("start_date")
	endDateStr := c.Query("end_date")

	bills := h.Bills.All()

	if startDateStr != "" && endDateStr != "" {
		// Parse dates assuming YYYY-MM-DD
		startDate, _ := time.Parse("2006-01-02", startDateStr)
		endDate, _ := time.Parse("2006-01-02", endDateStr)
		// Set end date to end of day
		endDate = endDate.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

		inRange := bills[:0]
		for _, b := range bills {
			if !b.Date.Before(startDate) && !b.Date.After(endDate) {
				inRange = append(inRange, b)
			}
		}
		bills = inRange
	}

	// Calculate Summary
	totalRevenue := decimal.Zero
	totalTransactions := 0
	productsSold := 0

	for _, bill := range bills {
		if bill.Status == models.PaymentPaid {
			totalRevenue = totalRevenue.Add(bill.Total)
		}
		totalTransactions++
		for _, item := range bill.Items {
			productsSold += item.Quantity
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": gin.H{
			"total_revenue":      totalRevenue,
			"total_transactions": totalTransactions,
			"products_sold":      productsSold,
		},
		"transactions": bills,
	})
}
