package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/checkout"
	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/models"
	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/store"
)

type BillingHandler struct {
	Bills    *store.Bills
	Checkout *checkout.Service
}

func (h *BillingHandler) ListBills(c *gin.Context) {
	page := 1
	limit := 10

	if c.Query("page") != "" {
		fmt.Sscanf(c.Query("page"), "%d", &page)
	}
	if c.Query("limit") != "" {
		fmt.Sscanf(c.Query("limit"), "%d", &limit)
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var bills []models.Bill
	if status := c.Query("status"); status != "" {
		if !models.PaymentStatus(status).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
			return
		}
		bills = h.Bills.ByStatus(models.PaymentStatus(status))
	} else {
		bills = h.Bills.All()
	}

	// Search matches bill id or customer name, case-insensitive.
	if q := strings.ToLower(c.Query("q")); q != "" {
		matched := bills[:0]
		for _, b := range bills {
			if strings.Contains(strings.ToLower(b.ID), q) ||
				strings.Contains(strings.ToLower(b.CustomerName), q) {
				matched = append(matched, b)
			}
		}
		bills = matched
	}

	// Newest first.
	for i, j := 0, len(bills)-1; i < j; i, j = i+1, j-1 {
		bills[i], bills[j] = bills[j], bills[i]
	}

	total := len(bills)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  bills[start:end],
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

type UpdateBillStatusRequest struct {
	Status models.PaymentStatus `json:"status" binding:"required"`
}

func (h *BillingHandler) UpdateBillStatus(c *gin.Context) {
	var req UpdateBillStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	if err := h.Bills.UpdateStatus(c.Param("id"), req.Status); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		case errors.Is(err, store.ErrStatusFinal):
			c.JSON(http.StatusConflict, gin.H{"error": "Bill is already paid"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bill status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bill status updated"})
}

func (h *BillingHandler) GetNextBillNo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"next_bill_no": h.Bills.NextID()})
}

type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone"`
	DeliveryAddress string `json:"delivery_address"`
}

// CreateCheckout runs the cart -> bill -> inventory transaction.
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bill, err := h.Checkout.Checkout(models.CustomerInfo{
		Name:    req.CustomerName,
		Phone:   req.CustomerPhone,
		Address: req.DeliveryAddress,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case errors.Is(err, checkout.ErrCustomerName):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customer name is required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Bill created successfully", "bill": bill})
}
