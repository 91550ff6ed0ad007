package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/models"
	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/store"
)

type InventoryHandler struct {
	Inventory         *store.Inventory
	LowStockThreshold int
}

func (h *InventoryHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Inventory.Products())
}

type CreateProductRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name" binding:"required"`
	Category models.Category `json:"category"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Stock    int             `json:"stock"`
	Image    string          `json:"image"`
}

func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Category == "" {
		req.Category = models.CategoryOther
	}
	if !req.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	// Clients may supply their own id; otherwise the server assigns one.
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	product := models.Product{
		ID:       req.ID,
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
		Image:    req.Image,
	}

	if err := h.Inventory.AddProduct(product); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			c.JSON(http.StatusConflict, gin.H{"error": "Product id already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

type UpdateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category models.Category `json:"category" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Stock    int             `json:"stock"`
	Image    string          `json:"image"`
}

func (h *InventoryHandler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !req.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	product := models.Product{
		ID:       c.Param("id"),
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
		Image:    req.Image,
	}

	if err := h.Inventory.UpdateProduct(product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	if err := h.Inventory.RemoveProduct(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

type AddStockRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// AddStock records a restock: the quantity is added to the product's count.
func (h *InventoryHandler) AddStock(c *gin.Context) {
	var req AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Inventory.AdjustStock(req.ProductID, -req.Quantity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock added successfully"})
}

func (h *InventoryHandler) GetLowStockAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Inventory.LowStock(h.LowStockThreshold))
}
