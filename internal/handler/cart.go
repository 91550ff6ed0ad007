package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/store"
)

type CartHandler struct {
	Cart      *store.Cart
	Inventory *store.Inventory
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":      h.Cart.Lines(),
		"total":      h.Cart.Total(),
		"item_count": h.Cart.ItemCount(),
	})
}

type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// AddItem puts a product into the cart. The stock gate lives here, not in
// the cart store: the combined quantity across the existing line and this
// request must not exceed what inventory has on hand.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Inventory.ByID(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product %s not found", req.ProductID)})
		return
	}

	inCart := 0
	for _, line := range h.Cart.Lines() {
		if line.Product.ID == req.ProductID {
			inCart = line.Quantity
			break
		}
	}
	if product.Stock < inCart+req.Quantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Insufficient stock for %s", product.Name)})
		return
	}

	if err := h.Cart.AddItem(product, req.Quantity); err != nil {
		if errors.Is(err, store.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be greater than zero"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      h.Cart.Lines(),
		"item_count": h.Cart.ItemCount(),
	})
}

type SetQuantityRequest struct {
	// Pointer so an explicit zero (remove the line) survives binding.
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Cart.SetQuantity(c.Param("id"), *req.Quantity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quantity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      h.Cart.Lines(),
		"item_count": h.Cart.ItemCount(),
	})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	if err := h.Cart.RemoveItem(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

func (h *CartHandler) Clear(c *gin.Context) {
	h.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
