package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/craftroots/storefront/internal/catalog"
	"github.com/craftroots/storefront/internal/state"
)

type addCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartHandler struct {
	cart    *state.Cart
	catalog *catalog.Catalog
}

func NewCartHandler(cart *state.Cart, c *catalog.Catalog) *CartHandler {
	return &CartHandler{cart: cart, catalog: c}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cart.State())
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, ok := h.catalog.GetByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	h.cart.AddItem(product)
	c.JSON(http.StatusCreated, h.cart.State())
}

// UpdateItem sets the line's quantity to an absolute value. Zero or below
// removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.cart.UpdateQuantity(id, req.Quantity)
	c.JSON(http.StatusOK, h.cart.State())
}

func (h *CartHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	h.cart.RemoveItem(id)
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) Clear(c *gin.Context) {
	h.cart.ClearCart()
	c.Status(http.StatusNoContent)
}
