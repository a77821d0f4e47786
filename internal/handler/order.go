package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftroots/storefront/internal/model"
	"github.com/craftroots/storefront/internal/service"
)

type checkoutRequest struct {
	Shipping shippingRequest `json:"shipping_info" binding:"required"`
	Payment  paymentRequest  `json:"payment_info" binding:"required"`
}

type shippingRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode" binding:"required"`
	Country   string `json:"country" binding:"required"`
}

type paymentRequest struct {
	Method     string `json:"method" binding:"required"`
	CardNumber string `json:"cardNumber" binding:"required"`
}

type OrderHandler struct {
	svc *service.CheckoutService
}

func NewOrderHandler(svc *service.CheckoutService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.svc.PlaceOrder(
		model.ShippingInfo{
			FirstName: req.Shipping.FirstName,
			LastName:  req.Shipping.LastName,
			Email:     req.Shipping.Email,
			Phone:     req.Shipping.Phone,
			Address:   req.Shipping.Address,
			City:      req.Shipping.City,
			State:     req.Shipping.State,
			ZipCode:   req.Shipping.ZipCode,
			Country:   req.Shipping.Country,
		},
		model.PaymentSummary{Method: req.Payment.Method, CardNumber: req.Payment.CardNumber},
	)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.svc.GetOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders := h.svc.ListOrders()
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}
