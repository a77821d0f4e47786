// Package service holds the checkout flow: it reads cart state, prices the
// order, appends it to the persisted order history, and clears the cart.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/craftroots/storefront/internal/config"
	"github.com/craftroots/storefront/internal/model"
	"github.com/craftroots/storefront/internal/state"
	"github.com/craftroots/storefront/internal/storage"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

type CheckoutService struct {
	mu     sync.Mutex
	cart   *state.Cart
	bridge *storage.Bridge
	cfg    config.CheckoutConfig
	log    *slog.Logger
	now    func() time.Time
}

func NewCheckoutService(cart *state.Cart, bridge *storage.Bridge, cfg config.CheckoutConfig, log *slog.Logger) *CheckoutService {
	return &CheckoutService{cart: cart, bridge: bridge, cfg: cfg, log: log, now: time.Now}
}

// PlaceOrder snapshots the cart, prices it, appends the order to the
// history, and clears the cart. The only domain error is an empty cart.
func (s *CheckoutService) PlaceOrder(shipping model.ShippingInfo, payment model.PaymentSummary) (*model.Order, error) {
	snap := s.cart.State()
	if len(snap.Items) == 0 {
		return nil, ErrEmptyCart
	}

	payment.CardNumber = maskCard(payment.CardNumber)

	order := model.Order{
		OrderID:   uuid.NewString(),
		Items:     snap.Items,
		Shipping:  shipping,
		Payment:   payment,
		Totals:    s.priceTotals(snap.TotalPrice),
		OrderDate: s.now(),
		Status:    model.OrderStatusConfirmed,
	}

	s.mu.Lock()
	var orders []model.Order
	s.bridge.Read(model.KeyUserOrders, &orders)
	orders = append(orders, order)
	s.bridge.Write(model.KeyUserOrders, orders)
	s.mu.Unlock()

	s.cart.ClearCart()
	s.log.Info("order placed", "order_id", order.OrderID, "total", order.Totals.Total)
	return &order, nil
}

// GetOrder returns the order with the given id from the history.
func (s *CheckoutService) GetOrder(orderID string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []model.Order
	s.bridge.Read(model.KeyUserOrders, &orders)
	for i := range orders {
		if orders[i].OrderID == orderID {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
}

// ListOrders returns the order history, most recent first.
func (s *CheckoutService) ListOrders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []model.Order
	s.bridge.Read(model.KeyUserOrders, &orders)
	out := make([]model.Order, len(orders))
	for i, o := range orders {
		out[len(orders)-1-i] = o
	}
	return out
}

// priceTotals prices the order: shipping is free at or above the threshold,
// tax applies to the subtotal only.
func (s *CheckoutService) priceTotals(subtotal decimal.Decimal) model.OrderTotals {
	shipping := s.cfg.FlatShippingRate()
	if subtotal.GreaterThanOrEqual(s.cfg.FreeShippingThreshold()) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(s.cfg.Tax()).Round(2)
	return model.OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// maskCard keeps only the last four digits of a card number.
func maskCard(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "**** **** **** " + number[len(number)-4:]
}
