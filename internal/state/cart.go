package state

import (
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/craftroots/storefront/internal/model"
	"github.com/craftroots/storefront/internal/storage"
)

// Cart owns the shopping cart: an insertion-ordered list of line items plus
// totals derived from it.
type Cart struct {
	mu     sync.Mutex
	items  []model.CartItem
	bridge *storage.Bridge
	log    *slog.Logger
	subs   subscribers[model.CartState]
}

// NewCart builds the container and hydrates it from storage. A corrupt
// entry is discarded by the bridge and the cart starts empty.
func NewCart(bridge *storage.Bridge, log *slog.Logger) *Cart {
	c := &Cart{bridge: bridge, log: log}
	var stored []model.CartItem
	if bridge.Read(model.KeyShoppingCart, &stored) {
		c.items = stored
		log.Info("cart restored", "lines", len(stored))
	}
	return c
}

// Subscribe registers fn to receive a state snapshot after every committed
// transition. The returned function cancels the subscription.
func (c *Cart) Subscribe(fn func(model.CartState)) func() {
	return c.subs.add(fn)
}

// State returns a snapshot of the current cart state.
func (c *Cart) State() model.CartState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshotCart(c.items)
}

// AddItem puts one unit of the product in the cart: an existing line's
// quantity grows by 1, otherwise a new line with quantity 1 is appended.
func (c *Cart) AddItem(p model.Product) {
	c.mu.Lock()
	c.items = reduceAdd(c.items, p)
	snap := c.commit()
	c.mu.Unlock()

	c.subs.notify(snap)
}

// RemoveItem deletes the line with the given product id. No-op if absent.
func (c *Cart) RemoveItem(id int) {
	c.mu.Lock()
	c.items = reduceRemove(c.items, id)
	snap := c.commit()
	c.mu.Unlock()

	c.subs.notify(snap)
}

// UpdateQuantity sets the line's quantity to exactly quantity. A value of
// zero or below removes the line instead; non-positive quantities are never
// stored.
func (c *Cart) UpdateQuantity(id, quantity int) {
	c.mu.Lock()
	c.items = reduceQuantity(c.items, id, quantity)
	snap := c.commit()
	c.mu.Unlock()

	c.subs.notify(snap)
}

// ClearCart resets to the empty state.
func (c *Cart) ClearCart() {
	c.mu.Lock()
	c.items = nil
	snap := c.commit()
	c.mu.Unlock()

	c.subs.notify(snap)
}

// IsInCart reports whether a line with the given product id exists.
func (c *Cart) IsInCart(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// ItemQuantity returns the stored quantity for the product id, or 0 when
// the product is not in the cart.
func (c *Cart) ItemQuantity(id int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.ID == id {
			return item.Quantity
		}
	}
	return 0
}

// commit persists the items list and returns the snapshot to broadcast.
// The key is removed when the cart empties. Caller holds the lock.
func (c *Cart) commit() model.CartState {
	if len(c.items) > 0 {
		c.bridge.Write(model.KeyShoppingCart, c.items)
	} else {
		c.bridge.Remove(model.KeyShoppingCart)
	}
	return snapshotCart(c.items)
}

func snapshotCart(items []model.CartItem) model.CartState {
	out := make([]model.CartItem, len(items))
	copy(out, items)

	totalItems := 0
	totalPrice := decimal.Zero
	for _, item := range items {
		totalItems += item.Quantity
		totalPrice = totalPrice.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return model.CartState{Items: out, TotalItems: totalItems, TotalPrice: totalPrice}
}

// Pure transitions.

func reduceAdd(items []model.CartItem, p model.Product) []model.CartItem {
	for i, item := range items {
		if item.ID == p.ID {
			next := make([]model.CartItem, len(items))
			copy(next, items)
			next[i].Quantity++
			return next
		}
	}
	return append(items[:len(items):len(items)], model.CartItem{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Quantity:    1,
		Seller:      p.Seller,
	})
}

func reduceRemove(items []model.CartItem, id int) []model.CartItem {
	next := make([]model.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			next = append(next, item)
		}
	}
	return next
}

func reduceQuantity(items []model.CartItem, id, quantity int) []model.CartItem {
	if quantity <= 0 {
		return reduceRemove(items, id)
	}
	next := make([]model.CartItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].ID == id {
			next[i].Quantity = quantity
		}
	}
	return next
}
