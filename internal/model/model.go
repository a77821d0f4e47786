package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Storage keys. Each key has exactly one writer.
const (
	KeyAuthUser        = "auth_user"
	KeyRegisteredUsers = "registered_users"
	KeyShoppingCart    = "shopping_cart"
	KeyUserFavorites   = "user_favorites"
	KeyUserOrders      = "user_orders"
)

// Product is a catalog entry for a handcrafted item.
type Product struct {
	ID             int             `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Image          string          `json:"image"`
	Seller         string          `json:"seller,omitempty"`
	SellerLocation string          `json:"sellerLocation,omitempty"`
}

// CartItem is one product's line in the cart. At most one line exists per
// product id; Quantity is always >= 1 while the line exists.
type CartItem struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Quantity    int             `json:"quantity"`
	Seller      string          `json:"seller,omitempty"`
}

// CartState is the cart container's full state. TotalItems and TotalPrice
// are derived from Items on every transition and never drift.
type CartState struct {
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// FavoriteItem is a favorited product. Unique by id.
type FavoriteItem struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Seller      string          `json:"seller,omitempty"`
	DateAdded   time.Time       `json:"dateAdded"`
}

// FavoritesState is the favorites container's full state.
type FavoritesState struct {
	Items      []FavoriteItem `json:"items"`
	TotalItems int            `json:"totalItems"`
}

// User is the public account shape. It never carries credentials.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar,omitempty"`
	JoinedDate string `json:"joinedDate"`
}

// Credential is a registered account record, persisted only under
// registered_users.
type Credential struct {
	User
	PasswordHash string `json:"password"`
}

// AuthState is the auth container's full state.
// Invariant: IsAuthenticated is true iff User is non-nil.
type AuthState struct {
	User            *User `json:"user"`
	IsLoading       bool  `json:"isLoading"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}

const OrderStatusConfirmed = "confirmed"

// ShippingInfo is the delivery address collected at checkout.
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// PaymentSummary keeps only what the confirmation view shows.
type PaymentSummary struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber"`
}

type OrderTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Order is the record appended to user_orders at checkout.
type Order struct {
	OrderID   string         `json:"orderId"`
	Items     []CartItem     `json:"items"`
	Shipping  ShippingInfo   `json:"shippingInfo"`
	Payment   PaymentSummary `json:"paymentInfo"`
	Totals    OrderTotals    `json:"totals"`
	OrderDate time.Time      `json:"orderDate"`
	Status    string         `json:"status"`
}
