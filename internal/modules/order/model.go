package order

import (
	"strings"
	"time"

	"github.com/mfarouk/souqly-backend/internal/modules/cart"
)

// OrderStatus represents the lifecycle state of an order.
//
// The intended flow is PENDING → PROCESSING → SHIPPED → DELIVERED, with
// CANCELLED reachable from any state. The store does not enforce transition
// order: any status may be set at any time (admin override).
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// ParseStatus normalizes a caller-supplied status string.
func ParseStatus(s string) (OrderStatus, bool) {
	switch st := OrderStatus(strings.ToUpper(s)); st {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return st, true
	default:
		return "", false
	}
}

// PaymentMethod indicates how the customer pays.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
)

// ParsePaymentMethod normalizes a caller-supplied payment method.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch pm := PaymentMethod(strings.ToUpper(s)); pm {
	case PaymentCash, PaymentCard:
		return pm, true
	default:
		return "", false
	}
}

// ShippingAddress is the address embedded into an order at creation. It is
// a copy, independent of the saved-addresses module.
type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Details string `json:"details"`
}

// Order is a finalized checkout record. Items and totals are deep copies of
// the cart at creation time; ID and CreatedAt never change, and only Status
// is mutable afterwards.
type Order struct {
	ID              string          `json:"id"`
	Items           []cart.LineItem `json:"items"`
	TotalPrice      float64         `json:"totalPrice"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// CreateOrderRequest carries everything addOrder snapshots into a new order.
// The address and payment method are validated upstream by the checkout
// layer.
type CreateOrderRequest struct {
	Items           []cart.LineItem
	TotalPrice      float64
	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod
}
