package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collections for the commerce shapes. Declared for completeness; no
// endpoint operates on them and no charge flow exists.
const (
	CartItemCollection = "cartitem"
	OrderCollection    = "order"
)

// CartItem is a declared schema without lifecycle management.
type CartItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	FragranceID string             `bson:"fragrance_id" json:"fragrance_id"`
	Quantity    int                `bson:"quantity" json:"quantity"`
}

// CartItemInput is the client-supplied shape for a cart item.
type CartItemInput struct {
	UserID      string `json:"user_id"`
	FragranceID string `json:"fragrance_id"`
	Quantity    *int   `json:"quantity"`
}

// NewCartItem validates input and builds a CartItem with quantity defaulted
// to one.
func NewCartItem(in CartItemInput) (*CartItem, error) {
	ve := newValidationError()

	if in.UserID == "" {
		ve.add("user_id", "user_id is required")
	}
	if in.FragranceID == "" {
		ve.add("fragrance_id", "fragrance_id is required")
	}
	if in.Quantity != nil && (*in.Quantity < 1 || *in.Quantity > 10) {
		ve.add("quantity", "quantity must be between 1 and 10")
	}

	if !ve.ok() {
		return nil, ve
	}

	item := &CartItem{
		UserID:      in.UserID,
		FragranceID: in.FragranceID,
		Quantity:    1,
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	return item, nil
}

// OrderItem is one line of an order: fragrance_id, price, quantity.
type OrderItem struct {
	FragranceID string  `bson:"fragrance_id" json:"fragrance_id"`
	Price       float64 `bson:"price" json:"price"`
	Quantity    int     `bson:"quantity" json:"quantity"`
}

// Order is a declared schema without lifecycle management; the payment
// fields exist but no charge flow populates them.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"total_amount" json:"total_amount"`
	Status          string             `bson:"status" json:"status"`
	PaymentProvider string             `bson:"payment_provider,omitempty" json:"payment_provider,omitempty"`
	PaymentIntentID string             `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"`
}

// OrderInput is the client-supplied shape for an order.
type OrderInput struct {
	UserID          string      `json:"user_id"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	PaymentProvider string      `json:"payment_provider"`
	PaymentIntentID string      `json:"payment_intent_id"`
}

// NewOrder validates input and builds an Order with status defaulted to
// pending.
func NewOrder(in OrderInput) (*Order, error) {
	ve := newValidationError()

	if in.UserID == "" {
		ve.add("user_id", "user_id is required")
	}

	if !ve.ok() {
		return nil, ve
	}

	status := in.Status
	if status == "" {
		status = "pending"
	}

	items := in.Items
	if items == nil {
		items = []OrderItem{}
	}

	return &Order{
		UserID:          in.UserID,
		Items:           items,
		TotalAmount:     in.TotalAmount,
		Status:          status,
		PaymentProvider: in.PaymentProvider,
		PaymentIntentID: in.PaymentIntentID,
	}, nil
}
