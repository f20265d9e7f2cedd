package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is one line of a placed order. Prices are whatever the client
// submitted; totals are not recomputed server-side.
type OrderItem struct {
	Name     string  `bson:"name" json:"name" validate:"required"`
	Price    float64 `bson:"price" json:"price" validate:"required"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"required,gt=0"`
}

// ShippingAddress is the delivery record captured at checkout.
type ShippingAddress struct {
	Name       string `bson:"name" json:"name" validate:"required"`
	Email      string `bson:"email" json:"email" validate:"omitempty,email"`
	Address    string `bson:"address" json:"address" validate:"required"`
	City       string `bson:"city" json:"city" validate:"required"`
	State      string `bson:"state" json:"state"`
	PostalCode string `bson:"postal_code" json:"postalCode" validate:"required"`
}

// Order is created exactly once per successful checkout and is immutable
// afterwards. PaymentID is whatever identifier the client reported after
// paying the gateway; it is never verified server-side.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        primitive.ObjectID `bson:"user" json:"user"`
	Items         []OrderItem        `bson:"items" json:"items"`
	Total         float64            `bson:"total" json:"total"`
	Shipping      ShippingAddress    `bson:"shipping" json:"shipping"`
	PaymentMethod string             `bson:"payment_method" json:"paymentMethod"`
	PaymentID     *string            `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}
