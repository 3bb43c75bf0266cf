// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package homemadedb

import (
	"slices"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
)

// orderStatusProgression is the order statuses in the order they are reached.
var orderStatusProgression = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	return slices.Contains(orderStatusProgression, s)
}

// Before reports whether s comes strictly before other in the progression.
// It is false if either status is unknown.
func (s OrderStatus) Before(other OrderStatus) bool {
	i := slices.Index(orderStatusProgression, s)
	j := slices.Index(orderStatusProgression, other)
	if i < 0 || j < 0 {
		return false
	}
	return i < j
}

// RequiresPayment reports whether an order must be paid before reaching s.
func (s OrderStatus) RequiresPayment() bool {
	return OrderStatusConfirmed.Before(s)
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// OrderRecipe is a copy of the ordered recipe taken when the order was placed.
// It is not updated when the recipe changes.
type OrderRecipe struct {
	ID            string   `firestore:"id" json:"id"`
	Name          string   `firestore:"name" json:"name"`
	Price         float64  `firestore:"price" json:"price"`
	HomemakerID   string   `firestore:"homemakerId" json:"homemakerId"`
	HomemakerName string   `firestore:"homemakerName" json:"homemakerName"`
	Photos        []string `firestore:"photos" json:"photos"`
}

// Address is a delivery address.
type Address struct {
	FullName  string `firestore:"fullName" json:"fullName"`
	Phone     string `firestore:"phone" json:"phone"`
	Street    string `firestore:"street" json:"street"`
	Apartment string `firestore:"apartment,omitempty" json:"apartment,omitempty"`
	Landmark  string `firestore:"landmark,omitempty" json:"landmark,omitempty"`
	City      string `firestore:"city" json:"city"`
	Pincode   string `firestore:"pincode" json:"pincode"`
}

// Order is a customer's purchase of a single recipe, stored in the orders collection.
type Order struct {
	// ID is the document ID of the order.
	ID string `firestore:"id" json:"id"`

	// UserID is the UID of the customer who placed the order.
	UserID string `firestore:"userId" json:"userId"`

	// Recipe is the snapshot of the ordered recipe.
	Recipe OrderRecipe `firestore:"recipe" json:"recipe"`

	// Quantity is the number of portions ordered.
	Quantity int `firestore:"quantity" json:"quantity"`

	// TotalAmount is Recipe.Price times Quantity.
	TotalAmount float64 `firestore:"totalAmount" json:"totalAmount"`

	// DeliveryDate is the delivery day formatted as YYYY-MM-DD.
	DeliveryDate string `firestore:"deliveryDate" json:"deliveryDate"`

	// DeliveryTime is the delivery slot, e.g. 10:30.
	DeliveryTime string `firestore:"deliveryTime" json:"deliveryTime"`

	// Address is where the order is delivered.
	Address Address `firestore:"address" json:"address"`

	// SpecialInstructions are free-form notes for the homemaker.
	SpecialInstructions string `firestore:"specialInstructions,omitempty" json:"specialInstructions,omitempty"`

	Status        OrderStatus   `firestore:"status" json:"status"`
	PaymentStatus PaymentStatus `firestore:"paymentStatus" json:"paymentStatus"`

	// TransactionID is the payment transaction, set once a payment was attempted.
	TransactionID string `firestore:"transactionId,omitempty" json:"transactionId,omitempty"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
