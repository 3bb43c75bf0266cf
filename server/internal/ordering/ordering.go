// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package ordering places orders and moves them through payment and delivery.
package ordering

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/delivery"
	"github.com/uxdsrini/homemade-v2/server/internal/payment"
	"github.com/uxdsrini/homemade-v2/server/internal/store"
)

var (
	// ErrInvalidInput is returned for a request that cannot become an order.
	ErrInvalidInput = errors.New("ordering: invalid input")

	// ErrNotFound is returned when the order or recipe does not exist.
	ErrNotFound = errors.New("ordering: not found")

	// ErrNotOwner is returned when the caller may not act on the order.
	ErrNotOwner = errors.New("ordering: not the owner of the order")

	// ErrInvalidTransition is returned for a status change that is not allowed.
	ErrInvalidTransition = errors.New("ordering: invalid status transition")
)

var idempotencyNamespace = uuid.MustParse("6f1b7a52-3c1e-4a8e-9d44-0b5a2f6d9c13")

// Input is what a customer submits to order a recipe.
type Input struct {
	RecipeID            string
	Quantity            int
	Slot                delivery.Slot
	Address             homemadedb.Address
	SpecialInstructions string

	// IdempotencyKey, when set, makes resubmissions of the same order by the
	// same user return the order created first.
	IdempotencyKey string
}

// Payer collects payment for an order.
type Payer interface {
	Pay(ctx context.Context, charge payment.Charge) (payment.Result, error)
}

type Store interface {
	store.Recipes
	store.Homemakers
	store.Orders
}

// NewService returns a Service.
func NewService(s Store, payer Payer) *Service {
	return &Service{
		store: s,
		payer: payer,
		now:   time.Now,
	}
}

type Service struct {
	store Store
	payer Payer
	now   func() time.Time
}

// SetClock replaces the clock used for timestamps.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Create places an order for a published recipe. The order starts pending
// with payment pending and totalAmount equal to price times quantity.
func (s *Service) Create(ctx context.Context, userID string, in Input) (*homemadedb.Order, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	snapshot, err := s.Snapshot(ctx, in.RecipeID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	order := &homemadedb.Order{
		UserID:              userID,
		Recipe:              *snapshot,
		Quantity:            in.Quantity,
		TotalAmount:         homemadedb.OrderTotal(snapshot.Price, in.Quantity),
		DeliveryDate:        in.Slot.Date,
		DeliveryTime:        in.Slot.Time,
		Address:             in.Address,
		SpecialInstructions: strings.TrimSpace(in.SpecialInstructions),
		Status:              homemadedb.OrderStatusPending,
		PaymentStatus:       homemadedb.PaymentStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if in.IdempotencyKey != "" {
		order.ID = uuid.NewSHA1(idempotencyNamespace, []byte(userID+"\x00"+in.IdempotencyKey)).String()
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		if in.IdempotencyKey != "" && errors.Is(err, store.ErrAlreadyExists) {
			return s.getOwnOrder(ctx, userID, order.ID)
		}
		return nil, fmt.Errorf("ordering: creating order: %w", err)
	}
	return order, nil
}

// Snapshot returns the copy of a published recipe stored with its orders.
func (s *Service) Snapshot(ctx context.Context, recipeID string) (*homemadedb.OrderRecipe, error) {
	recipe, err := s.store.GetRecipe(ctx, recipeID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: recipe %s", ErrNotFound, recipeID)
	}
	if err != nil {
		return nil, fmt.Errorf("ordering: getting recipe: %w", err)
	}
	if recipe.Status != homemadedb.RecipeStatusPublished {
		return nil, fmt.Errorf("%w: recipe %s", ErrNotFound, recipeID)
	}

	homemakerName := homemadedb.UnknownChef
	hm, err := s.store.GetHomemaker(ctx, recipe.HomemakerID)
	switch {
	case err == nil:
		homemakerName = hm.DisplayName
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("ordering: getting homemaker: %w", err)
	}

	return &homemadedb.OrderRecipe{
		ID:            recipe.ID,
		Name:          recipe.Name,
		Price:         recipe.Price,
		HomemakerID:   recipe.HomemakerID,
		HomemakerName: homemakerName,
		Photos:        recipe.Photos,
	}, nil
}

func validate(in Input) error {
	var problems []string
	if in.RecipeID == "" {
		problems = append(problems, "recipe is required")
	}
	if in.Quantity < 1 {
		problems = append(problems, "quantity must be at least 1")
	}
	if !in.Slot.Complete() {
		problems = append(problems, "delivery date and time are required")
	}
	a := in.Address
	if a.FullName == "" || a.Phone == "" || a.Street == "" || a.City == "" || a.Pincode == "" {
		problems = append(problems, "address name, phone, street, city and pincode are required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

// ConfirmPayment pays for the user's order and records the outcome. An order
// already paid is returned unchanged.
func (s *Service) ConfirmPayment(ctx context.Context, userID string, orderID string) (*homemadedb.Order, error) {
	order, err := s.getOwnOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == homemadedb.PaymentStatusCompleted {
		return order, nil
	}

	res, err := s.payer.Pay(ctx, payment.Charge{
		OrderID: order.ID,
		UserID:  userID,
		Amount:  order.TotalAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("ordering: paying order %s: %w", order.ID, err)
	}

	order.PaymentStatus = res.Status
	order.TransactionID = res.TransactionID
	order.UpdatedAt = s.now()
	if err := s.store.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("ordering: recording payment of order %s: %w", order.ID, err)
	}
	return order, nil
}

// UpdateStatus moves an order of one of the homemaker's recipes to status.
// Statuses only move forward, and an order must be paid before it moves past
// confirmed.
func (s *Service) UpdateStatus(ctx context.Context, homemakerID string, orderID string, status homemadedb.OrderStatus) (*homemadedb.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Recipe.HomemakerID != homemakerID {
		return nil, ErrNotOwner
	}
	if err := CheckTransition(order, status); err != nil {
		return nil, err
	}

	order.Status = status
	order.UpdatedAt = s.now()
	if err := s.store.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("ordering: updating order %s: %w", order.ID, err)
	}
	return order, nil
}

// CheckTransition returns ErrInvalidTransition unless order may move to next.
func CheckTransition(order *homemadedb.Order, next homemadedb.OrderStatus) error {
	if !order.Status.Before(next) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, order.Status, next)
	}
	if next.RequiresPayment() && order.PaymentStatus != homemadedb.PaymentStatusCompleted {
		return fmt.Errorf("%w: order must be paid before %s", ErrInvalidTransition, next)
	}
	return nil
}

func (s *Service) getOwnOrder(ctx context.Context, userID string, orderID string) (*homemadedb.Order, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotOwner
	}
	return order, nil
}

func (s *Service) getOrder(ctx context.Context, orderID string) (*homemadedb.Order, error) {
	order, err := s.store.GetOrder(ctx, orderID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("ordering: getting order: %w", err)
	}
	return order, nil
}
