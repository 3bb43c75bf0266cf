// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package checkout

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
	"github.com/uxdsrini/homemade-v2/server/internal/cart"
	"github.com/uxdsrini/homemade-v2/server/internal/delivery"
	"github.com/uxdsrini/homemade-v2/server/internal/ordering"
	"github.com/uxdsrini/homemade-v2/server/internal/rpc"
)

type Carts interface {
	Get(uid string) *cart.Cart
}

type Orders interface {
	Create(ctx context.Context, userID string, in ordering.Input) (*homemadedb.Order, error)
}

func NewHandler(carts Carts, orders Orders) *Handler {
	return &Handler{
		carts:  carts,
		orders: orders,
	}
}

type Handler struct {
	carts  Carts
	orders Orders
}

// Checkout places an order for every recipe in the cart, all delivered in the
// same slot to the same address. The ordered recipes leave the cart only if
// every order was placed; recipes added meanwhile stay. With an idempotency
// key, retrying a failed checkout does not duplicate the orders already placed.
func (h *Handler) Checkout(ctx context.Context, req *homemadeapi.CheckoutRequest) (*homemadeapi.CheckoutResponse, error) {
	uid := auth.SessionFromContext(ctx).UID
	c := h.carts.Get(uid)

	entries := c.Entries()
	if len(entries) == 0 {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errors.New("cart is empty"))
	}

	orders := make([]homemadedb.Order, 0, len(entries))
	for _, e := range entries {
		in := ordering.Input{
			RecipeID: e.Recipe.ID,
			Quantity: e.Quantity,
			Slot: delivery.Slot{
				Date: req.DeliveryDate,
				Time: req.DeliveryTime,
			},
			Address:             req.Address,
			SpecialInstructions: req.SpecialInstructions,
		}
		if req.IdempotencyKey != "" {
			in.IdempotencyKey = req.IdempotencyKey + "/" + e.Recipe.ID
		}
		order, err := h.orders.Create(ctx, uid, in)
		if err != nil {
			return nil, rpc.MapError(fmt.Errorf("checkout: ordering %s: %w", e.Recipe.Name, err),
				rpc.ErrorCode{Err: ordering.ErrInvalidInput, Code: connect.CodeInvalidArgument},
				rpc.ErrorCode{Err: ordering.ErrNotFound, Code: connect.CodeNotFound},
			)
		}
		orders = append(orders, *order)
	}

	for _, e := range entries {
		c.Deduct(e.Recipe.ID, e.Quantity)
	}
	return &homemadeapi.CheckoutResponse{
		Orders: orders,
	}, nil
}
