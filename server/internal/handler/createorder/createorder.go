// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package createorder

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
	"github.com/uxdsrini/homemade-v2/server/internal/delivery"
	"github.com/uxdsrini/homemade-v2/server/internal/ordering"
	"github.com/uxdsrini/homemade-v2/server/internal/rpc"
)

type Orders interface {
	Create(ctx context.Context, userID string, in ordering.Input) (*homemadedb.Order, error)
}

func NewHandler(orders Orders) *Handler {
	return &Handler{
		orders: orders,
	}
}

type Handler struct {
	orders Orders
}

func (h *Handler) CreateOrder(ctx context.Context, req *homemadeapi.CreateOrderRequest) (*homemadeapi.CreateOrderResponse, error) {
	order, err := h.orders.Create(ctx, auth.SessionFromContext(ctx).UID, ordering.Input{
		RecipeID: req.RecipeID,
		Quantity: req.Quantity,
		Slot: delivery.Slot{
			Date: req.DeliveryDate,
			Time: req.DeliveryTime,
		},
		Address:             req.Address,
		SpecialInstructions: req.SpecialInstructions,
		IdempotencyKey:      req.IdempotencyKey,
	})
	if err != nil {
		return nil, rpc.MapError(fmt.Errorf("createorder: %w", err),
			rpc.ErrorCode{Err: ordering.ErrInvalidInput, Code: connect.CodeInvalidArgument},
			rpc.ErrorCode{Err: ordering.ErrNotFound, Code: connect.CodeNotFound},
		)
	}
	return &homemadeapi.CreateOrderResponse{
		Order: order,
	}, nil
}
