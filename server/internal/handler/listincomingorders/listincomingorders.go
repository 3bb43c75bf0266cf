// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listincomingorders

import (
	"context"
	"fmt"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
)

type Orders interface {
	ListHomemakerOrders(ctx context.Context, homemakerID string) ([]homemadedb.Order, error)
}

func NewHandler(orders Orders) *Handler {
	return &Handler{
		orders: orders,
	}
}

type Handler struct {
	orders Orders
}

// ListIncomingOrders returns the orders for the homemaker's recipes, newest first.
func (h *Handler) ListIncomingOrders(ctx context.Context, _ *homemadeapi.ListIncomingOrdersRequest) (*homemadeapi.ListIncomingOrdersResponse, error) {
	orders, err := h.orders.ListHomemakerOrders(ctx, auth.SessionFromContext(ctx).UID)
	if err != nil {
		return nil, fmt.Errorf("listincomingorders: listing orders: %w", err)
	}
	if orders == nil {
		orders = []homemadedb.Order{}
	}
	return &homemadeapi.ListIncomingOrdersResponse{
		Orders: orders,
	}, nil
}
