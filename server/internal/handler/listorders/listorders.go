// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listorders

import (
	"context"
	"fmt"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
)

type Orders interface {
	ListCustomerOrders(ctx context.Context, userID string) ([]homemadedb.Order, error)
}

func NewHandler(orders Orders) *Handler {
	return &Handler{
		orders: orders,
	}
}

type Handler struct {
	orders Orders
}

// ListOrders returns the orders placed by the customer, newest first.
func (h *Handler) ListOrders(ctx context.Context, _ *homemadeapi.ListOrdersRequest) (*homemadeapi.ListOrdersResponse, error) {
	orders, err := h.orders.ListCustomerOrders(ctx, auth.SessionFromContext(ctx).UID)
	if err != nil {
		return nil, fmt.Errorf("listorders: listing orders: %w", err)
	}
	if orders == nil {
		orders = []homemadedb.Order{}
	}
	return &homemadeapi.ListOrdersResponse{
		Orders: orders,
	}, nil
}
