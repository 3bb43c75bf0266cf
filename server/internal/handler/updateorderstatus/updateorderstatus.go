// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package updateorderstatus

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
	"github.com/uxdsrini/homemade-v2/server/internal/ordering"
	"github.com/uxdsrini/homemade-v2/server/internal/rpc"
)

type Orders interface {
	UpdateStatus(ctx context.Context, homemakerID string, orderID string, status homemadedb.OrderStatus) (*homemadedb.Order, error)
}

func NewHandler(orders Orders) *Handler {
	return &Handler{
		orders: orders,
	}
}

type Handler struct {
	orders Orders
}

func (h *Handler) UpdateOrderStatus(ctx context.Context, req *homemadeapi.UpdateOrderStatusRequest) (*homemadeapi.UpdateOrderStatusResponse, error) {
	order, err := h.orders.UpdateStatus(ctx, auth.SessionFromContext(ctx).UID, req.OrderID, req.Status)
	if err != nil {
		return nil, rpc.MapError(fmt.Errorf("updateorderstatus: %w", err),
			rpc.ErrorCode{Err: ordering.ErrInvalidInput, Code: connect.CodeInvalidArgument},
			rpc.ErrorCode{Err: ordering.ErrNotFound, Code: connect.CodeNotFound},
			rpc.ErrorCode{Err: ordering.ErrNotOwner, Code: connect.CodePermissionDenied},
			rpc.ErrorCode{Err: ordering.ErrInvalidTransition, Code: connect.CodeFailedPrecondition},
		)
	}
	return &homemadeapi.UpdateOrderStatusResponse{
		Order: order,
	}, nil
}
