// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package confirmpayment

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
	ConfirmPayment(ctx context.Context, userID string, orderID string) (*homemadedb.Order, error)
}

func NewHandler(orders Orders) *Handler {
	return &Handler{
		orders: orders,
	}
}

type Handler struct {
	orders Orders
}

func (h *Handler) ConfirmPayment(ctx context.Context, req *homemadeapi.ConfirmPaymentRequest) (*homemadeapi.ConfirmPaymentResponse, error) {
	order, err := h.orders.ConfirmPayment(ctx, auth.SessionFromContext(ctx).UID, req.OrderID)
	if err != nil {
		return nil, rpc.MapError(fmt.Errorf("confirmpayment: %w", err),
			rpc.ErrorCode{Err: ordering.ErrNotFound, Code: connect.CodeNotFound},
			rpc.ErrorCode{Err: ordering.ErrNotOwner, Code: connect.CodePermissionDenied},
		)
	}
	return &homemadeapi.ConfirmPaymentResponse{
		Order: order,
	}, nil
}
