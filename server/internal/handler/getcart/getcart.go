// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getcart

import (
	"context"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
	"github.com/uxdsrini/homemade-v2/server/internal/cart"
)

type Carts interface {
	Get(uid string) *cart.Cart
}

func NewHandler(carts Carts) *Handler {
	return &Handler{
		carts: carts,
	}
}

type Handler struct {
	carts Carts
}

func (h *Handler) GetCart(ctx context.Context, _ *homemadeapi.GetCartRequest) (*homemadeapi.GetCartResponse, error) {
	return &homemadeapi.GetCartResponse{
		Cart: h.carts.Get(auth.SessionFromContext(ctx).UID).View(),
	}, nil
}
