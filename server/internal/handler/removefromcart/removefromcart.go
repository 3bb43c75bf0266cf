// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package removefromcart

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

func (h *Handler) RemoveFromCart(ctx context.Context, req *homemadeapi.RemoveFromCartRequest) (*homemadeapi.RemoveFromCartResponse, error) {
	c := h.carts.Get(auth.SessionFromContext(ctx).UID)
	c.Remove(req.RecipeID)
	return &homemadeapi.RemoveFromCartResponse{
		Cart: c.View(),
	}, nil
}
