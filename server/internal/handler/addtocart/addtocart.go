// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package addtocart

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
	"github.com/uxdsrini/homemade-v2/server/internal/cart"
	"github.com/uxdsrini/homemade-v2/server/internal/ordering"
	"github.com/uxdsrini/homemade-v2/server/internal/rpc"
)

type Carts interface {
	Get(uid string) *cart.Cart
}

type Recipes interface {
	Snapshot(ctx context.Context, recipeID string) (*homemadedb.OrderRecipe, error)
}

func NewHandler(carts Carts, recipes Recipes) *Handler {
	return &Handler{
		carts:   carts,
		recipes: recipes,
	}
}

type Handler struct {
	carts   Carts
	recipes Recipes
}

func (h *Handler) AddToCart(ctx context.Context, req *homemadeapi.AddToCartRequest) (*homemadeapi.AddToCartResponse, error) {
	if req.Quantity < 1 {
		return nil, connect.NewError(connect.CodeInvalidArgument, cart.ErrInvalidQuantity)
	}

	recipe, err := h.recipes.Snapshot(ctx, req.RecipeID)
	if err != nil {
		return nil, rpc.MapError(fmt.Errorf("addtocart: %w", err),
			rpc.ErrorCode{Err: ordering.ErrNotFound, Code: connect.CodeNotFound},
		)
	}

	c := h.carts.Get(auth.SessionFromContext(ctx).UID)
	if err := c.Add(*recipe, req.Quantity); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return &homemadeapi.AddToCartResponse{
		Cart: c.View(),
	}, nil
}
