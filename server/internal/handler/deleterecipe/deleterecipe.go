// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package deleterecipe

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
	"github.com/uxdsrini/homemade-v2/server/internal/recipes"
	"github.com/uxdsrini/homemade-v2/server/internal/rpc"
)

type Recipes interface {
	Delete(ctx context.Context, homemakerID string, recipeID string, confirmed bool) error
	List(ctx context.Context, homemakerID string) ([]homemadedb.Recipe, error)
}

func NewHandler(recipes Recipes) *Handler {
	return &Handler{
		recipes: recipes,
	}
}

type Handler struct {
	recipes Recipes
}

func (h *Handler) DeleteRecipe(ctx context.Context, req *homemadeapi.DeleteRecipeRequest) (*homemadeapi.DeleteRecipeResponse, error) {
	uid := auth.SessionFromContext(ctx).UID

	if err := h.recipes.Delete(ctx, uid, req.RecipeID, req.Confirm); err != nil {
		return nil, rpc.MapError(fmt.Errorf("deleterecipe: deleting recipe: %w", err),
			rpc.ErrorCode{Err: recipes.ErrNotConfirmed, Code: connect.CodeFailedPrecondition},
			rpc.ErrorCode{Err: recipes.ErrNotFound, Code: connect.CodeNotFound},
			rpc.ErrorCode{Err: recipes.ErrNotOwner, Code: connect.CodePermissionDenied},
		)
	}

	list, err := h.recipes.List(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("deleterecipe: %w", err)
	}
	return &homemadeapi.DeleteRecipeResponse{
		Recipes: list,
	}, nil
}
