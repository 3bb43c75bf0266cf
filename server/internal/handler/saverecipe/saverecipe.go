// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package saverecipe

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
	Save(ctx context.Context, homemakerID string, in recipes.Input) (string, error)
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

// SaveRecipe creates or updates a recipe of the homemaker and returns all of
// their recipes.
func (h *Handler) SaveRecipe(ctx context.Context, req *homemadeapi.SaveRecipeRequest) (*homemadeapi.SaveRecipeResponse, error) {
	uid := auth.SessionFromContext(ctx).UID
	r := req.Recipe

	id, err := h.recipes.Save(ctx, uid, recipes.Input{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		CookingTime: r.CookingTime,
		ServingSize: r.ServingSize,
		Price:       r.Price,
		Photos:      r.Photos,
		Status:      r.Status,
	})
	if err != nil {
		return nil, rpc.MapError(fmt.Errorf("saverecipe: saving recipe: %w", err),
			rpc.ErrorCode{Err: recipes.ErrInvalidInput, Code: connect.CodeInvalidArgument},
			rpc.ErrorCode{Err: recipes.ErrNotFound, Code: connect.CodeNotFound},
			rpc.ErrorCode{Err: recipes.ErrNotOwner, Code: connect.CodePermissionDenied},
		)
	}

	list, err := h.recipes.List(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("saverecipe: %w", err)
	}
	return &homemadeapi.SaveRecipeResponse{
		RecipeID: id,
		Recipes:  list,
	}, nil
}
