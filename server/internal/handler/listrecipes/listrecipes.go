// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listrecipes

import (
	"context"
	"fmt"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
)

type Recipes interface {
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

func (h *Handler) ListRecipes(ctx context.Context, _ *homemadeapi.ListRecipesRequest) (*homemadeapi.ListRecipesResponse, error) {
	recipes, err := h.recipes.List(ctx, auth.SessionFromContext(ctx).UID)
	if err != nil {
		return nil, fmt.Errorf("listrecipes: %w", err)
	}
	return &homemadeapi.ListRecipesResponse{
		Recipes: recipes,
	}, nil
}
