// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listcatalog

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/catalog"
)

type Catalog interface {
	List(ctx context.Context, category homemadedb.RecipeCategory) ([]catalog.Entry, error)
}

func NewHandler(catalog Catalog) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

type Handler struct {
	catalog Catalog
}

func (h *Handler) ListCatalog(ctx context.Context, req *homemadeapi.ListCatalogRequest) (*homemadeapi.ListCatalogResponse, error) {
	if !req.Category.Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown category %q", req.Category))
	}

	entries, err := h.catalog.List(ctx, req.Category)
	if err != nil {
		return nil, fmt.Errorf("listcatalog: listing catalog: %w", err)
	}

	res := &homemadeapi.ListCatalogResponse{
		Recipes: make([]homemadeapi.CatalogRecipe, len(entries)),
	}
	for i, e := range entries {
		res.Recipes[i] = homemadeapi.CatalogRecipe{
			Recipe:        e.Recipe,
			HomemakerName: e.HomemakerName,
		}
	}
	return res, nil
}
