// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package seed fills an empty marketplace with sample homemakers and recipes.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/store"
)

type Store interface {
	store.Recipes
	store.Homemakers
}

// NewSeeder returns a Seeder writing to s.
func NewSeeder(s Store) *Seeder {
	return &Seeder{
		store: s,
		now:   time.Now,
	}
}

// Seeder writes sample data to the store.
type Seeder struct {
	store Store
	now   func() time.Time
}

// SeedIfEmpty writes the sample homemakers and recipes when no recipe exists
// yet. If an earlier call stored only some of the sample recipes, the missing
// ones are written. Otherwise calling it on a non-empty store does nothing.
func (s *Seeder) SeedIfEmpty(ctx context.Context) error {
	has, err := s.store.HasRecipes(ctx)
	if err != nil {
		return fmt.Errorf("seed: checking for recipes: %w", err)
	}
	if has {
		partial, err := s.partiallySeeded(ctx)
		if err != nil || !partial {
			return err
		}
		slog.InfoContext(ctx, "seed: resuming partial seed")
	}

	now := s.now()
	for _, h := range sampleHomemakers {
		h.CreatedAt = now
		if err := s.store.SaveHomemaker(ctx, &h); err != nil {
			return fmt.Errorf("seed: saving homemaker %s: %w", h.UID, err)
		}
	}
	for _, r := range sampleRecipes {
		r.CreatedAt = now
		r.UpdatedAt = now
		err := s.store.CreateRecipe(ctx, &r)
		if errors.Is(err, store.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed: creating recipe %s: %w", r.Name, err)
		}
	}

	slog.InfoContext(ctx, "seed: wrote sample data", "homemakers", len(sampleHomemakers), "recipes", len(sampleRecipes))
	return nil
}

// partiallySeeded reports whether the first sample recipe is stored but the
// last is not. Sample recipes are written in order.
func (s *Seeder) partiallySeeded(ctx context.Context) (bool, error) {
	stored := func(r homemadedb.Recipe) (bool, error) {
		_, err := s.store.GetRecipe(ctx, r.ID)
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("seed: getting recipe %s: %w", r.ID, err)
		}
		return true, nil
	}

	last, err := stored(sampleRecipes[len(sampleRecipes)-1])
	if err != nil || last {
		return false, err
	}
	return stored(sampleRecipes[0])
}

var sampleHomemakers = []homemadedb.Homemaker{
	{
		UID:         "sample-homemaker-lakshmi",
		DisplayName: "Lakshmi's Kitchen",
	},
	{
		UID:         "sample-homemaker-farida",
		DisplayName: "Farida Aunty",
	},
}

var sampleRecipes = []homemadedb.Recipe{
	{
		ID:          "sample-idli-sambar",
		Name:        "Idli Sambar",
		Description: "Steamed rice cakes with lentil sambar and coconut chutney.",
		Category:    homemadedb.RecipeCategoryBreakfast,
		CookingTime: 30,
		ServingSize: 2,
		Price:       60,
		Photos:      []string{"https://images.unsplash.com/photo-1589301760014-d929f3979dbc"},
		Status:      homemadedb.RecipeStatusPublished,
		HomemakerID: "sample-homemaker-lakshmi",
	},
	{
		ID:          "sample-aloo-paratha",
		Name:        "Aloo Paratha",
		Description: "Whole wheat flatbread stuffed with spiced potato, served with curd.",
		Category:    homemadedb.RecipeCategoryBreakfast,
		CookingTime: 25,
		ServingSize: 1,
		Price:       50,
		Photos:      []string{"https://images.unsplash.com/photo-1631452180519-c014fe946bc7"},
		Status:      homemadedb.RecipeStatusPublished,
		HomemakerID: "sample-homemaker-farida",
	},
	{
		ID:          "sample-rajma-chawal",
		Name:        "Rajma Chawal",
		Description: "Kidney bean curry slow cooked with tomatoes, served with steamed rice.",
		Category:    homemadedb.RecipeCategoryLunch,
		CookingTime: 45,
		ServingSize: 2,
		Price:       120,
		Photos:      []string{"https://images.unsplash.com/photo-1626500155537-93690c24099e"},
		Status:      homemadedb.RecipeStatusPublished,
		HomemakerID: "sample-homemaker-farida",
	},
	{
		ID:          "sample-curd-rice",
		Name:        "Curd Rice",
		Description: "Soft rice in seasoned yoghurt with pomegranate.",
		Category:    homemadedb.RecipeCategoryLunch,
		CookingTime: 15,
		ServingSize: 1,
		Price:       70,
		Status:      homemadedb.RecipeStatusDraft,
		HomemakerID: "sample-homemaker-lakshmi",
	},
	{
		ID:          "sample-chicken-biryani",
		Name:        "Chicken Biryani",
		Description: "Dum cooked basmati rice layered with marinated chicken.",
		Category:    homemadedb.RecipeCategoryDinner,
		CookingTime: 90,
		ServingSize: 2,
		Price:       250,
		Photos:      []string{"https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8"},
		Status:      homemadedb.RecipeStatusPublished,
		HomemakerID: "sample-homemaker-farida",
	},
	{
		ID:          "sample-palak-paneer",
		Name:        "Palak Paneer with Roti",
		Description: "Cottage cheese in spinach gravy with four phulkas.",
		Category:    homemadedb.RecipeCategoryDinner,
		CookingTime: 40,
		ServingSize: 1,
		Price:       150,
		Photos:      []string{"https://images.unsplash.com/photo-1601050690597-df0568f70950"},
		Status:      homemadedb.RecipeStatusPublished,
		HomemakerID: "sample-homemaker-lakshmi",
	},
}
