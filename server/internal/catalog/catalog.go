// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package catalog serves the customer facing list of published recipes.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/wandb/parallel"

	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/store"
)

// DefaultMaxLookups bounds concurrent homemaker lookups when not configured.
const DefaultMaxLookups = 8

// Entry is a published recipe annotated with its homemaker's name.
type Entry struct {
	homemadedb.Recipe

	HomemakerName string `json:"homemakerName"`
}

// Seeder fills an empty store.
type Seeder interface {
	SeedIfEmpty(ctx context.Context) error
}

// NewCatalog returns a Catalog. maxLookups bounds the concurrent homemaker
// lookups of a single List call.
func NewCatalog(recipes store.Recipes, homemakers store.Homemakers, seeder Seeder, maxLookups int) *Catalog {
	if maxLookups <= 0 {
		maxLookups = DefaultMaxLookups
	}
	return &Catalog{
		recipes:    recipes,
		homemakers: homemakers,
		seeder:     seeder,
		maxLookups: maxLookups,
	}
}

type Catalog struct {
	recipes    store.Recipes
	homemakers store.Homemakers
	seeder     Seeder
	maxLookups int

	seedMu sync.Mutex
	seeded bool
}

// List returns the published recipes of the category.
func (c *Catalog) List(ctx context.Context, category homemadedb.RecipeCategory) ([]Entry, error) {
	if err := c.seedOnce(ctx); err != nil {
		return nil, err
	}

	recipes, err := c.recipes.ListPublishedRecipes(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("catalog: listing recipes: %w", err)
	}
	if len(recipes) == 0 {
		return []Entry{}, nil
	}

	names, err := c.HomemakerNames(ctx, recipes)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(recipes))
	for _, r := range recipes {
		// Drafts are never shown to customers.
		if r.Status != homemadedb.RecipeStatusPublished {
			continue
		}
		entries = append(entries, Entry{
			Recipe:        r,
			HomemakerName: names[r.HomemakerID],
		})
	}
	return entries, nil
}

// HomemakerNames resolves the display name of every homemaker owning one of
// the recipes, with homemadedb.UnknownChef for homemakers without a document. A failed
// lookup fails the whole call.
func (c *Catalog) HomemakerNames(ctx context.Context, recipes []homemadedb.Recipe) (map[string]string, error) {
	var uids []string
	seen := make(map[string]bool, len(recipes))
	for _, r := range recipes {
		if !seen[r.HomemakerID] {
			seen[r.HomemakerID] = true
			uids = append(uids, r.HomemakerID)
		}
	}

	names := make(map[string]string, len(uids))
	var mu sync.Mutex
	grp := parallel.ErrGroup(parallel.Limited(ctx, c.maxLookups))
	for _, uid := range uids {
		grp.Go(func(ctx context.Context) error {
			name, err := c.homemakerName(ctx, uid)
			if err != nil {
				return err
			}
			mu.Lock()
			names[uid] = name
			mu.Unlock()
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}

func (c *Catalog) homemakerName(ctx context.Context, uid string) (string, error) {
	h, err := c.homemakers.GetHomemaker(ctx, uid)
	if errors.Is(err, store.ErrNotFound) {
		return homemadedb.UnknownChef, nil
	}
	if err != nil {
		return "", fmt.Errorf("catalog: looking up homemaker %s: %w", uid, err)
	}
	return h.DisplayName, nil
}

// seedOnce seeds the store on the first List call of the process. A failed
// attempt is retried on the next call.
func (c *Catalog) seedOnce(ctx context.Context) error {
	if c.seeder == nil {
		return nil
	}
	c.seedMu.Lock()
	defer c.seedMu.Unlock()
	if c.seeded {
		return nil
	}
	if err := c.seeder.SeedIfEmpty(ctx); err != nil {
		return fmt.Errorf("catalog: seeding: %w", err)
	}
	c.seeded = true
	return nil
}
