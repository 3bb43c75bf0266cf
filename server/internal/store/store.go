// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package store reads and writes marketplace documents. Queries are
// equality filters only; no write spans more than one document.
package store

import (
	"context"
	"errors"

	"github.com/uxdsrini/homemade-v2/homemadedb"
)

const (
	collectionRecipes    = "recipes"
	collectionHomemakers = "homemakers"
	collectionOrders     = "orders"
)

var (
	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = errors.New("store: document not found")

	// ErrAlreadyExists is returned when creating a document whose ID is taken.
	ErrAlreadyExists = errors.New("store: document already exists")
)

// Recipes accesses the recipes collection.
type Recipes interface {
	// ListPublishedRecipes returns recipes with status published in the category.
	ListPublishedRecipes(ctx context.Context, category homemadedb.RecipeCategory) ([]homemadedb.Recipe, error)

	// ListHomemakerRecipes returns all recipes owned by the homemaker, in any status.
	ListHomemakerRecipes(ctx context.Context, homemakerID string) ([]homemadedb.Recipe, error)

	GetRecipe(ctx context.Context, id string) (*homemadedb.Recipe, error)

	// NewRecipeID reserves an ID for a recipe that is not stored yet.
	NewRecipeID() string

	// CreateRecipe stores a new recipe. If recipe.ID is empty a new ID is
	// assigned, otherwise ErrAlreadyExists is returned when the ID is taken.
	CreateRecipe(ctx context.Context, recipe *homemadedb.Recipe) error

	UpdateRecipe(ctx context.Context, recipe *homemadedb.Recipe) error

	DeleteRecipe(ctx context.Context, id string) error

	// HasRecipes reports whether any recipe is stored.
	HasRecipes(ctx context.Context) (bool, error)
}

// Homemakers accesses the homemakers collection.
type Homemakers interface {
	// GetHomemaker returns the homemaker with the UID or ErrNotFound.
	GetHomemaker(ctx context.Context, uid string) (*homemadedb.Homemaker, error)

	SaveHomemaker(ctx context.Context, homemaker *homemadedb.Homemaker) error
}

// Orders accesses the orders collection.
type Orders interface {
	// CreateOrder stores a new order. If order.ID is empty a new ID is assigned,
	// otherwise ErrAlreadyExists is returned when the ID is taken.
	CreateOrder(ctx context.Context, order *homemadedb.Order) error

	GetOrder(ctx context.Context, id string) (*homemadedb.Order, error)

	UpdateOrder(ctx context.Context, order *homemadedb.Order) error

	// ListCustomerOrders returns the orders placed by the user, newest first.
	ListCustomerOrders(ctx context.Context, userID string) ([]homemadedb.Order, error)

	// ListHomemakerOrders returns the orders for the homemaker's recipes, newest first.
	ListHomemakerOrders(ctx context.Context, homemakerID string) ([]homemadedb.Order, error)
}

// Store accesses all marketplace collections.
type Store interface {
	Recipes
	Homemakers
	Orders
}
