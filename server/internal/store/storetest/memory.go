// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package storetest provides an in-memory store for tests.
package storetest

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/store"
)

// Memory is an in-memory store.Store. It is safe for concurrent use. Like
// documents in Firestore, stored values do not keep their ID, which is set
// from the key when read.
type Memory struct {
	mu         sync.RWMutex
	recipes    map[string]homemadedb.Recipe
	homemakers map[string]homemadedb.Homemaker
	orders     map[string]homemadedb.Order

	failures map[string]error
	calls    map[string]int
}

var _ store.Store = (*Memory)(nil)

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{
		recipes:    make(map[string]homemadedb.Recipe),
		homemakers: make(map[string]homemadedb.Homemaker),
		orders:     make(map[string]homemadedb.Order),
		failures:   make(map[string]error),
		calls:      make(map[string]int),
	}
}

// FailOn makes every later call of the named method return err. A nil err
// clears the failure.
func (m *Memory) FailOn(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, method)
		return
	}
	m.failures[method] = err
}

// Calls returns how many times the named method was called.
func (m *Memory) Calls(method string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls[method]
}

// record must be called with mu held for writing.
func (m *Memory) record(method string) error {
	m.calls[method]++
	return m.failures[method]
}

func (m *Memory) ListPublishedRecipes(_ context.Context, category homemadedb.RecipeCategory) ([]homemadedb.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListPublishedRecipes"); err != nil {
		return nil, err
	}
	return m.filterRecipes(func(r homemadedb.Recipe) bool {
		return r.Status == homemadedb.RecipeStatusPublished && r.Category == category
	}), nil
}

func (m *Memory) ListHomemakerRecipes(_ context.Context, homemakerID string) ([]homemadedb.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListHomemakerRecipes"); err != nil {
		return nil, err
	}
	return m.filterRecipes(func(r homemadedb.Recipe) bool {
		return r.HomemakerID == homemakerID
	}), nil
}

func (m *Memory) filterRecipes(keep func(homemadedb.Recipe) bool) []homemadedb.Recipe {
	var res []homemadedb.Recipe
	for id, r := range m.recipes {
		r.ID = id
		if keep(r) {
			res = append(res, cloneRecipe(r))
		}
	}
	slices.SortFunc(res, func(a, b homemadedb.Recipe) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return res
}

func (m *Memory) GetRecipe(_ context.Context, id string) (*homemadedb.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("GetRecipe"); err != nil {
		return nil, err
	}
	r, ok := m.recipes[id]
	if !ok {
		return nil, fmt.Errorf("storetest: recipe %s: %w", id, store.ErrNotFound)
	}
	r = cloneRecipe(r)
	r.ID = id
	return &r, nil
}

func (m *Memory) NewRecipeID() string {
	return uuid.NewString()
}

func (m *Memory) CreateRecipe(_ context.Context, recipe *homemadedb.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CreateRecipe"); err != nil {
		return err
	}
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	} else if _, ok := m.recipes[recipe.ID]; ok {
		return fmt.Errorf("storetest: recipe %s: %w", recipe.ID, store.ErrAlreadyExists)
	}
	m.recipes[recipe.ID] = recipeDocument(*recipe)
	return nil
}

func (m *Memory) UpdateRecipe(_ context.Context, recipe *homemadedb.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("UpdateRecipe"); err != nil {
		return err
	}
	m.recipes[recipe.ID] = recipeDocument(*recipe)
	return nil
}

func (m *Memory) DeleteRecipe(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DeleteRecipe"); err != nil {
		return err
	}
	delete(m.recipes, id)
	return nil
}

func (m *Memory) HasRecipes(_ context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("HasRecipes"); err != nil {
		return false, err
	}
	return len(m.recipes) > 0, nil
}

func (m *Memory) GetHomemaker(_ context.Context, uid string) (*homemadedb.Homemaker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("GetHomemaker"); err != nil {
		return nil, err
	}
	h, ok := m.homemakers[uid]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &h, nil
}

func (m *Memory) SaveHomemaker(_ context.Context, homemaker *homemadedb.Homemaker) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("SaveHomemaker"); err != nil {
		return err
	}
	m.homemakers[homemaker.UID] = *homemaker
	return nil
}

func (m *Memory) CreateOrder(_ context.Context, order *homemadedb.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CreateOrder"); err != nil {
		return err
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	} else if _, ok := m.orders[order.ID]; ok {
		return fmt.Errorf("storetest: order %s: %w", order.ID, store.ErrAlreadyExists)
	}
	m.orders[order.ID] = orderDocument(*order)
	return nil
}

func (m *Memory) GetOrder(_ context.Context, id string) (*homemadedb.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("GetOrder"); err != nil {
		return nil, err
	}
	o, ok := m.orders[id]
	if !ok {
		return nil, fmt.Errorf("storetest: order %s: %w", id, store.ErrNotFound)
	}
	o = cloneOrder(o)
	o.ID = id
	return &o, nil
}

func (m *Memory) UpdateOrder(_ context.Context, order *homemadedb.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("UpdateOrder"); err != nil {
		return err
	}
	m.orders[order.ID] = orderDocument(*order)
	return nil
}

func (m *Memory) ListCustomerOrders(_ context.Context, userID string) ([]homemadedb.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListCustomerOrders"); err != nil {
		return nil, err
	}
	return m.filterOrders(func(o homemadedb.Order) bool {
		return o.UserID == userID
	}), nil
}

func (m *Memory) ListHomemakerOrders(_ context.Context, homemakerID string) ([]homemadedb.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListHomemakerOrders"); err != nil {
		return nil, err
	}
	return m.filterOrders(func(o homemadedb.Order) bool {
		return o.Recipe.HomemakerID == homemakerID
	}), nil
}

func (m *Memory) filterOrders(keep func(homemadedb.Order) bool) []homemadedb.Order {
	var res []homemadedb.Order
	for id, o := range m.orders {
		o.ID = id
		if keep(o) {
			res = append(res, cloneOrder(o))
		}
	}
	slices.SortFunc(res, func(a, b homemadedb.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return res
}

func cloneRecipe(r homemadedb.Recipe) homemadedb.Recipe {
	r.Photos = slices.Clone(r.Photos)
	return r
}

func recipeDocument(r homemadedb.Recipe) homemadedb.Recipe {
	r = cloneRecipe(r)
	r.ID = ""
	return r
}

func orderDocument(o homemadedb.Order) homemadedb.Order {
	o = cloneOrder(o)
	o.ID = ""
	return o
}

func cloneOrder(o homemadedb.Order) homemadedb.Order {
	o.Recipe.Photos = slices.Clone(o.Recipe.Photos)
	return o
}
