// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package cart holds the recipes a customer has picked before checking out.
package cart

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/homemadedb"
)

// ErrInvalidQuantity is returned when adding a quantity less than 1.
var ErrInvalidQuantity = errors.New("cart: quantity must be at least 1")

// Entry is a recipe in the cart with the quantity to order.
type Entry struct {
	Recipe   homemadedb.OrderRecipe `json:"recipe"`
	Quantity int                    `json:"quantity"`
}

// Cart is one customer's cart. It is safe for concurrent use.
type Cart struct {
	mu      sync.Mutex
	entries []Entry
}

// Add puts quantity portions of recipe in the cart, adding to the quantity
// already there for the same recipe.
func (c *Cart) Add(recipe homemadedb.OrderRecipe, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].Recipe.ID == recipe.ID {
			c.entries[i].Quantity += quantity
			return nil
		}
	}
	c.entries = append(c.entries, Entry{Recipe: recipe, Quantity: quantity})
	return nil
}

// Remove takes the recipe out of the cart. Removing a recipe not in the cart
// does nothing.
func (c *Cart) Remove(recipeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = slices.DeleteFunc(c.entries, func(e Entry) bool {
		return e.Recipe.ID == recipeID
	})
}

// Entries returns a copy of the cart contents in the order they were added.
func (c *Cart) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.entries)
}

// Total is the sum of the order totals of every entry.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, e := range c.entries {
		total += homemadedb.OrderTotal(e.Recipe.Price, e.Quantity)
	}
	return homemadedb.RoundAmount(total)
}

// Deduct takes quantity portions of the recipe out of the cart, removing the
// entry once none are left. Portions added since quantity was read stay in
// the cart.
func (c *Cart) Deduct(recipeID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].Recipe.ID != recipeID {
			continue
		}
		c.entries[i].Quantity -= quantity
		if c.entries[i].Quantity <= 0 {
			c.entries = slices.Delete(c.entries, i, i+1)
		}
		return
	}
}

// View returns the cart as shown to the customer.
func (c *Cart) View() homemadeapi.Cart {
	entries := c.Entries()
	view := homemadeapi.Cart{
		Entries: make([]homemadeapi.CartEntry, len(entries)),
		Total:   c.Total(),
	}
	for i, e := range entries {
		view.Entries[i] = homemadeapi.CartEntry{
			Recipe:   e.Recipe,
			Quantity: e.Quantity,
		}
	}
	view.FormattedTotal = homemadedb.FormatAmount(view.Total)
	return view
}

// Sessions holds the cart of every signed-in customer.
type Sessions struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewSessions returns an empty Sessions.
func NewSessions() *Sessions {
	return &Sessions{
		carts: make(map[string]*Cart),
	}
}

// Get returns the user's cart, creating an empty one on first use.
func (s *Sessions) Get(uid string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[uid]
	if !ok {
		c = &Cart{}
		s.carts[uid] = c
	}
	return c
}

// End discards the user's cart.
func (s *Sessions) End(uid string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, uid)
}
