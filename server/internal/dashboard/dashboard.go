// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package dashboard computes the figures shown on a homemaker's dashboard.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/uxdsrini/homemade-v2/homemadedb"
)

type Store interface {
	ListHomemakerRecipes(ctx context.Context, homemakerID string) ([]homemadedb.Recipe, error)
	ListHomemakerOrders(ctx context.Context, homemakerID string) ([]homemadedb.Order, error)
}

// Summary is a homemaker's dashboard.
type Summary struct {
	TotalRecipes  int `json:"totalRecipes"`
	PendingOrders int `json:"pendingOrders"`

	// TodayOrders counts the orders to be delivered today.
	TodayOrders int `json:"todayOrders"`

	// Revenue is the total amount of orders with completed payment.
	Revenue          float64 `json:"revenue"`
	FormattedRevenue string  `json:"formattedRevenue"`
}

// Summarize loads the homemaker's recipes and orders and summarizes them.
// Today is the calendar day of now in now's location.
func Summarize(ctx context.Context, s Store, homemakerID string, now time.Time) (*Summary, error) {
	var (
		recipes []homemadedb.Recipe
		orders  []homemadedb.Order
	)

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		recipes, err = s.ListHomemakerRecipes(ctx, homemakerID)
		if err != nil {
			return fmt.Errorf("dashboard: listing recipes: %w", err)
		}
		return nil
	})
	grp.Go(func() error {
		var err error
		orders, err = s.ListHomemakerOrders(ctx, homemakerID)
		if err != nil {
			return fmt.Errorf("dashboard: listing orders: %w", err)
		}
		return nil
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	sum := Compute(recipes, orders, now.Format(time.DateOnly))
	return &sum, nil
}

// Compute summarizes recipes and orders. today is formatted YYYY-MM-DD.
func Compute(recipes []homemadedb.Recipe, orders []homemadedb.Order, today string) Summary {
	sum := Summary{
		TotalRecipes: len(recipes),
	}
	for _, o := range orders {
		if o.Status == homemadedb.OrderStatusPending {
			sum.PendingOrders++
		}
		if o.DeliveryDate == today {
			sum.TodayOrders++
		}
		sum.Revenue += Revenue(o)
	}
	sum.Revenue = homemadedb.RoundAmount(sum.Revenue)
	sum.FormattedRevenue = homemadedb.FormatAmount(sum.Revenue)
	return sum
}

// Revenue is the amount the order contributes to revenue, its total if
// payment completed and zero otherwise.
func Revenue(o homemadedb.Order) float64 {
	if o.PaymentStatus != homemadedb.PaymentStatusCompleted {
		return 0
	}
	return o.TotalAmount
}
