// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getdashboard

import (
	"context"
	"fmt"
	"time"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
	"github.com/uxdsrini/homemade-v2/server/internal/dashboard"
)

// NewHandler returns a Handler counting today's orders by the calendar in loc.
func NewHandler(store dashboard.Store, loc *time.Location, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		store: store,
		loc:   loc,
		now:   now,
	}
}

type Handler struct {
	store dashboard.Store
	loc   *time.Location
	now   func() time.Time
}

func (h *Handler) GetDashboard(ctx context.Context, _ *homemadeapi.GetDashboardRequest) (*homemadeapi.GetDashboardResponse, error) {
	sum, err := dashboard.Summarize(ctx, h.store, auth.SessionFromContext(ctx).UID, h.now().In(h.loc))
	if err != nil {
		return nil, fmt.Errorf("getdashboard: %w", err)
	}
	return &homemadeapi.GetDashboardResponse{
		TotalRecipes:     sum.TotalRecipes,
		PendingOrders:    sum.PendingOrders,
		TodayOrders:      sum.TodayOrders,
		Revenue:          sum.Revenue,
		FormattedRevenue: sum.FormattedRevenue,
	}, nil
}
