// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listdeliveryslots

import (
	"context"
	"time"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/server/internal/delivery"
)

// NewHandler returns a Handler offering dates in loc.
func NewHandler(loc *time.Location, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		loc: loc,
		now: now,
	}
}

type Handler struct {
	loc *time.Location
	now func() time.Time
}

func (h *Handler) ListDeliverySlots(_ context.Context, _ *homemadeapi.ListDeliverySlotsRequest) (*homemadeapi.ListDeliverySlotsResponse, error) {
	return &homemadeapi.ListDeliverySlotsResponse{
		Dates: delivery.Dates(h.now().In(h.loc)),
		Times: delivery.TimeSlots(),
	}, nil
}
