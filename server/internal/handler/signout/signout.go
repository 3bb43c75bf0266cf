// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package signout

import (
	"context"
	"fmt"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
)

type Accounts interface {
	SignOut(ctx context.Context, uid string) error
}

type Carts interface {
	End(uid string)
}

func NewHandler(accounts Accounts, carts Carts) *Handler {
	return &Handler{
		accounts: accounts,
		carts:    carts,
	}
}

type Handler struct {
	accounts Accounts
	carts    Carts
}

// SignOut revokes the user's refresh tokens and discards their cart.
func (h *Handler) SignOut(ctx context.Context, _ *homemadeapi.SignOutRequest) (*homemadeapi.SignOutResponse, error) {
	uid := auth.SessionFromContext(ctx).UID
	h.carts.End(uid)
	if err := h.accounts.SignOut(ctx, uid); err != nil {
		return nil, fmt.Errorf("signout: %w", err)
	}
	return &homemadeapi.SignOutResponse{}, nil
}
