// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package signin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
)

type Accounts interface {
	SignIn(ctx context.Context, email string, password string) (*auth.SignInResult, error)
}

func NewHandler(accounts Accounts) *Handler {
	return &Handler{
		accounts: accounts,
	}
}

type Handler struct {
	accounts Accounts
}

func (h *Handler) SignIn(ctx context.Context, req *homemadeapi.SignInRequest) (*homemadeapi.SignInResponse, error) {
	res, err := h.accounts.SignIn(ctx, req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		// The cause is not returned so clients cannot tell unknown emails from
		// wrong passwords.
		slog.InfoContext(ctx, "signin: sign-in failed", "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("invalid email or password"))
	}
	if err != nil {
		return nil, fmt.Errorf("signin: signing in: %w", err)
	}
	return &homemadeapi.SignInResponse{
		Credentials: ToCredentials(res),
	}, nil
}

// ToCredentials converts a sign-in result to the credentials returned to the client.
func ToCredentials(res *auth.SignInResult) homemadeapi.Credentials {
	return homemadeapi.Credentials{
		UID:          res.UID,
		Email:        res.Email,
		IDToken:      res.IDToken,
		RefreshToken: res.RefreshToken,
		ExpiresIn:    res.ExpiresIn,
		UserType:     res.UserType,
		Redirect:     res.Redirect,
	}
}
