// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package signup

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/signin"
	"github.com/uxdsrini/homemade-v2/server/internal/rpc"
)

type Accounts interface {
	SignUp(ctx context.Context, in auth.SignUpInput) (*auth.SignInResult, error)
}

func NewHandler(accounts Accounts) *Handler {
	return &Handler{
		accounts: accounts,
	}
}

type Handler struct {
	accounts Accounts
}

func (h *Handler) SignUp(ctx context.Context, req *homemadeapi.SignUpRequest) (*homemadeapi.SignUpResponse, error) {
	res, err := h.accounts.SignUp(ctx, auth.SignUpInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		UserType:    req.UserType,
	})
	if err != nil {
		return nil, rpc.MapError(fmt.Errorf("signup: signing up: %w", err),
			rpc.ErrorCode{Err: auth.ErrInvalidInput, Code: connect.CodeInvalidArgument},
			rpc.ErrorCode{Err: auth.ErrEmailTaken, Code: connect.CodeAlreadyExists},
		)
	}
	return &homemadeapi.SignUpResponse{
		Credentials: signin.ToCredentials(res),
	}, nil
}
