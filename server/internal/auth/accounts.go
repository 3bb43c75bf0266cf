// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package auth signs users in and resolves the session and capabilities of requests.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/store"
)

const minPasswordLength = 6

var (
	// ErrInvalidCredentials is returned for any failed sign-in.
	ErrInvalidCredentials = errors.New("auth: invalid email or password")

	// ErrInvalidInput is returned for a sign-up request that cannot create an account.
	ErrInvalidInput = errors.New("auth: invalid input")

	// ErrEmailTaken is returned when signing up with an email that already has an account.
	ErrEmailTaken = errors.New("auth: email already in use")
)

// Credentials are the tokens of a signed-in user.
type Credentials struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string

	// ExpiresIn is the lifetime of IDToken in seconds.
	ExpiresIn string
}

// PasswordVerifier signs in users with email and password.
type PasswordVerifier interface {
	VerifyPassword(ctx context.Context, email string, password string) (*Credentials, error)
}

// UserAdmin manages user accounts.
type UserAdmin interface {
	// CreateUser creates an account and returns its UID. It returns an error
	// wrapping ErrEmailTaken if the email is already in use.
	CreateUser(ctx context.Context, email string, password string, displayName string) (string, error)

	// CustomClaims returns the custom claims of the user.
	CustomClaims(ctx context.Context, uid string) (map[string]any, error)

	// SetCustomClaims replaces the custom claims of the user.
	SetCustomClaims(ctx context.Context, uid string, claims map[string]any) error

	// RevokeSessions revokes the refresh tokens of the user.
	RevokeSessions(ctx context.Context, uid string) error
}

// SignInResult is returned by a successful sign-in or sign-up.
type SignInResult struct {
	Credentials
	UserType homemadedb.UserType

	// Redirect is the page to show next.
	Redirect string
}

// SignUpInput describes a new account.
type SignUpInput struct {
	Email       string
	Password    string
	DisplayName string
	UserType    homemadedb.UserType
}

// NewAccounts returns Accounts.
func NewAccounts(verifier PasswordVerifier, admin UserAdmin, homemakers store.Homemakers) *Accounts {
	return &Accounts{
		verifier:   verifier,
		admin:      admin,
		homemakers: homemakers,
		now:        time.Now,
	}
}

// Accounts signs users up, in and out.
type Accounts struct {
	verifier   PasswordVerifier
	admin      UserAdmin
	homemakers store.Homemakers
	now        func() time.Time
}

// SignIn verifies the password and returns the user's tokens. Every failure
// to verify is ErrInvalidCredentials.
func (a *Accounts) SignIn(ctx context.Context, email string, password string) (*SignInResult, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	creds, err := a.verifier.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	claims, err := a.admin.CustomClaims(ctx, creds.UID)
	if err != nil {
		return nil, fmt.Errorf("auth: getting claims of %s: %w", creds.UID, err)
	}
	userType, err := ResolveUserType(ctx, a.homemakers, creds.UID, claims)
	if err != nil {
		return nil, err
	}

	return &SignInResult{
		Credentials: *creds,
		UserType:    userType,
		Redirect:    RedirectFor(userType),
	}, nil
}

// SignUp creates an account, records its user type, and signs it in.
// Homemakers also get a homemaker document holding their display name.
func (a *Accounts) SignUp(ctx context.Context, in SignUpInput) (*SignInResult, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	if err := validateSignUp(in); err != nil {
		return nil, err
	}

	uid, err := a.admin.CreateUser(ctx, in.Email, in.Password, in.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("auth: creating user: %w", err)
	}

	if err := a.admin.SetCustomClaims(ctx, uid, map[string]any{UserTypeClaim: string(in.UserType)}); err != nil {
		return nil, fmt.Errorf("auth: setting user type of %s: %w", uid, err)
	}

	if in.UserType == homemadedb.UserTypeHomemaker {
		if err := a.homemakers.SaveHomemaker(ctx, &homemadedb.Homemaker{
			UID:         uid,
			DisplayName: in.DisplayName,
			Email:       in.Email,
			CreatedAt:   a.now(),
		}); err != nil {
			return nil, fmt.Errorf("auth: saving homemaker %s: %w", uid, err)
		}
	}

	creds, err := a.verifier.VerifyPassword(ctx, in.Email, in.Password)
	if err != nil {
		return nil, fmt.Errorf("auth: signing in new user %s: %w", uid, err)
	}

	return &SignInResult{
		Credentials: *creds,
		UserType:    in.UserType,
		Redirect:    RedirectFor(in.UserType),
	}, nil
}

func validateSignUp(in SignUpInput) error {
	var problems []string
	if _, err := mail.ParseAddress(in.Email); err != nil {
		problems = append(problems, "a valid email is required")
	}
	if len(in.Password) < minPasswordLength {
		problems = append(problems, fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if in.DisplayName == "" {
		problems = append(problems, "name is required")
	}
	if !in.UserType.Valid() {
		problems = append(problems, "user type must be customer or homemaker")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

// SignOut revokes the user's refresh tokens.
func (a *Accounts) SignOut(ctx context.Context, uid string) error {
	if err := a.admin.RevokeSessions(ctx, uid); err != nil {
		return fmt.Errorf("auth: revoking sessions of %s: %w", uid, err)
	}
	return nil
}
