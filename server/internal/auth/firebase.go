// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package auth

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// NewIdentityToolkit returns a PasswordVerifier calling the Identity Toolkit
// API of the Firebase project owning apiKey.
func NewIdentityToolkit(ctx context.Context, apiKey string) (*IdentityToolkit, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("auth: creating identity toolkit client: %w", err)
	}
	return &IdentityToolkit{svc: svc}, nil
}

type IdentityToolkit struct {
	svc *identitytoolkit.Service
}

func (t *IdentityToolkit) VerifyPassword(ctx context.Context, email string, password string) (*Credentials, error) {
	res, err := t.svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("auth: verifying password: %w", err)
	}
	return &Credentials{
		UID:          res.LocalId,
		Email:        res.Email,
		IDToken:      res.IdToken,
		RefreshToken: res.RefreshToken,
		ExpiresIn:    fmt.Sprint(res.ExpiresIn),
	}, nil
}

// NewFirebaseAdmin returns a UserAdmin backed by Firebase Auth.
func NewFirebaseAdmin(client *fbauth.Client) *FirebaseAdmin {
	return &FirebaseAdmin{client: client}
}

type FirebaseAdmin struct {
	client *fbauth.Client
}

func (a *FirebaseAdmin) CreateUser(ctx context.Context, email string, password string, displayName string) (string, error) {
	u, err := a.client.CreateUser(ctx, (&fbauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName))
	if fbauth.IsEmailAlreadyExists(err) {
		return "", fmt.Errorf("%w: %s", ErrEmailTaken, email)
	}
	if err != nil {
		return "", fmt.Errorf("auth: creating firebase user: %w", err)
	}
	return u.UID, nil
}

func (a *FirebaseAdmin) CustomClaims(ctx context.Context, uid string) (map[string]any, error) {
	u, err := a.client.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("auth: getting firebase user: %w", err)
	}
	return u.CustomClaims, nil
}

func (a *FirebaseAdmin) SetCustomClaims(ctx context.Context, uid string, claims map[string]any) error {
	if err := a.client.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return fmt.Errorf("auth: setting custom claims: %w", err)
	}
	return nil
}

func (a *FirebaseAdmin) RevokeSessions(ctx context.Context, uid string) error {
	if err := a.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("auth: revoking refresh tokens: %w", err)
	}
	return nil
}
