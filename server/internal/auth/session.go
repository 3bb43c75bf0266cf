// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/store"
)

// UserTypeClaim is the custom claim holding the user's type.
const UserTypeClaim = "userType"

// Session is the signed-in user of a request.
type Session struct {
	UID      string
	Email    string
	UserType homemadedb.UserType
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session of the request, or nil if the
// request is not signed in.
func SessionFromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}

// ResolveUserType returns the user type stored in claims. Users without the
// claim are homemakers if they have a homemaker document and customers
// otherwise.
func ResolveUserType(ctx context.Context, homemakers store.Homemakers, uid string, claims map[string]any) (homemadedb.UserType, error) {
	if v, ok := claims[UserTypeClaim].(string); ok {
		if t := homemadedb.UserType(v); t.Valid() {
			return t, nil
		}
	}

	_, err := homemakers.GetHomemaker(ctx, uid)
	switch {
	case err == nil:
		return homemadedb.UserTypeHomemaker, nil
	case errors.Is(err, store.ErrNotFound):
		return homemadedb.UserTypeCustomer, nil
	default:
		return "", fmt.Errorf("auth: looking up homemaker %s: %w", uid, err)
	}
}

// SessionForToken builds the session of a verified ID token.
func SessionForToken(ctx context.Context, homemakers store.Homemakers, tok *fbauth.Token) (*Session, error) {
	userType, err := ResolveUserType(ctx, homemakers, tok.UID, tok.Claims)
	if err != nil {
		return nil, err
	}
	email, _ := tok.Claims["email"].(string)
	return &Session{
		UID:      tok.UID,
		Email:    email,
		UserType: userType,
	}, nil
}

// NewMiddleware returns middleware attaching the Session of the verified
// Firebase ID token to the request. It must run after firebaseauth.
func NewMiddleware(homemakers store.Homemakers) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			tok := firebaseauth.TokenFromContext(ctx)
			if tok == nil {
				next.ServeHTTP(w, r)
				return
			}
			s, err := SessionForToken(ctx, homemakers, tok)
			if err != nil {
				slog.ErrorContext(ctx, "auth: resolving session", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(ctx, s)))
		})
	}
}
