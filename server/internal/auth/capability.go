// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"connectrpc.com/connect"

	"github.com/uxdsrini/homemade-v2/homemadedb"
)

// Capability is something a route lets its caller do.
type Capability string

const (
	// CapabilityBrowse is open to everyone, signed in or not.
	CapabilityBrowse             Capability = "browse"
	CapabilityOrder              Capability = "order"
	CapabilityCart               Capability = "cart"
	CapabilityManageRecipes      Capability = "manage_recipes"
	CapabilityViewIncomingOrders Capability = "view_incoming_orders"

	// CapabilitySession is held by any signed-in user.
	CapabilitySession Capability = "session"
)

var capabilities = map[homemadedb.UserType][]Capability{
	homemadedb.UserTypeCustomer:  {CapabilityBrowse, CapabilitySession, CapabilityOrder, CapabilityCart},
	homemadedb.UserTypeHomemaker: {CapabilityBrowse, CapabilitySession, CapabilityManageRecipes, CapabilityViewIncomingOrders},
}

// Allows reports whether users of type t hold capability c.
func Allows(t homemadedb.UserType, c Capability) bool {
	return slices.Contains(capabilities[t], c)
}

// Check returns the session of ctx if it holds capability c. Browsing never
// requires a session, and the returned session may be nil for it.
func Check(ctx context.Context, c Capability) (*Session, error) {
	s := SessionFromContext(ctx)
	if c == CapabilityBrowse {
		return s, nil
	}
	if s == nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("sign in required"))
	}
	if !Allows(s.UserType, c) {
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("%s users cannot %s", s.UserType, c))
	}
	return s, nil
}

// RedirectFor is the page a user of type t lands on after signing in.
func RedirectFor(t homemadedb.UserType) string {
	if t == homemadedb.UserTypeHomemaker {
		return "/dashboard"
	}
	return "/"
}
