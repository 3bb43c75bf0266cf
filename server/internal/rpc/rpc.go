// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package rpc serves Connect unary procedures of plain Go messages, checking
// the capability each procedure requires before calling it.
package rpc

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"connectrpc.com/connect"

	"github.com/uxdsrini/homemade-v2/server/internal/auth"
)

// Mux is where procedures are mounted, usually the server's chi router.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// NewRouter returns a Router mounting procedures on mux with opts applied to
// every handler.
func NewRouter(mux Mux, opts ...connect.HandlerOption) *Router {
	return &Router{
		mux:  mux,
		opts: append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...),
		caps: make(map[string]auth.Capability),
	}
}

type Router struct {
	mux  Mux
	opts []connect.HandlerOption

	mu   sync.RWMutex
	caps map[string]auth.Capability
}

// Public reports whether the procedure at path can be called without signing in.
func (r *Router) Public(path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.caps[path]
	return ok && c == auth.CapabilityBrowse
}

// Capability returns the capability required by the procedure at path.
func (r *Router) Capability(path string) (auth.Capability, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.caps[path]
	return c, ok
}

// HandleUnary mounts fn as procedure, callable by sessions holding c.
// Errors that are not Connect errors are logged and returned as internal.
func HandleUnary[Req, Res any](r *Router, procedure string, c auth.Capability, fn func(context.Context, *Req) (*Res, error)) {
	r.mu.Lock()
	r.caps[procedure] = c
	r.mu.Unlock()

	h := connect.NewUnaryHandler(procedure, func(ctx context.Context, req *connect.Request[Req]) (*connect.Response[Res], error) {
		if _, err := auth.Check(ctx, c); err != nil {
			return nil, err
		}
		res, err := fn(ctx, req.Msg)
		if err != nil {
			return nil, toConnectError(ctx, procedure, err)
		}
		return connect.NewResponse(res), nil
	}, r.opts...)
	r.mux.Handle(procedure, h)
}

func toConnectError(ctx context.Context, procedure string, err error) error {
	var cErr *connect.Error
	if errors.As(err, &cErr) {
		return err
	}
	slog.ErrorContext(ctx, "rpc: unhandled error", "procedure", procedure, "error", err)
	return connect.NewError(connect.CodeInternal, errors.New("internal error"))
}
