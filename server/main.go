// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"connectrpc.com/connect"
	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/otel"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/uxdsrini/homemade-v2/file"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
	"github.com/uxdsrini/homemade-v2/server/internal/cart"
	"github.com/uxdsrini/homemade-v2/server/internal/catalog"
	"github.com/uxdsrini/homemade-v2/server/internal/config"
	"github.com/uxdsrini/homemade-v2/server/internal/ordering"
	"github.com/uxdsrini/homemade-v2/server/internal/payment"
	"github.com/uxdsrini/homemade-v2/server/internal/recipes"
	"github.com/uxdsrini/homemade-v2/server/internal/rpc"
	"github.com/uxdsrini/homemade-v2/server/internal/seed"
	"github.com/uxdsrini/homemade-v2/server/internal/store"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	_ = godotenv.Load()

	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("main: create firebase auth client: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	storage, err := storage.NewGRPCClient(ctx)
	if err != nil {
		return fmt.Errorf("main: create storage client: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close storage client", "error", err)
		}
	}()

	verifier, err := auth.NewIdentityToolkit(ctx, conf.Firebase.APIKey)
	if err != nil {
		return fmt.Errorf("main: create identity toolkit client: %w", err)
	}

	loc, err := time.LoadLocation(conf.Delivery.TimeZone)
	if err != nil {
		return fmt.Errorf("main: load delivery time zone: %w", err)
	}

	st := store.NewFirestore(firestore)
	confirmer := payment.NewConfirmer(payment.StubGateway{}, conf.Payment.MaxTries, conf.Payment.Interval())

	svc := &services{
		store:    st,
		accounts: auth.NewAccounts(verifier, auth.NewFirebaseAdmin(fbAuth), st),
		catalog:  catalog.NewCatalog(st, st, seed.NewSeeder(st), conf.Catalog.MaxLookups),
		recipes:  recipes.NewService(st, file.NewIO(storage, conf.PublicBucket())),
		orders:   ordering.NewService(st, confirmer),
		carts:    cart.NewSessions(),
		loc:      loc,
		now:      time.Now,
	}

	router := rpc.NewRouter(mux, connect.WithInterceptors(otel.ConnectInterceptor()))

	fbMW := firebaseauth.NewMiddleware(fbAuth)
	sessionMW := auth.NewMiddleware(st)
	mux.Use(middleware.Maybe(func(h http.Handler) http.Handler {
		return fbMW(sessionMW(h))
	}, func(r *http.Request) bool {
		switch {
		case strings.HasPrefix(r.URL.Path, "/internal/"):
			return false
		case router.Public(r.URL.Path):
			return false
		default:
			return true
		}
	}))

	registerRoutes(router, svc)

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
