package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
	"github.com/uxdsrini/homemade-v2/server/internal/cart"
	"github.com/uxdsrini/homemade-v2/server/internal/catalog"
	"github.com/uxdsrini/homemade-v2/server/internal/ordering"
	"github.com/uxdsrini/homemade-v2/server/internal/payment"
	"github.com/uxdsrini/homemade-v2/server/internal/recipes"
	"github.com/uxdsrini/homemade-v2/server/internal/rpc"
	"github.com/uxdsrini/homemade-v2/server/internal/seed"
	"github.com/uxdsrini/homemade-v2/server/internal/store/storetest"
)

// accountsFake is both the password verifier and the user admin. ID tokens
// are the user's UID.
type accountsFake struct {
	passwords map[string]string
	uids      map[string]string
	claims    map[string]map[string]any
}

func (a *accountsFake) VerifyPassword(_ context.Context, email string, password string) (*auth.Credentials, error) {
	if p, ok := a.passwords[email]; !ok || p != password {
		return nil, errors.New("INVALID_LOGIN_CREDENTIALS")
	}
	uid := a.uids[email]
	return &auth.Credentials{UID: uid, Email: email, IDToken: uid, RefreshToken: "refresh", ExpiresIn: "3600"}, nil
}

func (a *accountsFake) CreateUser(_ context.Context, email string, password string, _ string) (string, error) {
	if _, ok := a.passwords[email]; ok {
		return "", auth.ErrEmailTaken
	}
	uid := "uid-" + strings.Split(email, "@")[0]
	a.passwords[email] = password
	a.uids[email] = uid
	return uid, nil
}

func (a *accountsFake) CustomClaims(_ context.Context, uid string) (map[string]any, error) {
	return a.claims[uid], nil
}

func (a *accountsFake) SetCustomClaims(_ context.Context, uid string, claims map[string]any) error {
	a.claims[uid] = claims
	return nil
}

func (a *accountsFake) RevokeSessions(context.Context, string) error {
	return nil
}

type testEnv struct {
	srv   *httptest.Server
	mem   *storetest.Memory
	carts *cart.Sessions
}

var testNow = time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mem := storetest.NewMemory()
	fake := &accountsFake{
		passwords: map[string]string{},
		uids:      map[string]string{},
		claims:    map[string]map[string]any{},
	}
	ist := time.FixedZone("IST", 5*60*60+30*60)
	orders := ordering.NewService(mem, payment.NewConfirmer(payment.StubGateway{}, 1, time.Millisecond))
	orders.SetClock(func() time.Time { return testNow })

	svc := &services{
		store:    mem,
		accounts: auth.NewAccounts(fake, fake, mem),
		catalog:  catalog.NewCatalog(mem, mem, seed.NewSeeder(mem), 4),
		recipes:  recipes.NewService(mem, nil),
		orders:   orders,
		carts:    cart.NewSessions(),
		loc:      ist,
		now:      func() time.Time { return testNow },
	}

	mux := chi.NewRouter()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if uid, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
				s, err := auth.SessionForToken(r.Context(), mem, &fbauth.Token{UID: uid, Claims: fake.claims[uid]})
				if err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				r = r.WithContext(auth.WithSession(r.Context(), s))
			}
			next.ServeHTTP(w, r)
		})
	})
	registerRoutes(rpc.NewRouter(mux), svc)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return &testEnv{srv: srv, mem: mem, carts: svc.carts}
}

func call[Req, Res any](t *testing.T, env *testEnv, procedure string, token string, req *Req) (*Res, error) {
	t.Helper()
	client := connect.NewClient[Req, Res](env.srv.Client(), env.srv.URL+procedure, connect.WithCodec(rpc.Codec{}))
	r := connect.NewRequest(req)
	if token != "" {
		r.Header().Set("Authorization", "Bearer "+token)
	}
	res, err := client.CallUnary(t.Context(), r)
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func signUp(t *testing.T, env *testEnv, name string, userType homemadedb.UserType) homemadeapi.Credentials {
	t.Helper()
	res, err := call[homemadeapi.SignUpRequest, homemadeapi.SignUpResponse](t, env,
		homemadeapi.MarketplaceServiceSignUpProcedure, "", &homemadeapi.SignUpRequest{
			Email:       strings.ToLower(strings.Fields(name)[0]) + "@example.com",
			Password:    "secret123",
			DisplayName: name,
			UserType:    userType,
		})
	require.NoError(t, err)
	return res.Credentials
}

var testAddress = homemadedb.Address{
	FullName: "Asha Rao",
	Phone:    "9876543210",
	Street:   "12 MG Road",
	City:     "Bengaluru",
	Pincode:  "560001",
}

func TestMarketplace(t *testing.T) {
	env := newTestEnv(t)

	homemaker := signUp(t, env, "Meena Kitchen", homemadedb.UserTypeHomemaker)
	assert.Equal(t, "/dashboard", homemaker.Redirect)
	customer := signUp(t, env, "Asha Rao", homemadedb.UserTypeCustomer)
	assert.Equal(t, "/", customer.Redirect)

	saved, err := call[homemadeapi.SaveRecipeRequest, homemadeapi.SaveRecipeResponse](t, env,
		homemadeapi.MarketplaceServiceSaveRecipeProcedure, homemaker.IDToken, &homemadeapi.SaveRecipeRequest{
			Recipe: homemadeapi.RecipeInput{
				Name:        "Idli",
				Category:    homemadedb.RecipeCategoryBreakfast,
				Price:       5,
				CookingTime: 30,
				ServingSize: 2,
				Status:      homemadedb.RecipeStatusPublished,
			},
		})
	require.NoError(t, err)
	require.Len(t, saved.Recipes, 1)
	idliID := saved.RecipeID

	catalogRes, err := call[homemadeapi.ListCatalogRequest, homemadeapi.ListCatalogResponse](t, env,
		homemadeapi.MarketplaceServiceListCatalogProcedure, "", &homemadeapi.ListCatalogRequest{
			Category: homemadedb.RecipeCategoryBreakfast,
		})
	require.NoError(t, err)
	require.Len(t, catalogRes.Recipes, 1)
	assert.Equal(t, idliID, catalogRes.Recipes[0].ID)
	assert.Equal(t, "Meena Kitchen", catalogRes.Recipes[0].HomemakerName)

	slots, err := call[homemadeapi.ListDeliverySlotsRequest, homemadeapi.ListDeliverySlotsResponse](t, env,
		homemadeapi.MarketplaceServiceListDeliverySlotsProcedure, "", &homemadeapi.ListDeliverySlotsRequest{})
	require.NoError(t, err)
	require.Len(t, slots.Dates, 7)
	assert.Equal(t, "2026-10-18", slots.Dates[0])
	assert.Equal(t, "10:00", slots.Times[0])

	created, err := call[homemadeapi.CreateOrderRequest, homemadeapi.CreateOrderResponse](t, env,
		homemadeapi.MarketplaceServiceCreateOrderProcedure, customer.IDToken, &homemadeapi.CreateOrderRequest{
			RecipeID:     idliID,
			Quantity:     2,
			DeliveryDate: slots.Dates[0],
			DeliveryTime: slots.Times[1],
			Address:      testAddress,
		})
	require.NoError(t, err)
	order := created.Order
	assert.Equal(t, 10.0, order.TotalAmount)
	assert.Equal(t, homemadedb.OrderStatusPending, order.Status)
	assert.Equal(t, homemadedb.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "Meena Kitchen", order.Recipe.HomemakerName)

	_, err = call[homemadeapi.UpdateOrderStatusRequest, homemadeapi.UpdateOrderStatusResponse](t, env,
		homemadeapi.MarketplaceServiceUpdateOrderStatusProcedure, homemaker.IDToken, &homemadeapi.UpdateOrderStatusRequest{
			OrderID: order.ID,
			Status:  homemadedb.OrderStatusPreparing,
		})
	require.Error(t, err)
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	paid, err := call[homemadeapi.ConfirmPaymentRequest, homemadeapi.ConfirmPaymentResponse](t, env,
		homemadeapi.MarketplaceServiceConfirmPaymentProcedure, customer.IDToken, &homemadeapi.ConfirmPaymentRequest{
			OrderID: order.ID,
		})
	require.NoError(t, err)
	assert.Equal(t, homemadedb.PaymentStatusCompleted, paid.Order.PaymentStatus)
	assert.NotEmpty(t, paid.Order.TransactionID)

	dash, err := call[homemadeapi.GetDashboardRequest, homemadeapi.GetDashboardResponse](t, env,
		homemadeapi.MarketplaceServiceGetDashboardProcedure, homemaker.IDToken, &homemadeapi.GetDashboardRequest{})
	require.NoError(t, err)
	assert.Equal(t, &homemadeapi.GetDashboardResponse{
		TotalRecipes:     1,
		PendingOrders:    1,
		TodayOrders:      1,
		Revenue:          10,
		FormattedRevenue: "₹10.00",
	}, dash)

	updated, err := call[homemadeapi.UpdateOrderStatusRequest, homemadeapi.UpdateOrderStatusResponse](t, env,
		homemadeapi.MarketplaceServiceUpdateOrderStatusProcedure, homemaker.IDToken, &homemadeapi.UpdateOrderStatusRequest{
			OrderID: order.ID,
			Status:  homemadedb.OrderStatusPreparing,
		})
	require.NoError(t, err)
	assert.Equal(t, homemadedb.OrderStatusPreparing, updated.Order.Status)

	mine, err := call[homemadeapi.ListOrdersRequest, homemadeapi.ListOrdersResponse](t, env,
		homemadeapi.MarketplaceServiceListOrdersProcedure, customer.IDToken, &homemadeapi.ListOrdersRequest{})
	require.NoError(t, err)
	require.Len(t, mine.Orders, 1)
	assert.Equal(t, homemadedb.OrderStatusPreparing, mine.Orders[0].Status)

	incoming, err := call[homemadeapi.ListIncomingOrdersRequest, homemadeapi.ListIncomingOrdersResponse](t, env,
		homemadeapi.MarketplaceServiceListIncomingOrdersProcedure, homemaker.IDToken, &homemadeapi.ListIncomingOrdersRequest{})
	require.NoError(t, err)
	require.Len(t, incoming.Orders, 1)
	assert.Equal(t, order.ID, incoming.Orders[0].ID)
}

func TestSignIn(t *testing.T) {
	env := newTestEnv(t)
	signUp(t, env, "Meena Kitchen", homemadedb.UserTypeHomemaker)

	res, err := call[homemadeapi.SignInRequest, homemadeapi.SignInResponse](t, env,
		homemadeapi.MarketplaceServiceSignInProcedure, "", &homemadeapi.SignInRequest{
			Email:    "meena@example.com",
			Password: "secret123",
		})
	require.NoError(t, err)
	assert.Equal(t, homemadedb.UserTypeHomemaker, res.UserType)
	assert.Equal(t, "/dashboard", res.Redirect)

	for _, req := range []*homemadeapi.SignInRequest{
		{Email: "meena@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "secret123"},
	} {
		_, err := call[homemadeapi.SignInRequest, homemadeapi.SignInResponse](t, env,
			homemadeapi.MarketplaceServiceSignInProcedure, "", req)
		require.Error(t, err)
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
		var cErr *connect.Error
		require.ErrorAs(t, err, &cErr)
		assert.Equal(t, "invalid email or password", cErr.Message())
	}
}

func TestSignUpErrors(t *testing.T) {
	env := newTestEnv(t)
	signUp(t, env, "Meena Kitchen", homemadedb.UserTypeHomemaker)

	_, err := call[homemadeapi.SignUpRequest, homemadeapi.SignUpResponse](t, env,
		homemadeapi.MarketplaceServiceSignUpProcedure, "", &homemadeapi.SignUpRequest{
			Email: "meena@example.com", Password: "secret123", DisplayName: "Meena", UserType: homemadedb.UserTypeCustomer,
		})
	require.Error(t, err)
	assert.Equal(t, connect.CodeAlreadyExists, connect.CodeOf(err))

	_, err = call[homemadeapi.SignUpRequest, homemadeapi.SignUpResponse](t, env,
		homemadeapi.MarketplaceServiceSignUpProcedure, "", &homemadeapi.SignUpRequest{
			Email: "new@example.com", Password: "123", DisplayName: "New", UserType: homemadedb.UserTypeCustomer,
		})
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestCapabilities(t *testing.T) {
	env := newTestEnv(t)
	homemaker := signUp(t, env, "Meena Kitchen", homemadedb.UserTypeHomemaker)
	customer := signUp(t, env, "Asha Rao", homemadedb.UserTypeCustomer)

	_, err := call[homemadeapi.CreateOrderRequest, homemadeapi.CreateOrderResponse](t, env,
		homemadeapi.MarketplaceServiceCreateOrderProcedure, "", &homemadeapi.CreateOrderRequest{})
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = call[homemadeapi.CreateOrderRequest, homemadeapi.CreateOrderResponse](t, env,
		homemadeapi.MarketplaceServiceCreateOrderProcedure, homemaker.IDToken, &homemadeapi.CreateOrderRequest{})
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	_, err = call[homemadeapi.ListRecipesRequest, homemadeapi.ListRecipesResponse](t, env,
		homemadeapi.MarketplaceServiceListRecipesProcedure, customer.IDToken, &homemadeapi.ListRecipesRequest{})
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	_, err = call[homemadeapi.GetDashboardRequest, homemadeapi.GetDashboardResponse](t, env,
		homemadeapi.MarketplaceServiceGetDashboardProcedure, customer.IDToken, &homemadeapi.GetDashboardRequest{})
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	_, err = call[homemadeapi.GetCartRequest, homemadeapi.GetCartResponse](t, env,
		homemadeapi.MarketplaceServiceGetCartProcedure, homemaker.IDToken, &homemadeapi.GetCartRequest{})
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	_, err = call[homemadeapi.SignOutRequest, homemadeapi.SignOutResponse](t, env,
		homemadeapi.MarketplaceServiceSignOutProcedure, "", &homemadeapi.SignOutRequest{})
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestRecipeManagement(t *testing.T) {
	env := newTestEnv(t)
	meena := signUp(t, env, "Meena Kitchen", homemadedb.UserTypeHomemaker)
	farida := signUp(t, env, "Farida Aunty", homemadedb.UserTypeHomemaker)

	save := func(token string, in homemadeapi.RecipeInput) (*homemadeapi.SaveRecipeResponse, error) {
		return call[homemadeapi.SaveRecipeRequest, homemadeapi.SaveRecipeResponse](t, env,
			homemadeapi.MarketplaceServiceSaveRecipeProcedure, token, &homemadeapi.SaveRecipeRequest{Recipe: in})
	}

	idli, err := save(meena.IDToken, homemadeapi.RecipeInput{
		Name: "Idli", Category: homemadedb.RecipeCategoryBreakfast, Price: 5, Status: homemadedb.RecipeStatusPublished,
	})
	require.NoError(t, err)
	dosa, err := save(meena.IDToken, homemadeapi.RecipeInput{
		Name: "Dosa", Category: homemadedb.RecipeCategoryBreakfast, Price: 8, Status: homemadedb.RecipeStatusDraft,
	})
	require.NoError(t, err)
	require.Len(t, dosa.Recipes, 2)

	_, err = save(meena.IDToken, homemadeapi.RecipeInput{Name: "Bad", Category: "brunch", Status: homemadedb.RecipeStatusDraft})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = save(farida.IDToken, homemadeapi.RecipeInput{
		ID: idli.RecipeID, Name: "Idli", Category: homemadedb.RecipeCategoryBreakfast, Price: 1, Status: homemadedb.RecipeStatusPublished,
	})
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	catalogRes, err := call[homemadeapi.ListCatalogRequest, homemadeapi.ListCatalogResponse](t, env,
		homemadeapi.MarketplaceServiceListCatalogProcedure, "", &homemadeapi.ListCatalogRequest{Category: homemadedb.RecipeCategoryBreakfast})
	require.NoError(t, err)
	require.Len(t, catalogRes.Recipes, 1, "drafts are not in the catalog")

	del := func(token string, id string, confirm bool) (*homemadeapi.DeleteRecipeResponse, error) {
		return call[homemadeapi.DeleteRecipeRequest, homemadeapi.DeleteRecipeResponse](t, env,
			homemadeapi.MarketplaceServiceDeleteRecipeProcedure, token, &homemadeapi.DeleteRecipeRequest{RecipeID: id, Confirm: confirm})
	}

	_, err = del(meena.IDToken, idli.RecipeID, false)
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))
	_, err = del(farida.IDToken, idli.RecipeID, true)
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	deleted, err := del(meena.IDToken, idli.RecipeID, true)
	require.NoError(t, err)
	require.Len(t, deleted.Recipes, 1)
	assert.Equal(t, dosa.RecipeID, deleted.Recipes[0].ID)

	list, err := call[homemadeapi.ListRecipesRequest, homemadeapi.ListRecipesResponse](t, env,
		homemadeapi.MarketplaceServiceListRecipesProcedure, meena.IDToken, &homemadeapi.ListRecipesRequest{})
	require.NoError(t, err)
	for _, r := range list.Recipes {
		assert.NotEqual(t, idli.RecipeID, r.ID)
	}
}

func TestCatalogSeedsEmptyStore(t *testing.T) {
	env := newTestEnv(t)

	res, err := call[homemadeapi.ListCatalogRequest, homemadeapi.ListCatalogResponse](t, env,
		homemadeapi.MarketplaceServiceListCatalogProcedure, "", &homemadeapi.ListCatalogRequest{Category: homemadedb.RecipeCategoryLunch})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Recipes)
	for _, r := range res.Recipes {
		assert.Equal(t, homemadedb.RecipeStatusPublished, r.Status)
		assert.NotEqual(t, homemadedb.UnknownChef, r.HomemakerName)
	}

	_, err = call[homemadeapi.ListCatalogRequest, homemadeapi.ListCatalogResponse](t, env,
		homemadeapi.MarketplaceServiceListCatalogProcedure, "", &homemadeapi.ListCatalogRequest{Category: "brunch"})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestCartCheckout(t *testing.T) {
	env := newTestEnv(t)
	meena := signUp(t, env, "Meena Kitchen", homemadedb.UserTypeHomemaker)
	asha := signUp(t, env, "Asha Rao", homemadedb.UserTypeCustomer)

	var ids []string
	for _, in := range []homemadeapi.RecipeInput{
		{Name: "Idli", Category: homemadedb.RecipeCategoryBreakfast, Price: 5, Status: homemadedb.RecipeStatusPublished},
		{Name: "Sambar Rice", Category: homemadedb.RecipeCategoryLunch, Price: 60, Status: homemadedb.RecipeStatusPublished},
	} {
		res, err := call[homemadeapi.SaveRecipeRequest, homemadeapi.SaveRecipeResponse](t, env,
			homemadeapi.MarketplaceServiceSaveRecipeProcedure, meena.IDToken, &homemadeapi.SaveRecipeRequest{Recipe: in})
		require.NoError(t, err)
		ids = append(ids, res.RecipeID)
	}

	add := func(id string, qty int) (*homemadeapi.AddToCartResponse, error) {
		return call[homemadeapi.AddToCartRequest, homemadeapi.AddToCartResponse](t, env,
			homemadeapi.MarketplaceServiceAddToCartProcedure, asha.IDToken, &homemadeapi.AddToCartRequest{RecipeID: id, Quantity: qty})
	}

	_, err := add(ids[0], 0)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	_, err = add("missing", 1)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = add(ids[0], 2)
	require.NoError(t, err)
	_, err = add(ids[1], 1)
	require.NoError(t, err)
	res, err := add(ids[0], 1)
	require.NoError(t, err)
	assert.Len(t, res.Cart.Entries, 2)
	assert.Equal(t, 75.0, res.Cart.Total)
	assert.Equal(t, "₹75.00", res.Cart.FormattedTotal)

	removed, err := call[homemadeapi.RemoveFromCartRequest, homemadeapi.RemoveFromCartResponse](t, env,
		homemadeapi.MarketplaceServiceRemoveFromCartProcedure, asha.IDToken, &homemadeapi.RemoveFromCartRequest{RecipeID: ids[1]})
	require.NoError(t, err)
	assert.Equal(t, 15.0, removed.Cart.Total)
	_, err = add(ids[1], 1)
	require.NoError(t, err)

	checkout := func(req *homemadeapi.CheckoutRequest) (*homemadeapi.CheckoutResponse, error) {
		return call[homemadeapi.CheckoutRequest, homemadeapi.CheckoutResponse](t, env,
			homemadeapi.MarketplaceServiceCheckoutProcedure, asha.IDToken, req)
	}

	_, err = checkout(&homemadeapi.CheckoutRequest{DeliveryDate: "2026-10-19", Address: testAddress})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	assert.Len(t, env.carts.Get("uid-asha").Entries(), 2, "failed checkout keeps the cart")

	placed, err := checkout(&homemadeapi.CheckoutRequest{
		DeliveryDate:   "2026-10-19",
		DeliveryTime:   "13:00",
		Address:        testAddress,
		IdempotencyKey: "checkout-1",
	})
	require.NoError(t, err)
	require.Len(t, placed.Orders, 2)
	assert.Equal(t, 15.0, placed.Orders[0].TotalAmount)
	assert.Equal(t, 60.0, placed.Orders[1].TotalAmount)

	cartRes, err := call[homemadeapi.GetCartRequest, homemadeapi.GetCartResponse](t, env,
		homemadeapi.MarketplaceServiceGetCartProcedure, asha.IDToken, &homemadeapi.GetCartRequest{})
	require.NoError(t, err)
	assert.Empty(t, cartRes.Cart.Entries)

	_, err = checkout(&homemadeapi.CheckoutRequest{DeliveryDate: "2026-10-19", DeliveryTime: "13:00", Address: testAddress})
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	_, err = add(ids[0], 1)
	require.NoError(t, err)
	_, err = call[homemadeapi.SignOutRequest, homemadeapi.SignOutResponse](t, env,
		homemadeapi.MarketplaceServiceSignOutProcedure, asha.IDToken, &homemadeapi.SignOutRequest{})
	require.NoError(t, err)
	assert.Empty(t, env.carts.Get("uid-asha").Entries(), "signing out ends the cart")
}
