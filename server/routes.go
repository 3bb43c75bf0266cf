// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"time"

	homemadeapi "github.com/uxdsrini/homemade-v2/api/go"
	"github.com/uxdsrini/homemade-v2/server/internal/auth"
	"github.com/uxdsrini/homemade-v2/server/internal/cart"
	"github.com/uxdsrini/homemade-v2/server/internal/catalog"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/addtocart"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/checkout"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/confirmpayment"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/createorder"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/deleterecipe"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/getcart"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/getdashboard"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/listcatalog"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/listdeliveryslots"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/listincomingorders"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/listorders"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/listrecipes"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/removefromcart"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/saverecipe"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/signin"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/signout"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/signup"
	"github.com/uxdsrini/homemade-v2/server/internal/handler/updateorderstatus"
	"github.com/uxdsrini/homemade-v2/server/internal/ordering"
	"github.com/uxdsrini/homemade-v2/server/internal/recipes"
	"github.com/uxdsrini/homemade-v2/server/internal/rpc"
	"github.com/uxdsrini/homemade-v2/server/internal/store"
)

type services struct {
	store    store.Store
	accounts *auth.Accounts
	catalog  *catalog.Catalog
	recipes  *recipes.Service
	orders   *ordering.Service
	carts    *cart.Sessions

	// loc is the time zone of delivery dates.
	loc *time.Location
	now func() time.Time
}

func registerRoutes(r *rpc.Router, svc *services) {
	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceSignInProcedure,
		auth.CapabilityBrowse,
		signin.NewHandler(svc.accounts).SignIn)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceSignUpProcedure,
		auth.CapabilityBrowse,
		signup.NewHandler(svc.accounts).SignUp)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceSignOutProcedure,
		auth.CapabilitySession,
		signout.NewHandler(svc.accounts, svc.carts).SignOut)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceListCatalogProcedure,
		auth.CapabilityBrowse,
		listcatalog.NewHandler(svc.catalog).ListCatalog)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceListDeliverySlotsProcedure,
		auth.CapabilityBrowse,
		listdeliveryslots.NewHandler(svc.loc, svc.now).ListDeliverySlots)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceListRecipesProcedure,
		auth.CapabilityManageRecipes,
		listrecipes.NewHandler(svc.recipes).ListRecipes)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceSaveRecipeProcedure,
		auth.CapabilityManageRecipes,
		saverecipe.NewHandler(svc.recipes).SaveRecipe)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceDeleteRecipeProcedure,
		auth.CapabilityManageRecipes,
		deleterecipe.NewHandler(svc.recipes).DeleteRecipe)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceCreateOrderProcedure,
		auth.CapabilityOrder,
		createorder.NewHandler(svc.orders).CreateOrder)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceConfirmPaymentProcedure,
		auth.CapabilityOrder,
		confirmpayment.NewHandler(svc.orders).ConfirmPayment)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceListOrdersProcedure,
		auth.CapabilityOrder,
		listorders.NewHandler(svc.store).ListOrders)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceListIncomingOrdersProcedure,
		auth.CapabilityViewIncomingOrders,
		listincomingorders.NewHandler(svc.store).ListIncomingOrders)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceUpdateOrderStatusProcedure,
		auth.CapabilityViewIncomingOrders,
		updateorderstatus.NewHandler(svc.orders).UpdateOrderStatus)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceGetDashboardProcedure,
		auth.CapabilityViewIncomingOrders,
		getdashboard.NewHandler(svc.store, svc.loc, svc.now).GetDashboard)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceGetCartProcedure,
		auth.CapabilityCart,
		getcart.NewHandler(svc.carts).GetCart)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceAddToCartProcedure,
		auth.CapabilityCart,
		addtocart.NewHandler(svc.carts, svc.orders).AddToCart)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceRemoveFromCartProcedure,
		auth.CapabilityCart,
		removefromcart.NewHandler(svc.carts).RemoveFromCart)

	rpc.HandleUnary(r,
		homemadeapi.MarketplaceServiceCheckoutProcedure,
		auth.CapabilityCart,
		checkout.NewHandler(svc.carts, svc.orders).Checkout)
}
