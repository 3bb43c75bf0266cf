// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package homemadeapi defines the messages and procedures of the marketplace API.
package homemadeapi

// MarketplaceServiceName is the fully-qualified name of the MarketplaceService service.
const MarketplaceServiceName = "homemade.v1.MarketplaceService"

const (
	MarketplaceServiceSignInProcedure             = "/" + MarketplaceServiceName + "/SignIn"
	MarketplaceServiceSignUpProcedure             = "/" + MarketplaceServiceName + "/SignUp"
	MarketplaceServiceSignOutProcedure            = "/" + MarketplaceServiceName + "/SignOut"
	MarketplaceServiceListCatalogProcedure        = "/" + MarketplaceServiceName + "/ListCatalog"
	MarketplaceServiceListDeliverySlotsProcedure  = "/" + MarketplaceServiceName + "/ListDeliverySlots"
	MarketplaceServiceListRecipesProcedure        = "/" + MarketplaceServiceName + "/ListRecipes"
	MarketplaceServiceSaveRecipeProcedure         = "/" + MarketplaceServiceName + "/SaveRecipe"
	MarketplaceServiceDeleteRecipeProcedure       = "/" + MarketplaceServiceName + "/DeleteRecipe"
	MarketplaceServiceCreateOrderProcedure        = "/" + MarketplaceServiceName + "/CreateOrder"
	MarketplaceServiceConfirmPaymentProcedure     = "/" + MarketplaceServiceName + "/ConfirmPayment"
	MarketplaceServiceListOrdersProcedure         = "/" + MarketplaceServiceName + "/ListOrders"
	MarketplaceServiceListIncomingOrdersProcedure = "/" + MarketplaceServiceName + "/ListIncomingOrders"
	MarketplaceServiceUpdateOrderStatusProcedure  = "/" + MarketplaceServiceName + "/UpdateOrderStatus"
	MarketplaceServiceGetDashboardProcedure       = "/" + MarketplaceServiceName + "/GetDashboard"
	MarketplaceServiceGetCartProcedure            = "/" + MarketplaceServiceName + "/GetCart"
	MarketplaceServiceAddToCartProcedure          = "/" + MarketplaceServiceName + "/AddToCart"
	MarketplaceServiceRemoveFromCartProcedure     = "/" + MarketplaceServiceName + "/RemoveFromCart"
	MarketplaceServiceCheckoutProcedure           = "/" + MarketplaceServiceName + "/Checkout"
)
