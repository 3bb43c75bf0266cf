// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package homemadeapi

import (
	"github.com/uxdsrini/homemade-v2/homemadedb"
)

// Credentials are returned to a user who signed in or up.
type Credentials struct {
	UID          string              `json:"uid"`
	Email        string              `json:"email"`
	IDToken      string              `json:"idToken"`
	RefreshToken string              `json:"refreshToken"`
	ExpiresIn    string              `json:"expiresIn"`
	UserType     homemadedb.UserType `json:"userType"`

	// Redirect is the page to show after signing in, /dashboard for homemakers
	// and / for customers.
	Redirect string `json:"redirect"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Credentials
}

type SignUpRequest struct {
	Email       string              `json:"email"`
	Password    string              `json:"password"`
	DisplayName string              `json:"displayName"`
	UserType    homemadedb.UserType `json:"userType"`
}

type SignUpResponse struct {
	Credentials
}

type SignOutRequest struct{}

type SignOutResponse struct{}

// CatalogRecipe is a published recipe with the display name of its homemaker.
type CatalogRecipe struct {
	homemadedb.Recipe

	HomemakerName string `json:"homemakerName"`
}

type ListCatalogRequest struct {
	Category homemadedb.RecipeCategory `json:"category"`
}

type ListCatalogResponse struct {
	Recipes []CatalogRecipe `json:"recipes"`
}

type ListDeliverySlotsRequest struct{}

type ListDeliverySlotsResponse struct {
	// Dates are the deliverable days, YYYY-MM-DD, starting today.
	Dates []string `json:"dates"`

	// Times are the half-hour slots offered every day.
	Times []string `json:"times"`
}

type ListRecipesRequest struct{}

type ListRecipesResponse struct {
	Recipes []homemadedb.Recipe `json:"recipes"`
}

// RecipeInput is a recipe being created or edited by its homemaker.
type RecipeInput struct {
	// ID is empty to create a recipe.
	ID          string                    `json:"id,omitempty"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Category    homemadedb.RecipeCategory `json:"category"`
	CookingTime int                       `json:"cookingTime"`
	ServingSize int                       `json:"servingSize"`
	Price       float64                   `json:"price"`

	// Photos are URLs of existing photos or data URLs of new ones to upload.
	Photos []string                `json:"photos"`
	Status homemadedb.RecipeStatus `json:"status"`
}

type SaveRecipeRequest struct {
	Recipe RecipeInput `json:"recipe"`
}

type SaveRecipeResponse struct {
	RecipeID string              `json:"recipeId"`
	Recipes  []homemadedb.Recipe `json:"recipes"`
}

type DeleteRecipeRequest struct {
	RecipeID string `json:"recipeId"`

	// Confirm must be true, deleting a recipe cannot be undone.
	Confirm bool `json:"confirm"`
}

type DeleteRecipeResponse struct {
	Recipes []homemadedb.Recipe `json:"recipes"`
}

type CreateOrderRequest struct {
	RecipeID            string             `json:"recipeId"`
	Quantity            int                `json:"quantity"`
	DeliveryDate        string             `json:"deliveryDate"`
	DeliveryTime        string             `json:"deliveryTime"`
	Address             homemadedb.Address `json:"address"`
	SpecialInstructions string             `json:"specialInstructions,omitempty"`

	// IdempotencyKey, when set, makes retries return the order created first.
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

type CreateOrderResponse struct {
	Order *homemadedb.Order `json:"order"`
}

type ConfirmPaymentRequest struct {
	OrderID string `json:"orderId"`
}

type ConfirmPaymentResponse struct {
	Order *homemadedb.Order `json:"order"`
}

type ListOrdersRequest struct{}

type ListOrdersResponse struct {
	Orders []homemadedb.Order `json:"orders"`
}

type ListIncomingOrdersRequest struct{}

type ListIncomingOrdersResponse struct {
	Orders []homemadedb.Order `json:"orders"`
}

type UpdateOrderStatusRequest struct {
	OrderID string                 `json:"orderId"`
	Status  homemadedb.OrderStatus `json:"status"`
}

type UpdateOrderStatusResponse struct {
	Order *homemadedb.Order `json:"order"`
}

type GetDashboardRequest struct{}

type GetDashboardResponse struct {
	TotalRecipes     int     `json:"totalRecipes"`
	PendingOrders    int     `json:"pendingOrders"`
	TodayOrders      int     `json:"todayOrders"`
	Revenue          float64 `json:"revenue"`
	FormattedRevenue string  `json:"formattedRevenue"`
}

type CartEntry struct {
	Recipe   homemadedb.OrderRecipe `json:"recipe"`
	Quantity int                    `json:"quantity"`
}

type Cart struct {
	Entries        []CartEntry `json:"entries"`
	Total          float64     `json:"total"`
	FormattedTotal string      `json:"formattedTotal"`
}

type GetCartRequest struct{}

type GetCartResponse struct {
	Cart Cart `json:"cart"`
}

type AddToCartRequest struct {
	RecipeID string `json:"recipeId"`
	Quantity int    `json:"quantity"`
}

type AddToCartResponse struct {
	Cart Cart `json:"cart"`
}

type RemoveFromCartRequest struct {
	RecipeID string `json:"recipeId"`
}

type RemoveFromCartResponse struct {
	Cart Cart `json:"cart"`
}

type CheckoutRequest struct {
	DeliveryDate        string             `json:"deliveryDate"`
	DeliveryTime        string             `json:"deliveryTime"`
	Address             homemadedb.Address `json:"address"`
	SpecialInstructions string             `json:"specialInstructions,omitempty"`
	IdempotencyKey      string             `json:"idempotencyKey,omitempty"`
}

type CheckoutResponse struct {
	Orders []homemadedb.Order `json:"orders"`
}
