// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package homemadedb

import "time"

type RecipeCategory string

const (
	RecipeCategoryBreakfast RecipeCategory = "breakfast"
	RecipeCategoryLunch     RecipeCategory = "lunch"
	RecipeCategoryDinner    RecipeCategory = "dinner"
)

// AllRecipeCategories lists the categories in menu order.
var AllRecipeCategories = []RecipeCategory{
	RecipeCategoryBreakfast,
	RecipeCategoryLunch,
	RecipeCategoryDinner,
}

// Valid reports whether c is a known category.
func (c RecipeCategory) Valid() bool {
	switch c {
	case RecipeCategoryBreakfast, RecipeCategoryLunch, RecipeCategoryDinner:
		return true
	}
	return false
}

type RecipeStatus string

const (
	// RecipeStatusDraft is a recipe only visible to its homemaker.
	RecipeStatusDraft RecipeStatus = "draft"
	// RecipeStatusPublished is a recipe visible in the catalog.
	RecipeStatusPublished RecipeStatus = "published"
)

// Valid reports whether s is a known status.
func (s RecipeStatus) Valid() bool {
	return s == RecipeStatusDraft || s == RecipeStatusPublished
}

// Recipe represents a dish listed by a homemaker, stored in the recipes collection.
type Recipe struct {
	// ID is the document ID of the recipe.
	ID string `firestore:"id" json:"id"`

	// Name is the name of the dish.
	Name string `firestore:"name" json:"name"`

	// Description is the description of the dish.
	Description string `firestore:"description" json:"description"`

	// Category is the meal the dish is served for.
	Category RecipeCategory `firestore:"category" json:"category"`

	// CookingTime is the cooking time in minutes.
	CookingTime int `firestore:"cookingTime" json:"cookingTime"`

	// ServingSize is the number of people the dish serves.
	ServingSize int `firestore:"servingSize" json:"servingSize"`

	// Price is the price of one serving order in rupees.
	Price float64 `firestore:"price" json:"price"`

	// Photos are URLs of photos of the dish. The first one is the main photo.
	Photos []string `firestore:"photos" json:"photos"`

	// Status is the visibility of the recipe.
	Status RecipeStatus `firestore:"status" json:"status"`

	// HomemakerID is the UID of the homemaker owning the recipe.
	HomemakerID string `firestore:"homemakerId" json:"homemakerId"`

	// CreatedAt is the timestamp when the recipe was created.
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`

	// UpdatedAt is the timestamp when the recipe was last updated.
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Homemaker is a cook account selling recipes. Homemakers are stored in the
// homemakers collection and referenced from recipes by UID only.
type Homemaker struct {
	// UID is the Firebase user ID of the homemaker.
	UID string `firestore:"uid" json:"uid"`

	// DisplayName is the name shown to customers.
	DisplayName string `firestore:"displayName" json:"displayName"`

	// Email is the sign-in email of the homemaker.
	Email string `firestore:"email,omitempty" json:"email,omitempty"`

	// CreatedAt is the timestamp when the homemaker signed up.
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

// UnknownChef is the name shown for a homemaker without a homemaker document.
const UnknownChef = "Unknown Chef"

type UserType string

const (
	UserTypeCustomer  UserType = "customer"
	UserTypeHomemaker UserType = "homemaker"
)

// Valid reports whether t is a known user type.
func (t UserType) Valid() bool {
	return t == UserTypeCustomer || t == UserTypeHomemaker
}
