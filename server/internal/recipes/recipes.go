// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package recipes lets homemakers manage their own recipes.
package recipes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uxdsrini/homemade-v2/file"
	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/store"
)

var (
	// ErrInvalidInput is returned for a recipe that cannot be saved.
	ErrInvalidInput = errors.New("recipes: invalid input")

	// ErrNotFound is returned when the recipe does not exist.
	ErrNotFound = errors.New("recipes: not found")

	// ErrNotOwner is returned when the recipe belongs to another homemaker.
	ErrNotOwner = errors.New("recipes: not the owner of the recipe")

	// ErrNotConfirmed is returned when deleting without confirmation.
	ErrNotConfirmed = errors.New("recipes: deletion not confirmed")
)

// PhotoWriter stores uploaded photos and returns their public URL.
type PhotoWriter interface {
	WriteFile(ctx context.Context, path string, contentType string, data []byte) (string, error)
}

// Input is a recipe as edited by its homemaker. Photos are URLs of photos
// already stored or data URLs of photos to upload.
type Input struct {
	ID          string
	Name        string
	Description string
	Category    homemadedb.RecipeCategory
	CookingTime int
	ServingSize int
	Price       float64
	Photos      []string
	Status      homemadedb.RecipeStatus
}

// NewService returns a Service.
func NewService(s store.Recipes, photos PhotoWriter) *Service {
	return &Service{
		store:  s,
		photos: photos,
		now:    time.Now,
	}
}

type Service struct {
	store  store.Recipes
	photos PhotoWriter
	now    func() time.Time
}

// SetClock replaces the clock used for timestamps.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// List returns all of the homemaker's recipes, drafts included.
func (s *Service) List(ctx context.Context, homemakerID string) ([]homemadedb.Recipe, error) {
	recipes, err := s.store.ListHomemakerRecipes(ctx, homemakerID)
	if err != nil {
		return nil, fmt.Errorf("recipes: listing recipes: %w", err)
	}
	if recipes == nil {
		recipes = []homemadedb.Recipe{}
	}
	return recipes, nil
}

// Save creates the recipe if in.ID is empty and otherwise replaces the
// homemaker's recipe with in. It returns the ID of the saved recipe.
func (s *Service) Save(ctx context.Context, homemakerID string, in Input) (string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := validate(in); err != nil {
		return "", err
	}

	photos, err := decodePhotos(in.Photos)
	if err != nil {
		return "", err
	}

	now := s.now()
	recipe := homemadedb.Recipe{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		CookingTime: in.CookingTime,
		ServingSize: in.ServingSize,
		Price:       in.Price,
		Status:      in.Status,
		HomemakerID: homemakerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if in.ID == "" {
		// Photos are stored under the recipe ID, which is reserved before the
		// recipe is written so a failed upload leaves nothing behind.
		recipe.ID = s.store.NewRecipeID()
	} else {
		existing, err := s.ownRecipe(ctx, homemakerID, in.ID)
		if err != nil {
			return "", err
		}
		recipe.CreatedAt = existing.CreatedAt
	}

	recipe.Photos, err = s.uploadPhotos(ctx, recipe.ID, photos)
	if err != nil {
		return "", err
	}

	if in.ID == "" {
		if err := s.store.CreateRecipe(ctx, &recipe); err != nil {
			return "", fmt.Errorf("recipes: creating recipe: %w", err)
		}
		return recipe.ID, nil
	}
	if err := s.store.UpdateRecipe(ctx, &recipe); err != nil {
		return "", fmt.Errorf("recipes: updating recipe %s: %w", recipe.ID, err)
	}
	return recipe.ID, nil
}

func validate(in Input) error {
	var problems []string
	if in.Name == "" {
		problems = append(problems, "name is required")
	}
	if !in.Category.Valid() {
		problems = append(problems, "category must be breakfast, lunch or dinner")
	}
	if !in.Status.Valid() {
		problems = append(problems, "status must be draft or published")
	}
	if in.Price < 0 {
		problems = append(problems, "price must not be negative")
	}
	if in.CookingTime < 0 {
		problems = append(problems, "cooking time must not be negative")
	}
	if in.ServingSize < 0 {
		problems = append(problems, "serving size must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

// photo is either the URL of a stored photo or an image to upload.
type photo struct {
	url   string
	image *file.Image
}

func decodePhotos(photos []string) ([]photo, error) {
	res := make([]photo, len(photos))
	for i, p := range photos {
		if !file.IsDataURL(p) {
			res[i].url = p
			continue
		}
		img, err := file.DecodeImageDataURL(p)
		if err != nil {
			return nil, fmt.Errorf("%w: photo %d: %w", ErrInvalidInput, i+1, err)
		}
		res[i].image = img
	}
	return res, nil
}

func (s *Service) uploadPhotos(ctx context.Context, recipeID string, photos []photo) ([]string, error) {
	urls := make([]string, len(photos))
	for i, p := range photos {
		if p.image == nil {
			urls[i] = p.url
			continue
		}
		url, err := s.photos.WriteFile(ctx, fmt.Sprintf("recipes/%s/photo-%03d.%s", recipeID, i+1, p.image.Ext), p.image.ContentType, p.image.Data)
		if err != nil {
			return nil, fmt.Errorf("recipes: saving photo %d: %w", i+1, err)
		}
		urls[i] = url
	}
	return urls, nil
}

// Delete removes the homemaker's recipe. Deletion cannot be undone and must
// be confirmed.
func (s *Service) Delete(ctx context.Context, homemakerID string, recipeID string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if _, err := s.ownRecipe(ctx, homemakerID, recipeID); err != nil {
		return err
	}
	if err := s.store.DeleteRecipe(ctx, recipeID); err != nil {
		return fmt.Errorf("recipes: deleting recipe %s: %w", recipeID, err)
	}
	return nil
}

func (s *Service) ownRecipe(ctx context.Context, homemakerID string, recipeID string) (*homemadedb.Recipe, error) {
	recipe, err := s.store.GetRecipe(ctx, recipeID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: recipe %s", ErrNotFound, recipeID)
	}
	if err != nil {
		return nil, fmt.Errorf("recipes: getting recipe: %w", err)
	}
	if recipe.HomemakerID != homemakerID {
		return nil, ErrNotOwner
	}
	return recipe, nil
}
