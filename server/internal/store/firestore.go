// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/uxdsrini/homemade-v2/homemadedb"
)

// NewFirestore returns a Store backed by Firestore.
func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{
		client: client,
	}
}

// Firestore is a Store backed by Firestore.
type Firestore struct {
	client *firestore.Client
}

var _ Store = (*Firestore)(nil)

func (f *Firestore) ListPublishedRecipes(ctx context.Context, category homemadedb.RecipeCategory) ([]homemadedb.Recipe, error) {
	q := f.client.Collection(collectionRecipes).
		Where("status", "==", string(homemadedb.RecipeStatusPublished)).
		Where("category", "==", string(category))
	recipes, err := getAll(ctx, q, setRecipeID)
	if err != nil {
		return nil, fmt.Errorf("store: listing published %s recipes: %w", category, err)
	}
	return recipes, nil
}

func (f *Firestore) ListHomemakerRecipes(ctx context.Context, homemakerID string) ([]homemadedb.Recipe, error) {
	q := f.client.Collection(collectionRecipes).Where("homemakerId", "==", homemakerID)
	recipes, err := getAll(ctx, q, setRecipeID)
	if err != nil {
		return nil, fmt.Errorf("store: listing recipes of homemaker %s: %w", homemakerID, err)
	}
	return recipes, nil
}

func (f *Firestore) GetRecipe(ctx context.Context, id string) (*homemadedb.Recipe, error) {
	doc, err := f.client.Collection(collectionRecipes).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: getting recipe %s: %w", id, mapError(err))
	}
	var recipe homemadedb.Recipe
	if err := doc.DataTo(&recipe); err != nil {
		return nil, fmt.Errorf("store: unmarshalling recipe %s: %w", id, err)
	}
	setRecipeID(&recipe, doc.Ref.ID)
	return &recipe, nil
}

func (f *Firestore) NewRecipeID() string {
	return f.client.Collection(collectionRecipes).NewDoc().ID
}

func (f *Firestore) CreateRecipe(ctx context.Context, recipe *homemadedb.Recipe) error {
	col := f.client.Collection(collectionRecipes)
	var doc *firestore.DocumentRef
	if recipe.ID == "" {
		doc = col.NewDoc()
		recipe.ID = doc.ID
	} else {
		doc = col.Doc(recipe.ID)
	}
	if _, err := doc.Create(ctx, recipe); err != nil {
		return fmt.Errorf("store: creating recipe %s: %w", recipe.ID, mapError(err))
	}
	return nil
}

func (f *Firestore) UpdateRecipe(ctx context.Context, recipe *homemadedb.Recipe) error {
	if _, err := f.client.Collection(collectionRecipes).Doc(recipe.ID).Set(ctx, recipe); err != nil {
		return fmt.Errorf("store: updating recipe %s: %w", recipe.ID, mapError(err))
	}
	return nil
}

func (f *Firestore) DeleteRecipe(ctx context.Context, id string) error {
	if _, err := f.client.Collection(collectionRecipes).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("store: deleting recipe %s: %w", id, mapError(err))
	}
	return nil
}

func (f *Firestore) HasRecipes(ctx context.Context) (bool, error) {
	iter := f.client.Collection(collectionRecipes).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil {
		if errors.Is(err, iterator.Done) {
			return false, nil
		}
		return false, fmt.Errorf("store: checking for recipes: %w", err)
	}
	return true, nil
}

func (f *Firestore) GetHomemaker(ctx context.Context, uid string) (*homemadedb.Homemaker, error) {
	iter := f.client.Collection(collectionHomemakers).Where("uid", "==", uid).Limit(1).Documents(ctx)
	defer iter.Stop()
	doc, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: getting homemaker %s: %w", uid, err)
	}
	var homemaker homemadedb.Homemaker
	if err := doc.DataTo(&homemaker); err != nil {
		return nil, fmt.Errorf("store: unmarshalling homemaker %s: %w", uid, err)
	}
	return &homemaker, nil
}

func (f *Firestore) SaveHomemaker(ctx context.Context, homemaker *homemadedb.Homemaker) error {
	if _, err := f.client.Collection(collectionHomemakers).Doc(homemaker.UID).Set(ctx, homemaker); err != nil {
		return fmt.Errorf("store: saving homemaker %s: %w", homemaker.UID, mapError(err))
	}
	return nil
}

func (f *Firestore) CreateOrder(ctx context.Context, order *homemadedb.Order) error {
	col := f.client.Collection(collectionOrders)
	var doc *firestore.DocumentRef
	if order.ID == "" {
		doc = col.NewDoc()
		order.ID = doc.ID
	} else {
		doc = col.Doc(order.ID)
	}
	if _, err := doc.Create(ctx, order); err != nil {
		return fmt.Errorf("store: creating order %s: %w", order.ID, mapError(err))
	}
	return nil
}

func (f *Firestore) GetOrder(ctx context.Context, id string) (*homemadedb.Order, error) {
	doc, err := f.client.Collection(collectionOrders).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: getting order %s: %w", id, mapError(err))
	}
	var order homemadedb.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, fmt.Errorf("store: unmarshalling order %s: %w", id, err)
	}
	setOrderID(&order, doc.Ref.ID)
	return &order, nil
}

func (f *Firestore) UpdateOrder(ctx context.Context, order *homemadedb.Order) error {
	if _, err := f.client.Collection(collectionOrders).Doc(order.ID).Set(ctx, order); err != nil {
		return fmt.Errorf("store: updating order %s: %w", order.ID, mapError(err))
	}
	return nil
}

func (f *Firestore) ListCustomerOrders(ctx context.Context, userID string) ([]homemadedb.Order, error) {
	q := f.client.Collection(collectionOrders).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)
	orders, err := getAll(ctx, q, setOrderID)
	if err != nil {
		return nil, fmt.Errorf("store: listing orders of user %s: %w", userID, err)
	}
	return orders, nil
}

func (f *Firestore) ListHomemakerOrders(ctx context.Context, homemakerID string) ([]homemadedb.Order, error) {
	q := f.client.Collection(collectionOrders).
		Where("recipe.homemakerId", "==", homemakerID).
		OrderBy("createdAt", firestore.Desc)
	orders, err := getAll(ctx, q, setOrderID)
	if err != nil {
		return nil, fmt.Errorf("store: listing orders of homemaker %s: %w", homemakerID, err)
	}
	return orders, nil
}

// Documents written by other clients do not store their ID as a field, so it
// is always taken from the document reference.
func setRecipeID(r *homemadedb.Recipe, id string) {
	r.ID = id
}

func setOrderID(o *homemadedb.Order, id string) {
	o.ID = id
}

func getAll[T any](ctx context.Context, q firestore.Query, setID func(*T, string)) ([]T, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var res []T
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, fmt.Errorf("unmarshalling %s: %w", doc.Ref.ID, err)
		}
		setID(&v, doc.Ref.ID)
		res = append(res, v)
	}
	return res, nil
}

func mapError(err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	default:
		return err
	}
}
