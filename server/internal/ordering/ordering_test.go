package ordering

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxdsrini/homemade-v2/homemadedb"
	"github.com/uxdsrini/homemade-v2/server/internal/delivery"
	"github.com/uxdsrini/homemade-v2/server/internal/payment"
	"github.com/uxdsrini/homemade-v2/server/internal/store/storetest"
)

var fixedNow = time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)

type fakePayer struct {
	result payment.Result
	err    error
	calls  int
}

func (p *fakePayer) Pay(context.Context, payment.Charge) (payment.Result, error) {
	p.calls++
	return p.result, p.err
}

var testAddress = homemadedb.Address{
	FullName: "Asha Rao",
	Phone:    "9876543210",
	Street:   "12 MG Road",
	City:     "Bengaluru",
	Pincode:  "560001",
}

func newTestService(t *testing.T) (*Service, *storetest.Memory, *fakePayer, homemadedb.Recipe) {
	t.Helper()
	mem := storetest.NewMemory()
	require.NoError(t, mem.SaveHomemaker(t.Context(), &homemadedb.Homemaker{UID: "hm-1", DisplayName: "Meena"}))
	recipe := homemadedb.Recipe{
		Name:        "Idli",
		Category:    homemadedb.RecipeCategoryBreakfast,
		Price:       5,
		Photos:      []string{"https://example.com/idli.jpg"},
		Status:      homemadedb.RecipeStatusPublished,
		HomemakerID: "hm-1",
	}
	require.NoError(t, mem.CreateRecipe(t.Context(), &recipe))

	payer := &fakePayer{result: payment.Result{TransactionID: "txn-1", Status: homemadedb.PaymentStatusCompleted}}
	svc := NewService(mem, payer)
	svc.SetClock(func() time.Time { return fixedNow })
	return svc, mem, payer, recipe
}

func validInput(recipeID string, quantity int) Input {
	return Input{
		RecipeID: recipeID,
		Quantity: quantity,
		Slot:     delivery.Slot{Date: "2026-10-19", Time: "12:30"},
		Address:  testAddress,
	}
}

func TestCreate(t *testing.T) {
	svc, mem, _, recipe := newTestService(t)

	order, err := svc.Create(t.Context(), "cust-1", validInput(recipe.ID, 2))
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "cust-1", order.UserID)
	assert.Equal(t, homemadedb.OrderRecipe{
		ID:            recipe.ID,
		Name:          "Idli",
		Price:         5,
		HomemakerID:   "hm-1",
		HomemakerName: "Meena",
		Photos:        []string{"https://example.com/idli.jpg"},
	}, order.Recipe)
	assert.Equal(t, 10.0, order.TotalAmount)
	assert.Equal(t, homemadedb.OrderStatusPending, order.Status)
	assert.Equal(t, homemadedb.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, fixedNow, order.CreatedAt)
	assert.Equal(t, fixedNow, order.UpdatedAt)

	stored, err := mem.GetOrder(t.Context(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, stored)
}

func TestCreateTotalIsPriceTimesQuantity(t *testing.T) {
	svc, mem, _, _ := newTestService(t)

	for _, price := range []float64{0, 5, 49.5, 120.25} {
		recipe := homemadedb.Recipe{Name: "Dish", Price: price, Status: homemadedb.RecipeStatusPublished, HomemakerID: "hm-1"}
		require.NoError(t, mem.CreateRecipe(t.Context(), &recipe))
		for _, qty := range []int{1, 2, 3, 7} {
			order, err := svc.Create(t.Context(), "cust-1", validInput(recipe.ID, qty))
			require.NoError(t, err)
			assert.Equal(t, homemadedb.OrderTotal(price, qty), order.TotalAmount)
			assert.Equal(t, homemadedb.OrderStatusPending, order.Status)
			assert.Equal(t, homemadedb.PaymentStatusPending, order.PaymentStatus)
		}
	}
}

func TestCreateUnknownChef(t *testing.T) {
	svc, mem, _, _ := newTestService(t)
	recipe := homemadedb.Recipe{Name: "Orphan Pulao", Price: 80, Status: homemadedb.RecipeStatusPublished, HomemakerID: "hm-gone"}
	require.NoError(t, mem.CreateRecipe(t.Context(), &recipe))

	order, err := svc.Create(t.Context(), "cust-1", validInput(recipe.ID, 1))
	require.NoError(t, err)
	assert.Equal(t, homemadedb.UnknownChef, order.Recipe.HomemakerName)
}

func TestCreateInvalid(t *testing.T) {
	svc, mem, _, recipe := newTestService(t)
	draft := homemadedb.Recipe{Name: "Secret", Price: 10, Status: homemadedb.RecipeStatusDraft, HomemakerID: "hm-1"}
	require.NoError(t, mem.CreateRecipe(t.Context(), &draft))

	tests := []struct {
		name    string
		input   func() Input
		wantErr error
	}{
		{
			name:    "zero quantity",
			input:   func() Input { return validInput(recipe.ID, 0) },
			wantErr: ErrInvalidInput,
		},
		{
			name: "time not chosen",
			input: func() Input {
				in := validInput(recipe.ID, 1)
				in.Slot.Time = ""
				return in
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "missing pincode",
			input: func() Input {
				in := validInput(recipe.ID, 1)
				in.Address.Pincode = ""
				return in
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown recipe",
			input:   func() Input { return validInput("nope", 1) },
			wantErr: ErrNotFound,
		},
		{
			name:    "draft recipe",
			input:   func() Input { return validInput(draft.ID, 1) },
			wantErr: ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(t.Context(), "cust-1", tc.input())
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
	assert.Zero(t, mem.Calls("CreateOrder"))
}

func TestCreateWithoutKeyDuplicates(t *testing.T) {
	svc, mem, _, recipe := newTestService(t)

	first, err := svc.Create(t.Context(), "cust-1", validInput(recipe.ID, 1))
	require.NoError(t, err)
	second, err := svc.Create(t.Context(), "cust-1", validInput(recipe.ID, 1))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	orders, err := mem.ListCustomerOrders(t.Context(), "cust-1")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestCreateWithKeyIsIdempotent(t *testing.T) {
	svc, mem, _, recipe := newTestService(t)
	in := validInput(recipe.ID, 3)
	in.IdempotencyKey = "checkout-42"

	first, err := svc.Create(t.Context(), "cust-1", in)
	require.NoError(t, err)
	second, err := svc.Create(t.Context(), "cust-1", in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := svc.Create(t.Context(), "cust-2", in)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	orders, err := mem.ListCustomerOrders(t.Context(), "cust-1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestConfirmPayment(t *testing.T) {
	svc, _, payer, recipe := newTestService(t)
	order, err := svc.Create(t.Context(), "cust-1", validInput(recipe.ID, 2))
	require.NoError(t, err)

	paid, err := svc.ConfirmPayment(t.Context(), "cust-1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, homemadedb.PaymentStatusCompleted, paid.PaymentStatus)
	assert.Equal(t, "txn-1", paid.TransactionID)
	assert.Equal(t, homemadedb.OrderStatusPending, paid.Status)

	again, err := svc.ConfirmPayment(t.Context(), "cust-1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, paid, again)
	assert.Equal(t, 1, payer.calls)
}

func TestConfirmPaymentFailures(t *testing.T) {
	svc, mem, payer, recipe := newTestService(t)
	order, err := svc.Create(t.Context(), "cust-1", validInput(recipe.ID, 1))
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(t.Context(), "cust-2", order.ID)
	require.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.ConfirmPayment(t.Context(), "cust-1", "missing")
	require.ErrorIs(t, err, ErrNotFound)

	payer.result = payment.Result{TransactionID: "txn-2", Status: homemadedb.PaymentStatusFailed}
	failed, err := svc.ConfirmPayment(t.Context(), "cust-1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, homemadedb.PaymentStatusFailed, failed.PaymentStatus)

	payer.err = errors.New("gateway down")
	_, err = svc.ConfirmPayment(t.Context(), "cust-1", order.ID)
	require.Error(t, err)

	stored, err := mem.GetOrder(t.Context(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, homemadedb.PaymentStatusFailed, stored.PaymentStatus)
}

func TestUpdateStatus(t *testing.T) {
	svc, _, _, recipe := newTestService(t)
	order, err := svc.Create(t.Context(), "cust-1", validInput(recipe.ID, 1))
	require.NoError(t, err)

	confirmed, err := svc.UpdateStatus(t.Context(), "hm-1", order.ID, homemadedb.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, homemadedb.OrderStatusConfirmed, confirmed.Status)

	_, err = svc.UpdateStatus(t.Context(), "hm-1", order.ID, homemadedb.OrderStatusPreparing)
	require.ErrorIs(t, err, ErrInvalidTransition, "unpaid orders cannot be prepared")

	_, err = svc.ConfirmPayment(t.Context(), "cust-1", order.ID)
	require.NoError(t, err)

	delivered, err := svc.UpdateStatus(t.Context(), "hm-1", order.ID, homemadedb.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, homemadedb.OrderStatusDelivered, delivered.Status)

	_, err = svc.UpdateStatus(t.Context(), "hm-1", order.ID, homemadedb.OrderStatusPreparing)
	require.ErrorIs(t, err, ErrInvalidTransition, "statuses do not move backwards")
}

func TestUpdateStatusErrors(t *testing.T) {
	svc, _, _, recipe := newTestService(t)
	order, err := svc.Create(t.Context(), "cust-1", validInput(recipe.ID, 1))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(t.Context(), "hm-2", order.ID, homemadedb.OrderStatusConfirmed)
	require.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.UpdateStatus(t.Context(), "hm-1", order.ID, "cancelled")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateStatus(t.Context(), "hm-1", order.ID, homemadedb.OrderStatusPending)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(t.Context(), "hm-1", "missing", homemadedb.OrderStatusConfirmed)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    homemadedb.OrderStatus
		paid    homemadedb.PaymentStatus
		to      homemadedb.OrderStatus
		allowed bool
	}{
		{"confirm unpaid", homemadedb.OrderStatusPending, homemadedb.PaymentStatusPending, homemadedb.OrderStatusConfirmed, true},
		{"prepare unpaid", homemadedb.OrderStatusConfirmed, homemadedb.PaymentStatusPending, homemadedb.OrderStatusPreparing, false},
		{"prepare failed payment", homemadedb.OrderStatusConfirmed, homemadedb.PaymentStatusFailed, homemadedb.OrderStatusPreparing, false},
		{"prepare paid", homemadedb.OrderStatusConfirmed, homemadedb.PaymentStatusCompleted, homemadedb.OrderStatusPreparing, true},
		{"skip ahead paid", homemadedb.OrderStatusPending, homemadedb.PaymentStatusCompleted, homemadedb.OrderStatusOutForDelivery, true},
		{"same status", homemadedb.OrderStatusPreparing, homemadedb.PaymentStatusCompleted, homemadedb.OrderStatusPreparing, false},
		{"backwards", homemadedb.OrderStatusDelivered, homemadedb.PaymentStatusCompleted, homemadedb.OrderStatusConfirmed, false},
		{"unknown stored status", homemadedb.OrderStatus(""), homemadedb.PaymentStatusCompleted, homemadedb.OrderStatusDelivered, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckTransition(&homemadedb.Order{Status: tc.from, PaymentStatus: tc.paid}, tc.to)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	svc, _, _, recipe := newTestService(t)

	snap, err := svc.Snapshot(t.Context(), recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Meena", snap.HomemakerName)
	assert.Equal(t, 5.0, snap.Price)

	_, err = svc.Snapshot(t.Context(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
