// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package payment charges orders and waits for the charge to settle.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"

	"github.com/uxdsrini/homemade-v2/homemadedb"
)

var errNotSettled = errors.New("payment: charge not settled")

// Charge is a request to collect an order's amount.
type Charge struct {
	OrderID string
	UserID  string
	Amount  float64
}

// Gateway collects payments.
type Gateway interface {
	// Charge starts a charge and returns its transaction ID.
	Charge(ctx context.Context, charge Charge) (string, error)

	// Status returns the current status of a transaction.
	Status(ctx context.Context, transactionID string) (homemadedb.PaymentStatus, error)
}

// Result is the outcome of a payment.
type Result struct {
	TransactionID string

	// Status is completed or failed once settled, pending if the charge did
	// not settle within the allowed tries.
	Status homemadedb.PaymentStatus
}

// NewConfirmer returns a Confirmer polling the gateway at most maxTries times,
// starting interval apart.
func NewConfirmer(gateway Gateway, maxTries uint, interval time.Duration) *Confirmer {
	if maxTries == 0 {
		maxTries = 5
	}
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &Confirmer{
		gateway:  gateway,
		maxTries: maxTries,
		interval: interval,
	}
}

// Confirmer charges through a Gateway and waits for the charge to settle.
type Confirmer struct {
	gateway  Gateway
	maxTries uint
	interval time.Duration
}

// Pay charges the order and polls for its settlement with exponential backoff.
func (c *Confirmer) Pay(ctx context.Context, charge Charge) (Result, error) {
	txnID, err := c.gateway.Charge(ctx, charge)
	if err != nil {
		return Result{}, fmt.Errorf("payment: charging order %s: %w", charge.OrderID, err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.interval
	b.MaxInterval = 10 * c.interval

	status, err := backoff.Retry(ctx, func() (homemadedb.PaymentStatus, error) {
		s, err := c.gateway.Status(ctx, txnID)
		if err != nil {
			return "", err
		}
		if s == homemadedb.PaymentStatusPending {
			return "", errNotSettled
		}
		return s, nil
	}, backoff.WithBackOff(b), backoff.WithMaxTries(c.maxTries))
	if errors.Is(err, errNotSettled) {
		return Result{TransactionID: txnID, Status: homemadedb.PaymentStatusPending}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("payment: checking transaction %s: %w", txnID, err)
	}
	return Result{TransactionID: txnID, Status: status}, nil
}

// StubGateway is a Gateway that settles every charge as completed. There is
// no real payment provider behind it.
type StubGateway struct{}

func (StubGateway) Charge(_ context.Context, charge Charge) (string, error) {
	if charge.Amount < 0 {
		return "", fmt.Errorf("payment: negative amount %.2f", charge.Amount)
	}
	return "txn_" + uuid.NewString(), nil
}

func (StubGateway) Status(context.Context, string) (homemadedb.PaymentStatus, error) {
	return homemadedb.PaymentStatusCompleted, nil
}
