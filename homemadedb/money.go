// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package homemadedb

import (
	"fmt"
	"math"
)

// CurrencySymbol prefixes displayed amounts.
const CurrencySymbol = "₹"

// OrderTotal returns price times quantity rounded to two decimals.
func OrderTotal(price float64, quantity int) float64 {
	return RoundAmount(price * float64(quantity))
}

// RoundAmount rounds an amount to two decimals.
func RoundAmount(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatAmount formats an amount for display, e.g. ₹10.00.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%s%.2f", CurrencySymbol, amount)
}
