// Package settlement computes the farmer/platform split for a purchase.
// All arithmetic is done in fixed-point rupees (two decimal places) so the
// two shares always sum to the total exactly; any residual paisa from the
// 80/20 split lands on the farmer side.
package settlement

import (
	"ayurchain/models"

	"github.com/shopspring/decimal"
)

var platformShare = decimal.RequireFromString("0.2")

type Settlement struct {
	Total          decimal.Decimal
	FarmerAmount   decimal.Decimal
	PlatformAmount decimal.Decimal
}

// Compute returns the settlement for a sale of quantityKg at pricePerKg.
// The total is rounded half-up to the paisa, the platform share is rounded
// down, and the farmer receives the remainder.
func Compute(pricePerKg, quantityKg float64) (Settlement, error) {
	if pricePerKg <= 0 {
		return Settlement{}, models.ErrMissingPrice
	}
	if quantityKg <= 0 {
		return Settlement{}, models.ErrInvalidQuantity
	}

	price := decimal.NewFromFloat(pricePerKg)
	qty := decimal.NewFromFloat(quantityKg)

	total := price.Mul(qty).Round(2)
	platform := total.Mul(platformShare).RoundDown(2)
	farmer := total.Sub(platform)

	return Settlement{
		Total:          total,
		FarmerAmount:   farmer,
		PlatformAmount: platform,
	}, nil
}
