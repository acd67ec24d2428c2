// Package finance holds the pure calculation functions for partnership
// reporting: margins, profit, ROI, return rate, and payout splitting.
// No I/O, no state; all inputs come from the caller.
package finance

import (
	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// NetMargin returns (sellPrice - unit fixed cost) * quantity for an order
// line. The variant must already be validated; unknown variants carry a zero
// fixed cost.
func NetMargin(variant domain.ProductVariant, sellPrice, quantity int64) int64 {
	return (sellPrice - variant.UnitFixedCost()) * quantity
}

// Profit returns revenue minus fixed costs minus expenses. Negative results
// are valid loss scenarios.
func Profit(totalRevenue, totalFixedCosts, totalExpenses int64) int64 {
	return totalRevenue - totalFixedCosts - totalExpenses
}

// ProfitShare returns one partner's equal share of profit. A non-positive
// partner count yields zero rather than dividing by it.
func ProfitShare(profit int64, partnerCount int) decimal.Decimal {
	if partnerCount <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(profit).Div(decimal.NewFromInt(int64(partnerCount)))
}

// PartnerPayout returns a partner's capital back plus their equal share of
// profit, split across the actual number of partners.
func PartnerPayout(contribution, profit int64, partnerCount int) decimal.Decimal {
	return decimal.NewFromInt(contribution).Add(ProfitShare(profit, partnerCount))
}

// ROI returns profit over total capital as a percentage, or zero when no
// capital has been contributed.
func ROI(profit, totalCapital int64) decimal.Decimal {
	if totalCapital == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(profit).Div(decimal.NewFromInt(totalCapital)).Mul(hundred)
}

// ReturnRate returns the share of returned orders as a percentage, or zero
// when there are no orders.
func ReturnRate(returnedOrders, totalOrders int) decimal.Decimal {
	if totalOrders == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(returnedOrders)).Div(decimal.NewFromInt(int64(totalOrders))).Mul(hundred)
}

// ContributionPercentage returns a partner's contribution as a percentage of
// the total pool, or zero when the pool is empty.
func ContributionPercentage(contribution, totalPool int64) decimal.Decimal {
	if totalPool == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(contribution).Div(decimal.NewFromInt(totalPool)).Mul(hundred)
}
