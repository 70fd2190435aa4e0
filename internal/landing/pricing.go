package landing

import (
	"math"

	"github.com/clipsmart/clipsmart-web/params"
	"github.com/spf13/cast"
)

const PriceCustom = "Custom"

type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingAnnual  BillingPeriod = "annual"
)

func ParseBillingPeriod(s string) BillingPeriod {
	if s == string(BillingAnnual) {
		return BillingAnnual
	}
	return BillingMonthly
}

func (b BillingPeriod) Toggle() BillingPeriod {
	if b == BillingAnnual {
		return BillingMonthly
	}
	return BillingAnnual
}

// PriceFor returns the displayed price of plan. Annual billing discounts
// numeric, non-zero prices and rounds to a whole amount.
func PriceFor(plan Plan, period BillingPeriod) string {
	if plan.Price == PriceCustom || period != BillingAnnual {
		return plan.Price
	}
	price, err := cast.ToFloat64E(plan.Price)
	if err != nil || price == 0 {
		return plan.Price
	}
	return cast.ToString(int(math.Round(price * params.AnnualDiscount)))
}

type PricedPlan struct {
	Plan
	DisplayPrice string
	IsCustom     bool
}

func PricedPlans(period BillingPeriod) []PricedPlan {
	out := make([]PricedPlan, 0, len(Plans))
	for _, plan := range Plans {
		out = append(out, PricedPlan{
			Plan:         plan,
			DisplayPrice: PriceFor(plan, period),
			IsCustom:     plan.Price == PriceCustom,
		})
	}
	return out
}
