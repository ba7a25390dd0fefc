package product

import "github.com/shopspring/decimal"

// DemandForecast models expected demand from sales volume and price. A
// selling price above 1000 drives the forecast negative on purpose; the
// result is not clamped.
func DemandForecast(unitsSold int, sellingPrice float64) float64 {
	if sellingPrice <= 0 {
		return 0
	}
	base := float64(unitsSold) * 1.2
	if base < 10 {
		base = 10
	}
	priceFactor := 1 - sellingPrice/1000
	return round2(base * priceFactor)
}

// OptimisedPrice keeps the current margin and nudges the price by the
// forecast, never dropping below cost.
func OptimisedPrice(costPrice, sellingPrice, demandForecast float64) float64 {
	var margin float64
	if costPrice > 0 {
		margin = (sellingPrice - costPrice) / costPrice
	}
	adjustment := demandForecast * 0.02
	optimised := costPrice*(1+margin) + adjustment
	if optimised < costPrice {
		optimised = costPrice
	}
	return round2(optimised)
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
