// Package pricing computes the weather surcharge added to a room's base
// price. The further the forecast temperature sits from the optimal 21°C,
// the larger the surcharge band.
package pricing

import "errors"

// OptimalTemperature is the comfort point with no surcharge.
const OptimalTemperature = 21

var ErrNegativeBasePrice = errors.New("base price cannot be negative")

// Quote is a price breakdown. Amounts are in major currency units and are
// intentionally unrounded; rounding to minor units happens once, at the
// payment gateway boundary.
type Quote struct {
	Percentage float64
	Surcharge  float64
	Total      float64
}

// surcharge bands over the absolute deviation from OptimalTemperature.
// Half-open [min, next): first match wins.
var bands = []struct {
	maxDiff    int // exclusive
	percentage float64
}{
	{2, 0},
	{5, 0.10},
	{10, 0.20},
	{20, 0.30},
}

const maxPercentage = 0.50 // diff >= 20

// WeatherSurcharge quotes the surcharge for a base price at a forecast
// temperature. Total is always basePrice + Surcharge.
func WeatherSurcharge(basePrice float64, temperature int) (Quote, error) {
	if basePrice < 0 {
		return Quote{}, ErrNegativeBasePrice
	}

	diff := temperature - OptimalTemperature
	if diff < 0 {
		diff = -diff
	}

	percentage := maxPercentage
	for _, b := range bands {
		if diff < b.maxDiff {
			percentage = b.percentage
			break
		}
	}

	surcharge := basePrice * percentage
	return Quote{
		Percentage: percentage,
		Surcharge:  surcharge,
		Total:      basePrice + surcharge,
	}, nil
}
