// Package weather simulates a forecast provider. Outputs are derived from a
// hash of the inputs so the same (location, date) pair always yields the same
// forecast, across processes and restarts. This reproducibility is what the
// pricing engine and its tests rely on; none of this resembles real weather.
package weather

import (
	"math"
	"unicode/utf16"
)

type Condition string

const (
	ConditionSunny  Condition = "Sunny"
	ConditionCloudy Condition = "Cloudy"
)

type Forecast struct {
	Location    string
	Date        string
	Temperature int // degrees Celsius, always in [-10, 39]
	Condition   Condition
}

// GetForecast derives a synthetic forecast for a location and a calendar
// date (YYYY-MM-DD). Pure, total, never fails.
func GetForecast(location, date string) Forecast {
	temp := temperatureFor(location + "-" + date)

	cond := ConditionCloudy
	if temp > 20 {
		cond = ConditionSunny
	}

	return Forecast{
		Location:    location,
		Date:        date,
		Temperature: temp,
		Condition:   cond,
	}
}

// temperatureFor maps a seed string to [-10, 39] via a rolling hash over its
// UTF-16 code units, evaluated with ECMAScript number semantics: the
// accumulator is a float64 and only the shift operand is reduced to int32.
// Both the reduction and the float64 precision loss on long seeds are part of
// the function's contract; forecasts must match across every runtime that
// computes them.
func temperatureFor(seed string) int {
	var h float64
	for _, cu := range utf16.Encode([]rune(seed)) {
		shifted := toInt32(h) << 5
		h = float64(cu) + (float64(shifted) - h)
	}

	norm := math.Mod(h, 50)
	if norm < 0 {
		norm = -norm
	}
	return int(norm) - 10
}

// toInt32 reduces a float64 the way ECMAScript's ToInt32 does: truncate,
// take the value modulo 2^32, reinterpret as signed.
func toInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(f), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return int32(uint32(m))
}
