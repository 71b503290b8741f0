//go:build unit

package weather_test

import (
	"testing"

	"weatherstay/internal/domain/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetForecastDeterminism(t *testing.T) {
	pairs := []struct {
		location string
		date     string
	}{
		{"Paris", "2026-07-14"},
		{"Reykjavik", "2026-01-02"},
		{"São Paulo", "2026-11-30"},
		{"Tokyo", "2026-03-21"},
		{"", "2026-01-01"},
	}

	for _, p := range pairs {
		t.Run(p.location+"/"+p.date, func(t *testing.T) {
			first := weather.GetForecast(p.location, p.date)
			for i := 0; i < 10; i++ {
				again := weather.GetForecast(p.location, p.date)
				require.Equal(t, first, again, "same inputs must yield the same forecast")
			}
		})
	}
}

// The forecast contract is exact values, not just stable ones: any system
// computing the same hash over the same (location, date) must get the same
// temperature. These vectors were generated with the reference Node runtime.
func TestGetForecastKnownValues(t *testing.T) {
	tests := []struct {
		location string
		date     string
		wantTemp int
		wantCond weather.Condition
	}{
		{"London", "2025-12-31", 23, weather.ConditionSunny},
		{"New York", "2026-01-01", 20, weather.ConditionCloudy},
		{"Miami Beach", "2027-07-04", 37, weather.ConditionSunny},
		{"Paris", "2026-07-14", 16, weather.ConditionCloudy},
		{"Lisbon", "2026-08-01", -3, weather.ConditionCloudy},
		{"Tokyo", "2026-03-21", 31, weather.ConditionSunny},
		{"Reykjavik", "2026-01-02", -4, weather.ConditionCloudy},
		{"São Paulo", "2026-11-30", -6, weather.ConditionCloudy},
	}

	for _, tt := range tests {
		t.Run(tt.location+"/"+tt.date, func(t *testing.T) {
			fc := weather.GetForecast(tt.location, tt.date)
			assert.Equal(t, tt.wantTemp, fc.Temperature)
			assert.Equal(t, tt.wantCond, fc.Condition)
		})
	}
}

func TestGetForecastTemperatureRange(t *testing.T) {
	locations := []string{"Berlin", "Oslo", "Cairo", "Lima", "Perth", "Nuuk", "Mumbai", "x"}
	dates := []string{"2026-01-15", "2026-04-01", "2026-06-30", "2026-09-09", "2026-12-24"}

	for _, loc := range locations {
		for _, date := range dates {
			fc := weather.GetForecast(loc, date)
			assert.GreaterOrEqual(t, fc.Temperature, -10, "%s %s", loc, date)
			assert.LessOrEqual(t, fc.Temperature, 39, "%s %s", loc, date)
		}
	}
}

func TestGetForecastCondition(t *testing.T) {
	locations := []string{"Berlin", "Oslo", "Cairo", "Lima", "Perth", "Nuuk", "Mumbai"}
	dates := []string{"2026-01-15", "2026-04-01", "2026-06-30", "2026-09-09"}

	for _, loc := range locations {
		for _, date := range dates {
			fc := weather.GetForecast(loc, date)
			if fc.Temperature > 20 {
				assert.Equal(t, weather.ConditionSunny, fc.Condition)
			} else {
				assert.Equal(t, weather.ConditionCloudy, fc.Condition)
			}
		}
	}
}

func TestGetForecastEchoesInputs(t *testing.T) {
	fc := weather.GetForecast("Lisbon", "2026-08-01")
	assert.Equal(t, "Lisbon", fc.Location)
	assert.Equal(t, "2026-08-01", fc.Date)
}

func TestGetForecastVariesAcrossDates(t *testing.T) {
	// not a property of the hash in general, but a sanity check that the
	// generator is not constant over a month of dates
	seen := map[int]bool{}
	for day := 1; day <= 28; day++ {
		fc := weather.GetForecast("Madrid", formatDay(day))
		seen[fc.Temperature] = true
	}
	assert.Greater(t, len(seen), 1)
}

func formatDay(day int) string {
	d := byte('0' + day%10)
	ten := byte('0' + day/10)
	return "2026-05-" + string([]byte{ten, d})
}
