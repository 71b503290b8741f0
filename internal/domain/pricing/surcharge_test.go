//go:build unit

package pricing_test

import (
	"testing"

	"weatherstay/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherSurchargeBands(t *testing.T) {
	// band boundaries are inclusive to the higher band: diff 2 → 10%,
	// diff 5 → 20%, diff 10 → 30%, diff 20 → 50%
	tests := []struct {
		name           string
		temperature    int
		wantPercentage float64
	}{
		{"optimal temperature", 21, 0},
		{"diff 1 below", 20, 0},
		{"diff 1 above", 22, 0},
		{"diff 2 enters 10% band", 23, 0.10},
		{"diff 2 below optimal", 19, 0.10},
		{"diff 4 still 10%", 25, 0.10},
		{"diff 5 enters 20% band", 26, 0.20},
		{"diff 5 below optimal", 16, 0.20},
		{"diff 9 still 20%", 30, 0.20},
		{"diff 10 enters 30% band", 31, 0.30},
		{"diff 10 below optimal", 11, 0.30},
		{"diff 19 still 30%", 2, 0.30},
		{"diff 20 enters 50% band", 1, 0.50},
		{"diff 20 above optimal", 41, 0.50},
		{"diff 31, coldest forecast", -10, 0.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := pricing.WeatherSurcharge(100, tt.temperature)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPercentage, quote.Percentage)
			assert.Equal(t, 100*tt.wantPercentage, quote.Surcharge)
			assert.Equal(t, 100+100*tt.wantPercentage, quote.Total)
		})
	}
}

func TestWeatherSurchargeExamples(t *testing.T) {
	t.Run("base 100 at optimal temperature", func(t *testing.T) {
		quote, err := pricing.WeatherSurcharge(100, 21)
		require.NoError(t, err)
		assert.Equal(t, 0.0, quote.Surcharge)
		assert.Equal(t, 100.0, quote.Total)
	})

	t.Run("base 100 at 35 degrees", func(t *testing.T) {
		// diff 14 → 30% band
		quote, err := pricing.WeatherSurcharge(100, 35)
		require.NoError(t, err)
		assert.Equal(t, 0.30, quote.Percentage)
		assert.Equal(t, 30.0, quote.Surcharge)
		assert.Equal(t, 130.0, quote.Total)
	})
}

func TestWeatherSurchargeTotalInvariant(t *testing.T) {
	bases := []float64{0, 0.01, 19.99, 100, 12345.67}
	for _, base := range bases {
		for temp := -10; temp <= 39; temp++ {
			quote, err := pricing.WeatherSurcharge(base, temp)
			require.NoError(t, err)
			assert.Equal(t, base+quote.Surcharge, quote.Total, "base=%v temp=%d", base, temp)
			assert.GreaterOrEqual(t, quote.Surcharge, 0.0)
		}
	}
}

func TestWeatherSurchargeNegativeBase(t *testing.T) {
	_, err := pricing.WeatherSurcharge(-1, 21)
	assert.ErrorIs(t, err, pricing.ErrNegativeBasePrice)
}

func TestWeatherSurchargeZeroBase(t *testing.T) {
	quote, err := pricing.WeatherSurcharge(0, -10)
	require.NoError(t, err)
	assert.Equal(t, 0.50, quote.Percentage)
	assert.Equal(t, 0.0, quote.Surcharge)
	assert.Equal(t, 0.0, quote.Total)
}
