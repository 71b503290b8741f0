package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate    = errors.New("invalid stay date")
	ErrInvalidPrice   = errors.New("invalid price breakdown")
	ErrPriceMismatch  = errors.New("final price must equal base price plus weather charge")
	ErrMissingSession = errors.New("payment session id is required")
)

const dateLayout = "2006-01-02"

// StayDate is a calendar date (no time component). Its canonical string form
// feeds the forecast hash, so formatting must stay stable.
type StayDate struct {
	value string
}

func NewStayDate(value string) (StayDate, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return StayDate{}, ErrInvalidDate
	}
	// re-format to reject shortened forms like 2026-1-2
	if t.Format(dateLayout) != value {
		return StayDate{}, ErrInvalidDate
	}
	return StayDate{value: value}, nil
}

func StayDateFromTime(t time.Time) StayDate {
	return StayDate{value: t.Format(dateLayout)}
}

func (d StayDate) String() string {
	return d.value
}

func (d StayDate) Time() time.Time {
	t, _ := time.Parse(dateLayout, d.value)
	return t
}

// PriceBreakdown is the snapshot of how a booking was priced. Amounts are in
// major currency units; rounding happens only at the payment gateway.
type PriceBreakdown struct {
	basePrice     float64
	weatherCharge float64
	finalPrice    float64
}

func NewPriceBreakdown(basePrice, weatherCharge float64) (PriceBreakdown, error) {
	if basePrice < 0 || weatherCharge < 0 {
		return PriceBreakdown{}, ErrInvalidPrice
	}
	return PriceBreakdown{
		basePrice:     basePrice,
		weatherCharge: weatherCharge,
		finalPrice:    basePrice + weatherCharge,
	}, nil
}

// ReconstructPriceBreakdown rebuilds a persisted breakdown, enforcing the
// finalPrice == basePrice + weatherCharge invariant on the stored values.
func ReconstructPriceBreakdown(basePrice, weatherCharge, finalPrice float64) (PriceBreakdown, error) {
	if basePrice < 0 || weatherCharge < 0 {
		return PriceBreakdown{}, ErrInvalidPrice
	}
	if finalPrice != basePrice+weatherCharge {
		return PriceBreakdown{}, ErrPriceMismatch
	}
	return PriceBreakdown{
		basePrice:     basePrice,
		weatherCharge: weatherCharge,
		finalPrice:    finalPrice,
	}, nil
}

func (p PriceBreakdown) BasePrice() float64     { return p.basePrice }
func (p PriceBreakdown) WeatherCharge() float64 { return p.weatherCharge }
func (p PriceBreakdown) FinalPrice() float64    { return p.finalPrice }
