package model

import "time"

// FuelProduct enumerates the fuel types a price record may reference.
type FuelProduct string

const (
	FuelRegular FuelProduct = "Regular"
	FuelPremium FuelProduct = "Premium"
	FuelDiesel  FuelProduct = "Diesel"
)

// Valid reports whether the product is one of the known fuel types.
func (p FuelProduct) Valid() bool {
	switch p {
	case FuelRegular, FuelPremium, FuelDiesel:
		return true
	}
	return false
}

// PriceRecord is a single observed fuel price at a station on a calendar day.
// Date carries only the calendar date (midnight UTC).
type PriceRecord struct {
	ID        int64
	StationID string
	Date      time.Time
	Product   FuelProduct
	Price     float64
	Currency  string
	Notes     *string
	CreatedBy string
	CreatedAt time.Time
}

// PriceFields holds the caller-supplied portion of a price record, used for
// both create and full-replace update.
type PriceFields struct {
	StationID string
	Date      time.Time
	Product   FuelProduct
	Price     float64
	Currency  string
	Notes     *string
}

// PriceFilter narrows a listing. Zero values mean "not set"; filters are
// conjunctive.
type PriceFilter struct {
	StationID string
	DateFrom  *time.Time
	DateTo    *time.Time
	Query     string
}
