package usecase

import (
	"fmt"

	domainErrors "github.com/adolfokaiser/precios-api/internal/domain/errors"
	"github.com/adolfokaiser/precios-api/internal/domain/model"
)

const (
	stationIDMinLen = 3
	stationIDMaxLen = 20

	// Listing bounds.
	MinLimit = 1
	MaxLimit = 100
)

// ValidatePriceFields checks field constraints for create and replace.
func ValidatePriceFields(fields model.PriceFields) error {
	if l := len(fields.StationID); l < stationIDMinLen || l > stationIDMaxLen {
		return fmt.Errorf("%w: station_id must be %d-%d characters", domainErrors.ErrValidation, stationIDMinLen, stationIDMaxLen)
	}
	if fields.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domainErrors.ErrValidation)
	}
	if !fields.Product.Valid() {
		return fmt.Errorf("%w: unknown product %q", domainErrors.ErrValidation, fields.Product)
	}
	if fields.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", domainErrors.ErrValidation)
	}
	return nil
}

// ValidatePagination checks page/limit bounds for listing.
func ValidatePagination(page, limit int) error {
	if page < 1 {
		return fmt.Errorf("%w: page must be >= 1", domainErrors.ErrValidation)
	}
	if limit < MinLimit || limit > MaxLimit {
		return fmt.Errorf("%w: limit must be between %d and %d", domainErrors.ErrValidation, MinLimit, MaxLimit)
	}
	return nil
}
