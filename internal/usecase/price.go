package usecase

import (
	"context"

	"github.com/adolfokaiser/precios-api/internal/domain/model"
	"github.com/adolfokaiser/precios-api/internal/domain/repository"
)

const defaultCurrency = "MXN"

// PriceUseCase implements CRUD and filtered listing over the price ledger.
type PriceUseCase struct {
	prices repository.PriceRepository
}

// NewPriceUseCase constructs PriceUseCase.
func NewPriceUseCase(prices repository.PriceRepository) *PriceUseCase {
	return &PriceUseCase{prices: prices}
}

// Create validates the fields, stamps provenance to the caller and stores a
// new record under the next sequential id.
func (u *PriceUseCase) Create(ctx context.Context, fields model.PriceFields, caller string) (*model.PriceRecord, error) {
	fields = withDefaults(fields)
	if err := ValidatePriceFields(fields); err != nil {
		return nil, err
	}
	return u.prices.Create(ctx, fields, caller)
}

// Get fetches a record by id.
func (u *PriceUseCase) Get(ctx context.Context, id int64) (*model.PriceRecord, error) {
	return u.prices.GetByID(ctx, id)
}

// Update fully replaces an existing record, re-stamping created_by and
// created_at to the updater. Original provenance is deliberately discarded.
func (u *PriceUseCase) Update(ctx context.Context, id int64, fields model.PriceFields, caller string) (*model.PriceRecord, error) {
	fields = withDefaults(fields)
	if err := ValidatePriceFields(fields); err != nil {
		return nil, err
	}
	return u.prices.Replace(ctx, id, fields, caller)
}

// Delete removes a record by id.
func (u *PriceUseCase) Delete(ctx context.Context, id int64) error {
	return u.prices.Delete(ctx, id)
}

// List returns one page of filtered records plus the total count after
// filters, before pagination.
func (u *PriceUseCase) List(ctx context.Context, filter model.PriceFilter, page, limit int) ([]model.PriceRecord, int, error) {
	if err := ValidatePagination(page, limit); err != nil {
		return nil, 0, err
	}
	return u.prices.List(ctx, filter, page, limit)
}

func withDefaults(fields model.PriceFields) model.PriceFields {
	if fields.Currency == "" {
		fields.Currency = defaultCurrency
	}
	return fields
}
