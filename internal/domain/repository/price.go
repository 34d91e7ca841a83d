package repository

import (
	"context"

	"github.com/adolfokaiser/precios-api/internal/domain/model"
)

// PriceRepository describes persistence operations for price records.
type PriceRepository interface {
	Create(ctx context.Context, fields model.PriceFields, createdBy string) (*model.PriceRecord, error)
	GetByID(ctx context.Context, id int64) (*model.PriceRecord, error)
	// Replace overwrites every caller-supplied field and re-stamps
	// created_by/created_at to the updater.
	Replace(ctx context.Context, id int64, fields model.PriceFields, updatedBy string) (*model.PriceRecord, error)
	Delete(ctx context.Context, id int64) error
	// List returns the page slice in ascending id order plus the total
	// count after filters, before pagination.
	List(ctx context.Context, filter model.PriceFilter, page, limit int) ([]model.PriceRecord, int, error)
}
