package handlers

import (
	"context"

	"github.com/adolfokaiser/precios-api/internal/domain/model"
)

// AuthFacade describes registration and login capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, name, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
}

// ProfileFacade provides self-service profile operations.
type ProfileFacade interface {
	Profile(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, email string, name, newEmail *string) (*model.User, error)
}

// PriceFacade encapsulates price ledger operations exposed via HTTP.
type PriceFacade interface {
	CreatePrice(ctx context.Context, fields model.PriceFields, caller string) (*model.PriceRecord, error)
	Price(ctx context.Context, id int64) (*model.PriceRecord, error)
	UpdatePrice(ctx context.Context, id int64, fields model.PriceFields, caller string) (*model.PriceRecord, error)
	DeletePrice(ctx context.Context, id int64) error
	ListPrices(ctx context.Context, filter model.PriceFilter, page, limit int) ([]model.PriceRecord, int, error)
}

// UploadFacade provides document extraction for uploads.
type UploadFacade interface {
	ExtractDocument(ctx context.Context, filename, contentType string, data []byte) (*model.Extraction, error)
}

// PreciosFacade aggregates the full set of operations used across handlers.
type PreciosFacade interface {
	AuthFacade
	ProfileFacade
	PriceFacade
	UploadFacade
}
