package test

import (
	"context"

	"github.com/adolfokaiser/precios-api/internal/domain/model"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.User, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
}

// Register delegates to provided function or returns the submitted user.
func (s AuthFacadeStub) Register(ctx context.Context, email, name, password string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, name, password)
	}
	return &model.User{Email: email, Name: name}, nil
}

// Authenticate delegates to provided function or returns a fixed token.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "session-token", nil
}

// ProfileFacadeStub simulates profile operations.
type ProfileFacadeStub struct {
	ProfileFn func(context.Context, string) (*model.User, error)
	UpdateFn  func(context.Context, string, *string, *string) (*model.User, error)
}

// Profile returns the configured user or a default record.
func (s ProfileFacadeStub) Profile(ctx context.Context, email string) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, email)
	}
	return &model.User{Email: email, Name: "User"}, nil
}

// UpdateProfile executes configured update handler.
func (s ProfileFacadeStub) UpdateProfile(ctx context.Context, email string, name, newEmail *string) (*model.User, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, email, name, newEmail)
	}
	result := &model.User{Email: email, Name: "User"}
	if name != nil {
		result.Name = *name
	}
	if newEmail != nil {
		result.Email = *newEmail
	}
	return result, nil
}

// PriceFacadeStub provides controllable behaviour for price endpoints.
type PriceFacadeStub struct {
	CreateFn func(context.Context, model.PriceFields, string) (*model.PriceRecord, error)
	GetFn    func(context.Context, int64) (*model.PriceRecord, error)
	UpdateFn func(context.Context, int64, model.PriceFields, string) (*model.PriceRecord, error)
	DeleteFn func(context.Context, int64) error
	ListFn   func(context.Context, model.PriceFilter, int, int) ([]model.PriceRecord, int, error)
}

// CreatePrice delegates to provided function or echoes the fields back.
func (s PriceFacadeStub) CreatePrice(ctx context.Context, fields model.PriceFields, caller string) (*model.PriceRecord, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, fields, caller)
	}
	return &model.PriceRecord{ID: 1, StationID: fields.StationID, Date: fields.Date, Product: fields.Product, Price: fields.Price, Currency: fields.Currency, Notes: fields.Notes, CreatedBy: caller}, nil
}

// Price returns the configured record.
func (s PriceFacadeStub) Price(ctx context.Context, id int64) (*model.PriceRecord, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.PriceRecord{ID: id, StationID: "ACAP1234", Product: model.FuelRegular, Price: 22.5, Currency: "MXN"}, nil
}

// UpdatePrice executes configured update handler.
func (s PriceFacadeStub) UpdatePrice(ctx context.Context, id int64, fields model.PriceFields, caller string) (*model.PriceRecord, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, fields, caller)
	}
	return &model.PriceRecord{ID: id, StationID: fields.StationID, Date: fields.Date, Product: fields.Product, Price: fields.Price, Currency: fields.Currency, Notes: fields.Notes, CreatedBy: caller}, nil
}

// DeletePrice executes configured delete handler.
func (s PriceFacadeStub) DeletePrice(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ListPrices returns configured records.
func (s PriceFacadeStub) ListPrices(ctx context.Context, filter model.PriceFilter, page, limit int) ([]model.PriceRecord, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter, page, limit)
	}
	return nil, 0, nil
}

// UploadFacadeStub simulates document extraction.
type UploadFacadeStub struct {
	ExtractFn func(context.Context, string, string, []byte) (*model.Extraction, error)
}

// ExtractDocument delegates to provided function or returns an empty result.
func (s UploadFacadeStub) ExtractDocument(ctx context.Context, filename, contentType string, data []byte) (*model.Extraction, error) {
	if s.ExtractFn != nil {
		return s.ExtractFn(ctx, filename, contentType, data)
	}
	return &model.Extraction{Filename: filename, Kind: model.DocumentExcel, Candidates: []string{}}, nil
}
