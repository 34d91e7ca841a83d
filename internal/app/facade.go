package app

import (
	"context"

	"github.com/adolfokaiser/precios-api/internal/domain/model"
	"github.com/adolfokaiser/precios-api/internal/usecase"
)

// DocumentProcessor describes the upload extraction capability.
type DocumentProcessor interface {
	Process(filename, contentType string, data []byte) (*model.Extraction, error)
}

// PreciosFacade exposes the full application surface to the HTTP layer.
type PreciosFacade struct {
	auth      *usecase.AuthUseCase
	profile   *usecase.ProfileUseCase
	prices    *usecase.PriceUseCase
	documents DocumentProcessor
}

// NewPreciosFacade constructs PreciosFacade.
func NewPreciosFacade(auth *usecase.AuthUseCase, profile *usecase.ProfileUseCase, prices *usecase.PriceUseCase, documents DocumentProcessor) *PreciosFacade {
	return &PreciosFacade{auth: auth, profile: profile, prices: prices, documents: documents}
}

func (f *PreciosFacade) Register(ctx context.Context, email, name, password string) (*model.User, error) {
	return f.auth.Register(ctx, email, name, password)
}

func (f *PreciosFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *PreciosFacade) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	return f.auth.ResolveToken(ctx, token)
}

func (f *PreciosFacade) Profile(ctx context.Context, email string) (*model.User, error) {
	return f.profile.Read(ctx, email)
}

func (f *PreciosFacade) UpdateProfile(ctx context.Context, email string, name, newEmail *string) (*model.User, error) {
	return f.profile.Update(ctx, email, name, newEmail)
}

func (f *PreciosFacade) CreatePrice(ctx context.Context, fields model.PriceFields, caller string) (*model.PriceRecord, error) {
	return f.prices.Create(ctx, fields, caller)
}

func (f *PreciosFacade) Price(ctx context.Context, id int64) (*model.PriceRecord, error) {
	return f.prices.Get(ctx, id)
}

func (f *PreciosFacade) UpdatePrice(ctx context.Context, id int64, fields model.PriceFields, caller string) (*model.PriceRecord, error) {
	return f.prices.Update(ctx, id, fields, caller)
}

func (f *PreciosFacade) DeletePrice(ctx context.Context, id int64) error {
	return f.prices.Delete(ctx, id)
}

func (f *PreciosFacade) ListPrices(ctx context.Context, filter model.PriceFilter, page, limit int) ([]model.PriceRecord, int, error) {
	return f.prices.List(ctx, filter, page, limit)
}

func (f *PreciosFacade) ExtractDocument(ctx context.Context, filename, contentType string, data []byte) (*model.Extraction, error) {
	return f.documents.Process(filename, contentType, data)
}
