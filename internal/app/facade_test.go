package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/adolfokaiser/precios-api/internal/domain/errors"
	"github.com/adolfokaiser/precios-api/internal/domain/model"
	testhelpers "github.com/adolfokaiser/precios-api/internal/test"
	"github.com/adolfokaiser/precios-api/internal/usecase"
)

type processorStub struct {
	extraction *model.Extraction
	err        error
}

func (p *processorStub) Process(filename, contentType string, data []byte) (*model.Extraction, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.extraction, nil
}

func newTestFacade(documents DocumentProcessor) *PreciosFacade {
	users := testhelpers.NewUserRepositoryStub()
	prices := testhelpers.NewPriceRepositoryStub()
	strategy := testhelpers.StrategyStub{
		IssueFn: func(subject string) (string, error) { return "token-" + subject, nil },
		ParseFn: func(token string) (string, error) {
			return strings.TrimPrefix(token, "token-"), nil
		},
	}
	return NewPreciosFacade(
		usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, strategy),
		usecase.NewProfileUseCase(users),
		usecase.NewPriceUseCase(prices),
		documents,
	)
}

func TestFacadeAuthFlow(t *testing.T) {
	facade := newTestFacade(&processorStub{})
	ctx := context.Background()

	registered, err := facade.Register(ctx, "User@Mail.com", "User", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.Email != "user@mail.com" {
		t.Fatalf("email not normalized: %q", registered.Email)
	}

	token, err := facade.Authenticate(ctx, "user@mail.com", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	resolved, err := facade.ResolveToken(ctx, token)
	if err != nil {
		t.Fatalf("resolve token: %v", err)
	}
	if resolved.Email != "user@mail.com" {
		t.Fatalf("resolved unexpected user: %q", resolved.Email)
	}
}

func TestFacadeRenameInvalidatesOldToken(t *testing.T) {
	facade := newTestFacade(&processorStub{})
	ctx := context.Background()

	if _, err := facade.Register(ctx, "old@mail.com", "User", "secret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, err := facade.Authenticate(ctx, "old@mail.com", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	newEmail := "new@mail.com"
	if _, err := facade.UpdateProfile(ctx, "old@mail.com", nil, &newEmail); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	if _, err := facade.ResolveToken(ctx, token); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stale subject, got %v", err)
	}

	profile, err := facade.Profile(ctx, newEmail)
	if err != nil || profile.Email != newEmail {
		t.Fatalf("profile after rename: %+v, %v", profile, err)
	}
}

func TestFacadePriceRoundtrip(t *testing.T) {
	facade := newTestFacade(&processorStub{})
	ctx := context.Background()
	fields := model.PriceFields{
		StationID: "ACAP1234",
		Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Product:   model.FuelRegular,
		Price:     22.50,
	}

	created, err := facade.CreatePrice(ctx, fields, "user@mail.com")
	if err != nil {
		t.Fatalf("create price: %v", err)
	}

	got, err := facade.Price(ctx, created.ID)
	if err != nil || got.StationID != "ACAP1234" {
		t.Fatalf("price: %+v, %v", got, err)
	}

	items, total, err := facade.ListPrices(ctx, model.PriceFilter{StationID: "ACAP1234"}, 1, 10)
	if err != nil || total != 1 || len(items) != 1 {
		t.Fatalf("list: %v items, total %d, err %v", items, total, err)
	}

	if err := facade.DeletePrice(ctx, created.ID); err != nil {
		t.Fatalf("delete price: %v", err)
	}
	if _, err := facade.Price(ctx, created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFacadeExtractDocument(t *testing.T) {
	code := "ACAP1234"
	facade := newTestFacade(&processorStub{extraction: &model.Extraction{
		Filename:   "sales.xlsx",
		Kind:       model.DocumentExcel,
		Extracted:  &code,
		Candidates: []string{code},
	}})

	extraction, err := facade.ExtractDocument(context.Background(), "sales.xlsx", "application/vnd.ms-excel", []byte("raw"))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if extraction.Extracted == nil || *extraction.Extracted != code {
		t.Fatalf("extracted = %v", extraction.Extracted)
	}
}

func TestFacadeExtractDocumentError(t *testing.T) {
	facade := newTestFacade(&processorStub{err: domainErrors.ErrUnsupportedFile})
	if _, err := facade.ExtractDocument(context.Background(), "a.txt", "text/plain", nil); !errors.Is(err, domainErrors.ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
}
