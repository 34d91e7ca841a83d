package usecase

import (
	"testing"
	"time"

	"github.com/adolfokaiser/precios-api/internal/domain/model"
)

func TestValidatePriceFieldsBoundaries(t *testing.T) {
	base := model.PriceFields{
		StationID: "ABC",
		Date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Product:   model.FuelPremium,
		Price:     0.01,
	}
	if err := ValidatePriceFields(base); err != nil {
		t.Fatalf("minimal station id rejected: %v", err)
	}

	base.StationID = "ABCDEFGHIJKLMNOPQRST"
	if err := ValidatePriceFields(base); err != nil {
		t.Fatalf("20-char station id rejected: %v", err)
	}
}

func TestValidatePaginationBoundaries(t *testing.T) {
	if err := ValidatePagination(1, MinLimit); err != nil {
		t.Fatalf("minimal page rejected: %v", err)
	}
	if err := ValidatePagination(1, MaxLimit); err != nil {
		t.Fatalf("maximal limit rejected: %v", err)
	}
	if err := ValidatePagination(1000, 10); err != nil {
		t.Fatalf("large page rejected: %v", err)
	}
}
