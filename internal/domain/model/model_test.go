package model

import "testing"

func TestFuelProductValid(t *testing.T) {
	for _, p := range []FuelProduct{FuelRegular, FuelPremium, FuelDiesel} {
		if !p.Valid() {
			t.Fatalf("expected %q to be valid", p)
		}
	}
	for _, p := range []FuelProduct{"", "regular", "Magna", "DIESEL"} {
		if p.Valid() {
			t.Fatalf("expected %q to be invalid", p)
		}
	}
}
