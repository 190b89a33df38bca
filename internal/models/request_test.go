package models

import (
	"errors"
	"testing"
)

func validCriteria() SearchCriteria {
	return SearchCriteria{
		TripType:      TripOneWay,
		CabinClass:    CabinEconomy,
		Origin:        PlaceRef{SkyID: "AGA", EntityID: "95673640", Label: "Agadir"},
		Destination:   PlaceRef{SkyID: "LHR", EntityID: "95565050", Label: "London Heathrow"},
		DepartureDate: "2025-02-17",
		Adults:        1,
	}
}

func TestValidate_AcceptsValidOneWay(t *testing.T) {
	criteria := validCriteria()
	if err := criteria.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_AppliesDefaults(t *testing.T) {
	criteria := validCriteria()
	criteria.TripType = ""
	criteria.CabinClass = ""
	criteria.Adults = 0

	if err := criteria.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if criteria.TripType != TripOneWay {
		t.Errorf("expected default trip type, got %q", criteria.TripType)
	}
	if criteria.CabinClass != CabinEconomy {
		t.Errorf("expected default cabin class, got %q", criteria.CabinClass)
	}
	if criteria.Adults != 1 {
		t.Errorf("expected default passenger count, got %d", criteria.Adults)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SearchCriteria)
		wantField string
	}{
		{
			name:      "short origin skyId",
			mutate:    func(c *SearchCriteria) { c.Origin.SkyID = "AG" },
			wantField: "origin",
		},
		{
			name:      "short origin entityId",
			mutate:    func(c *SearchCriteria) { c.Origin.EntityID = "1234567" },
			wantField: "origin",
		},
		{
			name:      "short destination skyId",
			mutate:    func(c *SearchCriteria) { c.Destination.SkyID = "" },
			wantField: "destination",
		},
		{
			name:      "too many passengers",
			mutate:    func(c *SearchCriteria) { c.Adults = 10 },
			wantField: "adults",
		},
		{
			name:      "negative passengers",
			mutate:    func(c *SearchCriteria) { c.Adults = -1 },
			wantField: "adults",
		},
		{
			name:      "malformed departure date",
			mutate:    func(c *SearchCriteria) { c.DepartureDate = "17-02-2025" },
			wantField: "departureDate",
		},
		{
			name:      "unknown trip type",
			mutate:    func(c *SearchCriteria) { c.TripType = "multiCity" },
			wantField: "tripType",
		},
		{
			name: "round trip without return date",
			mutate: func(c *SearchCriteria) {
				c.TripType = TripRoundTrip
			},
			wantField: "returnDate",
		},
		{
			name: "return date before departure",
			mutate: func(c *SearchCriteria) {
				c.TripType = TripRoundTrip
				c.ReturnDate = "2025-02-10"
			},
			wantField: "returnDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := validCriteria()
			tt.mutate(&criteria)

			err := criteria.Validate()

			var validation *ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validation.Field != tt.wantField {
				t.Errorf("expected error on %q, got %q (%s)", tt.wantField, validation.Field, validation.Message)
			}
		})
	}
}

func TestValidate_ReturnDateEqualToDepartureIsLegal(t *testing.T) {
	criteria := validCriteria()
	criteria.TripType = TripRoundTrip
	criteria.ReturnDate = criteria.DepartureDate

	if err := criteria.Validate(); err != nil {
		t.Fatalf("same-day return must be legal, got %v", err)
	}
}
