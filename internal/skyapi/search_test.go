package skyapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/rdyansyah/skygate/internal/models"
)

func oneWayCriteria() models.SearchCriteria {
	return models.SearchCriteria{
		TripType:      models.TripOneWay,
		CabinClass:    models.CabinEconomy,
		Origin:        models.PlaceRef{SkyID: "AGA", EntityID: "95673640", Label: "Agadir"},
		Destination:   models.PlaceRef{SkyID: "LHR", EntityID: "95565050", Label: "London Heathrow"},
		DepartureDate: "2025-02-17",
		Adults:        1,
	}
}

const searchOK = `{"status":true,"data":{
	"context":{"status":"complete","sessionId":"sess-abc123","totalResults":1},
	"itineraries":[{
		"id":"itin-1",
		"price":{"raw":120.5,"formatted":"$121"},
		"legs":[{
			"id":"leg-1",
			"origin":{"id":"AGA","name":"Agadir","displayCode":"AGA","city":"Agadir"},
			"destination":{"id":"LHR","name":"London Heathrow","displayCode":"LHR","city":"London"},
			"durationInMinutes":225,
			"stopCount":0,
			"departure":"2025-02-17T10:20:00",
			"arrival":"2025-02-17T14:05:00",
			"timeDeltaInDays":0,
			"carriers":{"marketing":[
				{"id":-30822,"name":"Ryanair","alternateId":"FR","logoUrl":"https://logos.test/FR.png"},
				{"id":-30822,"name":"Ryanair","alternateId":"FR","logoUrl":"https://logos.test/FR.png"}
			]},
			"segments":[{
				"id":"seg-1",
				"origin":{"flightPlaceId":"AGA","displayCode":"AGA","name":"Agadir","type":"Airport","parent":{"flightPlaceId":"AGAA","displayCode":"AGA","name":"Agadir","type":"City"}},
				"destination":{"flightPlaceId":"LHR","displayCode":"LHR","name":"London Heathrow","type":"Airport"},
				"departure":"2025-02-17T10:20:00",
				"arrival":"2025-02-17T14:05:00",
				"durationInMinutes":225,
				"flightNumber":"1234",
				"marketingCarrier":{"id":-30822,"name":"Ryanair","alternateId":"FR","displayCode":"FR"},
				"operatingCarrier":{"id":-30822,"name":"Ryanair","alternateId":"FR","displayCode":"FR"}
			}]
		}]
	}]
}}`

func TestSearchFlights_SerializesOneWayRequest(t *testing.T) {
	var got url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(searchOK))
	})

	result, err := client.SearchFlights(context.Background(), oneWayCriteria())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"originSkyId":      "AGA",
		"destinationSkyId": "LHR",
		"date":             "2025-02-17",
		"adults":           "1",
		"cabinClass":       "economy",
		"sortBy":           "best",
		"currency":         "USD",
		"market":           "en-US",
		"countryCode":      "US",
	}
	for key, value := range want {
		if got.Get(key) != value {
			t.Errorf("expected %s=%s, got %q", key, value, got.Get(key))
		}
	}
	if got.Has("returnDate") {
		t.Errorf("one-way search must not serialize returnDate, got %q", got.Get("returnDate"))
	}

	if result.Session != "sess-abc123" {
		t.Errorf("expected session sess-abc123, got %q", result.Session)
	}
	if len(result.Itineraries) != 1 {
		t.Fatalf("expected 1 itinerary, got %d", len(result.Itineraries))
	}
}

func TestSearchFlights_NormalizesItinerary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchOK))
	})

	result, err := client.SearchFlights(context.Background(), oneWayCriteria())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	itin := result.Itineraries[0]
	if itin.Price.Raw != 120.5 || itin.Price.Formatted != "$121" {
		t.Errorf("unexpected price %+v", itin.Price)
	}
	if len(itin.Legs) != 1 {
		t.Fatalf("expected 1 leg, got %d", len(itin.Legs))
	}

	leg := itin.Legs[0]
	if leg.StopCount != 0 || len(leg.Segments) != 1 {
		t.Errorf("direct leg must have a single segment, got stops=%d segments=%d", leg.StopCount, len(leg.Segments))
	}
	if len(leg.MarketingCarriers) != 1 {
		t.Errorf("marketing carriers must be de-duplicated, got %d", len(leg.MarketingCarriers))
	}
	if leg.MarketingCarriers[0].LogoURL != "https://logos.test/FR.png" {
		t.Errorf("unexpected carrier logo %q", leg.MarketingCarriers[0].LogoURL)
	}

	segment := leg.Segments[0]
	if segment.FlightNumber != "1234" {
		t.Errorf("unexpected flight number %q", segment.FlightNumber)
	}
	if segment.Origin.Parent == nil || segment.Origin.Parent.Type != "City" {
		t.Errorf("expected parent place on segment origin, got %+v", segment.Origin.Parent)
	}
	if segment.Departure.IsZero() || segment.Arrival.IsZero() {
		t.Errorf("segment timestamps must be parsed, got %v / %v", segment.Departure, segment.Arrival)
	}
}

func TestSearchFlights_RoundTripSerializesReturnDate(t *testing.T) {
	var got url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(searchOK))
	})

	criteria := oneWayCriteria()
	criteria.TripType = models.TripRoundTrip
	criteria.ReturnDate = "2025-02-24"

	if _, err := client.SearchFlights(context.Background(), criteria); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Get("returnDate") != "2025-02-24" {
		t.Errorf("expected returnDate=2025-02-24, got %q", got.Get("returnDate"))
	}
}

func TestSearchFlights_ReturnBeforeDepartureFailsWithoutDispatch(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(searchOK))
	})

	criteria := oneWayCriteria()
	criteria.TripType = models.TripRoundTrip
	criteria.ReturnDate = "2025-02-10"

	_, err := client.SearchFlights(context.Background(), criteria)

	var validation *models.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validation.Field != "returnDate" {
		t.Errorf("expected error on returnDate field, got %q", validation.Field)
	}
	if calls != 0 {
		t.Errorf("validation failure must not reach the network, got %d calls", calls)
	}
}

func TestSearchFlights_NothingFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":false,"data":null}`))
	})

	_, err := client.SearchFlights(context.Background(), oneWayCriteria())

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSearchFlights_EmptyItinerariesIsLegal(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"data":{"context":{"sessionId":"sess-1","totalResults":0},"itineraries":[]}}`))
	})

	result, err := client.SearchFlights(context.Background(), oneWayCriteria())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Itineraries) != 0 {
		t.Errorf("expected zero itineraries, got %d", len(result.Itineraries))
	}
	if result.Session != "sess-1" {
		t.Errorf("session must still be extracted, got %q", result.Session)
	}
}
