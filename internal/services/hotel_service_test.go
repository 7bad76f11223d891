package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	req "github.com/ljnoam/server-traveloo/internal/models/request_models"
	upstream "github.com/ljnoam/server-traveloo/internal/models/upstream_models"
	"github.com/ljnoam/server-traveloo/pkg/utils"
)

type mockHotelAPI struct {
	searchLocations func(ctx context.Context, name string) ([]upstream.LocationEntry, error)
	searchHotels    func(ctx context.Context, q HotelQuery) ([]upstream.HotelOffer, error)
}

func (m *mockHotelAPI) SearchLocations(ctx context.Context, name string) ([]upstream.LocationEntry, error) {
	return m.searchLocations(ctx, name)
}

func (m *mockHotelAPI) SearchHotels(ctx context.Context, q HotelQuery) ([]upstream.HotelOffer, error) {
	return m.searchHotels(ctx, q)
}

var _ HotelAPI = (*mockHotelAPI)(nil)

type mockRateAPI struct {
	eurRate func(ctx context.Context, currency string) (float64, error)
}

func (m *mockRateAPI) EURRate(ctx context.Context, currency string) (float64, error) {
	return m.eurRate(ctx, currency)
}

var _ RateAPI = (*mockRateAPI)(nil)

// decodeOffers builds provider offers the same way production does: by
// decoding raw JSON. That is the only way to exercise the flexible price
// parsing.
func decodeOffers(t *testing.T, raw string) []upstream.HotelOffer {
	t.Helper()
	var offers []upstream.HotelOffer
	require.NoError(t, json.Unmarshal([]byte(raw), &offers))
	return offers
}

func cityResolver() func(ctx context.Context, name string) ([]upstream.LocationEntry, error) {
	return func(ctx context.Context, name string) ([]upstream.LocationEntry, error) {
		return []upstream.LocationEntry{
			{DestID: "-100", DestType: "region"},
			{DestID: "-1456928", DestType: "city"},
		}, nil
	}
}

func fixedRates(rate float64) *RateCache {
	return NewRateCache(&mockRateAPI{
		eurRate: func(ctx context.Context, currency string) (float64, error) {
			return rate, nil
		},
	})
}

func TestHotelSearchUnresolvableDestination(t *testing.T) {
	api := &mockHotelAPI{
		searchLocations: func(ctx context.Context, name string) ([]upstream.LocationEntry, error) {
			return []upstream.LocationEntry{{DestID: "-1", DestType: "region"}}, nil
		},
	}
	svc := NewHotelService(api, fixedRates(1))

	_, err := svc.Search(context.Background(), req.HotelSearchRequest{
		Destination: "Atlantis", StartDate: "2025-06-01", EndDate: "2025-06-05",
	})
	require.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestHotelSearchResolverFailureCollapsesToNotFound(t *testing.T) {
	api := &mockHotelAPI{
		searchLocations: func(ctx context.Context, name string) ([]upstream.LocationEntry, error) {
			return nil, errors.New("timeout")
		},
	}
	svc := NewHotelService(api, fixedRates(1))

	_, err := svc.Search(context.Background(), req.HotelSearchRequest{
		Destination: "Paris", StartDate: "2025-06-01", EndDate: "2025-06-05",
	})
	require.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestHotelSearchUpstreamFailureYieldsEmptyResult(t *testing.T) {
	api := &mockHotelAPI{
		searchLocations: cityResolver(),
		searchHotels: func(ctx context.Context, q HotelQuery) ([]upstream.HotelOffer, error) {
			return nil, errors.New("rapidapi bad status: 502")
		},
	}
	svc := NewHotelService(api, fixedRates(1))

	hotels, err := svc.Search(context.Background(), req.HotelSearchRequest{
		Destination: "Paris", StartDate: "2025-06-01", EndDate: "2025-06-05",
	})
	require.NoError(t, err)
	assert.Empty(t, hotels)
}

func TestHotelSearchBudgetFilteringIsSound(t *testing.T) {
	offers := decodeOffers(t, `[
		{"hotel_name": "Cheap", "price_breakdown": {"gross_price": 250, "currency": "EUR"}},
		{"hotel_name": "Pricey", "price_breakdown": {"gross_price": 350.5, "currency": "EUR"}},
		{"hotel_name": "Broken", "price_breakdown": {"gross_price": "n/a", "currency": "EUR"}},
		{"hotel_name": "Stringy", "price_breakdown": {"gross_price": "299.99", "currency": "EUR"}}
	]`)
	api := &mockHotelAPI{
		searchLocations: cityResolver(),
		searchHotels: func(ctx context.Context, q HotelQuery) ([]upstream.HotelOffer, error) {
			return offers, nil
		},
	}
	svc := NewHotelService(api, fixedRates(1))

	hotels, err := svc.Search(context.Background(), req.HotelSearchRequest{
		Destination:     "Paris",
		StartDate:       "2025-06-01",
		EndDate:         "2025-06-05",
		UseCustomBudget: true,
		BudgetHotels:    float64(300),
	})
	require.NoError(t, err)
	require.Len(t, hotels, 2)
	assert.Equal(t, "Cheap", hotels[0].Name)
	assert.Equal(t, "Stringy", hotels[1].Name)
	for _, h := range hotels {
		assert.LessOrEqual(t, h.Total, 300.0)
	}
}

func TestHotelSearchBudgetZeroWithFlagFiltersEverything(t *testing.T) {
	offers := decodeOffers(t, `[
		{"hotel_name": "Any", "price_breakdown": {"gross_price": 10, "currency": "EUR"}}
	]`)
	api := &mockHotelAPI{
		searchLocations: cityResolver(),
		searchHotels: func(ctx context.Context, q HotelQuery) ([]upstream.HotelOffer, error) {
			return offers, nil
		},
	}
	svc := NewHotelService(api, fixedRates(1))

	hotels, err := svc.Search(context.Background(), req.HotelSearchRequest{
		Destination:     "Paris",
		StartDate:       "2025-06-01",
		EndDate:         "2025-06-05",
		UseCustomBudget: true,
		BudgetHotels:    "not-a-number",
	})
	require.NoError(t, err)
	assert.Empty(t, hotels)
}

func TestHotelSearchTruncatesToNine(t *testing.T) {
	raw := "["
	for i := 0; i < 12; i++ {
		if i > 0 {
			raw += ","
		}
		raw += fmt.Sprintf(`{"hotel_name": "H%d", "price_breakdown": {"gross_price": 100, "currency": "EUR"}}`, i)
	}
	raw += "]"
	api := &mockHotelAPI{
		searchLocations: cityResolver(),
		searchHotels: func(ctx context.Context, q HotelQuery) ([]upstream.HotelOffer, error) {
			return decodeOffers(t, raw), nil
		},
	}
	svc := NewHotelService(api, fixedRates(1))

	hotels, err := svc.Search(context.Background(), req.HotelSearchRequest{
		Destination: "Paris", StartDate: "2025-06-01", EndDate: "2025-06-05",
	})
	require.NoError(t, err)
	require.Len(t, hotels, 9)
	// Provider order preserved.
	assert.Equal(t, "H0", hotels[0].Name)
	assert.Equal(t, "H8", hotels[8].Name)
}

func TestHotelSearchNightsAndPerNightPrice(t *testing.T) {
	offers := decodeOffers(t, `[
		{"hotel_name": "Le Marais", "address": "12 rue des Archives",
		 "unit_configuration_label": "<b>Suite</b>&nbsp;Deluxe",
		 "review_score": 8.7,
		 "price_breakdown": {"gross_price": 400, "currency": "EUR"}}
	]`)
	api := &mockHotelAPI{
		searchLocations: cityResolver(),
		searchHotels: func(ctx context.Context, q HotelQuery) ([]upstream.HotelOffer, error) {
			return offers, nil
		},
	}
	svc := NewHotelService(api, fixedRates(1))

	hotels, err := svc.Search(context.Background(), req.HotelSearchRequest{
		Destination: "Paris", StartDate: "2025-06-01", EndDate: "2025-06-05",
	})
	require.NoError(t, err)
	require.Len(t, hotels, 1)

	h := hotels[0]
	assert.Equal(t, 4, h.Nights)
	assert.Equal(t, 400.0, h.Total)
	assert.Equal(t, 100.0, h.Price)
	assert.Equal(t, "Suite Deluxe", h.Room)
	assert.Equal(t, "EUR", h.Currency)
	require.NotNil(t, h.Rating)
	assert.Equal(t, 8.7, *h.Rating)
	assert.Equal(t, "#", h.BookingURL)
}

func TestHotelSearchReversedDatesCountOneNight(t *testing.T) {
	offers := decodeOffers(t, `[
		{"hotel_name": "H", "price_breakdown": {"gross_price": 80, "currency": "EUR"}}
	]`)
	api := &mockHotelAPI{
		searchLocations: cityResolver(),
		searchHotels: func(ctx context.Context, q HotelQuery) ([]upstream.HotelOffer, error) {
			return offers, nil
		},
	}
	svc := NewHotelService(api, fixedRates(1))

	hotels, err := svc.Search(context.Background(), req.HotelSearchRequest{
		Destination: "Paris", StartDate: "2025-06-05", EndDate: "2025-06-01",
	})
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, 1, hotels[0].Nights)
	assert.Equal(t, 80.0, hotels[0].Price)
}

func TestHotelSearchConvertsForeignCurrency(t *testing.T) {
	offers := decodeOffers(t, `[
		{"hotel_name": "Manhattan", "price_breakdown": {"gross_price": 100, "currency": "USD"}}
	]`)
	api := &mockHotelAPI{
		searchLocations: cityResolver(),
		searchHotels: func(ctx context.Context, q HotelQuery) ([]upstream.HotelOffer, error) {
			return offers, nil
		},
	}
	svc := NewHotelService(api, fixedRates(0.9))

	hotels, err := svc.Search(context.Background(), req.HotelSearchRequest{
		Destination: "New York", StartDate: "2025-06-01", EndDate: "2025-06-02",
	})
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, 90.0, hotels[0].Total)
	assert.Equal(t, "EUR", hotels[0].Currency)
}

func TestHotelSearchRateFailureMeansNoConversion(t *testing.T) {
	offers := decodeOffers(t, `[
		{"hotel_name": "Manhattan", "price_breakdown": {"gross_price": 100, "currency": "USD"}}
	]`)
	api := &mockHotelAPI{
		searchLocations: cityResolver(),
		searchHotels: func(ctx context.Context, q HotelQuery) ([]upstream.HotelOffer, error) {
			return offers, nil
		},
	}
	rates := NewRateCache(&mockRateAPI{
		eurRate: func(ctx context.Context, currency string) (float64, error) {
			return 0, errors.New("rate api down")
		},
	})
	svc := NewHotelService(api, rates)

	hotels, err := svc.Search(context.Background(), req.HotelSearchRequest{
		Destination: "New York", StartDate: "2025-06-01", EndDate: "2025-06-02",
	})
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, 100.0, hotels[0].Total)
}

func TestHotelSearchNullPriceExcludedByCeiling(t *testing.T) {
	offers := decodeOffers(t, `[
		{"hotel_name": "Mystery", "price_breakdown": {"gross_price": null, "currency": "EUR"}},
		{"hotel_name": "Honest", "price_breakdown": {"gross_price": 120, "currency": "EUR"}}
	]`)
	api := &mockHotelAPI{
		searchLocations: cityResolver(),
		searchHotels: func(ctx context.Context, q HotelQuery) ([]upstream.HotelOffer, error) {
			return offers, nil
		},
	}
	svc := NewHotelService(api, fixedRates(1))

	hotels, err := svc.Search(context.Background(), req.HotelSearchRequest{
		Destination: "Paris", StartDate: "2025-06-01", EndDate: "2025-06-05",
		UseCustomBudget: true,
		BudgetHotels:    float64(300),
	})
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Honest", hotels[0].Name)
}

func TestHotelSearchUnparsablePriceWithoutCeilingKept(t *testing.T) {
	offers := decodeOffers(t, `[
		{"hotel_name": "Mystery", "price_breakdown": {"gross_price": null, "currency": "EUR"}}
	]`)
	api := &mockHotelAPI{
		searchLocations: cityResolver(),
		searchHotels: func(ctx context.Context, q HotelQuery) ([]upstream.HotelOffer, error) {
			return offers, nil
		},
	}
	svc := NewHotelService(api, fixedRates(1))

	hotels, err := svc.Search(context.Background(), req.HotelSearchRequest{
		Destination: "Paris", StartDate: "2025-06-01", EndDate: "2025-06-05",
	})
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, 0.0, hotels[0].Total)
}
