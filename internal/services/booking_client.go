package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	upstream "github.com/ljnoam/server-traveloo/internal/models/upstream_models"
)

// FlightAPI is the slice of the flight provider the flight service consumes.
type FlightAPI interface {
	SearchDestination(ctx context.Context, query string) ([]upstream.DestinationEntry, error)
	SearchFlights(ctx context.Context, q FlightQuery) ([]upstream.FlightOffer, error)
}

// HotelAPI is the slice of the hotel provider the hotel service consumes.
type HotelAPI interface {
	SearchLocations(ctx context.Context, name string) ([]upstream.LocationEntry, error)
	SearchHotels(ctx context.Context, q HotelQuery) ([]upstream.HotelOffer, error)
}

type FlightQuery struct {
	FromID     string
	ToID       string
	Date       string
	Adults     int
	Children   int
	CabinClass string
}

type HotelQuery struct {
	DestID       string
	CheckinDate  string
	CheckoutDate string
	Adults       int
	Children     int
}

// ------------- RapidAPI flight-search client -------------

type FlightSearchClient struct {
	HTTP    *http.Client
	APIKey  string
	APIHost string
	BaseURL string
}

func NewFlightSearchClient() *FlightSearchClient {
	return &FlightSearchClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		APIKey:  os.Getenv("RAPIDAPI_KEY"),
		APIHost: os.Getenv("RAPIDAPI_HOST_FLIGHTS"),
		BaseURL: "https://booking-com15.p.rapidapi.com",
	}
}

func (c *FlightSearchClient) SearchDestination(ctx context.Context, query string) ([]upstream.DestinationEntry, error) {
	q := url.Values{}
	q.Set("query", query)

	var payload struct {
		Data []upstream.DestinationEntry `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/v1/flights/searchDestination", q, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (c *FlightSearchClient) SearchFlights(ctx context.Context, fq FlightQuery) ([]upstream.FlightOffer, error) {
	q := url.Values{}
	q.Set("fromId", fq.FromID)
	q.Set("toId", fq.ToID)
	q.Set("departDate", fq.Date)
	q.Set("stops", "none")
	q.Set("pageNo", "1")
	q.Set("adults", strconv.Itoa(fq.Adults))
	q.Set("children", strconv.Itoa(fq.Children))
	if fq.Children > 0 {
		q.Set("children_age", childrenAges(fq.Children))
	}
	q.Set("sort", "BEST")
	q.Set("cabinClass", fq.CabinClass)
	q.Set("currency_code", "EUR")

	var payload struct {
		Data struct {
			FlightOffers []upstream.FlightOffer `json:"flightOffers"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/v1/flights/searchFlights", q, &payload); err != nil {
		return nil, err
	}
	return payload.Data.FlightOffers, nil
}

func (c *FlightSearchClient) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	return rapidAPIGet(ctx, c.HTTP, c.BaseURL+path, q, c.APIKey, c.APIHost, out)
}

// ------------- RapidAPI hotel-search client -------------

type HotelSearchClient struct {
	HTTP    *http.Client
	APIKey  string
	APIHost string
	BaseURL string
}

func NewHotelSearchClient() *HotelSearchClient {
	return &HotelSearchClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		APIKey:  os.Getenv("RAPIDAPI_KEY"),
		APIHost: os.Getenv("RAPIDAPI_HOST_HOTELS"),
		BaseURL: "https://booking-com.p.rapidapi.com",
	}
}

func (c *HotelSearchClient) SearchLocations(ctx context.Context, name string) ([]upstream.LocationEntry, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("locale", "en-gb")

	var entries []upstream.LocationEntry
	if err := rapidAPIGet(ctx, c.HTTP, c.BaseURL+"/v1/hotels/locations", q, c.APIKey, c.APIHost, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HotelSearchClient) SearchHotels(ctx context.Context, hq HotelQuery) ([]upstream.HotelOffer, error) {
	q := url.Values{}
	q.Set("checkin_date", hq.CheckinDate)
	q.Set("checkout_date", hq.CheckoutDate)
	q.Set("adults_number", strconv.Itoa(hq.Adults))
	q.Set("room_number", "1")
	q.Set("dest_id", hq.DestID)
	q.Set("dest_type", "city")
	q.Set("order_by", "popularity")
	q.Set("locale", "en-gb")
	q.Set("units", "metric")
	q.Set("include_adjacency", "true")
	q.Set("page_number", "0")
	// Ask the provider to quote in EUR up front; offers that still come
	// back in another currency go through the rate cache.
	q.Set("filter_by_currency", "EUR")
	if hq.Children > 0 {
		q.Set("children_number", strconv.Itoa(hq.Children))
		q.Set("children_ages", childrenAges(hq.Children))
	}

	var payload struct {
		Result []upstream.HotelOffer `json:"result"`
	}
	if err := rapidAPIGet(ctx, c.HTTP, c.BaseURL+"/v1/hotels/search", q, c.APIKey, c.APIHost, &payload); err != nil {
		return nil, err
	}
	return payload.Result, nil
}

// The provider has no child-age input in the frontend, so a fixed age is
// reported for every child.
func childrenAges(n int) string {
	ages := make([]string, n)
	for i := range ages {
		ages[i] = "5"
	}
	return strings.Join(ages, ",")
}

func rapidAPIGet(ctx context.Context, client *http.Client, rawURL string, q url.Values, key, host string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("rapidapi request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", key)
	req.Header.Set("x-rapidapi-host", host)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("rapidapi http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("rapidapi bad status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rapidapi decode: %w", err)
	}
	return nil
}
