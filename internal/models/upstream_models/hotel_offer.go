package upstream_models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Shapes returned by the hotel-search provider.

type LocationEntry struct {
	DestID   string `json:"dest_id"`
	DestType string `json:"dest_type"`
}

type HotelOffer struct {
	HotelName              string     `json:"hotel_name"`
	Address                string     `json:"address"`
	MaxPhotoURL            string     `json:"max_photo_url"`
	ReviewScore            *float64   `json:"review_score"`
	UnitConfigurationLabel string     `json:"unit_configuration_label"`
	URL                    string     `json:"url"`
	PriceBreakdown         HotelPrice `json:"price_breakdown"`
}

type HotelPrice struct {
	GrossPrice FlexFloat `json:"gross_price"`
	Currency   string    `json:"currency"`
}

// Name defaults to a placeholder when the provider omits the hotel name.
func (h HotelOffer) Name() string {
	if h.HotelName == "" {
		return "Hôtel inconnu"
	}
	return h.HotelName
}

// BookingURL defaults to a dead link rather than an empty string.
func (h HotelOffer) BookingURL() string {
	if h.URL == "" {
		return "#"
	}
	return h.URL
}

// FlexFloat decodes a provider price field that may arrive as a JSON number,
// a numeric string, null, or garbage. It never fails the surrounding decode;
// unusable input just leaves the value unset.
type FlexFloat struct {
	value float64
	ok    bool
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	// json.Unmarshal accepts null for a plain float64 without touching it,
	// which would count as a parsed zero price here.
	if string(data) == "null" {
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		f.value, f.ok = num, true
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.ParseFloat(str, 64); err == nil {
			f.value, f.ok = parsed, true
		}
	}
	return nil
}

func (f FlexFloat) Float() (float64, bool) {
	return f.value, f.ok
}

// OrInf treats an absent or unparsable price as infinitely expensive, so it
// can never pass a budget ceiling.
func (f FlexFloat) OrInf() float64 {
	if !f.ok {
		return math.Inf(1)
	}
	return f.value
}
