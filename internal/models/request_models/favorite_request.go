package request_models

import "encoding/json"

type CreateFavoriteRequest struct {
	UserID      string          `json:"user_id"`
	Destination string          `json:"destination"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Itinerary   json.RawMessage `json:"itinerary"`
	Flights     json.RawMessage `json:"flights"`
	Hotels      json.RawMessage `json:"hotels"`
}

// HasItinerary reports whether the request carries a usable itinerary
// document. JSON null counts as absent.
func (r CreateFavoriteRequest) HasItinerary() bool {
	return len(r.Itinerary) > 0 && string(r.Itinerary) != "null"
}
