package response_models

import (
	"encoding/json"
	"time"
)

// FavoriteResponse is one stored favorite as the frontend consumes it.
// The user id is implied by the request path and never echoed back.
type FavoriteResponse struct {
	ID          string          `json:"id"`
	Destination string          `json:"destination"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Itinerary   json.RawMessage `json:"itinerary"`
	Flights     json.RawMessage `json:"flights"`
	Hotels      json.RawMessage `json:"hotels"`
	CreatedAt   time.Time       `json:"created_at"`
}

type FavoriteCreatedResponse struct {
	Message string `json:"message"`
}
