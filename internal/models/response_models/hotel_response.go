package response_models

type Hotel struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Photo      string   `json:"photo"`
	Rating     *float64 `json:"rating"`
	Room       string   `json:"room"`
	BookingURL string   `json:"booking_url"`
	Nights     int      `json:"nights"`
	Total      float64  `json:"total"`
	Price      float64  `json:"price"`
	Currency   string   `json:"currency"`
}

type HotelSearchResponse struct {
	Hotels  []Hotel `json:"hotels"`
	Message string  `json:"message,omitempty"`
}
