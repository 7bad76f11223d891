package response_models

type Flight struct {
	DepartureCity string  `json:"departure_city"`
	ArrivalCity   string  `json:"arrival_city"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Duration      string  `json:"duration"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Airline       string  `json:"airline"`
	Logo          string  `json:"logo"`
	BookingURL    string  `json:"booking_url"`
}

type FlightSearchResponse struct {
	Outbound []Flight `json:"outbound"`
	Return   []Flight `json:"return"`
}
