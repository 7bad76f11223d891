package request_models

type FlightSearchRequest struct {
	From       string `json:"from"`
	To         string `json:"to"`
	DepartDate string `json:"depart_date"`
	ReturnDate string `json:"return_date"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	Budget     string `json:"budget"`
}

// NormalizedCounts applies the historical defaults: at least one adult,
// never a negative child count.
func (r FlightSearchRequest) NormalizedCounts() (adults, children int) {
	adults = r.Adults
	if adults <= 0 {
		adults = 1
	}
	children = r.Children
	if children < 0 {
		children = 0
	}
	return adults, children
}
