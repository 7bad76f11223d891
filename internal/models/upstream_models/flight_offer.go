package upstream_models

// Shapes returned by the flight-search provider. Everything here is parsed
// but untrusted: any field may be missing, so reads go through accessors
// carrying an explicit default instead of raw field chains.

type DestinationEntry struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type FlightOffer struct {
	UnifiedPriceBreakdown *FlightPriceBreakdown `json:"unifiedPriceBreakdown"`
	Segments              []FlightSegment       `json:"segments"`
}

type FlightPriceBreakdown struct {
	Price *FlightPrice `json:"price"`
}

type FlightPrice struct {
	Units        int64  `json:"units"`
	Nanos        int64  `json:"nanos"`
	CurrencyCode string `json:"currencyCode"`
}

type FlightSegment struct {
	TotalTime int64       `json:"totalTime"`
	Legs      []FlightLeg `json:"legs"`
}

type FlightLeg struct {
	DepartureAirport AirportInfo   `json:"departureAirport"`
	ArrivalAirport   AirportInfo   `json:"arrivalAirport"`
	DepartureTime    string        `json:"departureTime"`
	ArrivalTime      string        `json:"arrivalTime"`
	CarriersData     []CarrierInfo `json:"carriersData"`
}

type AirportInfo struct {
	Code     string `json:"code"`
	CityName string `json:"cityName"`
}

type CarrierInfo struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// UnitPrice is the per-passenger price; 0 when the breakdown is absent.
func (o FlightOffer) UnitPrice() float64 {
	if o.UnifiedPriceBreakdown == nil || o.UnifiedPriceBreakdown.Price == nil {
		return 0
	}
	p := o.UnifiedPriceBreakdown.Price
	return float64(p.Units) + float64(p.Nanos)/1e9
}

// Currency defaults to EUR, the currency every search call requests.
func (o FlightOffer) Currency() string {
	if o.UnifiedPriceBreakdown == nil || o.UnifiedPriceBreakdown.Price == nil ||
		o.UnifiedPriceBreakdown.Price.CurrencyCode == "" {
		return "EUR"
	}
	return o.UnifiedPriceBreakdown.Price.CurrencyCode
}

// TotalTransitSeconds sums the transit time of every segment.
func (o FlightOffer) TotalTransitSeconds() int64 {
	var total int64
	for _, seg := range o.Segments {
		total += seg.TotalTime
	}
	return total
}

// FirstLeg is the first leg of the first segment, zero-valued when the offer
// carries no legs at all.
func (o FlightOffer) FirstLeg() FlightLeg {
	if len(o.Segments) == 0 || len(o.Segments[0].Legs) == 0 {
		return FlightLeg{}
	}
	return o.Segments[0].Legs[0]
}

// LastLeg is the last leg of the last segment, zero-valued when absent.
func (o FlightOffer) LastLeg() FlightLeg {
	if len(o.Segments) == 0 {
		return FlightLeg{}
	}
	legs := o.Segments[len(o.Segments)-1].Legs
	if len(legs) == 0 {
		return FlightLeg{}
	}
	return legs[len(legs)-1]
}

// FirstCarrier reports the leading carriersData entry, if any.
func (l FlightLeg) FirstCarrier() (CarrierInfo, bool) {
	if len(l.CarriersData) == 0 {
		return CarrierInfo{}, false
	}
	return l.CarriersData[0], true
}
