package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	req "github.com/ljnoam/server-traveloo/internal/models/request_models"
	resp "github.com/ljnoam/server-traveloo/internal/models/response_models"
	upstream "github.com/ljnoam/server-traveloo/internal/models/upstream_models"
	"github.com/ljnoam/server-traveloo/pkg/utils"
)

const maxFlightsPerDirection = 5

// Budget tier labels as the frontend sends them.
var cabinClassByBudget = map[string]string{
	"Économique": "ECONOMY",
	"Modéré":     "PREMIUM_ECONOMY",
	"Luxe":       "FIRST",
}

type FlightServiceInterface interface {
	Search(ctx context.Context, request req.FlightSearchRequest) (*resp.FlightSearchResponse, error)
}

type FlightService struct {
	api FlightAPI
}

func NewFlightService(api FlightAPI) FlightServiceInterface {
	return &FlightService{api: api}
}

// Search resolves both cities to airport codes, queries one search per
// direction and returns up to 5 normalized offers each way, in the order the
// provider ranked them.
func (s *FlightService) Search(ctx context.Context, request req.FlightSearchRequest) (*resp.FlightSearchResponse, error) {
	adults, children := request.NormalizedCounts()
	totalPassengers := adults + children
	cabinClass := cabinClassFor(request.Budget)

	fromCode, fromOK := s.resolveAirport(ctx, request.From)
	toCode, toOK := s.resolveAirport(ctx, request.To)
	if !fromOK || !toOK {
		return nil, utils.ErrAirportNotFound
	}

	outboundRaw := s.searchDirection(ctx, FlightQuery{
		FromID:     fromCode,
		ToID:       toCode,
		Date:       request.DepartDate,
		Adults:     adults,
		Children:   children,
		CabinClass: cabinClass,
	})
	returnRaw := s.searchDirection(ctx, FlightQuery{
		FromID:     toCode,
		ToID:       fromCode,
		Date:       request.ReturnDate,
		Adults:     adults,
		Children:   children,
		CabinClass: cabinClass,
	})

	return &resp.FlightSearchResponse{
		// Each direction's deep link carries the other direction's date so
		// skyscanner opens on the full round trip.
		Outbound: normalizeOffers(outboundRaw, totalPassengers, adults, children, cabinClass, request.ReturnDate),
		Return:   normalizeOffers(returnRaw, totalPassengers, adults, children, cabinClass, request.DepartDate),
	}, nil
}

func cabinClassFor(budget string) string {
	if class, ok := cabinClassByBudget[budget]; ok {
		return class
	}
	return "ECONOMY"
}

// resolveAirport collapses every failure mode to "not found"; the caller
// treats that as a client error, never as something to retry.
func (s *FlightService) resolveAirport(ctx context.Context, city string) (string, bool) {
	entries, err := s.api.SearchDestination(ctx, city)
	if err != nil {
		log.Printf("Error resolving airport for %q: %v", city, err)
		return "", false
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.ID, ".AIRPORT") {
			return entry.ID, true
		}
	}
	return "", false
}

func (s *FlightService) searchDirection(ctx context.Context, q FlightQuery) []upstream.FlightOffer {
	offers, err := s.api.SearchFlights(ctx, q)
	if err != nil {
		log.Printf("Error searching flights %s -> %s: %v", q.FromID, q.ToID, err)
		return nil
	}
	return offers
}

func normalizeOffers(offers []upstream.FlightOffer, totalPassengers, adults, children int, cabinClass, oppositeDate string) []resp.Flight {
	if len(offers) > maxFlightsPerDirection {
		offers = offers[:maxFlightsPerDirection]
	}
	normalized := make([]resp.Flight, 0, len(offers))
	for _, offer := range offers {
		normalized = append(normalized, formatFlightOffer(offer, totalPassengers, adults, children, cabinClass, oppositeDate))
	}
	return normalized
}

// formatFlightOffer reshapes one provider offer into the client-facing
// flight. An offer without segments yields an empty record rather than
// failing the whole batch.
func formatFlightOffer(offer upstream.FlightOffer, totalPassengers, adults, children int, cabinClass, oppositeDate string) resp.Flight {
	if len(offer.Segments) == 0 {
		return resp.Flight{}
	}

	firstLeg := offer.FirstLeg()
	lastLeg := offer.LastLeg()

	airline := "Compagnie inconnue"
	logo := ""
	if carrier, ok := firstLeg.FirstCarrier(); ok {
		airline = carrier.Name
		logo = carrier.Logo
	}

	seconds := offer.TotalTransitSeconds()

	return resp.Flight{
		DepartureCity: cityOrUnknown(firstLeg.DepartureAirport.CityName),
		ArrivalCity:   cityOrUnknown(lastLeg.ArrivalAirport.CityName),
		DepartureTime: utils.ClockFromTimestamp(firstLeg.DepartureTime),
		ArrivalTime:   utils.ClockFromTimestamp(lastLeg.ArrivalTime),
		Duration:      fmt.Sprintf("%dh%dm", seconds/3600, (seconds%3600)/60),
		Price:         utils.Round2(offer.UnitPrice() * float64(totalPassengers)),
		Currency:      offer.Currency(),
		Airline:       airline,
		Logo:          logo,
		BookingURL:    skyscannerURL(firstLeg, lastLeg, oppositeDate, adults, children, cabinClass),
	}
}

func cityOrUnknown(city string) string {
	if city == "" {
		return "Inconnu"
	}
	return city
}

func skyscannerURL(firstLeg, lastLeg upstream.FlightLeg, returnDate string, adults, children int, cabinClass string) string {
	originCode := strings.ToLower(firstLeg.DepartureAirport.Code)
	destCode := strings.ToLower(lastLeg.ArrivalAirport.Code)
	departCompact := utils.CompactDate(utils.DatePart(firstLeg.DepartureTime))
	returnCompact := utils.CompactDate(returnDate)

	return fmt.Sprintf(
		"https://www.skyscanner.fr/transport/flights/%s/%s/%s/%s/?adults=%d&children=%d&cabinclass=%s",
		originCode, destCode, departCompact, returnCompact,
		adults, children, strings.ToLower(cabinClass),
	)
}
