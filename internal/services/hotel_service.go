package services

import (
	"context"
	"log"
	"math"

	req "github.com/ljnoam/server-traveloo/internal/models/request_models"
	resp "github.com/ljnoam/server-traveloo/internal/models/response_models"
	upstream "github.com/ljnoam/server-traveloo/internal/models/upstream_models"
	"github.com/ljnoam/server-traveloo/pkg/utils"
)

const maxHotels = 9

type HotelServiceInterface interface {
	Search(ctx context.Context, request req.HotelSearchRequest) ([]resp.Hotel, error)
}

type HotelService struct {
	api   HotelAPI
	rates *RateCache
}

func NewHotelService(api HotelAPI, rates *RateCache) HotelServiceInterface {
	return &HotelService{api: api, rates: rates}
}

// Search resolves the destination, queries the provider (already asking for
// EUR quotes), applies the budget ceiling on EUR-equivalent totals and
// returns up to 9 normalized offers in provider order.
func (s *HotelService) Search(ctx context.Context, request req.HotelSearchRequest) ([]resp.Hotel, error) {
	adults, children := request.NormalizedCounts()

	destID, ok := s.resolveDestination(ctx, request.Destination)
	if !ok {
		return nil, utils.ErrDestinationNotFound
	}

	offers, err := s.api.SearchHotels(ctx, HotelQuery{
		DestID:       destID,
		CheckinDate:  request.StartDate,
		CheckoutDate: request.EndDate,
		Adults:       adults,
		Children:     children,
	})
	if err != nil {
		log.Printf("Error searching hotels for destination %s: %v", destID, err)
		return []resp.Hotel{}, nil
	}

	ceiling := request.BudgetCeiling()
	nights := utils.NightsBetween(request.StartDate, request.EndDate)

	hotels := make([]resp.Hotel, 0, maxHotels)
	for _, offer := range offers {
		if len(hotels) == maxHotels {
			break
		}
		total := s.eurTotal(ctx, offer)
		if ceiling != nil && total > *ceiling {
			continue
		}
		if math.IsInf(total, 1) {
			// No ceiling excluded it; show the offer without a price
			// rather than leak an unmarshalable infinity.
			total = 0
		}
		hotels = append(hotels, formatHotelOffer(offer, total, nights))
	}
	return hotels, nil
}

// resolveDestination collapses every failure mode to "not found".
func (s *HotelService) resolveDestination(ctx context.Context, city string) (string, bool) {
	entries, err := s.api.SearchLocations(ctx, city)
	if err != nil {
		log.Printf("Error resolving destination for %q: %v", city, err)
		return "", false
	}
	for _, entry := range entries {
		if entry.DestType == "city" && entry.DestID != "" {
			return entry.DestID, true
		}
	}
	return "", false
}

// eurTotal converts an offer's gross price to EUR using the rate cache.
// An unusable price field comes back as +Inf so it can never pass a
// budget ceiling.
func (s *HotelService) eurTotal(ctx context.Context, offer upstream.HotelOffer) float64 {
	gross := offer.PriceBreakdown.GrossPrice.OrInf()
	if math.IsInf(gross, 1) {
		return gross
	}
	rate := s.rates.EURRate(ctx, offer.PriceBreakdown.Currency)
	return gross * rate
}

func formatHotelOffer(offer upstream.HotelOffer, eurTotal float64, nights int) resp.Hotel {
	total := utils.Round2(eurTotal)
	return resp.Hotel{
		Name:       offer.Name(),
		Address:    offer.Address,
		Photo:      offer.MaxPhotoURL,
		Rating:     offer.ReviewScore,
		Room:       utils.CleanRoomInfo(offer.UnitConfigurationLabel),
		BookingURL: offer.BookingURL(),
		Nights:     nights,
		Total:      total,
		Price:      utils.Round2(total / float64(nights)),
		Currency:   "EUR",
	}
}
