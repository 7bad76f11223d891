package services

import (
	"context"
	"fmt"
	"log"

	dbm "github.com/ljnoam/server-traveloo/internal/models/db_models"
	req "github.com/ljnoam/server-traveloo/internal/models/request_models"
	resp "github.com/ljnoam/server-traveloo/internal/models/response_models"
	"github.com/ljnoam/server-traveloo/internal/repositories"
	"github.com/ljnoam/server-traveloo/pkg/utils"
)

type FavoriteServiceInterface interface {
	Create(ctx context.Context, request req.CreateFavoriteRequest) error
	ListByUser(ctx context.Context, userID string) ([]resp.FavoriteResponse, error)
}

type FavoriteService struct {
	repo repositories.FavoriteRepository
}

func NewFavoriteService(repo repositories.FavoriteRepository) FavoriteServiceInterface {
	return &FavoriteService{repo: repo}
}

func (s *FavoriteService) Create(ctx context.Context, request req.CreateFavoriteRequest) error {
	if request.UserID == "" {
		return fmt.Errorf("%w: user_id", utils.ErrValidation)
	}
	if !request.HasItinerary() {
		return fmt.Errorf("%w: itinerary", utils.ErrValidation)
	}

	favorite := &dbm.Favorite{
		UserID:      request.UserID,
		Destination: request.Destination,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		Itinerary:   dbm.JSONDocument(request.Itinerary),
		Flights:     dbm.JSONDocument(request.Flights),
		Hotels:      dbm.JSONDocument(request.Hotels),
	}

	if err := s.repo.Create(ctx, favorite); err != nil {
		log.Printf("Error creating favorite: %v", err)
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *FavoriteService) ListByUser(ctx context.Context, userID string) ([]resp.FavoriteResponse, error) {
	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("Error listing favorites for %s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	responses := make([]resp.FavoriteResponse, 0, len(favorites))
	for _, fav := range favorites {
		responses = append(responses, resp.FavoriteResponse{
			ID:          fav.ID.String(),
			Destination: fav.Destination,
			StartDate:   fav.StartDate,
			EndDate:     fav.EndDate,
			Itinerary:   favoriteDocument(fav.Itinerary),
			Flights:     favoriteDocument(fav.Flights),
			Hotels:      favoriteDocument(fav.Hotels),
			CreatedAt:   fav.CreatedAt,
		})
	}
	return responses, nil
}

func favoriteDocument(doc dbm.JSONDocument) []byte {
	if len(doc) == 0 {
		return []byte("null")
	}
	return doc
}
