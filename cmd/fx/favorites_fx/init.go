package favoritesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/ljnoam/server-traveloo/internal/api/controllers"
	"github.com/ljnoam/server-traveloo/internal/repositories"
	"github.com/ljnoam/server-traveloo/internal/services"
)

var Module = fx.Provide(
	provideFavoriteRepo, provideFavoriteService, provideFavoritesController)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(repo repositories.FavoriteRepository) services.FavoriteServiceInterface {
	return services.NewFavoriteService(repo)
}

func provideFavoritesController(favoriteService services.FavoriteServiceInterface) *controllers.FavoritesController {
	return controllers.NewFavoritesController(favoriteService)
}
