package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ljnoam/server-traveloo/internal/models/request_models"
	"github.com/ljnoam/server-traveloo/internal/models/response_models"
	"github.com/ljnoam/server-traveloo/internal/services"
	"github.com/ljnoam/server-traveloo/pkg/utils"
)

type FavoritesController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoritesController(favoriteService services.FavoriteServiceInterface) *FavoritesController {
	return &FavoritesController{
		favoriteService: favoriteService,
	}
}

// AddFavorite handles POST /api/favorites.
//
// Validation failures surface as 500, not 400: the clients were built
// against that behavior and distinguish cases by the error text.
func (f *FavoritesController) AddFavorite(c *gin.Context) {
	var request request_models.CreateFavoriteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := f.favoriteService.Create(c.Request.Context(), request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response_models.FavoriteCreatedResponse{
		Message: "Itinéraire ajouté aux favoris",
	})
}

// GetFavorites handles GET /api/favorites/:user_id.
func (f *FavoritesController) GetFavorites(c *gin.Context) {
	userID := c.Param("user_id")

	favorites, err := f.favoriteService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}
