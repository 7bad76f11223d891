package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ljnoam/server-traveloo/internal/models/request_models"
	"github.com/ljnoam/server-traveloo/internal/models/response_models"
	"github.com/ljnoam/server-traveloo/internal/services"
	"github.com/ljnoam/server-traveloo/pkg/utils"
)

type HotelsController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelsController(hotelService services.HotelServiceInterface) *HotelsController {
	return &HotelsController{
		hotelService: hotelService,
	}
}

// SearchHotels handles POST /api/hotels.
func (h *HotelsController) SearchHotels(c *gin.Context) {
	var request request_models.HotelSearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Requête vide")
		return
	}

	if request.Destination == "" || request.StartDate == "" || request.EndDate == "" {
		utils.RespondError(c, http.StatusBadRequest, "Champs manquants")
		return
	}

	hotels, err := h.hotelService.Search(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if len(hotels) == 0 {
		c.JSON(http.StatusOK, response_models.HotelSearchResponse{
			Hotels:  []response_models.Hotel{},
			Message: "Aucun hôtel trouvé",
		})
		return
	}

	c.JSON(http.StatusOK, response_models.HotelSearchResponse{Hotels: hotels})
}
