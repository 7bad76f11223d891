package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ljnoam/server-traveloo/internal/models/request_models"
	"github.com/ljnoam/server-traveloo/internal/services"
	"github.com/ljnoam/server-traveloo/pkg/utils"
)

type FlightsController struct {
	flightService services.FlightServiceInterface
}

func NewFlightsController(flightService services.FlightServiceInterface) *FlightsController {
	return &FlightsController{
		flightService: flightService,
	}
}

// SearchFlights handles POST /api/flights.
func (f *FlightsController) SearchFlights(c *gin.Context) {
	var request request_models.FlightSearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	result, err := f.flightService.Search(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
