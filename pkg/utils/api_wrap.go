package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the flat error body every endpoint returns on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// HandleServiceError maps service-layer sentinel errors to HTTP status codes.
// Anything unrecognized is a server fault; its text is exposed in the body
// because these services sit behind the Traveloo frontend, not the open web.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAirportNotFound):
		RespondError(c, http.StatusBadRequest, "Impossible de récupérer les codes d'aéroport")
	case errors.Is(err, ErrDestinationNotFound):
		RespondError(c, http.StatusBadRequest, "Destination introuvable")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, err.Error())
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, err.Error())
	}
}
