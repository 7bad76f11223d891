package flightsfx

import (
	"go.uber.org/fx"

	"github.com/ljnoam/server-traveloo/internal/api/controllers"
	"github.com/ljnoam/server-traveloo/internal/services"
)

var Module = fx.Provide(
	provideFlightAPI, provideFlightService, provideFlightsController)

func provideFlightAPI() services.FlightAPI {
	return services.NewFlightSearchClient()
}

func provideFlightService(api services.FlightAPI) services.FlightServiceInterface {
	return services.NewFlightService(api)
}

func provideFlightsController(flightService services.FlightServiceInterface) *controllers.FlightsController {
	return controllers.NewFlightsController(flightService)
}
