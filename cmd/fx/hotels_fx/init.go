package hotelsfx

import (
	"go.uber.org/fx"

	"github.com/ljnoam/server-traveloo/internal/api/controllers"
	"github.com/ljnoam/server-traveloo/internal/services"
)

var Module = fx.Provide(
	provideHotelAPI, provideRateAPI, provideRateCache, provideHotelService, provideHotelsController)

func provideHotelAPI() services.HotelAPI {
	return services.NewHotelSearchClient()
}

func provideRateAPI() services.RateAPI {
	return services.NewExchangeRateClient()
}

func provideRateCache(api services.RateAPI) *services.RateCache {
	return services.NewRateCache(api)
}

func provideHotelService(api services.HotelAPI, rates *services.RateCache) services.HotelServiceInterface {
	return services.NewHotelService(api, rates)
}

func provideHotelsController(hotelService services.HotelServiceInterface) *controllers.HotelsController {
	return controllers.NewHotelsController(hotelService)
}
