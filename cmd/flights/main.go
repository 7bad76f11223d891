package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	flightsfx "github.com/ljnoam/server-traveloo/cmd/fx/flights_fx"
	"github.com/ljnoam/server-traveloo/internal/api/controllers"
	"github.com/ljnoam/server-traveloo/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		flightsfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting flights HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping flights HTTP server")
			return nil
		},
	})
}

func ProvideRouter(flightsController *controllers.FlightsController) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, flightsController)

	return r
}

func RegisterRoutes(r *gin.Engine, flightsController *controllers.FlightsController) {
	api := r.Group("/api")
	api.POST("/flights", flightsController.SearchFlights)
}
