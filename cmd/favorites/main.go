package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	dbfx "github.com/ljnoam/server-traveloo/cmd/fx/db_fx"
	favoritesfx "github.com/ljnoam/server-traveloo/cmd/fx/favorites_fx"
	"github.com/ljnoam/server-traveloo/internal/api/controllers"
	"github.com/ljnoam/server-traveloo/internal/models/db_models"
	"github.com/ljnoam/server-traveloo/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		dbfx.Module,
		favoritesfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(&db_models.Favorite{}); err != nil {
		log.Fatalf("Failed to migrate favorites table: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5002"
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting favorites HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping favorites HTTP server")
			return nil
		},
	})
}

func ProvideRouter(favoritesController *controllers.FavoritesController) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, favoritesController)

	return r
}

func RegisterRoutes(r *gin.Engine, favoritesController *controllers.FavoritesController) {
	api := r.Group("/api")
	api.POST("/favorites", favoritesController.AddFavorite)
	api.GET("/favorites/:user_id", favoritesController.GetFavorites)
}
