package main

import (
	"os"
	"time"

	"weko_authors_go_backend/cmd/api/config"
	"weko_authors_go_backend/internal/api"
	"weko_authors_go_backend/internal/database"
	"weko_authors_go_backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	database.InitDB(cfg.Database)

	authorService := services.NewAuthorServiceDB(database.DB)
	prefixService := services.NewPrefixSettingServiceDB(database.DB)
	affiliationService := services.NewAffiliationSettingServiceDB(database.DB)

	r := gin.New()
	r.Use(gin.Recovery(), api.RequestID(), api.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r, authorService, prefixService, affiliationService)

	log.Info().Str("port", cfg.Port).Str("driver", cfg.Database.Driver).Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
