package main

// @title           Shelfcatalog API
// @version         1.0
// @description     REST API for the library catalog: books and their reviews.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/snnyvrz/shelfcatalog/internal/catalog"
	"github.com/snnyvrz/shelfcatalog/internal/config"
	"github.com/snnyvrz/shelfcatalog/internal/db"
	docs "github.com/snnyvrz/shelfcatalog/internal/docs"
	"github.com/snnyvrz/shelfcatalog/internal/handler"
	"github.com/snnyvrz/shelfcatalog/internal/model"
	"github.com/snnyvrz/shelfcatalog/internal/repository"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	_ = godotenv.Load()

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	e := gin.Default()

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.LoadHTMLGlob("web/templates/*.html")
	e.Static("/static", "web/static")

	docs.SwaggerInfo.BasePath = "/api"

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(&model.Book{}, &model.Review{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	bookRepo := repository.NewGormBookRepository(database)
	reviewRepo := repository.NewGormReviewRepository(database)
	svc := catalog.NewService(bookRepo, reviewRepo)

	healthHandler := handler.NewHealthHandler(database, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	pageHandler := handler.NewPageHandler(svc)
	pageHandler.RegisterRoutes(e)

	api := e.Group("/api")
	{
		bookHandler := handler.NewBookHandler(svc)
		bookHandler.RegisterRoutes(api)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := e.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
