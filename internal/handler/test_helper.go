package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfcatalog/internal/catalog"
	"github.com/snnyvrz/shelfcatalog/internal/repository"
)

func setupRouterWithService(svc *catalog.Service, db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()

	// Tests run from the package directory.
	r.LoadHTMLGlob("../../web/templates/*.html")

	ph := NewPageHandler(svc)
	ph.RegisterRoutes(r)

	hh := NewHealthHandler(db, time.Now(), "test")
	hh.RegisterRoutes(r)

	api := r.Group("/api")
	{
		bh := NewBookHandler(svc)
		bh.RegisterRoutes(api)
	}

	return r
}

func setupRouter(db *gorm.DB) *gin.Engine {
	svc := catalog.NewService(
		repository.NewGormBookRepository(db),
		repository.NewGormReviewRepository(db),
	)
	return setupRouterWithService(svc, db)
}
