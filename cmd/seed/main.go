package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/snnyvrz/shelfcatalog/internal/config"
	"github.com/snnyvrz/shelfcatalog/internal/db"
	"github.com/snnyvrz/shelfcatalog/internal/model"
	"github.com/snnyvrz/shelfcatalog/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(&model.Book{}, &model.Review{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	created, err := seed.Run(database)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	if created == 0 {
		log.Println("database already contains books, skipping seed")
		return
	}

	log.Printf("created %d sample books", created)
}
