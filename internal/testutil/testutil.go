package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfcatalog/internal/model"
)

func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Book{}, &model.Review{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func SeedBook(t *testing.T, db *gorm.DB, title, author string, year int, createdAt time.Time) model.Book {
	t.Helper()

	book := model.Book{
		Title:       title,
		Author:      author,
		Year:        year,
		Genre:       "Fiction",
		Description: "A seeded book",
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}

	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}

	return book
}

func SeedReview(t *testing.T, db *gorm.DB, bookID uint, rating int, comment string, createdAt time.Time) model.Review {
	t.Helper()

	review := model.Review{
		Rating:    rating,
		Comment:   comment,
		BookID:    bookID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	if err := db.Create(&review).Error; err != nil {
		t.Fatalf("failed to seed review for book %d: %v", bookID, err)
	}

	return review
}
