// Package seed loads the sample catalog used for local development. Seeding
// is skipped when the books table already has rows.
package seed

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/snnyvrz/shelfcatalog/internal/model"
)

var sampleBooks = []model.Book{
	{
		Title:       "To Kill a Mockingbird",
		Author:      "Harper Lee",
		Year:        1960,
		Genre:       "Fiction",
		Description: "A gripping tale of racial injustice and childhood innocence in the American South.",
	},
	{
		Title:       "1984",
		Author:      "George Orwell",
		Year:        1949,
		Genre:       "Dystopian",
		Description: "A chilling novel about totalitarianism and surveillance in a dystopian future.",
	},
	{
		Title:       "The Great Gatsby",
		Author:      "F. Scott Fitzgerald",
		Year:        1925,
		Genre:       "Fiction",
		Description: "A classic American novel about wealth, love, and the American Dream.",
	},
	{
		Title:       "Pride and Prejudice",
		Author:      "Jane Austen",
		Year:        1813,
		Genre:       "Romance",
		Description: "A witty romance novel exploring social class and personal growth.",
	},
	{
		Title:       "The Catcher in the Rye",
		Author:      "J.D. Salinger",
		Year:        1951,
		Genre:       "Fiction",
		Description: "A coming-of-age story following a teenage boy in New York City.",
	},
}

// index into sampleBooks -> reviews to attach
var sampleReviews = map[int][]model.Review{
	0: {
		{Rating: 5, Comment: "A masterpiece of American literature. Highly recommended!"},
		{Rating: 4, Comment: "Powerful story with important themes."},
	},
	1: {
		{Rating: 5, Comment: "Dystopian brilliance. Still relevant today."},
	},
	2: {
		{Rating: 5, Comment: "Beautiful prose and compelling characters."},
	},
	3: {
		{Rating: 5, Comment: "Timeless romance with witty dialogue."},
	},
}

// Run inserts the sample books and reviews unless books already exist.
// Returns the number of books created.
func Run(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&model.Book{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	created := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range sampleBooks {
			book := sampleBooks[i]
			if err := tx.Create(&book).Error; err != nil {
				return fmt.Errorf("create book %q: %w", book.Title, err)
			}
			created++

			for _, review := range sampleReviews[i] {
				review.BookID = book.ID
				if err := tx.Create(&review).Error; err != nil {
					return fmt.Errorf("create review for %q: %w", book.Title, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}
