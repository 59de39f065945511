package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/snnyvrz/shelfcatalog/internal/model"
)

type ReviewRepository interface {
	CreateForBook(ctx context.Context, bookID uint, review *model.Review) error
}

type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// CreateForBook checks that the book exists and inserts the review inside
// one transaction, so the review cannot be attached to a book that is
// deleted between the check and the insert. Returns gorm.ErrRecordNotFound
// when the book does not exist.
func (r *GormReviewRepository) CreateForBook(ctx context.Context, bookID uint, review *model.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book model.Book
		if err := tx.Select("id").First(&book, "id = ?", bookID).Error; err != nil {
			return err
		}

		review.BookID = book.ID
		return tx.Create(review).Error
	})
}
