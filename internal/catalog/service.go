package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfcatalog/internal/model"
	"github.com/snnyvrz/shelfcatalog/internal/repository"
	"github.com/snnyvrz/shelfcatalog/internal/validation"
)

// Service exposes the catalog operations over books and reviews. It holds no
// state of its own beyond the repositories it writes through. Failures are
// either *ValidationError, ErrNotFound, or a storage error propagated as-is.
type Service struct {
	books   repository.BookRepository
	reviews repository.ReviewRepository
}

func NewService(books repository.BookRepository, reviews repository.ReviewRepository) *Service {
	return &Service{books: books, reviews: reviews}
}

// ListBooks returns every book with its reviews, newest book first.
func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// GetBook returns one book with its reviews, newest review first.
func (s *Service) GetBook(ctx context.Context, id uint) (*model.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return book, nil
}

// CreateBook validates the input and persists a new book.
func (s *Service) CreateBook(ctx context.Context, in validation.BookInput) (*model.Book, error) {
	in, fieldErrs := validation.Book(in)
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	book := model.Book{
		Title:       in.Title,
		Author:      in.Author,
		Year:        in.Year,
		Genre:       in.Genre,
		Description: in.Description,
	}

	if err := s.books.Create(ctx, &book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return &book, nil
}

// DeleteBook removes the book and all reviews referencing it.
func (s *Service) DeleteBook(ctx context.Context, id uint) error {
	if err := s.books.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}

// AddReview validates the input and attaches a new review to the book. The
// existence check and the insert run in one transaction; if a concurrent
// delete still wins under a weaker isolation level, the resulting foreign
// key violation is reported as ErrNotFound rather than a storage fault.
func (s *Service) AddReview(ctx context.Context, bookID uint, in validation.ReviewInput) (*model.Review, error) {
	in, fieldErrs := validation.Review(in)
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	review := model.Review{
		Rating:  in.Rating,
		Comment: in.Comment,
	}

	if err := s.reviews.CreateForBook(ctx, bookID, &review); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("add review to book %d: %w", bookID, err)
	}

	return &review, nil
}
