package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfcatalog/internal/model"
	"github.com/snnyvrz/shelfcatalog/internal/repository"
	"github.com/snnyvrz/shelfcatalog/internal/testutil"
	"github.com/snnyvrz/shelfcatalog/internal/validation"
)

type fakeBookRepo struct {
	CreateFn   func(ctx context.Context, b *model.Book) error
	FindByIDFn func(ctx context.Context, id uint) (*model.Book, error)
	ListFn     func(ctx context.Context) ([]model.Book, error)
	DeleteFn   func(ctx context.Context, id uint) error
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookRepo) List(ctx context.Context) ([]model.Book, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

type fakeReviewRepo struct {
	CreateForBookFn func(ctx context.Context, bookID uint, r *model.Review) error
}

func (f *fakeReviewRepo) CreateForBook(ctx context.Context, bookID uint, r *model.Review) error {
	if f.CreateForBookFn != nil {
		return f.CreateForBookFn(ctx, bookID, r)
	}
	return nil
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db := testutil.NewTestDB(t)
	svc := NewService(
		repository.NewGormBookRepository(db),
		repository.NewGormReviewRepository(db),
	)
	return svc, db
}

func validBookInput() validation.BookInput {
	return validation.BookInput{
		Title:       "1984",
		Author:      "George Orwell",
		Year:        1949,
		Genre:       "Dystopian",
		Description: "A chilling novel about totalitarianism.",
	}
}

func TestCreateBook_RoundTripsThroughGetBook(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateBook(ctx, validBookInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	fetched, err := svc.GetBook(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if fetched.Title != created.Title ||
		fetched.Author != created.Author ||
		fetched.Year != created.Year ||
		fetched.Genre != created.Genre ||
		fetched.Description != created.Description {
		t.Errorf("fetched book differs from created: %+v vs %+v", fetched, created)
	}
}

func TestCreateBook_ValidationFailedPersistsNothing(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	in := validBookInput()
	in.Title = ""

	_, err := svc.CreateBook(ctx, in)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != "title" {
		t.Errorf("expected a title error, got %v", verr.Fields)
	}

	var count int64
	if err := db.Model(&model.Book{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no books persisted, got %d", count)
	}
}

func TestCreateBook_DoesNotTouchStoreOnInvalidInput(t *testing.T) {
	repo := &fakeBookRepo{
		CreateFn: func(ctx context.Context, b *model.Book) error {
			t.Fatal("store must not be called for invalid input")
			return nil
		},
	}
	svc := NewService(repo, &fakeReviewRepo{})

	_, err := svc.CreateBook(context.Background(), validation.BookInput{})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestCreateBook_TrimsTextFields(t *testing.T) {
	svc, _ := newTestService(t)

	in := validBookInput()
	in.Title = "  1984  "

	created, err := svc.CreateBook(context.Background(), in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Title != "1984" {
		t.Errorf("expected trimmed title, got %q", created.Title)
	}
}

func TestGetBook_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetBook(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetBook_PropagatesStorageFault(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &fakeBookRepo{
		FindByIDFn: func(ctx context.Context, id uint) (*model.Book, error) {
			return nil, boom
		},
	}
	svc := NewService(repo, &fakeReviewRepo{})

	_, err := svc.GetBook(context.Background(), 1)

	if errors.Is(err, ErrNotFound) {
		t.Fatal("storage fault must not be reported as not found")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

func TestListBooks_NewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	b1, err := svc.CreateBook(ctx, validBookInput())
	if err != nil {
		t.Fatalf("create b1 failed: %v", err)
	}

	in2 := validBookInput()
	in2.Title = "Animal Farm"
	in2.Year = 1945
	b2, err := svc.CreateBook(ctx, in2)
	if err != nil {
		t.Fatalf("create b2 failed: %v", err)
	}

	books, err := svc.ListBooks(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if books[0].ID != b2.ID {
		t.Errorf("expected %q first, got %q", b2.Title, books[0].Title)
	}
	if books[1].ID != b1.ID {
		t.Errorf("expected %q last, got %q", b1.Title, books[1].Title)
	}
}

func TestDeleteBook_RemovesBookAndReviews(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	book, err := svc.CreateBook(ctx, validBookInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.AddReview(ctx, book.ID, validation.ReviewInput{Rating: 5, Comment: "Great"}); err != nil {
		t.Fatalf("add review failed: %v", err)
	}

	if err := svc.DeleteBook(ctx, book.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.GetBook(ctx, book.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	var reviews int64
	if err := db.Model(&model.Review{}).Count(&reviews).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if reviews != 0 {
		t.Errorf("expected reviews to be removed, got %d", reviews)
	}
}

func TestDeleteBook_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeleteBook(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddReview_Success(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	book, err := svc.CreateBook(ctx, validBookInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	review, err := svc.AddReview(ctx, book.ID, validation.ReviewInput{Rating: 5, Comment: "Great"})
	if err != nil {
		t.Fatalf("add review failed: %v", err)
	}

	if review.ID == 0 {
		t.Fatal("expected assigned ID")
	}
	if review.BookID != book.ID {
		t.Errorf("expected book id %d, got %d", book.ID, review.BookID)
	}

	fetched, err := svc.GetBook(ctx, book.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(fetched.Reviews) != 1 || fetched.Reviews[0].Rating != 5 {
		t.Errorf("expected one rating-5 review, got %+v", fetched.Reviews)
	}
}

func TestAddReview_ValidationFailedPersistsNothing(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	book, err := svc.CreateBook(ctx, validBookInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.AddReview(ctx, book.ID, validation.ReviewInput{Rating: 9, Comment: ""})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("expected rating and comment errors, got %v", verr.Fields)
	}

	var count int64
	if err := db.Model(&model.Review{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no reviews persisted, got %d", count)
	}
}

func TestAddReview_BookMissing(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddReview(ctx, 42, validation.ReviewInput{Rating: 5, Comment: "Great"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	var count int64
	if err := db.Model(&model.Review{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no reviews persisted, got %d", count)
	}
}

func TestAddReview_ForeignKeyViolationIsNotFound(t *testing.T) {
	reviews := &fakeReviewRepo{
		CreateForBookFn: func(ctx context.Context, bookID uint, r *model.Review) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "fk_books_reviews"}
		},
	}
	svc := NewService(&fakeBookRepo{}, reviews)

	_, err := svc.AddReview(context.Background(), 1, validation.ReviewInput{Rating: 5, Comment: "Great"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for FK violation, got %v", err)
	}
}
