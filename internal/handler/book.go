package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/shelfcatalog/internal/catalog"
	"github.com/snnyvrz/shelfcatalog/internal/validation"
)

type BookHandler struct {
	svc *catalog.Service
}

func NewBookHandler(svc *catalog.Service) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.POST("", h.CreateBook)
		books.GET("/:id", h.GetBookByID)
		books.DELETE("/:id", h.DeleteBook)
		books.POST("/:id/reviews", h.AddReview)
	}
}

// ListBooks godoc
// @Summary      List books
// @Description  Get all books with their reviews, newest first
// @Tags         books
// @Produce      json
// @Success      200  {object}  ListBooksResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.svc.ListBooks(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"BOOK_LIST_FAILED",
			"failed to fetch books",
		)
		return
	}

	responses := make([]Book, 0, len(books))
	for _, b := range books {
		responses = append(responses, toBookResponse(b).Data)
	}

	c.JSON(http.StatusOK, ListBooksResponse{Data: responses})
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Description  Get a single book with its reviews, newest review first
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	bookID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_ID",
			"invalid book id",
		)
		return
	}

	book, err := h.svc.GetBook(c.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_FETCH_FAILED",
			"failed to fetch book",
		)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book with title, author, year, genre and description
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest         true  "Book to create"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book, err := h.svc.CreateBook(c.Request.Context(), validation.BookInput{
		Title:       req.Title,
		Author:      req.Author,
		Year:        req.Year,
		Genre:       req.Genre,
		Description: req.Description,
	})
	if err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			c.AbortWithStatusJSON(http.StatusBadRequest, validation.ErrorResponse{
				Message: "validation failed",
				Errors:  verr.Fields,
			})
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_CREATE_FAILED",
			"failed to create book",
		)
		return
	}

	c.JSON(http.StatusCreated, toBookResponse(*book))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book and all of its reviews
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  DeleteBookResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	bookID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_ID",
			"invalid book id",
		)
		return
	}

	if err := h.svc.DeleteBook(c.Request.Context(), bookID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_DELETE_FAILED",
			"failed to delete book",
		)
		return
	}

	c.JSON(http.StatusOK, DeleteBookResponse{Message: "book deleted successfully"})
}

// AddReview godoc
// @Summary      Add a review to a book
// @Description  Attach a new review with rating and comment to an existing book
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id       path      int                       true  "Book ID"
// @Param        payload  body      CreateReviewRequest       true  "Review to add"
// @Success      201      {object}  ReviewResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      404      {object}  validation.ErrorResponse  "Book not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id}/reviews [post]
func (h *BookHandler) AddReview(c *gin.Context) {
	bookID, ok := parseIDParam(c)
	if !ok {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_ID",
			"invalid book id",
		)
		return
	}

	var req CreateReviewRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.svc.AddReview(c.Request.Context(), bookID, validation.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			c.AbortWithStatusJSON(http.StatusBadRequest, validation.ErrorResponse{
				Message: "validation failed",
				Errors:  verr.Fields,
			})
			return
		}

		if errors.Is(err, catalog.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"REVIEW_CREATE_FAILED",
			"failed to add review",
		)
		return
	}

	c.JSON(http.StatusCreated, toReviewResponse(*review))
}
