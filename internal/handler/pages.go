package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/shelfcatalog/internal/catalog"
	"github.com/snnyvrz/shelfcatalog/internal/validation"
)

// PageHandler serves the server-rendered HTML pages: the book list, the book
// detail page with its review form, and the form target that attaches a
// review and redirects back to the detail page.
type PageHandler struct {
	svc *catalog.Service
}

func NewPageHandler(svc *catalog.Service) *PageHandler {
	return &PageHandler{svc: svc}
}

func (h *PageHandler) RegisterRoutes(e *gin.Engine) {
	e.GET("/", h.Home)
	e.GET("/books", h.BooksPage)
	e.GET("/books/:id", h.BookDetailPage)
	e.POST("/books/:id/review", h.SubmitReview)
}

func (h *PageHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/books")
}

func (h *PageHandler) BooksPage(c *gin.Context) {
	books, err := h.svc.ListBooks(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books")
		return
	}

	c.HTML(http.StatusOK, "books.html", gin.H{
		"Books": books,
	})
}

func (h *PageHandler) BookDetailPage(c *gin.Context) {
	bookID, ok := parseIDParam(c)
	if !ok {
		c.String(http.StatusNotFound, "Book not found")
		return
	}

	book, err := h.svc.GetBook(c.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.String(http.StatusNotFound, "Book not found")
			return
		}

		c.String(http.StatusInternalServerError, "Error loading book")
		return
	}

	c.HTML(http.StatusOK, "book-detail.html", gin.H{
		"Book":            book,
		"ValidationError": c.Query("error") == "validation",
	})
}

// SubmitReview handles the review form on the detail page. Invalid input
// sends the visitor back to the form with an error flag instead of a JSON
// error body.
func (h *PageHandler) SubmitReview(c *gin.Context) {
	bookID, ok := parseIDParam(c)
	if !ok {
		c.String(http.StatusNotFound, "Book not found")
		return
	}

	detailURL := fmt.Sprintf("/books/%d", bookID)

	var req CreateReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, detailURL+"?error=validation")
		return
	}

	_, err := h.svc.AddReview(c.Request.Context(), bookID, validation.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			c.Redirect(http.StatusFound, detailURL+"?error=validation")
			return
		}

		if errors.Is(err, catalog.ErrNotFound) {
			c.String(http.StatusNotFound, "Book not found")
			return
		}

		c.String(http.StatusInternalServerError, "Error adding review")
		return
	}

	c.Redirect(http.StatusFound, detailURL)
}
