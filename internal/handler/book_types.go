package handler

import (
	"github.com/snnyvrz/shelfcatalog/internal/model"
)

type CreateBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        int    `json:"year"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" form:"rating"`
	Comment string `json:"comment" form:"comment"`
}

type ReviewSummary struct {
	ID      uint   `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type Book struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Year        int             `json:"year"`
	Genre       string          `json:"genre"`
	Description string          `json:"description"`
	Reviews     []ReviewSummary `json:"reviews"`
	CreatedAt   model.Date      `json:"created_at" swaggertype:"string" example:"2025-11-24T10:00:00Z"`
	UpdatedAt   model.Date      `json:"updated_at" swaggertype:"string" example:"2025-11-24T10:00:00Z"`
}

type BookResponse struct {
	Data Book `json:"data"`
}

type ListBooksResponse struct {
	Data []Book `json:"data"`
}

type Review struct {
	ID        uint       `json:"id"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	BookID    uint       `json:"book_id"`
	CreatedAt model.Date `json:"created_at" swaggertype:"string" example:"2025-11-24T10:00:00Z"`
	UpdatedAt model.Date `json:"updated_at" swaggertype:"string" example:"2025-11-24T10:00:00Z"`
}

type ReviewResponse struct {
	Data Review `json:"data"`
}

type DeleteBookResponse struct {
	Message string `json:"message"`
}
