package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/shelfcatalog/internal/model"
	"github.com/snnyvrz/shelfcatalog/internal/validation"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func toReviewSummaries(reviews []model.Review) []ReviewSummary {
	summaries := make([]ReviewSummary, 0, len(reviews))
	for _, r := range reviews {
		summaries = append(summaries, ReviewSummary{
			ID:      r.ID,
			Rating:  r.Rating,
			Comment: r.Comment,
		})
	}
	return summaries
}

func toBookResponse(b model.Book) BookResponse {
	data := Book{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Year:        b.Year,
		Genre:       b.Genre,
		Description: b.Description,
		Reviews:     toReviewSummaries(b.Reviews),
		CreatedAt:   model.Date{Time: b.CreatedAt},
		UpdatedAt:   model.Date{Time: b.UpdatedAt},
	}

	return BookResponse{
		Data: data,
	}
}

func toReviewResponse(r model.Review) ReviewResponse {
	return ReviewResponse{
		Data: Review{
			ID:        r.ID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			BookID:    r.BookID,
			CreatedAt: model.Date{Time: r.CreatedAt},
			UpdatedAt: model.Date{Time: r.UpdatedAt},
		},
	}
}
