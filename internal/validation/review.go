package validation

import (
	"strings"
)

const (
	MinRating = 1
	MaxRating = 5
)

type ReviewInput struct {
	Rating  int
	Comment string
}

// Review checks a review payload the same way Book checks a book payload:
// trimmed, constraint-checked, no storage access.
func Review(in ReviewInput) (ReviewInput, []FieldError) {
	var errs []FieldError

	in.Comment = strings.TrimSpace(in.Comment)

	if in.Rating < MinRating || in.Rating > MaxRating {
		errs = append(errs, FieldError{
			Field:   "rating",
			Rule:    "range",
			Message: "Rating must be between 1 and 5",
		})
	}

	if in.Comment == "" {
		errs = append(errs, FieldError{
			Field:   "comment",
			Rule:    "required",
			Message: "Comment is required",
		})
	}

	return in, errs
}
