package validation

import (
	"strings"
	"time"
)

// MinYear is the oldest publication year a book may carry. The upper bound
// is the current calendar year, evaluated at validation time.
const MinYear = 1000

type BookInput struct {
	Title       string
	Author      string
	Year        int
	Genre       string
	Description string
}

// Book checks a book payload against the catalog's field constraints. It
// returns the input with surrounding whitespace trimmed from text fields,
// plus one FieldError per violated constraint. It never touches storage.
func Book(in BookInput) (BookInput, []FieldError) {
	var errs []FieldError

	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Genre = strings.TrimSpace(in.Genre)
	in.Description = strings.TrimSpace(in.Description)

	if in.Title == "" {
		errs = append(errs, FieldError{
			Field:   "title",
			Rule:    "required",
			Message: "Title is required",
		})
	}

	if in.Author == "" {
		errs = append(errs, FieldError{
			Field:   "author",
			Rule:    "required",
			Message: "Author is required",
		})
	}

	if in.Year < MinYear || in.Year > time.Now().Year() {
		errs = append(errs, FieldError{
			Field:   "year",
			Rule:    "range",
			Message: "Valid year is required",
		})
	}

	if in.Genre == "" {
		errs = append(errs, FieldError{
			Field:   "genre",
			Rule:    "required",
			Message: "Genre is required",
		})
	}

	if in.Description == "" {
		errs = append(errs, FieldError{
			Field:   "description",
			Rule:    "required",
			Message: "Description is required",
		})
	}

	return in, errs
}
