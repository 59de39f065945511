package validation

import (
	"testing"
)

func TestReview_Valid(t *testing.T) {
	out, errs := Review(ReviewInput{Rating: 5, Comment: "  Great  "})

	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if out.Comment != "Great" {
		t.Errorf("expected trimmed comment, got %q", out.Comment)
	}
}

func TestReview_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   ReviewInput
		field   string
		message string
	}{
		{
			name:    "rating too low",
			input:   ReviewInput{Rating: 0, Comment: "fine"},
			field:   "rating",
			message: "Rating must be between 1 and 5",
		},
		{
			name:    "rating too high",
			input:   ReviewInput{Rating: 6, Comment: "fine"},
			field:   "rating",
			message: "Rating must be between 1 and 5",
		},
		{
			name:    "negative rating",
			input:   ReviewInput{Rating: -1, Comment: "fine"},
			field:   "rating",
			message: "Rating must be between 1 and 5",
		},
		{
			name:    "empty comment",
			input:   ReviewInput{Rating: 3, Comment: ""},
			field:   "comment",
			message: "Comment is required",
		},
		{
			name:    "whitespace-only comment",
			input:   ReviewInput{Rating: 3, Comment: "   "},
			field:   "comment",
			message: "Comment is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := Review(tt.input)

			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
			}
			if errs[0].Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, errs[0].Field)
			}
			if errs[0].Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, errs[0].Message)
			}
		})
	}
}

func TestReview_BothInvalid(t *testing.T) {
	_, errs := Review(ReviewInput{Rating: 0, Comment: ""})

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}
