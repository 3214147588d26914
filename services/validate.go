package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Fabken42/study-quiz/models"
)

// TermInput is one client-submitted term row. A zero ID marks a term to be
// created; a non-zero ID refers to an existing term in the list.
type TermInput struct {
	ID         uint   `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Reminder   string `json:"reminder"`
}

// NormalizeText trims leading/trailing whitespace and collapses internal
// runs of whitespace to a single space.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// validateTermInput normalizes in place and checks field bounds. It returns
// on the first violation; callers must treat any failure as rejecting the
// whole batch.
func validateTermInput(in *TermInput) error {
	in.Term = NormalizeText(in.Term)
	in.Definition = NormalizeText(in.Definition)
	in.Reminder = NormalizeText(in.Reminder)

	if !lengthBetween(in.Term, 1, 100) {
		return &ValidationError{Field: "term", Reason: "must be between 1 and 100 characters"}
	}
	if !lengthBetween(in.Definition, 1, 100) {
		return &ValidationError{Field: "definition", Reason: "must be between 1 and 100 characters"}
	}
	if !lengthBetween(in.Reminder, 0, 100) {
		return &ValidationError{Field: "reminder", Reason: "must be at most 100 characters"}
	}
	return nil
}

// validateListMeta normalizes and checks a list's name and description.
func validateListMeta(name, description string) (string, string, error) {
	name = NormalizeText(name)
	description = NormalizeText(description)

	if !lengthBetween(name, 1, 50) {
		return "", "", &ValidationError{Field: "listName", Reason: "must be between 1 and 50 characters"}
	}
	if !lengthBetween(description, 0, 250) {
		return "", "", &ValidationError{Field: "description", Reason: "must be at most 250 characters"}
	}
	return name, description, nil
}

// validateTermBatch enforces the per-list cap and validates every entry,
// normalizing them in place. Any single failure rejects the batch.
func validateTermBatch(terms []TermInput) error {
	if len(terms) > models.MaxTermsPerList {
		return &ValidationError{
			Field:  "terms",
			Reason: fmt.Sprintf("a list cannot have more than %d terms", models.MaxTermsPerList),
		}
	}
	for i := range terms {
		if err := validateTermInput(&terms[i]); err != nil {
			return err
		}
	}
	return nil
}
