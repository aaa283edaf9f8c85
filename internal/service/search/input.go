package search

import "github.com/grouponesailor/group6-tips-server/internal/domain"

// SearchInput holds the parameters of a search.
type SearchInput struct {
	Query  string
	Limit  int // 0 = configured default
	Offset int
}

// Validate checks all fields and collects all errors.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError
	if domain.NormalizeQuery(i.Query) == "" {
		errs = append(errs, domain.FieldError{Field: "q", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
