package readinglog

import (
	"github.com/readify-app/readify-backend/internal/domain"
)

// SubmitLogInput holds parameters for the log submission operation.
type SubmitLogInput struct {
	Title           string
	DurationMinutes int
	Summary         string
}

// Validate validates the submission input.
func (i SubmitLogInput) Validate() error {
	return domain.ValidateSubmission(i.Title, i.DurationMinutes, i.Summary)
}

// FinalizeInput holds parameters for the administrator finalization.
type FinalizeInput struct {
	Decision domain.FinalizeDecision
	Feedback *string
}

// Validate validates the finalization input.
func (i FinalizeInput) Validate() error {
	var errs []domain.FieldError

	if !i.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be APPROVED or REJECTED"})
	}
	if i.Feedback != nil && len(*i.Feedback) > 2000 {
		errs = append(errs, domain.FieldError{Field: "feedback", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
