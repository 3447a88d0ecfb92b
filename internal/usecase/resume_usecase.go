package usecase

import "context"

// ParseResumeInput carries an uploaded resume document for parsing.
type ParseResumeInput struct {
	UserID   int64
	FileName string
	Document []byte
}

// ParseResumeOutput returns the provider's response and the caller's
// remaining credit balance.
type ParseResumeOutput struct {
	Parsed           []byte
	ContentType      string
	RemainingCredits int
}

// ResumeUsecase defines the resume parsing business operations.
type ResumeUsecase interface {
	// ParseResume forwards the document to the external parsing provider and
	// consumes one of the user's credits on success.
	ParseResume(ctx context.Context, input *ParseResumeInput) (*ParseResumeOutput, error)
}
