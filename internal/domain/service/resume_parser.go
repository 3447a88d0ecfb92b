package service

import "context"

// ParsedResume is the parsing provider's response, passed through verbatim.
type ParsedResume struct {
	// Raw is the provider's JSON payload. The service does not interpret it.
	Raw []byte
}

// ResumeParser sends a resume document to the external parsing provider.
type ResumeParser interface {
	// Parse submits the document bytes and returns the provider's response.
	Parse(ctx context.Context, document []byte, contentType string) (*ParsedResume, error)
}
