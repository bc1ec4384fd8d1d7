package analyses

import "errors"

var (
	ErrEmptyResume         = errors.New("resume text is required")
	ErrEmptyJobDescription = errors.New("job description is required")
)

const (
	ErrorCodeValidation  = "validation_error"
	ErrorCodeUnsupported = "unsupported_format"
	ErrorCodeExtraction  = "extraction_failed"
	ErrorCodeInternal    = "internal_error"
)
