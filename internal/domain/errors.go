package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
	cause   error
}

// Error returns the error message.
func (e domainErr) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the underlying cause, if any.
func (e domainErr) Unwrap() error {
	return e.cause
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// DataUnavailableErr is returned when the corpus or its embeddings could not be loaded.
type DataUnavailableErr struct {
	domainErr
}

// NewDataUnavailableErr creates a new DataUnavailableErr wrapping the load failure.
func NewDataUnavailableErr(message string, cause error) *DataUnavailableErr {
	return &DataUnavailableErr{
		domainErr: domainErr{message: message, cause: cause},
	}
}

// RankerUnavailableErr is returned when the semantic encoder cannot serve a query.
type RankerUnavailableErr struct {
	domainErr
}

// NewRankerUnavailableErr creates a new RankerUnavailableErr.
func NewRankerUnavailableErr(reason string, cause error) *RankerUnavailableErr {
	return &RankerUnavailableErr{
		domainErr: domainErr{message: "ranker unavailable: " + reason, cause: cause},
	}
}

// GenerationUpstreamErr represents a failed call to the comment generation API.
// Covers transport, auth, empty batches and payloads that fail schema validation.
type GenerationUpstreamErr struct {
	domainErr
}

// NewGenerationUpstreamErr creates a new GenerationUpstreamErr.
func NewGenerationUpstreamErr(message string, cause error) *GenerationUpstreamErr {
	return &GenerationUpstreamErr{
		domainErr: domainErr{message: message, cause: cause},
	}
}

// PersistenceErr represents a failure reading or writing the usage counter.
type PersistenceErr struct {
	domainErr
}

// NewPersistenceErr creates a new PersistenceErr.
func NewPersistenceErr(message string, cause error) *PersistenceErr {
	return &PersistenceErr{
		domainErr: domainErr{message: message, cause: cause},
	}
}

// QuotaExceededErr is returned when the daily generation limit is enforced and reached.
type QuotaExceededErr struct {
	domainErr
}

// NewQuotaExceededErr creates a new QuotaExceededErr.
func NewQuotaExceededErr(message string) *QuotaExceededErr {
	return &QuotaExceededErr{
		domainErr: domainErr{message: message},
	}
}
