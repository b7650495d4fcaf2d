package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrTokenize is matched by every *tokenize.TokenizeError.
	ErrTokenize = errors.New("unable to tokenize")
	// ErrAborted reports a run cancelled between two words.
	ErrAborted = errors.New("process was aborted")
	// ErrInternal marks an inconsistency between the engine's own tables.
	ErrInternal = errors.New("internal inconsistency")

	ErrUnknownSystem      = errors.New("unknown transcription system")
	ErrStressUnsupported  = errors.New("transcription system does not support stress marking")
	ErrInsufficientCorpus = errors.New("corpus needs at least 20 unique items")
	ErrNoMetrics          = errors.New("no metrics have been selected")
)
