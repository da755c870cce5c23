package movies

import "errors"

// Error kinds surfaced by storage, lookup, and the command layer. Callers wrap
// them with context and test with errors.Is.
var (
	ErrAlreadyExists       = errors.New("movie already exists")
	ErrNotFound            = errors.New("movie not found")
	ErrMalformedData       = errors.New("malformed movie data")
	ErrLookupFailed        = errors.New("movie lookup failed")
	ErrAmbiguousChoice     = errors.New("invalid choice")
	ErrTemplateUnavailable = errors.New("gallery template unavailable")
)

// ErrorClassifier allows errors to declare their kind directly.
type ErrorClassifier interface {
	ErrorKind() string
}

// KindOf returns a short classification for err, used as a log field.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	var classifier ErrorClassifier
	if errors.As(err, &classifier) {
		return classifier.ErrorKind()
	}
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrMalformedData):
		return "malformed_data"
	case errors.Is(err, ErrLookupFailed):
		return "lookup_failed"
	case errors.Is(err, ErrAmbiguousChoice):
		return "ambiguous_choice"
	case errors.Is(err, ErrTemplateUnavailable):
		return "template_unavailable"
	default:
		return "unexpected"
	}
}
