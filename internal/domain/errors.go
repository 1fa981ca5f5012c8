package domain

import "errors"

// Client-visible error kinds. Callers wrap these with descriptive payloads
// (offending value, which stage emptied the result set) via fmt.Errorf("%w").
var (
	ErrUnknownCity      = errors.New("unknown city")
	ErrUnknownSegment   = errors.New("unknown customer segment")
	ErrNoMatches        = errors.New("no matching hotels")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidQuery     = errors.New("invalid query")
)
