package note

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidContent is returned when the content is empty after normalization
	ErrInvalidContent = errors.New("content must not be blank")
	// ErrNotFound matches every *NotFoundError through errors.Is
	ErrNotFound = errors.New("note not found")
)

// NotFoundError reports the id that was not found
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("note %s not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Kind classifies the errors returned by the Service
type Kind int

const (
	KindNone Kind = iota
	KindInvalidContent
	KindNotFound
	KindTimeout
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidContent:
		return "invalid_content"
	case KindNotFound:
		return "not_found"
	case KindTimeout:
		return "timeout"
	default:
		return "unavailable"
	}
}

// KindOf classifies err. Anything that is not a validation or lookup failure came from the storage and is reported
// as KindTimeout or KindUnavailable.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidContent):
		return KindInvalidContent
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	default:
		return KindUnavailable
	}
}
