package apperr

import "errors"

// Error kinds shared by repositories and services. Wrap with
// fmt.Errorf("%w: ...") for context; controllers match with errors.Is and map
// onto HTTP statuses (validation 400, not found 404, the two conflicts 409).
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid transition")
)
