package model

import "errors"

// Sentinel errors shared across layers. Usecases wrap these with context via
// fmt.Errorf("%w: ...") and handlers translate them to HTTP statuses.
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")
	ErrQueryExecutionFailed = errors.New("query execution failed")
)
