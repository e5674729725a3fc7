package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrForbiddenAccess will throw if the actor is neither the owner nor a moderator
	ErrForbiddenAccess = errors.New("you are not allowed to perform this action")
	// ErrInvalidParameter will throw if a parameter references the wrong target,
	// e.g. a reply that does not belong to the stated discussion
	ErrInvalidParameter = errors.New("given parameter references an invalid target")
	// ErrDuplicatedEntry will throw if the same target was already reported or voted
	ErrDuplicatedEntry = errors.New("entry already exists")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
)
