package ficha

import "errors"

var (
	ErrNotFound = errors.New("ficha not found")
	ErrInvalid  = errors.New("invalid ficha")

	// ErrDuplicateName is advisory: callers that allow duplicates simply
	// pass allowDuplicates=true and never see it.
	ErrDuplicateName = errors.New("ficha with that name already exists")
)
