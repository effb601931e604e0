package person

import "errors"

var (
	ErrPersonNotFound = errors.New("person not found")
	ErrPersonInactive = errors.New("person is not active")
	ErrRoleNotAllowed = errors.New("role is not allowed to check in")
)
