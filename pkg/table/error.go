package table

import "errors"

// ErrTableNotFound is returned when no table has the requested UUID
var ErrTableNotFound = errors.New("table not found")

// ErrNotTableOwner is returned when a caller tries to use a table they did not create
var ErrNotTableOwner = errors.New("table belongs to another caller")

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ValidateName ensures a table name can be stored
func ValidateName(name string) error {
	if l := len(name); l < 3 || l > 40 {
		return UserError("name must be 3-40 characters")
	}

	return nil
}
