package domain

import "errors"

var (
	ErrUnauthorized = errors.New("resource does not belong to the user")
)
