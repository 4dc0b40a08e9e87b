package identity

import "errors"

var (
	ErrMissingActor = errors.New("acting user identity is missing")
	ErrInvalidRole  = errors.New("invalid actor role")
)
