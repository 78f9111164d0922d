package setting

import "errors"

var (
	// ErrInvalidToken indicates a non-empty token does not name any constant
	// of the target enumeration.
	ErrInvalidToken = errors.New("setting: invalid enumeration token")
	// ErrTypeMismatch indicates a generic value has a type the setting cannot take.
	ErrTypeMismatch = errors.New("setting: type mismatch")
	// ErrUnknownBits indicates a bitmask carries bits with no known name.
	ErrUnknownBits = errors.New("setting: unknown bits")
)
