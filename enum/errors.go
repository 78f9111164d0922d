package enum

import "errors"

// ErrInvalidTraits indicates a traits table fails validation at construction time.
var ErrInvalidTraits = errors.New("enum: invalid traits")
