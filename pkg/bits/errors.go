package bits

import "errors"

// Error kinds returned by the package. Returned errors wrap one of these and
// carry the offending index, range or input; test them with errors.Is.
var (
	ErrInvalidIndex     = errors.New("invalid bit index")
	ErrInvalidRange     = errors.New("invalid bit range")
	ErrInvalidCharacter = errors.New("invalid binary digit")
	ErrOverflow         = errors.New("value overflows width")
)
