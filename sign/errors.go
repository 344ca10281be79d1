package sign

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when text is not a valid sign token.
var ErrInvalid = errors.New("invalid sign")

// invalidValue describes a structured value that could not be decoded.
func invalidValue(raw string) error {
	return fmt.Errorf(`%w %s: must be one of "+" or "-"`, ErrInvalid, raw)
}
