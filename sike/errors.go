package sike

import (
	"github.com/pkg/errors"
)

// Errors returned by this package. Returned errors wrap one of these
// values with context; use errors.Is() (or errors.Cause()) to test for
// them.
var (
	ErrInvalidKey        = errors.New("sike: invalid key")
	ErrInvalidCiphertext = errors.New("sike: invalid ciphertext")
	ErrIncompatibleKeys  = errors.New("sike: incompatible keys")
	ErrInvalidArgument   = errors.New("sike: invalid argument")
)

func errorf(sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, format, args...)
}
