package fixed

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the error class of all errors returned by this package.
var Error = errs.Class("fixed")

var (
	errInvalidDecimal = errors.New("invalid decimal")
	errTrailing       = errors.New("unexpected trailing characters")
	errRange          = errors.New("value out of range")
	errBinaryLength   = errors.New("invalid binary length")
	errUnsupported    = errors.New("unsupported type")
)
