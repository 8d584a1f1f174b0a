package format

import "errors"

// Sentinel causes wrapped by types.Error when header/payload parsing fails.
var (
	ErrTooShort                = errors.New("format: buffer shorter than base header")
	ErrHeaderLengthTooSmall    = errors.New("format: headerLength must be at least 33")
	ErrRecordLengthZero        = errors.New("format: recordLength must be at least 1")
	ErrBufferShorterThanHeader = errors.New("format: buffer shorter than declared headerLength")
	ErrMissingTerminator       = errors.New("format: field descriptor array did not terminate with 0x0D")
	ErrFieldLengthMismatch     = errors.New("format: sum of field lengths + 1 does not equal recordLength")
)
