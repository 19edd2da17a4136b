package uploads

import "errors"

// ErrInvalidInput indicates an upload without a usable file name.
var ErrInvalidInput = errors.New("invalid upload input")
