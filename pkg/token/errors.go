package token

import "errors"

// ErrGenerate is returned when the system random source cannot be read.
var ErrGenerate = errors.New("token.generate_failed")
