package device

import "errors"

// ErrInvalidConfig wraps every Config validation failure.
var ErrInvalidConfig = errors.New("invalid device configuration")
