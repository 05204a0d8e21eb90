package useragent

import "errors"

// Parse errors. The UserAgent returned alongside them is still usable.
var (
	ErrEmptyUserAgent     = errors.New("useragent: empty header")
	ErrMalformedUserAgent = errors.New("useragent: no recognizable platform or browser")
	ErrUnknownDevice      = errors.New("useragent: platform not classified")
)

// ErrInvalidScreenRule reports a screen table entry that cannot be matched.
var ErrInvalidScreenRule = errors.New("useragent: invalid screen rule")
