package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse         = errors.New("parse error")
	ErrNotMapping    = fmt.Errorf("%w: document is not a mapping", ErrParse)
	ErrUnknownAnchor = fmt.Errorf("%w: unknown anchor", ErrParse)
	ErrFormat        = fmt.Errorf("%w: unsupported input format", ErrParse)
)
