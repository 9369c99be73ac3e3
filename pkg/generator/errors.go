package generator

import "errors"

var ErrUnknownGenerator = errors.New("unknown generator")
