package afd

import "errors"

var ErrInvalidEncoding = errors.New("afd file content is not valid text")
