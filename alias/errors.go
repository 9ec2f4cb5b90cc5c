package alias

import "errors"

// ErrNilMatrix indicates a nil model matrix.
var ErrNilMatrix = errors.New("alias: model matrix is nil")
