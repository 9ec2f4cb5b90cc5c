package expand

import "errors"

var (
	// ErrNilModel indicates a nil *model.Model.
	ErrNilModel = errors.New("expand: model is nil")

	// ErrNilDesign indicates a nil design table.
	ErrNilDesign = errors.New("expand: design is nil")

	// ErrUnknownFactor indicates a term variable with no matching design column.
	ErrUnknownFactor = errors.New("expand: factor not in design")
)
