package fvp

import "errors"

// validation failure kinds; mutators check inputs against these contracts
// before touching any Model state.
var (
	ErrInvalidConfiguration = errors.New("fvp: invalid configuration")
	ErrShapeMismatch        = errors.New("fvp: shape mismatch")
	ErrUnconfigured         = errors.New("fvp: sigma coordinates not set")
	ErrDuplicateName        = errors.New("fvp: duplicate name")
)
