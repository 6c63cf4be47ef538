package toolspec

import "errors"

var ErrSpecAlreadyRegistered = errors.New("tool spec already registered")

// ErrInvalidOptions is returned when a spec's declared option schema rejects
// the caller-supplied option map.
var ErrInvalidOptions = errors.New("tool options failed schema validation")
