package markov

import (
	"errors"
	"fmt"
)

// ErrConfiguration is wrapped by every error caused by an invalid argument
// that is rejected before training or generation starts.
var ErrConfiguration = errors.New("invalid configuration")

var (
	// ErrInvalidOrder is returned when a model order below 1 is requested.
	ErrInvalidOrder = fmt.Errorf("%w: order must be at least 1", ErrConfiguration)
	// ErrInvalidLength is returned when a negative generation length is requested.
	ErrInvalidLength = fmt.Errorf("%w: length must not be negative", ErrConfiguration)
	// ErrInvalidSeed is returned when a caller supplied seed holds fewer tokens
	// than the model order.
	ErrInvalidSeed = fmt.Errorf("%w: seed is shorter than the model order", ErrConfiguration)
)

// ErrEmptyModel is returned by generation when the model holds no windows,
// which happens when the training corpus was not longer than the order.
var ErrEmptyModel = errors.New("no trainable windows")
