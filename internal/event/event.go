package event

import "errors"

// Canonical is the normalized event form: a single category key mapped to
// the event payload, e.g. {"order_placed": {"order_id": "abcd"}}. Maps
// passed through Normalize unchanged may carry more than one key; every
// event the normalizer builds itself has exactly one.
type Canonical map[string]any

// Tagged carries an explicit category and payload chosen by the caller.
// It bypasses all category derivation.
type Tagged struct {
	Category string
	Data     map[string]any
}

// Eventable lets a domain type define its own canonical form. Types that
// implement it win over every other normalization path.
type Eventable interface {
	ToEvent() Canonical
}

// ErrUnsupportedShape reports a value that matches no normalization path:
// a bare scalar, a nil, or a value of an unnamed type.
var ErrUnsupportedShape = errors.New("event: unsupported value shape")
