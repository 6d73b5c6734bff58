package numerics

import (
	"errors"
	"fmt"
)

// ErrArgumentOutOfRange is the sentinel matched by every *ArgumentOutOfRangeError.
var ErrArgumentOutOfRange = errors.New("numerics: argument out of range")

// ArgumentOutOfRangeError reports an invalid argument to a builder or a slice
// constructor. Builders panic with it: the condition is a programming error,
// not a data condition.
type ArgumentOutOfRangeError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *ArgumentOutOfRangeError) Error() string {
	return fmt.Sprintf("numerics: %s = %v: %s", e.Param, e.Value, e.Reason)
}

func (e *ArgumentOutOfRangeError) Unwrap() error {
	return ErrArgumentOutOfRange
}

func outOfRange[T Float](param string, value T, reason string) {
	panic(&ArgumentOutOfRangeError{Param: param, Value: float64(value), Reason: reason})
}

func checkLen(param string, n, need int) {
	if n < need {
		panic(&ArgumentOutOfRangeError{
			Param:  param,
			Value:  float64(n),
			Reason: fmt.Sprintf("need at least %d elements", need),
		})
	}
}
