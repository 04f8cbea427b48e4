package idgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates that an argument contains characters outside its alphabet
	ErrInvalidFormat = errors.New("idgen: invalid format")

	// ErrInvalidLength indicates that an argument is shorter or longer than allowed
	ErrInvalidLength = errors.New("idgen: invalid length")

	// ErrOutOfRange indicates that a numeric argument overflows its integer width
	ErrOutOfRange = errors.New("idgen: value out of range")

	// ErrInvalidVersion indicates that the UUID version is not supported
	ErrInvalidVersion = errors.New("idgen: invalid or unsupported UUID version")

	// ErrMissingRequiredArgument indicates that the chosen UUID version needs an argument that was not given
	ErrMissingRequiredArgument = errors.New("idgen: missing required argument")

	// ErrIncompatibleArguments indicates that an argument is meaningless for the chosen UUID version
	ErrIncompatibleArguments = errors.New("idgen: incompatible arguments")
)

// ArgError reports a rejected command argument together with the
// constraint it violated. Err is one of the sentinel errors above.
type ArgError struct {
	Arg    string
	Reason string
	Err    error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("invalid argument --%s: %s", e.Arg, e.Reason)
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

func argErrorf(arg string, err error, format string, args ...any) error {
	return &ArgError{Arg: arg, Reason: fmt.Sprintf(format, args...), Err: err}
}
