package tempocnn

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when an option is invalid or unsupported.
	ErrConfiguration = errors.New("tempocnn: invalid configuration")

	// ErrInvalidInput is returned when predictions violate the input contract:
	// no segments, wrong distribution length, or negative/non-finite values.
	ErrInvalidInput = errors.New("tempocnn: invalid input")
)

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

func inputError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
