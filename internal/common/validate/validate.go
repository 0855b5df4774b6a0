// Released under an MIT license. See LICENSE.

// Package validate checks the number of arguments passed to a command.
package validate

import (
	"errors"
	"fmt"
)

// ErrArguments is returned when a command is passed too few or too many arguments.
var ErrArguments = errors.New("wrong number of arguments")

// Fixed returns an error unless min <= n <= max.
func Fixed(n, min, max int) error {
	if n < min {
		return fmt.Errorf("%w: expected %s, passed %d", ErrArguments, Count(min, "argument", "s"), n)
	}

	if n > max {
		return fmt.Errorf("%w: expected at most %s, passed %d", ErrArguments, Count(max, "argument", "s"), n)
	}

	return nil
}

// Variadic returns an error unless n >= min.
func Variadic(n, min int) error {
	if n < min {
		return fmt.Errorf("%w: expected at least %s, passed %d", ErrArguments, Count(min, "argument", "s"), n)
	}

	return nil
}

// Count returns n and label, with the plural suffix p unless n is 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
