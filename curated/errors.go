// This file is part of Gopherbeeb.
//
// Gopherbeeb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherbeeb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherbeeb.  If not, see <https://www.gnu.org/licenses/>.


package curated

import (
	"errors"
	"fmt"
	"strings"
)

// the separator between the parts of an error message
const separator = ": "

type curatedError struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is a fmt package format
// string.
func Errorf(pattern string, values ...any) error {
	return curatedError{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the error interface. Adjacent duplicate parts of the
// message are removed. Letter case and white space are not changed.
func (e curatedError) Error() string {
	parts := strings.Split(fmt.Sprintf(e.pattern, e.values...), separator)

	n := 1
	for _, p := range parts[1:] {
		if p != parts[n-1] {
			parts[n] = p
			n++
		}
	}

	return strings.Join(parts[:n], separator)
}

// Unwrap returns the error values used to create the curated error.
func (e curatedError) Unwrap() []error {
	var w []error
	for _, v := range e.values {
		if err, ok := v.(error); ok {
			w = append(w, err)
		}
	}
	return w
}

// IsAny returns true if the error was created by Errorf().
func IsAny(err error) bool {
	_, ok := err.(curatedError)
	return ok
}

// As is shorthand for errors.As() that returns the typed error.
func As[T error](err error) (T, bool) {
	var t T
	ok := errors.As(err, &t)
	return t, ok
}
