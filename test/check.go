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


package test

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// report is either testing.T.Errorf or testing.T.Fatalf.
type report func(format string, args ...any)

// prefix formats the tags for the start of a failure message.
func prefix(tags []any) string {
	if len(tags) == 0 {
		return ""
	}
	var s strings.Builder
	s.WriteRune('[')
	for i, t := range tags {
		if i > 0 {
			s.WriteRune(' ')
		}
		fmt.Fprint(&s, t)
	}
	s.WriteString("] ")
	return s.String()
}

// success decides whether v is a success value. types that cannot be
// decided stop the test.
func success(t *testing.T, v any, tags []any) bool {
	t.Helper()

	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return v
	case error:
		return v == nil
	}

	t.Fatalf("%scannot decide success for type %T", prefix(tags), v)
	return false
}

func checkSuccess(t *testing.T, rep report, v any, tags []any) bool {
	t.Helper()
	if success(t, v, tags) {
		return true
	}
	if err, ok := v.(error); ok {
		rep("%sexpected success (error: %v)", prefix(tags), err)
	} else {
		rep("%sexpected success (%T)", prefix(tags), v)
	}
	return false
}

func checkFailure(t *testing.T, rep report, v any, tags []any) bool {
	t.Helper()
	if !success(t, v, tags) {
		return true
	}
	rep("%sexpected failure (%T)", prefix(tags), v)
	return false
}

func checkEquality[T comparable](t *testing.T, rep report, v T, expected T, tags []any) bool {
	t.Helper()
	if v == expected {
		return true
	}
	rep("%sequality test of type %T failed: '%v' does not equal '%v'", prefix(tags), v, v, expected)
	return false
}

// Approximate is the set of types accepted by ExpectApproximate.
type Approximate interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

func checkApproximate[T Approximate](t *testing.T, rep report, v T, expected T, tolerance float64, tags []any) bool {
	t.Helper()
	diff := math.Abs(float64(v) - float64(expected))
	if diff <= math.Abs(float64(expected))*tolerance {
		return true
	}
	rep("%sapproximation test of type %T failed: '%v' is not within %.2f of '%v'", prefix(tags), v, v, tolerance, expected)
	return false
}
