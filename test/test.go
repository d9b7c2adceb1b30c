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

import "testing"

// ExpectSuccess reports a failure if v is not a success value.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	return checkSuccess(t, t.Errorf, v, tags)
}

// ExpectFailure reports a failure if v is a success value.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	return checkFailure(t, t.Errorf, v, tags)
}

// ExpectEquality reports a failure if v does not equal the expected value.
func ExpectEquality[T comparable](t *testing.T, v T, expected T, tags ...any) bool {
	t.Helper()
	return checkEquality(t, t.Errorf, v, expected, tags)
}

// ExpectInequality reports a failure if v equals the value.
func ExpectInequality[T comparable](t *testing.T, v T, notExpected T, tags ...any) bool {
	t.Helper()
	if v != notExpected {
		return true
	}
	t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", prefix(tags), v, v, notExpected)
	return false
}

// ExpectApproximate reports a failure if v is not within the tolerance of the
// expected value. The tolerance is a fraction of the expected value.
func ExpectApproximate[T Approximate](t *testing.T, v T, expected T, tolerance float64, tags ...any) bool {
	t.Helper()
	return checkApproximate(t, t.Errorf, v, expected, tolerance, tags)
}

// DemandSuccess stops the test if v is not a success value.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	checkSuccess(t, t.Fatalf, v, tags)
}

// DemandFailure stops the test if v is a success value.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	checkFailure(t, t.Fatalf, v, tags)
}

// DemandEquality stops the test if v does not equal the expected value.
func DemandEquality[T comparable](t *testing.T, v T, expected T, tags ...any) {
	t.Helper()
	checkEquality(t, t.Fatalf, v, expected, tags)
}
