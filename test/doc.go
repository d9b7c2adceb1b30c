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


// Package test removes the boilerplate from the package tests of gopherbeeb.
//
// Every helper comes in two flavours. The Expect functions report a failure
// and allow the test to continue. The Demand functions stop the test. Use a
// Demand function when later checks depend on the value being correct, for
// example when the error from a constructor must be nil before the returned
// value is used.
//
// Success and failure are decided by the type of the value:
//
//	bool   success is true
//	error  success is nil
//	nil    always success
//
// Any other type stops the test. Treating nil as success follows from the
// convention that a nil error means no error.
//
// All functions accept an optional list of tags that prefix the failure
// message. Tags identify the entry of a table driven test that failed:
//
//	for i, c := range cases {
//		test.ExpectEquality(t, mc.A.Value(), c.a, i, c.name)
//	}
package test
