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

package clocks_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherbeeb/hardware/clocks"
	"github.com/jetsetilly/gopherbeeb/test"
)

func TestDuration(t *testing.T) {
	test.ExpectEquality(t, clocks.CyclesPerSecond, 2000000)
	test.ExpectEquality(t, clocks.Duration(2000000), time.Second)
	test.ExpectEquality(t, clocks.Duration(2), time.Microsecond)
	test.ExpectEquality(t, clocks.Duration(0), 0)
}
