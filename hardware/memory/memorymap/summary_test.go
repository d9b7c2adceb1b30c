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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherbeeb/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherbeeb/test"
)

const validMemMap = `0000 -> fbff	RAM
fc00 -> fe3f	IO
fe40 -> fe5f	SysVIA
fe60 -> fe7f	UserVIA
fe80 -> feff	IO
ff00 -> ffff	RAM
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestRanges(t *testing.T) {
	r := memorymap.Ranges()
	test.DemandEquality(t, len(r), 6)
	test.ExpectEquality(t, r[2], memorymap.Range{Origin: memorymap.OriginSysVIA, Memtop: memorymap.MemtopSysVIA, Area: memorymap.SysVIA})
	test.ExpectEquality(t, r[3], memorymap.Range{Origin: memorymap.OriginUserVIA, Memtop: memorymap.MemtopUserVIA, Area: memorymap.UserVIA})
	test.ExpectEquality(t, r[5].Memtop, memorymap.Memtop)
}

func TestMapAddress(t *testing.T) {
	reg, area := memorymap.MapAddress(0xfe44)
	test.ExpectEquality(t, area, memorymap.SysVIA)
	test.ExpectEquality(t, reg, 0x04)

	// registers are mirrored in the second half of the area
	reg, area = memorymap.MapAddress(0xfe7e)
	test.ExpectEquality(t, area, memorymap.UserVIA)
	test.ExpectEquality(t, reg, 0x0e)

	reg, area = memorymap.MapAddress(0xfe80)
	test.ExpectEquality(t, area, memorymap.IO)
	test.ExpectEquality(t, reg, 0xfe80)

	test.ExpectSuccess(t, memorymap.IsArea(0x8000, memorymap.RAM))
	test.ExpectFailure(t, memorymap.IsArea(0xfc00, memorymap.RAM))
}
