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


package memorymap

import (
	"fmt"
	"strings"
)

// Range is a contiguous run of addresses that map to the same area.
type Range struct {
	Origin uint16
	Memtop uint16
	Area   Area
}

func (r Range) String() string {
	return fmt.Sprintf("%04x -> %04x\t%s", r.Origin, r.Memtop, r.Area)
}

// Ranges returns the memory map as a list of ranges in address order.
func Ranges() []Range {
	_, area := MapAddress(0)
	ranges := []Range{{Origin: 0, Area: area}}

	// int because the loop must finish after Memtop
	for a := 1; a <= int(Memtop); a++ {
		_, area = MapAddress(uint16(a))
		if last := &ranges[len(ranges)-1]; area != last.Area {
			last.Memtop = uint16(a - 1)
			ranges = append(ranges, Range{Origin: uint16(a), Area: area})
		}
	}
	ranges[len(ranges)-1].Memtop = Memtop

	return ranges
}

// Summary returns the memory map as a multiline string. One line per Range.
func Summary() string {
	var s strings.Builder
	for _, r := range Ranges() {
		s.WriteString(r.String())
		s.WriteRune('\n')
	}
	return s.String()
}
