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

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case IO:
		return "IO"
	case SysVIA:
		return "SysVIA"
	case UserVIA:
		return "UserVIA"
	}

	return "undefined"
}

// The different memory areas in the BBC Micro
const (
	Undefined Area = iota
	RAM
	IO
	SysVIA
	UserVIA
)

// The origin and memory top for each area of memory. The VIA areas are
// inside the IO area and must be checked first.
const (
	OriginRAM     = uint16(0x0000)
	MemtopRAM     = uint16(0xffff)
	OriginIO      = uint16(0xfc00)
	MemtopIO      = uint16(0xfeff)
	OriginSysVIA  = uint16(0xfe40)
	MemtopSysVIA  = uint16(0xfe5f)
	OriginUserVIA = uint16(0xfe60)
	MemtopUserVIA = uint16(0xfe7f)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// Each VIA has sixteen registers which are mirrored throughout the 32 bytes
// of its area. MaskVIA keeps only the bits that select the register.
const MaskVIA = uint16(0x000f)

// MapAddress returns the area the address belongs to. For the VIA areas the
// address is translated to the register offset.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important

	if address >= OriginSysVIA && address <= MemtopSysVIA {
		return address & MaskVIA, SysVIA
	}

	if address >= OriginUserVIA && address <= MemtopUserVIA {
		return address & MaskVIA, UserVIA
	}

	if address >= OriginIO && address <= MemtopIO {
		return address, IO
	}

	return address, RAM
}

// IsArea returns true if the address is in the specificied area
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
