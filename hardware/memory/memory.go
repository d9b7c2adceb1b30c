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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware/faults"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherbeeb/logger"
)

// IOTiming is implemented by the CPU. The functions are called before every
// access to a VIA.
type IOTiming interface {
	SyncIO()
	AdjustForIORead()
	AdjustForIOWrite()
}

// VIA is the register interface of a VIA.
type VIA interface {
	Read(reg int) (uint8, error)
	Write(reg int, data uint8) error
}

// Memory is the flat 64K address space of the machine with the two VIAs
// mapped into page $FE.
type Memory struct {
	ram []uint8

	timing  IOTiming
	sysVIA  VIA
	userVIA VIA
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The IO components should be attached with Plumb().
func NewMemory() *Memory {
	return &Memory{
		ram: make([]uint8, int(memorymap.Memtop)+1),
	}
}

// Plumb attaches the IO timing and the VIAs to the memory. Any of the
// arguments can be nil. A VIA area without a VIA behaves like unmapped IO.
func (mem *Memory) Plumb(timing IOTiming, sysVIA VIA, userVIA VIA) {
	mem.timing = timing
	mem.sysVIA = sysVIA
	mem.userVIA = userVIA
}

// String returns a hex dump of the zero page.
func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 16; y++ {
		s.WriteString(fmt.Sprintf("%X- | ", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.ram[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

func (mem *Memory) via(area memorymap.Area) VIA {
	switch area {
	case memorymap.SysVIA:
		return mem.sysVIA
	case memorymap.UserVIA:
		return mem.userVIA
	}
	return nil
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	reg, area := memorymap.MapAddress(address)

	if v := mem.via(area); v != nil {
		if mem.timing != nil {
			mem.timing.SyncIO()
			mem.timing.AdjustForIORead()
		}
		data, err := v.Read(int(reg))
		if err != nil {
			return 0, curated.Errorf("memory: %v", err)
		}
		return data, nil
	}

	if area != memorymap.RAM {
		logger.Logf(logger.Allow, "memory", "read from unmapped IO address (%#04x)", address)
	}

	return mem.ram[address], nil
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	reg, area := memorymap.MapAddress(address)

	if v := mem.via(area); v != nil {
		if mem.timing != nil {
			mem.timing.SyncIO()
			mem.timing.AdjustForIOWrite()
		}
		err := v.Write(int(reg), data)
		if err != nil {
			return curated.Errorf("memory: %v", err)
		}
		return nil
	}

	if area != memorymap.RAM {
		logger.Logf(logger.Allow, "memory", "write to unmapped IO address (%#04x)", address)
	}

	mem.ram[address] = data
	return nil
}

// Peek returns the RAM value at the address. The VIAs are not accessed and no
// cycles are charged.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.ram[address]
}

// Poke sets the RAM value at the address. The VIAs are not accessed and no
// cycles are charged.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.ram[address] = data
}

// Load copies the data into RAM starting at the origin. The data must fit
// between the origin and the top of memory.
func (mem *Memory) Load(origin uint16, data []uint8) error {
	if len(data) == 0 {
		return curated.Errorf("memory: %v", faults.ContractViolation{
			Component: "memory",
			Detail:    "empty image",
			Value:     0,
		})
	}
	if int(origin)+len(data) > len(mem.ram) {
		return curated.Errorf("memory: %v", faults.ContractViolation{
			Component: "memory",
			Detail:    fmt.Sprintf("image does not fit at %#04x", origin),
			Value:     len(data),
		})
	}
	copy(mem.ram[origin:], data)
	return nil
}

// SetVector stores the address at the vector in little-endian order.
func (mem *Memory) SetVector(vector uint16, address uint16) {
	mem.ram[vector] = uint8(address)
	mem.ram[vector+1] = uint8(address >> 8)
}

// Vector returns the address stored at the vector.
func (mem *Memory) Vector(vector uint16) uint16 {
	return uint16(mem.ram[vector+1])<<8 | uint16(mem.ram[vector])
}
