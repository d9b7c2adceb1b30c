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

// Package memory implements the address space of the BBC Micro as seen by the
// CPU. The relationship between the CPU and the rest of the machine is as
// follows:
//
//	                             ---- RAM
//	                            |
//	    CPU ---- cpu bus ---- *-|---- SysVIA ---- 1MHz bus
//	                            |
//	                             ---- UserVIA ---- 1MHz bus
//
// The asterisk indicates that addresses used by the CPU are first mapped to an
// area. The memorymap package contains more detail on this.
//
// The VIAs are clocked at 1MHz while the CPU is clocked at 2MHz. Every access
// to a VIA is preceded by a call to the IOTiming interface so that the CPU
// can stretch the current cycle to meet the slower bus. The CPU implements
// the IOTiming interface and must be plumbed into the memory with Plumb()
// before the first instruction.
//
// Addresses in the IO pages that are not connected to a VIA are backed by
// RAM. Accesses to them are noted in the log.
package memory
