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

// Package memorymap facilitates the translation of addresses to the area of
// memory they belong to.
//
// The BBC Micro as emulated here has a flat 64K address space of RAM. Pages
// $FC to $FE are the IO pages. Only the two VIA windows in page $FE are
// connected, other IO addresses are backed by RAM. The MapAddress() function
// should be used to find the area and the register of an address from the
// viewpoint of the CPU.
//
//	reg, area := memorymap.MapAddress(address)
//
// For addresses in the VIA areas the returned value is the register offset.
// For all other areas the address is returned unchanged.
package memorymap
