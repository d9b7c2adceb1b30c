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


package registers

import "fmt"

// ProgramCounter is the 16 bit PC register.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for
// ProgramCounter.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns "PC".
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.value)
}

// Address returns the contents of the PC.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Page returns the PC with the low byte cleared. Branches compare pages to
// decide whether a page has been crossed.
func (pc ProgramCounter) Page() uint16 {
	return pc.value &^ 0x00ff
}

// Load sets the PC.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Add an offset to the PC, wrapping at 0xffff. Negative offsets are given in
// two's complement form.
func (pc *ProgramCounter) Add(val uint16) {
	pc.value += val
}
