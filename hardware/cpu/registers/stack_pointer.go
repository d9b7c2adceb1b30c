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

// StackPointer represents the SP register in the 6502 CPU. The stack is
// always in page one of memory and the pointer wraps silently in both
// directions.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.value)
}

// Value returns the 8 bit value of the stack pointer
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the memory address pointed to by the stack pointer
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.value)
}

// Load a value into the SP
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Decrement is called after a push to the stack. wraps from 0x00 to 0xff
func (sp *StackPointer) Decrement() {
	sp.value--
}

// Increment is called before a pull from the stack. wraps from 0xff to 0x00
func (sp *StackPointer) Increment() {
	sp.value++
}
