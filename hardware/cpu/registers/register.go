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

// Register is an 8 bit register of the 6502. Used for the accumulator and
// the two index registers. Operations that affect the carry and overflow
// flags return the new state of those flags. The zero and negative flags are
// left to the caller because not every use of a register affects them.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{label: label, value: val}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the name of the register (A, X or Y).
func (r Register) Label() string {
	return r.label
}

// Value returns the contents of the register.
func (r Register) Value() uint8 {
	return r.value
}

// IsZero is true if the register contains zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsNegative is true if bit 7 is set.
func (r Register) IsNegative() bool {
	return r.value&0x80 != 0
}

// Load a value into the register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add val and the carry to the register in binary mode.
func (r *Register) Add(val uint8, carry bool) (bool, bool) {
	a := r.value
	sum := int(a) + int(val)
	if carry {
		sum++
	}
	r.value = uint8(sum)

	// signed overflow happens when both operands have the same sign and the
	// result has a different sign
	overflow := (a^val)&0x80 == 0 && (a^r.value)&0x80 != 0

	return sum > 0xff, overflow
}

// Subtract val from the register in binary mode. The carry flag is an
// inverted borrow: set means no borrow.
func (r *Register) Subtract(val uint8, carry bool) (bool, bool) {
	a := r.value
	diff := int(a) - int(val)
	if !carry {
		diff--
	}
	r.value = uint8(diff)

	// signed overflow happens when the operands have different signs and the
	// result has the sign of the subtrahend
	overflow := (a^val)&0x80 != 0 && (a^r.value)&0x80 != 0

	return diff >= 0, overflow
}

// AND the register with val.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// EOR the register with val.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// ORA the register with val.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// ROL rotates the register left through the carry. Returns bit 7 as it was
// before the rotation.
func (r *Register) ROL(carry bool) bool {
	out := r.value&0x80 != 0
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return out
}

// ROR rotates the register right through the carry. Returns bit 0 as it was
// before the rotation.
func (r *Register) ROR(carry bool) bool {
	out := r.value&0x01 != 0
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return out
}

// ASL is a left rotation with a clear carry.
func (r *Register) ASL() bool {
	return r.ROL(false)
}

// LSR is a right rotation with a clear carry.
func (r *Register) LSR() bool {
	return r.ROR(false)
}
