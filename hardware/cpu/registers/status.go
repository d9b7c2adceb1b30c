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

import (
	"strings"
	"unicode"
)

// Bit masks for the flags in the status register when in uint8 form.
const (
	FlagCarry            uint8 = 0x01
	FlagZero             uint8 = 0x02
	FlagInterruptDisable uint8 = 0x04
	FlagDecimalMode      uint8 = 0x08
	FlagBreak            uint8 = 0x10
	FlagUnused           uint8 = 0x20
	FlagOverflow         uint8 = 0x40
	FlagSign             uint8 = 0x80
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns one letter per flag. Upper case if the flag is set. The
// unused bit is shown as a dash.
func (sr StatusRegister) String() string {
	const letters = "svbdizc"

	var s strings.Builder
	for i, b := range sr.bits() {
		if i == 2 {
			s.WriteRune('-')
		}
		c := rune(letters[i])
		if *b.flag {
			c = unicode.ToUpper(c)
		}
		s.WriteRune(c)
	}
	return s.String()
}

// Reset clears every flag.
func (sr *StatusRegister) Reset() {
	*sr = StatusRegister{}
}

// the flags in the order they appear in the uint8 form, most significant
// bit first. bit 5 is not included
func (sr *StatusRegister) bits() [7]struct {
	flag *bool
	mask uint8
} {
	return [7]struct {
		flag *bool
		mask uint8
	}{
		{&sr.Sign, FlagSign},
		{&sr.Overflow, FlagOverflow},
		{&sr.Break, FlagBreak},
		{&sr.DecimalMode, FlagDecimalMode},
		{&sr.InterruptDisable, FlagInterruptDisable},
		{&sr.Zero, FlagZero},
		{&sr.Carry, FlagCarry},
	}
}

// Value returns the uint8 form of the status register, as pushed onto the
// stack. Bit 5 is always set.
func (sr StatusRegister) Value() uint8 {
	v := FlagUnused
	for _, b := range sr.bits() {
		if *b.flag {
			v |= b.mask
		}
	}
	return v
}

// Load sets the flags from the uint8 form of the status register.
func (sr *StatusRegister) Load(v uint8) {
	for _, b := range sr.bits() {
		*b.flag = v&b.mask != 0
	}
}

// SetZeroNegative sets the Zero and Sign flags from a result. Other flags are
// unchanged.
func (sr *StatusRegister) SetZeroNegative(v uint8) {
	sr.Zero = v == 0
	sr.Sign = v&0x80 == 0x80
}

// SetCarryZeroNegative sets the Carry, Zero and Sign flags. Other flags are
// unchanged.
func (sr *StatusRegister) SetCarryZeroNegative(c bool, z bool, n bool) {
	sr.Carry = c
	sr.Zero = z
	sr.Sign = n
}

// SetExplicit sets the flags selected by mask to the values given. Flags not
// in the mask are unchanged. The unused bit is ignored.
func (sr *StatusRegister) SetExplicit(mask uint8, c, z, i, d, b, v, n bool) {
	value := [7]bool{n, v, b, d, i, z, c}
	for j, f := range sr.bits() {
		if mask&f.mask != 0 {
			*f.flag = value[j]
		}
	}
}
