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

package instructions

import "fmt"

// AddressingMode is the method by which an instruction finds its operand.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Immediate
	Relative
	Absolute
	ZeroPage
	Indirect
	IndexedIndirect  // (zp,X)
	IndirectIndexed  // (zp),Y
	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y
	ZeroPageIndexedX // zp,X
	ZeroPageIndexedY // zp,Y
)

var addressingModeNames = [...]string{
	Implied:          "Implied",
	Immediate:        "Immediate",
	Relative:         "Relative",
	Absolute:         "Absolute",
	ZeroPage:         "ZeroPage",
	Indirect:         "Indirect",
	IndexedIndirect:  "IndexedIndirect",
	IndirectIndexed:  "IndirectIndexed",
	AbsoluteIndexedX: "AbsoluteIndexedX",
	AbsoluteIndexedY: "AbsoluteIndexedY",
	ZeroPageIndexedX: "ZeroPageIndexedX",
	ZeroPageIndexedY: "ZeroPageIndexedY",
}

func (m AddressingMode) String() string {
	if m < 0 || int(m) >= len(addressingModeNames) {
		return "unknown addressing mode"
	}
	return addressingModeNames[m]
}

// EffectCategory is the kind of side effect an instruction has.
type EffectCategory int

const (
	Read EffectCategory = iota
	Write
	RMW

	// branches and JMP. branches have the Relative addressing mode
	Flow

	// JSR and RTS
	Subroutine

	// BRK and RTI
	Interrupt
)

var effectNames = [...]string{
	Read:       "Read",
	Write:      "Write",
	RMW:        "RMW",
	Flow:       "Flow",
	Subroutine: "Subroutine",
	Interrupt:  "Interrupt",
}

func (e EffectCategory) String() string {
	if e < 0 || int(e) >= len(effectNames) {
		return "unknown effect"
	}
	return effectNames[e]
}

// Definition is one entry in the table of documented 6502 opcodes.
//
// CyclesToRead and CyclesToWrite are the number of cycles that elapse, from
// the start of the instruction, before the memory read and the memory write
// take place. Peripherals must be advanced by these amounts before the access
// is made. For read-modify-write instructions, CyclesToWrite is counted from
// the read.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	CyclesToRead   int
	CyclesToWrite  int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch is true for the conditional branch instructions.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsMemoryWrite returns true if the instruction writes to memory through its
// addressing mode. Stack pushes are not included.
func (defn Definition) IsMemoryWrite() bool {
	return defn.Effect == Write && defn.AddressingMode != Implied
}
