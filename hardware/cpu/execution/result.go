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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherbeeb/hardware/cpu/instructions"
)

// Result records the outcome of a single instruction.
type Result struct {
	// address of the opcode
	Address uint16

	// the definition of the instruction. will be nil if the opcode has not
	// been decoded or if the opcode is unimplemented
	Defn *instructions.Definition

	// the number of bytes read during decoding
	ByteCount int

	// the operand of the instruction. for two byte instructions only the low
	// byte is meaningful
	InstructionData uint16

	// the number of cycles charged for the instruction. this includes the
	// page fault and branch penalties and any IO cycles
	Cycles int

	// the number of cycles added by memory-mapped IO
	IOCycles int

	// the number of cycles charged for servicing an interrupt after the
	// instruction completed. zero if no interrupt was serviced
	InterruptCycles int

	// whether an extra cycle was required because the indexed address crossed
	// a page boundary
	PageFault bool

	// whether the branch was taken
	BranchSuccess bool

	// a quirk of the CPU was triggered
	CPUBug Bug

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Cost returns the total number of cycles charged by the instruction,
// including the cost of any interrupt serviced afterwards.
func (r Result) Cost() int {
	return r.Cycles + r.InterruptCycles
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x ???", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x %s", r.Address, r.Defn.Operator))

	var operand string
	switch r.Defn.Bytes {
	case 2:
		operand = fmt.Sprintf("$%02x", uint8(r.InstructionData))
	case 3:
		operand = fmt.Sprintf("$%04x", r.InstructionData)
	}

	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		operand = fmt.Sprintf("#%s", operand)
	case instructions.Indirect:
		operand = fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf("%s,Y", operand)
	}

	if operand != "" {
		s.WriteString(" ")
		s.WriteString(operand)
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	} else {
		s.WriteString(" [v]")
	}

	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.InterruptCycles > 0 {
		s.WriteString(" irq")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}

	return s.String()
}
