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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/execution"
	"github.com/jetsetilly/gopherbeeb/hardware/faults"
	"github.com/jetsetilly/gopherbeeb/hardware/interrupts"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherbeeb/test"
)

func TestReset(t *testing.T) {
	h := newHarness(t)
	test.ExpectEquality(t, h.mc.PC.Address(), origin)
	test.ExpectEquality(t, h.mc.SP.Value(), 0xff)
	test.ExpectEquality(t, h.mc.A.Value(), 0x00)
	test.ExpectSuccess(t, h.mc.Status.InterruptDisable)
	test.ExpectFailure(t, h.mc.Status.DecimalMode)
	test.ExpectEquality(t, h.mc.String(), "PC=0x0400 A=0x00 X=0x00 Y=0x00 SP=0xff SR=sv-bdIzc")
}

func TestLoadStore(t *testing.T) {
	h := newHarness(t,
		0xa9, 0x41, // LDA #$41
		0x8d, 0x00, 0x02, // STA $0200
		0xa2, 0xff, // LDX #$ff
		0x86, 0x10, // STX $10
		0xa4, 0x10, // LDY $10
	)

	r := h.step(t)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, r.String(), "0400 LDA #$41 [2]")
	test.ExpectEquality(t, h.mc.A.Value(), 0x41)
	test.ExpectFailure(t, h.mc.Status.Zero)
	test.ExpectFailure(t, h.mc.Status.Sign)

	// the write happens on the third cycle of the instruction
	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 4)
	h.mem.assert(t, 0x0200, 0x41)
	a := h.mem.filter(0x0200)
	test.DemandEquality(t, len(a), 1)
	test.ExpectSuccess(t, a[0].write)
	test.ExpectEquality(t, a[0].cycle, 3)

	r = h.step(t)
	test.ExpectEquality(t, h.mc.X.Value(), 0xff)
	test.ExpectSuccess(t, h.mc.Status.Sign)

	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 3)
	h.mem.assert(t, 0x0010, 0xff)
	a = h.mem.filter(0x0010)
	test.DemandEquality(t, len(a), 1)
	test.ExpectEquality(t, a[0].cycle, 2)

	// the read happens on the second cycle of the instruction
	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, h.mc.Y.Value(), 0xff)
	a = h.mem.filter(0x0010)
	test.DemandEquality(t, len(a), 1)
	test.ExpectFailure(t, a[0].write)
	test.ExpectEquality(t, a[0].cycle, 2)

	test.ExpectEquality(t, h.sch.Total(), 14)
}

func TestReadModifyWrite(t *testing.T) {
	h := newHarness(t,
		0xee, 0x00, 0x02, // INC $0200
		0x06, 0x10, // ASL $10
	)
	h.mem.putInstructions(0x0200, 0x41)
	h.mem.putInstructions(0x0010, 0x81)

	// the unmodified value is written before the result
	r := h.step(t)
	test.ExpectEquality(t, r.Cycles, 6)
	a := h.mem.filter(0x0200)
	test.DemandEquality(t, len(a), 3)
	test.ExpectEquality(t, a[0], access{write: false, address: 0x0200, data: 0x41, cycle: 3})
	test.ExpectEquality(t, a[1], access{write: true, address: 0x0200, data: 0x41, cycle: 4})
	test.ExpectEquality(t, a[2], access{write: true, address: 0x0200, data: 0x42, cycle: 5})
	test.ExpectEquality(t, h.clk.cycles, 6)

	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 5)
	a = h.mem.filter(0x0010)
	test.DemandEquality(t, len(a), 3)
	test.ExpectEquality(t, a[0], access{write: false, address: 0x0010, data: 0x81, cycle: 2})
	test.ExpectEquality(t, a[1], access{write: true, address: 0x0010, data: 0x81, cycle: 3})
	test.ExpectEquality(t, a[2], access{write: true, address: 0x0010, data: 0x02, cycle: 4})
	test.ExpectSuccess(t, h.mc.Status.Carry)
	test.ExpectFailure(t, h.mc.Status.Sign)
}

func TestArithmetic(t *testing.T) {
	h := newHarness(t,
		0x18,       // CLC
		0xa9, 0x50, // LDA #$50
		0x69, 0x50, // ADC #$50
		0x38,       // SEC
		0xa9, 0x50, // LDA #$50
		0xe9, 0xf0, // SBC #$f0
		0x38,       // SEC
		0xa9, 0x50, // LDA #$50
		0xe9, 0xb0, // SBC #$b0
		0xa9, 0x40, // LDA #$40
		0xc9, 0x40, // CMP #$40
		0xc9, 0x41, // CMP #$41
		0xa9, 0xc0, // LDA #$c0
		0x24, 0x10, // BIT $10
	)
	h.mem.putInstructions(0x0010, 0x40)

	h.step(t)
	h.step(t)
	h.step(t)
	test.ExpectEquality(t, h.mc.A.Value(), 0xa0)
	test.ExpectSuccess(t, h.mc.Status.Overflow)
	test.ExpectSuccess(t, h.mc.Status.Sign)
	test.ExpectFailure(t, h.mc.Status.Carry)
	test.ExpectFailure(t, h.mc.Status.Zero)

	h.step(t)
	h.step(t)
	h.step(t)
	test.ExpectEquality(t, h.mc.A.Value(), 0x60)
	test.ExpectFailure(t, h.mc.Status.Carry)
	test.ExpectFailure(t, h.mc.Status.Overflow)

	h.step(t)
	h.step(t)
	h.step(t)
	test.ExpectEquality(t, h.mc.A.Value(), 0xa0)
	test.ExpectSuccess(t, h.mc.Status.Overflow)
	test.ExpectFailure(t, h.mc.Status.Carry)
	test.ExpectSuccess(t, h.mc.Status.Sign)

	h.step(t)
	h.step(t)
	test.ExpectSuccess(t, h.mc.Status.Zero)
	test.ExpectSuccess(t, h.mc.Status.Carry)
	test.ExpectFailure(t, h.mc.Status.Sign)

	h.step(t)
	test.ExpectFailure(t, h.mc.Status.Zero)
	test.ExpectFailure(t, h.mc.Status.Carry)
	test.ExpectSuccess(t, h.mc.Status.Sign)

	// BIT takes N and V from memory
	h.step(t)
	r := h.step(t)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectFailure(t, h.mc.Status.Zero)
	test.ExpectFailure(t, h.mc.Status.Sign)
	test.ExpectSuccess(t, h.mc.Status.Overflow)
	test.ExpectEquality(t, h.mc.A.Value(), 0xc0)
}

func TestDecimalMode(t *testing.T) {
	for _, opcode := range []uint8{0x69, 0xe9} {
		h := newHarness(t,
			0xf8,         // SED
			opcode, 0x01, // ADC #$01 or SBC #$01
		)

		h.step(t)
		test.ExpectSuccess(t, h.mc.Status.DecimalMode)

		_, err := h.mc.ExecuteInstruction()
		test.ExpectFailure(t, err, opcode)
		f, ok := curated.As[faults.UnsupportedMode](err)
		test.DemandSuccess(t, ok, opcode)
		test.ExpectEquality(t, f.Component, "cpu", opcode)
		test.ExpectEquality(t, f.Mode, "decimal arithmetic", opcode)
		test.ExpectEquality(t, f.Value, opcode, opcode)
		test.ExpectFailure(t, h.mc.LastResult.Final, opcode)
	}
}

func TestUnimplementedOpcode(t *testing.T) {
	h := newHarness(t, 0x02)

	_, err := h.mc.ExecuteInstruction()
	test.ExpectFailure(t, err)

	var f faults.UnimplementedOpcode
	test.DemandSuccess(t, errors.As(err, &f))
	test.ExpectEquality(t, f.Opcode, 0x02)
	test.ExpectEquality(t, f.Address, origin)
	test.ExpectEquality(t, err.Error(), "cpu: unimplemented opcode (0x02) at 0x0400")
}

func TestBranches(t *testing.T) {
	h := newHarness(t,
		0xa9, 0x00, // LDA #$00
		0xd0, 0x10, // BNE +$10
		0xf0, 0x02, // BEQ +$02
		0x00, 0x00,
		0xf0, 0xfe, // BEQ -$02
	)

	h.step(t)
	test.ExpectSuccess(t, h.mc.Status.Zero)

	// not taken
	r := h.step(t)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectFailure(t, r.BranchSuccess)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x0404)

	// taken within the same page
	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectSuccess(t, r.BranchSuccess)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x0408)

	// taken backwards within the same page
	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x0408)

	// taken across a page boundary
	h.mem.putInstructions(0x04f0, 0xf0, 0x20)
	h.mc.LoadPC(0x04f0)
	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x0512)

	// taken backwards across a page boundary
	h.mem.putInstructions(0x0500, 0xf0, 0xf0)
	h.mc.LoadPC(0x0500)
	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x04f2)
}

func TestJmpIndirect(t *testing.T) {
	h := newHarness(t,
		0x6c, 0xff, 0x02, // JMP ($02ff)
	)
	h.mem.putInstructions(0x02ff, 0x34)
	h.mem.putInstructions(0x0200, 0x12)
	h.mem.putInstructions(0x0300, 0x56, 0x78)

	// the high byte is taken from $0200 and not $0300
	r := h.step(t)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, r.CPUBug, execution.JmpIndirectAddressingBug)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x1234)

	h.mem.putInstructions(0x0410, 0x6c, 0x00, 0x03) // JMP ($0300)
	h.mc.LoadPC(0x0410)
	r = h.step(t)
	test.ExpectEquality(t, r.CPUBug, execution.NoBug)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x7856)
}

func TestSubroutine(t *testing.T) {
	h := newHarness(t,
		0x20, 0x00, 0x20, // JSR $2000
	)
	h.mem.putInstructions(0x2000, 0x60) // RTS

	// the address of the last byte of the JSR instruction is pushed
	r := h.step(t)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x2000)
	test.ExpectEquality(t, h.mc.SP.Value(), 0xfd)
	h.mem.assert(t, 0x01ff, 0x04)
	h.mem.assert(t, 0x01fe, 0x02)

	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x0403)
	test.ExpectEquality(t, h.mc.SP.Value(), 0xff)
}

func TestBreak(t *testing.T) {
	h := newHarness(t,
		0x58, // CLI
		0x00, // BRK
		0xea, // padding byte
	)
	h.mem.setVector(cpubus.IRQ, 0x3000)
	h.mem.putInstructions(0x3000, 0x40) // RTI

	h.step(t)

	// BRK skips the padding byte
	r := h.step(t)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x3000)
	test.ExpectEquality(t, h.mc.SP.Value(), 0xfc)
	test.ExpectSuccess(t, h.mc.Status.InterruptDisable)
	h.mem.assert(t, 0x01ff, 0x04)
	h.mem.assert(t, 0x01fe, 0x03)

	// the break flag is set in the pushed status but not the interrupt disable flag
	h.mem.assert(t, 0x01fd, 0x30)

	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x0403)
	test.ExpectEquality(t, h.mc.SP.Value(), 0xff)
	test.ExpectFailure(t, h.mc.Status.InterruptDisable)
	test.ExpectSuccess(t, h.mc.Status.Break)
}

func TestStack(t *testing.T) {
	h := newHarness(t,
		0xa9, 0x80, // LDA #$80
		0x48,       // PHA
		0xa9, 0x00, // LDA #$00
		0x68,       // PLA
		0x08,       // PHP
		0xa9, 0x00, // LDA #$00
		0x28,       // PLP
		0xa2, 0x00, // LDX #$00
		0x9a,       // TXS
		0x48,       // PHA
		0x68,       // PLA
	)

	h.step(t)
	r := h.step(t)
	test.ExpectEquality(t, r.Cycles, 3)
	h.mem.assert(t, 0x01ff, 0x80)
	test.ExpectEquality(t, h.mc.SP.Value(), 0xfe)

	h.step(t)
	test.ExpectSuccess(t, h.mc.Status.Zero)
	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, h.mc.A.Value(), 0x80)
	test.ExpectSuccess(t, h.mc.Status.Sign)
	test.ExpectFailure(t, h.mc.Status.Zero)
	test.ExpectEquality(t, h.mc.SP.Value(), 0xff)

	// PHP always sets the break flag and the unused bit
	h.step(t)
	h.mem.assert(t, 0x01ff, 0xb4)

	h.step(t)
	test.ExpectSuccess(t, h.mc.Status.Zero)
	test.ExpectFailure(t, h.mc.Status.Sign)
	h.step(t)
	test.ExpectFailure(t, h.mc.Status.Zero)
	test.ExpectSuccess(t, h.mc.Status.Sign)
	test.ExpectSuccess(t, h.mc.Status.InterruptDisable)

	// the stack pointer wraps within page one
	h.step(t)
	h.step(t)
	test.ExpectEquality(t, h.mc.SP.Value(), 0x00)
	h.step(t)
	test.ExpectEquality(t, h.mc.SP.Value(), 0xff)
	a := h.mem.filter(0x0100)
	test.DemandEquality(t, len(a), 1)
	test.ExpectSuccess(t, a[0].write)
	h.step(t)
	test.ExpectEquality(t, h.mc.SP.Value(), 0x00)
}

func TestIndexing(t *testing.T) {
	h := newHarness(t,
		0xa2, 0x01, // LDX #$01
		0xbd, 0xff, 0x20, // LDA $20ff,X
		0xbd, 0x80, 0x20, // LDA $2080,X
		0xa0, 0x20, // LDY #$20
		0xb1, 0x70, // LDA ($70),Y
		0xa0, 0x0f, // LDY #$0f
		0xb1, 0x70, // LDA ($70),Y
		0x9d, 0xff, 0x20, // STA $20ff,X
		0xa2, 0x10, // LDX #$10
		0xb5, 0xf8, // LDA $f8,X
		0xa2, 0x01, // LDX #$01
		0xa1, 0xfe, // LDA ($fe,X)
	)
	h.mem.putInstructions(0x0070, 0xf0, 0x20)
	h.mem.putInstructions(0x2100, 0x99)
	h.mem.putInstructions(0x2081, 0x98)
	h.mem.putInstructions(0x2110, 0x97)
	h.mem.putInstructions(0x20ff, 0x96)
	h.mem.putInstructions(0x0008, 0x95)
	h.mem.putInstructions(0x00ff, 0x34)
	h.mem.putInstructions(0x0000, 0x12)
	h.mem.putInstructions(0x1234, 0x94)

	h.step(t)

	// crossing a page costs an additional cycle
	r := h.step(t)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectSuccess(t, r.PageFault)
	test.ExpectEquality(t, h.mc.A.Value(), 0x99)

	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectFailure(t, r.PageFault)
	test.ExpectEquality(t, h.mc.A.Value(), 0x98)

	h.step(t)
	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectSuccess(t, r.PageFault)
	test.ExpectEquality(t, h.mc.A.Value(), 0x97)

	h.step(t)
	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectFailure(t, r.PageFault)
	test.ExpectEquality(t, h.mc.A.Value(), 0x96)

	// stores never pay the page crossing penalty
	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectFailure(t, r.PageFault)
	h.mem.assert(t, 0x2100, 0x96)

	// zero page indexing wraps around the zero page
	h.step(t)
	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, r.CPUBug, execution.ZeroPageIndexBug)
	test.ExpectEquality(t, h.mc.A.Value(), 0x95)

	// the pointer for indexed indirect addressing wraps around the zero page
	h.step(t)
	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, h.mc.A.Value(), 0x94)
}

func TestMemoryError(t *testing.T) {
	h := newHarness(t,
		0x8d, 0x00, 0x03, // STA $0300
	)
	h.mem.unwritable = 0x0300

	// errors from memory are returned unchanged
	_, err := h.mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, errUnwritable))
	test.ExpectFailure(t, curated.IsAny(err))
}

func TestInterrupt(t *testing.T) {
	h := newHarness(t,
		0x58, // CLI
		0xea, // NOP
		0xea, // NOP
		0xea, // NOP
	)
	h.mem.setVector(cpubus.IRQ, 0x3000)

	h.step(t)
	h.irq.Raise(interrupts.Serial)

	// the interrupt is noticed too late in the first NOP
	r := h.step(t)
	test.ExpectEquality(t, r.InterruptCycles, 0)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x0402)

	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, r.InterruptCycles, 7)
	test.ExpectEquality(t, r.Cost(), 9)
	test.ExpectEquality(t, h.clk.cycles, 9)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x3000)
	test.ExpectSuccess(t, h.mc.Status.InterruptDisable)
	test.ExpectEquality(t, h.mc.SP.Value(), 0xfc)
	h.mem.assert(t, 0x01ff, 0x04)
	h.mem.assert(t, 0x01fe, 0x03)

	// the break flag is clear in the pushed status
	h.mem.assert(t, 0x01fd, 0x20)

	test.ExpectEquality(t, h.sch.Total(), 13)
}

func TestInterruptAfterSEI(t *testing.T) {
	h := newHarness(t,
		0x58, // CLI
		0xea, // NOP
		0x78, // SEI
		0xea, // NOP
	)
	h.mem.setVector(cpubus.IRQ, 0x3000)

	h.step(t)
	h.irq.Raise(interrupts.Serial)
	h.step(t)

	// the interrupt is still taken after the instruction that sets the
	// interrupt disable flag
	r := h.step(t)
	test.ExpectEquality(t, r.InterruptCycles, 7)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x3000)
	h.mem.assert(t, 0x01ff, 0x04)
	h.mem.assert(t, 0x01fe, 0x03)
	h.mem.assert(t, 0x01fd, 0x24)
}

func TestInterruptAfterCLI(t *testing.T) {
	h := newHarness(t,
		0xea, // NOP
		0x58, // CLI
		0xea, // NOP
		0xea, // NOP
	)
	h.mem.setVector(cpubus.IRQ, 0x3000)
	h.irq.Raise(interrupts.Serial)

	// interrupts are disabled after reset
	r := h.step(t)
	test.ExpectEquality(t, r.InterruptCycles, 0)

	// the interrupt is not taken immediately after the instruction that
	// clears the interrupt disable flag
	r = h.step(t)
	test.ExpectEquality(t, r.InterruptCycles, 0)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x0402)

	r = h.step(t)
	test.ExpectEquality(t, r.InterruptCycles, 7)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x3000)
	h.mem.assert(t, 0x01fe, 0x03)
}

func TestInterruptSEIThenCLI(t *testing.T) {
	h := newHarness(t,
		0x78, // SEI
		0x58, // CLI
		0xea, // NOP
	)
	h.mem.setVector(cpubus.IRQ, 0x3000)
	h.irq.Raise(interrupts.Serial)
	test.DemandSuccess(t, h.mc.Status.InterruptDisable)

	// not serviced while disabled
	r := h.step(t)
	test.ExpectEquality(t, r.InterruptCycles, 0)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x0401)

	// not serviced in the instruction that clears the flag but not lost
	// either
	r = h.step(t)
	test.ExpectEquality(t, r.InterruptCycles, 0)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x0402)

	r = h.step(t)
	test.ExpectEquality(t, r.InterruptCycles, 7)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x3000)
	h.mem.assert(t, 0x01ff, 0x04)
	h.mem.assert(t, 0x01fe, 0x03)
}

func TestTimerInterruptCountdown(t *testing.T) {
	h := newHarness(t,
		0x58, // CLI
		0xea, // NOP
		0xea, // NOP
		0xea, // NOP
		0xea, // NOP
	)
	h.mem.setVector(cpubus.IRQ, 0x3000)
	h.step(t)

	// a timer has fired and claimed the countdown
	h.irq.Raise(interrupts.SysVIA)
	h.irq.Claim(5)

	for i := 0; i < 3; i++ {
		r := h.step(t)
		test.ExpectEquality(t, r.InterruptCycles, 0)
	}

	r := h.step(t)
	test.ExpectEquality(t, r.InterruptCycles, 7)
	test.ExpectSuccess(t, h.irq.Idle())
}

func TestIOTiming(t *testing.T) {
	h := newHarness(t,
		0xad, 0x40, 0xfe, // LDA $fe40
		0xa5, 0x00, // LDA $00
		0xad, 0x40, 0xfe, // LDA $fe40
	)
	h.mem.io = h.mc

	// the read point is on an odd cycle. one cycle to synchronise with the
	// 1MHz bus and one cycle for the IO access
	r := h.step(t)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, r.IOCycles, 2)
	a := h.mem.filter(0xfe40)
	test.DemandEquality(t, len(a), 1)
	test.ExpectEquality(t, a[0].cycle, 5)

	h.step(t)
	test.ExpectEquality(t, h.sch.Total(), 9)

	// the read point is on an even cycle
	r = h.step(t)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, r.IOCycles, 1)
	test.ExpectEquality(t, h.clk.cycles, 5)
}
