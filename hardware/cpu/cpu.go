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

package cpu

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/execution"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/registers"
	"github.com/jetsetilly/gopherbeeb/hardware/faults"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherbeeb/hardware/scheduler"
)

// Timing is the part of the scheduler used by the CPU.
type Timing interface {
	Total() scheduler.Trigger
	Step(cycles int)
	Commit(cycles int) (time.Duration, error)
}

// Interrupts is the part of the interrupt controller used by the CPU.
type Interrupts interface {
	Begin()
	Check()
	Service(disabled bool, justSet bool, justCleared bool, ioCycles int) bool
}

// the number of cycles taken to service an interrupt
const interruptCycles = 7

// CPU implements the 6502 found in the BBC Micro. Register logic is
// implemented by the Register type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem          cpubus.Memory
	timing       Timing
	irq          Interrupts
	instructions []*instructions.Definition

	// cycles charged to the current instruction so far
	cycles int

	// number of cycles added by the most recent IO synchronisation. the value
	// moves the point at which an interrupt is noticed
	ioCycles int

	// number of cycles added by all IO accesses in the instruction
	ioAdded int

	// number of cycles the rest of the machine has been advanced by during
	// the current instruction
	stepped int

	// the interrupt disable flag was changed by the current instruction
	justSet     bool
	justCleared bool

	// LastResult records the details of the most recent instruction. the
	// Final field is false if the instruction did not complete
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// memory argument can be nil if the memory is not yet available. Use Plumb()
// to attach the memory later.
func NewCPU(mem cpubus.Memory, timing Timing, irq Interrupts) *CPU {
	return &CPU{
		mem:          mem,
		timing:       timing,
		irq:          irq,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0xff),
		Status:       registers.NewStatusRegister(),
		instructions: instructions.GetDefinitions(),
	}
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC with the reset vector.
func (mc *CPU) Reset() error {
	mc.LastResult.Reset()

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true

	mc.cycles = 0
	mc.ioCycles = 0
	mc.ioAdded = 0
	mc.stepped = 0
	mc.justSet = false
	mc.justCleared = false

	return mc.LoadPCIndirect(cpubus.Reset)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	address, err := mc.read16Bit(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

// LoadPC loads the directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// step advances the rest of the machine and keeps note of how far it has
// been advanced during this instruction
func (mc *CPU) step(cycles int) {
	if cycles == 0 {
		return
	}
	mc.timing.Step(cycles)
	mc.stepped += cycles
}

// advance charges cycles to the instruction and steps the rest of the
// machine by the same amount
func (mc *CPU) advance(cycles int) {
	mc.cycles += cycles
	mc.step(cycles)
}

// SyncIO aligns the current instruction with the 1MHz bus. An additional
// cycle is charged if the current cycle count is odd.
func (mc *CPU) SyncIO() {
	if (int64(mc.timing.Total())+int64(mc.cycles))&1 == 1 {
		mc.ioCycles = 1
		mc.ioAdded++
		mc.advance(1)
	} else {
		mc.ioCycles = 0
	}
}

// AdjustForIORead charges the additional cycle required by a read from the
// 1MHz bus.
func (mc *CPU) AdjustForIORead() {
	mc.ioCycles++
	mc.ioAdded++
	mc.advance(1)
}

// AdjustForIOWrite charges the additional cycle required by a write to the
// 1MHz bus. A write to IO may cause an interrupt so the interrupt status is
// checked.
func (mc *CPU) AdjustForIOWrite() {
	mc.ioCycles++
	mc.ioAdded++
	mc.advance(1)
	mc.irq.Check()
}

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v, nil
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - updates LastResult.InstructionData
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	v := (uint16(hi) << 8) | uint16(lo)
	mc.LastResult.InstructionData = v
	return v, nil
}

// read16Bit returns 16bit value from the specified address
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// read16BitZeroPage returns the 16bit value from the zero page. the address of
// the high byte wraps around to the start of the zero page
func (mc *CPU) read16BitZeroPage(address uint8) (uint16, error) {
	lo, err := mc.mem.Read(uint16(address))
	if err != nil {
		return 0, err
	}
	hi, err := mc.mem.Read(uint16(address + 1))
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

func (mc *CPU) push(v uint8) error {
	err := mc.mem.Write(mc.SP.Address(), v)
	if err != nil {
		return err
	}
	mc.SP.Decrement()
	return nil
}

func (mc *CPU) pop() (uint8, error) {
	mc.SP.Increment()
	return mc.mem.Read(mc.SP.Address())
}

// pushWord pushes the high byte first so that the word is stored
// little-endian on the stack
func (mc *CPU) pushWord(v uint16) error {
	err := mc.push(uint8(v >> 8))
	if err != nil {
		return err
	}
	return mc.push(uint8(v))
}

func (mc *CPU) popWord() (uint16, error) {
	lo, err := mc.pop()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pop()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

func (mc *CPU) branch(flag bool, offset uint8) {
	mc.LastResult.BranchSuccess = flag
	if flag {
		// sign extend the offset
		mc.PC.Add(uint16(int8(offset)))
	}
}

// indexed returns the address after adding the index. the page fault field
// of LastResult is set if the instruction is sensitive to page crossing and
// the index has crossed a page boundary
func (mc *CPU) indexed(defn *instructions.Definition, base uint16, index uint8) uint16 {
	address := base + uint16(index)
	if defn.PageSensitive && (base&0x00ff)+uint16(index) > 0x00ff {
		mc.LastResult.PageFault = true
	}
	return address
}

// shift performs one of the shift or rotate operations on the accumulator or
// on the value from memory. returns the new value
func (mc *CPU) shift(defn *instructions.Definition, value uint8) uint8 {
	r := &mc.A
	if defn.Effect == instructions.RMW {
		t := registers.NewRegister(value, "")
		r = &t
	}

	var carry bool
	switch defn.Operator {
	case instructions.Asl:
		carry = r.ASL()
	case instructions.Lsr:
		carry = r.LSR()
	case instructions.Rol:
		carry = r.ROL(mc.Status.Carry)
	case instructions.Ror:
		carry = r.ROR(mc.Status.Carry)
	}

	mc.Status.SetCarryZeroNegative(carry, r.IsZero(), r.IsNegative())
	return r.Value()
}

// arithmeticFlags sets the flags affected by ADC and SBC from the result in
// the accumulator
func (mc *CPU) arithmeticFlags(carry bool, overflow bool) {
	const mask = registers.FlagCarry | registers.FlagZero | registers.FlagOverflow | registers.FlagSign
	mc.Status.SetExplicit(mask, carry, mc.A.IsZero(), false, false, false, overflow, mc.A.IsNegative())
}

// compare sets the flags as though the value was subtracted from the
// register
func (mc *CPU) compare(r registers.Register, value uint8) {
	carry, _ := r.Subtract(value, true)
	mc.Status.Carry = carry
	mc.Status.SetZeroNegative(r.Value())
}

// interrupt performs the interrupt sequence. the break flag is clear in the
// status pushed to the stack
func (mc *CPU) interrupt() error {
	err := mc.pushWord(mc.PC.Address())
	if err != nil {
		return err
	}
	err = mc.push(mc.Status.Value() &^ registers.FlagBreak)
	if err != nil {
		return err
	}
	err = mc.LoadPCIndirect(cpubus.IRQ)
	if err != nil {
		return err
	}
	mc.Status.InterruptDisable = true
	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. advance the machine to the point where memory is read
//  3. read operands (if any) according to the addressing mode of the instruction
//  4. using the operator as a guide, perform the instruction on the data.
//     writes to memory happen after the machine has been advanced to the write
//     point
//  5. charge the remaining cycles for the instruction and service any pending
//     interrupt
//
// The returned duration is the largest throttle hint from the hardware polled
// by the scheduler.
func (mc *CPU) ExecuteInstruction() (time.Duration, error) {
	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	mc.irq.Begin()
	mc.cycles = 0
	mc.ioCycles = 0
	mc.ioAdded = 0
	mc.stepped = 0
	mc.justSet = false
	mc.justCleared = false

	opcode, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}

	defn := mc.instructions[opcode]
	if defn == nil {
		return 0, curated.Errorf("cpu: %v", faults.UnimplementedOpcode{Opcode: opcode, Address: mc.LastResult.Address})
	}
	mc.LastResult.Defn = defn

	// advance to the point where memory is read. if the instruction also
	// writes to memory then the interrupt check happens at the write point
	mc.advance(defn.CyclesToRead)
	if defn.CyclesToRead != 0 && defn.CyclesToWrite == 0 {
		mc.irq.Check()
	}

	// address is the actual address to use to access memory (after any
	// indexing has taken place)
	var address uint16

	// value is read from the program for immediate/relative mode, and from
	// memory for all other modes. for read-modify-write instructions the
	// value changes during execution and is written back to memory
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied:
		// BRK handles the padding byte itself

	case instructions.Immediate, instructions.Relative:
		value, err = mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Absolute:
		address, err = mc.read16BitPC()
		if err != nil {
			return 0, err
		}

	case instructions.ZeroPage:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = uint16(zp)
		address = uint16(zp)

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP command
		var indirectAddress uint16
		indirectAddress, err = mc.read16BitPC()
		if err != nil {
			return 0, err
		}

		if indirectAddress&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug

			// the high byte of the address is read from the start of the
			// same page, not from the start of the next page
			var lo, hi uint8
			lo, err = mc.mem.Read(indirectAddress)
			if err != nil {
				return 0, err
			}
			hi, err = mc.mem.Read(indirectAddress & 0xff00)
			if err != nil {
				return 0, err
			}
			address = (uint16(hi) << 8) | uint16(lo)
		} else {
			address, err = mc.read16Bit(indirectAddress)
			if err != nil {
				return 0, err
			}
		}

	case instructions.IndexedIndirect: // x indexing
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = uint16(zp)

		// indexing never leaves the zero page
		zp += mc.X.Value()
		if zp == 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectWrapBug
		}

		address, err = mc.read16BitZeroPage(zp)
		if err != nil {
			return 0, err
		}

	case instructions.IndirectIndexed: // y indexing
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = uint16(zp)

		if zp == 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectWrapBug
		}

		var base uint16
		base, err = mc.read16BitZeroPage(zp)
		if err != nil {
			return 0, err
		}
		address = mc.indexed(defn, base, mc.Y.Value())

	case instructions.AbsoluteIndexedX:
		var base uint16
		base, err = mc.read16BitPC()
		if err != nil {
			return 0, err
		}
		address = mc.indexed(defn, base, mc.X.Value())

	case instructions.AbsoluteIndexedY:
		var base uint16
		base, err = mc.read16BitPC()
		if err != nil {
			return 0, err
		}
		address = mc.indexed(defn, base, mc.Y.Value())

	case instructions.ZeroPageIndexedX:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = uint16(zp)

		if uint16(zp)+uint16(mc.X.Value()) > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}
		address = uint16(zp + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		// used exclusively for LDX and STX
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = uint16(zp)

		if uint16(zp)+uint16(mc.Y.Value()) > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}
		address = uint16(zp + mc.Y.Value())

	default:
		return 0, curated.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	// page fault cycle is charged at the end of the instruction
	if mc.LastResult.PageFault {
		mc.cycles++
	}

	// read value from memory using the address found above only when:
	// a) addressing mode is not 'implied' or 'immediate' or 'relative'
	// b) instruction is 'Read' or 'RMW'
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Immediate, instructions.Relative:
	default:
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value, err = mc.mem.Read(address)
			if err != nil {
				return 0, err
			}
		}
	}

	// advance to the point where memory is written
	if defn.IsMemoryWrite() {
		mc.advance(defn.CyclesToWrite)
		mc.irq.Check()
	}

	// the value read from memory before modification. only used by RMW
	// instructions
	unmodified := value

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		if mc.Status.InterruptDisable {
			mc.justCleared = true
		}
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		if !mc.Status.InterruptDisable {
			mc.justSet = true
		}
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		err = mc.push(mc.A.Value())
		if err != nil {
			return 0, err
		}

	case instructions.Pla:
		value, err = mc.pop()
		if err != nil {
			return 0, err
		}
		mc.A.Load(value)
		mc.Status.SetZeroNegative(value)

	case instructions.Php:
		// the break and unused bits are always set in the pushed value
		err = mc.push(mc.Status.Value() | registers.FlagBreak | registers.FlagUnused)
		if err != nil {
			return 0, err
		}

	case instructions.Plp:
		value, err = mc.pop()
		if err != nil {
			return 0, err
		}
		disabled := mc.Status.InterruptDisable
		mc.Status.Load(value)
		if disabled && !mc.Status.InterruptDisable {
			mc.justCleared = true
		} else if !disabled && mc.Status.InterruptDisable {
			mc.justSet = true
		}

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZeroNegative(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetZeroNegative(mc.Y.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZeroNegative(mc.X.Value())

	case instructions.Txs:
		// does not affect status register
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.And:
		mc.A.AND(value)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.SetZeroNegative(mc.X.Value())

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.SetZeroNegative(mc.Y.Value())

	case instructions.Sta:
		err = mc.mem.Write(address, mc.A.Value())
		if err != nil {
			return 0, err
		}

	case instructions.Stx:
		err = mc.mem.Write(address, mc.X.Value())
		if err != nil {
			return 0, err
		}

	case instructions.Sty:
		err = mc.mem.Write(address, mc.Y.Value())
		if err != nil {
			return 0, err
		}

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.SetZeroNegative(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.SetZeroNegative(mc.Y.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.SetZeroNegative(mc.X.Value())

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.SetZeroNegative(mc.Y.Value())

	case instructions.Inc:
		value++
		mc.Status.SetZeroNegative(value)

	case instructions.Dec:
		value--
		mc.Status.SetZeroNegative(value)

	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
		value = mc.shift(defn, value)

	case instructions.Adc:
		if mc.Status.DecimalMode {
			return 0, curated.Errorf("cpu: %v", faults.UnsupportedMode{Component: "cpu", Mode: "decimal arithmetic", Value: opcode})
		}
		carry, overflow := mc.A.Add(value, mc.Status.Carry)
		mc.arithmeticFlags(carry, overflow)

	case instructions.Sbc:
		if mc.Status.DecimalMode {
			return 0, curated.Errorf("cpu: %v", faults.UnsupportedMode{Component: "cpu", Mode: "decimal arithmetic", Value: opcode})
		}
		carry, overflow := mc.A.Subtract(value, mc.Status.Carry)
		mc.arithmeticFlags(carry, overflow)

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.Status.Zero = mc.A.Value()&value == 0
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, value)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, value)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, value)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, value)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, value)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, value)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, value)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, value)

	case instructions.Jsr:
		// the address pushed is the address of the last byte of the JSR
		// instruction. RTS adds one to the address when it is pulled
		err = mc.pushWord(mc.PC.Address() - 1)
		if err != nil {
			return 0, err
		}
		mc.PC.Load(address)

	case instructions.Rts:
		var rtsAddress uint16
		rtsAddress, err = mc.popWord()
		if err != nil {
			return 0, err
		}
		mc.PC.Load(rtsAddress)
		mc.PC.Add(1)

	case instructions.Brk:
		// BRK is unusual in that it increases the PC by two bytes despite
		// being an implied addressing instruction. the padding byte is not
		// counted as part of the instruction
		mc.PC.Add(1)
		err = mc.pushWord(mc.PC.Address())
		if err != nil {
			return 0, err
		}

		// break flag is set before pushing and the interrupt disable flag
		// after pushing
		mc.Status.Break = true
		err = mc.push(mc.Status.Value())
		if err != nil {
			return 0, err
		}
		mc.Status.InterruptDisable = true

		err = mc.LoadPCIndirect(cpubus.IRQ)
		if err != nil {
			return 0, err
		}

	case instructions.Rti:
		value, err = mc.pop()
		if err != nil {
			return 0, err
		}
		mc.Status.Load(value)

		var rtiAddress uint16
		rtiAddress, err = mc.popWord()
		if err != nil {
			return 0, err
		}
		mc.PC.Load(rtiAddress)

	default:
		return 0, curated.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	// the unmodified value is written back to memory before the result
	if defn.Effect == instructions.RMW {
		mc.advance(1)
		err = mc.mem.Write(address, unmodified)
		if err != nil {
			return 0, err
		}
		mc.advance(defn.CyclesToWrite - 1)
		err = mc.mem.Write(address, value)
		if err != nil {
			return 0, err
		}
	}

	// a taken branch costs an additional cycle and another one if the
	// destination is on a different page to the next instruction
	if mc.LastResult.BranchSuccess {
		mc.cycles++
		if mc.PC.Page() != (mc.LastResult.Address+2)&0xff00 {
			mc.cycles++
		}
	}

	// charge the rest of the instruction
	mc.cycles += defn.Cycles - defn.CyclesToRead - defn.CyclesToWrite
	mc.step(mc.cycles - mc.stepped)

	mc.LastResult.Cycles = mc.cycles
	mc.LastResult.IOCycles = mc.ioAdded

	throttle, err := mc.timing.Commit(mc.cycles)
	if err != nil {
		return 0, err
	}

	mc.irq.Check()
	if mc.irq.Service(mc.Status.InterruptDisable, mc.justSet, mc.justCleared, mc.ioCycles) {
		err = mc.interrupt()
		if err != nil {
			return 0, err
		}

		var t time.Duration
		t, err = mc.timing.Commit(interruptCycles)
		if err != nil {
			return 0, err
		}
		mc.timing.Step(interruptCycles)

		mc.LastResult.InterruptCycles = interruptCycles
		throttle = max(throttle, t)
	}

	mc.LastResult.Final = true

	return throttle, nil
}
