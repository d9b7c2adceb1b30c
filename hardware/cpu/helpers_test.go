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

	"github.com/jetsetilly/gopherbeeb/hardware/cpu"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/execution"
	"github.com/jetsetilly/gopherbeeb/hardware/interrupts"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherbeeb/hardware/scheduler"
	"github.com/jetsetilly/gopherbeeb/test"
)

// the address of the first instruction of every test program
const origin = uint16(0x0400)

var errUnwritable = errors.New("unwritable address")

// clock is a peripheral that counts the number of cycles it has been stepped
type clock struct {
	cycles int
}

func (clk *clock) Step(cycles int) {
	clk.cycles += cycles
}

type access struct {
	write   bool
	address uint16
	data    uint8

	// the value of the clock when the access happened
	cycle int
}

type ioTiming interface {
	SyncIO()
	AdjustForIORead()
	AdjustForIOWrite()
}

type mockMem struct {
	internal []uint8
	clk      *clock
	accesses []access

	// writes to this address will fail. zero for no failure
	unwritable uint16

	// addresses $fe40 to $fe7f are treated as IO if io is not nil
	io ioTiming
}

func newMockMem(clk *clock) *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
		clk:      clk,
	}
}

func (mem *mockMem) isIO(address uint16) bool {
	return mem.io != nil && address >= 0xfe40 && address <= 0xfe7f
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if mem.isIO(address) {
		mem.io.SyncIO()
		mem.io.AdjustForIORead()
	}
	data := mem.internal[address]
	mem.accesses = append(mem.accesses, access{address: address, data: data, cycle: mem.clk.cycles})
	return data, nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if mem.unwritable != 0 && address == mem.unwritable {
		return errUnwritable
	}
	if mem.isIO(address) {
		mem.io.SyncIO()
		mem.io.AdjustForIOWrite()
	}
	mem.internal[address] = data
	mem.accesses = append(mem.accesses, access{write: true, address: address, data: data, cycle: mem.clk.cycles})
	return nil
}

// filter returns the accesses to the address
func (mem *mockMem) filter(address uint16) []access {
	var f []access
	for _, a := range mem.accesses {
		if a.address == address {
			f = append(f, a)
		}
	}
	return f
}

func (mem *mockMem) putInstructions(address uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[address+uint16(i)] = b
	}
	return address + uint16(len(bytes))
}

func (mem *mockMem) setVector(vector uint16, address uint16) {
	mem.internal[vector] = uint8(address)
	mem.internal[vector+1] = uint8(address >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", mem.internal[address], value, address)
	}
}

type harness struct {
	mc  *cpu.CPU
	mem *mockMem
	sch *scheduler.Scheduler
	irq *interrupts.Controller
	clk *clock
}

// newHarness creates a CPU with the program loaded at origin. the CPU has
// been reset
func newHarness(t *testing.T, program ...uint8) *harness {
	t.Helper()

	h := &harness{
		sch: scheduler.NewScheduler(scheduler.DefaultWrap),
		irq: interrupts.NewController(),
		clk: &clock{},
	}
	h.sch.AddPeripheral(h.irq)
	h.sch.AddPeripheral(h.clk)

	h.mem = newMockMem(h.clk)
	h.mem.setVector(cpubus.Reset, origin)
	h.mem.putInstructions(origin, program...)

	h.mc = cpu.NewCPU(h.mem, h.sch, h.irq)
	test.DemandSuccess(t, h.mc.Reset())

	return h
}

// step executes one instruction. the clock and the list of memory accesses
// are reset beforehand so that the cycle in an access is relative to the
// start of the instruction
func (h *harness) step(t *testing.T) execution.Result {
	t.Helper()
	h.clk.cycles = 0
	h.mem.accesses = h.mem.accesses[:0]
	_, err := h.mc.ExecuteInstruction()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, h.mc.LastResult.IsValid())
	return h.mc.LastResult
}
