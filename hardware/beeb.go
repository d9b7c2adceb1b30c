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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu"
	"github.com/jetsetilly/gopherbeeb/hardware/interrupts"
	"github.com/jetsetilly/gopherbeeb/hardware/memory"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherbeeb/hardware/scheduler"
	"github.com/jetsetilly/gopherbeeb/hardware/via"
	"github.com/jetsetilly/gopherbeeb/logger"
)

// plumbable is implemented by memory that has the VIAs mapped into it.
type plumbable interface {
	Plumb(timing memory.IOTiming, sysVIA memory.VIA, userVIA memory.VIA)
}

// Beeb struct is the main container for the emulated components of the BBC
// Micro.
type Beeb struct {
	CPU        *cpu.CPU
	Mem        cpubus.Memory
	Scheduler  *scheduler.Scheduler
	Interrupts *interrupts.Controller
	SysVIA     *via.VIA
	UserVIA    *via.VIA

	// the number of instructions and cycles since the last reset. unlike the
	// scheduler total these values never wrap
	instructions int64
	cycles       int64
}

// NewBeeb creates a new Beeb and everything associated with the hardware.
// Reset() should be called before the first instruction is executed.
func NewBeeb(mem cpubus.Memory) *Beeb {
	return newBeeb(mem, scheduler.DefaultWrap)
}

func newBeeb(mem cpubus.Memory, wrap scheduler.Trigger) *Beeb {
	beeb := &Beeb{
		Mem:        mem,
		Scheduler:  scheduler.NewScheduler(wrap),
		Interrupts: interrupts.NewController(),
	}

	beeb.SysVIA = via.NewVIA("sysvia", interrupts.SysVIA, beeb.Interrupts, beeb.Scheduler)
	beeb.UserVIA = via.NewVIA("uservia", interrupts.UserVIA, beeb.Interrupts, beeb.Scheduler)
	beeb.CPU = cpu.NewCPU(mem, beeb.Scheduler, beeb.Interrupts)

	// the interrupt countdown must be stepped before the VIAs so that a timer
	// claiming the countdown during a step is not charged for that step
	beeb.Scheduler.AddPeripheral(beeb.Interrupts)
	beeb.Scheduler.AddPeripheral(beeb.SysVIA)
	beeb.Scheduler.AddPeripheral(beeb.UserVIA)

	beeb.Scheduler.AddRebaser(beeb.SysVIA)
	beeb.Scheduler.AddRebaser(beeb.UserVIA)

	if m, ok := mem.(plumbable); ok {
		m.Plumb(beeb.CPU, beeb.SysVIA, beeb.UserVIA)
	}

	return beeb
}

func (beeb *Beeb) String() string {
	return fmt.Sprintf("%s\n%s\n%s\n%s", beeb.CPU, beeb.Interrupts, beeb.SysVIA, beeb.UserVIA)
}

// Reset emulates the power on sequence of the machine
//   - reset the scheduler and the interrupt controller
//   - reset both VIAs
//   - reset the CPU and load the reset address into the PC
func (beeb *Beeb) Reset() error {
	beeb.Scheduler.Reset()
	beeb.Interrupts.Reset()
	beeb.SysVIA.Reset()
	beeb.UserVIA.Reset()
	beeb.instructions = 0
	beeb.cycles = 0

	err := beeb.CPU.Reset()
	if err != nil {
		return curated.Errorf("beeb: %v", err)
	}

	logger.Logf(logger.Allow, "beeb", "reset (PC=%#04x)", beeb.CPU.PC.Address())

	return nil
}

// TotalCycles returns the scheduler's cycle count. The value wraps as
// described by the scheduler package.
func (beeb *Beeb) TotalCycles() scheduler.Trigger {
	return beeb.Scheduler.Total()
}

// Instructions returns the number of instructions executed since the last
// reset.
func (beeb *Beeb) Instructions() int64 {
	return beeb.instructions
}

// Cycles returns the number of cycles since the last reset, including the
// cycles spent servicing interrupts. The value does not wrap.
func (beeb *Beeb) Cycles() int64 {
	return beeb.cycles
}

// SetInterruptSource raises the interrupt request for the source. Used by
// hardware outside of the core emulation.
func (beeb *Beeb) SetInterruptSource(src interrupts.Source) error {
	if err := src.Valid(); err != nil {
		return curated.Errorf("beeb: %v", err)
	}
	beeb.Interrupts.Raise(src)
	return nil
}

// ClearInterruptSource lowers the interrupt request for the source.
func (beeb *Beeb) ClearInterruptSource(src interrupts.Source) error {
	if err := src.Valid(); err != nil {
		return curated.Errorf("beeb: %v", err)
	}
	beeb.Interrupts.Lower(src)
	return nil
}

// InterruptStatus returns the interrupt status word. One bit per source.
func (beeb *Beeb) InterruptStatus() uint8 {
	return beeb.Interrupts.Status()
}

// ScheduleTrigger returns a trigger for the number of cycles in the future.
func (beeb *Beeb) ScheduleTrigger(delay int) scheduler.Trigger {
	return beeb.Scheduler.Schedule(delay)
}

// RescheduleTrigger returns a trigger that is the number of cycles after the
// previous trigger.
func (beeb *Beeb) RescheduleTrigger(delay int, previous scheduler.Trigger) scheduler.Trigger {
	return beeb.Scheduler.Reschedule(delay, previous)
}

// ClearTrigger returns a trigger that is never due.
func (beeb *Beeb) ClearTrigger() scheduler.Trigger {
	return beeb.Scheduler.Clear()
}

// TriggerDue returns true if the trigger has been reached.
func (beeb *Beeb) TriggerDue(t scheduler.Trigger) bool {
	return beeb.Scheduler.Due(t)
}

// AddRebaser registers a component that keeps triggers. It will be notified
// when the cycle count wraps.
func (beeb *Beeb) AddRebaser(r scheduler.Rebaser) {
	beeb.Scheduler.AddRebaser(r)
}

// AddHardware registers a component that is polled once per instruction.
func (beeb *Beeb) AddHardware(h scheduler.Hardware) {
	beeb.Scheduler.AddHardware(h)
}

// AddPeripheral registers a component that is stepped in-line with
// instruction execution. Peripherals are stepped after the VIAs.
func (beeb *Beeb) AddPeripheral(p scheduler.Peripheral) {
	beeb.Scheduler.AddPeripheral(p)
}
