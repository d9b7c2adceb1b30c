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

package scheduler

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/logger"
)

// Trigger is a point in time, measured in CPU cycles, that an event should
// happen.
type Trigger int64

// Never is the trigger value that is never due.
const Never Trigger = 0x7fffffff

// DefaultWrap is the value at which the total cycle count wraps.
const DefaultWrap Trigger = 0x3fffffff

func (t Trigger) String() string {
	if t == Never {
		return "never"
	}
	return fmt.Sprintf("%d", int64(t))
}

// Rebase returns the trigger adjusted by the wrap value. A trigger of Never
// is left unchanged.
func Rebase(t Trigger, wrap Trigger) Trigger {
	if t == Never {
		return Never
	}
	return t - wrap
}

// Peripheral is stepped by the scheduler in-line with instruction execution.
type Peripheral interface {
	Step(cycles int)
}

// Hardware is polled once per instruction. The returned duration is a hint to
// the host that the emulation is running ahead of real time and should pause.
type Hardware interface {
	Poll(cycles int) (time.Duration, error)
}

// Rebaser is implemented by any component that keeps triggers.
type Rebaser interface {
	RebaseTriggers(wrap Trigger)
}

// Scheduler keeps track of total cycles and advances the hardware.
type Scheduler struct {
	total Trigger
	wrap  Trigger

	peripherals []Peripheral
	hardware    []Hardware
	rebasers    []Rebaser
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The wrap value should normally be DefaultWrap.
func NewScheduler(wrap Trigger) *Scheduler {
	if wrap <= 0 || wrap >= Never {
		wrap = DefaultWrap
	}
	return &Scheduler{
		wrap: wrap,
	}
}

func (sch *Scheduler) String() string {
	return fmt.Sprintf("total=%d wrap=%d", sch.total, sch.wrap)
}

// Reset sets the total cycle count to zero. The registered peripherals and
// hardware are not changed.
func (sch *Scheduler) Reset() {
	sch.total = 0
}

// AddPeripheral adds a peripheral to the list of peripherals stepped by
// Step(). Peripherals are stepped in the order they are added.
func (sch *Scheduler) AddPeripheral(p Peripheral) {
	sch.peripherals = append(sch.peripherals, p)
}

// AddHardware adds to the list of hardware polled by Commit()
func (sch *Scheduler) AddHardware(h Hardware) {
	sch.hardware = append(sch.hardware, h)
}

// AddRebaser adds to the list of components notified when the total cycle
// count wraps.
func (sch *Scheduler) AddRebaser(r Rebaser) {
	sch.rebasers = append(sch.rebasers, r)
}

// Total returns the number of cycles since reset, or since the last wrap.
func (sch *Scheduler) Total() Trigger {
	return sch.total
}

// Wrap returns the value at which the total cycle count wraps.
func (sch *Scheduler) Wrap() Trigger {
	return sch.wrap
}

// Schedule returns a trigger for the number of cycles in the future.
func (sch *Scheduler) Schedule(delay int) Trigger {
	return sch.total + Trigger(delay)
}

// Reschedule returns a trigger that is the number of cycles after the
// previous trigger. Used by periodic events so that the period does not drift.
func (sch *Scheduler) Reschedule(delay int, previous Trigger) Trigger {
	return previous + Trigger(delay)
}

// Clear returns the trigger value that is never due.
func (sch *Scheduler) Clear() Trigger {
	return Never
}

// Due returns true if the trigger has been reached.
func (sch *Scheduler) Due(t Trigger) bool {
	return t != Never && t <= sch.total
}

// Step advances all peripherals by the number of cycles. Stepping by zero
// cycles does nothing.
func (sch *Scheduler) Step(cycles int) {
	if cycles == 0 {
		return
	}
	for _, p := range sch.peripherals {
		p.Step(cycles)
	}
}

// Commit adds the number of cycles to the total and polls the hardware. It
// should be called once the cost of an instruction is known.
//
// The returned duration is the largest hint returned by the polled hardware.
func (sch *Scheduler) Commit(cycles int) (time.Duration, error) {
	sch.total += Trigger(cycles)

	if sch.total > sch.wrap {
		sch.total -= sch.wrap
		for _, r := range sch.rebasers {
			r.RebaseTriggers(sch.wrap)
		}
		logger.Logf(logger.Allow, "scheduler", "cycle count wrapped (%d)", sch.wrap)
	}

	var throttle time.Duration
	for _, h := range sch.hardware {
		d, err := h.Poll(cycles)
		if err != nil {
			return 0, curated.Errorf("scheduler: %v", err)
		}
		throttle = max(throttle, d)
	}

	return throttle, nil
}
