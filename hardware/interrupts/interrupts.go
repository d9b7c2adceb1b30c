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

package interrupts

import (
	"fmt"

	"github.com/jetsetilly/gopherbeeb/hardware/faults"
)

// Source identifies a source of interrupts. The value is the bit number in
// the status word.
type Source int

// List of interrupt sources.
const (
	SysVIA Source = iota
	UserVIA
	Serial
	Tube
	Teletext
	HardDisc

	// NMI is reserved. nothing drives it and it is never considered for IRQ
	// service
	NMI Source = 7
)

func (src Source) String() string {
	switch src {
	case SysVIA:
		return "SysVIA"
	case UserVIA:
		return "UserVIA"
	case Serial:
		return "Serial"
	case Tube:
		return "Tube"
	case Teletext:
		return "Teletext"
	case HardDisc:
		return "HardDisc"
	case NMI:
		return "NMI"
	}
	return fmt.Sprintf("source %d", int(src))
}

// Valid returns a ContractViolation error if the source is outside of the
// range of the status word.
func (src Source) Valid() error {
	if src < 0 || src > NMI {
		return faults.ContractViolation{Component: "interrupts", Detail: "invalid interrupt source", Value: int(src)}
	}
	return nil
}

// the bits of the status word that are considered for IRQ service
const irqMask = 0x7f

// NoTimerInterrupt is the value of the countdown when it is idle.
const NoTimerInterrupt = -1000000

// the number of cycles before the end of an instruction that an interrupt is
// noticed. any extra IO cycles in the instruction move the point further back
const serviceThreshold = -2

// Controller maintains the interrupt status word and decides when an
// interrupt is serviced.
type Controller struct {
	status uint8

	// due is reset at the start of every instruction
	due bool

	// cycles until a timer interrupt should be serviced
	countdown int
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	ctrl := &Controller{}
	ctrl.Reset()
	return ctrl
}

func (ctrl *Controller) String() string {
	if ctrl.countdown == NoTimerInterrupt {
		return fmt.Sprintf("status=%08b due=%v countdown=idle", ctrl.status, ctrl.due)
	}
	return fmt.Sprintf("status=%08b due=%v countdown=%d", ctrl.status, ctrl.due, ctrl.countdown)
}

// Reset clears the status word and the countdown.
func (ctrl *Controller) Reset() {
	ctrl.status = 0
	ctrl.due = false
	ctrl.countdown = NoTimerInterrupt
}

// Raise sets the bit for the source in the status word.
func (ctrl *Controller) Raise(src Source) {
	ctrl.status |= 1 << src
}

// Lower clears the bit for the source in the status word.
func (ctrl *Controller) Lower(src Source) {
	ctrl.status &^= 1 << src
}

// Status returns the status word.
func (ctrl *Controller) Status() uint8 {
	return ctrl.status
}

// Due returns true if an interrupt has been noticed during the current
// instruction.
func (ctrl *Controller) Due() bool {
	return ctrl.due
}

// Countdown returns the number of cycles until a timer interrupt is serviced.
// Returns NoTimerInterrupt if no timer has claimed the countdown.
func (ctrl *Controller) Countdown() int {
	return ctrl.countdown
}

// Idle returns true if the countdown has not been claimed.
func (ctrl *Controller) Idle() bool {
	return ctrl.countdown == NoTimerInterrupt
}

// Claim sets the countdown if it is idle. The first timer to claim the
// countdown wins.
func (ctrl *Controller) Claim(cycles int) {
	if ctrl.countdown == NoTimerInterrupt {
		ctrl.countdown = cycles
	}
}

// Step implements the scheduler.Peripheral interface.
func (ctrl *Controller) Step(cycles int) {
	if ctrl.countdown != NoTimerInterrupt {
		ctrl.countdown -= cycles
	}
}

// Begin should be called at the start of every instruction.
func (ctrl *Controller) Begin() {
	ctrl.due = false
}

// Check notices any request in the status word. If the request did not come
// from a timer then the countdown is set so that the interrupt is serviced
// immediately.
func (ctrl *Controller) Check() {
	if ctrl.due {
		return
	}

	ctrl.due = ctrl.status&irqMask != 0
	if !ctrl.due {
		ctrl.countdown = NoTimerInterrupt
	} else if ctrl.countdown == NoTimerInterrupt {
		ctrl.countdown = 0
	}
}

// Service decides whether an interrupt should be serviced at the end of the
// current instruction. The arguments describe the state of the CPU's
// interrupt disable flag and the number of IO cycles in the instruction.
//
// If the result is true the countdown is made idle and the CPU must perform
// the interrupt sequence.
func (ctrl *Controller) Service(disabled bool, justSet bool, justCleared bool, ioCycles int) bool {
	if !ctrl.due {
		return false
	}
	if disabled && !justSet {
		return false
	}
	if justCleared {
		return false
	}
	if ctrl.countdown > serviceThreshold-ioCycles {
		return false
	}
	ctrl.countdown = NoTimerInterrupt
	return true
}
