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

package interrupts_test

import (
	"testing"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware/faults"
	"github.com/jetsetilly/gopherbeeb/hardware/interrupts"
	"github.com/jetsetilly/gopherbeeb/test"
)

func TestStatusWord(t *testing.T) {
	ctrl := interrupts.NewController()
	test.ExpectEquality(t, ctrl.Status(), 0)
	test.ExpectSuccess(t, ctrl.Idle())

	ctrl.Raise(interrupts.SysVIA)
	ctrl.Raise(interrupts.Serial)
	test.ExpectEquality(t, ctrl.Status(), 0x05)

	ctrl.Lower(interrupts.SysVIA)
	test.ExpectEquality(t, ctrl.Status(), 0x04)

	// lowering a bit that is not raised is fine
	ctrl.Lower(interrupts.Tube)
	test.ExpectEquality(t, ctrl.Status(), 0x04)

	ctrl.Reset()
	test.ExpectEquality(t, ctrl.Status(), 0)
}

func TestValidSource(t *testing.T) {
	test.ExpectSuccess(t, interrupts.HardDisc.Valid())
	test.ExpectSuccess(t, interrupts.NMI.Valid())

	err := interrupts.Source(8).Valid()
	test.ExpectFailure(t, err)
	_, ok := curated.As[faults.ContractViolation](err)
	test.ExpectSuccess(t, ok)

	test.ExpectFailure(t, interrupts.Source(-1).Valid())
	test.ExpectEquality(t, interrupts.UserVIA.String(), "UserVIA")
}

func TestCheck(t *testing.T) {
	ctrl := interrupts.NewController()

	// nothing raised
	ctrl.Begin()
	ctrl.Check()
	test.ExpectFailure(t, ctrl.Due())
	test.ExpectSuccess(t, ctrl.Idle())

	// a non-timer source is serviced immediately
	ctrl.Raise(interrupts.Serial)
	ctrl.Check()
	test.ExpectSuccess(t, ctrl.Due())
	test.ExpectEquality(t, ctrl.Countdown(), 0)

	// the countdown must pass the threshold
	test.ExpectFailure(t, ctrl.Service(false, false, false, 0))
	ctrl.Step(2)
	test.ExpectSuccess(t, ctrl.Service(false, false, false, 0))
	test.ExpectSuccess(t, ctrl.Idle())

	// the NMI bit is never considered
	ctrl.Reset()
	ctrl.Raise(interrupts.NMI)
	ctrl.Begin()
	ctrl.Check()
	test.ExpectFailure(t, ctrl.Due())
}

func TestClaim(t *testing.T) {
	ctrl := interrupts.NewController()

	// the first claim wins
	ctrl.Claim(1)
	ctrl.Claim(5)
	test.ExpectEquality(t, ctrl.Countdown(), 1)

	// a claimed countdown is not reset by Check() when there is a request
	ctrl.Raise(interrupts.SysVIA)
	ctrl.Begin()
	ctrl.Check()
	test.ExpectEquality(t, ctrl.Countdown(), 1)

	ctrl.Step(2)
	test.ExpectEquality(t, ctrl.Countdown(), -1)
	test.ExpectFailure(t, ctrl.Service(false, false, false, 0))
	ctrl.Step(1)
	test.ExpectSuccess(t, ctrl.Service(false, false, false, 0))

	// without a request the countdown is made idle
	ctrl.Lower(interrupts.SysVIA)
	ctrl.Claim(10)
	ctrl.Begin()
	ctrl.Check()
	test.ExpectSuccess(t, ctrl.Idle())

	// an idle countdown is not stepped
	ctrl.Step(100)
	test.ExpectEquality(t, ctrl.Countdown(), interrupts.NoTimerInterrupt)
}

func TestServiceLatency(t *testing.T) {
	ctrl := interrupts.NewController()
	ctrl.Raise(interrupts.UserVIA)

	due := func() {
		ctrl.Begin()
		ctrl.Check()
		ctrl.Step(10)
	}

	// interrupts disabled
	due()
	test.ExpectFailure(t, ctrl.Service(true, false, false, 0))

	// disabled by this instruction. the interrupt still happens
	due()
	test.ExpectSuccess(t, ctrl.Service(true, true, false, 0))

	// enabled by this instruction. the interrupt waits
	due()
	test.ExpectFailure(t, ctrl.Service(false, false, true, 0))

	// IO cycles push the threshold back
	ctrl.Reset()
	ctrl.Raise(interrupts.UserVIA)
	ctrl.Begin()
	ctrl.Check()
	ctrl.Step(2)
	test.ExpectFailure(t, ctrl.Service(false, false, false, 1))
	ctrl.Step(1)
	test.ExpectSuccess(t, ctrl.Service(false, false, false, 1))
}
