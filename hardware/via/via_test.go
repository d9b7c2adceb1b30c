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

package via_test

import (
	"testing"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware/faults"
	"github.com/jetsetilly/gopherbeeb/hardware/interrupts"
	"github.com/jetsetilly/gopherbeeb/hardware/scheduler"
	"github.com/jetsetilly/gopherbeeb/hardware/via"
	"github.com/jetsetilly/gopherbeeb/test"
)

func newVIA() (*via.VIA, *interrupts.Controller, *scheduler.Scheduler) {
	irq := interrupts.NewController()
	sch := scheduler.NewScheduler(scheduler.DefaultWrap)
	v := via.NewVIA("sysvia", interrupts.SysVIA, irq, sch)
	return v, irq, sch
}

// read is a convenience function for tests that expect the read to succeed
func read(t *testing.T, v *via.VIA, reg int) uint8 {
	t.Helper()
	d, err := v.Read(reg)
	test.DemandSuccess(t, err)
	return d
}

func write(t *testing.T, v *via.VIA, reg int, data uint8) {
	t.Helper()
	test.DemandSuccess(t, v.Write(reg, data))
}

func TestReset(t *testing.T) {
	v, irq, _ := newVIA()

	test.ExpectEquality(t, read(t, v, via.IER), 0x80)
	test.ExpectEquality(t, read(t, v, via.IFR), 0x00)
	test.ExpectEquality(t, read(t, v, via.DDRA), 0x00)
	test.ExpectEquality(t, read(t, v, via.ORB), 0xff)
	test.ExpectEquality(t, read(t, v, via.ORANoHandshake), 0xff)
	test.ExpectEquality(t, read(t, v, via.T1LL), 0xff)
	test.ExpectEquality(t, read(t, v, via.T1LH), 0xff)
	test.ExpectEquality(t, read(t, v, via.T1CH), 0x7f)
	test.ExpectEquality(t, read(t, v, via.ACR), 0x00)
	test.ExpectEquality(t, read(t, v, via.PCR), 0x00)
	test.ExpectEquality(t, irq.Status(), 0)

	// configuration is forgotten on reset
	write(t, v, via.DDRA, 0xf0)
	write(t, v, via.IER, 0xff)
	v.Reset()
	test.ExpectEquality(t, read(t, v, via.DDRA), 0x00)
	test.ExpectEquality(t, read(t, v, via.IER), 0x80)
}

func TestPorts(t *testing.T) {
	v, _, _ := newVIA()

	write(t, v, via.DDRA, 0x0f)
	write(t, v, via.ORA, 0x5a)
	v.SetPortA(0x30)

	// output bits from ORA, input bits from the pins
	test.ExpectEquality(t, read(t, v, via.ORA), 0x3a)
	test.ExpectEquality(t, v.PortA(), 0xfa)

	write(t, v, via.DDRB, 0xff)
	write(t, v, via.ORB, 0x81)
	test.ExpectEquality(t, read(t, v, via.ORB), 0x81)
	test.ExpectEquality(t, v.PortB(), 0x81)

	// ORA without handshake writes the same register
	write(t, v, via.ORANoHandshake, 0x05)
	test.ExpectEquality(t, read(t, v, via.ORANoHandshake), 0x35)
}

func TestInterruptEnable(t *testing.T) {
	v, irq, _ := newVIA()

	write(t, v, via.IER, 0x82)
	test.ExpectEquality(t, read(t, v, via.IER), 0x82)

	// writing with bit 7 clear clears the bits
	write(t, v, via.IER, 0x02)
	test.ExpectEquality(t, read(t, v, via.IER), 0x80)

	write(t, v, via.IER, 0x82)
	test.DemandSuccess(t, v.Signal(via.FlagCA1))
	test.ExpectEquality(t, read(t, v, via.IFR), 0x82)
	test.ExpectEquality(t, irq.Status(), 0x01)

	// writing to the IFR clears the written bits
	write(t, v, via.IFR, via.FlagCA1)
	test.ExpectEquality(t, read(t, v, via.IFR), 0x00)
	test.ExpectEquality(t, irq.Status(), 0x00)

	// a flag that is not enabled does not set the top bit
	test.DemandSuccess(t, v.Signal(via.FlagCB1))
	test.ExpectEquality(t, read(t, v, via.IFR), 0x10)
	test.ExpectEquality(t, irq.Status(), 0x00)

	// enabling the flag afterwards raises the interrupt
	write(t, v, via.IER, 0x90)
	test.ExpectEquality(t, read(t, v, via.IFR), 0x90)
	test.ExpectEquality(t, irq.Status(), 0x01)

	// reading ORB clears CB1
	_ = read(t, v, via.ORB)
	test.ExpectEquality(t, read(t, v, via.IFR), 0x00)
	test.ExpectEquality(t, irq.Status(), 0x00)

	// reading ORA clears CA1 but ORA without handshake does not
	test.DemandSuccess(t, v.Signal(via.FlagCA1))
	_ = read(t, v, via.ORANoHandshake)
	test.ExpectEquality(t, read(t, v, via.IFR), 0x82)
	_ = read(t, v, via.ORA)
	test.ExpectEquality(t, read(t, v, via.IFR), 0x00)

	err := v.Signal(via.FlagTimer1)
	test.ExpectFailure(t, err)
	_, ok := curated.As[faults.ContractViolation](err)
	test.ExpectSuccess(t, ok)
}

func TestTimer1OneShot(t *testing.T) {
	v, irq, _ := newVIA()

	write(t, v, via.IER, 0xc0)
	write(t, v, via.T1CL, 10)
	write(t, v, via.T1CH, 0)
	test.ExpectEquality(t, read(t, v, via.T1CL), 10)

	// the counter holds 21 and must pass -2 before the interrupt is raised
	v.Step(23)
	test.ExpectEquality(t, read(t, v, via.IFR), 0x00)
	test.ExpectSuccess(t, irq.Idle())

	v.Step(1)
	test.ExpectEquality(t, read(t, v, via.IFR), 0xc0)
	test.ExpectEquality(t, irq.Status(), 0x01)
	test.ExpectEquality(t, irq.Countdown(), 0)

	// reading T1C-L clears the interrupt. the counter is negative
	test.ExpectEquality(t, read(t, v, via.T1CL), 0xff)
	test.ExpectEquality(t, read(t, v, via.IFR), 0x00)
	test.ExpectEquality(t, irq.Status(), 0x00)

	// one-shot timer does not fire again
	v.Step(1000)
	test.ExpectEquality(t, read(t, v, via.IFR), 0x00)

	// until the counter is written
	write(t, v, via.T1CH, 0)
	v.Step(24)
	test.ExpectEquality(t, read(t, v, via.IFR), 0xc0)
}

func TestTimer1Claim(t *testing.T) {
	v, irq, _ := newVIA()

	write(t, v, via.IER, 0xc0)
	write(t, v, via.T1CL, 10)
	write(t, v, via.T1CH, 0)

	// the step overshoots the interrupt point by two cycles. the countdown
	// accounts for that
	v.Step(26)
	test.ExpectEquality(t, irq.Countdown(), -2)

	// the interrupt is not claimed if it is not enabled
	irq.Reset()
	write(t, v, via.IER, 0x40)
	write(t, v, via.T1CH, 0)
	v.Step(24)
	test.ExpectEquality(t, read(t, v, via.IFR), 0x40)
	test.ExpectSuccess(t, irq.Idle())
	test.ExpectEquality(t, irq.Status(), 0x00)
}

func TestTimer1FreeRun(t *testing.T) {
	v, _, _ := newVIA()

	write(t, v, via.ACR, 0x40)
	write(t, v, via.T1CL, 10)
	write(t, v, via.T1CH, 0)

	for i := 0; i < 5; i++ {
		v.Step(23)
		test.ExpectEquality(t, read(t, v, via.IFR)&via.FlagTimer1, 0x00)
		v.Step(1)
		test.ExpectEquality(t, read(t, v, via.IFR)&via.FlagTimer1, via.FlagTimer1)
		write(t, v, via.IFR, via.FlagTimer1)
	}

	// changing the latch takes effect on the next reload
	write(t, v, via.T1LL, 20)
	write(t, v, via.T1LH, 0)
	v.Step(43)
	test.ExpectEquality(t, read(t, v, via.IFR)&via.FlagTimer1, 0x00)
	v.Step(1)
	test.ExpectEquality(t, read(t, v, via.IFR)&via.FlagTimer1, via.FlagTimer1)
}

func TestTimer1PB7(t *testing.T) {
	v, _, _ := newVIA()

	write(t, v, via.DDRB, 0xff)
	write(t, v, via.ORB, 0xff)
	write(t, v, via.ACR, 0xc0)

	// writing the counter sets PB7 low
	write(t, v, via.T1CL, 10)
	write(t, v, via.T1CH, 0)
	test.ExpectEquality(t, read(t, v, via.ORB), 0x7f)

	step := func(cycles int) {
		for i := 0; i < cycles; i++ {
			v.Step(1)
		}
	}

	step(24)
	test.ExpectEquality(t, read(t, v, via.ORB), 0xff)
	step(24)
	test.ExpectEquality(t, read(t, v, via.ORB), 0x7f)
}

func TestTimer2(t *testing.T) {
	v, irq, _ := newVIA()

	write(t, v, via.IER, 0xa0)
	write(t, v, via.T2CL, 5)
	write(t, v, via.T2CH, 0)

	v.Step(13)
	test.ExpectEquality(t, read(t, v, via.IFR), 0x00)
	v.Step(1)
	test.ExpectEquality(t, read(t, v, via.IFR), 0xa0)
	test.ExpectEquality(t, irq.Countdown(), 0)

	// reading T2C-L clears the interrupt
	test.ExpectEquality(t, read(t, v, via.T2CL), 0xfe)
	test.ExpectEquality(t, read(t, v, via.IFR), 0x00)

	// timer 2 is always one-shot. the counter keeps going from 0xffff
	v.Step(1)
	test.ExpectEquality(t, read(t, v, via.T2CH), 0xff)
	v.Step(0x20000)
	test.ExpectEquality(t, read(t, v, via.IFR)&via.FlagTimer2, 0x00)

	// pulse counting mode stops the counter
	write(t, v, via.ACR, 0x20)
	write(t, v, via.T2CH, 0)
	v.Step(100)
	test.ExpectEquality(t, read(t, v, via.T2CL), 5)
	test.ExpectEquality(t, read(t, v, via.IFR)&via.FlagTimer2, 0x00)
}

func TestShiftRegister(t *testing.T) {
	v, _, sch := newVIA()

	// shift register disabled. access is allowed but nothing happens
	write(t, v, via.SR, 0x55)
	test.ExpectEquality(t, read(t, v, via.SR), 0x55)

	// mode 6. shift out under phi2
	write(t, v, via.ACR, 0x18)
	write(t, v, via.SR, 0xaa)

	_, err := sch.Commit(15)
	test.DemandSuccess(t, err)
	v.Step(1)
	test.ExpectEquality(t, read(t, v, via.IFR)&via.FlagSR, 0x00)

	_, err = sch.Commit(1)
	test.DemandSuccess(t, err)
	v.Step(1)
	test.ExpectEquality(t, read(t, v, via.IFR)&via.FlagSR, via.FlagSR)

	// accessing the SR clears the flag and starts another shift
	test.ExpectEquality(t, read(t, v, via.SR), 0xaa)
	test.ExpectEquality(t, read(t, v, via.IFR)&via.FlagSR, 0x00)
	_, err = sch.Commit(16)
	test.DemandSuccess(t, err)
	v.Step(1)
	test.ExpectEquality(t, read(t, v, via.IFR)&via.FlagSR, via.FlagSR)

	// other modes are not supported
	write(t, v, via.ACR, 0x04)
	_, err = v.Read(via.SR)
	test.ExpectFailure(t, err)
	_, ok := curated.As[faults.UnsupportedMode](err)
	test.ExpectSuccess(t, ok)
	test.ExpectFailure(t, v.Write(via.SR, 0x00))
}

func TestShiftRegisterRebase(t *testing.T) {
	irq := interrupts.NewController()
	sch := scheduler.NewScheduler(100)
	v := via.NewVIA("uservia", interrupts.UserVIA, irq, sch)
	sch.AddRebaser(v)

	_, err := sch.Commit(95)
	test.DemandSuccess(t, err)
	write(t, v, via.ACR, 0x18)

	// the total wraps to 5. the trigger must follow it
	_, err = sch.Commit(10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sch.Total(), 5)
	v.Step(1)
	test.ExpectEquality(t, read(t, v, via.IFR)&via.FlagSR, 0x00)

	_, err = sch.Commit(6)
	test.DemandSuccess(t, err)
	v.Step(1)
	test.ExpectEquality(t, read(t, v, via.IFR)&via.FlagSR, via.FlagSR)
}

func TestPeripheralControl(t *testing.T) {
	v, _, _ := newVIA()

	write(t, v, via.PCR, 0x0e)
	test.ExpectSuccess(t, v.CA2())
	test.ExpectFailure(t, v.CB2())
	write(t, v, via.PCR, 0xec)
	test.ExpectFailure(t, v.CA2())
	test.ExpectSuccess(t, v.CB2())

	// input modes are accepted
	write(t, v, via.PCR, 0x25)
	test.ExpectEquality(t, read(t, v, via.PCR), 0x25)

	for _, pcr := range []uint8{0x08, 0x0a, 0x80, 0xa0} {
		err := v.Write(via.PCR, pcr)
		test.ExpectFailure(t, err, pcr)
		_, ok := curated.As[faults.UnsupportedMode](err)
		test.ExpectSuccess(t, ok, pcr)
	}

	// a failed write does not change the register
	test.ExpectEquality(t, read(t, v, via.PCR), 0x25)
}

func TestRegisterRange(t *testing.T) {
	v, _, _ := newVIA()

	_, err := v.Read(via.NumRegisters)
	test.ExpectFailure(t, err)
	_, ok := curated.As[faults.ContractViolation](err)
	test.ExpectSuccess(t, ok)

	test.ExpectFailure(t, v.Write(-1, 0))
	test.ExpectFailure(t, v.Write(via.NumRegisters, 0))
}
