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

package via

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherbeeb/hardware/faults"
	"github.com/jetsetilly/gopherbeeb/hardware/interrupts"
	"github.com/jetsetilly/gopherbeeb/hardware/scheduler"
	"github.com/jetsetilly/gopherbeeb/logger"
)

// Interrupts is the part of the interrupt controller used by the VIA.
type Interrupts interface {
	Raise(src interrupts.Source)
	Lower(src interrupts.Source)
	Claim(cycles int)
}

// Triggers is the part of the scheduler used by the VIA.
type Triggers interface {
	Schedule(delay int) scheduler.Trigger
	Due(t scheduler.Trigger) bool
}

// VIA implements a single 6522 chip.
type VIA struct {
	name string
	src  interrupts.Source
	irq  Interrupts
	sch  Triggers

	// output registers and the state of the input pins
	ora uint8
	orb uint8
	ira uint8
	irb uint8

	ddra uint8
	ddrb uint8

	acr uint8
	pcr uint8
	ifr uint8
	ier uint8
	sr  uint8

	// latches hold 1MHz values. counters hold twice the visible value plus one
	t1l int
	t2l int
	t1c int
	t2c int

	// the timer has raised its interrupt since the counter was last written
	t1hasshot bool
	t2hasshot bool

	// the T1 counter has crossed the interrupt point and has not been
	// reloaded since
	t1int bool

	ca2 bool
	cb2 bool

	srTrigger scheduler.Trigger
}

// NewVIA is the preferred method of initialisation for the VIA type. The name
// is used in log entries and in error messages.
func NewVIA(name string, src interrupts.Source, irq Interrupts, sch Triggers) *VIA {
	via := &VIA{
		name: name,
		src:  src,
		irq:  irq,
		sch:  sch,
	}
	via.Reset()
	return via
}

func (via *VIA) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: ", via.name))
	s.WriteString(fmt.Sprintf("ORA=%02x ORB=%02x DDRA=%02x DDRB=%02x ", via.ora, via.orb, via.ddra, via.ddrb))
	s.WriteString(fmt.Sprintf("ACR=%02x PCR=%02x IFR=%02x IER=%02x ", via.acr, via.pcr, via.ifr, via.ier|FlagIRQ))
	s.WriteString(fmt.Sprintf("T1=%d/%04x T2=%d/%04x", via.t1c, via.t1l, via.t2c, via.t2l))
	return s.String()
}

// Name returns the name given to NewVIA().
func (via *VIA) Name() string {
	return via.name
}

// Reset the VIA to its power on state.
func (via *VIA) Reset() {
	via.ora = 0xff
	via.orb = 0xff
	via.ira = 0xff
	via.irb = 0xff
	via.ddra = 0
	via.ddrb = 0
	via.acr = 0
	via.pcr = 0
	via.ifr = 0
	via.ier = 0
	via.sr = 0
	via.t1l = 0xffff
	via.t2l = 0xffff
	via.t1c = 0xffff
	via.t2c = 0xffff
	via.t1hasshot = false
	via.t2hasshot = false
	via.t1int = false
	via.ca2 = false
	via.cb2 = false
	via.srTrigger = scheduler.Never
	via.updateIFR()
}

// updateIFR sets the top bit of the IFR and the state of the interrupt line
func (via *VIA) updateIFR() {
	if via.ifr&via.ier&^FlagIRQ != 0 {
		via.ifr |= FlagIRQ
		via.irq.Raise(via.src)
	} else {
		via.ifr &^= FlagIRQ
		via.irq.Lower(via.src)
	}
}

func (via *VIA) registerError(reg int) error {
	return faults.ContractViolation{Component: via.name, Detail: "register out of range", Value: reg}
}

func (via *VIA) shiftMode() int {
	return int((via.acr & acrShiftMode) >> acrShiftModeShift)
}

// cb2Independent returns true if CB2 is an input that is not cleared by
// accesses to ORB
func (via *VIA) cb2Independent() bool {
	return via.pcr&pcrCB2Handshake == 0 && via.pcr&pcrCB2Independent != 0
}

func (via *VIA) clearCB() {
	via.ifr &^= FlagCB1
	if !via.cb2Independent() {
		via.ifr &^= FlagCB2
	}
	via.updateIFR()
}

func (via *VIA) clearCA() {
	via.ifr &^= FlagCA1 | FlagCA2
	via.updateIFR()
}

// Read returns the value of the register at the offset. Some reads have side
// effects, the T1C-L read for example clears the timer 1 interrupt flag.
func (via *VIA) Read(reg int) (uint8, error) {
	switch reg {
	case ORB:
		via.clearCB()
		return (via.orb & via.ddrb) | (via.irb &^ via.ddrb), nil
	case ORA:
		via.clearCA()
		return (via.ora & via.ddra) | (via.ira &^ via.ddra), nil
	case ORANoHandshake:
		return (via.ora & via.ddra) | (via.ira &^ via.ddra), nil
	case DDRB:
		return via.ddrb, nil
	case DDRA:
		return via.ddra, nil
	case T1CL:
		via.ifr &^= FlagTimer1
		via.updateIFR()
		if via.t1c < 0 {
			return 0xff, nil
		}
		return uint8((via.t1c / 2) & 0xff), nil
	case T1CH:
		return uint8((via.t1c >> 9) & 0xff), nil
	case T1LL:
		return uint8(via.t1l & 0xff), nil
	case T1LH:
		return uint8((via.t1l >> 8) & 0xff), nil
	case T2CL:
		via.ifr &^= FlagTimer2
		via.updateIFR()
		if via.t2c < 0 {
			return uint8(((via.t2c - 1) / 2) & 0xff), nil
		}
		return uint8((via.t2c / 2) & 0xff), nil
	case T2CH:
		return uint8((via.t2c >> 9) & 0xff), nil
	case SR:
		if err := via.shiftAccess(); err != nil {
			return 0, err
		}
		return via.sr, nil
	case ACR:
		return via.acr, nil
	case PCR:
		return via.pcr, nil
	case IFR:
		via.updateIFR()
		return via.ifr, nil
	case IER:
		return via.ier | FlagIRQ, nil
	}

	return 0, via.registerError(reg)
}

// Write the data to the register at the offset.
func (via *VIA) Write(reg int, data uint8) error {
	switch reg {
	case ORB:
		via.orb = data
		via.clearCB()
	case ORA:
		via.ora = data
		via.clearCA()
	case ORANoHandshake:
		via.ora = data
	case DDRB:
		via.ddrb = data
	case DDRA:
		via.ddra = data
	case T1CL, T1LL:
		via.t1l = (via.t1l & 0xff00) | int(data)
	case T1CH:
		via.t1l = (via.t1l & 0x00ff) | (int(data) << 8)
		via.t1c = via.t1l*2 + 1
		via.ifr &^= FlagTimer1
		if via.acr&acrT1OutputPB7 != 0 {
			via.orb &= 0x7f
			via.irb &= 0x7f
		}
		via.updateIFR()
		via.t1hasshot = false
		via.t1int = false
	case T1LH:
		via.t1l = (via.t1l & 0x00ff) | (int(data) << 8)
		via.ifr &^= FlagTimer1
		via.updateIFR()
	case T2CL:
		via.t2l = (via.t2l & 0xff00) | int(data)
	case T2CH:
		via.t2l = (via.t2l & 0x00ff) | (int(data) << 8)
		via.t2c = via.t2l*2 + 1
		via.ifr &^= FlagTimer2
		via.updateIFR()
		via.t2hasshot = false
	case SR:
		if err := via.shiftAccess(); err != nil {
			return err
		}
		via.sr = data
	case ACR:
		via.writeACR(data)
	case PCR:
		return via.writePCR(data)
	case IFR:
		via.ifr &^= data
		via.updateIFR()
	case IER:
		if data&FlagIRQ != 0 {
			via.ier |= data
		} else {
			via.ier &^= data
		}
		via.ier &^= FlagIRQ
		via.updateIFR()
	default:
		return via.registerError(reg)
	}

	return nil
}

func (via *VIA) writeACR(data uint8) {
	prev := via.acr
	via.acr = data

	if (prev^data)&acrT1FreeRun != 0 {
		if data&acrT1FreeRun != 0 {
			logger.Logf(logger.Allow, via.name, "timer 1 free-run mode")
		} else {
			logger.Logf(logger.Allow, via.name, "timer 1 one-shot mode")
		}
	}

	if (prev^data)&acrShiftMode != 0 {
		logger.Logf(logger.Allow, via.name, "shift register mode %d", via.shiftMode())
	}

	via.updateShift(false)
}

func (via *VIA) writePCR(data uint8) error {
	switch data & pcrCA2Control {
	case pcrCA2Handshake, pcrCA2Pulse:
		return faults.UnsupportedMode{Component: via.name, Mode: "CA2 handshake output", Value: data}
	}
	switch data & pcrCB2Control {
	case pcrCB2Handshake, pcrCB2Pulse:
		return faults.UnsupportedMode{Component: via.name, Mode: "CB2 handshake output", Value: data}
	}

	via.pcr = data

	switch data & pcrCA2Control {
	case pcrCA2OutputLow:
		via.ca2 = false
	case pcrCA2OutputHigh:
		via.ca2 = true
	}

	switch data & pcrCB2Control {
	case pcrCB2OutputLow:
		via.cb2 = false
	case pcrCB2OutputHigh:
		via.cb2 = true
	}

	return nil
}

// shiftAccess is called whenever the SR is read or written
func (via *VIA) shiftAccess() error {
	switch via.shiftMode() {
	case shiftDisabled, shiftOutUnderPhi2:
	default:
		return faults.UnsupportedMode{Component: via.name, Mode: "shift register", Value: uint8(via.shiftMode())}
	}
	via.updateShift(true)
	return nil
}

// updateShift starts the shift register if necessary. an access to the SR
// clears the shift register interrupt flag
func (via *VIA) updateShift(access bool) {
	if access {
		via.ifr &^= FlagSR
		via.updateIFR()
	}

	if via.shiftMode() == shiftOutUnderPhi2 && via.srTrigger == scheduler.Never {
		via.srTrigger = via.sch.Schedule(shiftCompleteCycles)
	}
}

// shiftComplete is called when the SR trigger is due
func (via *VIA) shiftComplete() {
	if via.shiftMode() == shiftOutUnderPhi2 && via.ifr&FlagSR == 0 {
		via.ifr |= FlagSR
		via.updateIFR()
	}
	via.srTrigger = scheduler.Never
}

// Step implements the scheduler.Peripheral interface. The number of cycles
// is in CPU (2MHz) cycles.
func (via *VIA) Step(cycles int) {
	via.t1c -= cycles
	if via.acr&acrT2PulseCount == 0 {
		via.t2c -= cycles
	}

	if via.t1c < 0 || via.t2c < 0 {
		via.pollTimers()
	}

	if via.sch.Due(via.srTrigger) {
		via.shiftComplete()
	}
}

func (via *VIA) pollTimers() {
	if via.t1c < -2 && !via.t1int {
		via.t1int = true
		if !via.t1hasshot || via.acr&acrT1FreeRun != 0 {
			via.ifr |= FlagTimer1
			via.updateIFR()

			if via.acr&acrT1OutputPB7 != 0 {
				via.orb ^= 0x80
				via.irb ^= 0x80
			}

			// the interrupt is serviced some cycles after the counter
			// crossed zero. the countdown accounts for the cycles already
			// passed in this step
			if via.ier&FlagTimer1 != 0 {
				via.irq.Claim(3 + via.t1c)
			}

			via.t1hasshot = true
		}
	}

	// a one-shot timer keeps counting down. it does not fire again until the
	// counter is written
	if via.t1c < -3 && via.acr&acrT1FreeRun != 0 {
		via.t1c += via.t1l*2 + 4
		via.t1int = false
	}

	if via.t2c < -2 && !via.t2hasshot {
		via.ifr |= FlagTimer2
		via.updateIFR()

		if via.ier&FlagTimer2 != 0 {
			via.irq.Claim(3 + via.t2c)
		}

		via.t2hasshot = true
	}

	// timer 2 is not reloaded from the latch
	if via.t2c < -3 {
		via.t2c += 0x20000
	}
}

// RebaseTriggers implements the scheduler.Rebaser interface.
func (via *VIA) RebaseTriggers(wrap scheduler.Trigger) {
	via.srTrigger = scheduler.Rebase(via.srTrigger, wrap)
}

// SetPortA sets the state of the PA input pins.
func (via *VIA) SetPortA(v uint8) {
	via.ira = v
}

// SetPortB sets the state of the PB input pins.
func (via *VIA) SetPortB(v uint8) {
	via.irb = v
}

// PortA returns the state of the PA pins. Pins that are configured as inputs
// are reported as high.
func (via *VIA) PortA() uint8 {
	return via.ora | ^via.ddra
}

// PortB returns the state of the PB pins. Pins that are configured as inputs
// are reported as high.
func (via *VIA) PortB() uint8 {
	return via.orb | ^via.ddrb
}

// CA2 returns the output level of the CA2 line.
func (via *VIA) CA2() bool {
	return via.ca2
}

// CB2 returns the output level of the CB2 line.
func (via *VIA) CB2() bool {
	return via.cb2
}

// Signal sets flags in the IFR as though an active edge had been seen on one
// of the control lines. Only the CA1, CA2, CB1 and CB2 bits are accepted.
func (via *VIA) Signal(flags uint8) error {
	if flags&^(FlagCA1|FlagCA2|FlagCB1|FlagCB2) != 0 {
		return faults.ContractViolation{Component: via.name, Detail: "not a control line flag", Value: int(flags)}
	}
	via.ifr |= flags
	via.updateIFR()
	return nil
}
