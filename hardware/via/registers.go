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

// Register offsets.
const (
	ORB = iota
	ORA
	DDRB
	DDRA
	T1CL
	T1CH
	T1LL
	T1LH
	T2CL
	T2CH
	SR
	ACR
	PCR
	IFR
	IER
	ORANoHandshake

	NumRegisters
)

// Bits in the interrupt flag and interrupt enable registers.
const (
	FlagCA2    uint8 = 0x01
	FlagCA1    uint8 = 0x02
	FlagSR     uint8 = 0x04
	FlagCB2    uint8 = 0x08
	FlagCB1    uint8 = 0x10
	FlagTimer2 uint8 = 0x20
	FlagTimer1 uint8 = 0x40
	FlagIRQ    uint8 = 0x80
)

// Bits in the auxiliary control register.
const (
	// input latching is stored but has no effect
	acrPALatch      uint8 = 0x01
	acrPBLatch      uint8 = 0x02
	acrShiftMode    uint8 = 0x1c
	acrT2PulseCount uint8 = 0x20
	acrT1FreeRun    uint8 = 0x40
	acrT1OutputPB7  uint8 = 0x80
)

// the shift register mode is at bits 2 to 4 of the ACR
const acrShiftModeShift = 2

// Shift register modes. The value of the shift register bits in the ACR.
const (
	shiftDisabled     = 0
	shiftOutUnderPhi2 = 6
)

// the number of CPU cycles before a byte has been shifted out in mode 6
const shiftCompleteCycles = 16

// CA2 and CB2 control bits in the peripheral control register.
const (
	pcrCA2Control    uint8 = 0x0e
	pcrCA2Handshake  uint8 = 0x08
	pcrCA2Pulse      uint8 = 0x0a
	pcrCA2OutputLow  uint8 = 0x0c
	pcrCA2OutputHigh uint8 = 0x0e

	pcrCB2Control    uint8 = 0xe0
	pcrCB2Handshake  uint8 = 0x80
	pcrCB2Pulse      uint8 = 0xa0
	pcrCB2OutputLow  uint8 = 0xc0
	pcrCB2OutputHigh uint8 = 0xe0

	// CB2 is an independent interrupt input. reading or writing ORB does not
	// clear the CB2 flag
	pcrCB2Independent uint8 = 0x20
)
