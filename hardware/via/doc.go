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

// Package via implements the 6522 Versatile Interface Adapter. The BBC Micro
// has two VIAs. The system VIA is used by the operating system for the
// keyboard, the sound chip and the 100Hz clock. The user VIA drives the
// printer port and the user port.
//
// Each VIA has two timers. Timer 1 can run in one-shot mode or in free-run
// mode and can toggle PB7 on every expiry. Timer 2 is always one-shot and can
// count pulses on PB6 instead of clock cycles.
//
// The VIA is clocked at 1MHz but the counters in this implementation hold a
// value that is twice the visible value plus one. The counters are decreased
// by the number of 2MHz CPU cycles that have elapsed. Timer values are
// converted to and from the 1MHz representation when the registers are read
// and written.
//
// The register interface is byte wide at offsets 0 to 15:
//
//	0	ORB/IRB
//	1	ORA/IRA
//	2	DDRB
//	3	DDRA
//	4	T1C-L
//	5	T1C-H
//	6	T1L-L
//	7	T1L-H
//	8	T2C-L
//	9	T2C-H
//	10	SR
//	11	ACR
//	12	PCR
//	13	IFR
//	14	IER
//	15	ORA/IRA (no handshake)
//
// Not every mode of the VIA is emulated. The shift register is supported only
// when it is disabled or in "shift out under phi2" mode. CA2 and CB2 are
// supported as inputs and as fixed level outputs. Using an unsupported mode
// results in a faults.UnsupportedMode error.
package via
