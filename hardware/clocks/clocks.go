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

// Package clocks defines the constant values that define the speed of the
// clocks in the BBC Micro.
//
// The CPU runs at 2MHz. The VIAs, and the rest of the 1MHz bus, run at half
// that speed. Cycle counts in the emulation are always CPU cycles.
package clocks

import "time"

// Clock speeds in MHz.
const (
	CPU = 2.0
	Bus = 1.0
)

// CyclesPerSecond is the number of CPU cycles in one second of emulated time.
const CyclesPerSecond = int(CPU * 1000000)

// Duration returns the amount of real time represented by a number of CPU
// cycles.
func Duration(cycles int64) time.Duration {
	return time.Duration(cycles) * time.Second / time.Duration(CyclesPerSecond)
}
