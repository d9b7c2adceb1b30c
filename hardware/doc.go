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

// Package hardware is the base package for the BBC Micro emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Beeb type is the root of the emulation and contains external references
// to all the machine's sub-systems. The Beeb owns the CPU, the scheduler, the
// interrupt controller and both VIAs. Memory is supplied by the host:
//
//	mem := memory.NewMemory()
//	beeb := hardware.NewBeeb(mem)
//	err := beeb.Reset()
//
// If the memory implements the Plumb() function of the memory package then
// the CPU and the VIAs are attached to it automatically.
//
// Step() executes a single instruction and Run() executes a batch of
// instructions. Both advance the VIAs and any additional peripherals in-line
// with the instruction so that timer interrupts happen on the correct cycle.
package hardware
