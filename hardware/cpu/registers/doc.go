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

// Package registers implements the registers of the 6502.
//
// Register is used for A, X and Y. It implements the arithmetic, logical and
// shift operations of the 6502 in binary mode. Operations return the new
// state of the carry and overflow flags where the instruction affects them.
// Decimal mode is handled by the CPU, which refuses ADC and SBC when the
// DecimalMode flag is set.
//
// ProgramCounter is 16 bits and wraps at the top of memory. StackPointer is 8
// bits but Address() always returns an address in page one. Both wrap
// silently.
//
// StatusRegister holds the flags as booleans. The CPU sets them directly or
// with the helpers for the common cases:
//
//	mc.A.Load(v)
//	mc.Status.SetZeroNegative(mc.A.Value())
//
// The uint8 form used on the stack is produced by Value() and read by Load().
// Bit 5 is always set in the uint8 form.
package registers
