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

// Package cpu emulates the 6502 microprocessor found in the BBC Micro. Like
// all 8-bit processors of the era, the 6502 executes instructions according to
// the single byte value read from an address pointed to by the program
// counter. This single byte is the opcode and is looked up in the instruction
// table. The instruction definition for that opcode is then used to move
// execution of the program forward.
//
// The CPU does not run the other hardware on every cycle. Instead, the
// instruction definition says how many cycles into the instruction the memory
// read and the memory write happen. The rest of the machine is advanced to
// that point, through the Timing interface, before the read or write is
// performed. The remainder of the instruction's cycles is charged when the
// instruction completes.
//
// Accesses to memory-mapped IO take longer than accesses to RAM because the
// IO runs on the 1MHz bus. The memory implementation should call SyncIO() and
// then AdjustForIORead() or AdjustForIOWrite() before performing an IO
// access.
//
// Interrupts are noticed at the read and write points of an instruction and
// at the end of the instruction. If an interrupt is serviced, the cost of
// servicing it is charged separately and recorded in LastResult.
//
// Decimal mode arithmetic is not supported. An ADC or SBC instruction
// executed with the decimal flag set will result in a faults.UnsupportedMode
// error. An opcode that is not part of the documented 6502 instruction set
// results in a faults.UnimplementedOpcode error.
package cpu
