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


package execution

// Bug names a quirk of the 6502 that affected the instruction. A Bug is not
// an error. Firmware written for the BBC Micro can depend on these quirks.
type Bug string

const (
	NoBug Bug = ""

	// JMP ($xxff) takes the high byte of the target from $xx00
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// the (zp,X) pointer does not leave page zero
	IndexedIndirectWrapBug Bug = "indexed indirect zero page wrap"

	// zp,X and zp,Y do not leave page zero
	ZeroPageIndexBug Bug = "zero page index bug"
)
