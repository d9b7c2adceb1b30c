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

package hardware

import (
	"github.com/jetsetilly/gopherbeeb/curated"
)

// Step the emulation forward one CPU instruction. If an interrupt is serviced
// at the end of the instruction the cost of the interrupt sequence is included
// in the returned number of cycles.
//
// The machine is advanced in-line with the instruction. The order of
// operation for every instruction is:
//
//   - advance to the memory read point and read
//   - advance to the memory write point and write
//   - charge the remaining cycles and poll the hardware
//   - service a pending interrupt
//
// A returned error is fatal. The machine should be reset before continuing.
func (beeb *Beeb) Step() (int, error) {
	_, err := beeb.CPU.ExecuteInstruction()
	if err != nil {
		return 0, curated.Errorf("beeb: %v", err)
	}

	cost := beeb.CPU.LastResult.Cost()
	beeb.instructions++
	beeb.cycles += int64(cost)

	return cost, nil
}
