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
	"time"

	"github.com/jetsetilly/gopherbeeb/curated"
)

// It can be expensive for a host to check for an end condition after every
// instruction. The PerformanceBrake is a standard batch size that can be
// passed to Run() by a host that wants to check its end condition
// periodically. For example:
//
//	for !done {
//		_, err := beeb.Run(hardware.PerformanceBrake)
//		if err != nil {
//			return err
//		}
//	}
const PerformanceBrake = 100

// Run executes up to count instructions as quickly as possible. Execution
// stops early if any of the hardware registered with AddHardware() returns a
// throttle hint. The hint is returned so that the host can pause before
// calling Run() again.
func (beeb *Beeb) Run(count int) (time.Duration, error) {
	for i := 0; i < count; i++ {
		throttle, err := beeb.CPU.ExecuteInstruction()
		if err != nil {
			return 0, curated.Errorf("beeb: %v", err)
		}

		beeb.instructions++
		beeb.cycles += int64(beeb.CPU.LastResult.Cost())

		if throttle > 0 {
			return throttle, nil
		}
	}

	return 0, nil
}
