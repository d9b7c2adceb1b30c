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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware"
)

// sentinal error returned by the runner.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator. The Beeb must have been reset and
// have a program in memory.
//
// Emulation will run for the specified duration. Throttle hints from the
// machine are ignored. If profile is true then a CPU and memory profile is
// written to the working directory.
func Check(output io.Writer, profile bool, beeb *hardware.Beeb, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	if dur <= 0 {
		return curated.Errorf("performance: duration must be positive (%s)", duration)
	}

	startInstructions := beeb.Instructions()
	startCycles := beeb.Cycles()

	runner := func() error {
		timesUp := make(chan bool, 1)
		timer := time.AfterFunc(dur, func() {
			timesUp <- true
		})
		defer timer.Stop()

		// checking the timesUp channel is relatively expensive so it is only
		// checked every PerformanceBrake instructions
		for {
			_, err := beeb.Run(hardware.PerformanceBrake)
			if err != nil {
				return err
			}

			select {
			case <-timesUp:
				return timedOut
			default:
			}
		}
	}

	start := time.Now()

	if profile {
		err = profileCPU(cpuProfileFile, runner)
	} else {
		err = runner()
	}
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := time.Since(start).Seconds()

	instructions := beeb.Instructions() - startInstructions
	cycles := beeb.Cycles() - startCycles
	mhz, accuracy := CalcSpeed(cycles, elapsed)

	fmt.Fprintf(output, "%.2f MHz (%d cycles, %d instructions in %.2f seconds) %.1f%%\n",
		mhz, cycles, instructions, elapsed, accuracy)

	if profile {
		return profileHeap(memProfileFile)
	}

	return nil
}
