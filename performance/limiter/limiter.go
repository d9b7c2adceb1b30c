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

// Package limiter provides a rough and ready way of limiting the emulation to
// the speed of the real machine.
//
// A Limiter is added to the machine as polled hardware:
//
//	beeb.AddHardware(limiter.NewLimiter())
//
// Every Granularity cycles the Limiter compares the emulated time with the
// real time that has passed since it was created. If the emulation is ahead
// then the difference is returned as a throttle hint and the host should
// pause for that long before continuing.
package limiter

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopherbeeb/hardware/clocks"
)

// Granularity is the number of cycles between checks of the real time clock.
// 10ms of emulated time
const Granularity = clocks.CyclesPerSecond / 100

// Limiter is polled by the scheduler after every instruction.
type Limiter struct {
	start  time.Time
	cycles int64

	// cycles since the real time clock was last checked
	check int
}

// NewLimiter is the preferred method of initialisation for Limiter type
func NewLimiter() *Limiter {
	return &Limiter{start: time.Now()}
}

func (lim *Limiter) String() string {
	return fmt.Sprintf("%s emulated in %s", clocks.Duration(lim.cycles), time.Since(lim.start).Round(time.Millisecond))
}

// Reset restarts the comparison between emulated and real time.
func (lim *Limiter) Reset() {
	lim.start = time.Now()
	lim.cycles = 0
	lim.check = 0
}

// Poll implements the scheduler.Hardware interface.
func (lim *Limiter) Poll(cycles int) (time.Duration, error) {
	lim.cycles += int64(cycles)
	lim.check += cycles
	if lim.check < Granularity {
		return 0, nil
	}
	lim.check = 0

	// this is a really rough attempt at limiting. a long pause by the host
	// is never caught up
	ahead := clocks.Duration(lim.cycles) - time.Since(lim.start)
	if ahead > 0 {
		return ahead, nil
	}
	return 0, nil
}
