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

import "github.com/jetsetilly/gopherbeeb/hardware/clocks"

// CalcSpeed returns the effective clock speed in MHz for the number of cycles
// emulated in the duration (in seconds). The accuracy value is the percentage
// of the speed of the real machine.
func CalcSpeed(cycles int64, duration float64) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	mhz = float64(cycles) / duration / 1000000
	accuracy = 100 * mhz / clocks.CPU
	return mhz, accuracy
}
