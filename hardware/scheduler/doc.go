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

// Package scheduler keeps count of the number of CPU cycles that have elapsed
// and advances the hardware that is driven by the CPU clock.
//
// There are two kinds of hardware. A Peripheral is stepped in-line with the
// instruction being executed, at the points in the instruction where memory is
// read and written. The VIAs and the interrupt countdown are peripherals and
// they are stepped in the order in which they were added. Hardware is polled
// once at the end of each instruction, after the total cycle count has been
// updated. The video, sound and disc hardware that are outside of this module
// are examples of Hardware.
//
// Any component that needs an event to happen some cycles in the future uses a
// Trigger. A Trigger is a cycle count that is compared to the total with the
// Due() function. The Never value is a trigger that is never due.
//
//	t := sch.Schedule(100)
//	...
//	if sch.Due(t) {
//		t = sch.Reschedule(100, t)
//	}
//
// The total cycle count wraps when it exceeds the wrap value. Every Rebaser
// is notified when this happens and must subtract the wrap value from all of
// its triggers. The Rebase() function helps with this.
package scheduler
