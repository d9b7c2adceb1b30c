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

// Package interrupts implements the IRQ logic of the BBC Micro. Every source
// of interrupts has one bit in the status word. A source raises its bit when
// it wants service and lowers it when the request has been acknowledged by
// the program.
//
// The Controller decides on which instruction boundary an interrupt is
// serviced. A request from a VIA timer is serviced a fixed number of cycles
// after the timer expires and this is modelled with a countdown. A timer
// claims the countdown when it expires, as long as no other timer has claimed
// it already. Requests from sources that do not claim the countdown are
// serviced at the next instruction boundary.
//
// Changes to the interrupt disable flag in the CPU take effect one
// instruction late. The CPU tells the Controller if the flag was set or
// cleared by the instruction that has just completed.
package interrupts
