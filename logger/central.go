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


package logger

import "io"

// the central log is shared by every package in the application
var central = NewLogger(256)

// Log adds an entry to the central log.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central log.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear removes all entries from the central log.
func Clear() {
	central.Clear()
}

// Tail writes the most recent entries in the central log to output.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho writes new entries in the central log to output as they are made.
// A nil argument turns echoing off.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
