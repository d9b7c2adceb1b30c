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


//go:build !statsview

package statsview

import "io"

// DefaultAddress is empty when the server is not available.
const DefaultAddress = ""

// Launch does nothing.
func Launch(_ io.Writer, _ string) (stop func()) {
	return func() {}
}

// Available is false without the statsview tag.
func Available() bool {
	return false
}
