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

// Permission decides whether a log entry may be made.
type Permission interface {
	AllowLogging() bool
}

// PermissionFunc allows an ordinary function to be used as a Permission.
type PermissionFunc func() bool

// AllowLogging implements the Permission interface.
func (f PermissionFunc) AllowLogging() bool {
	return f()
}

type fixed bool

func (p fixed) AllowLogging() bool {
	return bool(p)
}

// Allow and Deny are the Permission values that do not depend on the state of
// the caller.
var (
	Allow Permission = fixed(true)
	Deny  Permission = fixed(false)
)
