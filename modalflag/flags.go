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


package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// AddBool adds a boolean flag to the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt adds an integer flag to the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString adds a string flag to the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// address is a flag.Value for a 16 bit address. The value is hexadecimal with
// an optional 0x or $ prefix.
type address struct {
	value *uint16
	set   *bool
}

func (a address) String() string {
	// the flag package calls String() on a zero value
	if a.value == nil {
		return ""
	}
	return fmt.Sprintf("%#04x", *a.value)
}

func (a address) Set(s string) error {
	s = strings.ToLower(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "$")

	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return fmt.Errorf("not a 16 bit hexadecimal address")
	}

	*a.value = uint16(v)
	*a.set = true
	return nil
}

// AddAddress adds an address flag to the current mode. The boolean is true
// once the flag has been given on the command line.
func (md *Modes) AddAddress(name string, value uint16, usage string) (*uint16, *bool) {
	a := address{value: &value, set: new(bool)}
	md.flags.Var(a, name, usage)
	return a.value, a.set
}
