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
	"errors"
	"flag"
	"io"
	"slices"
	"strings"
)

// ParseResult is returned from the Parse() function.
type ParseResult int

const (
	// command line processing should continue. if sub-modes were added then
	// Mode() returns the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the error returned by Parse() says why
	ParseError
)

// Modes is a command line that has modes of operation, each with its own
// flags. Help messages are written to Output. Nothing is written if Output
// is nil.
type Modes struct {
	Output io.Writer

	// flags for the current mode. replaced by NewMode()
	flags *flag.FlagSet

	// the sub-modes that Parse() will select from. the first entry is the
	// default
	subModes []string

	// arguments not yet consumed by Parse()
	remaining []string

	// every mode selected by Parse() in order
	path []string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs starts parsing of a new list of arguments.
func (md *Modes) NewArgs(args []string) {
	md.remaining = args
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode clears the flags and sub-modes ready for the next call to Parse().
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
}

// AddSubModes adds to the list of sub-modes that Parse() selects from. Modes
// are upper case. The first sub-mode added is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// Parse the flags of the current mode and, if there are sub-modes, select
// the next mode. The argument that follows the flags selects the mode. If it
// does not name a sub-mode the default is selected and the argument is left
// for the next call to Parse().
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.remaining)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			hw.help(md.Output, md.Path(), md.subModes)
			return ParseHelp, nil
		}
		return ParseError, err
	}

	md.remaining = md.flags.Args()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		if len(md.remaining) > 0 {
			arg := strings.ToUpper(md.remaining[0])
			if slices.Contains(md.subModes, arg) {
				mode = arg
				md.remaining = md.remaining[1:]
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that were not consumed by Parse().
func (md *Modes) RemainingArgs() []string {
	return md.remaining
}

// GetArg returns one of the remaining arguments. The empty string is
// returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	if i < 0 || i >= len(md.remaining) {
		return ""
	}
	return md.remaining[i]
}
