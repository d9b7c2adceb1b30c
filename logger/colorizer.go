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

import (
	"io"
	"strings"
)

// ansi sequences used by the colorizer
const (
	penTag    = "\033[36m"
	penRepeat = "\033[2m"
	penNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := strings.TrimRight(string(p), "\n")

	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		return c.out.Write(p)
	}

	s = penTag + tag + penNormal + ": "

	// dim the repeat count
	if i := strings.LastIndex(detail, " (repeat x"); i >= 0 {
		s += detail[:i] + penRepeat + detail[i:] + penNormal
	} else {
		s += detail
	}

	_, err = c.out.Write([]byte(s + "\n"))
	if err != nil {
		return 0, err
	}

	return len(p), nil
}
