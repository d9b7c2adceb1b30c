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

// Package modalflag parses a command line that has modes of operation. Each
// mode has its own flags. It is built on the flag package.
//
// The arguments are given to NewArgs() and the sub-modes of the top level are
// added before the first call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PERFORMANCE")
//	p, err := md.Parse()
//
// The first sub-mode is the default. Sub-modes are matched without regard to
// case. Once a mode has been selected, NewMode() prepares for the flags of
// that mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		limit := md.AddInt("limit", 0, "number of instructions to run")
//		origin, useOrigin := md.AddAddress("origin", 0x0000, "load address")
//		p, err := md.Parse()
//		...
//		run(md.GetArg(0), *limit, *origin, *useOrigin)
//	}
//
// Address flags accept hexadecimal values written as c000, 0xc000 or $c000.
package modalflag
