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

// Package version names the application and the build. A release number can
// be set when linking:
//
//	go build -ldflags "-X github.com/jetsetilly/gopherbeeb/version.number=v0.1.0"
//
// Without a release number the version is "unreleased" if the binary carries
// vcs information and "local" if it does not, as happens with "go run".
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the application as shown to the user.
const ApplicationName = "Gopherbeeb"

// set by the linker
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the vcs revision and whether the build
// is a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != ""
}

// String returns the application name and version on one line. The revision
// is included for builds that are not numbered releases.
func String() string {
	if number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

// buildSettings returns the vcs settings recorded by the go toolchain.
func buildSettings() (vcs bool, rev string, modified bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return false, "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return vcs, rev, modified
}

func init() {
	vcs, rev, modified := buildSettings()

	switch {
	case rev == "":
		revision = "no revision information"
	case modified:
		revision = rev + "+dirty"
	default:
		revision = rev
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
