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


//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/gopherbeeb/logger"
)

// DefaultAddress is the address the server listens on.
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

// Launch starts the server in a new goroutine. The returned function stops
// the server.
func Launch(output io.Writer, address string) (stop func()) {
	viewer.SetConfiguration(viewer.WithAddr(address))

	mgr := statsview.New()
	go mgr.Start()

	fmt.Fprintf(output, "stats server available at %s%s\n", address, path)
	logger.Logf(logger.Allow, "statsview", "listening on %s", address)

	return mgr.Stop
}

// Available is true when built with the statsview tag.
func Available() bool {
	return true
}
