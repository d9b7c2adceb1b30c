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


// Package statsview serves live graphs of the runtime statistics of the
// emulator process: heap, goroutines and GC pauses. The graphs are drawn by
// github.com/go-echarts/statsview.
//
// The package is only functional when built with the statsview tag:
//
//	go build -tags statsview .
//
// Without the tag Available() returns false and Launch() does nothing. The
// graphs are at DefaultAddress followed by the /debug/statsview path. The
// standard pprof handlers are served under /debug/pprof/.
package statsview
