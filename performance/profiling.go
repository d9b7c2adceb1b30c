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


package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/gopherbeeb/curated"
)

// the files written when profiling is requested
const (
	cpuProfileFile = "cpu.profile"
	memProfileFile = "mem.profile"
)

// profileCPU runs the function with CPU profiling active.
func profileCPU(filename string, run func() error) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// profileHeap writes the current state of the heap after a garbage
// collection.
func profileHeap(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
