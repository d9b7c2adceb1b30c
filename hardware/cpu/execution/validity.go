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


package execution

import (
	"github.com/jetsetilly/gopherbeeb/curated"
)

// IsValid checks that the Result is consistent with the definition of the
// instruction. Cycles added by memory-mapped IO are not part of the
// definition and are ignored.
func (r Result) IsValid() error {
	switch {
	case !r.Final:
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	case r.Defn == nil:
		return curated.Errorf("cpu: execution has no definition")
	case r.PageFault && !r.Defn.PageSensitive:
		return curated.Errorf("cpu: unexpected page fault")
	case r.ByteCount != r.Defn.Bytes:
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	cycles := r.Cycles - r.IOCycles

	// the smallest and largest number of cycles the instruction can take
	lo := r.Defn.Cycles
	hi := lo
	switch {
	case r.Defn.IsBranch():
		// taken and page crossing penalties
		hi += 2
	case r.PageFault:
		lo++
		hi++
	}

	if cycles < lo || cycles > hi {
		if lo == hi {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Operator, cycles, lo)
		}
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d not in range %d to %d)",
			r.Defn.OpCode, r.Defn.Operator, cycles, lo, hi)
	}

	return nil
}
