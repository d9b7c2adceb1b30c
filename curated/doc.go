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


// Package curated creates errors with normalised messages.
//
// Errors are created with Errorf(), which takes a pattern and values in the
// same way as fmt.Errorf(). The message is only formatted when Error() is
// called.
//
// Each package in the emulation prefixes its errors with its own name. When
// an error is passed up through several packages the same prefix can appear
// more than once in a row. Adjacent duplicate parts of the message are
// removed, so:
//
//	err := curated.Errorf("cpu: %v", curated.Errorf("cpu: unimplemented opcode (0x02)"))
//
// prints as:
//
//	cpu: unimplemented opcode (0x02)
//
// Every error value passed to Errorf() is part of the error chain. The typed
// faults of the hardware/faults package can be found with errors.As() or with
// the generic shorthand As():
//
//	if f, ok := curated.As[faults.UnimplementedOpcode](err); ok {
//		fmt.Printf("%#02x", f.Opcode)
//	}
package curated
