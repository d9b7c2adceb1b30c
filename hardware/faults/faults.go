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

// Package faults defines the error types that indicate the emulation can not
// continue. There are three kinds of fault:
//
//	UnimplementedOpcode: the CPU has fetched an opcode that has no handler
//	UnsupportedMode: the program has selected a mode of a chip that is not emulated
//	ContractViolation: the emulator has been used incorrectly by the host
//
// Faults are normally wrapped with context by the curated package. Use
// errors.As() or curated.As() to find the fault in the chain:
//
//	if f, ok := curated.As[faults.UnimplementedOpcode](err); ok {
//		fmt.Printf("opcode %02x at %04x", f.Opcode, f.Address)
//	}
//
// The state of the emulation after a fault is not trustworthy and should be
// reset before continuing.
package faults

import "fmt"

// UnimplementedOpcode is returned by the CPU when an opcode without a handler
// is fetched
type UnimplementedOpcode struct {
	Opcode  uint8
	Address uint16
}

func (e UnimplementedOpcode) Error() string {
	return fmt.Sprintf("unimplemented opcode (%#02x) at %#04x", e.Opcode, e.Address)
}

// UnsupportedMode is returned when a component is configured (or used) in a
// mode that is not emulated. For example, decimal mode arithmetic in the CPU
type UnsupportedMode struct {
	Component string
	Mode      string
	Value     uint8
}

func (e UnsupportedMode) Error() string {
	return fmt.Sprintf("%s: unsupported mode: %s (%#02x)", e.Component, e.Mode, e.Value)
}

// ContractViolation is returned when the emulator is used incorrectly. For
// example, accessing a VIA register outside of the range 0 to 15
type ContractViolation struct {
	Component string
	Detail    string
	Value     int
}

func (e ContractViolation) Error() string {
	return fmt.Sprintf("%s: %s (%d)", e.Component, e.Detail, e.Value)
}
