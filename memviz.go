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

package main

import (
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/execution"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/registers"
	"github.com/jetsetilly/gopherbeeb/hardware/interrupts"
	"github.com/jetsetilly/gopherbeeb/hardware/via"
)

// machineState is the part of the machine that is drawn by writeMemviz().
// memory is not included because the graph of 64K of RAM is not useful
type machineState struct {
	PC         registers.ProgramCounter
	A          registers.Register
	X          registers.Register
	Y          registers.Register
	SP         registers.StackPointer
	Status     registers.StatusRegister
	LastResult execution.Result
	Interrupts *interrupts.Controller
	SysVIA     *via.VIA
	UserVIA    *via.VIA
}

// writeMemviz writes a graphviz dot file of the machine state
func writeMemviz(filename string, beeb *hardware.Beeb) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	state := &machineState{
		PC:         beeb.CPU.PC,
		A:          beeb.CPU.A,
		X:          beeb.CPU.X,
		Y:          beeb.CPU.Y,
		SP:         beeb.CPU.SP,
		Status:     beeb.CPU.Status,
		LastResult: beeb.CPU.LastResult,
		Interrupts: beeb.Interrupts,
		SysVIA:     beeb.SysVIA,
		UserVIA:    beeb.UserVIA,
	}

	memviz.Map(f, state)

	return nil
}
