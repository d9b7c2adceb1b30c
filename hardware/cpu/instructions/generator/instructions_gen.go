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


//go:generate go run instructions_gen.go

// instructions_gen reads instructions.csv and writes the table of instruction
// definitions used by the CPU.
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherbeeb/hardware/cpu/instructions"
)

const (
	csvFile   = "./instructions.csv"
	tableFile = "../table.go"
)

// the fields of one record in the CSV file
const (
	fieldOpcode = iota
	fieldMnemonic
	fieldCycles
	fieldCyclesToRead
	fieldCyclesToWrite
	fieldAddressingMode
	fieldPageSensitive
	fieldEffect
	numFields
)

// the addressing mode decides the number of bytes in the instruction
var addressingModes = map[string]struct {
	mode  instructions.AddressingMode
	bytes int
}{
	"IMPLIED":             {instructions.Implied, 1},
	"IMMEDIATE":           {instructions.Immediate, 2},
	"RELATIVE":            {instructions.Relative, 2},
	"ABSOLUTE":            {instructions.Absolute, 3},
	"ZERO_PAGE":           {instructions.ZeroPage, 2},
	"INDIRECT":            {instructions.Indirect, 3},
	"INDEXED_INDIRECT":    {instructions.IndexedIndirect, 2},
	"INDIRECT_INDEXED":    {instructions.IndirectIndexed, 2},
	"ABSOLUTE_INDEXED_X":  {instructions.AbsoluteIndexedX, 3},
	"ABSOLUTE_INDEXED_Y":  {instructions.AbsoluteIndexedY, 3},
	"ZERO_PAGE_INDEXED_X": {instructions.ZeroPageIndexedX, 2},
	"ZERO_PAGE_INDEXED_Y": {instructions.ZeroPageIndexedY, 2},
}

var effects = map[string]instructions.EffectCategory{
	"READ":       instructions.Read,
	"WRITE":      instructions.Write,
	"RMW":        instructions.RMW,
	"FLOW":       instructions.Flow,
	"SUBROUTINE": instructions.Subroutine,
	"INTERRUPT":  instructions.Interrupt,
}

// every operator indexed by mnemonic
func operators() map[string]instructions.Operator {
	ops := make(map[string]instructions.Operator)
	for o := instructions.Nil + 1; o.String() != instructions.Nil.String(); o++ {
		ops[o.String()] = o
	}
	return ops
}

func parseRecord(rec []string, ops map[string]instructions.Operator) (instructions.Definition, error) {
	var defn instructions.Definition

	for i := range rec {
		rec[i] = strings.ToUpper(strings.TrimSpace(rec[i]))
	}

	n, err := strconv.ParseUint(strings.TrimPrefix(rec[fieldOpcode], "0X"), 16, 8)
	if err != nil {
		return defn, fmt.Errorf("invalid opcode (%s)", rec[fieldOpcode])
	}
	defn.OpCode = uint8(n)

	var ok bool
	defn.Operator, ok = ops[rec[fieldMnemonic]]
	if !ok {
		return defn, fmt.Errorf("unknown mnemonic for %#02x (%s)", defn.OpCode, rec[fieldMnemonic])
	}

	for f, c := range map[int]*int{
		fieldCycles:        &defn.Cycles,
		fieldCyclesToRead:  &defn.CyclesToRead,
		fieldCyclesToWrite: &defn.CyclesToWrite,
	} {
		*c, err = strconv.Atoi(rec[f])
		if err != nil {
			return defn, fmt.Errorf("invalid cycle count for %#02x (%s)", defn.OpCode, rec[f])
		}
	}

	am, ok := addressingModes[rec[fieldAddressingMode]]
	if !ok {
		return defn, fmt.Errorf("invalid addressing mode for %#02x (%s)", defn.OpCode, rec[fieldAddressingMode])
	}
	defn.AddressingMode = am.mode
	defn.Bytes = am.bytes

	defn.PageSensitive, err = strconv.ParseBool(rec[fieldPageSensitive])
	if err != nil {
		return defn, fmt.Errorf("invalid page sensitivity for %#02x (%s)", defn.OpCode, rec[fieldPageSensitive])
	}

	defn.Effect, ok = effects[rec[fieldEffect]]
	if !ok {
		return defn, fmt.Errorf("unknown effect for %#02x (%s)", defn.OpCode, rec[fieldEffect])
	}

	return defn, nil
}

func parseCSV(r io.Reader) ([256]*instructions.Definition, error) {
	var table [256]*instructions.Definition

	csvr := csv.NewReader(r)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = numFields

	ops := operators()

	for {
		rec, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return table, err
		}

		line, _ := csvr.FieldPos(0)

		defn, err := parseRecord(rec, ops)
		if err != nil {
			return table, fmt.Errorf("%w [line %d]", err, line)
		}

		if table[defn.OpCode] != nil {
			return table, fmt.Errorf("duplicate opcode (%#02x) [line %d]", defn.OpCode, line)
		}
		table[defn.OpCode] = &defn
	}

	return table, nil
}

// operator names in the generated source are the mnemonic with only the first
// letter capitalised
func operatorName(o instructions.Operator) string {
	m := o.String()
	return m[:1] + strings.ToLower(m[1:])
}

func generate(table [256]*instructions.Definition) ([]byte, error) {
	var b bytes.Buffer

	b.WriteString("// generated code - do not change\n\n")
	b.WriteString("package instructions\n\n")
	b.WriteString("// GetDefinitions returns the table of instruction definitions for the 6502.\n")
	b.WriteString("// Opcodes that are not implemented have a nil entry\n")
	b.WriteString("func GetDefinitions() []*Definition {\nreturn []*Definition{\n")

	for _, d := range table {
		if d == nil {
			b.WriteString("nil,\n")
			continue
		}
		fmt.Fprintf(&b, "{OpCode: 0x%02x, Operator: %s, Bytes: %d, Cycles: %d, CyclesToRead: %d, CyclesToWrite: %d, AddressingMode: %s, PageSensitive: %t, Effect: %s},\n",
			d.OpCode, operatorName(d.Operator), d.Bytes, d.Cycles, d.CyclesToRead, d.CyclesToWrite,
			d.AddressingMode, d.PageSensitive, d.Effect)
	}

	b.WriteString("}\n}\n")

	return format.Source(b.Bytes())
}

func summary(table [256]*instructions.Definition) {
	var missing int
	for _, d := range table {
		if d == nil {
			missing++
		}
	}
	fmt.Printf("%d opcodes defined, %d not implemented\n", len(table)-missing, missing)
}

func run() error {
	f, err := os.Open(csvFile)
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := parseCSV(f)
	if err != nil {
		return err
	}

	src, err := generate(table)
	if err != nil {
		return err
	}

	summary(table)

	return os.WriteFile(tableFile, src, 0o644)
}

func main() {
	err := run()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
