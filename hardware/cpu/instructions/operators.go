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

package instructions

// Operator identifies the operation performed by an instruction. The
// addressing mode is a separate property of the Definition.
type Operator int

// List of operators. Only the documented 6502 instruction set is included.
const (
	Nil Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya
)

var mnemonics = [...]string{
	Nil: "???",
	Adc: "ADC",
	And: "AND",
	Asl: "ASL",
	Bcc: "BCC",
	Bcs: "BCS",
	Beq: "BEQ",
	Bit: "BIT",
	Bmi: "BMI",
	Bne: "BNE",
	Bpl: "BPL",
	Brk: "BRK",
	Bvc: "BVC",
	Bvs: "BVS",
	Clc: "CLC",
	Cld: "CLD",
	Cli: "CLI",
	Clv: "CLV",
	Cmp: "CMP",
	Cpx: "CPX",
	Cpy: "CPY",
	Dec: "DEC",
	Dex: "DEX",
	Dey: "DEY",
	Eor: "EOR",
	Inc: "INC",
	Inx: "INX",
	Iny: "INY",
	Jmp: "JMP",
	Jsr: "JSR",
	Lda: "LDA",
	Ldx: "LDX",
	Ldy: "LDY",
	Lsr: "LSR",
	Nop: "NOP",
	Ora: "ORA",
	Pha: "PHA",
	Php: "PHP",
	Pla: "PLA",
	Plp: "PLP",
	Rol: "ROL",
	Ror: "ROR",
	Rti: "RTI",
	Rts: "RTS",
	Sbc: "SBC",
	Sec: "SEC",
	Sed: "SED",
	Sei: "SEI",
	Sta: "STA",
	Stx: "STX",
	Sty: "STY",
	Tax: "TAX",
	Tay: "TAY",
	Tsx: "TSX",
	Txa: "TXA",
	Txs: "TXS",
	Tya: "TYA",
}

// String returns the mnemonic for the operator.
func (o Operator) String() string {
	if o < 0 || int(o) >= len(mnemonics) {
		return mnemonics[Nil]
	}
	return mnemonics[o]
}
