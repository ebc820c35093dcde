package x86_64

import "github.com/attasm/attasm/internal/asm"

// Operand kinds exposed through Assembler.OperandTypes for introspection.
// These mirror the token kinds REGISTER/IMMEDIATE/MEMORY at each size class;
// COMMA carries no operand type since it is a separator, not an operand.
var (
	OperandReg8  = asm.OperandType{Identifier: "reg8", Type: "register", Size: 8}
	OperandReg16 = asm.OperandType{Identifier: "reg16", Type: "register", Size: 16}
	OperandReg32 = asm.OperandType{Identifier: "reg32", Type: "register", Size: 32}
	OperandReg64 = asm.OperandType{Identifier: "reg64", Type: "register", Size: 64}

	OperandImm8  = asm.OperandType{Identifier: "imm8", Type: "immediate", Size: 8}
	OperandImm16 = asm.OperandType{Identifier: "imm16", Type: "immediate", Size: 16}
	OperandImm32 = asm.OperandType{Identifier: "imm32", Type: "immediate", Size: 32}
	OperandImm64 = asm.OperandType{Identifier: "imm64", Type: "immediate", Size: 64}

	// OperandMem is sizeless: a memory operand's effective width is determined
	// by the instruction's variant, not by the operand shape itself.
	OperandMem = asm.OperandType{Identifier: "mem", Type: "memory", Size: 0}
)

// operandTypes is the full catalog returned by Assembler.OperandTypes.
var operandTypes = []asm.OperandType{
	OperandReg8, OperandReg16, OperandReg32, OperandReg64,
	OperandImm8, OperandImm16, OperandImm32, OperandImm64,
	OperandMem,
}

const (
	// OperandCountOne is the allowed operand count for single-operand
	// instructions such as PUSH, POP, INC, NEG.
	OperandCountOne = 1
	// OperandCountTwo is the allowed operand count for two-operand
	// instructions such as MOV, ADD, CMP.
	OperandCountTwo = 2
)
