// Package x86_64 is the concrete catalog for the supported subset of the
// x86-64 instruction set: mnemonics, size variants, and general-purpose
// registers used by the lexer and validator.
package x86_64

import "github.com/attasm/attasm/internal/asm"

// Assembler is the x86-64 implementation of asm.Architecture. It holds no
// per-source state; a single shared instance serves every call.
type Assembler struct{}

// New returns the x86-64 architecture catalog.
func New() *Assembler {
	return &Assembler{}
}

func (a *Assembler) ArchitectureName() string {
	return "x86_64"
}

func (a *Assembler) Instructions() map[string]asm.Instruction {
	return instructionsByMnemonic
}

func (a *Assembler) IsInstruction(mnemonic string) bool {
	_, ok := instructionsByMnemonic[mnemonic]
	return ok
}

func (a *Assembler) RegisterSet() []asm.Register {
	return registerSet
}

func (a *Assembler) RegisterByName(name string) (asm.Register, bool) {
	r, ok := registersByName[name]
	return r, ok
}

func (a *Assembler) IsRegister(name string) bool {
	_, ok := registersByName[name]
	return ok
}

func (a *Assembler) OperandTypes() []asm.OperandType {
	return operandTypes
}

func (a *Assembler) IsValidOperandCount(count int) bool {
	return count == OperandCountOne || count == OperandCountTwo
}

// SupportedInstructions, SupportedRegisters, and SupportedVariants are the
// read-only catalog constants exposed to callers. They are package-level
// values built once and shared by every lexer/validator call.
var (
	SupportedInstructions = instructionsByMnemonic
	SupportedRegisters    = registersByName
)

// SupportedVariants is the full set of size-variant suffixes recognized
// across the catalog (a mnemonic's own permitted subset is narrower; see
// Instruction.SupportsVariant).
var SupportedVariants = map[string]int{
	"B":    8,
	"W":    16,
	"L":    32,
	"Q":    64,
	"ABSQ": 64,
}
