// Package validator certifies a tokenized instruction and its operands
// against a per-mnemonic schema: operand count, variant legality, and an
// ordered list of structural and size-compatibility rules.
package validator

import (
	"github.com/attasm/attasm/internal/asm"
	"github.com/attasm/attasm/internal/debugcontext"
	"github.com/attasm/attasm/token"
)

// Validate certifies instruction against its schema given its operand
// tokens. dbg may be nil; when non-nil it records one Trace entry on
// success and one Error entry on failure.
func Validate(arch asm.Architecture, instruction token.Token, operands []token.Token, dbg *debugcontext.DebugContext) error {
	if dbg != nil {
		dbg.SetPhase("validate")
	}

	schema, ok := schemas[instruction.Instruction]
	if !ok {
		return reportAndReturn(dbg, instruction, newError(UnknownInstruction, instruction.Text, "no schema for this mnemonic"))
	}

	if instruction.Variant != "" && !schema.SupportedVariants[instruction.Variant] {
		return reportAndReturn(dbg, instruction, newError(UnsupportedVariant, instruction.Text, "variant not supported by this mnemonic"))
	}

	if !schema.OperandCounts[len(operands)] {
		return reportAndReturn(dbg, instruction, newError(WrongOperandCount, instruction.Text, "wrong number of operands"))
	}

	for _, rule := range schema.OperandValidators {
		if err := rule(arch, instruction, operands); err != nil {
			return reportAndReturn(dbg, instruction, err)
		}
	}

	for _, rule := range schema.Validators {
		if err := rule(arch, instruction, operands); err != nil {
			return reportAndReturn(dbg, instruction, err)
		}
	}

	if dbg != nil {
		dbg.Trace(dbg.Loc(instruction.Line, instruction.Column), "validated "+instruction.Text)
	}
	return nil
}

func reportAndReturn(dbg *debugcontext.DebugContext, instruction token.Token, err error) error {
	if dbg != nil {
		dbg.Error(dbg.Loc(instruction.Line, instruction.Column), err.Error())
	}
	return err
}
