package validator

import (
	"github.com/attasm/attasm/internal/asm"
	"github.com/attasm/attasm/token"
)

// Rule is a pure predicate over an instruction and its operands. It is the
// design's sole polymorphism mechanism: composition is a short-circuit fold
// over an ordered list, first failure wins.
type Rule func(arch asm.Architecture, instruction token.Token, operands []token.Token) error

// Schema is the per-mnemonic validation contract: which variants are legal,
// how many operands are accepted, and which rules run over the operand list
// and over the instruction as a whole.
type Schema struct {
	Instruction       string
	SupportedVariants map[string]bool
	OperandCounts     map[int]bool
	OperandValidators []Rule
	Validators        []Rule
}

func variantSet(variants ...string) map[string]bool {
	set := make(map[string]bool, len(variants))
	for _, v := range variants {
		set[v] = true
	}
	return set
}

func countSet(counts ...int) map[int]bool {
	set := make(map[int]bool, len(counts))
	for _, c := range counts {
		set[c] = true
	}
	return set
}
