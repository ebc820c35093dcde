package asm

// Instruction represents a catalog entry for a supported mnemonic: the base
// name plus the set of size-variant suffixes it accepts (e.g. MOV accepts
// B/W/L/Q and the special ABSQ form; LEA accepts only L and Q; MOVZX and
// MOVSX accept none).
type Instruction struct {
	Mnemonic string   // Base mnemonic (e.g., "MOV", "ADD")
	Variants []string // Permitted variant suffixes, e.g. {"B", "W", "L", "Q"}
}

// SupportsVariant reports whether variant is a permitted suffix for this
// mnemonic. An empty variant always matches a bare mnemonic use.
func (instr Instruction) SupportsVariant(variant string) bool {
	if variant == "" {
		return true
	}
	for _, v := range instr.Variants {
		if v == variant {
			return true
		}
	}
	return false
}
