package validator

// sizeVariants is the common B/W/L/Q suffix set shared by most arithmetic
// and logical mnemonics.
var sizeVariants = []string{"B", "W", "L", "Q"}

// schemas is the per-mnemonic validation registry. It mirrors the mnemonic
// catalog: every supported instruction has exactly one entry here.
var schemas = map[string]Schema{
	"MOV": {
		Instruction:       "MOV",
		SupportedVariants: variantSet(append(append([]string{}, sizeVariants...), "ABSQ")...),
		OperandCounts:     countSet(2),
		OperandValidators: []Rule{noMemoryToMemory, validMemoryOperands},
		Validators:        []Rule{absqOperands, variantRegisterOperandSize},
	},
	"LEA": {
		Instruction:       "LEA",
		SupportedVariants: variantSet("L", "Q"),
		OperandCounts:     countSet(2),
		OperandValidators: []Rule{validMemoryOperands},
		Validators:        []Rule{variantRegisterOperandSize},
	},
	"MOVZX": {
		Instruction:       "MOVZX",
		SupportedVariants: variantSet(),
		OperandCounts:     countSet(2),
		OperandValidators: []Rule{validMemoryOperands},
		Validators:        []Rule{movExtensionOperands},
	},
	"MOVSX": {
		Instruction:       "MOVSX",
		SupportedVariants: variantSet(),
		OperandCounts:     countSet(2),
		OperandValidators: []Rule{validMemoryOperands},
		Validators:        []Rule{movExtensionOperands},
	},
	"PUSH": {
		Instruction:       "PUSH",
		SupportedVariants: variantSet("W", "Q"),
		OperandCounts:     countSet(1),
		OperandValidators: []Rule{validMemoryOperands},
		Validators:        []Rule{variantRegisterOperandSize},
	},
	"POP": {
		Instruction:       "POP",
		SupportedVariants: variantSet("W", "Q"),
		OperandCounts:     countSet(1),
		OperandValidators: []Rule{validMemoryOperands},
		Validators:        []Rule{variantRegisterOperandSize},
	},
}

func init() {
	for _, m := range []string{"ADD", "SUB", "CMP", "AND", "OR", "XOR", "TEST", "XCHG"} {
		schemas[m] = Schema{
			Instruction:       m,
			SupportedVariants: variantSet(sizeVariants...),
			OperandCounts:     countSet(2),
			OperandValidators: []Rule{noMemoryToMemory, validMemoryOperands},
			Validators:        []Rule{variantRegisterOperandSize},
		}
	}
	for _, m := range []string{"MUL", "IMUL", "DIV", "IDIV"} {
		schemas[m] = Schema{
			Instruction:       m,
			SupportedVariants: variantSet(sizeVariants...),
			OperandCounts:     countSet(1, 2),
			OperandValidators: []Rule{validMemoryOperands},
			Validators:        []Rule{variantRegisterOperandSize},
		}
	}
	for _, m := range []string{"INC", "DEC", "NEG", "NOT"} {
		schemas[m] = Schema{
			Instruction:       m,
			SupportedVariants: variantSet(sizeVariants...),
			OperandCounts:     countSet(1),
			OperandValidators: []Rule{validMemoryOperands},
			Validators:        []Rule{variantRegisterOperandSize},
		}
	}
	for _, m := range []string{"SHL", "SHR", "SAR", "ROL", "ROR"} {
		schemas[m] = Schema{
			Instruction:       m,
			SupportedVariants: variantSet(sizeVariants...),
			OperandCounts:     countSet(1, 2),
			OperandValidators: []Rule{validMemoryOperands},
			Validators:        []Rule{variantRegisterOperandSize},
		}
	}
}
