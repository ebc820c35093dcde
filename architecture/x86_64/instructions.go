package x86_64

import "github.com/attasm/attasm/internal/asm"

// sizeVariants is the standard B/W/L/Q size-suffix family shared by most
// general-purpose mnemonics.
var sizeVariants = []string{"B", "W", "L", "Q"}

var (
	// Data movement.
	MOV = asm.Instruction{Mnemonic: "MOV", Variants: append(append([]string{}, sizeVariants...), "ABSQ")}
	LEA = asm.Instruction{Mnemonic: "LEA", Variants: []string{"L", "Q"}}

	// Zero/sign-extending moves: no size-suffix variant of their own, the
	// extension is implied by the pairing of a wider destination register
	// with a narrower source register (see movExtensionOperands).
	MOVZX = asm.Instruction{Mnemonic: "MOVZX"}
	MOVSX = asm.Instruction{Mnemonic: "MOVSX"}

	// Stack.
	PUSH = asm.Instruction{Mnemonic: "PUSH", Variants: []string{"W", "Q"}}
	POP  = asm.Instruction{Mnemonic: "POP", Variants: []string{"W", "Q"}}

	// Arithmetic.
	ADD  = asm.Instruction{Mnemonic: "ADD", Variants: sizeVariants}
	SUB  = asm.Instruction{Mnemonic: "SUB", Variants: sizeVariants}
	CMP  = asm.Instruction{Mnemonic: "CMP", Variants: sizeVariants}
	MUL  = asm.Instruction{Mnemonic: "MUL", Variants: sizeVariants}
	IMUL = asm.Instruction{Mnemonic: "IMUL", Variants: sizeVariants}
	DIV  = asm.Instruction{Mnemonic: "DIV", Variants: sizeVariants}
	IDIV = asm.Instruction{Mnemonic: "IDIV", Variants: sizeVariants}
	INC  = asm.Instruction{Mnemonic: "INC", Variants: sizeVariants}
	DEC  = asm.Instruction{Mnemonic: "DEC", Variants: sizeVariants}
	NEG  = asm.Instruction{Mnemonic: "NEG", Variants: sizeVariants}

	// Logical.
	AND = asm.Instruction{Mnemonic: "AND", Variants: sizeVariants}
	OR  = asm.Instruction{Mnemonic: "OR", Variants: sizeVariants}
	XOR = asm.Instruction{Mnemonic: "XOR", Variants: sizeVariants}
	NOT = asm.Instruction{Mnemonic: "NOT", Variants: sizeVariants}
	TEST = asm.Instruction{Mnemonic: "TEST", Variants: sizeVariants}

	// Shift and rotate.
	SHL = asm.Instruction{Mnemonic: "SHL", Variants: sizeVariants}
	SHR = asm.Instruction{Mnemonic: "SHR", Variants: sizeVariants}
	SAR = asm.Instruction{Mnemonic: "SAR", Variants: sizeVariants}
	ROL = asm.Instruction{Mnemonic: "ROL", Variants: sizeVariants}
	ROR = asm.Instruction{Mnemonic: "ROR", Variants: sizeVariants}

	// Data transfer between registers.
	XCHG = asm.Instruction{Mnemonic: "XCHG", Variants: sizeVariants}
)

// instructionsByMnemonic indexes every supported instruction by its
// canonical (uppercased) base mnemonic.
var instructionsByMnemonic = map[string]asm.Instruction{
	"MOV": MOV, "LEA": LEA, "MOVZX": MOVZX, "MOVSX": MOVSX,
	"PUSH": PUSH, "POP": POP,
	"ADD": ADD, "SUB": SUB, "CMP": CMP,
	"MUL": MUL, "IMUL": IMUL, "DIV": DIV, "IDIV": IDIV,
	"INC": INC, "DEC": DEC, "NEG": NEG,
	"AND": AND, "OR": OR, "XOR": XOR, "NOT": NOT, "TEST": TEST,
	"SHL": SHL, "SHR": SHR, "SAR": SAR, "ROL": ROL, "ROR": ROR,
	"XCHG": XCHG,
}
