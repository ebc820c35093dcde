package x86_64

import "github.com/attasm/attasm/internal/asm"

// General purpose registers, 64-bit.
var (
	RAX = asm.Register{Name: "RAX", Size: asm.Size64}
	RCX = asm.Register{Name: "RCX", Size: asm.Size64}
	RDX = asm.Register{Name: "RDX", Size: asm.Size64}
	RBX = asm.Register{Name: "RBX", Size: asm.Size64}
	RSP = asm.Register{Name: "RSP", Size: asm.Size64}
	RBP = asm.Register{Name: "RBP", Size: asm.Size64}
	RSI = asm.Register{Name: "RSI", Size: asm.Size64}
	RDI = asm.Register{Name: "RDI", Size: asm.Size64}
	R8  = asm.Register{Name: "R8", Size: asm.Size64}
	R9  = asm.Register{Name: "R9", Size: asm.Size64}
	R10 = asm.Register{Name: "R10", Size: asm.Size64}
	R11 = asm.Register{Name: "R11", Size: asm.Size64}
	R12 = asm.Register{Name: "R12", Size: asm.Size64}
	R13 = asm.Register{Name: "R13", Size: asm.Size64}
	R14 = asm.Register{Name: "R14", Size: asm.Size64}
	R15 = asm.Register{Name: "R15", Size: asm.Size64}
)

// General purpose registers, 32-bit.
var (
	EAX  = asm.Register{Name: "EAX", Size: asm.Size32}
	ECX  = asm.Register{Name: "ECX", Size: asm.Size32}
	EDX  = asm.Register{Name: "EDX", Size: asm.Size32}
	EBX  = asm.Register{Name: "EBX", Size: asm.Size32}
	ESP  = asm.Register{Name: "ESP", Size: asm.Size32}
	EBP  = asm.Register{Name: "EBP", Size: asm.Size32}
	ESI  = asm.Register{Name: "ESI", Size: asm.Size32}
	EDI  = asm.Register{Name: "EDI", Size: asm.Size32}
	R8D  = asm.Register{Name: "R8D", Size: asm.Size32}
	R9D  = asm.Register{Name: "R9D", Size: asm.Size32}
	R10D = asm.Register{Name: "R10D", Size: asm.Size32}
	R11D = asm.Register{Name: "R11D", Size: asm.Size32}
	R12D = asm.Register{Name: "R12D", Size: asm.Size32}
	R13D = asm.Register{Name: "R13D", Size: asm.Size32}
	R14D = asm.Register{Name: "R14D", Size: asm.Size32}
	R15D = asm.Register{Name: "R15D", Size: asm.Size32}
)

// General purpose registers, 16-bit.
var (
	AX   = asm.Register{Name: "AX", Size: asm.Size16}
	CX   = asm.Register{Name: "CX", Size: asm.Size16}
	DX   = asm.Register{Name: "DX", Size: asm.Size16}
	BX   = asm.Register{Name: "BX", Size: asm.Size16}
	SP   = asm.Register{Name: "SP", Size: asm.Size16}
	BP   = asm.Register{Name: "BP", Size: asm.Size16}
	SI   = asm.Register{Name: "SI", Size: asm.Size16}
	DI   = asm.Register{Name: "DI", Size: asm.Size16}
	R8W  = asm.Register{Name: "R8W", Size: asm.Size16}
	R9W  = asm.Register{Name: "R9W", Size: asm.Size16}
	R10W = asm.Register{Name: "R10W", Size: asm.Size16}
	R11W = asm.Register{Name: "R11W", Size: asm.Size16}
	R12W = asm.Register{Name: "R12W", Size: asm.Size16}
	R13W = asm.Register{Name: "R13W", Size: asm.Size16}
	R14W = asm.Register{Name: "R14W", Size: asm.Size16}
	R15W = asm.Register{Name: "R15W", Size: asm.Size16}
)

// General purpose registers, 8-bit (low byte, and legacy high byte for
// the four registers that predate the REX prefix).
var (
	AL   = asm.Register{Name: "AL", Size: asm.Size8}
	CL   = asm.Register{Name: "CL", Size: asm.Size8}
	DL   = asm.Register{Name: "DL", Size: asm.Size8}
	BL   = asm.Register{Name: "BL", Size: asm.Size8}
	SPL  = asm.Register{Name: "SPL", Size: asm.Size8}
	BPL  = asm.Register{Name: "BPL", Size: asm.Size8}
	SIL  = asm.Register{Name: "SIL", Size: asm.Size8}
	DIL  = asm.Register{Name: "DIL", Size: asm.Size8}
	R8B  = asm.Register{Name: "R8B", Size: asm.Size8}
	R9B  = asm.Register{Name: "R9B", Size: asm.Size8}
	R10B = asm.Register{Name: "R10B", Size: asm.Size8}
	R11B = asm.Register{Name: "R11B", Size: asm.Size8}
	R12B = asm.Register{Name: "R12B", Size: asm.Size8}
	R13B = asm.Register{Name: "R13B", Size: asm.Size8}
	R14B = asm.Register{Name: "R14B", Size: asm.Size8}
	R15B = asm.Register{Name: "R15B", Size: asm.Size8}
	AH   = asm.Register{Name: "AH", Size: asm.Size8}
	CH   = asm.Register{Name: "CH", Size: asm.Size8}
	DH   = asm.Register{Name: "DH", Size: asm.Size8}
	BH   = asm.Register{Name: "BH", Size: asm.Size8}
)

// registersByName indexes every supported register by its canonical
// (uppercased) name. Lookup is case-sensitive; the lexer uppercases source
// names before looking them up.
var registersByName = map[string]asm.Register{
	"RAX": RAX, "RCX": RCX, "RDX": RDX, "RBX": RBX,
	"RSP": RSP, "RBP": RBP, "RSI": RSI, "RDI": RDI,
	"R8": R8, "R9": R9, "R10": R10, "R11": R11,
	"R12": R12, "R13": R13, "R14": R14, "R15": R15,

	"EAX": EAX, "ECX": ECX, "EDX": EDX, "EBX": EBX,
	"ESP": ESP, "EBP": EBP, "ESI": ESI, "EDI": EDI,
	"R8D": R8D, "R9D": R9D, "R10D": R10D, "R11D": R11D,
	"R12D": R12D, "R13D": R13D, "R14D": R14D, "R15D": R15D,

	"AX": AX, "CX": CX, "DX": DX, "BX": BX,
	"SP": SP, "BP": BP, "SI": SI, "DI": DI,
	"R8W": R8W, "R9W": R9W, "R10W": R10W, "R11W": R11W,
	"R12W": R12W, "R13W": R13W, "R14W": R14W, "R15W": R15W,

	"AL": AL, "CL": CL, "DL": DL, "BL": BL,
	"SPL": SPL, "BPL": BPL, "SIL": SIL, "DIL": DIL,
	"R8B": R8B, "R9B": R9B, "R10B": R10B, "R11B": R11B,
	"R12B": R12B, "R13B": R13B, "R14B": R14B, "R15B": R15B,
	"AH": AH, "CH": CH, "DH": DH, "BH": BH,
}

// registerSet is the full catalog, built once at package init.
var registerSet = buildRegisterSet()

func buildRegisterSet() []asm.Register {
	set := make([]asm.Register, 0, len(registersByName))
	for _, r := range registersByName {
		set = append(set, r)
	}
	return set
}
