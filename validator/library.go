package validator

import (
	"math/big"

	"github.com/attasm/attasm/internal/asm"
	"github.com/attasm/attasm/token"
)

var (
	minInt32 = big.NewInt(-2147483648)
	maxInt32 = big.NewInt(2147483647)
	minInt64 = new(big.Int).SetInt64(-9223372036854775808)
	maxInt64 = new(big.Int).SetInt64(9223372036854775807)
)

var validScales = map[int]bool{1: true, 2: true, 4: true, 8: true}

var extendingMnemonics = map[string]bool{"MOVZX": true, "MOVSX": true}

var variantSizes = map[string]int{"B": 8, "W": 16, "L": 32, "Q": 64}

// registerSize returns the catalog size class, in bits, of a REGISTER
// operand. ok is false if operand is not a REGISTER or names no known
// register.
func registerSize(arch asm.Architecture, operand token.Token) (int, bool) {
	if operand.Kind != token.REGISTER {
		return 0, false
	}
	reg, ok := arch.RegisterByName(operand.Base)
	if !ok {
		return 0, false
	}
	return reg.Bits(), true
}

// absqOperands enforces that the 64-bit-absolute move variant accepts only
// an immediate source and a 64-bit register destination.
func absqOperands(arch asm.Architecture, instruction token.Token, operands []token.Token) error {
	if instruction.Variant != "ABSQ" {
		return nil
	}
	if len(operands) != 2 || operands[0].Kind != token.IMMEDIATE || operands[1].Kind != token.REGISTER {
		return newError(InvalidAbsqOperands, instruction.Text, "ABSQ requires an immediate source and a register destination")
	}
	size, ok := registerSize(arch, operands[1])
	if !ok || size != 64 {
		return newError(InvalidAbsqOperands, instruction.Text, "ABSQ destination must be a 64-bit register")
	}
	return nil
}

// movExtensionOperands enforces that zero/sign-extending moves widen: the
// destination register must be strictly larger than the source register.
// A memory source has no recorded size class in this token model, so the
// check is skipped in that case.
func movExtensionOperands(arch asm.Architecture, instruction token.Token, operands []token.Token) error {
	if !extendingMnemonics[instruction.Instruction] {
		return nil
	}
	if len(operands) != 2 {
		return newError(InvalidExtensionSizes, instruction.Text, "extending move requires exactly two operands")
	}
	srcSize, srcOk := registerSize(arch, operands[0])
	dstSize, dstOk := registerSize(arch, operands[1])
	if !dstOk {
		return newError(InvalidExtensionSizes, instruction.Text, "extending move destination must be a register")
	}
	if !srcOk {
		return nil // memory source: size class unknown, nothing to compare
	}
	if dstSize <= srcSize {
		return newError(InvalidExtensionSizes, instruction.Text, "destination register must be larger than source")
	}
	return nil
}

// noMemoryToMemory forbids two MEMORY operands on the same instruction.
func noMemoryToMemory(arch asm.Architecture, instruction token.Token, operands []token.Token) error {
	count := 0
	for _, op := range operands {
		if op.Kind == token.MEMORY {
			count++
		}
	}
	if count >= 2 {
		return newError(MemoryToMemory, instruction.Text, "memory-to-memory operations are not permitted")
	}
	return nil
}

// validMemoryOperands checks every MEMORY operand's scale and displacement
// range. Displacement widens to signed 64-bit range for the ABSQ variant;
// otherwise it must fit signed 32-bit.
func validMemoryOperands(arch asm.Architecture, instruction token.Token, operands []token.Token) error {
	maxDisp, minDisp := maxInt32, minInt32
	if instruction.Variant == "ABSQ" {
		maxDisp, minDisp = maxInt64, minInt64
	}
	for _, op := range operands {
		if op.Kind != token.MEMORY {
			continue
		}
		if op.Scale != nil && !validScales[*op.Scale] {
			return newError(InvalidMemoryOperand, instruction.Text, "scale must be one of 1, 2, 4, 8")
		}
		if op.Displacement != nil && (op.Displacement.Cmp(minDisp) < 0 || op.Displacement.Cmp(maxDisp) > 0) {
			return newError(InvalidMemoryOperand, instruction.Text, "displacement out of range")
		}
	}
	return nil
}

// variantRegisterOperandSize enforces that a size-variant suffix (B/W/L/Q)
// matches the size class of every REGISTER operand. Without a variant,
// register operands must at least agree with one another.
func variantRegisterOperandSize(arch asm.Architecture, instruction token.Token, operands []token.Token) error {
	if want, ok := variantSizes[instruction.Variant]; ok {
		for _, op := range operands {
			size, isReg := registerSize(arch, op)
			if isReg && size != want {
				return newError(OperandSizeMismatch, instruction.Text, "register operand size does not match variant")
			}
		}
		return nil
	}

	var common int
	for _, op := range operands {
		size, isReg := registerSize(arch, op)
		if !isReg {
			continue
		}
		if common == 0 {
			common = size
			continue
		}
		if size != common {
			return newError(OperandSizeMismatch, instruction.Text, "register operands disagree on size")
		}
	}
	return nil
}
