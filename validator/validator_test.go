package validator

import (
	"math/big"
	"testing"

	"github.com/attasm/attasm/architecture/x86_64"
	"github.com/attasm/attasm/token"
)

var arch = x86_64.New()

func reg(name string) token.Token {
	return token.NewRegister(name, 1, 1)
}

func imm(v int64) token.Token {
	return token.NewImmediate(big.NewInt(v).String(), big.NewInt(v), 1, 1)
}

func mem(fields token.MemoryFields) token.Token {
	return token.NewMemory(fields, 1, 1)
}

func TestValidateMovRegisters(t *testing.T) {
	instr := token.NewInstruction("MOV", "Q", 1, 1)
	err := Validate(arch, instr, []token.Token{reg("RAX"), reg("RBX")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateUnknownInstruction(t *testing.T) {
	instr := token.NewInstruction("FROB", "", 1, 1)
	err := Validate(arch, instr, nil, nil)
	assertKind(t, err, UnknownInstruction)
}

func TestValidateUnsupportedVariant(t *testing.T) {
	instr := token.NewInstruction("LEA", "ABSQ", 1, 1)
	err := Validate(arch, instr, []token.Token{mem(token.MemoryFields{Base: "RAX"}), reg("RBX")}, nil)
	assertKind(t, err, UnsupportedVariant)
}

func TestValidateWrongOperandCount(t *testing.T) {
	instr := token.NewInstruction("MOV", "Q", 1, 1)
	err := Validate(arch, instr, []token.Token{reg("RAX")}, nil)
	assertKind(t, err, WrongOperandCount)
}

func TestValidateNoMemoryToMemory(t *testing.T) {
	instr := token.NewInstruction("MOV", "Q", 1, 1)
	operands := []token.Token{
		mem(token.MemoryFields{Base: "RAX"}),
		mem(token.MemoryFields{Base: "RBX"}),
	}
	err := Validate(arch, instr, operands, nil)
	assertKind(t, err, MemoryToMemory)
}

func TestValidateAbsqOperands(t *testing.T) {
	instr := token.NewInstruction("MOV", "ABSQ", 1, 1)

	err := Validate(arch, instr, []token.Token{imm(42), reg("RAX")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = Validate(arch, instr, []token.Token{imm(42), reg("EAX")}, nil)
	assertKind(t, err, InvalidAbsqOperands)
}

func TestValidateMovExtensionOperands(t *testing.T) {
	instr := token.NewInstruction("MOVZX", "", 1, 1)

	err := Validate(arch, instr, []token.Token{reg("AL"), reg("EAX")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = Validate(arch, instr, []token.Token{reg("EAX"), reg("AL")}, nil)
	assertKind(t, err, InvalidExtensionSizes)
}

func TestValidateMemoryScaleRange(t *testing.T) {
	instr := token.NewInstruction("MOV", "Q", 1, 1)
	badScale := 3
	operands := []token.Token{
		mem(token.MemoryFields{Base: "RAX", Index: "RBX", Scale: &badScale}),
		reg("RCX"),
	}
	err := Validate(arch, instr, operands, nil)
	assertKind(t, err, InvalidMemoryOperand)
}

func TestValidateMemoryDisplacementRange(t *testing.T) {
	instr := token.NewInstruction("MOV", "Q", 1, 1)
	tooBig := new(big.Int).Lsh(big.NewInt(1), 40) // exceeds signed 32-bit range
	operands := []token.Token{
		mem(token.MemoryFields{DisplacementLiteral: tooBig.String(), Displacement: tooBig, Base: "RAX"}),
		reg("RCX"),
	}
	err := Validate(arch, instr, operands, nil)
	assertKind(t, err, InvalidMemoryOperand)
}

func TestValidateDisplacementWidensForAbsq(t *testing.T) {
	instr := token.NewInstruction("MOV", "ABSQ", 1, 1)
	operands := []token.Token{imm(1), reg("RAX")}
	err := Validate(arch, instr, operands, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A displacement outside signed 32-bit range passes the memory check
	// under ABSQ (signed 64-bit range) and fails it under Q.
	wide := new(big.Int).Lsh(big.NewInt(1), 40)
	memOperands := []token.Token{
		mem(token.MemoryFields{DisplacementLiteral: wide.String(), Displacement: wide, Base: "RAX"}),
		reg("RCX"),
	}
	if err := validMemoryOperands(arch, instr, memOperands); err != nil {
		t.Errorf("ABSQ displacement %v rejected: %v", wide, err)
	}
	err = validMemoryOperands(arch, token.NewInstruction("MOV", "Q", 1, 1), memOperands)
	assertKind(t, err, InvalidMemoryOperand)
}

func TestValidateVariantRegisterOperandSize(t *testing.T) {
	instr := token.NewInstruction("ADD", "L", 1, 1)

	err := Validate(arch, instr, []token.Token{reg("EAX"), reg("EBX")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = Validate(arch, instr, []token.Token{reg("RAX"), reg("EBX")}, nil)
	assertKind(t, err, OperandSizeMismatch)
}

func TestValidateRegistersAgreeWithoutVariant(t *testing.T) {
	instr := token.NewInstruction("ADD", "", 1, 1)

	err := Validate(arch, instr, []token.Token{reg("EAX"), reg("EBX")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = Validate(arch, instr, []token.Token{reg("RAX"), reg("EBX")}, nil)
	assertKind(t, err, OperandSizeMismatch)
}

func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error kind %s, got nil", want)
	}
	valErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *validator.Error, got %T: %v", err, err)
	}
	if valErr.Kind != want {
		t.Fatalf("Kind = %s, want %s (%v)", valErr.Kind, want, err)
	}
}
