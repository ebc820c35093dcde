package validator

import "fmt"

// Kind classifies why validate rejected an instruction.
type Kind string

const (
	UnknownInstruction    Kind = "UnknownInstruction"
	UnsupportedVariant    Kind = "UnsupportedVariant"
	WrongOperandCount     Kind = "WrongOperandCount"
	InvalidAbsqOperands   Kind = "InvalidAbsqOperands"
	InvalidExtensionSizes Kind = "InvalidExtensionSizes"
	MemoryToMemory        Kind = "MemoryToMemory"
	InvalidMemoryOperand  Kind = "InvalidMemoryOperand"
	OperandSizeMismatch   Kind = "OperandSizeMismatch"
)

// Error reports a validation failure. Instruction carries the canonical
// text of the offending instruction token; no source position is kept.
type Error struct {
	Kind        Kind
	Message     string
	Instruction string // instruction.Text, embedded for diagnostic context
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Instruction)
}

func newError(kind Kind, instruction, message string) *Error {
	return &Error{Kind: kind, Message: message, Instruction: instruction}
}
