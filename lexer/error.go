package lexer

import "fmt"

// Kind classifies why tokenize failed.
type Kind string

const (
	UnsupportedInstruction                    Kind = "UnsupportedInstruction"
	ExpectedWhitespaceAfterInstruction        Kind = "ExpectedWhitespaceAfterInstruction"
	ExpectedNewlineBeforeSubsequentInstruction Kind = "ExpectedNewlineBeforeSubsequentInstruction"
	UnexpectedRegister                        Kind = "UnexpectedRegister"
	InvalidBaseRegister                       Kind = "InvalidBaseRegister"
	InvalidIndexRegister                      Kind = "InvalidIndexRegister"
	InvalidAddressing                         Kind = "InvalidAddressing"
	MissingClosingParenthesis                 Kind = "MissingClosingParenthesis"
	MissingOpeningParenthesis                 Kind = "MissingOpeningParenthesis"
	EmptyImmediate                            Kind = "EmptyImmediate"
	InvalidNumber                             Kind = "InvalidNumber"
	UnexpectedCharacter                       Kind = "UnexpectedCharacter"
)

// Error reports a lexing failure at a specific source position. The
// offending token text is embedded in Message, double-quoted.
type Error struct {
	Kind    Kind
	Text    string
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %q (line %d, column %d)", e.Kind, e.Text, e.Line, e.Column)
}

func newError(kind Kind, text string, line, column int) *Error {
	return &Error{
		Kind:    kind,
		Text:    text,
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf("%s: %q", kind, text),
	}
}
