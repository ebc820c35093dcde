// Package numeric parses the signed decimal and hexadecimal integer
// literals that appear in immediate operands and memory-operand
// displacements.
package numeric

import (
	"fmt"
	"math/big"
	"strings"
)

// Kind classifies a numeric scanner failure.
type Kind string

const (
	EmptyImmediate Kind = "EmptyImmediate"
	InvalidNumber  Kind = "InvalidNumber"
)

// Error is returned by Scan when text does not denote a valid integer
// literal.
type Error struct {
	Kind Kind
	Text string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Text)
}

// Number is a scanned integer literal: its canonical text and its exact
// value as an arbitrary-precision signed integer.
type Number struct {
	Text  string
	Value *big.Int
}

// Scan parses text as a signed decimal or hexadecimal integer literal.
//
//	Decimal:     ["-"] digit+
//	Hexadecimal: ["-"] ("0x" | "0X") hexdigit+
//
// The canonical text has its hex digits uppercased, the "0x"/"0X" prefix
// kept as written, and the leading "-" (if any) preserved; an empty text
// fails with EmptyImmediate,
// any other malformed literal fails with InvalidNumber.
func Scan(text string) (Number, error) {
	if text == "" {
		return Number{}, &Error{Kind: EmptyImmediate, Text: text}
	}

	negative := false
	body := text
	if strings.HasPrefix(body, "-") {
		negative = true
		body = body[1:]
	}

	if body == "" {
		return Number{}, &Error{Kind: InvalidNumber, Text: text}
	}

	var value *big.Int
	var canonicalBody string

	if len(body) >= 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		digits := body[2:]
		if digits == "" || !isHexDigits(digits) {
			return Number{}, &Error{Kind: InvalidNumber, Text: text}
		}
		value = new(big.Int)
		if _, ok := value.SetString(digits, 16); !ok {
			return Number{}, &Error{Kind: InvalidNumber, Text: text}
		}
		canonicalBody = "0" + string(body[1]) + strings.ToUpper(digits)
	} else {
		if !isDecimalDigits(body) {
			return Number{}, &Error{Kind: InvalidNumber, Text: text}
		}
		value = new(big.Int)
		if _, ok := value.SetString(body, 10); !ok {
			return Number{}, &Error{Kind: InvalidNumber, Text: text}
		}
		canonicalBody = body
	}

	canonical := canonicalBody
	if negative {
		value.Neg(value)
		canonical = "-" + canonicalBody
	}

	return Number{Text: canonical, Value: value}, nil
}

func isDecimalDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
