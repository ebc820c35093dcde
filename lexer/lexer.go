// Package lexer scans AT&T-syntax x86-64 assembly source text into a flat
// token stream: instructions, registers, immediates, memory operands, and
// commas.
package lexer

import (
	"math/big"
	"strings"

	"github.com/attasm/attasm/internal/asm"
	"github.com/attasm/attasm/internal/debugcontext"
	"github.com/attasm/attasm/numeric"
	"github.com/attasm/attasm/token"
)

// state names the lexer's position within a single line. It has no
// exported surface — callers only see Tokenize's result.
type state int

const (
	lineStart state = iota
	expectOperand
	afterOperand
)

// Lexer scans a fixed input string left-to-right, byte at a time. It holds
// no shared mutable state beyond its own scan position, so distinct
// Lexer values over distinct inputs may run concurrently.
type Lexer struct {
	arch  asm.Architecture
	input string

	position     int  // index of ch
	readPosition int  // index of next byte to read
	ch           byte // current byte, 0 at end of input

	line   int
	column int
}

// New returns a Lexer that validates registers and mnemonics against arch.
func New(arch asm.Architecture) *Lexer {
	return &Lexer{arch: arch}
}

// Tokenize scans source and returns its token sequence, or the first
// lexical error encountered. dbg may be nil; when non-nil it records one
// Trace entry per emitted token and one Error entry on failure.
func (l *Lexer) Tokenize(source string, dbg *debugcontext.DebugContext) (_ []token.Token, err error) {
	defer func() {
		if err == nil || dbg == nil {
			return
		}
		line, column := l.line, l.column
		if lexErr, ok := err.(*Error); ok {
			line, column = lexErr.Line, lexErr.Column
		}
		dbg.Error(dbg.Loc(line, column), err.Error())
	}()

	l.input = source
	l.position = 0
	l.readPosition = 0
	l.ch = 0
	l.line = 1
	l.column = 0
	l.readChar()

	if dbg != nil {
		dbg.SetPhase("lex")
	}

	var tokens []token.Token
	st := lineStart

	for {
		switch st {
		case lineStart:
			if err := l.skipSeparators(); err != nil {
				return nil, err
			}
			if l.ch == 0 {
				return tokens, nil
			}
			instr, err := l.readMnemonic()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, instr)
			traceToken(dbg, instr)
			if l.ch == 0 {
				return tokens, nil
			}
			l.skipSpaces()
			st = expectOperand

		case expectOperand:
			l.skipSpaces()
			if l.ch == '\n' {
				l.line++
				l.column = 0
				l.readChar()
				st = lineStart
				continue
			}
			if l.ch == '#' {
				l.skipComment()
				continue
			}
			if l.ch == 0 {
				return tokens, nil
			}
			tok, err := l.readOperand()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			traceToken(dbg, tok)
			st = afterOperand

		case afterOperand:
			switch {
			case l.ch == ' ' || l.ch == '\t':
				l.readChar()
			case l.ch == ',':
				comma := token.NewComma(l.line, l.column)
				l.readChar()
				tokens = append(tokens, comma)
				traceToken(dbg, comma)
				st = expectOperand
			case l.ch == '#':
				l.skipComment()
			case l.ch == '\n':
				l.line++
				l.column = 0
				l.readChar()
				st = lineStart
			case l.ch == 0:
				return tokens, nil
			case isLetter(l.ch):
				return nil, newError(ExpectedNewlineBeforeSubsequentInstruction, l.restOfLine(), l.line, l.column)
			case l.ch == ')':
				return nil, newError(MissingOpeningParenthesis, ")", l.line, l.column)
			default:
				return nil, newError(UnexpectedCharacter, string(l.ch), l.line, l.column)
			}
		}
	}
}

func traceToken(dbg *debugcontext.DebugContext, tok token.Token) {
	if dbg == nil {
		return
	}
	dbg.Trace(dbg.Loc(tok.Line, tok.Column), "lexed "+tok.Kind.String()+" "+tok.Text)
}

// --- byte scanning primitives ---

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// --- separators ---

// skipSeparators consumes whitespace, blank lines, and comments while at
// lineStart, positioning l.ch on the first byte of the next mnemonic (or
// end of input).
func (l *Lexer) skipSeparators() error {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n':
			if l.ch == '\n' {
				l.line++
				l.column = 0
			}
			l.readChar()
		case l.ch == '#':
			l.skipComment()
		default:
			return nil
		}
	}
}

func (l *Lexer) skipSpaces() {
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
}

func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// restOfLine consumes and returns everything from the current position up
// to (not including) the next newline or end of input.
func (l *Lexer) restOfLine() string {
	start := l.position
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return l.input[start:l.position]
}

// --- mnemonic ---

func (l *Lexer) readMnemonic() (token.Token, error) {
	line, column := l.line, l.column
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	run := strings.ToUpper(l.input[start:l.position])

	base, variant, ok := l.splitMnemonic(run)
	if !ok {
		return token.Token{}, newError(UnsupportedInstruction, run, line, column)
	}

	if l.ch != 0 && !isWhitespace(l.ch) {
		return token.Token{}, newError(ExpectedWhitespaceAfterInstruction, run, line, column)
	}

	return token.NewInstruction(base, variant, line, column), nil
}

// splitMnemonic finds the longest base-mnemonic prefix of run such that the
// remaining suffix is a variant that mnemonic supports, trying the bare
// (variant-less) form first.
func (l *Lexer) splitMnemonic(run string) (base, variant string, ok bool) {
	for split := len(run); split >= 1; split-- {
		candidate := run[:split]
		if !l.arch.IsInstruction(candidate) {
			continue
		}
		suffix := run[split:]
		instr := l.arch.Instructions()[candidate]
		if instr.SupportsVariant(suffix) {
			return candidate, suffix, true
		}
	}
	return "", "", false
}

// --- operands ---

func (l *Lexer) readOperand() (token.Token, error) {
	line, column := l.line, l.column

	switch {
	case l.ch == '%':
		return l.readRegister(line, column)
	case l.ch == '$':
		return l.readImmediate(line, column)
	case l.ch == ')':
		return token.Token{}, newError(MissingOpeningParenthesis, ")", line, column)
	case l.ch == '(' || l.ch == '-' || isDigit(l.ch):
		return l.readMemory(line, column)
	default:
		return token.Token{}, newError(UnexpectedCharacter, string(l.ch), line, column)
	}
}

func (l *Lexer) readRegister(line, column int) (token.Token, error) {
	l.readChar() // consume '%'
	start := l.position
	for isAlphanumeric(l.ch) {
		l.readChar()
	}
	name := strings.ToUpper(l.input[start:l.position])
	if !l.arch.IsRegister(name) {
		return token.Token{}, newError(UnexpectedRegister, "%"+name, line, column)
	}
	return token.NewRegister(name, line, column), nil
}

func (l *Lexer) readImmediate(line, column int) (token.Token, error) {
	l.readChar() // consume '$'
	literal := l.readSignedIntText()
	if literal == "" {
		return token.Token{}, newError(EmptyImmediate, "$", line, column)
	}
	n, err := numeric.Scan(literal)
	if err != nil {
		return token.Token{}, toLexerError(err, line, column)
	}
	return token.NewImmediate(n.Text, n.Value, line, column), nil
}

// readSignedIntText consumes an optional '-' followed by either a 0x/0X hex
// run or a decimal digit run. It does not validate the literal; numeric.Scan
// does that. Returns "" if no digits follow an optional sign.
func (l *Lexer) readSignedIntText() string {
	start := l.position
	if l.ch == '-' {
		l.readChar()
	}
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar() // '0'
		l.readChar() // 'x'/'X'
		for isHexDigit(l.ch) {
			l.readChar()
		}
	} else {
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	text := l.input[start:l.position]
	if text == "-" {
		return ""
	}
	return text
}

func toLexerError(err error, line, column int) error {
	numErr, ok := err.(*numeric.Error)
	if !ok {
		return err
	}
	kind := InvalidNumber
	if numErr.Kind == numeric.EmptyImmediate {
		kind = EmptyImmediate
	}
	return newError(kind, numErr.Text, line, column)
}

// --- memory operands ---

func (l *Lexer) readMemory(line, column int) (token.Token, error) {
	var dispLiteral string
	var disp *big.Int

	if l.ch != '(' {
		literal := l.readSignedIntText()
		n, err := numeric.Scan(literal)
		if err != nil {
			return token.Token{}, toLexerError(err, line, column)
		}
		dispLiteral = n.Text
		disp = n.Value
	}

	if l.ch != '(' {
		return token.NewMemory(token.MemoryFields{
			DisplacementLiteral: dispLiteral,
			Displacement:        disp,
		}, line, column), nil
	}

	fields, err := l.readParenTuple(line, column)
	if err != nil {
		return token.Token{}, err
	}
	fields.DisplacementLiteral = dispLiteral
	fields.Displacement = disp
	return token.NewMemory(fields, line, column), nil
}

// readParenTuple parses "(" field {"," field} ")" where field is either a
// register ("%name"), empty, or (in the scale position) an integer
// literal. Newlines and end-of-input before the closing ")" both fail with
// MissingClosingParenthesis.
func (l *Lexer) readParenTuple(line, column int) (token.MemoryFields, error) {
	l.readChar() // consume '('

	var rawFields []string
	start := l.position
	for {
		switch l.ch {
		case 0, '\n':
			return token.MemoryFields{}, newError(MissingClosingParenthesis, "(", line, column)
		case ',':
			rawFields = append(rawFields, strings.TrimSpace(l.input[start:l.position]))
			l.readChar()
			start = l.position
		case ')':
			rawFields = append(rawFields, strings.TrimSpace(l.input[start:l.position]))
			l.readChar()
			return l.assignTupleFields(rawFields, line, column)
		default:
			l.readChar()
		}
	}
}

func (l *Lexer) assignTupleFields(fields []string, line, column int) (token.MemoryFields, error) {
	if len(fields) > 3 {
		return token.MemoryFields{}, newError(InvalidAddressing, reconstructTuple(fields), line, column)
	}

	var result token.MemoryFields

	base := fields[0]
	allowEmptyBase := len(fields) == 3

	switch len(fields) {
	case 1:
		reg, err := l.validRegisterField(base, InvalidBaseRegister, line, column)
		if err != nil {
			return token.MemoryFields{}, err
		}
		result.Base = reg

	case 2:
		reg, err := l.validRegisterField(base, InvalidBaseRegister, line, column)
		if err != nil {
			return token.MemoryFields{}, err
		}
		result.Base = reg

		index, err := l.validRegisterField(fields[1], InvalidIndexRegister, line, column)
		if err != nil {
			return token.MemoryFields{}, err
		}
		result.Index = index

	case 3:
		if base != "" || !allowEmptyBase {
			reg, err := l.validRegisterField(base, InvalidBaseRegister, line, column)
			if err != nil {
				return token.MemoryFields{}, err
			}
			result.Base = reg
		}

		index, err := l.validRegisterField(fields[1], InvalidIndexRegister, line, column)
		if err != nil {
			return token.MemoryFields{}, err
		}
		result.Index = index

		scale, err := parseScale(fields[2])
		if err != nil {
			return token.MemoryFields{}, newError(InvalidAddressing, reconstructTuple(fields), line, column)
		}
		result.Scale = &scale
	}

	return result, nil
}

// validRegisterField validates a "%name" field against the register
// catalog, returning the canonical (uppercased) name. An empty or
// malformed field fails with kind, echoing the raw field text verbatim
// rather than a reconstructed form.
func (l *Lexer) validRegisterField(field string, kind Kind, line, column int) (string, error) {
	if !strings.HasPrefix(field, "%") {
		return "", newError(kind, field, line, column)
	}
	name := strings.ToUpper(field[1:])
	if !l.arch.IsRegister(name) {
		return "", newError(kind, field, line, column)
	}
	return name, nil
}

func parseScale(field string) (int, error) {
	n, err := numeric.Scan(field)
	if err != nil {
		return 0, err
	}
	return int(n.Value.Int64()), nil
}

// reconstructTuple rebuilds the parenthesized, comma-space-joined form used
// in InvalidAddressing messages, uppercasing register fields for canonical
// display.
func reconstructTuple(fields []string) string {
	display := make([]string, len(fields))
	for i, f := range fields {
		if strings.HasPrefix(f, "%") {
			display[i] = "%" + strings.ToUpper(f[1:])
		} else {
			display[i] = f
		}
	}
	return "(" + strings.Join(display, ", ") + ")"
}

// --- character classes ---

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}

func isAlphanumeric(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '#'
}
