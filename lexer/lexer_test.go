package lexer

import (
	"math/big"
	"testing"

	"github.com/attasm/attasm/architecture/x86_64"
	"github.com/attasm/attasm/token"
)

func tokenize(t *testing.T, source string) ([]token.Token, error) {
	t.Helper()
	l := New(x86_64.New())
	return l.Tokenize(source, nil)
}

func TestTokenizeSimpleRegisters(t *testing.T) {
	toks, err := tokenize(t, "MOV %rax, %rbx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []struct {
		kind token.Kind
		text string
	}{
		{token.INSTRUCTION, "MOV"},
		{token.REGISTER, "%RAX"},
		{token.COMMA, ","},
		{token.REGISTER, "%RBX"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Text != w.text {
			t.Errorf("token[%d] = %v %q, want %v %q", i, toks[i].Kind, toks[i].Text, w.kind, w.text)
		}
	}
}

func TestTokenizeABSQImmediate(t *testing.T) {
	toks, err := tokenize(t, "MOVABSQ $0x1234567890abcdef, %rax")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4: %+v", len(toks), toks)
	}
	if toks[0].Instruction != "MOV" || toks[0].Variant != "ABSQ" {
		t.Errorf("instruction = %q variant = %q, want MOV/ABSQ", toks[0].Instruction, toks[0].Variant)
	}
	if toks[1].Text != "$0x1234567890ABCDEF" {
		t.Errorf("immediate text = %q", toks[1].Text)
	}
	want := big.NewInt(1311768467294899695)
	if toks[1].Value.Cmp(want) != 0 {
		t.Errorf("immediate value = %v, want %v", toks[1].Value, want)
	}
}

func TestTokenizeMemoryFullForm(t *testing.T) {
	toks, err := tokenize(t, "MOV 0x123abc(%rax, %rbx, 8), %rcx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mem := toks[1]
	if mem.Kind != token.MEMORY {
		t.Fatalf("kind = %v, want MEMORY", mem.Kind)
	}
	if mem.Displacement.Int64() != 1194684 {
		t.Errorf("displacement = %v, want 1194684", mem.Displacement)
	}
	if mem.Base != "RAX" || mem.Index != "RBX" || mem.Scale == nil || *mem.Scale != 8 {
		t.Errorf("base/index/scale = %q/%q/%v", mem.Base, mem.Index, mem.Scale)
	}
	if mem.Text != "0x123ABC(%RAX,%RBX,8)" {
		t.Errorf("text = %q", mem.Text)
	}
}

func TestTokenizeMemoryDisplacementAndBase(t *testing.T) {
	toks, err := tokenize(t, "MOV -123(%rax), %rbx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mem := toks[1]
	if mem.Displacement.Int64() != -123 {
		t.Errorf("displacement = %v, want -123", mem.Displacement)
	}
	if mem.Base != "RAX" {
		t.Errorf("base = %q, want RAX", mem.Base)
	}
	if mem.Text != "-123(%RAX)" {
		t.Errorf("text = %q", mem.Text)
	}
}

func TestTokenizeMemoryIndexScaleNoBase(t *testing.T) {
	toks, err := tokenize(t, "MOV (,%rbx,8), %rcx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mem := toks[1]
	if mem.Base != "" {
		t.Errorf("base = %q, want empty", mem.Base)
	}
	if mem.Index != "RBX" || mem.Scale == nil || *mem.Scale != 8 {
		t.Errorf("index/scale = %q/%v", mem.Index, mem.Scale)
	}
	if mem.Text != "(,%RBX,8)" {
		t.Errorf("text = %q", mem.Text)
	}
}

func TestTokenizeTwoInstructionsOneLine(t *testing.T) {
	_, err := tokenize(t, "MOV %rax, %rbx ADD %rax, %rbx")
	assertLexerError(t, err, ExpectedNewlineBeforeSubsequentInstruction)
}

func TestTokenizeInvalidIndexRegister(t *testing.T) {
	_, err := tokenize(t, "MOV (%rax,,8), %rcx")
	lexErr := assertLexerError(t, err, InvalidIndexRegister)
	if lexErr.Text != "" {
		t.Errorf("Text = %q, want empty", lexErr.Text)
	}
}

func TestTokenizeInvalidAddressing(t *testing.T) {
	_, err := tokenize(t, "MOV 0x123abc(%rax, %rbx, 8, %rcx), %rdx")
	lexErr := assertLexerError(t, err, InvalidAddressing)
	if lexErr.Text != "(%RAX, %RBX, 8, %RCX)" {
		t.Errorf("Text = %q", lexErr.Text)
	}
}

func TestTokenizeEmptyImmediate(t *testing.T) {
	_, err := tokenize(t, "MOV $, %rax")
	assertLexerError(t, err, EmptyImmediate)
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := tokenize(t, "MOV %rax, %rbx @")
	lexErr := assertLexerError(t, err, UnexpectedCharacter)
	if lexErr.Text != "@" {
		t.Errorf("Text = %q, want @", lexErr.Text)
	}
}

func TestTokenizeEveryMnemonicAcceptsRegisterPair(t *testing.T) {
	for mnemonic := range x86_64.SupportedInstructions {
		toks, err := tokenize(t, mnemonic+" %rax, %rbx")
		if err != nil {
			t.Errorf("%s: unexpected error: %v", mnemonic, err)
			continue
		}
		if toks[0].Instruction != mnemonic {
			t.Errorf("%s: instruction = %q", mnemonic, toks[0].Instruction)
		}
	}
}

func TestTokenizeEveryRegisterAccepted(t *testing.T) {
	for name := range x86_64.SupportedRegisters {
		_, err := tokenize(t, "MOV $0x1, %"+name)
		if err != nil {
			t.Errorf("register %s: unexpected error: %v", name, err)
		}
	}
}

func TestTokenizeUnsupportedInstruction(t *testing.T) {
	_, err := tokenize(t, "FROB %rax, %rbx")
	assertLexerError(t, err, UnsupportedInstruction)
}

func TestTokenizeUnexpectedRegister(t *testing.T) {
	_, err := tokenize(t, "MOV %zzz, %rax")
	assertLexerError(t, err, UnexpectedRegister)
}

func TestTokenizeMissingClosingParenthesis(t *testing.T) {
	_, err := tokenize(t, "MOV (%rax, %rbx")
	assertLexerError(t, err, MissingClosingParenthesis)
}

func TestTokenizeCommentsAndBlankLines(t *testing.T) {
	toks, err := tokenize(t, "# a comment\n\nMOV %rax, %rbx # trailing\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4: %+v", len(toks), toks)
	}
}

func assertLexerError(t *testing.T, err error, wantKind Kind) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error kind %s, got nil", wantKind)
	}
	lexErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *lexer.Error, got %T: %v", err, err)
	}
	if lexErr.Kind != wantKind {
		t.Fatalf("Kind = %s, want %s (%v)", lexErr.Kind, wantKind, err)
	}
	return lexErr
}
