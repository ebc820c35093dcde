package x86_64

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/attasm/attasm/architecture/x86_64"
	"github.com/attasm/attasm/internal/debugcontext"
	"github.com/attasm/attasm/internal/source"
	"github.com/attasm/attasm/lexer"
	"github.com/attasm/attasm/token"
	"github.com/attasm/attasm/validator"
)

var verboseValidate bool

// ValidateCmd lexes a source file, groups its tokens into per-instruction
// statements, and validates each one against its schema.
var ValidateCmd = &cobra.Command{
	Use:     "validate <assembly-file>",
	GroupID: "file-operations",
	Short:   "Lex and validate every instruction in an assembly file.",
	Long:    `Lex an assembly file and certify every instruction against its validation schema.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args[0])
	},
}

func init() {
	ValidateCmd.Flags().BoolVarP(&verboseValidate, "verbose", "v", false, "print diagnostics trace entries")
}

// statement is one instruction and its operand tokens, as handed to the
// validator by the downstream grouping step.
type statement struct {
	instruction token.Token
	operands    []token.Token
}

// groupStatements splits a flat token stream into statements at each
// INSTRUCTION token, collecting the COMMA-separated operands that follow up
// to the next INSTRUCTION or end of input.
func groupStatements(tokens []token.Token) []statement {
	var statements []statement
	var current *statement

	for _, tok := range tokens {
		switch tok.Kind {
		case token.INSTRUCTION:
			if current != nil {
				statements = append(statements, *current)
			}
			current = &statement{instruction: tok}
		case token.COMMA:
			// Separator only; operand order is preserved without it.
		default:
			if current != nil {
				current.operands = append(current.operands, tok)
			}
		}
	}
	if current != nil {
		statements = append(statements, *current)
	}
	return statements
}

func runValidate(cmd *cobra.Command, path string) error {
	src, err := source.Load(path)
	if err != nil {
		return err
	}

	var dbg *debugcontext.DebugContext
	if verboseValidate {
		dbg = debugcontext.NewDebugContext(path)
	}

	arch := x86_64.New()
	tokens, err := lexer.New(arch).Tokenize(src.Content(), dbg)
	if err != nil {
		cmd.PrintErrln("Error:", err)
		return err
	}

	failed := false
	for _, stmt := range groupStatements(tokens) {
		if err := validator.Validate(arch, stmt.instruction, stmt.operands, dbg); err != nil {
			cmd.PrintErrln(fmt.Sprintf("%s: %s", stmt.instruction.Text, err))
			failed = true
			continue
		}
		cmd.Println(stmt.instruction.Text, "ok")
	}

	if dbg != nil {
		for _, entry := range dbg.Entries() {
			cmd.Println(entry.String())
		}
	}

	if failed {
		return fmt.Errorf("one or more instructions failed validation")
	}
	return nil
}
