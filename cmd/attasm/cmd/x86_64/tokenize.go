package x86_64

import (
	"github.com/spf13/cobra"

	"github.com/attasm/attasm/architecture/x86_64"
	"github.com/attasm/attasm/internal/debugcontext"
	"github.com/attasm/attasm/internal/source"
	"github.com/attasm/attasm/lexer"
)

var verboseTokenize bool

// TokenizeCmd lexes a source file and prints its token stream, one token
// per line in "KIND text" form.
var TokenizeCmd = &cobra.Command{
	Use:     "tokenize <assembly-file>",
	GroupID: "file-operations",
	Short:   "Lex an assembly file and print its token stream.",
	Long:    `Lex an assembly file and print its token stream, one token per line.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTokenize(cmd, args[0])
	},
}

func init() {
	TokenizeCmd.Flags().BoolVarP(&verboseTokenize, "verbose", "v", false, "print diagnostics trace entries")
}

func runTokenize(cmd *cobra.Command, path string) error {
	src, err := source.Load(path)
	if err != nil {
		return err
	}

	var dbg *debugcontext.DebugContext
	if verboseTokenize {
		dbg = debugcontext.NewDebugContext(path)
	}

	l := lexer.New(x86_64.New())
	tokens, err := l.Tokenize(src.Content(), dbg)
	if err != nil {
		cmd.PrintErrln("Error:", err)
		return err
	}

	for _, tok := range tokens {
		cmd.Printf("%s %s\n", tok.Kind, tok.Text)
	}

	if dbg != nil {
		for _, entry := range dbg.Entries() {
			cmd.Println(entry.String())
		}
	}

	return nil
}
