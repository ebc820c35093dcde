package x86_64

import (
	"github.com/spf13/cobra"

	"github.com/attasm/attasm/architecture/x86_64"
)

// OperandTypesCmd lists the operand type catalog: every register/immediate
// size class and the sizeless memory operand, as used by schema authors to
// see the full operand surface a rule can match against.
var OperandTypesCmd = &cobra.Command{
	Use:     "operand-types",
	GroupID: "file-operations",
	Short:   "List the catalog of operand types.",
	Long:    `List every operand type in the catalog: identifier, kind, and bit width.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, ot := range x86_64.New().OperandTypes() {
			if ot.Bits() == 0 {
				cmd.Printf("%s %s\n", ot.IdentifierOf(), ot.TypeOf())
				continue
			}
			cmd.Printf("%s %s %d\n", ot.IdentifierOf(), ot.TypeOf(), ot.Bits())
		}
		return nil
	},
}
