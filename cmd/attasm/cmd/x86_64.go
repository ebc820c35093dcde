package cmd

import (
	"github.com/spf13/cobra"

	x8664 "github.com/attasm/attasm/cmd/attasm/cmd/x86_64"
)

var x8664Cmd = &cobra.Command{
	Use:     "x86_64",
	GroupID: "arch",
	Short:   "x86_64 architecture",
	Long:    `Lexing and validation commands for the x86_64 architecture.`,
}

func init() {
	x8664Cmd.AddGroup(&cobra.Group{
		ID:    "file-operations",
		Title: "File operations",
	})
	x8664Cmd.AddCommand(x8664.TokenizeCmd)
	x8664Cmd.AddCommand(x8664.ValidateCmd)
	x8664Cmd.AddCommand(x8664.OperandTypesCmd)
}
