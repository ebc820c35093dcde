package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "attasm",
	Short: "attasm assembly front-end",
	Long:  `attasm lexes and validates AT&T-syntax x86-64 assembly source.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "arch",
		Title: "Architectures",
	})

	rootCmd.AddCommand(x8664Cmd)
}
