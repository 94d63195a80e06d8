// Package main is the entry point for the advancement CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "advancement",
	Short: "Dragonbane-style character advancement",
	Long: `Advancement manages characters and runs the advancement wizard:
end-of-session skill rolls, teacher study, spell learning, and new
schools of magic. State lives in Redis.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(characterCmd)
	rootCmd.AddCommand(rollCmd)
}
