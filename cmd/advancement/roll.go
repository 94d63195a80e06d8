package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duskmantle/advancement-api/internal/orchestrators/dice"
)

var rollCmd = &cobra.Command{
	Use:   "roll <notation>",
	Short: "Roll dice from notation, e.g. 2d6",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoll,
}

func runRoll(cmd *cobra.Command, args []string) error {
	// Pure dice rolls need no Redis or config
	svc := dice.NewOrchestrator()

	output, err := svc.RollDice(cmd.Context(), &dice.RollDiceInput{Notation: args[0]})
	if err != nil {
		return err
	}

	fmt.Printf("%s = %d %v\n", args[0], output.Total, output.Dice)
	return nil
}
