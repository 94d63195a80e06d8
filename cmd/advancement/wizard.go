package main

import (
	"github.com/spf13/cobra"

	"github.com/duskmantle/advancement-api/internal/errors"
	advancementsession "github.com/duskmantle/advancement-api/internal/repositories/advancement_session"
	"github.com/duskmantle/advancement-api/internal/tui"
)

var (
	wizardCharacterID string
	wizardStudy       bool
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Run the advancement wizard",
	Long: `Run the interactive advancement wizard for a character.

The default flow is end-of-session advancement: enter marks, select
skills, roll each. With --study the wizard runs the downtime study flow
instead: teacher-guided skill study, spell learning, or a new school.`,
	RunE: runWizard,
}

func init() {
	wizardCmd.Flags().StringVarP(&wizardCharacterID, "character", "c", "", "character ID (required)")
	wizardCmd.Flags().BoolVar(&wizardStudy, "study", false, "run the study flow instead of end-of-session")
	_ = wizardCmd.MarkFlagRequired("character")
}

func runWizard(cmd *cobra.Command, args []string) error {
	app, cleanup, err := newApp()
	if err != nil {
		return err
	}
	defer cleanup()

	mode := advancementsession.ModeEndSession
	if wizardStudy {
		mode = advancementsession.ModeStudy
	}

	if err := tui.Run(&tui.Config{
		AdvancementService: app.advancementService,
		CharacterService:   app.characterService,
		CharacterID:        wizardCharacterID,
		Mode:               mode,
	}); err != nil {
		return errors.Wrap(err, "wizard failed")
	}
	return nil
}
