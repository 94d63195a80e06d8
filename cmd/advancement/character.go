package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/duskmantle/advancement-api/internal/errors"
	"github.com/duskmantle/advancement-api/internal/orchestrators/character"
)

var characterCmd = &cobra.Command{
	Use:     "character",
	Aliases: []string{"char"},
	Short:   "Manage characters",
}

var (
	createPlayerID   string
	createName       string
	createKin        string
	createProfession string
	createAttrs      []string
	createTrained    []string
)

var characterCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a character",
	Example: `  advancement character create --player p1 --name "Halvor" \
    --kin Human --profession Warrior \
    --attr STR=14 --attr AGL=12 --attr INT=10 --attr CON=13 --attr WIL=9 --attr CHA=8 \
    --trained Swords --trained Evade`,
	RunE: runCharacterCreate,
}

var listPlayerID string

var characterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a player's characters",
	RunE:  runCharacterList,
}

var characterSheetCmd = &cobra.Command{
	Use:   "sheet <character-id>",
	Short: "Show the resolved skill sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runCharacterSheet,
}

var characterMarkCmd = &cobra.Command{
	Use:   "mark <character-id> <skill>",
	Short: "Mark a skill used during play",
	Args:  cobra.ExactArgs(2),
	RunE:  runCharacterMark,
}

var characterUnmarkCmd = &cobra.Command{
	Use:   "unmark <character-id> <skill>",
	Short: "Remove a play-time skill mark",
	Args:  cobra.ExactArgs(2),
	RunE:  runCharacterUnmark,
}

var characterClearMarksCmd = &cobra.Command{
	Use:   "clear-marks <character-id>",
	Short: "Remove every play-time skill mark",
	Args:  cobra.ExactArgs(1),
	RunE:  runCharacterClearMarks,
}

var characterDeleteCmd = &cobra.Command{
	Use:   "delete <character-id>",
	Short: "Delete a character",
	Args:  cobra.ExactArgs(1),
	RunE:  runCharacterDelete,
}

func init() {
	characterCreateCmd.Flags().StringVar(&createPlayerID, "player", "", "owning player ID (required)")
	characterCreateCmd.Flags().StringVar(&createName, "name", "", "character name (required)")
	characterCreateCmd.Flags().StringVar(&createKin, "kin", "", "kin, e.g. Human")
	characterCreateCmd.Flags().StringVar(&createProfession, "profession", "", "profession, e.g. Warrior")
	characterCreateCmd.Flags().StringArrayVar(&createAttrs, "attr", nil, "attribute as CODE=VALUE, repeatable")
	characterCreateCmd.Flags().StringArrayVar(&createTrained, "trained", nil, "trained skill, repeatable")
	_ = characterCreateCmd.MarkFlagRequired("player")
	_ = characterCreateCmd.MarkFlagRequired("name")

	characterListCmd.Flags().StringVar(&listPlayerID, "player", "", "owning player ID (required)")
	_ = characterListCmd.MarkFlagRequired("player")

	characterCmd.AddCommand(
		characterCreateCmd,
		characterListCmd,
		characterSheetCmd,
		characterMarkCmd,
		characterUnmarkCmd,
		characterClearMarksCmd,
		characterDeleteCmd,
	)
}

func runCharacterCreate(cmd *cobra.Command, args []string) error {
	attributes := make(map[string]int32, len(createAttrs))
	for _, pair := range createAttrs {
		code, raw, found := strings.Cut(pair, "=")
		if !found {
			return errors.InvalidArgumentf("attribute %q must be CODE=VALUE", pair)
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return errors.InvalidArgumentf("attribute %q has a non-numeric value", pair)
		}
		attributes[code] = int32(value)
	}

	app, cleanup, err := newApp()
	if err != nil {
		return err
	}
	defer cleanup()

	output, err := app.characterService.CreateCharacter(cmd.Context(), &character.CreateCharacterInput{
		PlayerID:      createPlayerID,
		Name:          createName,
		Kin:           createKin,
		Profession:    createProfession,
		Attributes:    attributes,
		TrainedSkills: createTrained,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created %s (%s)\n", output.Character.Name, output.Character.ID)
	return nil
}

func runCharacterList(cmd *cobra.Command, args []string) error {
	app, cleanup, err := newApp()
	if err != nil {
		return err
	}
	defer cleanup()

	output, err := app.characterService.ListCharacters(cmd.Context(), &character.ListCharactersInput{
		PlayerID: listPlayerID,
	})
	if err != nil {
		return err
	}

	if len(output.Characters) == 0 {
		fmt.Println("no characters")
		return nil
	}
	for _, char := range output.Characters {
		fmt.Printf("%-24s %-20s %s %s\n", char.ID, char.Name, char.Kin, char.Profession)
	}
	return nil
}

func runCharacterSheet(cmd *cobra.Command, args []string) error {
	app, cleanup, err := newApp()
	if err != nil {
		return err
	}
	defer cleanup()

	output, err := app.characterService.ListSkills(cmd.Context(), &character.ListSkillsInput{
		CharacterID: args[0],
	})
	if err != nil {
		return err
	}

	char := output.Character
	fmt.Printf("%s - %s %s\n\n", char.Name, char.Kin, char.Profession)
	for _, skill := range output.Skills {
		tags := make([]string, 0, 2)
		if skill.Trained {
			tags = append(tags, "trained")
		}
		if skill.Marked {
			tags = append(tags, "marked")
		}
		suffix := ""
		if len(tags) > 0 {
			suffix = "  (" + strings.Join(tags, ", ") + ")"
		}
		fmt.Printf("  %-20s %2d (%s)%s\n", skill.Name, skill.Level, skill.Attribute, suffix)
	}
	if len(char.Abilities) > 0 {
		fmt.Printf("\nAbilities: %s\n", strings.Join(char.Abilities, ", "))
	}
	if spells := char.KnownSpells(); len(spells) > 0 {
		fmt.Printf("Spells: %s\n", strings.Join(spells, ", "))
	}
	return nil
}

func runCharacterMark(cmd *cobra.Command, args []string) error {
	app, cleanup, err := newApp()
	if err != nil {
		return err
	}
	defer cleanup()

	output, err := app.characterService.MarkSkill(cmd.Context(), &character.MarkSkillInput{
		CharacterID: args[0],
		Skill:       args[1],
	})
	if err != nil {
		return err
	}

	fmt.Printf("Marked: %s\n", strings.Join(output.Character.MarkedSkills, ", "))
	return nil
}

func runCharacterUnmark(cmd *cobra.Command, args []string) error {
	app, cleanup, err := newApp()
	if err != nil {
		return err
	}
	defer cleanup()

	output, err := app.characterService.UnmarkSkill(cmd.Context(), &character.UnmarkSkillInput{
		CharacterID: args[0],
		Skill:       args[1],
	})
	if err != nil {
		return err
	}

	if len(output.Character.MarkedSkills) == 0 {
		fmt.Println("no marks")
		return nil
	}
	fmt.Printf("Marked: %s\n", strings.Join(output.Character.MarkedSkills, ", "))
	return nil
}

func runCharacterClearMarks(cmd *cobra.Command, args []string) error {
	app, cleanup, err := newApp()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := app.characterService.ClearMarks(cmd.Context(), &character.ClearMarksInput{
		CharacterID: args[0],
	}); err != nil {
		return err
	}

	fmt.Println("marks cleared")
	return nil
}

func runCharacterDelete(cmd *cobra.Command, args []string) error {
	app, cleanup, err := newApp()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := app.characterService.DeleteCharacter(cmd.Context(), &character.DeleteCharacterInput{
		CharacterID: args[0],
	}); err != nil {
		return err
	}

	fmt.Println("deleted")
	return nil
}
