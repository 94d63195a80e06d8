// Package character implements the character orchestrator: CRUD, play-time
// skill marks, and the resolved skill sheet.
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/duskmantle/advancement-api/internal/orchestrators/character Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/duskmantle/advancement-api/internal/engine"
	"github.com/duskmantle/advancement-api/internal/entities/drakar"
	"github.com/duskmantle/advancement-api/internal/errors"
	"github.com/duskmantle/advancement-api/internal/pkg/idgen"
	characterrepo "github.com/duskmantle/advancement-api/internal/repositories/character"
)

// Service defines the interface for character operations
type Service interface {
	// CreateCharacter creates a character with validated attributes and
	// training
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// ListCharacters retrieves all characters for a player
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// DeleteCharacter deletes a character by ID
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// ListSkills returns the full skill sheet with resolved levels
	ListSkills(ctx context.Context, input *ListSkillsInput) (*ListSkillsOutput, error)

	// MarkSkill flags a skill during play so it pre-populates the next
	// advancement selection
	MarkSkill(ctx context.Context, input *MarkSkillInput) (*MarkSkillOutput, error)

	// UnmarkSkill removes a play-time skill flag
	UnmarkSkill(ctx context.Context, input *UnmarkSkillInput) (*UnmarkSkillOutput, error)

	// ClearMarks removes every play-time skill flag
	ClearMarks(ctx context.Context, input *ClearMarksInput) (*ClearMarksOutput, error)
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Engine        engine.Engine
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	engine        engine.Engine
	idGen         idgen.Generator
}

// NewOrchestrator creates a new character orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		engine:        cfg.Engine,
		idGen:         cfg.IDGenerator,
	}, nil
}

var _ Service = (*orchestrator)(nil)

// CreateCharacter validates and stores a new character
func (o *orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(input.Name) == "" {
		vb.RequiredField("Name")
	}
	if strings.TrimSpace(input.PlayerID) == "" {
		vb.RequiredField("PlayerID")
	}

	attributes := make(map[string]int32, len(drakar.Attributes))
	for code, value := range input.Attributes {
		canonical := strings.ToUpper(strings.TrimSpace(code))
		if !isAttributeCode(canonical) {
			vb.Fieldf("Attributes", "unknown attribute code: %s", code)
			continue
		}
		if value < 1 {
			vb.Fieldf("Attributes", "%s must be positive", canonical)
			continue
		}
		attributes[canonical] = value
	}

	trained := make([]string, 0, len(input.TrainedSkills))
	for _, skill := range input.TrainedSkills {
		canonical, ok := drakar.CanonicalSkillName(skill)
		if !ok {
			vb.Fieldf("TrainedSkills", "unknown skill: %s", skill)
			continue
		}
		trained = append(trained, canonical)
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	data := &drakar.CharacterData{
		ID:            o.idGen.Generate(),
		PlayerID:      input.PlayerID,
		Name:          input.Name,
		Kin:           input.Kin,
		Profession:    input.Profession,
		Attributes:    attributes,
		SkillLevels:   make(map[string]int32),
		TrainedSkills: trained,
	}

	createOutput, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{
		CharacterData: data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.InfoContext(ctx, "Created character",
		"character_id", createOutput.CharacterData.ID,
		"player_id", input.PlayerID,
	)

	return &CreateCharacterOutput{Character: createOutput.CharacterData}, nil
}

// GetCharacter retrieves a character by ID
func (o *orchestrator) GetCharacter(
	ctx context.Context,
	input *GetCharacterInput,
) (*GetCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
	}

	return &GetCharacterOutput{Character: getOutput.CharacterData}, nil
}

// ListCharacters retrieves all characters for a player
func (o *orchestrator) ListCharacters(
	ctx context.Context,
	input *ListCharactersInput,
) (*ListCharactersOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	listOutput, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters for player %s", input.PlayerID)
	}

	return &ListCharactersOutput{Characters: listOutput.Characters}, nil
}

// DeleteCharacter deletes a character by ID
func (o *orchestrator) DeleteCharacter(
	ctx context.Context,
	input *DeleteCharacterInput,
) (*DeleteCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.CharacterID)
	}

	slog.InfoContext(ctx, "Deleted character", "character_id", input.CharacterID)

	return &DeleteCharacterOutput{}, nil
}

// ListSkills returns every known skill with its resolved level. Stored skill
// entries with unmapped names are skipped with a warning, never fatal.
func (o *orchestrator) ListSkills(
	ctx context.Context,
	input *ListSkillsInput,
) (*ListSkillsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
	}
	char := getOutput.CharacterData

	names := drakar.SkillNames()
	skills := make([]ResolvedSkill, 0, len(names))
	for _, name := range names {
		level, resolveErr := o.engine.ResolveSkillLevel(char, name)
		if resolveErr != nil {
			slog.WarnContext(ctx, "Skipping unresolvable skill",
				"character_id", char.ID,
				"skill", name,
				"error", resolveErr,
			)
			continue
		}

		attribute, _ := drakar.GoverningAttribute(name)
		_, explicit := char.ExplicitSkillLevel(name)

		skills = append(skills, ResolvedSkill{
			Name:      name,
			Attribute: attribute,
			Level:     level,
			Explicit:  explicit,
			Trained:   char.IsTrained(name),
			Marked:    char.IsMarked(name),
		})
	}

	return &ListSkillsOutput{Character: char, Skills: skills}, nil
}

// MarkSkill flags a skill for the next advancement selection. Marking an
// already-marked skill is a no-op.
func (o *orchestrator) MarkSkill(
	ctx context.Context,
	input *MarkSkillInput,
) (*MarkSkillOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	canonical, ok := drakar.CanonicalSkillName(input.Skill)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown skill: %s", input.Skill)
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
	}
	char := getOutput.CharacterData

	if char.IsMarked(canonical) {
		return &MarkSkillOutput{Character: char}, nil
	}

	char.MarkedSkills = append(char.MarkedSkills, canonical)
	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{CharacterData: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}

	return &MarkSkillOutput{Character: updateOutput.CharacterData}, nil
}

// UnmarkSkill removes a play-time skill flag
func (o *orchestrator) UnmarkSkill(
	ctx context.Context,
	input *UnmarkSkillInput,
) (*UnmarkSkillOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	canonical, ok := drakar.CanonicalSkillName(input.Skill)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown skill: %s", input.Skill)
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
	}
	char := getOutput.CharacterData

	kept := char.MarkedSkills[:0]
	for _, marked := range char.MarkedSkills {
		if !strings.EqualFold(marked, canonical) {
			kept = append(kept, marked)
		}
	}
	char.MarkedSkills = kept

	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{CharacterData: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}

	return &UnmarkSkillOutput{Character: updateOutput.CharacterData}, nil
}

// ClearMarks removes every play-time skill flag
func (o *orchestrator) ClearMarks(
	ctx context.Context,
	input *ClearMarksInput,
) (*ClearMarksOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
	}
	char := getOutput.CharacterData
	char.MarkedSkills = nil

	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{CharacterData: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}

	return &ClearMarksOutput{Character: updateOutput.CharacterData}, nil
}

func isAttributeCode(code string) bool {
	for _, a := range drakar.Attributes {
		if a == code {
			return true
		}
	}
	return false
}
