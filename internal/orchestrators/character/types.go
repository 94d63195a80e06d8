package character

import (
	"github.com/duskmantle/advancement-api/internal/entities/drakar"
)

// ResolvedSkill is one row of the character skill sheet: the effective level
// after base-chance derivation and training, not just the stored entry.
type ResolvedSkill struct {
	Name      string
	Attribute string
	Level     int32
	Explicit  bool
	Trained   bool
	Marked    bool
}

// CreateCharacterInput defines the input for creating a character
type CreateCharacterInput struct {
	PlayerID      string
	Name          string
	Kin           string
	Profession    string
	Attributes    map[string]int32
	TrainedSkills []string
}

// CreateCharacterOutput defines the output for creating a character
type CreateCharacterOutput struct {
	Character *drakar.CharacterData
}

// GetCharacterInput defines the input for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the output for getting a character
type GetCharacterOutput struct {
	Character *drakar.CharacterData
}

// ListCharactersInput defines the input for listing a player's characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the output for listing a player's characters
type ListCharactersOutput struct {
	Characters []*drakar.CharacterData
}

// DeleteCharacterInput defines the input for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the output for deleting a character
type DeleteCharacterOutput struct{}

// ListSkillsInput defines the input for the resolved skill sheet
type ListSkillsInput struct {
	CharacterID string
}

// ListSkillsOutput defines the output for the resolved skill sheet
type ListSkillsOutput struct {
	Character *drakar.CharacterData
	Skills    []ResolvedSkill
}

// MarkSkillInput defines the input for flagging a skill during play
type MarkSkillInput struct {
	CharacterID string
	Skill       string
}

// MarkSkillOutput defines the output for flagging a skill
type MarkSkillOutput struct {
	Character *drakar.CharacterData
}

// UnmarkSkillInput defines the input for removing a skill flag
type UnmarkSkillInput struct {
	CharacterID string
	Skill       string
}

// UnmarkSkillOutput defines the output for removing a skill flag
type UnmarkSkillOutput struct {
	Character *drakar.CharacterData
}

// ClearMarksInput defines the input for clearing all skill flags
type ClearMarksInput struct {
	CharacterID string
}

// ClearMarksOutput defines the output for clearing all skill flags
type ClearMarksOutput struct {
	Character *drakar.CharacterData
}
