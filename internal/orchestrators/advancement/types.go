package advancement

import (
	"github.com/duskmantle/advancement-api/internal/entities/drakar"
	advancementsession "github.com/duskmantle/advancement-api/internal/repositories/advancement_session"
)

// StudyType selects which study flow a session follows
type StudyType string

// Study types
const (
	// StudyTeacher studies one skill under a teacher between sessions
	StudyTeacher StudyType = "teacher"
	// StudyMagic learns a new spell from the character's school
	StudyMagic StudyType = "magic"
	// StudyNewSchool learns a whole new school of magic
	StudyNewSchool StudyType = "new_school"
)

// Event topics published on the game event bus
const (
	EventSkillAdvanced  = "advancement.skill_advanced"
	EventAbilityGranted = "advancement.ability_granted"
	EventSpellLearned   = "advancement.spell_learned"
	EventSchoolLearned  = "advancement.school_learned"
)

// StartSessionInput defines the input for opening an advancement wizard
type StartSessionInput struct {
	CharacterID string
	Mode        advancementsession.Mode
}

// StartSessionOutput defines the output for opening an advancement wizard
type StartSessionOutput struct {
	Session *advancementsession.Session
}

// GetSessionInput defines the input for fetching a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the output for fetching a session
type GetSessionOutput struct {
	Session *advancementsession.Session
}

// SubmitMarksInput defines the input for entering the mark count
type SubmitMarksInput struct {
	SessionID string
	Marks     int32
}

// SubmitMarksOutput defines the output for entering the mark count
type SubmitMarksOutput struct {
	Session *advancementsession.Session
}

// ToggleSkillInput defines the input for toggling a skill selection
type ToggleSkillInput struct {
	SessionID string
	Skill     string
}

// ToggleSkillOutput defines the output for toggling a skill selection
type ToggleSkillOutput struct {
	Session *advancementsession.Session

	// Selected reports whether the skill is selected after the toggle
	Selected bool
}

// ConfirmSelectionInput defines the input for confirming the selection
type ConfirmSelectionInput struct {
	SessionID string
}

// ConfirmSelectionOutput defines the output for confirming the selection
type ConfirmSelectionOutput struct {
	Session *advancementsession.Session
}

// RollCurrentSkillInput defines the input for processing the current queue
// entry. Manual advances without a roll, for GM fiat.
type RollCurrentSkillInput struct {
	SessionID string
	Manual    bool
}

// RollCurrentSkillOutput defines the output for processing the current entry
type RollCurrentSkillOutput struct {
	Session *advancementsession.Session
	Entry   *advancementsession.RollEntry
}

// AdvanceToNextSkillInput defines the input for moving past a processed entry
type AdvanceToNextSkillInput struct {
	SessionID string
}

// AdvanceToNextSkillOutput defines the output for moving past a processed
// entry
type AdvanceToNextSkillOutput struct {
	Session *advancementsession.Session
}

// ListEligibleAbilitiesInput defines the input for listing grantable abilities
type ListEligibleAbilitiesInput struct {
	SessionID string
}

// ListEligibleAbilitiesOutput defines the output for listing grantable
// abilities
type ListEligibleAbilitiesOutput struct {
	Abilities []drakar.AbilityDefinition
}

// SelectAbilityInput defines the input for granting the chosen ability
type SelectAbilityInput struct {
	SessionID string
	Ability   string
}

// SelectAbilityOutput defines the output for granting the chosen ability
type SelectAbilityOutput struct {
	Session   *advancementsession.Session
	Character *drakar.CharacterData
}

// ChooseStudyTypeInput defines the input for picking a study flow
type ChooseStudyTypeInput struct {
	SessionID string
	StudyType StudyType
}

// ChooseStudyTypeOutput defines the output for picking a study flow
type ChooseStudyTypeOutput struct {
	Session *advancementsession.Session
}

// SelectStudySkillInput defines the input for choosing the skill to study
type SelectStudySkillInput struct {
	SessionID string
	Skill     string
}

// SelectStudySkillOutput defines the output for choosing the skill to study
type SelectStudySkillOutput struct {
	Session *advancementsession.Session
}

// RollStudySkillInput defines the input for resolving the study roll
type RollStudySkillInput struct {
	SessionID string
	Manual    bool
}

// RollStudySkillOutput defines the output for resolving the study roll
type RollStudySkillOutput struct {
	Session *advancementsession.Session
	Entry   *advancementsession.RollEntry
}

// ListLearnableSpellsInput defines the input for listing learnable spells
type ListLearnableSpellsInput struct {
	SessionID string
}

// ListLearnableSpellsOutput defines the output for listing learnable spells
type ListLearnableSpellsOutput struct {
	Spells []drakar.SpellDefinition
}

// LearnSpellInput defines the input for learning a spell
type LearnSpellInput struct {
	SessionID string
	Spell     string
}

// LearnSpellOutput defines the output for learning a spell
type LearnSpellOutput struct {
	Session   *advancementsession.Session
	Character *drakar.CharacterData
}

// ListSchoolsInput defines the input for listing learnable schools
type ListSchoolsInput struct {
	SessionID string
}

// ListSchoolsOutput defines the output for listing learnable schools
type ListSchoolsOutput struct {
	Schools []drakar.SchoolDefinition
}

// BeginSchoolStudyInput defines the input for starting new-school study
type BeginSchoolStudyInput struct {
	SessionID string
	SchoolID  string
}

// BeginSchoolStudyOutput defines the output for starting new-school study
type BeginSchoolStudyOutput struct {
	Session *advancementsession.Session
}

// RollSchoolSkillInput defines the input for resolving the school roll
type RollSchoolSkillInput struct {
	SessionID string
	Manual    bool
}

// RollSchoolSkillOutput defines the output for resolving the school roll
type RollSchoolSkillOutput struct {
	Session *advancementsession.Session
	Entry   *advancementsession.RollEntry
}

// FinishSessionInput defines the input for closing the wizard
type FinishSessionInput struct {
	SessionID string
}

// FinishSessionOutput defines the output for closing the wizard
type FinishSessionOutput struct {
	Character *drakar.CharacterData
}
