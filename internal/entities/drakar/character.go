// Package drakar implements the ruleset entities for the advancement service.
package drakar

import "strings"

// CharacterData is the persisted character snapshot.
// NOTE: data-only struct. Skill-level resolution and prerequisite checks are
// done by the engine, not here.
type CharacterData struct {
	ID         string `json:"id"`
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	Kin        string `json:"kin"`
	Profession string `json:"profession"`

	// Attributes maps attribute codes (STR, AGL, ...) to values
	Attributes map[string]int32 `json:"attributes"`

	// SkillLevels holds explicit skill levels. An entry here is
	// authoritative; skills without one derive a base chance from their
	// governing attribute.
	SkillLevels map[string]int32 `json:"skill_levels"`

	// TrainedSkills doubles the derived base chance for listed skills
	TrainedSkills []string `json:"trained_skills"`

	// Abilities holds heroic ability names. Stackable abilities appear
	// once per instance held.
	Abilities []string `json:"abilities"`

	// Spells is the character's general spell list; SchoolSpells the list
	// granted by their magic school. Known spells are the union.
	Spells       []string `json:"spells"`
	SchoolSpells []string `json:"school_spells"`

	// MagicSchoolID references the character's school, empty if none
	MagicSchoolID string `json:"magic_school_id"`

	// StudySkill is the skill currently under teacher study, empty if
	// none. At most one at a time.
	StudySkill string `json:"study_skill"`

	// MarkedSkills were flagged during regular play and pre-populate the
	// advancement selection.
	MarkedSkills []string `json:"marked_skills"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// Attribute returns the value of an attribute code, case-insensitive
func (c *CharacterData) Attribute(code string) (int32, bool) {
	for k, v := range c.Attributes {
		if strings.EqualFold(k, code) {
			return v, true
		}
	}
	return 0, false
}

// ExplicitSkillLevel returns the authoritative skill level entry, if any
func (c *CharacterData) ExplicitSkillLevel(skill string) (int32, bool) {
	for k, v := range c.SkillLevels {
		if strings.EqualFold(k, skill) {
			return v, true
		}
	}
	return 0, false
}

// IsTrained reports whether the character is formally trained in a skill
func (c *CharacterData) IsTrained(skill string) bool {
	return containsFold(c.TrainedSkills, skill)
}

// KnownSpells returns the union of the general and school spell lists
func (c *CharacterData) KnownSpells() []string {
	known := make([]string, 0, len(c.Spells)+len(c.SchoolSpells))
	known = append(known, c.Spells...)
	for _, s := range c.SchoolSpells {
		if !containsFold(known, s) {
			known = append(known, s)
		}
	}
	return known
}

// KnowsSpell reports whether a spell is known, case-insensitive
func (c *CharacterData) KnowsSpell(name string) bool {
	return containsFold(c.Spells, name) || containsFold(c.SchoolSpells, name)
}

// HasAbility reports whether the character holds at least one instance of an
// ability
func (c *CharacterData) HasAbility(name string) bool {
	return containsFold(c.Abilities, name)
}

// AbilityCount counts instances of an ability, for stackable abilities
func (c *CharacterData) AbilityCount(name string) int32 {
	var n int32
	for _, a := range c.Abilities {
		if strings.EqualFold(a, name) {
			n++
		}
	}
	return n
}

// SchoolSkillCount counts magic-school skills the character knows, trained
// or with an explicit level entry.
func (c *CharacterData) SchoolSkillCount() int32 {
	counted := make(map[string]bool, len(SchoolSkills))
	for skill := range c.SkillLevels {
		if IsSchoolSkill(skill) {
			counted[strings.ToLower(skill)] = true
		}
	}
	for _, skill := range c.TrainedSkills {
		if IsSchoolSkill(skill) {
			counted[strings.ToLower(skill)] = true
		}
	}
	return int32(len(counted))
}

// IsMarked reports whether a skill was flagged during play
func (c *CharacterData) IsMarked(skill string) bool {
	return containsFold(c.MarkedSkills, skill)
}

func containsFold(list []string, target string) bool {
	for _, item := range list {
		if strings.EqualFold(item, target) {
			return true
		}
	}
	return false
}
