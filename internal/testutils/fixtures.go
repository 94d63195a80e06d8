package testutils

import (
	"github.com/duskmantle/advancement-api/internal/entities/drakar"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Halvor of Outskirt"

// CreateTestCharacter creates a character with sensible defaults: a warrior
// with middling attributes, trained in a few skills, no magic.
func CreateTestCharacter(playerID string) *drakar.CharacterData {
	return &drakar.CharacterData{
		ID:         "char-test-001",
		PlayerID:   playerID,
		Name:       TestCharacterName,
		Kin:        "Human",
		Profession: "Warrior",
		Attributes: map[string]int32{
			drakar.AttributeSTR: 14,
			drakar.AttributeAGL: 12,
			drakar.AttributeINT: 10,
			drakar.AttributeCON: 13,
			drakar.AttributeWIL: 9,
			drakar.AttributeCHA: 8,
		},
		SkillLevels: map[string]int32{
			"Swords":    12,
			"Awareness": 8,
		},
		TrainedSkills: []string{"Swords", "Evade", "Brawling"},
	}
}

// CreateTestMage creates a character with a magic school, known spells, and
// one Magic Talent instance.
func CreateTestMage(playerID string) *drakar.CharacterData {
	return &drakar.CharacterData{
		ID:         "char-test-mage",
		PlayerID:   playerID,
		Name:       "Yrsa Emberhand",
		Kin:        "Elf",
		Profession: "Mage",
		Attributes: map[string]int32{
			drakar.AttributeSTR: 8,
			drakar.AttributeAGL: 10,
			drakar.AttributeINT: 15,
			drakar.AttributeCON: 9,
			drakar.AttributeWIL: 14,
			drakar.AttributeCHA: 11,
		},
		SkillLevels: map[string]int32{
			drakar.SkillElementalism: 10,
		},
		TrainedSkills: []string{drakar.SkillElementalism},
		Abilities:     []string{drakar.AbilityMagicTalent},
		Spells:        []string{"Light"},
		SchoolSpells:  []string{"Spark"},
		MagicSchoolID: "school_elementalism",
	}
}
