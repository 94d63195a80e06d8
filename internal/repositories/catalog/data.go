package catalog

import (
	"github.com/duskmantle/advancement-api/internal/entities/drakar"
)

// School IDs in the bundled dataset
const (
	SchoolAnimism      = "school_animism"
	SchoolElementalism = "school_elementalism"
	SchoolMentalism    = "school_mentalism"
)

// DefaultSchools returns the bundled magic schools
func DefaultSchools() []drakar.SchoolDefinition {
	return []drakar.SchoolDefinition{
		{
			ID:          SchoolAnimism,
			Name:        "Animism",
			SkillName:   drakar.SkillAnimism,
			Description: "The magic of living things: healing, beasts, and growth.",
		},
		{
			ID:          SchoolElementalism,
			Name:        "Elementalism",
			SkillName:   drakar.SkillElementalism,
			Description: "The magic of fire, frost, wind, and stone.",
		},
		{
			ID:          SchoolMentalism,
			Name:        "Mentalism",
			SkillName:   drakar.SkillMentalism,
			Description: "The magic of mind over matter and over other minds.",
		},
	}
}

// DefaultAbilities returns the bundled heroic abilities.
// Magic Talent is stackable: each instance allows learning one more school.
func DefaultAbilities() []drakar.AbilityDefinition {
	return []drakar.AbilityDefinition{
		{
			Name:        drakar.AbilityMagicTalent,
			Description: "You have an aptitude for magic and may learn a school of magic.",
			Stackable:   true,
		},
		{
			Name:        "Veteran",
			Description: "Hard experience lets you act first in a fight.",
			Requirement: &drakar.AbilityRequirement{Expression: "Swords 12"},
		},
		{
			Name:        "Massive Blow",
			Description: "Put your whole weight behind a melee attack.",
			Requirement: &drakar.AbilityRequirement{Expression: "STR 12"},
		},
		{
			Name:        "Deadeye",
			Description: "Called shots with ranged weapons at no penalty.",
			Requirement: &drakar.AbilityRequirement{
				Minimums: map[string]int32{"AGL": 12, "Bows": 10},
			},
		},
		{
			Name:        "Ironbound",
			Description: "Shrug off a wound once per day.",
			Requirement: &drakar.AbilityRequirement{Expression: "CON 14"},
		},
		{
			Name:        "Pathfinder",
			Description: "Never lost in wilderness you have crossed before.",
			Kin:         "Elf",
			Requirement: &drakar.AbilityRequirement{Expression: "Bushcraft 10"},
		},
		{
			Name:        "Tunnel Sense",
			Description: "Judge depth and bearing underground without tools.",
			Kin:         "Dwarf",
		},
		{
			Name:        "Guild Connections",
			Description: "Call in a favor from a guild chapter in any town.",
			Profession:  "Merchant",
		},
		{
			Name:        "Battle Fury",
			Description: "Fight on through wounds that would fell another.",
			Profession:  "Warrior",
			Requirement: &drakar.AbilityRequirement{Expression: "WIL 10"},
		},
		{
			Name:        "Silver Tongue",
			Description: "Reroll a failed Persuasion once per scene.",
			Requirement: &drakar.AbilityRequirement{Expression: "Persuasion 12"},
		},
	}
}

// DefaultSpells returns the bundled spells. Prerequisites use both grammars:
// newer entries carry a JSON expression tree, older ones the legacy boolean
// string, matching the mixed catalog data this service inherits.
func DefaultSpells() []drakar.SpellDefinition {
	return []drakar.SpellDefinition{
		// General magic, open to any school member
		{Name: "Light", Rank: 1, Prerequisite: drakar.AnySchoolSentinel},
		{Name: "Ward", Rank: 1, Prerequisite: drakar.AnySchoolSentinel},
		{Name: "Mending", Rank: 1, Prerequisite: drakar.AnySchoolSentinel},

		// Elementalism
		{Name: "Spark", Rank: 1, SchoolID: SchoolElementalism, Prerequisite: "Elementalism"},
		{Name: "Gust of Wind", Rank: 1, SchoolID: SchoolElementalism, Prerequisite: "Elementalism"},
		{Name: "Fireball", Rank: 2, SchoolID: SchoolElementalism, Prerequisite: "Elementalism AND Spark"},
		{
			Name:     "Frostbite",
			Rank:     2,
			SchoolID: SchoolElementalism,
			Prerequisite: `{"type":"logical","operator":"AND","conditions":[` +
				`{"type":"school","name":"Elementalism"},` +
				`{"type":"skill","name":"Elementalism","value":8}]}`,
		},
		{
			Name:     "Firestorm",
			Rank:     3,
			SchoolID: SchoolElementalism,
			Prerequisite: `{"type":"logical","operator":"AND","conditions":[` +
				`{"type":"spell","name":"Fireball"},` +
				`{"type":"skill","name":"Elementalism","value":12}]}`,
		},

		// Animism
		{Name: "Lay on Hands", Rank: 1, SchoolID: SchoolAnimism, Prerequisite: "Animism"},
		{Name: "Beast Speech", Rank: 1, SchoolID: SchoolAnimism, Prerequisite: "Animism"},
		{Name: "Renewal", Rank: 2, SchoolID: SchoolAnimism, Prerequisite: "Animism AND Lay on Hands"},
		{
			Name:     "Wild Shape",
			Rank:     3,
			SchoolID: SchoolAnimism,
			Prerequisite: `{"type":"logical","operator":"AND","conditions":[` +
				`{"type":"school","name":"Animism"},` +
				`{"type":"spell","name":"Beast Speech"},` +
				`{"type":"attribute","name":"WIL","value":14}]}`,
		},

		// Mentalism
		{Name: "Farsight", Rank: 1, SchoolID: SchoolMentalism, Prerequisite: "Mentalism"},
		{Name: "Befuddle", Rank: 1, SchoolID: SchoolMentalism, Prerequisite: "Mentalism"},
		{Name: "Dominate", Rank: 2, SchoolID: SchoolMentalism, Prerequisite: "Mentalism AND Befuddle"},
		{
			Name:     "Mind Shatter",
			Rank:     3,
			SchoolID: SchoolMentalism,
			Prerequisite: `{"type":"logical","operator":"AND","conditions":[` +
				`{"type":"spell","name":"Dominate"},` +
				`{"type":"attribute","name":"INT","value":14},` +
				`{"type":"spell","name":"Befuddle","negate":false}]}`,
		},
	}
}
