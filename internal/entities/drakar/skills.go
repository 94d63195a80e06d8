package drakar

import "strings"

// skillAttributes pins every skill to its governing attribute. 29 mundane
// skills plus the three magic-school skills.
var skillAttributes = map[string]string{
	"Acrobatics":        AttributeAGL,
	"Awareness":         AttributeINT,
	"Bartering":         AttributeCHA,
	"Beast Lore":        AttributeINT,
	"Bluffing":          AttributeCHA,
	"Bushcraft":         AttributeINT,
	"Crafting":          AttributeSTR,
	"Evade":             AttributeAGL,
	"Healing":           AttributeINT,
	"Hunting & Fishing": AttributeAGL,
	"Languages":         AttributeINT,
	"Myths & Legends":   AttributeINT,
	"Performance":       AttributeCHA,
	"Persuasion":        AttributeCHA,
	"Riding":            AttributeAGL,
	"Seamanship":        AttributeINT,
	"Sleight of Hand":   AttributeAGL,
	"Sneaking":          AttributeAGL,
	"Spot Hidden":       AttributeINT,
	"Swimming":          AttributeAGL,
	"Axes":              AttributeSTR,
	"Bows":              AttributeAGL,
	"Brawling":          AttributeSTR,
	"Crossbows":         AttributeAGL,
	"Hammers":           AttributeSTR,
	"Knives":            AttributeAGL,
	"Spears":            AttributeSTR,
	"Staves":            AttributeAGL,
	"Swords":            AttributeSTR,
	SkillAnimism:        AttributeWIL,
	SkillElementalism:   AttributeWIL,
	SkillMentalism:      AttributeWIL,
}

// skillNames maps lowercased skill names back to their canonical spelling
var skillNames = func() map[string]string {
	m := make(map[string]string, len(skillAttributes))
	for name := range skillAttributes {
		m[strings.ToLower(name)] = name
	}
	return m
}()

// SchoolSkills lists the three magic-school skills
var SchoolSkills = []string{SkillAnimism, SkillElementalism, SkillMentalism}

// GoverningAttribute returns the attribute code that governs a skill.
// Lookup is case-insensitive; ok is false for unmapped skill names.
func GoverningAttribute(skill string) (string, bool) {
	canonical, ok := skillNames[strings.ToLower(strings.TrimSpace(skill))]
	if !ok {
		return "", false
	}
	return skillAttributes[canonical], true
}

// CanonicalSkillName resolves a case-insensitive skill name to its canonical
// spelling.
func CanonicalSkillName(skill string) (string, bool) {
	canonical, ok := skillNames[strings.ToLower(strings.TrimSpace(skill))]
	return canonical, ok
}

// IsSchoolSkill reports whether a skill is one of the magic-school skills
func IsSchoolSkill(skill string) bool {
	for _, s := range SchoolSkills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

// SkillNames returns every mapped skill name. The order is not stable;
// callers sort for display.
func SkillNames() []string {
	names := make([]string, 0, len(skillAttributes))
	for name := range skillAttributes {
		names = append(names, name)
	}
	return names
}
