package drakar

// Attribute codes
const (
	AttributeSTR = "STR"
	AttributeAGL = "AGL"
	AttributeINT = "INT"
	AttributeCON = "CON"
	AttributeWIL = "WIL"
	AttributeCHA = "CHA"
)

// Attributes lists the six attribute codes in display order
var Attributes = []string{
	AttributeSTR,
	AttributeAGL,
	AttributeINT,
	AttributeCON,
	AttributeWIL,
	AttributeCHA,
}

// MaxSkillLevel is the cap for every skill. Reaching it for the first time
// unlocks a heroic ability pick.
const MaxSkillLevel = 18

// Magic school skill names
const (
	SkillAnimism      = "Animism"
	SkillElementalism = "Elementalism"
	SkillMentalism    = "Mentalism"
)

// AbilityMagicTalent gates how many magic schools a character may learn:
// one school per instance of the ability held.
const AbilityMagicTalent = "Magic Talent"

// AnySchoolSentinel is the legacy prerequisite phrase matching any school
// membership.
const AnySchoolSentinel = "ANY SCHOOL OF MAGIC"
