package drakar

// AbilityDefinition describes a heroic ability in the catalog
type AbilityDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Kin and Profession restrict eligibility when non-empty
	Kin        string `json:"kin,omitempty"`
	Profession string `json:"profession,omitempty"`

	// Requirement gates the ability; nil means always eligible
	Requirement *AbilityRequirement `json:"requirement,omitempty"`

	// Stackable abilities may be taken more than once
	Stackable bool `json:"stackable,omitempty"`
}

// AbilityRequirement is the simple requirement grammar for heroic abilities:
// either a single "<NAME> <INT>" expression or a map of name to minimum value
// where every entry must hold. Names resolve against attributes first, then
// skills.
type AbilityRequirement struct {
	Expression string           `json:"expression,omitempty"`
	Minimums   map[string]int32 `json:"minimums,omitempty"`
}

// SpellDefinition describes a spell in the catalog
type SpellDefinition struct {
	Name string `json:"name"`
	Rank int32  `json:"rank"`

	// SchoolID ties school spells to their school; empty for general magic
	SchoolID string `json:"school_id,omitempty"`

	// Prerequisite is either a JSON-encoded expression tree or a legacy
	// boolean string. Empty means no prerequisite.
	Prerequisite string `json:"prerequisite,omitempty"`
}

// SchoolDefinition describes a magic school in the catalog
type SchoolDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SkillName   string `json:"skill_name"`
	Description string `json:"description"`
}
