// Package engine defines the rules calculations for skill advancement
package engine

import (
	"github.com/duskmantle/advancement-api/internal/entities/drakar"
)

// Engine provides the ruleset calculations the advancement flow depends on.
// All methods are pure: they never mutate the character snapshot.
type Engine interface {
	// ResolveSkillLevel returns a skill's current level in [0, 18]: the
	// explicit entry when present, otherwise the base chance derived from
	// the governing attribute, doubled when trained. Unmapped skill names
	// return an InvalidArgument error; callers skip and warn, never crash.
	ResolveSkillLevel(character *drakar.CharacterData, skill string) (int32, error)

	// BaseChance derives the untrained skill level from an attribute value
	BaseChance(attribute int32) int32

	// EvaluatePrerequisite decides whether a character satisfies a spell
	// prerequisite. The source may be empty (trivially true), a
	// JSON-encoded expression tree, or a legacy boolean string.
	EvaluatePrerequisite(
		source string,
		character *drakar.CharacterData,
		schoolName string,
		schools []drakar.SchoolDefinition,
	) bool

	// EvaluateAbilityRequirement decides whether a character meets a
	// heroic ability requirement. Nil requirements are always satisfied.
	EvaluateAbilityRequirement(req *drakar.AbilityRequirement, character *drakar.CharacterData) bool

	// CanLearnNewSchool reports whether the character holds more Magic
	// Talent instances than magic-school skills already known.
	CanLearnNewSchool(character *drakar.CharacterData) bool
}
