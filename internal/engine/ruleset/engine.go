// Package ruleset provides the concrete implementation of the engine
// interface for the drakar ruleset.
package ruleset

import (
	"github.com/duskmantle/advancement-api/internal/engine"
	"github.com/duskmantle/advancement-api/internal/entities/drakar"
	"github.com/duskmantle/advancement-api/internal/errors"
)

// Engine implements engine.Engine. It is stateless and safe for concurrent
// use.
type Engine struct{}

// New creates a new ruleset engine
func New() *Engine {
	return &Engine{}
}

// Verify that Engine implements the engine interface
var _ engine.Engine = (*Engine)(nil)

// BaseChance derives the untrained skill level from an attribute value using
// the fixed step table.
func (e *Engine) BaseChance(attribute int32) int32 {
	switch {
	case attribute <= 5:
		return 3
	case attribute <= 8:
		return 4
	case attribute <= 12:
		return 5
	case attribute <= 15:
		return 6
	default:
		return 7
	}
}

// ResolveSkillLevel returns a skill's current level. An explicit entry on the
// character wins; otherwise the base chance from the governing attribute,
// doubled if the character is trained in the skill.
func (e *Engine) ResolveSkillLevel(character *drakar.CharacterData, skill string) (int32, error) {
	if character == nil {
		return 0, errors.InvalidArgument("character is required")
	}

	if level, ok := character.ExplicitSkillLevel(skill); ok {
		return level, nil
	}

	attrCode, ok := drakar.GoverningAttribute(skill)
	if !ok {
		return 0, errors.InvalidArgumentf("unmapped skill name: %s", skill)
	}

	// Missing attribute entries resolve as value 0, the lowest band
	attrValue, _ := character.Attribute(attrCode)
	base := e.BaseChance(attrValue)
	if character.IsTrained(skill) {
		base *= 2
	}
	return base, nil
}

// CanLearnNewSchool allows one new school per Magic Talent instance not yet
// matched by a known school skill.
func (e *Engine) CanLearnNewSchool(character *drakar.CharacterData) bool {
	if character == nil {
		return false
	}
	return character.AbilityCount(drakar.AbilityMagicTalent) > character.SchoolSkillCount()
}
