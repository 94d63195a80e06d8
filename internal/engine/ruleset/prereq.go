package ruleset

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/duskmantle/advancement-api/internal/engine"
	"github.com/duskmantle/advancement-api/internal/entities/drakar"
)

// Legacy grammar tokens. The split is on the literal token, case-insensitive,
// with no escaping or parentheses. OR binds loosest. Condition names that
// themselves contain these tokens are a known limitation of the legacy format
// and are split anyway, for compatibility with existing catalog data.
var (
	legacyOrSplit  = regexp.MustCompile(`(?i) OR `)
	legacyAndSplit = regexp.MustCompile(`(?i) AND `)
)

// ParsePrerequisite sniffs a prerequisite source once and returns its parsed
// form. Sources starting with "{" are tried as the structured tree grammar
// and fall back to the legacy grammar when they do not parse.
func ParsePrerequisite(source string) engine.Prerequisite {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return engine.Prerequisite{Kind: engine.PrereqEmpty}
	}

	if strings.HasPrefix(trimmed, "{") {
		var node engine.PrereqNode
		if err := json.Unmarshal([]byte(trimmed), &node); err == nil {
			return engine.Prerequisite{Kind: engine.PrereqTree, Tree: &node}
		}
	}

	return engine.Prerequisite{Kind: engine.PrereqLegacy, Legacy: trimmed}
}

// EvaluatePrerequisite decides whether the character satisfies a spell
// prerequisite. Empty sources are trivially true.
func (e *Engine) EvaluatePrerequisite(
	source string,
	character *drakar.CharacterData,
	schoolName string,
	schools []drakar.SchoolDefinition,
) bool {
	if character == nil {
		return false
	}

	prereq := ParsePrerequisite(source)
	switch prereq.Kind {
	case engine.PrereqEmpty:
		return true
	case engine.PrereqTree:
		return e.evalNode(prereq.Tree, character, schoolName)
	case engine.PrereqLegacy:
		return e.evalLegacy(prereq.Legacy, character, schoolName, schools)
	default:
		return false
	}
}

// evalNode evaluates one node of the structured grammar. Negation applies to
// the node's result after evaluation. Unknown operators and node types are
// false, never an error.
func (e *Engine) evalNode(node *engine.PrereqNode, character *drakar.CharacterData, schoolName string) bool {
	if node == nil {
		return false
	}

	var result bool
	switch strings.ToLower(strings.TrimSpace(node.Type)) {
	case "logical":
		switch strings.ToUpper(strings.TrimSpace(node.Operator)) {
		case "AND":
			result = true
			for _, child := range node.Conditions {
				if !e.evalNode(child, character, schoolName) {
					result = false
					break
				}
			}
		case "OR":
			result = false
			for _, child := range node.Conditions {
				if e.evalNode(child, character, schoolName) {
					result = true
					break
				}
			}
		default:
			// Defensive default, not negated
			return false
		}
	case "spell":
		result = character.KnowsSpell(node.Name)
	case "school":
		result = schoolName != "" && strings.EqualFold(schoolName, node.Name)
	case "any_school":
		result = character.MagicSchoolID != ""
	case "skill":
		level, err := e.ResolveSkillLevel(character, node.Name)
		result = err == nil && level >= node.Value
	case "attribute":
		value, ok := character.Attribute(node.Name)
		result = ok && value >= node.Value
	default:
		return false
	}

	if node.Negate {
		result = !result
	}
	return result
}

// evalLegacy evaluates the legacy string grammar: OR groups of AND
// conditions, strictly two levels.
func (e *Engine) evalLegacy(
	expr string,
	character *drakar.CharacterData,
	schoolName string,
	schools []drakar.SchoolDefinition,
) bool {
	for _, group := range legacyOrSplit.Split(expr, -1) {
		satisfied := true
		for _, cond := range legacyAndSplit.Split(group, -1) {
			if !e.evalLegacyAtom(strings.TrimSpace(cond), character, schoolName, schools) {
				satisfied = false
				break
			}
		}
		if satisfied {
			return true
		}
	}
	return false
}

// evalLegacyAtom resolves one atomic condition, in order: the any-school
// sentinel, a known spell name, a catalog school name (must be the
// character's own school), then a "<NAME> <INTEGER>" threshold resolved
// against attributes first, then skills.
func (e *Engine) evalLegacyAtom(
	cond string,
	character *drakar.CharacterData,
	schoolName string,
	schools []drakar.SchoolDefinition,
) bool {
	if cond == "" {
		return false
	}

	if strings.EqualFold(cond, drakar.AnySchoolSentinel) {
		return character.MagicSchoolID != ""
	}

	if character.KnowsSpell(cond) {
		return true
	}

	for _, school := range schools {
		if strings.EqualFold(school.Name, cond) {
			return schoolName != "" && strings.EqualFold(schoolName, cond)
		}
	}

	if name, min, ok := splitThreshold(cond); ok {
		return e.meetsThreshold(character, name, min)
	}

	return false
}

// EvaluateAbilityRequirement checks the simpler heroic-ability grammar: a
// single "<NAME> <INTEGER>" expression and/or an all-of minimums map. Nil or
// empty requirements are always satisfied.
func (e *Engine) EvaluateAbilityRequirement(req *drakar.AbilityRequirement, character *drakar.CharacterData) bool {
	if req == nil {
		return true
	}
	if character == nil {
		return false
	}

	if expr := strings.TrimSpace(req.Expression); expr != "" {
		name, min, ok := splitThreshold(expr)
		if !ok || !e.meetsThreshold(character, name, min) {
			return false
		}
	}

	for name, min := range req.Minimums {
		if !e.meetsThreshold(character, name, min) {
			return false
		}
	}

	return true
}

// meetsThreshold resolves a name against attributes first, then skills, and
// compares with >=. Unresolvable names are false.
func (e *Engine) meetsThreshold(character *drakar.CharacterData, name string, min int32) bool {
	if value, ok := character.Attribute(name); ok {
		return value >= min
	}
	if level, err := e.ResolveSkillLevel(character, name); err == nil {
		return level >= min
	}
	return false
}

// splitThreshold parses "<NAME> <INTEGER>" where the name may contain
// spaces; the last field must be the integer.
func splitThreshold(cond string) (name string, min int32, ok bool) {
	fields := strings.Fields(cond)
	if len(fields) < 2 {
		return "", 0, false
	}

	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return "", 0, false
	}

	return strings.Join(fields[:len(fields)-1], " "), int32(n), true
}
