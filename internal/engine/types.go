package engine

// PrereqKind tags the parsed form of a prerequisite source
type PrereqKind int

// Prerequisite kinds
const (
	// PrereqEmpty means no prerequisite: trivially satisfied
	PrereqEmpty PrereqKind = iota
	// PrereqTree is a structured boolean expression tree
	PrereqTree
	// PrereqLegacy is the legacy human-written string grammar
	PrereqLegacy
)

// Prerequisite is the parsed form of a spell prerequisite. The source is
// sniffed once at parse time, never per evaluation.
type Prerequisite struct {
	Kind   PrereqKind
	Tree   *PrereqNode
	Legacy string
}

// PrereqNode is one node of the structured prerequisite grammar.
//
// Leaf types: "spell" (spell known), "school" (membership in the named
// school), "any_school" (any school assigned), "skill" and "attribute"
// (at-least threshold). "logical" composes children with AND/OR. Negate
// inverts the node's result after evaluation.
type PrereqNode struct {
	Type       string        `json:"type"`
	Operator   string        `json:"operator,omitempty"`
	Conditions []*PrereqNode `json:"conditions,omitempty"`
	Name       string        `json:"name,omitempty"`
	Value      int32         `json:"value,omitempty"`
	Negate     bool          `json:"negate,omitempty"`
}
