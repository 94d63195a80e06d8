// Package advancementsession provides repository interface and types for
// advancement wizard sessions.
//
// A session is the ephemeral state of one character's advancement wizard. It
// is created when the wizard opens, deleted on finish or close, and carries a
// TTL so abandoned sessions are reclaimed.
package advancementsession

//go:generate mockgen -destination=mock/mock_repository.go -package=advancementsessionmock github.com/duskmantle/advancement-api/internal/repositories/advancement_session Repository

import (
	"context"
	"time"
)

// Mode selects which wizard flow a session runs
type Mode string

// Session modes
const (
	// ModeEndSession is the end-of-session advancement flow: enter marks,
	// select skills, roll each.
	ModeEndSession Mode = "end_session"
	// ModeStudy is the study flow: teacher-guided skill study, spell
	// learning, or learning a new school.
	ModeStudy Mode = "study"
)

// Step is a state of the advancement state machine. Transitions between
// steps are driven by the advancement orchestrator; nothing else writes them.
type Step string

// Wizard steps
const (
	StepInitial                 Step = "initial"
	StepEnterMarks              Step = "enter_marks"
	StepSelectSkills            Step = "select_skills"
	StepRollSkills              Step = "roll_skills"
	StepSelectAbility           Step = "select_ability"
	StepSelectStudyType         Step = "select_study_type"
	StepStudyTeacherSelectSkill Step = "study_teacher_select_skill"
	StepStudyTeacherRollSkill   Step = "study_teacher_roll_skill"
	StepStudyMagicSelectSpell   Step = "study_magic_select_spell"
	StepStudyMagicSelectSchool  Step = "study_magic_select_school"
	StepStudyMagicRollSchool    Step = "study_magic_roll_school"
	StepFinished                Step = "finished"
)

// RollStatus is the explicit processing state of one queue entry. Status is
// never inferred from the skill level or outcome text: a failed roll leaves
// the level unchanged but still marks the entry processed.
type RollStatus string

// Roll statuses
const (
	RollNotStarted RollStatus = "not_started"
	RollSucceeded  RollStatus = "succeeded"
	RollFailed     RollStatus = "failed"
	RollSkipped    RollStatus = "skipped"
)

// Processed reports whether the entry has been handled this visit
func (s RollStatus) Processed() bool {
	return s == RollSucceeded || s == RollFailed || s == RollSkipped
}

// RollEntry tracks one skill through its advancement roll
type RollEntry struct {
	// Skill under advancement
	Skill string `json:"skill"`

	// Status of this entry
	Status RollStatus `json:"status"`

	// Roll is the d20 draw, 0 for manual advances and skips
	Roll int32 `json:"roll"`

	// Target the draw had to beat (strictly greater than)
	Target int32 `json:"target"`

	// NewLevel after processing, unchanged on failure
	NewLevel int32 `json:"new_level"`

	// ReachedCap is set when this entry pushed the skill to the cap for
	// the first time
	ReachedCap bool `json:"reached_cap"`

	// Outcome is the human-readable result line
	Outcome string `json:"outcome"`
}

// Session is the persisted state of one advancement wizard
type Session struct {
	ID          string `json:"id"`
	CharacterID string `json:"character_id"`
	Mode        Mode   `json:"mode"`
	Step        Step   `json:"step"`

	// Marks entered for this session; selection size must equal it
	// before rolling begins
	Marks int32 `json:"marks"`

	// SelectedSkills chosen to attempt advancement
	SelectedSkills []string `json:"selected_skills"`

	// Queue is the ordered roll queue built from the selection; Cursor
	// points at the entry being processed
	Queue  []RollEntry `json:"queue"`
	Cursor int32       `json:"cursor"`

	// PendingAbility gates entry into ability selection after a skill
	// first reaches the cap
	PendingAbility bool `json:"pending_ability"`

	// StudyEntry tracks the teacher-study or school-study roll
	StudyEntry *RollEntry `json:"study_entry,omitempty"`

	// SchoolID is the school being studied in the new-school flow
	SchoolID string `json:"school_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CurrentEntry returns the queue entry under the cursor, nil when the queue
// is exhausted.
func (s *Session) CurrentEntry() *RollEntry {
	if s.Cursor < 0 || int(s.Cursor) >= len(s.Queue) {
		return nil
	}
	return &s.Queue[s.Cursor]
}

// Repository defines the interface for advancement session persistence
type Repository interface {
	// Create stores a new session with a TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	// Returns errors.NotFound if the session doesn't exist or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update overwrites a session, preserving its remaining TTL
	Update(ctx context.Context, session *Session) error

	// Delete removes a session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput contains parameters for creating a session
type CreateInput struct {
	Session *Session
	TTL     time.Duration
}

// CreateOutput contains the result of creating a session
type CreateOutput struct {
	Session *Session
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a session
type GetOutput struct {
	Session *Session
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting a session
type DeleteOutput struct{}
