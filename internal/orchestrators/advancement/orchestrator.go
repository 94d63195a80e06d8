// Package advancement implements the advancement wizard state machine.
//
// Every operation loads the session, checks the step guard, applies the
// change, and writes the session back. A failed guard returns
// errors.FailedPrecondition and leaves both session and character untouched.
package advancement

//go:generate mockgen -destination=mock/mock_service.go -package=advancementmock github.com/duskmantle/advancement-api/internal/orchestrators/advancement Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/duskmantle/advancement-api/internal/engine"
	"github.com/duskmantle/advancement-api/internal/entities/drakar"
	"github.com/duskmantle/advancement-api/internal/errors"
	"github.com/duskmantle/advancement-api/internal/orchestrators/dice"
	"github.com/duskmantle/advancement-api/internal/pkg/idgen"
	advancementsession "github.com/duskmantle/advancement-api/internal/repositories/advancement_session"
	"github.com/duskmantle/advancement-api/internal/repositories/catalog"
	characterrepo "github.com/duskmantle/advancement-api/internal/repositories/character"
)

// Service defines the interface for advancement wizard operations
type Service interface {
	// StartSession opens an advancement wizard for a character
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// GetSession fetches the current wizard state
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// SubmitMarks records the number of advancement marks earned
	SubmitMarks(ctx context.Context, input *SubmitMarksInput) (*SubmitMarksOutput, error)

	// ToggleSkill adds or removes a skill from the selection
	ToggleSkill(ctx context.Context, input *ToggleSkillInput) (*ToggleSkillOutput, error)

	// ConfirmSelection locks the selection and builds the roll queue
	ConfirmSelection(ctx context.Context, input *ConfirmSelectionInput) (*ConfirmSelectionOutput, error)

	// RollCurrentSkill resolves the advancement roll for the entry under
	// the cursor
	RollCurrentSkill(ctx context.Context, input *RollCurrentSkillInput) (*RollCurrentSkillOutput, error)

	// AdvanceToNextSkill moves past a processed entry
	AdvanceToNextSkill(ctx context.Context, input *AdvanceToNextSkillInput) (*AdvanceToNextSkillOutput, error)

	// ListEligibleAbilities lists heroic abilities the character may take
	ListEligibleAbilities(ctx context.Context, input *ListEligibleAbilitiesInput) (*ListEligibleAbilitiesOutput, error)

	// SelectAbility grants the chosen heroic ability
	SelectAbility(ctx context.Context, input *SelectAbilityInput) (*SelectAbilityOutput, error)

	// ChooseStudyType picks which study flow to follow
	ChooseStudyType(ctx context.Context, input *ChooseStudyTypeInput) (*ChooseStudyTypeOutput, error)

	// SelectStudySkill chooses the skill to study under a teacher
	SelectStudySkill(ctx context.Context, input *SelectStudySkillInput) (*SelectStudySkillOutput, error)

	// RollStudySkill resolves the teacher-study advancement roll
	RollStudySkill(ctx context.Context, input *RollStudySkillInput) (*RollStudySkillOutput, error)

	// ListLearnableSpells lists spells whose prerequisites the character
	// meets
	ListLearnableSpells(ctx context.Context, input *ListLearnableSpellsInput) (*ListLearnableSpellsOutput, error)

	// LearnSpell adds a spell to the character's grimoire
	LearnSpell(ctx context.Context, input *LearnSpellInput) (*LearnSpellOutput, error)

	// ListSchools lists magic schools the character could still learn
	ListSchools(ctx context.Context, input *ListSchoolsInput) (*ListSchoolsOutput, error)

	// BeginSchoolStudy starts studying a new school of magic
	BeginSchoolStudy(ctx context.Context, input *BeginSchoolStudyInput) (*BeginSchoolStudyOutput, error)

	// RollSchoolSkill resolves the new-school learning roll against INT
	RollSchoolSkill(ctx context.Context, input *RollSchoolSkillInput) (*RollSchoolSkillOutput, error)

	// FinishSession closes the wizard and deletes the session
	FinishSession(ctx context.Context, input *FinishSessionInput) (*FinishSessionOutput, error)
}

// Config holds the dependencies for the advancement orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	SessionRepo   advancementsession.Repository
	CatalogRepo   catalog.Repository
	Engine        engine.Engine
	DiceService   dice.Service
	IDGenerator   idgen.Generator
	EventBus      events.EventBus

	// SessionTTL bounds abandoned sessions; zero uses the repository default
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	sessionRepo   advancementsession.Repository
	catalogRepo   catalog.Repository
	engine        engine.Engine
	diceService   dice.Service
	idGen         idgen.Generator
	eventBus      events.EventBus
	sessionTTL    time.Duration
}

// NewOrchestrator creates a new advancement orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		sessionRepo:   cfg.SessionRepo,
		catalogRepo:   cfg.CatalogRepo,
		engine:        cfg.Engine,
		diceService:   cfg.DiceService,
		idGen:         cfg.IDGenerator,
		eventBus:      cfg.EventBus,
		sessionTTL:    cfg.SessionTTL,
	}, nil
}

var _ Service = (*orchestrator)(nil)

// StartSession opens a wizard session for a character. End-of-session starts
// at mark entry; study starts at study-type choice.
func (o *orchestrator) StartSession(
	ctx context.Context,
	input *StartSessionInput,
) (*StartSessionOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	var step advancementsession.Step
	switch input.Mode {
	case advancementsession.ModeEndSession:
		step = advancementsession.StepEnterMarks
	case advancementsession.ModeStudy:
		step = advancementsession.StepSelectStudyType
	default:
		return nil, errors.InvalidArgumentf("unknown session mode: %s", input.Mode)
	}

	session := &advancementsession.Session{
		ID:          o.idGen.Generate(),
		CharacterID: char.ID,
		Mode:        input.Mode,
		Step:        step,
	}

	createOutput, err := o.sessionRepo.Create(ctx, advancementsession.CreateInput{
		Session: session,
		TTL:     o.sessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	slog.InfoContext(ctx, "Started advancement session",
		"session_id", createOutput.Session.ID,
		"character_id", char.ID,
		"mode", input.Mode,
	)

	return &StartSessionOutput{Session: createOutput.Session}, nil
}

// GetSession fetches the current wizard state
func (o *orchestrator) GetSession(
	ctx context.Context,
	input *GetSessionInput,
) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{Session: session}, nil
}

// SubmitMarks records the mark count and pre-populates the selection from
// skills flagged during play.
func (o *orchestrator) SubmitMarks(
	ctx context.Context,
	input *SubmitMarksInput,
) (*SubmitMarksOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.Marks <= 0 {
		return nil, errors.InvalidArgument("marks must be positive")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, advancementsession.StepEnterMarks); err != nil {
		return nil, err
	}

	char, err := o.getCharacter(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, input.Marks)
	for _, marked := range char.MarkedSkills {
		if int32(len(selected)) >= input.Marks {
			break
		}
		canonical, ok := drakar.CanonicalSkillName(marked)
		if !ok {
			slog.WarnContext(ctx, "Skipping unknown marked skill",
				"character_id", char.ID,
				"skill", marked,
			)
			continue
		}
		if !containsFold(selected, canonical) {
			selected = append(selected, canonical)
		}
	}

	session.Marks = input.Marks
	session.SelectedSkills = selected
	session.Step = advancementsession.StepSelectSkills

	if err := o.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &SubmitMarksOutput{Session: session}, nil
}

// ToggleSkill adds a skill to the selection, or removes it when already
// selected. Adding past the mark count is rejected.
func (o *orchestrator) ToggleSkill(
	ctx context.Context,
	input *ToggleSkillInput,
) (*ToggleSkillOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	canonical, ok := drakar.CanonicalSkillName(input.Skill)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown skill: %s", input.Skill)
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, advancementsession.StepSelectSkills); err != nil {
		return nil, err
	}

	selected := false
	if containsFold(session.SelectedSkills, canonical) {
		kept := session.SelectedSkills[:0]
		for _, s := range session.SelectedSkills {
			if !strings.EqualFold(s, canonical) {
				kept = append(kept, s)
			}
		}
		session.SelectedSkills = kept
	} else {
		if int32(len(session.SelectedSkills)) >= session.Marks {
			return nil, errors.FailedPreconditionf(
				"selection is full: %d of %d marks used", len(session.SelectedSkills), session.Marks)
		}
		session.SelectedSkills = append(session.SelectedSkills, canonical)
		selected = true
	}

	if err := o.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &ToggleSkillOutput{Session: session, Selected: selected}, nil
}

// ConfirmSelection locks the selection and builds the roll queue. The
// selection size must equal the mark count exactly. Skills already at the cap
// enter the queue pre-skipped.
func (o *orchestrator) ConfirmSelection(
	ctx context.Context,
	input *ConfirmSelectionInput,
) (*ConfirmSelectionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, advancementsession.StepSelectSkills); err != nil {
		return nil, err
	}
	if int32(len(session.SelectedSkills)) != session.Marks {
		return nil, errors.FailedPreconditionf(
			"selection must match marks: %d selected, %d marks",
			len(session.SelectedSkills), session.Marks)
	}

	char, err := o.getCharacter(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}

	queue := make([]advancementsession.RollEntry, 0, len(session.SelectedSkills))
	for _, skill := range session.SelectedSkills {
		entry := advancementsession.RollEntry{
			Skill:  skill,
			Status: advancementsession.RollNotStarted,
		}

		level, resolveErr := o.engine.ResolveSkillLevel(char, skill)
		if resolveErr != nil {
			slog.WarnContext(ctx, "Skipping unresolvable skill in queue",
				"session_id", session.ID,
				"skill", skill,
				"error", resolveErr,
			)
			entry.Status = advancementsession.RollSkipped
			entry.Outcome = "unknown skill"
		} else if level >= drakar.MaxSkillLevel {
			entry.Status = advancementsession.RollSkipped
			entry.Target = level
			entry.NewLevel = level
			entry.Outcome = "already at maximum"
		}

		queue = append(queue, entry)
	}

	session.Queue = queue
	session.Cursor = 0
	session.Step = advancementsession.StepRollSkills

	if err := o.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &ConfirmSelectionOutput{Session: session}, nil
}

// RollCurrentSkill resolves the entry under the cursor: a d20 draw against
// the current level, or a manual advance. Rolling an already-processed entry
// is rejected so a double keypress can't advance twice.
func (o *orchestrator) RollCurrentSkill(
	ctx context.Context,
	input *RollCurrentSkillInput,
) (*RollCurrentSkillOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, advancementsession.StepRollSkills); err != nil {
		return nil, err
	}

	entry := session.CurrentEntry()
	if entry == nil {
		return nil, errors.FailedPrecondition("roll queue is exhausted")
	}
	if entry.Status.Processed() {
		return nil, errors.FailedPreconditionf("skill %s has already been processed", entry.Skill)
	}

	char, err := o.getCharacter(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}

	advanced, err := o.processSkillRoll(ctx, char, entry, input.Manual)
	if err != nil {
		return nil, err
	}

	if advanced {
		if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{CharacterData: char}); err != nil {
			return nil, errors.Wrap(err, "failed to save skill advancement")
		}
		o.publish(ctx, EventSkillAdvanced, char, map[string]any{
			"skill": entry.Skill,
			"level": entry.NewLevel,
		})
	}
	if entry.ReachedCap {
		session.PendingAbility = true
	}

	if err := o.saveSession(ctx, session); err != nil {
		return nil, err
	}

	result := *entry
	return &RollCurrentSkillOutput{Session: session, Entry: &result}, nil
}

// AdvanceToNextSkill moves the cursor past a processed entry. If the last
// roll capped a skill, the wizard detours into ability selection first.
func (o *orchestrator) AdvanceToNextSkill(
	ctx context.Context,
	input *AdvanceToNextSkillInput,
) (*AdvanceToNextSkillOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, advancementsession.StepRollSkills); err != nil {
		return nil, err
	}

	entry := session.CurrentEntry()
	if entry != nil && !entry.Status.Processed() {
		return nil, errors.FailedPreconditionf("skill %s has not been processed yet", entry.Skill)
	}

	if session.PendingAbility {
		session.Step = advancementsession.StepSelectAbility
	} else {
		session.Cursor++
		if int(session.Cursor) >= len(session.Queue) {
			session.Step = advancementsession.StepFinished
		}
	}

	if err := o.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &AdvanceToNextSkillOutput{Session: session}, nil
}

// ListEligibleAbilities lists heroic abilities the character can take: kin
// and profession restrictions hold, requirements are met, and the ability is
// not already held unless stackable.
func (o *orchestrator) ListEligibleAbilities(
	ctx context.Context,
	input *ListEligibleAbilitiesInput,
) (*ListEligibleAbilitiesOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, advancementsession.StepSelectAbility); err != nil {
		return nil, err
	}

	char, err := o.getCharacter(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}

	abilities, err := o.eligibleAbilities(ctx, char)
	if err != nil {
		return nil, err
	}

	return &ListEligibleAbilitiesOutput{Abilities: abilities}, nil
}

// SelectAbility grants the chosen ability, then returns to the roll queue or
// finishes when the queue is exhausted.
func (o *orchestrator) SelectAbility(
	ctx context.Context,
	input *SelectAbilityInput,
) (*SelectAbilityOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.Ability == "" {
		return nil, errors.InvalidArgument("ability is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, advancementsession.StepSelectAbility); err != nil {
		return nil, err
	}
	if !session.PendingAbility {
		return nil, errors.FailedPrecondition("no ability grant is pending")
	}

	char, err := o.getCharacter(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}

	eligible, err := o.eligibleAbilities(ctx, char)
	if err != nil {
		return nil, err
	}

	var chosen *drakar.AbilityDefinition
	for i := range eligible {
		if strings.EqualFold(eligible[i].Name, input.Ability) {
			chosen = &eligible[i]
			break
		}
	}
	if chosen == nil {
		return nil, errors.InvalidArgumentf("ability %s is not eligible", input.Ability)
	}

	char.Abilities = append(char.Abilities, chosen.Name)
	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{CharacterData: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to grant ability")
	}
	o.publish(ctx, EventAbilityGranted, char, map[string]any{"ability": chosen.Name})

	session.PendingAbility = false
	session.Cursor++
	if int(session.Cursor) >= len(session.Queue) {
		session.Step = advancementsession.StepFinished
	} else {
		session.Step = advancementsession.StepRollSkills
	}

	if err := o.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &SelectAbilityOutput{Session: session, Character: updateOutput.CharacterData}, nil
}

// FinishSession closes the wizard and deletes the session. A completed
// end-of-session run clears the character's play-time skill marks.
func (o *orchestrator) FinishSession(
	ctx context.Context,
	input *FinishSessionInput,
) (*FinishSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	char, err := o.getCharacter(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}

	if session.Mode == advancementsession.ModeEndSession &&
		session.Step == advancementsession.StepFinished &&
		len(char.MarkedSkills) > 0 {
		char.MarkedSkills = nil
		updateOutput, updateErr := o.characterRepo.Update(ctx, characterrepo.UpdateInput{CharacterData: char})
		if updateErr != nil {
			return nil, errors.Wrap(updateErr, "failed to clear skill marks")
		}
		char = updateOutput.CharacterData
	}

	if _, err := o.sessionRepo.Delete(ctx, advancementsession.DeleteInput{ID: session.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete session")
	}

	slog.InfoContext(ctx, "Finished advancement session",
		"session_id", session.ID,
		"character_id", char.ID,
		"step", session.Step,
	)

	return &FinishSessionOutput{Character: char}, nil
}

// processSkillRoll resolves one advancement roll against the skill's current
// level, mutating the entry and, on success, the character's skill levels.
// It reports whether the character changed; the caller persists.
func (o *orchestrator) processSkillRoll(
	ctx context.Context,
	char *drakar.CharacterData,
	entry *advancementsession.RollEntry,
	manual bool,
) (bool, error) {
	level, err := o.engine.ResolveSkillLevel(char, entry.Skill)
	if err != nil {
		return false, errors.Wrapf(err, "failed to resolve level for %s", entry.Skill)
	}

	if level >= drakar.MaxSkillLevel {
		entry.Status = advancementsession.RollSkipped
		entry.Target = level
		entry.NewLevel = level
		entry.Outcome = "already at maximum"
		return false, nil
	}

	entry.Target = level
	success := true
	if !manual {
		rollOutput, rollErr := o.diceService.RollD20(ctx, &dice.RollD20Input{
			Description: fmt.Sprintf("advancement roll for %s", entry.Skill),
		})
		if rollErr != nil {
			return false, errors.Wrap(rollErr, "failed to roll d20")
		}
		entry.Roll = rollOutput.Value
		success = rollOutput.Value > level
	}

	if !success {
		entry.Status = advancementsession.RollFailed
		entry.NewLevel = level
		entry.Outcome = fmt.Sprintf("rolled %d vs %d: no improvement", entry.Roll, level)
		return false, nil
	}

	newLevel := level + 1
	if newLevel > drakar.MaxSkillLevel {
		newLevel = drakar.MaxSkillLevel
	}

	canonical, _ := drakar.CanonicalSkillName(entry.Skill)
	if char.SkillLevels == nil {
		char.SkillLevels = make(map[string]int32)
	}
	char.SkillLevels[canonical] = newLevel

	entry.Status = advancementsession.RollSucceeded
	entry.NewLevel = newLevel
	entry.ReachedCap = newLevel == drakar.MaxSkillLevel
	if manual {
		entry.Outcome = fmt.Sprintf("advanced to %d (manual)", newLevel)
	} else {
		entry.Outcome = fmt.Sprintf("rolled %d vs %d: advanced to %d", entry.Roll, level, newLevel)
	}
	if entry.ReachedCap {
		entry.Outcome += ", reached maximum"
	}

	return true, nil
}

// eligibleAbilities filters the catalog down to abilities this character may
// take right now.
func (o *orchestrator) eligibleAbilities(
	ctx context.Context,
	char *drakar.CharacterData,
) ([]drakar.AbilityDefinition, error) {
	listOutput, err := o.catalogRepo.ListAbilities(ctx, catalog.ListAbilitiesInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list abilities")
	}

	eligible := make([]drakar.AbilityDefinition, 0, len(listOutput.Abilities))
	for _, def := range listOutput.Abilities {
		if def.Kin != "" && !strings.EqualFold(def.Kin, char.Kin) {
			continue
		}
		if def.Profession != "" && !strings.EqualFold(def.Profession, char.Profession) {
			continue
		}
		if !def.Stackable && char.HasAbility(def.Name) {
			continue
		}
		if !o.engine.EvaluateAbilityRequirement(def.Requirement, char) {
			continue
		}
		eligible = append(eligible, def)
	}

	return eligible, nil
}

func (o *orchestrator) getSession(ctx context.Context, id string) (*advancementsession.Session, error) {
	getOutput, err := o.sessionRepo.Get(ctx, advancementsession.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get session %s", id)
	}
	return getOutput.Session, nil
}

func (o *orchestrator) getCharacter(ctx context.Context, id string) (*drakar.CharacterData, error) {
	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", id)
	}
	return getOutput.CharacterData, nil
}

func (o *orchestrator) saveSession(ctx context.Context, session *advancementsession.Session) error {
	if err := o.sessionRepo.Update(ctx, session); err != nil {
		return errors.Wrap(err, "failed to save session")
	}
	return nil
}

// publish emits a game event; delivery failures are logged, never fatal
func (o *orchestrator) publish(
	ctx context.Context,
	topic string,
	char *drakar.CharacterData,
	attrs map[string]any,
) {
	event := events.NewGameEvent(topic, drakar.WrapCharacter(char), nil)
	for k, v := range attrs {
		event.Context().Set(k, v)
	}
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "Failed to publish event", "topic", topic, "error", err)
	}
}

func requireStep(session *advancementsession.Session, step advancementsession.Step) error {
	if session.Step != step {
		return errors.FailedPreconditionf(
			"session is at step %s, expected %s", session.Step, step)
	}
	return nil
}

func containsFold(list []string, target string) bool {
	for _, item := range list {
		if strings.EqualFold(item, target) {
			return true
		}
	}
	return false
}
