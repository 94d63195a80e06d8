package advancement

import (
	"context"
	"fmt"
	"strings"

	"github.com/duskmantle/advancement-api/internal/entities/drakar"
	"github.com/duskmantle/advancement-api/internal/errors"
	"github.com/duskmantle/advancement-api/internal/orchestrators/dice"
	advancementsession "github.com/duskmantle/advancement-api/internal/repositories/advancement_session"
	"github.com/duskmantle/advancement-api/internal/repositories/catalog"
	characterrepo "github.com/duskmantle/advancement-api/internal/repositories/character"
)

// ChooseStudyType routes the study wizard. A character already studying a
// skill under a teacher resumes directly at the roll.
func (o *orchestrator) ChooseStudyType(
	ctx context.Context,
	input *ChooseStudyTypeInput,
) (*ChooseStudyTypeOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, advancementsession.StepSelectStudyType); err != nil {
		return nil, err
	}

	char, err := o.getCharacter(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}

	switch input.StudyType {
	case StudyTeacher:
		if char.StudySkill != "" {
			session.StudyEntry = &advancementsession.RollEntry{
				Skill:  char.StudySkill,
				Status: advancementsession.RollNotStarted,
			}
			session.Step = advancementsession.StepStudyTeacherRollSkill
		} else {
			session.Step = advancementsession.StepStudyTeacherSelectSkill
		}
	case StudyMagic:
		if char.MagicSchoolID == "" {
			return nil, errors.FailedPrecondition("character has no magic school")
		}
		session.Step = advancementsession.StepStudyMagicSelectSpell
	case StudyNewSchool:
		if !o.engine.CanLearnNewSchool(char) {
			return nil, errors.FailedPrecondition("character has no unused Magic Talent")
		}
		session.Step = advancementsession.StepStudyMagicSelectSchool
	default:
		return nil, errors.InvalidArgumentf("unknown study type: %s", input.StudyType)
	}

	if err := o.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &ChooseStudyTypeOutput{Session: session}, nil
}

// SelectStudySkill commits the character to studying one skill. A character
// can study at most one skill at a time.
func (o *orchestrator) SelectStudySkill(
	ctx context.Context,
	input *SelectStudySkillInput,
) (*SelectStudySkillOutput, error) {
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
	if err := requireStep(session, advancementsession.StepStudyTeacherSelectSkill); err != nil {
		return nil, err
	}

	char, err := o.getCharacter(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}
	if char.StudySkill != "" {
		return nil, errors.FailedPreconditionf("already studying %s", char.StudySkill)
	}

	level, err := o.engine.ResolveSkillLevel(char, canonical)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve level for %s", canonical)
	}
	if level >= drakar.MaxSkillLevel {
		return nil, errors.InvalidArgumentf("%s is already at maximum", canonical)
	}

	char.StudySkill = canonical
	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{CharacterData: char}); err != nil {
		return nil, errors.Wrap(err, "failed to record study skill")
	}

	session.StudyEntry = &advancementsession.RollEntry{
		Skill:  canonical,
		Status: advancementsession.RollNotStarted,
	}
	session.Step = advancementsession.StepStudyTeacherRollSkill

	if err := o.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &SelectStudySkillOutput{Session: session}, nil
}

// RollStudySkill resolves the teacher-study roll. The study commitment is
// consumed whether or not the roll succeeds.
func (o *orchestrator) RollStudySkill(
	ctx context.Context,
	input *RollStudySkillInput,
) (*RollStudySkillOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, advancementsession.StepStudyTeacherRollSkill); err != nil {
		return nil, err
	}

	entry := session.StudyEntry
	if entry == nil {
		return nil, errors.FailedPrecondition("no study roll prepared")
	}
	if entry.Status.Processed() {
		return nil, errors.FailedPrecondition("study roll has already been processed")
	}

	char, err := o.getCharacter(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}

	advanced, err := o.processSkillRoll(ctx, char, entry, input.Manual)
	if err != nil {
		return nil, err
	}

	char.StudySkill = ""
	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{CharacterData: char}); err != nil {
		return nil, errors.Wrap(err, "failed to save study result")
	}
	if advanced {
		o.publish(ctx, EventSkillAdvanced, char, map[string]any{
			"skill": entry.Skill,
			"level": entry.NewLevel,
		})
	}

	session.Step = advancementsession.StepFinished

	if err := o.saveSession(ctx, session); err != nil {
		return nil, err
	}

	result := *entry
	return &RollStudySkillOutput{Session: session, Entry: &result}, nil
}

// ListLearnableSpells lists spells from the character's school (plus general
// magic) that are not yet known and whose prerequisites hold.
func (o *orchestrator) ListLearnableSpells(
	ctx context.Context,
	input *ListLearnableSpellsInput,
) (*ListLearnableSpellsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, advancementsession.StepStudyMagicSelectSpell); err != nil {
		return nil, err
	}

	char, err := o.getCharacter(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}

	spells, err := o.learnableSpells(ctx, char)
	if err != nil {
		return nil, err
	}

	return &ListLearnableSpellsOutput{Spells: spells}, nil
}

// LearnSpell adds the chosen spell to the character's grimoire and finishes
// the wizard. School spells go on the school list, general magic on the
// personal list.
func (o *orchestrator) LearnSpell(
	ctx context.Context,
	input *LearnSpellInput,
) (*LearnSpellOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.Spell == "" {
		return nil, errors.InvalidArgument("spell is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, advancementsession.StepStudyMagicSelectSpell); err != nil {
		return nil, err
	}

	char, err := o.getCharacter(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}

	learnable, err := o.learnableSpells(ctx, char)
	if err != nil {
		return nil, err
	}

	var chosen *drakar.SpellDefinition
	for i := range learnable {
		if strings.EqualFold(learnable[i].Name, input.Spell) {
			chosen = &learnable[i]
			break
		}
	}
	if chosen == nil {
		return nil, errors.InvalidArgumentf("spell %s is not learnable", input.Spell)
	}

	if chosen.SchoolID != "" && chosen.SchoolID == char.MagicSchoolID {
		char.SchoolSpells = append(char.SchoolSpells, chosen.Name)
	} else {
		char.Spells = append(char.Spells, chosen.Name)
	}

	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{CharacterData: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to learn spell")
	}
	o.publish(ctx, EventSpellLearned, char, map[string]any{"spell": chosen.Name})

	session.Step = advancementsession.StepFinished

	if err := o.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &LearnSpellOutput{Session: session, Character: updateOutput.CharacterData}, nil
}

// ListSchools lists magic schools whose skill the character does not yet know
func (o *orchestrator) ListSchools(
	ctx context.Context,
	input *ListSchoolsInput,
) (*ListSchoolsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, advancementsession.StepStudyMagicSelectSchool); err != nil {
		return nil, err
	}

	char, err := o.getCharacter(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}

	listOutput, err := o.catalogRepo.ListSchools(ctx, catalog.ListSchoolsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list schools")
	}

	schools := make([]drakar.SchoolDefinition, 0, len(listOutput.Schools))
	for _, school := range listOutput.Schools {
		if knowsSchoolSkill(char, school) {
			continue
		}
		schools = append(schools, school)
	}

	return &ListSchoolsOutput{Schools: schools}, nil
}

// BeginSchoolStudy commits to learning one school and prepares the INT roll
func (o *orchestrator) BeginSchoolStudy(
	ctx context.Context,
	input *BeginSchoolStudyInput,
) (*BeginSchoolStudyOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.SchoolID == "" {
		return nil, errors.InvalidArgument("school ID is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, advancementsession.StepStudyMagicSelectSchool); err != nil {
		return nil, err
	}

	char, err := o.getCharacter(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}

	schoolOutput, err := o.catalogRepo.GetSchool(ctx, catalog.GetSchoolInput{ID: input.SchoolID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get school %s", input.SchoolID)
	}
	school := schoolOutput.School

	if knowsSchoolSkill(char, *school) {
		return nil, errors.FailedPreconditionf("already knows %s", school.Name)
	}

	session.SchoolID = school.ID
	session.StudyEntry = &advancementsession.RollEntry{
		Skill:  school.SkillName,
		Status: advancementsession.RollNotStarted,
	}
	session.Step = advancementsession.StepStudyMagicRollSchool

	if err := o.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &BeginSchoolStudyOutput{Session: session}, nil
}

// RollSchoolSkill resolves the new-school learning roll against INT. On
// success the school skill starts at its base chance; a character without a
// school also gains this one as their school.
func (o *orchestrator) RollSchoolSkill(
	ctx context.Context,
	input *RollSchoolSkillInput,
) (*RollSchoolSkillOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, advancementsession.StepStudyMagicRollSchool); err != nil {
		return nil, err
	}

	entry := session.StudyEntry
	if entry == nil {
		return nil, errors.FailedPrecondition("no school roll prepared")
	}
	if entry.Status.Processed() {
		return nil, errors.FailedPrecondition("school roll has already been processed")
	}

	char, err := o.getCharacter(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}

	schoolOutput, err := o.catalogRepo.GetSchool(ctx, catalog.GetSchoolInput{ID: session.SchoolID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get school %s", session.SchoolID)
	}
	school := schoolOutput.School

	intValue, _ := char.Attribute(drakar.AttributeINT)
	entry.Target = intValue

	success := true
	if !input.Manual {
		rollOutput, rollErr := o.diceService.RollD20(ctx, &dice.RollD20Input{
			Description: fmt.Sprintf("school study roll for %s", school.Name),
		})
		if rollErr != nil {
			return nil, errors.Wrap(rollErr, "failed to roll d20")
		}
		entry.Roll = rollOutput.Value
		success = rollOutput.Value > intValue
	}

	if success {
		base := o.engine.BaseChance(intValue)
		if char.SkillLevels == nil {
			char.SkillLevels = make(map[string]int32)
		}
		char.SkillLevels[school.SkillName] = base
		if char.MagicSchoolID == "" {
			char.MagicSchoolID = school.ID
		}

		if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{CharacterData: char}); err != nil {
			return nil, errors.Wrap(err, "failed to save new school")
		}
		o.publish(ctx, EventSchoolLearned, char, map[string]any{
			"school": school.Name,
			"level":  base,
		})

		entry.Status = advancementsession.RollSucceeded
		entry.NewLevel = base
		if input.Manual {
			entry.Outcome = fmt.Sprintf("learned %s at level %d (manual)", school.Name, base)
		} else {
			entry.Outcome = fmt.Sprintf("rolled %d vs INT %d: learned %s at level %d",
				entry.Roll, intValue, school.Name, base)
		}
	} else {
		entry.Status = advancementsession.RollFailed
		entry.Outcome = fmt.Sprintf("rolled %d vs INT %d: %s not learned",
			entry.Roll, intValue, school.Name)
	}

	session.Step = advancementsession.StepFinished

	if err := o.saveSession(ctx, session); err != nil {
		return nil, err
	}

	result := *entry
	return &RollSchoolSkillOutput{Session: session, Entry: &result}, nil
}

// learnableSpells filters the catalog down to spells this character may
// learn right now.
func (o *orchestrator) learnableSpells(
	ctx context.Context,
	char *drakar.CharacterData,
) ([]drakar.SpellDefinition, error) {
	schoolOutput, err := o.catalogRepo.GetSchool(ctx, catalog.GetSchoolInput{ID: char.MagicSchoolID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get school %s", char.MagicSchoolID)
	}

	schoolsOutput, err := o.catalogRepo.ListSchools(ctx, catalog.ListSchoolsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list schools")
	}

	spellsOutput, err := o.catalogRepo.ListSpells(ctx, catalog.ListSpellsInput{
		SchoolID: char.MagicSchoolID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spells")
	}

	learnable := make([]drakar.SpellDefinition, 0, len(spellsOutput.Spells))
	for _, spell := range spellsOutput.Spells {
		if char.KnowsSpell(spell.Name) {
			continue
		}
		if !o.engine.EvaluatePrerequisite(
			spell.Prerequisite, char, schoolOutput.School.Name, schoolsOutput.Schools) {
			continue
		}
		learnable = append(learnable, spell)
	}

	return learnable, nil
}

// knowsSchoolSkill reports whether the character already has the school's
// skill, by explicit level or training
func knowsSchoolSkill(char *drakar.CharacterData, school drakar.SchoolDefinition) bool {
	if _, ok := char.ExplicitSkillLevel(school.SkillName); ok {
		return true
	}
	return char.IsTrained(school.SkillName)
}
