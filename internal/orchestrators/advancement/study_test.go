package advancement_test

import (
	"fmt"

	"go.uber.org/mock/gomock"

	"github.com/duskmantle/advancement-api/internal/entities/drakar"
	"github.com/duskmantle/advancement-api/internal/errors"
	advancement "github.com/duskmantle/advancement-api/internal/orchestrators/advancement"
	"github.com/duskmantle/advancement-api/internal/orchestrators/dice"
	advancementsession "github.com/duskmantle/advancement-api/internal/repositories/advancement_session"
	"github.com/duskmantle/advancement-api/internal/testutils"
)

// newStudyFixtures returns a study-mode session and a mage character with
// unique IDs per call.
func (s *OrchestratorTestSuite) newStudyFixtures(
	step advancementsession.Step,
) (*advancementsession.Session, *drakar.CharacterData) {
	s.seq++
	char := testutils.CreateTestMage("player_1")
	char.ID = fmt.Sprintf("char_%d", s.seq)

	session := &advancementsession.Session{
		ID:          fmt.Sprintf("session_%d", s.seq),
		CharacterID: char.ID,
		Mode:        advancementsession.ModeStudy,
		Step:        step,
	}
	return session, char
}

func (s *OrchestratorTestSuite) TestChooseStudyType() {
	s.Run("teacher study goes to skill selection", func() {
		session, char := s.newStudyFixtures(advancementsession.StepSelectStudyType)
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectSessionSave()

		output, err := s.service.ChooseStudyType(s.ctx, &advancement.ChooseStudyTypeInput{
			SessionID: session.ID,
			StudyType: advancement.StudyTeacher,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.StepStudyTeacherSelectSkill, output.Session.Step)
	})

	s.Run("a skill already under study resumes at the roll", func() {
		session, char := s.newStudyFixtures(advancementsession.StepSelectStudyType)
		char.StudySkill = "Swords"
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectSessionSave()

		output, err := s.service.ChooseStudyType(s.ctx, &advancement.ChooseStudyTypeInput{
			SessionID: session.ID,
			StudyType: advancement.StudyTeacher,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.StepStudyTeacherRollSkill, output.Session.Step)
		s.Require().NotNil(output.Session.StudyEntry)
		s.Equal("Swords", output.Session.StudyEntry.Skill)
	})

	s.Run("spell study requires a magic school", func() {
		session, char := s.newStudyFixtures(advancementsession.StepSelectStudyType)
		char.MagicSchoolID = ""
		s.expectSession(session)
		s.expectCharacter(char)

		_, err := s.service.ChooseStudyType(s.ctx, &advancement.ChooseStudyTypeInput{
			SessionID: session.ID,
			StudyType: advancement.StudyMagic,
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("spell study goes to spell selection", func() {
		session, char := s.newStudyFixtures(advancementsession.StepSelectStudyType)
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectSessionSave()

		output, err := s.service.ChooseStudyType(s.ctx, &advancement.ChooseStudyTypeInput{
			SessionID: session.ID,
			StudyType: advancement.StudyMagic,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.StepStudyMagicSelectSpell, output.Session.Step)
	})

	s.Run("new school requires an unused Magic Talent", func() {
		// One Magic Talent, one school skill known: talent is spent
		session, char := s.newStudyFixtures(advancementsession.StepSelectStudyType)
		s.expectSession(session)
		s.expectCharacter(char)

		_, err := s.service.ChooseStudyType(s.ctx, &advancement.ChooseStudyTypeInput{
			SessionID: session.ID,
			StudyType: advancement.StudyNewSchool,
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("second Magic Talent unlocks new-school study", func() {
		session, char := s.newStudyFixtures(advancementsession.StepSelectStudyType)
		char.Abilities = append(char.Abilities, drakar.AbilityMagicTalent)
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectSessionSave()

		output, err := s.service.ChooseStudyType(s.ctx, &advancement.ChooseStudyTypeInput{
			SessionID: session.ID,
			StudyType: advancement.StudyNewSchool,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.StepStudyMagicSelectSchool, output.Session.Step)
	})

	s.Run("unknown study type is rejected", func() {
		session, char := s.newStudyFixtures(advancementsession.StepSelectStudyType)
		s.expectSession(session)
		s.expectCharacter(char)

		_, err := s.service.ChooseStudyType(s.ctx, &advancement.ChooseStudyTypeInput{
			SessionID: session.ID,
			StudyType: "osmosis",
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestSelectStudySkill() {
	s.Run("records the study commitment", func() {
		session, char := s.newStudyFixtures(advancementsession.StepStudyTeacherSelectSkill)
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectCharacterSave()
		s.expectSessionSave()

		output, err := s.service.SelectStudySkill(s.ctx, &advancement.SelectStudySkillInput{
			SessionID: session.ID,
			Skill:     "swords",
		})
		s.Require().NoError(err)
		s.Equal("Swords", char.StudySkill)
		s.Equal(advancementsession.StepStudyTeacherRollSkill, output.Session.Step)
		s.Equal("Swords", output.Session.StudyEntry.Skill)
	})

	s.Run("a second commitment is rejected", func() {
		session, char := s.newStudyFixtures(advancementsession.StepStudyTeacherSelectSkill)
		char.StudySkill = "Evade"
		s.expectSession(session)
		s.expectCharacter(char)

		_, err := s.service.SelectStudySkill(s.ctx, &advancement.SelectStudySkillInput{
			SessionID: session.ID,
			Skill:     "Swords",
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("a skill at the cap cannot be studied", func() {
		session, char := s.newStudyFixtures(advancementsession.StepStudyTeacherSelectSkill)
		char.SkillLevels["Swords"] = drakar.MaxSkillLevel
		s.expectSession(session)
		s.expectCharacter(char)

		_, err := s.service.SelectStudySkill(s.ctx, &advancement.SelectStudySkillInput{
			SessionID: session.ID,
			Skill:     "Swords",
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestRollStudySkill() {
	newStudyRoll := func() (*advancementsession.Session, *drakar.CharacterData) {
		session, char := s.newStudyFixtures(advancementsession.StepStudyTeacherRollSkill)
		char.StudySkill = drakar.SkillElementalism
		session.StudyEntry = &advancementsession.RollEntry{
			Skill:  drakar.SkillElementalism,
			Status: advancementsession.RollNotStarted,
		}
		return session, char
	}

	s.Run("success advances and consumes the commitment", func() {
		session, char := newStudyRoll()
		s.expectSession(session)
		s.expectCharacter(char)
		s.mockDice.EXPECT().
			RollD20(s.ctx, gomock.Any()).
			Return(&dice.RollD20Output{Value: 11}, nil)
		s.expectCharacterSave()
		s.expectSessionSave()

		output, err := s.service.RollStudySkill(s.ctx, &advancement.RollStudySkillInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.RollSucceeded, output.Entry.Status)
		s.Equal(int32(11), char.SkillLevels[drakar.SkillElementalism])
		s.Empty(char.StudySkill)
		s.Equal(advancementsession.StepFinished, output.Session.Step)
	})

	s.Run("failure still consumes the commitment", func() {
		session, char := newStudyRoll()
		s.expectSession(session)
		s.expectCharacter(char)
		s.mockDice.EXPECT().
			RollD20(s.ctx, gomock.Any()).
			Return(&dice.RollD20Output{Value: 4}, nil)
		s.expectCharacterSave()
		s.expectSessionSave()

		output, err := s.service.RollStudySkill(s.ctx, &advancement.RollStudySkillInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.RollFailed, output.Entry.Status)
		s.Equal(int32(10), char.SkillLevels[drakar.SkillElementalism])
		s.Empty(char.StudySkill)
	})

	s.Run("a processed roll cannot repeat", func() {
		session, _ := newStudyRoll()
		session.StudyEntry.Status = advancementsession.RollSucceeded
		s.expectSession(session)

		_, err := s.service.RollStudySkill(s.ctx, &advancement.RollStudySkillInput{
			SessionID: session.ID,
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *OrchestratorTestSuite) TestListLearnableSpells() {
	session, char := s.newStudyFixtures(advancementsession.StepStudyMagicSelectSpell)
	s.expectSession(session)
	s.expectCharacter(char)

	output, err := s.service.ListLearnableSpells(s.ctx, &advancement.ListLearnableSpellsInput{
		SessionID: session.ID,
	})
	s.Require().NoError(err)

	names := make([]string, 0, len(output.Spells))
	for _, spell := range output.Spells {
		names = append(names, spell.Name)
	}

	// Elementalist at skill 10, knows Light and Spark
	s.Contains(names, "Ward", "general magic is open to any school member")
	s.Contains(names, "Gust of Wind")
	s.Contains(names, "Fireball", "knows Spark, the prerequisite")
	s.Contains(names, "Frostbite", "skill 10 meets the tree's threshold of 8")
	s.NotContains(names, "Light", "already known")
	s.NotContains(names, "Spark", "already known")
	s.NotContains(names, "Firestorm", "Fireball not yet known")
	s.NotContains(names, "Lay on Hands", "wrong school")
}

func (s *OrchestratorTestSuite) TestLearnSpell() {
	s.Run("school spell goes on the school list", func() {
		session, char := s.newStudyFixtures(advancementsession.StepStudyMagicSelectSpell)
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectCharacterSave()
		s.expectSessionSave()

		output, err := s.service.LearnSpell(s.ctx, &advancement.LearnSpellInput{
			SessionID: session.ID,
			Spell:     "Fireball",
		})
		s.Require().NoError(err)
		s.Contains(output.Character.SchoolSpells, "Fireball")
		s.NotContains(output.Character.Spells, "Fireball")
		s.Equal(advancementsession.StepFinished, output.Session.Step)
	})

	s.Run("general magic goes on the personal list", func() {
		session, char := s.newStudyFixtures(advancementsession.StepStudyMagicSelectSpell)
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectCharacterSave()
		s.expectSessionSave()

		output, err := s.service.LearnSpell(s.ctx, &advancement.LearnSpellInput{
			SessionID: session.ID,
			Spell:     "Ward",
		})
		s.Require().NoError(err)
		s.Contains(output.Character.Spells, "Ward")
	})

	s.Run("a spell with unmet prerequisites is rejected", func() {
		session, char := s.newStudyFixtures(advancementsession.StepStudyMagicSelectSpell)
		s.expectSession(session)
		s.expectCharacter(char)

		_, err := s.service.LearnSpell(s.ctx, &advancement.LearnSpellInput{
			SessionID: session.ID,
			Spell:     "Firestorm",
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestListSchools() {
	session, char := s.newStudyFixtures(advancementsession.StepStudyMagicSelectSchool)
	char.Abilities = append(char.Abilities, drakar.AbilityMagicTalent)
	s.expectSession(session)
	s.expectCharacter(char)

	output, err := s.service.ListSchools(s.ctx, &advancement.ListSchoolsInput{
		SessionID: session.ID,
	})
	s.Require().NoError(err)

	ids := make([]string, 0, len(output.Schools))
	for _, school := range output.Schools {
		ids = append(ids, school.ID)
	}
	s.Contains(ids, "school_animism")
	s.Contains(ids, "school_mentalism")
	s.NotContains(ids, "school_elementalism", "already known")
}

func (s *OrchestratorTestSuite) TestBeginSchoolStudy() {
	s.Run("prepares the INT roll", func() {
		session, char := s.newStudyFixtures(advancementsession.StepStudyMagicSelectSchool)
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectSessionSave()

		output, err := s.service.BeginSchoolStudy(s.ctx, &advancement.BeginSchoolStudyInput{
			SessionID: session.ID,
			SchoolID:  "school_animism",
		})
		s.Require().NoError(err)
		s.Equal("school_animism", output.Session.SchoolID)
		s.Equal(drakar.SkillAnimism, output.Session.StudyEntry.Skill)
		s.Equal(advancementsession.StepStudyMagicRollSchool, output.Session.Step)
	})

	s.Run("a known school cannot be studied again", func() {
		session, char := s.newStudyFixtures(advancementsession.StepStudyMagicSelectSchool)
		s.expectSession(session)
		s.expectCharacter(char)

		_, err := s.service.BeginSchoolStudy(s.ctx, &advancement.BeginSchoolStudyInput{
			SessionID: session.ID,
			SchoolID:  "school_elementalism",
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("unknown school returns NotFound", func() {
		session, char := s.newStudyFixtures(advancementsession.StepStudyMagicSelectSchool)
		s.expectSession(session)
		s.expectCharacter(char)

		_, err := s.service.BeginSchoolStudy(s.ctx, &advancement.BeginSchoolStudyInput{
			SessionID: session.ID,
			SchoolID:  "school_necromancy",
		})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestRollSchoolSkill() {
	newSchoolRoll := func() (*advancementsession.Session, *drakar.CharacterData) {
		session, char := s.newStudyFixtures(advancementsession.StepStudyMagicRollSchool)
		session.SchoolID = "school_animism"
		session.StudyEntry = &advancementsession.RollEntry{
			Skill:  drakar.SkillAnimism,
			Status: advancementsession.RollNotStarted,
		}
		return session, char
	}

	s.Run("roll above INT learns the school at base chance", func() {
		session, char := newSchoolRoll()
		s.expectSession(session)
		s.expectCharacter(char)
		s.mockDice.EXPECT().
			RollD20(s.ctx, gomock.Any()).
			Return(&dice.RollD20Output{Value: 16}, nil)
		s.expectCharacterSave()
		s.expectSessionSave()

		output, err := s.service.RollSchoolSkill(s.ctx, &advancement.RollSchoolSkillInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.RollSucceeded, output.Entry.Status)
		// INT 15 -> base chance 6
		s.Equal(int32(6), char.SkillLevels[drakar.SkillAnimism])
		// Existing school affiliation is untouched
		s.Equal("school_elementalism", char.MagicSchoolID)
		s.Equal(advancementsession.StepFinished, output.Session.Step)
	})

	s.Run("roll at or below INT fails without mutation", func() {
		session, char := newSchoolRoll()
		s.expectSession(session)
		s.expectCharacter(char)
		s.mockDice.EXPECT().
			RollD20(s.ctx, gomock.Any()).
			Return(&dice.RollD20Output{Value: 15}, nil)
		s.expectSessionSave()

		output, err := s.service.RollSchoolSkill(s.ctx, &advancement.RollSchoolSkillInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.RollFailed, output.Entry.Status)
		_, hasSkill := char.SkillLevels[drakar.SkillAnimism]
		s.False(hasSkill)
	})

	s.Run("manual always learns", func() {
		session, char := newSchoolRoll()
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectCharacterSave()
		s.expectSessionSave()

		output, err := s.service.RollSchoolSkill(s.ctx, &advancement.RollSchoolSkillInput{
			SessionID: session.ID,
			Manual:    true,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.RollSucceeded, output.Entry.Status)
	})

	s.Run("a first school also sets the affiliation", func() {
		session, char := newSchoolRoll()
		char.MagicSchoolID = ""
		char.SkillLevels = map[string]int32{}
		char.TrainedSkills = nil
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectCharacterSave()
		s.expectSessionSave()

		_, err := s.service.RollSchoolSkill(s.ctx, &advancement.RollSchoolSkillInput{
			SessionID: session.ID,
			Manual:    true,
		})
		s.Require().NoError(err)
		s.Equal("school_animism", char.MagicSchoolID)
	})
}
