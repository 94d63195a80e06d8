package advancement_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/duskmantle/advancement-api/internal/engine/ruleset"
	"github.com/duskmantle/advancement-api/internal/entities/drakar"
	"github.com/duskmantle/advancement-api/internal/errors"
	advancement "github.com/duskmantle/advancement-api/internal/orchestrators/advancement"
	"github.com/duskmantle/advancement-api/internal/orchestrators/dice"
	dicemock "github.com/duskmantle/advancement-api/internal/orchestrators/dice/mock"
	"github.com/duskmantle/advancement-api/internal/pkg/idgen"
	advancementsession "github.com/duskmantle/advancement-api/internal/repositories/advancement_session"
	advancementsessionmock "github.com/duskmantle/advancement-api/internal/repositories/advancement_session/mock"
	"github.com/duskmantle/advancement-api/internal/repositories/catalog"
	characterrepo "github.com/duskmantle/advancement-api/internal/repositories/character"
	charactermock "github.com/duskmantle/advancement-api/internal/repositories/character/mock"
	"github.com/duskmantle/advancement-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCharRepo    *charactermock.MockRepository
	mockSessionRepo *advancementsessionmock.MockRepository
	mockDice        *dicemock.MockService
	service         advancement.Service
	ctx             context.Context
	seq             int
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = charactermock.NewMockRepository(s.ctrl)
	s.mockSessionRepo = advancementsessionmock.NewMockRepository(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)

	service, err := advancement.NewOrchestrator(&advancement.Config{
		CharacterRepo: s.mockCharRepo,
		SessionRepo:   s.mockSessionRepo,
		CatalogRepo:   catalog.NewInMemory(nil),
		Engine:        ruleset.New(),
		DiceService:   s.mockDice,
		IDGenerator:   idgen.NewSequential("session"),
		EventBus:      events.NewBus(),
	})
	s.Require().NoError(err)
	s.service = service
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// newFixtures returns a session at the given step and its character, with
// IDs unique per call so mock expectations never collide across subtests.
func (s *OrchestratorTestSuite) newFixtures(
	step advancementsession.Step,
) (*advancementsession.Session, *drakar.CharacterData) {
	s.seq++
	char := testutils.CreateTestCharacter("player_1")
	char.ID = fmt.Sprintf("char_%d", s.seq)

	session := &advancementsession.Session{
		ID:          fmt.Sprintf("session_%d", s.seq),
		CharacterID: char.ID,
		Mode:        advancementsession.ModeEndSession,
		Step:        step,
	}
	return session, char
}

func (s *OrchestratorTestSuite) expectCharacter(char *drakar.CharacterData) {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: char.ID}).
		Return(&characterrepo.GetOutput{CharacterData: char}, nil).
		AnyTimes()
}

func (s *OrchestratorTestSuite) expectSession(session *advancementsession.Session) {
	s.mockSessionRepo.EXPECT().
		Get(s.ctx, advancementsession.GetInput{ID: session.ID}).
		Return(&advancementsession.GetOutput{Session: session}, nil).
		AnyTimes()
}

func (s *OrchestratorTestSuite) expectSessionSave() {
	s.mockSessionRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil)
}

func (s *OrchestratorTestSuite) expectCharacterSave() {
	s.mockCharRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			return &characterrepo.UpdateOutput{CharacterData: input.CharacterData}, nil
		})
}

func (s *OrchestratorTestSuite) TestStartSession() {
	s.Run("end-of-session starts at mark entry", func() {
		_, char := s.newFixtures(advancementsession.StepInitial)
		s.expectCharacter(char)
		s.mockSessionRepo.EXPECT().
			Create(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input advancementsession.CreateInput) (*advancementsession.CreateOutput, error) {
				return &advancementsession.CreateOutput{Session: input.Session}, nil
			})

		output, err := s.service.StartSession(s.ctx, &advancement.StartSessionInput{
			CharacterID: char.ID,
			Mode:        advancementsession.ModeEndSession,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.StepEnterMarks, output.Session.Step)
		s.Equal(char.ID, output.Session.CharacterID)
	})

	s.Run("study starts at study-type choice", func() {
		_, char := s.newFixtures(advancementsession.StepInitial)
		s.expectCharacter(char)
		s.mockSessionRepo.EXPECT().
			Create(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input advancementsession.CreateInput) (*advancementsession.CreateOutput, error) {
				return &advancementsession.CreateOutput{Session: input.Session}, nil
			})

		output, err := s.service.StartSession(s.ctx, &advancement.StartSessionInput{
			CharacterID: char.ID,
			Mode:        advancementsession.ModeStudy,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.StepSelectStudyType, output.Session.Step)
	})

	s.Run("unknown mode is rejected", func() {
		_, char := s.newFixtures(advancementsession.StepInitial)
		s.expectCharacter(char)

		_, err := s.service.StartSession(s.ctx, &advancement.StartSessionInput{
			CharacterID: char.ID,
			Mode:        "weekend",
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestSubmitMarks() {
	s.Run("zero marks is rejected before any lookup", func() {
		_, err := s.service.SubmitMarks(s.ctx, &advancement.SubmitMarksInput{
			SessionID: "session_x",
			Marks:     0,
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("wrong step leaves state untouched", func() {
		session, _ := s.newFixtures(advancementsession.StepSelectSkills)
		s.expectSession(session)

		_, err := s.service.SubmitMarks(s.ctx, &advancement.SubmitMarksInput{
			SessionID: session.ID,
			Marks:     2,
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
		s.Equal(advancementsession.StepSelectSkills, session.Step)
	})

	s.Run("pre-populates selection from marked skills", func() {
		session, char := s.newFixtures(advancementsession.StepEnterMarks)
		char.MarkedSkills = []string{"Swords", "Old Lore", "Evade", "Sneaking"}
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectSessionSave()

		output, err := s.service.SubmitMarks(s.ctx, &advancement.SubmitMarksInput{
			SessionID: session.ID,
			Marks:     2,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.StepSelectSkills, output.Session.Step)
		// The unmapped mark is skipped, the next valid one takes its slot
		s.Equal([]string{"Swords", "Evade"}, output.Session.SelectedSkills)
	})
}

func (s *OrchestratorTestSuite) TestToggleSkill() {
	s.Run("adds and removes a skill", func() {
		session, _ := s.newFixtures(advancementsession.StepSelectSkills)
		session.Marks = 2
		session.SelectedSkills = []string{"Swords"}
		s.expectSession(session)
		s.expectSessionSave()

		output, err := s.service.ToggleSkill(s.ctx, &advancement.ToggleSkillInput{
			SessionID: session.ID,
			Skill:     "evade",
		})
		s.Require().NoError(err)
		s.True(output.Selected)
		s.Equal([]string{"Swords", "Evade"}, output.Session.SelectedSkills)

		s.expectSessionSave()
		output, err = s.service.ToggleSkill(s.ctx, &advancement.ToggleSkillInput{
			SessionID: session.ID,
			Skill:     "Swords",
		})
		s.Require().NoError(err)
		s.False(output.Selected)
		s.Equal([]string{"Evade"}, output.Session.SelectedSkills)
	})

	s.Run("selection beyond the mark count is rejected", func() {
		session, _ := s.newFixtures(advancementsession.StepSelectSkills)
		session.Marks = 1
		session.SelectedSkills = []string{"Swords"}
		s.expectSession(session)

		_, err := s.service.ToggleSkill(s.ctx, &advancement.ToggleSkillInput{
			SessionID: session.ID,
			Skill:     "Evade",
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
		s.Equal([]string{"Swords"}, session.SelectedSkills)
	})

	s.Run("unknown skill is rejected", func() {
		_, err := s.service.ToggleSkill(s.ctx, &advancement.ToggleSkillInput{
			SessionID: "session_x",
			Skill:     "Basket Weaving",
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestConfirmSelection() {
	s.Run("selection must match marks exactly", func() {
		session, _ := s.newFixtures(advancementsession.StepSelectSkills)
		session.Marks = 3
		session.SelectedSkills = []string{"Swords", "Evade"}
		s.expectSession(session)

		_, err := s.service.ConfirmSelection(s.ctx, &advancement.ConfirmSelectionInput{
			SessionID: session.ID,
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
		s.Equal(advancementsession.StepSelectSkills, session.Step)
		s.Empty(session.Queue)
	})

	s.Run("builds the queue in selection order", func() {
		session, char := s.newFixtures(advancementsession.StepSelectSkills)
		session.Marks = 2
		session.SelectedSkills = []string{"Swords", "Evade"}
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectSessionSave()

		output, err := s.service.ConfirmSelection(s.ctx, &advancement.ConfirmSelectionInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.StepRollSkills, output.Session.Step)
		s.Require().Len(output.Session.Queue, 2)
		s.Equal("Swords", output.Session.Queue[0].Skill)
		s.Equal(advancementsession.RollNotStarted, output.Session.Queue[0].Status)
		s.Equal(int32(0), output.Session.Cursor)
	})

	s.Run("skills at the cap enter pre-skipped", func() {
		session, char := s.newFixtures(advancementsession.StepSelectSkills)
		session.Marks = 2
		session.SelectedSkills = []string{"Swords", "Evade"}
		char.SkillLevels["Swords"] = drakar.MaxSkillLevel
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectSessionSave()

		output, err := s.service.ConfirmSelection(s.ctx, &advancement.ConfirmSelectionInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.RollSkipped, output.Session.Queue[0].Status)
		s.Equal("already at maximum", output.Session.Queue[0].Outcome)
		s.Equal(advancementsession.RollNotStarted, output.Session.Queue[1].Status)
	})
}

func (s *OrchestratorTestSuite) newRollFixtures() (*advancementsession.Session, *drakar.CharacterData) {
	session, char := s.newFixtures(advancementsession.StepRollSkills)
	session.Marks = 2
	session.SelectedSkills = []string{"Swords", "Evade"}
	session.Queue = []advancementsession.RollEntry{
		{Skill: "Swords", Status: advancementsession.RollNotStarted},
		{Skill: "Evade", Status: advancementsession.RollNotStarted},
	}
	return session, char
}

func (s *OrchestratorTestSuite) TestRollCurrentSkill() {
	s.Run("roll above the level advances the skill", func() {
		session, char := s.newRollFixtures()
		s.expectSession(session)
		s.expectCharacter(char)
		s.mockDice.EXPECT().
			RollD20(s.ctx, gomock.Any()).
			Return(&dice.RollD20Output{Value: 15}, nil)
		s.expectCharacterSave()
		s.expectSessionSave()

		output, err := s.service.RollCurrentSkill(s.ctx, &advancement.RollCurrentSkillInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.RollSucceeded, output.Entry.Status)
		s.Equal(int32(13), output.Entry.NewLevel)
		s.Equal(int32(13), char.SkillLevels["Swords"])
	})

	s.Run("roll equal to the level fails", func() {
		session, char := s.newRollFixtures()
		s.expectSession(session)
		s.expectCharacter(char)
		s.mockDice.EXPECT().
			RollD20(s.ctx, gomock.Any()).
			Return(&dice.RollD20Output{Value: 12}, nil)
		s.expectSessionSave()

		output, err := s.service.RollCurrentSkill(s.ctx, &advancement.RollCurrentSkillInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.RollFailed, output.Entry.Status)
		s.Equal(int32(12), char.SkillLevels["Swords"])
	})

	s.Run("manual advance skips the roll", func() {
		session, char := s.newRollFixtures()
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectCharacterSave()
		s.expectSessionSave()

		output, err := s.service.RollCurrentSkill(s.ctx, &advancement.RollCurrentSkillInput{
			SessionID: session.ID,
			Manual:    true,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.RollSucceeded, output.Entry.Status)
		s.Equal(int32(0), output.Entry.Roll)
		s.Equal(int32(13), output.Entry.NewLevel)
	})

	s.Run("processed entry cannot be rolled again", func() {
		session, _ := s.newRollFixtures()
		session.Queue[0].Status = advancementsession.RollFailed
		s.expectSession(session)

		_, err := s.service.RollCurrentSkill(s.ctx, &advancement.RollCurrentSkillInput{
			SessionID: session.ID,
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("reaching the cap arms the ability grant", func() {
		session, char := s.newRollFixtures()
		char.SkillLevels["Swords"] = 17
		s.expectSession(session)
		s.expectCharacter(char)
		s.mockDice.EXPECT().
			RollD20(s.ctx, gomock.Any()).
			Return(&dice.RollD20Output{Value: 20}, nil)
		s.expectCharacterSave()
		s.expectSessionSave()

		output, err := s.service.RollCurrentSkill(s.ctx, &advancement.RollCurrentSkillInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)
		s.True(output.Entry.ReachedCap)
		s.Equal(int32(drakar.MaxSkillLevel), output.Entry.NewLevel)
		s.True(output.Session.PendingAbility)
	})
}

func (s *OrchestratorTestSuite) TestAdvanceToNextSkill() {
	s.Run("unprocessed entry blocks the advance", func() {
		session, _ := s.newFixtures(advancementsession.StepRollSkills)
		session.Queue = []advancementsession.RollEntry{
			{Skill: "Swords", Status: advancementsession.RollNotStarted},
		}
		s.expectSession(session)

		_, err := s.service.AdvanceToNextSkill(s.ctx, &advancement.AdvanceToNextSkillInput{
			SessionID: session.ID,
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("moves to the next queued skill", func() {
		session, _ := s.newFixtures(advancementsession.StepRollSkills)
		session.Queue = []advancementsession.RollEntry{
			{Skill: "Swords", Status: advancementsession.RollFailed},
			{Skill: "Evade", Status: advancementsession.RollNotStarted},
		}
		s.expectSession(session)
		s.expectSessionSave()

		output, err := s.service.AdvanceToNextSkill(s.ctx, &advancement.AdvanceToNextSkillInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)
		s.Equal(int32(1), output.Session.Cursor)
		s.Equal(advancementsession.StepRollSkills, output.Session.Step)
	})

	s.Run("finishes when the queue is exhausted", func() {
		session, _ := s.newFixtures(advancementsession.StepRollSkills)
		session.Queue = []advancementsession.RollEntry{
			{Skill: "Swords", Status: advancementsession.RollSucceeded},
		}
		s.expectSession(session)
		s.expectSessionSave()

		output, err := s.service.AdvanceToNextSkill(s.ctx, &advancement.AdvanceToNextSkillInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.StepFinished, output.Session.Step)
	})

	s.Run("detours into ability selection after a cap", func() {
		session, _ := s.newFixtures(advancementsession.StepRollSkills)
		session.PendingAbility = true
		session.Queue = []advancementsession.RollEntry{
			{Skill: "Swords", Status: advancementsession.RollSucceeded, ReachedCap: true},
			{Skill: "Evade", Status: advancementsession.RollNotStarted},
		}
		s.expectSession(session)
		s.expectSessionSave()

		output, err := s.service.AdvanceToNextSkill(s.ctx, &advancement.AdvanceToNextSkillInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.StepSelectAbility, output.Session.Step)
		s.Equal(int32(0), output.Session.Cursor)
	})
}

func (s *OrchestratorTestSuite) TestListEligibleAbilities() {
	s.Run("filters by kin, profession, requirements, and known abilities", func() {
		session, char := s.newFixtures(advancementsession.StepSelectAbility)
		session.PendingAbility = true
		s.expectSession(session)
		s.expectCharacter(char)

		output, err := s.service.ListEligibleAbilities(s.ctx, &advancement.ListEligibleAbilitiesInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)

		names := make([]string, 0, len(output.Abilities))
		for _, a := range output.Abilities {
			names = append(names, a.Name)
		}
		// Human Warrior, STR 14, Swords 12, WIL 9
		s.Contains(names, drakar.AbilityMagicTalent)
		s.Contains(names, "Veteran")
		s.Contains(names, "Massive Blow")
		s.NotContains(names, "Battle Fury", "WIL 10 requirement unmet")
		s.NotContains(names, "Pathfinder", "Elf only")
		s.NotContains(names, "Guild Connections", "Merchant only")
	})

	s.Run("wrong step is rejected", func() {
		session, _ := s.newFixtures(advancementsession.StepRollSkills)
		s.expectSession(session)

		_, err := s.service.ListEligibleAbilities(s.ctx, &advancement.ListEligibleAbilitiesInput{
			SessionID: session.ID,
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *OrchestratorTestSuite) newAbilityFixtures() (*advancementsession.Session, *drakar.CharacterData) {
	session, char := s.newFixtures(advancementsession.StepSelectAbility)
	session.PendingAbility = true
	session.Queue = []advancementsession.RollEntry{
		{Skill: "Swords", Status: advancementsession.RollSucceeded, ReachedCap: true},
		{Skill: "Evade", Status: advancementsession.RollNotStarted},
	}
	return session, char
}

func (s *OrchestratorTestSuite) TestSelectAbility() {
	s.Run("grants the ability and returns to the queue", func() {
		session, char := s.newAbilityFixtures()
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectCharacterSave()
		s.expectSessionSave()

		output, err := s.service.SelectAbility(s.ctx, &advancement.SelectAbilityInput{
			SessionID: session.ID,
			Ability:   "Veteran",
		})
		s.Require().NoError(err)
		s.True(output.Character.HasAbility("Veteran"))
		s.False(output.Session.PendingAbility)
		s.Equal(int32(1), output.Session.Cursor)
		s.Equal(advancementsession.StepRollSkills, output.Session.Step)
	})

	s.Run("finishes when the queue is exhausted", func() {
		session, char := s.newAbilityFixtures()
		session.Queue = session.Queue[:1]
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectCharacterSave()
		s.expectSessionSave()

		output, err := s.service.SelectAbility(s.ctx, &advancement.SelectAbilityInput{
			SessionID: session.ID,
			Ability:   "Massive Blow",
		})
		s.Require().NoError(err)
		s.Equal(advancementsession.StepFinished, output.Session.Step)
	})

	s.Run("ineligible ability is rejected", func() {
		session, char := s.newAbilityFixtures()
		s.expectSession(session)
		s.expectCharacter(char)

		_, err := s.service.SelectAbility(s.ctx, &advancement.SelectAbilityInput{
			SessionID: session.ID,
			Ability:   "Battle Fury",
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Empty(char.Abilities)
	})
}

func (s *OrchestratorTestSuite) TestFinishSession() {
	s.Run("completed end-of-session run clears marks", func() {
		session, char := s.newFixtures(advancementsession.StepFinished)
		char.MarkedSkills = []string{"Swords", "Evade"}
		s.expectSession(session)
		s.expectCharacter(char)
		s.expectCharacterSave()
		s.mockSessionRepo.EXPECT().
			Delete(s.ctx, advancementsession.DeleteInput{ID: session.ID}).
			Return(&advancementsession.DeleteOutput{}, nil)

		output, err := s.service.FinishSession(s.ctx, &advancement.FinishSessionInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)
		s.Empty(output.Character.MarkedSkills)
	})

	s.Run("abandoning mid-flow keeps marks", func() {
		session, char := s.newFixtures(advancementsession.StepSelectSkills)
		char.MarkedSkills = []string{"Swords"}
		s.expectSession(session)
		s.expectCharacter(char)
		s.mockSessionRepo.EXPECT().
			Delete(s.ctx, advancementsession.DeleteInput{ID: session.ID}).
			Return(&advancementsession.DeleteOutput{}, nil)

		output, err := s.service.FinishSession(s.ctx, &advancement.FinishSessionInput{
			SessionID: session.ID,
		})
		s.Require().NoError(err)
		s.Equal([]string{"Swords"}, output.Character.MarkedSkills)
	})
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
