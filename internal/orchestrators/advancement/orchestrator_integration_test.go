package advancement_test

import (
	"context"
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
	"github.com/duskmantle/advancement-api/internal/pkg/clock"
	"github.com/duskmantle/advancement-api/internal/pkg/idgen"
	advancementsession "github.com/duskmantle/advancement-api/internal/repositories/advancement_session"
	"github.com/duskmantle/advancement-api/internal/repositories/catalog"
	characterrepo "github.com/duskmantle/advancement-api/internal/repositories/character"
	"github.com/duskmantle/advancement-api/internal/testutils"
)

// IntegrationTestSuite drives whole wizard flows through real Redis-backed
// repositories; only the dice are scripted.
type IntegrationTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockDice *dicemock.MockService
	charRepo characterrepo.Repository
	service  advancement.Service
	cleanup  func()
	ctx      context.Context
}

func (s *IntegrationTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDice = dicemock.NewMockService(s.ctrl)

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	charRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.charRepo = charRepo

	sessionRepo, err := advancementsession.NewRedisRepository(&advancementsession.Config{
		Client: client,
		Clock:  clock.New(),
	})
	s.Require().NoError(err)

	service, err := advancement.NewOrchestrator(&advancement.Config{
		CharacterRepo: charRepo,
		SessionRepo:   sessionRepo,
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

func (s *IntegrationTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *IntegrationTestSuite) TestEndOfSessionFlow() {
	char := testutils.CreateTestCharacter("player_1")
	char.MarkedSkills = []string{"Swords"}
	_, err := s.charRepo.Create(s.ctx, characterrepo.CreateInput{CharacterData: char})
	s.Require().NoError(err)

	started, err := s.service.StartSession(s.ctx, &advancement.StartSessionInput{
		CharacterID: char.ID,
		Mode:        advancementsession.ModeEndSession,
	})
	s.Require().NoError(err)
	sessionID := started.Session.ID

	// Two marks: Swords pre-selected from play, Evade picked by hand
	marked, err := s.service.SubmitMarks(s.ctx, &advancement.SubmitMarksInput{
		SessionID: sessionID,
		Marks:     2,
	})
	s.Require().NoError(err)
	s.Equal([]string{"Swords"}, marked.Session.SelectedSkills)

	_, err = s.service.ToggleSkill(s.ctx, &advancement.ToggleSkillInput{
		SessionID: sessionID,
		Skill:     "Evade",
	})
	s.Require().NoError(err)

	confirmed, err := s.service.ConfirmSelection(s.ctx, &advancement.ConfirmSelectionInput{
		SessionID: sessionID,
	})
	s.Require().NoError(err)
	s.Require().Len(confirmed.Session.Queue, 2)

	// Swords 12: roll 17 advances to 13
	s.mockDice.EXPECT().RollD20(s.ctx, gomock.Any()).Return(&dice.RollD20Output{Value: 17}, nil)
	rolled, err := s.service.RollCurrentSkill(s.ctx, &advancement.RollCurrentSkillInput{
		SessionID: sessionID,
	})
	s.Require().NoError(err)
	s.Equal(int32(13), rolled.Entry.NewLevel)

	// The advancement is already durable mid-session
	stored, err := s.charRepo.Get(s.ctx, characterrepo.GetInput{ID: char.ID})
	s.Require().NoError(err)
	s.Equal(int32(13), stored.CharacterData.SkillLevels["Swords"])

	_, err = s.service.AdvanceToNextSkill(s.ctx, &advancement.AdvanceToNextSkillInput{
		SessionID: sessionID,
	})
	s.Require().NoError(err)

	// Evade trained, AGL 12: level 10, roll 10 fails
	s.mockDice.EXPECT().RollD20(s.ctx, gomock.Any()).Return(&dice.RollD20Output{Value: 10}, nil)
	rolled, err = s.service.RollCurrentSkill(s.ctx, &advancement.RollCurrentSkillInput{
		SessionID: sessionID,
	})
	s.Require().NoError(err)
	s.Equal(advancementsession.RollFailed, rolled.Entry.Status)

	advanced, err := s.service.AdvanceToNextSkill(s.ctx, &advancement.AdvanceToNextSkillInput{
		SessionID: sessionID,
	})
	s.Require().NoError(err)
	s.Equal(advancementsession.StepFinished, advanced.Session.Step)

	finished, err := s.service.FinishSession(s.ctx, &advancement.FinishSessionInput{
		SessionID: sessionID,
	})
	s.Require().NoError(err)
	s.Empty(finished.Character.MarkedSkills, "completed run clears the play-time marks")

	_, err = s.service.GetSession(s.ctx, &advancement.GetSessionInput{SessionID: sessionID})
	s.True(errors.IsNotFound(err), "session is deleted on finish")
}

func (s *IntegrationTestSuite) TestDerivedSchoolSkillRollFlow() {
	char := testutils.CreateTestCharacter("player_1")
	char.Attributes[drakar.AttributeWIL] = 12
	_, err := s.charRepo.Create(s.ctx, characterrepo.CreateInput{CharacterData: char})
	s.Require().NoError(err)

	started, err := s.service.StartSession(s.ctx, &advancement.StartSessionInput{
		CharacterID: char.ID,
		Mode:        advancementsession.ModeEndSession,
	})
	s.Require().NoError(err)
	sessionID := started.Session.ID

	_, err = s.service.SubmitMarks(s.ctx, &advancement.SubmitMarksInput{SessionID: sessionID, Marks: 2})
	s.Require().NoError(err)
	_, err = s.service.ToggleSkill(s.ctx, &advancement.ToggleSkillInput{SessionID: sessionID, Skill: "Mentalism"})
	s.Require().NoError(err)
	_, err = s.service.ToggleSkill(s.ctx, &advancement.ToggleSkillInput{SessionID: sessionID, Skill: "Bluffing"})
	s.Require().NoError(err)
	_, err = s.service.ConfirmSelection(s.ctx, &advancement.ConfirmSelectionInput{SessionID: sessionID})
	s.Require().NoError(err)

	// Untrained Mentalism derives base 5 from WIL 12; roll 18 advances to 6
	s.mockDice.EXPECT().RollD20(s.ctx, gomock.Any()).Return(&dice.RollD20Output{Value: 18}, nil)
	rolled, err := s.service.RollCurrentSkill(s.ctx, &advancement.RollCurrentSkillInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(int32(5), rolled.Entry.Target)
	s.Equal(int32(6), rolled.Entry.NewLevel)

	_, err = s.service.AdvanceToNextSkill(s.ctx, &advancement.AdvanceToNextSkillInput{SessionID: sessionID})
	s.Require().NoError(err)

	// Bluffing derives base 4 from CHA 8; roll 3 fails, level unchanged
	s.mockDice.EXPECT().RollD20(s.ctx, gomock.Any()).Return(&dice.RollD20Output{Value: 3}, nil)
	rolled, err = s.service.RollCurrentSkill(s.ctx, &advancement.RollCurrentSkillInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(advancementsession.RollFailed, rolled.Entry.Status)

	advanced, err := s.service.AdvanceToNextSkill(s.ctx, &advancement.AdvanceToNextSkillInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(advancementsession.StepFinished, advanced.Session.Step, "no skill reached the cap")

	stored, err := s.charRepo.Get(s.ctx, characterrepo.GetInput{ID: char.ID})
	s.Require().NoError(err)
	s.Equal(int32(6), stored.CharacterData.SkillLevels["Mentalism"])
	_, hasBluffing := stored.CharacterData.SkillLevels["Bluffing"]
	s.False(hasBluffing)
}

func (s *IntegrationTestSuite) TestCapDetourGrantsAbility() {
	char := testutils.CreateTestCharacter("player_1")
	char.SkillLevels["Swords"] = 17
	_, err := s.charRepo.Create(s.ctx, characterrepo.CreateInput{CharacterData: char})
	s.Require().NoError(err)

	started, err := s.service.StartSession(s.ctx, &advancement.StartSessionInput{
		CharacterID: char.ID,
		Mode:        advancementsession.ModeEndSession,
	})
	s.Require().NoError(err)
	sessionID := started.Session.ID

	_, err = s.service.SubmitMarks(s.ctx, &advancement.SubmitMarksInput{SessionID: sessionID, Marks: 1})
	s.Require().NoError(err)
	_, err = s.service.ToggleSkill(s.ctx, &advancement.ToggleSkillInput{SessionID: sessionID, Skill: "Swords"})
	s.Require().NoError(err)
	_, err = s.service.ConfirmSelection(s.ctx, &advancement.ConfirmSelectionInput{SessionID: sessionID})
	s.Require().NoError(err)

	s.mockDice.EXPECT().RollD20(s.ctx, gomock.Any()).Return(&dice.RollD20Output{Value: 18}, nil)
	rolled, err := s.service.RollCurrentSkill(s.ctx, &advancement.RollCurrentSkillInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.True(rolled.Entry.ReachedCap)

	advanced, err := s.service.AdvanceToNextSkill(s.ctx, &advancement.AdvanceToNextSkillInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(advancementsession.StepSelectAbility, advanced.Session.Step)

	listed, err := s.service.ListEligibleAbilities(s.ctx, &advancement.ListEligibleAbilitiesInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.NotEmpty(listed.Abilities)

	selected, err := s.service.SelectAbility(s.ctx, &advancement.SelectAbilityInput{
		SessionID: sessionID,
		Ability:   "Veteran",
	})
	s.Require().NoError(err)
	s.True(selected.Character.HasAbility("Veteran"))
	s.Equal(advancementsession.StepFinished, selected.Session.Step)
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
