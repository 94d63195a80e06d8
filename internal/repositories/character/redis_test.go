package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/duskmantle/advancement-api/internal/entities/drakar"
	"github.com/duskmantle/advancement-api/internal/errors"
	"github.com/duskmantle/advancement-api/internal/pkg/clock"
	character "github.com/duskmantle/advancement-api/internal/repositories/character"
	"github.com/duskmantle/advancement-api/internal/testutils"
)

const (
	testCharID   = "char_123"
	testPlayerID = "player_456"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    character.Repository
	cleanup func()
	ctx     context.Context
	now     time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testCharacter() *drakar.CharacterData {
	char := testutils.CreateTestCharacter(testPlayerID)
	char.ID = testCharID
	return char
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	s.Run("successful create stamps timestamps", func() {
		output, err := s.repo.Create(s.ctx, character.CreateInput{
			CharacterData: s.testCharacter(),
		})
		s.Require().NoError(err)
		s.Equal(s.now.Unix(), output.CharacterData.CreatedAt)
		s.Equal(s.now.Unix(), output.CharacterData.UpdatedAt)
	})

	s.Run("duplicate ID returns AlreadyExists", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{
			CharacterData: s.testCharacter(),
		})
		s.Require().Error(err)
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("nil character returns InvalidArgument", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestGet() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{CharacterData: s.testCharacter()})
	s.Require().NoError(err)

	s.Run("round-trips the character", func() {
		output, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
		s.Require().NoError(err)
		s.Equal(testCharID, output.CharacterData.ID)
		s.Equal(testutils.TestCharacterName, output.CharacterData.Name)
		s.Equal(int32(12), output.CharacterData.SkillLevels["Swords"])
		s.True(output.CharacterData.IsTrained("Evade"))
	})

	s.Run("unknown ID returns NotFound", func() {
		_, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_missing"})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{CharacterData: s.testCharacter()})
	s.Require().NoError(err)

	s.Run("persists skill level changes and keeps CreatedAt", func() {
		char := s.testCharacter()
		char.SkillLevels["Swords"] = 13

		output, err := s.repo.Update(s.ctx, character.UpdateInput{CharacterData: char})
		s.Require().NoError(err)
		s.Equal(s.now.Unix(), output.CharacterData.CreatedAt)

		got, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
		s.Require().NoError(err)
		s.Equal(int32(13), got.CharacterData.SkillLevels["Swords"])
	})

	s.Run("moves character between player indexes", func() {
		char := s.testCharacter()
		char.PlayerID = "player_999"

		_, err := s.repo.Update(s.ctx, character.UpdateInput{CharacterData: char})
		s.Require().NoError(err)

		oldList, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
		s.Require().NoError(err)
		s.Empty(oldList.Characters)

		newList, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player_999"})
		s.Require().NoError(err)
		s.Len(newList.Characters, 1)
	})

	s.Run("unknown ID returns NotFound", func() {
		char := s.testCharacter()
		char.ID = "char_missing"
		_, err := s.repo.Update(s.ctx, character.UpdateInput{CharacterData: char})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{CharacterData: s.testCharacter()})
	s.Require().NoError(err)

	s.Run("removes the character and its index entry", func() {
		_, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: testCharID})
		s.Require().NoError(err)

		_, err = s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
		s.True(errors.IsNotFound(err))

		list, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
		s.Require().NoError(err)
		s.Empty(list.Characters)
	})

	s.Run("unknown ID returns NotFound", func() {
		_, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_missing"})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	first := s.testCharacter()
	second := s.testCharacter()
	second.ID = "char_456"
	second.Name = "Second"

	_, err := s.repo.Create(s.ctx, character.CreateInput{CharacterData: first})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, character.CreateInput{CharacterData: second})
	s.Require().NoError(err)

	s.Run("returns all characters for the player", func() {
		output, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
		s.Require().NoError(err)
		s.Len(output.Characters, 2)
	})

	s.Run("unknown player returns empty list", func() {
		output, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player_none"})
		s.Require().NoError(err)
		s.Empty(output.Characters)
	})

	s.Run("empty player ID returns InvalidArgument", func() {
		_, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
