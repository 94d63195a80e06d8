package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/duskmantle/advancement-api/internal/config"
	"github.com/duskmantle/advancement-api/internal/engine/ruleset"
	"github.com/duskmantle/advancement-api/internal/orchestrators/advancement"
	"github.com/duskmantle/advancement-api/internal/orchestrators/character"
	"github.com/duskmantle/advancement-api/internal/orchestrators/dice"
	"github.com/duskmantle/advancement-api/internal/pkg/clock"
	"github.com/duskmantle/advancement-api/internal/pkg/idgen"
	"github.com/duskmantle/advancement-api/internal/redis"
	advancementsession "github.com/duskmantle/advancement-api/internal/repositories/advancement_session"
	"github.com/duskmantle/advancement-api/internal/repositories/catalog"
	characterrepo "github.com/duskmantle/advancement-api/internal/repositories/character"
)

// app holds the wired service graph for one CLI invocation
type app struct {
	characterService   character.Service
	advancementService advancement.Service
}

// newApp loads configuration and wires repositories, orchestrators, and the
// event bus. The returned cleanup closes the Redis connection.
func newApp() (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = client.Close()
	}

	charRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	sessionRepo, err := advancementsession.NewRedisRepository(&advancementsession.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	rules := ruleset.New()
	diceService := dice.NewOrchestrator()

	characterService, err := character.NewOrchestrator(&character.Config{
		CharacterRepo: charRepo,
		Engine:        rules,
		IDGenerator:   idgen.NewUUID("char"),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	advancementService, err := advancement.NewOrchestrator(&advancement.Config{
		CharacterRepo: charRepo,
		SessionRepo:   sessionRepo,
		CatalogRepo:   catalog.NewInMemory(nil),
		Engine:        rules,
		DiceService:   diceService,
		IDGenerator:   idgen.NewUUID("session"),
		EventBus:      newEventBus(),
		SessionTTL:    cfg.SessionTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return &app{
		characterService:   characterService,
		advancementService: advancementService,
	}, cleanup, nil
}

// newEventBus creates the game event bus with logging subscribers for every
// advancement topic.
func newEventBus() events.EventBus {
	bus := events.NewBus()
	for _, topic := range []string{
		advancement.EventSkillAdvanced,
		advancement.EventAbilityGranted,
		advancement.EventSpellLearned,
		advancement.EventSchoolLearned,
	} {
		topic := topic
		bus.SubscribeFunc(topic, 0, func(ctx context.Context, event events.Event) error {
			args := []any{"topic", topic}
			if source := event.Source(); source != nil {
				args = append(args, "character_id", source.GetID())
			}
			slog.DebugContext(ctx, "Game event", args...)
			return nil
		})
	}
	return bus
}
