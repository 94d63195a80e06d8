package catalog

import (
	"context"
	"sync"

	"github.com/duskmantle/advancement-api/internal/entities/drakar"
	"github.com/duskmantle/advancement-api/internal/errors"
)

// InMemoryRepository implements Repository over static in-process data
type InMemoryRepository struct {
	mu        sync.RWMutex
	abilities []drakar.AbilityDefinition
	spells    []drakar.SpellDefinition
	schools   []drakar.SchoolDefinition
}

// InMemoryConfig seeds the in-memory catalog. Empty slices fall back to the
// bundled default dataset.
type InMemoryConfig struct {
	Abilities []drakar.AbilityDefinition
	Spells    []drakar.SpellDefinition
	Schools   []drakar.SchoolDefinition
}

// NewInMemory creates a new in-memory catalog repository
func NewInMemory(cfg *InMemoryConfig) *InMemoryRepository {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}

	abilities := cfg.Abilities
	if abilities == nil {
		abilities = DefaultAbilities()
	}
	spells := cfg.Spells
	if spells == nil {
		spells = DefaultSpells()
	}
	schools := cfg.Schools
	if schools == nil {
		schools = DefaultSchools()
	}

	return &InMemoryRepository{
		abilities: abilities,
		spells:    spells,
		schools:   schools,
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// ListAbilities returns every ability definition
func (r *InMemoryRepository) ListAbilities(
	_ context.Context,
	_ ListAbilitiesInput,
) (*ListAbilitiesOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Copies keep callers from mutating the shared catalog
	abilities := make([]drakar.AbilityDefinition, len(r.abilities))
	copy(abilities, r.abilities)

	return &ListAbilitiesOutput{Abilities: abilities}, nil
}

// ListSpells returns spell definitions. With a SchoolID set it returns that
// school's list plus general magic; otherwise everything.
func (r *InMemoryRepository) ListSpells(
	_ context.Context,
	input ListSpellsInput,
) (*ListSpellsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spells := make([]drakar.SpellDefinition, 0, len(r.spells))
	for _, spell := range r.spells {
		if input.SchoolID != "" && spell.SchoolID != "" && spell.SchoolID != input.SchoolID {
			continue
		}
		spells = append(spells, spell)
	}

	return &ListSpellsOutput{Spells: spells}, nil
}

// ListSchools returns every school definition
func (r *InMemoryRepository) ListSchools(
	_ context.Context,
	_ ListSchoolsInput,
) (*ListSchoolsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schools := make([]drakar.SchoolDefinition, len(r.schools))
	copy(schools, r.schools)

	return &ListSchoolsOutput{Schools: schools}, nil
}

// GetSchool returns one school by ID
func (r *InMemoryRepository) GetSchool(
	_ context.Context,
	input GetSchoolInput,
) (*GetSchoolOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("school ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, school := range r.schools {
		if school.ID == input.ID {
			found := school
			return &GetSchoolOutput{School: &found}, nil
		}
	}

	return nil, errors.NotFoundf("school %s not found", input.ID)
}
