// Package catalog provides read-only access to the ability, spell, and
// school catalogs. Catalog data is immutable for the lifetime of a session
// and may be cached indefinitely by callers.
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/duskmantle/advancement-api/internal/repositories/catalog Repository

import (
	"context"

	"github.com/duskmantle/advancement-api/internal/entities/drakar"
)

// Repository defines read-only catalog lookups
type Repository interface {
	// ListAbilities returns every heroic ability definition
	ListAbilities(ctx context.Context, input ListAbilitiesInput) (*ListAbilitiesOutput, error)

	// ListSpells returns spell definitions, optionally filtered by school
	ListSpells(ctx context.Context, input ListSpellsInput) (*ListSpellsOutput, error)

	// ListSchools returns every magic school definition
	ListSchools(ctx context.Context, input ListSchoolsInput) (*ListSchoolsOutput, error)

	// GetSchool returns one school by ID
	// Returns errors.NotFound for unknown IDs
	GetSchool(ctx context.Context, input GetSchoolInput) (*GetSchoolOutput, error)
}

// ListAbilitiesInput defines the input for listing abilities
type ListAbilitiesInput struct{}

// ListAbilitiesOutput defines the output for listing abilities
type ListAbilitiesOutput struct {
	Abilities []drakar.AbilityDefinition
}

// ListSpellsInput defines the input for listing spells.
// SchoolID filters to one school's list plus general magic when set.
type ListSpellsInput struct {
	SchoolID string
}

// ListSpellsOutput defines the output for listing spells
type ListSpellsOutput struct {
	Spells []drakar.SpellDefinition
}

// ListSchoolsInput defines the input for listing schools
type ListSchoolsInput struct{}

// ListSchoolsOutput defines the output for listing schools
type ListSchoolsOutput struct {
	Schools []drakar.SchoolDefinition
}

// GetSchoolInput defines the input for getting a school
type GetSchoolInput struct {
	ID string
}

// GetSchoolOutput defines the output for getting a school
type GetSchoolOutput struct {
	School *drakar.SchoolDefinition
}
