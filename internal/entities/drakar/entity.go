package drakar

import "github.com/KirkDiggler/rpg-toolkit/core"

// CharacterEntity wraps CharacterData to implement core.Entity for the
// event bus.
type CharacterEntity struct {
	*CharacterData
}

var _ core.Entity = (*CharacterEntity)(nil)

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for the event bus
func (c *CharacterEntity) GetType() string {
	return "character"
}

// WrapCharacter converts CharacterData to a CharacterEntity
func WrapCharacter(data *CharacterData) *CharacterEntity {
	return &CharacterEntity{CharacterData: data}
}
