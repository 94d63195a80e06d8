package dice

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	// Notation is simple dice notation like "2d6" or "1d20"
	Notation string

	// Description labels the roll in logs
	Description string
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	// Total of all dice
	Total int32

	// Dice holds the individual die results
	Dice []int32
}

// RollD20Input defines the request for a single d20 draw
type RollD20Input struct {
	// Description labels the roll in logs
	Description string
}

// RollD20Output defines the response for a single d20 draw
type RollD20Output struct {
	Value int32
}
