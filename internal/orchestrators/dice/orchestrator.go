// Package dice implements the dice orchestrator for advancement rolls
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/duskmantle/advancement-api/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/duskmantle/advancement-api/internal/errors"
)

// Regex for parsing simple dice notation like "2d6", "1d20", "3d8"
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)

// Service defines the interface for dice operations
type Service interface {
	// RollDice rolls simple dice notation like "2d6"
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// RollD20 draws a single d20, the die every advancement roll uses
	RollD20(ctx context.Context, input *RollD20Input) (*RollD20Output, error)
}

type orchestrator struct{}

// NewOrchestrator creates a new dice orchestrator
func NewOrchestrator() Service {
	return &orchestrator{}
}

var _ Service = (*orchestrator)(nil)

// RollDice rolls the given notation and returns the total plus individual dice
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	count, size, err := parseDiceNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", input.Notation)
	}

	total := roll.GetValue()
	individual := parseIndividualDice(roll.GetDescription())

	slog.InfoContext(ctx, "Rolled dice",
		"notation", input.Notation,
		"description", input.Description,
		"total", total,
	)

	return &RollDiceOutput{
		Total: int32(total),
		Dice:  individual,
	}, nil
}

// RollD20 draws a single d20
func (o *orchestrator) RollD20(ctx context.Context, input *RollD20Input) (*RollD20Output, error) {
	if input == nil {
		input = &RollD20Input{}
	}

	roll, err := dice.NewRoll(1, 20)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll d20")
	}

	value := roll.GetValue()

	slog.InfoContext(ctx, "Rolled d20",
		"description", input.Description,
		"value", value,
	)

	return &RollD20Output{Value: int32(value)}, nil
}

// parseDiceNotation parses notation like "2d6" and returns count and size
func parseDiceNotation(notation string) (count, size int, err error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if len(matches) != 3 {
		return 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if count <= 0 || size <= 0 {
		return 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	return count, size, nil
}

// parseIndividualDice extracts per-die values from a toolkit roll description.
// Description format: "+2d6[3,4]=7". The toolkit doesn't expose individual
// dice directly, so we pull them out of the description.
func parseIndividualDice(description string) []int32 {
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start < 0 || end <= start {
		return nil
	}

	var values []int32
	for _, ds := range strings.Split(description[start+1:end], ",") {
		if d, err := strconv.Atoi(strings.TrimSpace(ds)); err == nil {
			values = append(values, int32(d))
		}
	}
	return values
}
