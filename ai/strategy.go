package ai

import (
	"fmt"
	"sort"

	"parade-game/game"
)

// Strategy is one difficulty tier of computer play. Implementations only
// read game state — every evaluation runs against Parade.Simulate or local
// copies — and return cards or indices; actual hand mutation stays with the
// turn orchestration layer.
type Strategy interface {
	// ChooseCard picks a card to play from hand. The hand must be non-empty
	// and is left unmodified by the call.
	ChooseCard(parade *game.Parade, hand []*game.Card) *game.Card

	// ChooseDiscards picks two distinct indices into self's hand to discard
	// at the end of the game, given every player's collected pile.
	ChooseDiscards(self *game.Player, players []*game.Player) (int, int)
}

var registry = make(map[string]func() Strategy)

// Register adds a strategy constructor under a difficulty name. Called from
// init in each strategy file.
func Register(difficulty string, factory func() Strategy) {
	registry[difficulty] = factory
}

// New returns a fresh strategy for the given difficulty name.
func New(difficulty string) (Strategy, error) {
	factory, ok := registry[difficulty]
	if !ok {
		return nil, fmt.Errorf("unknown difficulty: %q", difficulty)
	}
	return factory(), nil
}

// Difficulties returns the registered difficulty names, sorted.
func Difficulties() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
