package controller

import (
	"io"
	"testing"

	"parade-game/ai"
	"parade-game/config"
	"parade-game/game"
	"parade-game/view"
)

// silentPrompter satisfies Prompter for all-bot games where nothing human
// ever needs asking.
type silentPrompter struct{ t *testing.T }

func (p silentPrompter) CardIndex(action string, handSize int) (int, error) {
	p.t.Fatal("CardIndex must not be called in an all-bot game")
	return 0, nil
}

func (p silentPrompter) NextTurn() error { return nil }

func newBotGame(t *testing.T, difficulties ...string) (*Controller, *game.State) {
	t.Helper()

	var players []*game.Player
	brains := make(map[int]ai.Strategy)
	for i, difficulty := range difficulties {
		id := i + 1
		strategy, err := ai.New(difficulty)
		if err != nil {
			t.Fatalf("ai.New(%q): %v", difficulty, err)
		}
		players = append(players, game.NewPlayer(id, difficulty))
		brains[id] = strategy
	}

	state := game.NewState(players, config.Defaults())
	v := view.New(io.Discard, false)
	return New(state, v, silentPrompter{t}, brains), state
}

func TestRunPlaysFullGame(t *testing.T) {
	for _, difficulties := range [][]string{
		{"easy", "easy"},
		{"medium", "hard"},
		{"easy", "medium", "hard"},
		{"hard", "hard", "hard", "hard"},
	} {
		ctrl, state := newBotGame(t, difficulties...)

		if err := ctrl.Run(); err != nil {
			t.Fatalf("%v: Run failed: %v", difficulties, err)
		}

		total := state.Deck().Remaining() + state.Parade().Size()
		for _, p := range state.Players {
			if len(p.Hand) != 0 {
				t.Errorf("%v: %s still holds %d cards", difficulties, p.Name, len(p.Hand))
			}
			if len(p.Collected) == 0 {
				t.Errorf("%v: %s collected nothing over a full game", difficulties, p.Name)
			}
			total += len(p.Collected)
		}

		// Every card is accounted for: deck + parade + collected piles +
		// the two cards each player discarded out of the game.
		total += 2 * len(state.Players)
		if total != 66 {
			t.Errorf("%v: %d cards accounted for, want 66", difficulties, total)
		}
	}
}

func TestRunIsDeterministicallyScorable(t *testing.T) {
	ctrl, state := newBotGame(t, "medium", "medium")
	if err := ctrl.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Run already scored the game; flipped cards must all be worth 1.
	for _, p := range state.Players {
		for _, c := range p.Collected {
			if c.Flipped && c.Value != 1 {
				t.Errorf("%s holds a flipped %v with value %d", p.Name, c, c.Value)
			}
		}
	}
}
