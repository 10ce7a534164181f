package controller

import (
	"fmt"
	"log/slog"

	"parade-game/ai"
	"parade-game/game"
	"parade-game/view"
)

// Prompter supplies the human-facing prompts the controller needs. The input
// package implements it against the terminal; tests stub it.
type Prompter interface {
	// CardIndex asks for a hand index in [0, handSize); it re-asks until valid.
	CardIndex(action string, handSize int) (int, error)
	// NextTurn blocks until the player at the keyboard confirms the next turn.
	NextTurn() error
}

// Controller drives a game from first turn to final score: the play loop,
// the pre-discard snapshot, the discard phase and the winner display. It is
// the only layer that mutates hands; strategies and prompts just pick.
type Controller struct {
	state  *game.State
	view   *view.View
	input  Prompter
	brains map[int]ai.Strategy // player id -> strategy; absent means human seat
}

// New wires a controller. brains maps bot player ids to their strategies;
// players without an entry are prompted via input.
func New(state *game.State, v *view.View, input Prompter, brains map[int]ai.Strategy) *Controller {
	return &Controller{state: state, view: v, input: input, brains: brains}
}

// Run plays the game to completion and renders the result. It returns an
// error only when input is aborted or a strategy returns an invalid move;
// rule-level conditions (deck exhaustion, last round) are normal flow.
func (c *Controller) Run() error {
	for !c.state.GameOver() {
		if c.state.DiscardPhase() {
			break
		}
		if err := c.playTurn(); err != nil {
			return err
		}
		c.state.NextTurn()
	}

	// Frozen for display continuity: the discard phase keeps showing the
	// piles as they stood when normal play ended.
	snapshot := c.state.SnapshotCollected()

	for c.state.DiscardPhase() {
		if err := c.discardTurn(snapshot); err != nil {
			return err
		}
		c.state.NextTurn()
	}

	scores := c.state.CalculateScores()
	winner := game.Winner(scores)
	for _, sc := range scores {
		slog.Info("final score", "tag", "game", "player", sc.Player.Name,
			"points", sc.Points, "cards", len(sc.Player.Collected))
	}
	slog.Info("game over", "tag", "game", "winner", winner.Name)
	c.view.Winner(scores, winner)
	return nil
}

func (c *Controller) playTurn() error {
	player := c.state.CurrentPlayer()
	brain := c.brains[player.ID]
	c.view.GameState(c.state, nil, brain != nil)

	var handIndex int
	if brain != nil {
		card := brain.ChooseCard(c.state.Parade(), player.Hand)
		handIndex = handIndexOf(player.Hand, card)
		if handIndex < 0 {
			return fmt.Errorf("strategy for %s chose a card outside its hand", player.Name)
		}
		c.view.AIPlayed(player, card)
	} else {
		i, err := c.input.CardIndex("play", len(player.Hand))
		if err != nil {
			return err
		}
		handIndex = i
	}

	result, err := c.state.PlayCard(handIndex)
	if err != nil {
		return fmt.Errorf("playing for %s: %w", player.Name, err)
	}
	slog.Debug("card played", "tag", "game", "player", player.Name,
		"card", result.Played, "collected", len(result.Collected),
		"lastRound", c.state.LastRound())

	c.view.TurnSummary(player, result)
	return c.input.NextTurn()
}

func (c *Controller) discardTurn(snapshot map[int][]game.Card) error {
	player := c.state.CurrentPlayer()
	brain := c.brains[player.ID]
	c.view.GameState(c.state, snapshot, brain != nil)

	if brain != nil {
		i, j := brain.ChooseDiscards(player, c.state.Players)
		if i == j || i < 0 || j < 0 || i >= len(player.Hand) || j >= len(player.Hand) {
			return fmt.Errorf("strategy for %s chose invalid discard indices %d, %d", player.Name, i, j)
		}
		// Higher index first so the lower one stays valid.
		if i < j {
			i, j = j, i
		}
		first, _ := c.state.Discard(i)
		second, _ := c.state.Discard(j)
		slog.Debug("cards discarded", "tag", "game", "player", player.Name,
			"first", first, "second", second)
	} else {
		for n := 0; n < 2; n++ {
			// The second prompt runs against the re-indexed hand; the view
			// re-displays it after the first removal.
			if n == 1 {
				c.view.GameState(c.state, snapshot, false)
			}
			i, err := c.input.CardIndex("discard", len(player.Hand))
			if err != nil {
				return err
			}
			if _, err := c.state.Discard(i); err != nil {
				return fmt.Errorf("discarding for %s: %w", player.Name, err)
			}
		}
	}

	c.state.KeepRemainingHand()
	return nil
}

// handIndexOf locates a card in the hand by pointer identity; strategies
// must return one of the cards they were handed.
func handIndexOf(hand []*game.Card, card *game.Card) int {
	for i, c := range hand {
		if c == card {
			return i
		}
	}
	return -1
}
