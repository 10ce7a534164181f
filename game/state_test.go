package game

import (
	"testing"

	"parade-game/config"
)

func twoPlayers() []*Player {
	return []*Player{NewPlayer(1, "Alice"), NewPlayer(2, "Bob")}
}

// stateWith builds a State around a fixed deck and parade, bypassing the
// shuffle, so turn tests are deterministic.
func stateWith(players []*Player, deck []*Card, parade ...*Card) *State {
	return &State{
		Players: players,
		deck:    &Deck{cards: deck},
		parade:  paradeOf(parade...),
	}
}

func TestNewStateDealsEverything(t *testing.T) {
	players := twoPlayers()
	s := NewState(players, config.Defaults())

	if s.Parade().Size() != 6 {
		t.Errorf("expected parade of 6, got %d", s.Parade().Size())
	}
	for _, p := range players {
		if len(p.Hand) != 5 {
			t.Errorf("%s: expected hand of 5, got %d", p.Name, len(p.Hand))
		}
	}
	if s.Deck().Remaining() != 66-6-10 {
		t.Errorf("expected 50 cards left in deck, got %d", s.Deck().Remaining())
	}
	if s.CurrentPlayer() != players[0] {
		t.Error("first player should open the game")
	}
}

func TestPlayCardMovesOwnership(t *testing.T) {
	players := twoPlayers()
	drawable := card(Red, 9)
	s := stateWith(players, []*Card{drawable},
		card(Blue, 3), card(Red, 5), card(Blue, 2), card(Green, 0), card(Purple, 6))

	played := card(Blue, 0)
	players[0].AddToHand(card(Grey, 4))
	players[0].AddToHand(played)

	result, err := s.PlayCard(1)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if result.Played != played {
		t.Fatalf("expected %v played, got %v", played, result.Played)
	}
	if len(result.Collected) != 3 {
		t.Fatalf("expected 3 collected, got %v", result.Collected)
	}
	if len(players[0].Collected) != 3 {
		t.Errorf("collected pile not updated: %v", players[0].Collected)
	}
	// Deck had one card left, so the play triggered the last round and that
	// first post-trigger turn still draws.
	if result.Drawn != drawable {
		t.Errorf("expected replacement draw, got %v", result.Drawn)
	}
	if !s.LastRound() {
		t.Error("deck at 0 should have triggered the last round")
	}
	if len(players[0].Hand) != 2 {
		t.Errorf("expected hand of 2 after play+draw, got %d", len(players[0].Hand))
	}
}

func TestPlayCardRejectsBadIndex(t *testing.T) {
	players := twoPlayers()
	s := stateWith(players, nil)

	if _, err := s.PlayCard(0); err != ErrEmptyHand {
		t.Errorf("expected ErrEmptyHand, got %v", err)
	}

	players[0].AddToHand(card(Blue, 1))
	if _, err := s.PlayCard(1); err != ErrInvalidHandIndex {
		t.Errorf("expected ErrInvalidHandIndex, got %v", err)
	}
	if _, err := s.PlayCard(-1); err != ErrInvalidHandIndex {
		t.Errorf("expected ErrInvalidHandIndex, got %v", err)
	}
	// Rejection happens before mutation.
	if len(players[0].Hand) != 1 || s.Parade().Size() != 0 {
		t.Error("invalid play must not mutate state")
	}
}

func TestCheckLastRoundTriggers(t *testing.T) {
	t.Run("all colours collected", func(t *testing.T) {
		players := twoPlayers()
		deck := []*Card{card(Red, 1), card(Red, 2), card(Red, 3)}
		s := stateWith(players, deck)
		for i, colour := range Colours {
			players[0].AddCollected([]*Card{card(colour, i)})
		}

		s.CheckLastRound()
		if !s.LastRound() || s.LastRoundTurns() != 1 {
			t.Errorf("expected trigger with counter 1, got %v/%d", s.LastRound(), s.LastRoundTurns())
		}
	})

	t.Run("deck nearly empty", func(t *testing.T) {
		s := stateWith(twoPlayers(), []*Card{card(Red, 1)})
		s.CheckLastRound()
		if !s.LastRound() {
			t.Error("deck at 1 should trigger the last round")
		}
	})

	t.Run("no trigger", func(t *testing.T) {
		s := stateWith(twoPlayers(), []*Card{card(Red, 1), card(Red, 2)})
		s.CheckLastRound()
		if s.LastRound() || s.LastRoundTurns() != 0 {
			t.Error("nothing should have triggered")
		}
	})
}

func TestLastRoundCounterRunsToGameOver(t *testing.T) {
	players := twoPlayers()
	s := stateWith(players, []*Card{card(Red, 1)})

	// Trigger fires, then keeps counting on every evaluation. With two
	// players the game is over at counter 3.
	for i := 1; i <= len(players)+1; i++ {
		s.CheckLastRound()
		if s.LastRoundTurns() != i {
			t.Fatalf("expected counter %d, got %d", i, s.LastRoundTurns())
		}
		s.NextTurn()
	}
	if !s.GameOver() {
		t.Error("game should be over after players+1 evaluations")
	}
}

func TestDrawSuppressionAfterTrigger(t *testing.T) {
	players := twoPlayers()
	deck := []*Card{card(Red, 9), card(Red, 10)}
	s := stateWith(players, deck)
	for _, p := range players {
		p.AddToHand(card(Blue, 10))
		p.AddToHand(card(Green, 10))
	}

	// First play: deck drops to 1 before the check? No — the check sees 2
	// cards, no trigger, and the replacement draw happens.
	result, err := s.PlayCard(0)
	if err != nil {
		t.Fatal(err)
	}
	if result.Drawn == nil {
		t.Fatal("pre-trigger turn must draw")
	}
	s.NextTurn()

	// Second play: deck is at 1, trigger fires (counter 1) and the first
	// post-trigger turn still draws the final card.
	result, err = s.PlayCard(0)
	if err != nil {
		t.Fatal(err)
	}
	if !s.LastRound() || result.Drawn == nil {
		t.Fatal("triggering turn should draw the final card")
	}
	s.NextTurn()

	// Every later turn is draw-free.
	result, err = s.PlayCard(0)
	if err != nil {
		t.Fatal(err)
	}
	if result.Drawn != nil {
		t.Error("draws must stop after the first post-trigger turn")
	}
}

func TestDiscardPhaseWindow(t *testing.T) {
	players := twoPlayers()
	s := stateWith(players, nil)

	for handSize, want := range map[int]bool{0: false, 2: false, 3: true, 4: true, 5: false} {
		players[0].Hand = nil
		for i := 0; i < handSize; i++ {
			players[0].AddToHand(card(Blue, i))
		}
		if got := s.DiscardPhase(); got != want {
			t.Errorf("hand size %d: DiscardPhase() = %v, want %v", handSize, got, want)
		}
	}
}

func TestDiscardLeavesTheGame(t *testing.T) {
	players := twoPlayers()
	s := stateWith(players, nil)
	keep1, keep2 := card(Blue, 1), card(Green, 2)
	drop1, drop2 := card(Red, 10), card(Purple, 9)
	players[0].Hand = []*Card{keep1, drop1, keep2, drop2}

	if _, err := s.Discard(4); err != ErrInvalidHandIndex {
		t.Fatalf("expected ErrInvalidHandIndex, got %v", err)
	}

	if got, _ := s.Discard(3); got != drop2 {
		t.Fatalf("expected %v discarded, got %v", drop2, got)
	}
	if got, _ := s.Discard(1); got != drop1 {
		t.Fatalf("expected %v discarded, got %v", drop1, got)
	}
	s.KeepRemainingHand()

	if len(players[0].Hand) != 0 {
		t.Error("hand should be empty after the discard turn")
	}
	if !sameCards(players[0].Collected, []*Card{keep1, keep2}) {
		t.Errorf("kept cards should be collected, got %v", players[0].Collected)
	}
}

func TestSnapshotCollectedIsIsolated(t *testing.T) {
	players := twoPlayers()
	s := stateWith(players, nil)
	original := card(Blue, 7)
	players[0].AddCollected([]*Card{original})

	snapshot := s.SnapshotCollected()
	original.Flip()

	copied := snapshot[players[0].ID]
	if len(copied) != 1 {
		t.Fatalf("expected 1 snapshot card, got %d", len(copied))
	}
	if copied[0].Flipped || copied[0].Value != 7 {
		t.Error("snapshot must not observe later mutation")
	}
}
