package game

import "parade-game/config"

// State holds everything about one game in progress: the players in fixed
// turn order, the deck, the parade and the last-round bookkeeping. It is
// created once per game, mutated turn by turn and discarded at game end.
type State struct {
	Players []*Player

	deck   *Deck
	parade *Parade

	current        int
	lastRound      bool
	lastRoundTurns int
}

// TurnResult summarises one completed play for display.
type TurnResult struct {
	Played    *Card
	Collected []*Card
	Drawn     *Card // nil when the replacement draw was suppressed
}

// NewState builds a fresh game: a shuffled deck, a parade seeded with
// cfg.ParadeSize cards and cfg.HandSize cards dealt to every player.
func NewState(players []*Player, cfg *config.Config) *State {
	s := &State{
		Players: players,
		deck:    NewDeck(cfg.CardsPerColour),
		parade:  NewParade(),
	}
	for i := 0; i < cfg.ParadeSize; i++ {
		if card, ok := s.deck.Draw(); ok {
			s.parade.Append(card)
		}
	}
	for i := 0; i < cfg.HandSize; i++ {
		for _, p := range players {
			if card, ok := s.deck.Draw(); ok {
				p.AddToHand(card)
			}
		}
	}
	return s
}

// CurrentPlayer returns the player whose turn it is.
func (s *State) CurrentPlayer() *Player {
	return s.Players[s.current]
}

// Deck returns the game's deck.
func (s *State) Deck() *Deck {
	return s.deck
}

// Parade returns the game's parade.
func (s *State) Parade() *Parade {
	return s.parade
}

// PlayCard plays the card at handIndex for the current player: it leaves the
// hand, joins the parade, the removal rule runs and whatever it collects
// moves to the player's pile. A replacement card is then drawn unless the
// game is past its last normal round; exactly one more card is drawn per
// player after the last-round trigger before draws stop for good.
func (s *State) PlayCard(handIndex int) (TurnResult, error) {
	p := s.CurrentPlayer()
	if len(p.Hand) == 0 {
		return TurnResult{}, ErrEmptyHand
	}
	if handIndex < 0 || handIndex >= len(p.Hand) {
		return TurnResult{}, ErrInvalidHandIndex
	}

	played := p.RemoveFromHand(handIndex)
	s.parade.Append(played)
	collected := s.parade.ApplyPlay(played)
	p.AddCollected(collected)

	s.CheckLastRound()

	result := TurnResult{Played: played, Collected: collected}
	if !s.lastRound || (s.lastRoundTurns == 1 && !s.deck.Empty()) {
		if card, ok := s.deck.Draw(); ok {
			p.AddToHand(card)
			result.Drawn = card
		}
	}
	return result, nil
}

// CheckLastRound evaluates the last-round trigger against the current
// player: their collected pile spans all colours, the deck is down to its
// final card, or the trigger already fired. While triggered, the counter
// advances on every evaluation, i.e. once per remaining turn including the
// turn that first triggered it.
func (s *State) CheckLastRound() {
	p := s.CurrentPlayer()
	if p.CollectedColours() >= NumColours || s.deck.Remaining() <= 1 || s.lastRoundTurns > 0 {
		s.lastRoundTurns++
		s.lastRound = true
	}
}

// LastRound reports whether the last-round trigger has fired.
func (s *State) LastRound() bool {
	return s.lastRound
}

// LastRoundTurns returns how many times the trigger has been evaluated since
// it fired (0 before the trigger).
func (s *State) LastRoundTurns() int {
	return s.lastRoundTurns
}

// DiscardPhase reports whether the current player is in the discard phase:
// their hand holds 3 or 4 cards. The window exists because the final round
// skips the replacement draw, shrinking hands by one per turn.
func (s *State) DiscardPhase() bool {
	n := len(s.CurrentPlayer().Hand)
	return n > 2 && n <= 4
}

// GameOver reports whether every player has had their final turn: the
// trigger has been evaluated once per player plus one extra cycle.
func (s *State) GameOver() bool {
	return s.lastRoundTurns == len(s.Players)+1
}

// NextTurn advances to the next player cyclically. Every player acts every
// rotation; there is no skip logic.
func (s *State) NextTurn() {
	s.current = (s.current + 1) % len(s.Players)
}

// Discard removes and returns the card at handIndex from the current
// player's hand. Discarded cards leave the game; they are never collected.
func (s *State) Discard(handIndex int) (*Card, error) {
	p := s.CurrentPlayer()
	if handIndex < 0 || handIndex >= len(p.Hand) {
		return nil, ErrInvalidHandIndex
	}
	return p.RemoveFromHand(handIndex), nil
}

// KeepRemainingHand moves the current player's remaining hand into their
// collected pile and empties the hand. Called after the discard phase has
// removed two cards.
func (s *State) KeepRemainingHand() {
	p := s.CurrentPlayer()
	p.AddCollected(p.Hand)
	p.Hand = nil
}

// SnapshotCollected deep-copies every player's collected pile, keyed by
// player id. The copy is taken once, before the discard phase, so the view
// can keep showing pre-discard piles; scoring later mutates the originals,
// never these copies.
func (s *State) SnapshotCollected() map[int][]Card {
	snapshot := make(map[int][]Card, len(s.Players))
	for _, p := range s.Players {
		copied := make([]Card, len(p.Collected))
		for i, card := range p.Collected {
			copied[i] = *card
		}
		snapshot[p.ID] = copied
	}
	return snapshot
}
