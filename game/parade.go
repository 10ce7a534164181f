package game

// Parade is the shared ordered sequence of face-up cards. It is append-only
// except for the removal rule in ApplyPlay, which may delete an arbitrary
// subset while preserving the relative order of survivors.
type Parade struct {
	cards []*Card
}

// NewParade returns an empty parade.
func NewParade() *Parade {
	return &Parade{}
}

// Append adds a card to the end of the parade.
func (p *Parade) Append(card *Card) {
	p.cards = append(p.cards, card)
}

// ApplyPlay runs the removal rule for a card that has already been appended
// as the last element of the parade. With v = played value, the last v+1
// cards form the safe zone and are always kept. Every card before the safe
// zone is collected when it shares the played card's colour or its value is
// <= v. Survivors keep their original order. The collected cards are
// returned in left-to-right scan order.
//
// A played 0 still scans the parade even though its safe zone is only
// itself; a played value >= the pre-play parade size collects nothing.
func (p *Parade) ApplyPlay(played *Card) []*Card {
	size := len(p.cards)
	v := played.Value

	if size <= v && !(v == 0 && size > 0) {
		return nil
	}

	var remaining, collected []*Card
	for pos, card := range p.cards {
		if pos < size-1-v && (card.Colour == played.Colour || card.Value <= v) {
			collected = append(collected, card)
		} else {
			remaining = append(remaining, card)
		}
	}
	p.cards = remaining
	return collected
}

// Simulate computes what ApplyPlay would collect for candidate without
// touching the parade. It appends candidate to a throwaway copy and runs the
// identical rule, so it matches a subsequent real ApplyPlay byte for byte.
// This is the pure oracle the AI layer and move previews depend on.
func (p *Parade) Simulate(candidate *Card) []*Card {
	temp := &Parade{cards: make([]*Card, len(p.cards), len(p.cards)+1)}
	copy(temp.cards, p.cards)
	temp.Append(candidate)
	return temp.ApplyPlay(candidate)
}

// Size returns the number of cards currently in the parade.
func (p *Parade) Size() int {
	return len(p.cards)
}

// Cards returns a copy of the parade sequence for display.
func (p *Parade) Cards() []*Card {
	out := make([]*Card, len(p.cards))
	copy(out, p.cards)
	return out
}
