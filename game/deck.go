package game

import "math/rand"

// Deck is a shuffled sequence of every colour/value combination with a
// monotonically advancing draw cursor. The order is fixed after the shuffle
// at construction; there is no reshuffling.
type Deck struct {
	cards []*Card
	index int
}

// NewDeck builds a deck holding cardsPerColour cards of each colour, one per
// value 0..cardsPerColour-1, and shuffles it once.
func NewDeck(cardsPerColour int) *Deck {
	cards := make([]*Card, 0, NumColours*cardsPerColour)
	for _, colour := range Colours {
		for value := 0; value < cardsPerColour; value++ {
			cards = append(cards, &Card{Colour: colour, Value: value})
		}
	}
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// Draw returns the card at the cursor and advances it. Once the deck is
// exhausted it returns (nil, false); exhaustion is a normal transition,
// not an error.
func (d *Deck) Draw() (*Card, bool) {
	if d.index >= len(d.cards) {
		return nil, false
	}
	card := d.cards[d.index]
	d.index++
	return card, true
}

// Empty reports whether no cards remain to draw.
func (d *Deck) Empty() bool {
	return d.index >= len(d.cards)
}

// Remaining returns the number of cards left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.index
}
