package game

// Player holds one seat's cards. Hand order is display-significant (prompts
// and strategies address it by index) but has no effect on the rules. The
// collected pile only grows during play; scoring mutates some of its cards
// in place.
type Player struct {
	ID        int
	Name      string
	Hand      []*Card
	Collected []*Card
}

// NewPlayer creates a player with the given id and name and empty containers.
func NewPlayer(id int, name string) *Player {
	return &Player{ID: id, Name: name}
}

// AddToHand appends a card to the player's hand.
func (p *Player) AddToHand(card *Card) {
	p.Hand = append(p.Hand, card)
}

// RemoveFromHand removes and returns the card at the given hand index.
// The index must have been validated against the current hand.
func (p *Player) RemoveFromHand(i int) *Card {
	card := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return card
}

// AddCollected moves cards into the player's collected pile.
func (p *Player) AddCollected(cards []*Card) {
	p.Collected = append(p.Collected, cards...)
}

// CollectedColours returns how many distinct colours the collected pile spans.
func (p *Player) CollectedColours() int {
	var seen [NumColours]bool
	n := 0
	for _, card := range p.Collected {
		if !seen[card.Colour] {
			seen[card.Colour] = true
			n++
		}
	}
	return n
}

// Score sums the current values of the collected pile.
func (p *Player) Score() int {
	sum := 0
	for _, card := range p.Collected {
		sum += card.Value
	}
	return sum
}
