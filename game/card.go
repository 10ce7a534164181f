package game

import "fmt"

// Colour identifies one of the six card colours. The zero value is Blue.
// Colours are ordered so that grouping and sorting are deterministic.
type Colour int

const (
	Blue Colour = iota
	Orange
	Green
	Grey
	Purple
	Red
)

// NumColours is the number of distinct card colours in the deck.
const NumColours = 6

// Colours lists every colour in display order.
var Colours = [NumColours]Colour{Blue, Orange, Green, Grey, Purple, Red}

// String returns the display name of a Colour.
func (c Colour) String() string {
	switch c {
	case Blue:
		return "Blue"
	case Orange:
		return "Orange"
	case Green:
		return "Green"
	case Grey:
		return "Grey"
	case Purple:
		return "Purple"
	case Red:
		return "Red"
	default:
		return "unknown"
	}
}

// Card is a single physical card. Colour never changes; Value is mutated
// exactly once, during scoring, when the card is part of a majority flip.
// Each Card is owned by exactly one container (deck, parade, a hand or a
// collected pile) at a time and moves between them by pointer.
type Card struct {
	Colour  Colour
	Value   int
	Flipped bool
}

// Flip marks the card as part of a majority and forces its value to 1.
func (c *Card) Flip() {
	c.Value = 1
	c.Flipped = true
}

// String returns the plain text form of the card, e.g. "Blue 3".
// Flipped cards read "FLIPPED 1". Coloured output lives in the view package.
func (c *Card) String() string {
	if c.Flipped {
		return fmt.Sprintf("FLIPPED %d", c.Value)
	}
	return fmt.Sprintf("%s %d", c.Colour, c.Value)
}
