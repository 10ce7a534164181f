package view

import (
	"sort"
	"strings"

	"github.com/fatih/color"

	"parade-game/game"
)

// palette maps card colours to their terminal colours.
var palette = map[game.Colour]*color.Color{
	game.Blue:   color.New(color.FgBlue),
	game.Orange: color.New(color.FgYellow),
	game.Green:  color.New(color.FgGreen),
	game.Grey:   color.New(color.FgHiBlack),
	game.Purple: color.New(color.FgMagenta),
	game.Red:    color.New(color.FgRed),
}

// FormatCard renders a card in its ANSI colour. Flipped cards keep their
// colour but read "FLIPPED 1".
func FormatCard(card *game.Card) string {
	return palette[card.Colour].Sprint(card.String())
}

// FormatCards renders cards in their given order, comma separated.
func FormatCards(cards []*game.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = FormatCard(card)
	}
	return strings.Join(parts, ", ")
}

// FormatGrouped renders cards grouped by colour and sorted by value within
// each group. Used for collected piles, where order carries no meaning.
func FormatGrouped(cards []*game.Card) string {
	groups := make(map[game.Colour][]*game.Card)
	for _, card := range cards {
		groups[card.Colour] = append(groups[card.Colour], card)
	}

	var parts []string
	for _, colour := range game.Colours {
		group := groups[colour]
		if len(group) == 0 {
			continue
		}
		sort.SliceStable(group, func(a, b int) bool {
			return group[a].Value < group[b].Value
		})
		parts = append(parts, FormatCards(group))
	}
	return strings.Join(parts, ", ")
}
