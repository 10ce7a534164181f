package ai

import "parade-game/game"

func init() {
	Register("hard", func() Strategy { return hardStrategy{} })
}

// hardStrategy always takes the cheapest play and discards under a
// pessimistic model of the opponents' remaining hands.
type hardStrategy struct{}

// ChooseCard returns the hand card whose simulated collection has the lowest
// summed value. Full scan; the first card seen wins ties.
func (hardStrategy) ChooseCard(parade *game.Parade, hand []*game.Card) *game.Card {
	best := hand[0]
	minValue := valueSum(parade.Simulate(best))
	for _, card := range hand[1:] {
		if total := valueSum(parade.Simulate(card)); total < minValue {
			minValue = total
			best = card
		}
	}
	return best
}

// ChooseDiscards mirrors the medium search but credits every opponent with
// two more cards of every colour before deciding which colours we would
// still flip.
func (hardStrategy) ChooseDiscards(self *game.Player, players []*game.Player) (int, int) {
	return bestDiscardPair(self, players, 2)
}
