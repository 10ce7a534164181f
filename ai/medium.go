package ai

import "parade-game/game"

func init() {
	Register("medium", func() Strategy { return mediumStrategy{} })
}

// mediumStrategy weighs moves by collected value rather than count, but
// deliberately passes on the best play, and estimates end-game flips from
// collected piles alone.
type mediumStrategy struct{}

// ChooseCard simulates each hand card and ranks by the summed value of what
// it would collect. It picks the second-smallest sum, or the only card left.
func (mediumStrategy) ChooseCard(parade *game.Parade, hand []*game.Card) *game.Card {
	order := rankHand(hand, func(card *game.Card) int {
		return valueSum(parade.Simulate(card))
	})
	if len(order) > 1 {
		return hand[order[1]]
	}
	return hand[order[0]]
}

// ChooseDiscards searches every pair of hand indices for the one minimising
// the post-flip value of collected-plus-kept-hand, with opponents judged on
// their actual collected piles only.
func (mediumStrategy) ChooseDiscards(self *game.Player, players []*game.Player) (int, int) {
	return bestDiscardPair(self, players, 0)
}
