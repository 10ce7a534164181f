package ai

import "parade-game/game"

func init() {
	Register("easy", func() Strategy { return easyStrategy{} })
}

// easyStrategy plays the card ranked third-cheapest by collected-card count
// and discards its two highest-value cards. Deliberately weak: it ignores
// card values when playing and ignores everyone's collected piles when
// discarding.
type easyStrategy struct{}

// ChooseCard simulates each hand card and ranks by how many parade cards it
// would collect. It picks the third-smallest count, the second with a
// two-card hand, or the only card left.
func (easyStrategy) ChooseCard(parade *game.Parade, hand []*game.Card) *game.Card {
	order := rankHand(hand, func(card *game.Card) int {
		return len(parade.Simulate(card))
	})
	pick := 2
	if pick > len(order)-1 {
		pick = len(order) - 1
	}
	return hand[order[pick]]
}

// ChooseDiscards returns the indices of the two highest-value cards in hand,
// first-seen winning ties.
func (easyStrategy) ChooseDiscards(self *game.Player, players []*game.Player) (int, int) {
	hand := self.Hand
	first, second := 0, 1
	if hand[second].Value > hand[first].Value {
		first, second = second, first
	}
	for i := 2; i < len(hand); i++ {
		switch {
		case hand[i].Value > hand[first].Value:
			second, first = first, i
		case hand[i].Value > hand[second].Value:
			second = i
		}
	}
	return first, second
}
