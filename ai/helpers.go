package ai

import (
	"math"
	"sort"

	"parade-game/game"
)

// valueSum returns the summed values of a set of cards.
func valueSum(cards []*game.Card) int {
	sum := 0
	for _, card := range cards {
		sum += card.Value
	}
	return sum
}

// colourCounts tallies a pile of cards per colour.
func colourCounts(cards []*game.Card) [game.NumColours]int {
	var counts [game.NumColours]int
	for _, card := range cards {
		counts[card.Colour]++
	}
	return counts
}

// rankHand stable-sorts the hand indices ascending by score(card) and
// returns them. Stability keeps hand order as the tie-break, so equal-score
// cards rank in the order they sit in the hand.
func rankHand(hand []*game.Card, score func(*game.Card) int) []int {
	scores := make([]int, len(hand))
	order := make([]int, len(hand))
	for i, card := range hand {
		scores[i] = score(card)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] < scores[order[b]]
	})
	return order
}

// bestDiscardPair exhaustively tries every unordered pair of hand indices.
// For each pair it builds the hypothetical end-game pile (current collected
// plus the hand minus the pair), decides which colours would flip and picks
// the pair minimising the post-flip total.
//
// Flip estimation uses every player's actual collected counts only —
// opponents' hands are not modelled. A colour flips for us when no opponent
// count strictly exceeds ours, i.e. ties count as a win. opponentBonus is
// added to every opponent colour count first; the hard tier passes 2 as a
// pessimistic estimate of what opponents might still collect.
func bestDiscardPair(self *game.Player, players []*game.Player, opponentBonus int) (int, int) {
	hand := self.Hand

	// Opponent counts do not depend on the pair under test.
	var opponents [][game.NumColours]int
	for _, p := range players {
		if p == self {
			continue
		}
		counts := colourCounts(p.Collected)
		for c := range counts {
			counts[c] += opponentBonus
		}
		opponents = append(opponents, counts)
	}

	bestI, bestJ := 0, 1
	minScore := math.MaxInt
	pile := make([]*game.Card, 0, len(self.Collected)+len(hand))

	for i := 0; i < len(hand); i++ {
		for j := i + 1; j < len(hand); j++ {
			pile = pile[:0]
			pile = append(pile, self.Collected...)
			for k, card := range hand {
				if k != i && k != j {
					pile = append(pile, card)
				}
			}

			mine := colourCounts(pile)
			var flipped [game.NumColours]bool
			for _, colour := range game.Colours {
				flipped[colour] = true
				for _, theirs := range opponents {
					if theirs[colour] > mine[colour] {
						flipped[colour] = false
						break
					}
				}
			}

			total := 0
			for _, card := range pile {
				if flipped[card.Colour] {
					total++
				} else {
					total += card.Value
				}
			}
			if total < minScore {
				minScore = total
				bestI, bestJ = i, j
			}
		}
	}
	return bestI, bestJ
}
