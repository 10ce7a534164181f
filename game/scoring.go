package game

// Score pairs a player with their final point total. Lower is better.
type Score struct {
	Player *Player
	Points int
}

// CalculateScores applies the majority flip rule and sums every player's
// collected pile. With more than 2 players, every player tied for the
// maximum count of a colour flips all their cards of that colour to value 1.
// With exactly 2 players a colour flips only with a lead of 2 or more;
// otherwise neither side flips it. Flips mutate collected cards in place.
// Results are returned in turn order.
func (s *State) CalculateScores() []Score {
	// counts[colour][i] = cards of that colour player i collected
	var counts [NumColours][]int
	for _, colour := range Colours {
		counts[colour] = make([]int, len(s.Players))
		for i, p := range s.Players {
			for _, card := range p.Collected {
				if card.Colour == colour {
					counts[colour][i]++
				}
			}
		}
	}

	if len(s.Players) > 2 {
		for _, colour := range Colours {
			max := 0
			for _, n := range counts[colour] {
				if n > max {
					max = n
				}
			}
			for i, p := range s.Players {
				if counts[colour][i] == max {
					flipColour(p, colour)
				}
			}
		}
	} else if len(s.Players) == 2 {
		for _, colour := range Colours {
			diff := counts[colour][0] - counts[colour][1]
			if diff > 1 {
				flipColour(s.Players[0], colour)
			} else if diff < -1 {
				flipColour(s.Players[1], colour)
			}
		}
	}

	scores := make([]Score, len(s.Players))
	for i, p := range s.Players {
		scores[i] = Score{Player: p, Points: p.Score()}
	}
	return scores
}

func flipColour(p *Player, colour Colour) {
	for _, card := range p.Collected {
		if card.Colour == colour {
			card.Flip()
		}
	}
}

// Winner picks the player with the lowest score. Ties go to the smaller
// collected pile; a full tie goes to the player earliest in turn order, so
// selection is always deterministic.
func Winner(scores []Score) *Player {
	best := scores[0]
	for _, sc := range scores[1:] {
		if sc.Points < best.Points ||
			(sc.Points == best.Points && len(sc.Player.Collected) < len(best.Player.Collected)) {
			best = sc
		}
	}
	return best.Player
}
