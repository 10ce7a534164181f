package view

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"parade-game/game"
)

const banner = ` ____                     _
|  _ \ __ _ _ __ __ _  __| | ___
| |_) / _` + "`" + ` | '__/ _` + "`" + ` |/ _` + "`" + ` |/ _ \
|  __/ (_| | | | (_| | (_| |  __/
|_|   \__,_|_|  \__,_|\__,_|\___|
`

// View renders game state to a terminal. It never mutates what it is given;
// everything it receives is a read-only snapshot.
type View struct {
	out    io.Writer
	header *color.Color
	turn   int
}

// New creates a View writing to out. useColours toggles ANSI output globally.
func New(out io.Writer, useColours bool) *View {
	color.NoColor = !useColours
	return &View{
		out:    out,
		header: color.New(color.FgWhite, color.Bold),
		turn:   1,
	}
}

// Banner prints the title screen.
func (v *View) Banner() {
	fmt.Fprintln(v.out, "WELCOME TO...")
	fmt.Fprint(v.out, banner)
	fmt.Fprintln(v.out)
}

// GameState prints the state seen at the top of a turn: turn number, parade,
// deck count and — for human seats — the current player's hand plus every
// collected pile. snapshot, when non-nil, replaces the live collected piles
// (used during the discard phase for display continuity). aiSeat hides the
// hand so humans at the same terminal don't see bot cards.
func (v *View) GameState(s *game.State, snapshot map[int][]game.Card, aiSeat bool) {
	fmt.Fprintf(v.out, "\n================ TURN %d ===================\n", v.turn)
	v.turn++

	v.header.Fprintln(v.out, "\n==== PARADE ====")
	fmt.Fprintf(v.out, "Parade: [ %s ]\n", FormatCards(s.Parade().Cards()))
	fmt.Fprintf(v.out, "Deck Size: %d\n", s.Deck().Remaining())
	fmt.Fprintln(v.out, "================")

	current := s.CurrentPlayer()
	v.header.Fprintf(v.out, "\n--- %s'S TURN ---\n", strings.ToUpper(current.Name))
	if s.LastRound() && !s.DiscardPhase() {
		fmt.Fprintln(v.out, "\n--- THIS IS YOUR LAST TURN BEFORE DISCARD PHASE ---")
	}

	if aiSeat {
		fmt.Fprintln(v.out, "\nAI is playing...")
		fmt.Fprintln(v.out, "============================================")
		return
	}

	v.header.Fprintln(v.out, "\n--- HAND ---")
	for i, card := range current.Hand {
		fmt.Fprintf(v.out, "%d: %s\n", i, FormatCard(card))
	}

	v.header.Fprintln(v.out, "\n--- YOUR COLLECTED CARDS ---")
	fmt.Fprintf(v.out, "[ %s ]\n", FormatGrouped(v.collectedFor(current, snapshot)))

	v.header.Fprintln(v.out, "\n--- OTHER PLAYERS' COLLECTED CARDS ---")
	for _, p := range s.Players {
		if p == current {
			continue
		}
		fmt.Fprintf(v.out, "%s: [ %s ]\n", p.Name, FormatGrouped(v.collectedFor(p, snapshot)))
	}
	fmt.Fprintln(v.out, "============================================")
}

// collectedFor returns the pile to display for p: the pre-discard snapshot
// when one is given, the live pile otherwise.
func (v *View) collectedFor(p *game.Player, snapshot map[int][]game.Card) []*game.Card {
	if snapshot == nil {
		return p.Collected
	}
	copies := snapshot[p.ID]
	cards := make([]*game.Card, len(copies))
	for i := range copies {
		cards[i] = &copies[i]
	}
	return cards
}

// AIPlayed announces a bot's chosen card.
func (v *View) AIPlayed(p *game.Player, card *game.Card) {
	fmt.Fprintf(v.out, "%s played: %s\n", p.Name, FormatCard(card))
}

// TurnSummary prints the outcome of a play: the card played, what it
// collected from the parade and the replacement card, if one was drawn.
func (v *View) TurnSummary(p *game.Player, r game.TurnResult) {
	v.header.Fprintln(v.out, "\n--- TURN SUMMARY ---")
	fmt.Fprintf(v.out, "%s played %s\n", p.Name, FormatCard(r.Played))
	if len(r.Collected) > 0 {
		fmt.Fprintf(v.out, "Collected from the parade: [ %s ]\n", FormatCards(r.Collected))
	} else {
		fmt.Fprintln(v.out, "Collected nothing from the parade.")
	}
	if r.Drawn != nil {
		fmt.Fprintf(v.out, "%s drew a card.\n", p.Name)
	}
}

// Winner prints the final score table, lowest score first, and crowns the
// winner.
func (v *View) Winner(scores []game.Score, winner *game.Player) {
	ranked := make([]game.Score, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Points < ranked[b].Points
	})

	t := table.NewWriter()
	t.SetOutputMirror(v.out)
	t.SetTitle("FINAL SCORES")
	t.AppendHeader(table.Row{"Player", "Score", "Cards Collected"})
	for _, sc := range ranked {
		t.AppendRow(table.Row{sc.Player.Name, sc.Points, len(sc.Player.Collected)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Score", Align: text.AlignRight},
		{Name: "Cards Collected", Align: text.AlignRight},
	})
	t.SetStyle(table.StyleLight)
	t.Render()

	fmt.Fprintf(v.out, "\n🎉 %s wins!\n", winner.Name)
}
