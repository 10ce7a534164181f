package input

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"parade-game/ai"
)

// MaxPlayers is the most players a single parade supports.
const MaxPlayers = 6

// Prompter collects validated input from the terminal. Every prompt re-asks
// until the answer is valid; Ctrl-C or EOF aborts with ErrAborted.
type Prompter struct {
	line *liner.State
}

// ErrAborted is returned when the user cancels a prompt (Ctrl-C or EOF).
var ErrAborted = liner.ErrPromptAborted

// New creates a Prompter with line editing enabled.
func New() *Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &Prompter{line: line}
}

// Close restores the terminal. Must be called before exit.
func (p *Prompter) Close() {
	p.line.Close()
}

func (p *Prompter) prompt(msg string) (string, error) {
	answer, err := p.line.Prompt(msg)
	if err == liner.ErrPromptAborted || err == io.EOF {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// promptInt asks until the answer parses as an integer in [min, max].
func (p *Prompter) promptInt(msg string, min, max int) (int, error) {
	for {
		answer, err := p.prompt(msg)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= min && n <= max {
			return n, nil
		}
		fmt.Printf("Invalid number. Please enter between %d and %d.\n", min, max)
	}
}

// GameMode asks whether to play against humans (false) or AI (true).
func (p *Prompter) GameMode() (bool, error) {
	fmt.Println("Select the game mode:")
	fmt.Println("1. Versus Humans")
	fmt.Println("2. Versus AI")
	choice, err := p.promptInt("Enter your choice (1 or 2): ", 1, 2)
	if err != nil {
		return false, err
	}
	return choice == 2, nil
}

// Humans asks for the number of human players: 1 to 5 when bots fill the
// remaining seats, 2 to 6 otherwise.
func (p *Prompter) Humans(aiEnabled bool) (int, error) {
	if aiEnabled {
		return p.promptInt("Enter number of human players (1-5): ", 1, MaxPlayers-1)
	}
	return p.promptInt("Enter number of players (2-6): ", 2, MaxPlayers)
}

// Difficulty asks for an AI difficulty until it names a registered tier.
func (p *Prompter) Difficulty() (string, error) {
	tiers := ai.Difficulties()
	for {
		answer, err := p.prompt(fmt.Sprintf("Enter AI difficulty (%s): ", strings.Join(tiers, ", ")))
		if err != nil {
			return "", err
		}
		answer = strings.ToLower(answer)
		for _, tier := range tiers {
			if answer == tier {
				return answer, nil
			}
		}
	}
}

// Bots asks for the number of AI players, capped so the table stays at six.
func (p *Prompter) Bots(numHumans int) (int, error) {
	max := MaxPlayers - numHumans
	return p.promptInt(fmt.Sprintf("Enter number of AI players (1-%d): ", max), 1, max)
}

// CardIndex asks for a hand index in [0, handSize). action names the move,
// e.g. "play" or "discard".
func (p *Prompter) CardIndex(action string, handSize int) (int, error) {
	return p.promptInt(fmt.Sprintf("Select a card to %s (0-%d): ", action, handSize-1), 0, handSize-1)
}

// NextTurn gates the loop between turns so the next player can take the seat.
func (p *Prompter) NextTurn() error {
	_, err := p.prompt("Press enter for the next turn...")
	return err
}
