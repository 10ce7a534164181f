package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"parade-game/ai"
	"parade-game/config"
	"parade-game/controller"
	"parade-game/game"
	"parade-game/input"
	"parade-game/loghandler"
	"parade-game/view"
)

func main() {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(slog.New(loghandler.NewCompactHandler(os.Stderr, logLevel(cfg.LogLevel))))

	session := uuid.NewString()
	slog.Info("starting parade", "tag", "game", "session", session,
		"paradeSize", cfg.ParadeSize, "handSize", cfg.HandSize,
		"cardsPerColour", cfg.CardsPerColour)

	prompter := input.New()
	defer prompter.Close()

	v := view.New(os.Stdout, cfg.UseColours)
	v.Banner()

	state, brains, err := setup(prompter, cfg)
	if err != nil {
		prompter.Close()
		exitOnError(err)
	}

	ctrl := controller.New(state, v, prompter, brains)
	if err := ctrl.Run(); err != nil {
		prompter.Close()
		exitOnError(err)
	}
}

// setup prompts for the table composition and builds the game: human seats
// first, then bots of a single chosen difficulty.
func setup(prompter *input.Prompter, cfg *config.Config) (*game.State, map[int]ai.Strategy, error) {
	aiEnabled, err := prompter.GameMode()
	if err != nil {
		return nil, nil, err
	}
	numHumans, err := prompter.Humans(aiEnabled)
	if err != nil {
		return nil, nil, err
	}

	var players []*game.Player
	for i := 1; i <= numHumans; i++ {
		players = append(players, game.NewPlayer(i, fmt.Sprintf("Player %d", i)))
	}

	brains := make(map[int]ai.Strategy)
	if aiEnabled {
		difficulty, err := prompter.Difficulty()
		if err != nil {
			return nil, nil, err
		}
		numBots, err := prompter.Bots(numHumans)
		if err != nil {
			return nil, nil, err
		}
		for i := 1; i <= numBots; i++ {
			id := numHumans + i
			strategy, err := ai.New(difficulty)
			if err != nil {
				return nil, nil, err
			}
			players = append(players, game.NewPlayer(id, fmt.Sprintf("Bot %d", i)))
			brains[id] = strategy
		}
		slog.Info("bots seated", "tag", "ai", "difficulty", difficulty, "count", numBots)
	}

	return game.NewState(players, cfg), brains, nil
}

func logLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func exitOnError(err error) {
	if errors.Is(err, input.ErrAborted) {
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}
	slog.Error("game aborted", "tag", "game", "err", err)
	os.Exit(1)
}
