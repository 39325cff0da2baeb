package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type view interface {
	PrintState(board entity.Board)
	PrintBoard(board entity.Board)
	AnnounceTurn(player entity.Player)
	Prompt()
	PrintResult(outcome entity.Outcome)

	RequestValidInput(board entity.Board) (int, error)
}

// GameManager owns the board and turn state of a single game.
type GameManager struct {
	logger *slog.Logger
	view   view

	board   entity.Board
	turn    entity.Player
	outcome entity.Outcome
	moves   int
}

func NewGameManager(logger *slog.Logger, view view) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game"),
		view:   view,

		board:   entity.NewBoard(),
		turn:    entity.PlayerA,
		outcome: entity.OutcomeInProgress,
	}
}

// Play - runs the game until a player wins or the board is full, then prints the result.
func (that *GameManager) Play(ctx context.Context) (entity.Outcome, error) {
	that.logger.Info("game started")

	for !that.outcome.IsFinished() {
		if err := ctx.Err(); err != nil {
			return that.outcome, fmt.Errorf("game interrupted: %w", err)
		}

		that.view.PrintState(that.board)
		that.view.AnnounceTurn(that.turn)
		that.view.Prompt()

		cell, err := that.view.RequestValidInput(that.board)
		if err != nil {
			return that.outcome, fmt.Errorf("failed to read move: %w", err)
		}

		if err = that.MakeTurn(cell); err != nil {
			return that.outcome, fmt.Errorf("failed to make turn: %w", err)
		}
	}

	that.logger.Info("game finished", "outcome", that.outcome.String(), "moves", that.moves)

	that.view.PrintResult(that.outcome)
	that.view.PrintBoard(that.board)

	return that.outcome, nil
}

// MakeTurn - applies a validated move for the current player and advances the state.
// The turn passes to the opponent only while the game is in progress.
func (that *GameManager) MakeTurn(cell int) error {
	if that.outcome.IsFinished() {
		return apperror.ErrGameFinished
	}

	outcome, err := tictactoe.MakeTurn(&that.board, that.turn, cell)
	if err != nil {
		return err
	}

	that.moves++
	that.outcome = outcome
	that.logger.Debug("move applied", "player", that.turn.Name(), "position", cell+1, "move", that.moves)

	if !outcome.IsFinished() {
		that.turn = that.turn.Opponent()
	}

	return nil
}

func (that *GameManager) Board() entity.Board {
	return that.board
}

func (that *GameManager) Turn() entity.Player {
	return that.turn
}

func (that *GameManager) Outcome() entity.Outcome {
	return that.outcome
}

// Moves returns the number of moves applied so far.
func (that *GameManager) Moves() int {
	return that.moves
}
