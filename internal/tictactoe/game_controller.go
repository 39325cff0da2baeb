package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// WinCombos lists the lines in the order they are checked: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// MakeTurn - claims the cell for the player and evaluates the board afterwards.
func MakeTurn(board *entity.Board, player entity.Player, cell int) (entity.Outcome, error) {
	if err := board.Claim(cell, player); err != nil {
		return entity.OutcomeInProgress, fmt.Errorf("invalid turn: %w", err)
	}

	return CheckGameStatus(*board), nil
}

// CheckGameStatus - a winner takes priority over a full board.
func CheckGameStatus(board entity.Board) entity.Outcome {
	if winner := Winner(board); winner != entity.NoPlayer {
		return entity.OutcomeFor(winner)
	}

	if IsDraw(board) {
		return entity.OutcomeDraw
	}

	return entity.OutcomeInProgress
}

// Winner returns the owner of the first completed line, or entity.NoPlayer.
func Winner(board entity.Board) entity.Player {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		// sentinels are distinct per cell, so only markers can match
		if a == b && b == c {
			return board.Owner(combo[0])
		}
	}

	return entity.NoPlayer
}

// IsDraw reports whether no cell holds its sentinel any more, i.e. the board is full.
// Callers check Winner first.
func IsDraw(board entity.Board) bool {
	for i := range board {
		if !board.IsClaimed(i) {
			return false
		}
	}

	return true
}
