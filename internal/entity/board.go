package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const BoardSize = 9

// Board holds nine cells in row-major order. An unclaimed cell keeps its
// sentinel value (index+1), a claimed one holds the owner's Player marker.
type Board [BoardSize]int

func NewBoard() Board {
	var board Board
	for i := range board {
		board[i] = Sentinel(i)
	}

	return board
}

// Sentinel - returns the unclaimed value of the cell at index.
func Sentinel(index int) int {
	return index + 1
}

func (that Board) IsClaimed(index int) bool {
	return that[index] != Sentinel(index)
}

// Owner returns NoPlayer for an unclaimed cell.
func (that Board) Owner(index int) Player {
	if !that.IsClaimed(index) {
		return NoPlayer
	}

	return Player(that[index])
}

// Claim - writes the player's marker into an unclaimed cell. Claimed cells are never overwritten.
func (that *Board) Claim(index int, player Player) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if !player.IsValid() {
		return fmt.Errorf("%w: %d", apperror.ErrUnknownPlayer, player)
	}

	if that.IsClaimed(index) {
		return apperror.ErrCellOccupied
	}

	that[index] = int(player)

	return nil
}
