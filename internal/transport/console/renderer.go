package console

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var markerColors = map[entity.Player]string{
	entity.PlayerA: "1",
	entity.PlayerB: "4",
}

// PrintBoard - prints the board as a 3x3 grid padded by blank lines.
func (that *Console) PrintBoard(board entity.Board) {
	var sb strings.Builder

	sb.WriteString("\n")
	for row := 0; row < entity.BoardSize; row += 3 {
		for i := row; i < row+3; i++ {
			sb.WriteString(" ")
			sb.WriteString(that.cell(board, i))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	that.write(sb.String())
}

// PrintState - prints the header line followed by the board.
func (that *Console) PrintState(board entity.Board) {
	that.write(msgBoardHeader)
	that.PrintBoard(board)
}

func (that *Console) AnnounceTurn(player entity.Player) {
	that.write("It is Player " + player.Name() + "'s turn.\n")
}

func (that *Console) Prompt() {
	that.write(msgPrompt)
}

func (that *Console) PrintResult(outcome entity.Outcome) {
	that.write(outcome.String() + "\n")
}

func (that *Console) cell(board entity.Board, index int) string {
	owner := board.Owner(index)
	if owner == entity.NoPlayer {
		return strconv.Itoa(board[index])
	}

	return that.output.String(owner.Name()).
		Foreground(that.output.Color(markerColors[owner])).
		Bold().
		String()
}
