package console

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return New(logger, strings.NewReader(input), out, false), out
}

func claimed(t *testing.T, moves map[int]entity.Player) entity.Board {
	t.Helper()

	board := entity.NewBoard()
	for index, player := range moves {
		require.NoError(t, board.Claim(index, player))
	}

	return board
}

func TestConsole_PrintBoard(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		// Given: a console and a new board
		console, out := newTestConsole("")

		// When: the board is printed
		console.PrintBoard(entity.NewBoard())

		// Then: every cell shows its position number
		assert.Equal(t, "\n 1 2 3\n 4 5 6\n 7 8 9\n\n", out.String())
	})

	t.Run("Claimed cells show markers", func(t *testing.T) {
		// Given: A owns 1 and 5, B owns 9
		console, out := newTestConsole("")
		board := claimed(t, map[int]entity.Player{0: entity.PlayerA, 4: entity.PlayerA, 8: entity.PlayerB})

		// When: the board is printed
		console.PrintBoard(board)

		// Then: claimed cells are replaced by player letters
		assert.Equal(t, "\n A 2 3\n 4 A 6\n 7 8 B\n\n", out.String())
	})

	t.Run("Colour on a non-terminal writer stays plain", func(t *testing.T) {
		// Given: a console with colour enabled writing to a buffer
		t.Setenv("CLICOLOR_FORCE", "")
		out := &bytes.Buffer{}
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		console := New(logger, strings.NewReader(""), out, true)

		// When: the board is printed
		console.PrintBoard(claimed(t, map[int]entity.Player{2: entity.PlayerB}))

		// Then: the output contains no escape sequences
		assert.Equal(t, "\n 1 2 B\n 4 5 6\n 7 8 9\n\n", out.String())
	})
}

func TestConsole_Messages(t *testing.T) {
	console, out := newTestConsole("")

	console.PrintState(entity.NewBoard())
	console.AnnounceTurn(entity.PlayerA)
	console.AnnounceTurn(entity.PlayerB)
	console.Prompt()
	console.PrintResult(entity.OutcomeDraw)

	expected := "The current state of the Tic-tac-toe Board:\n" +
		"\n 1 2 3\n 4 5 6\n 7 8 9\n\n" +
		"It is Player A's turn.\n" +
		"It is Player B's turn.\n" +
		"Please enter a valid position to play.\n" +
		"It's a draw!\n"
	assert.Equal(t, expected, out.String())
}

func TestParseMove(t *testing.T) {
	board := claimed(t, map[int]entity.Player{4: entity.PlayerA})

	t.Run("Valid positions", func(t *testing.T) {
		index, err := ParseMove("1", board)
		require.NoError(t, err)
		assert.Equal(t, 0, index)

		index, err = ParseMove("9", board)
		require.NoError(t, err)
		assert.Equal(t, 8, index)
	})

	t.Run("Invalid input", func(t *testing.T) {
		for _, token := range []string{"0", "10", "-3", "abc", "5x", ""} {
			_, err := ParseMove(token, board)
			assert.ErrorIs(t, err, apperror.ErrInvalidInput, "token %q", token)
		}
	})

	t.Run("Position already played", func(t *testing.T) {
		_, err := ParseMove("5", board)
		assert.ErrorIs(t, err, apperror.ErrPositionPlayed)
	})
}

func TestConsole_RequestValidInput(t *testing.T) {
	t.Run("Out of range input is rejected", func(t *testing.T) {
		// Given: the player types 10 and then 3
		console, out := newTestConsole("10\n3\n")
		board := entity.NewBoard()

		// When: a valid move is requested
		index, err := console.RequestValidInput(board)

		// Then: 10 is rejected with a message and 3 is accepted
		require.NoError(t, err)
		assert.Equal(t, 2, index)
		assert.Equal(t, "Invalid input, please try again.\n", out.String())
		assert.Equal(t, entity.NewBoard(), board)
	})

	t.Run("Non-numeric tokens are rejected", func(t *testing.T) {
		// Given: words mixed with a number on one line
		console, out := newTestConsole("foo bar 7")

		// When: a valid move is requested
		index, err := console.RequestValidInput(entity.NewBoard())

		// Then: each word produces a diagnostic
		require.NoError(t, err)
		assert.Equal(t, 6, index)
		assert.Equal(t, strings.Repeat("Invalid input, please try again.\n", 2), out.String())
	})

	t.Run("Played position is rejected", func(t *testing.T) {
		// Given: cell 5 belongs to player A
		console, out := newTestConsole("5 6")
		board := claimed(t, map[int]entity.Player{4: entity.PlayerA})

		// When: player B asks for 5 and then 6
		index, err := console.RequestValidInput(board)

		// Then: 5 is reported as already played
		require.NoError(t, err)
		assert.Equal(t, 5, index)
		assert.Equal(t, "That position has already been played, please try again.\n", out.String())
	})

	t.Run("Oversized token is rejected once", func(t *testing.T) {
		// Given: a 70000 character word followed by 3
		console, out := newTestConsole(strings.Repeat("x", 70000) + " 3")

		// When: a valid move is requested
		index, err := console.RequestValidInput(entity.NewBoard())

		// Then: the long word gets a single diagnostic and 3 is accepted
		require.NoError(t, err)
		assert.Equal(t, 2, index)
		assert.Equal(t, "Invalid input, please try again.\n", out.String())
	})

	t.Run("Oversized token at end of input", func(t *testing.T) {
		// Given: the input is one 70000 character word
		console, out := newTestConsole(strings.Repeat("9", 70000))

		// When: a valid move is requested
		_, err := console.RequestValidInput(entity.NewBoard())

		// Then: the word is rejected before the input runs out
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.Equal(t, "Invalid input, please try again.\n", out.String())
	})

	t.Run("End of input", func(t *testing.T) {
		// Given: the input ends after an invalid token
		console, _ := newTestConsole("x")

		// When: a valid move is requested
		_, err := console.RequestValidInput(entity.NewBoard())

		// Then: io.ErrUnexpectedEOF is returned
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}
