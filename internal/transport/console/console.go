package console

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

const (
	msgBoardHeader    = "The current state of the Tic-tac-toe Board:\n"
	msgPrompt         = "Please enter a valid position to play.\n"
	msgInvalidInput   = "Invalid input, please try again.\n"
	msgPositionPlayed = "That position has already been played, please try again.\n"
)

// Console renders the board and reads moves over a pair of text streams.
type Console struct {
	logger *slog.Logger

	scanner *bufio.Scanner
	output  *termenv.Output
}

// New - creates a console reading whitespace-delimited tokens from in and writing to out.
// With color disabled the output is plain text regardless of the terminal.
func New(logger *slog.Logger, in io.Reader, out io.Writer, color bool) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split((&wordSplitter{}).split)

	var output *termenv.Output
	if color {
		output = termenv.NewOutput(out)
	} else {
		output = termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))
	}

	return &Console{
		logger:  logger.With("component", "console"),
		scanner: scanner,
		output:  output,
	}
}

func (that *Console) write(text string) {
	if _, err := io.WriteString(that.output, text); err != nil {
		that.logger.Error("could not write to console", "error", err)
	}
}
