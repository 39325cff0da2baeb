package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// ParseMove - validates one token against the board and returns the zero-based cell index.
func ParseMove(token string, board entity.Board) (int, error) {
	position, err := strconv.Atoi(token)
	if err != nil || position < 1 || position > entity.BoardSize {
		return -1, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, token)
	}

	index := position - 1
	if board.IsClaimed(index) {
		return -1, fmt.Errorf("%w: %d", apperror.ErrPositionPlayed, position)
	}

	return index, nil
}

// RequestValidInput - reads tokens until one names an unclaimed cell.
// It fails only when the input stream ends or cannot be read.
func (that *Console) RequestValidInput(board entity.Board) (int, error) {
	for {
		token, err := that.readToken()
		if err != nil {
			return -1, err
		}

		index, err := ParseMove(token, board)
		if err == nil {
			return index, nil
		}

		that.logger.Debug("rejected move", "input", token, "error", err)

		if errors.Is(err, apperror.ErrPositionPlayed) {
			that.write(msgPositionPlayed)
		} else {
			that.write(msgInvalidInput)
		}
	}
}

func (that *Console) readToken() (string, error) {
	if that.scanner.Scan() {
		return that.scanner.Text(), nil
	}

	if err := that.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return "", io.ErrUnexpectedEOF
}
