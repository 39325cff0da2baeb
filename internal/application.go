package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - plays a single game over the given streams.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	view := console.New(logger, in, out, conf.Color)
	gameManager := usecase.NewGameManager(logger, view)

	outcome, err := gameManager.Play(ctx)
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	log.Debug("application finished", "outcome", outcome.String())

	return nil
}
