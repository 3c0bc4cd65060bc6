package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg/identifier"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	tracer := telemetry.NoopTracer()
	if conf.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Error("could not set up telemetry, tracing disabled", "error", err)
		} else {
			tracer = telemetry.Tracer("match")

			defer func() {
				if err = shutdown(context.Background()); err != nil {
					log.Error("could not shut down telemetry", "error", err)
				}
			}()
		}
	}

	scores := repository.NewScoreboard()
	matchManager := usecase.NewMatchManager(logger, scores, newRNG(conf.RandomSeed), tracer)

	sessionID := identifier.GenerateSessionID()
	consoleServer := console.New(logger.With("sessionID", sessionID), matchManager, os.Stdin, os.Stdout,
		console.WithReplayFrameDelay(conf.ReplayFrameDelay),
		console.WithColorProfile(console.ProfileFor(conf.Color)),
	)

	// run play session
	sessionErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting play session", "sessionID", sessionID)

		sessionCtx, span := tracer.Start(ctx, "session.run",
			trace.WithAttributes(attribute.String("session.id", sessionID)))
		defer span.End()

		sessionErrCh <- consoleServer.Run(sessionCtx)
	}()

	select {
	case err := <-sessionErrCh:
		if err != nil {
			return fmt.Errorf("play session error: %w", err)
		}
		log.Info("Play session finished")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		// the session notices the cancellation and says its goodbyes
		if err := <-sessionErrCh; err != nil {
			return fmt.Errorf("play session error: %w", err)
		}
		return nil
	}
}

// newRNG - builds the random source for opening turns; a zero seed means
// seed from the clock.
func newRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewSource(seed))
}
