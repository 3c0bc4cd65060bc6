package suite

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

const (
	maxWaitDuration = 10 * time.Second

	replayFrameDelay = time.Millisecond
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Scores  repository.Scoreboard
	Manager *usecase.MatchManager
	Server  *console.Server
	Output  *bytes.Buffer
}

// New - wires a full play session around a scripted terminal input. The seed
// fixes every opening turn, so scripts stay deterministic; OpenerMarks tells
// a test who opens each round.
func New(t *testing.T, seed uint64, input string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	output := &bytes.Buffer{}
	scores := repository.NewScoreboard()
	manager := usecase.NewMatchManager(logger, scores, rand.New(rand.NewSource(seed)), telemetry.NoopTracer())

	server := console.New(logger, manager, strings.NewReader(input), output,
		console.WithReplayFrameDelay(replayFrameDelay),
	)

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Scores:  scores,
		Manager: manager,
		Server:  server,
		Output:  output,
	}
}

// OpenerMarks - replays the random source a suite with the given seed will
// use and returns the opening mark of each of the first n rounds.
func OpenerMarks(seed uint64, rounds int) []string {
	rng := rand.New(rand.NewSource(seed))

	marks := make([]string, 0, rounds)
	for i := 0; i < rounds; i++ {
		if rng.Intn(2) == 0 {
			marks = append(marks, entity.PlayerX)
		} else {
			marks = append(marks, entity.PlayerO)
		}
	}

	return marks
}
