package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const defaultReplayFrameDelay = time.Second

type uMatch interface {
	NewMatch(ctx context.Context, player1Name, player2Name string) (*entity.Game, error)
	StartNextRound(ctx context.Context) (*entity.Game, error)
	ApplyMove(ctx context.Context, position int) (*entity.Game, error)

	Wins(playerName string) int
}

type Option func(*Server)

// WithReplayFrameDelay - overrides the pause between replay frames.
func WithReplayFrameDelay(delay time.Duration) Option {
	return func(that *Server) {
		that.replayFrameDelay = delay
	}
}

// WithColorProfile - overrides the terminal color profile used for marks.
func WithColorProfile(profile termenv.Profile) Option {
	return func(that *Server) {
		that.profile = profile
	}
}

// Server - drives one interactive play session over a line-based terminal.
type Server struct {
	logger *slog.Logger
	uMatch uMatch

	reader   *lineReader
	out      io.Writer
	renderer *Renderer
	profile  termenv.Profile

	replayFrameDelay time.Duration
}

func New(logger *slog.Logger, uMatch uMatch, in io.Reader, out io.Writer, opts ...Option) *Server {
	server := &Server{
		logger: logger,
		uMatch: uMatch,

		reader: newLineReader(bufio.NewReader(in)),
		out:    out,

		profile:          termenv.Ascii,
		replayFrameDelay: defaultReplayFrameDelay,
	}

	for _, opt := range opts {
		opt(server)
	}

	server.renderer = NewRenderer(out, server.profile)

	return server
}

// Run - plays rounds until a player declines a rematch or the input ends.
// A closed input stream or a cancelled context ends the session cleanly.
func (that *Server) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	player1Name, err := that.prompt(ctx, askPlayer1NameText)
	if err != nil {
		return that.endAbruptly(log, err)
	}

	player2Name, err := that.prompt(ctx, askPlayer2NameText)
	if err != nil {
		return that.endAbruptly(log, err)
	}

	game, err := that.uMatch.NewMatch(ctx, player1Name, player2Name)
	if err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}

	for {
		if err = that.playRound(ctx, game); err != nil {
			if isInputEnd(err) {
				return that.endAbruptly(log, err)
			}
			return err
		}

		that.showResult(game)

		viewReplay, err := that.promptYesNo(ctx, askReplayText)
		if err != nil {
			return that.endAbruptly(log, err)
		}
		if viewReplay {
			that.showReplay(ctx, game)
		}

		playAgain, err := that.promptYesNo(ctx, askPlayAgainText)
		if err != nil {
			return that.endAbruptly(log, err)
		}
		if !playAgain {
			break
		}

		game, err = that.uMatch.StartNextRound(ctx)
		if err != nil {
			return fmt.Errorf("failed to start next round: %w", err)
		}
	}

	that.sendLine(farewellText)

	return nil
}

// playRound - prompts the player holding the turn for moves until the round
// is decided, echoing the board after every accepted move.
func (that *Server) playRound(ctx context.Context, game *entity.Game) error {
	that.sendLine(howToMoveText)

	for !game.IsFinished() {
		that.sendLine(turnPromptText, game.PlayerToMove().Name)

		line, err := that.reader.ReadLine(ctx)
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		position, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			that.sendError(invalidMoveText)
			continue
		}

		if _, err = that.uMatch.ApplyMove(ctx, position); err != nil {
			switch {
			case errors.Is(err, apperror.ErrInvalidPosition):
				that.sendError(invalidMoveText)
			case errors.Is(err, apperror.ErrCellOccupied):
				that.sendError(cellOccupiedText)
			default:
				return fmt.Errorf("failed to apply move: %w", err)
			}
			continue
		}

		that.renderer.RenderGrid(game.CompileBoard(nil))
	}

	return nil
}

// showResult - announces the round's outcome and the running score.
func (that *Server) showResult(game *entity.Game) {
	if winner := game.WinnerPlayer(); winner != nil {
		that.sendLine(winnerText, winner.Name)
	} else {
		that.sendLine(drawText)
	}

	player1, player2 := game.Players[0], game.Players[1]
	that.sendLine("\n"+scoreLineText, player1.Name, that.uMatch.Wins(player1.Name))
	that.sendLine(scoreLineText+"\n", player2.Name, that.uMatch.Wins(player2.Name))
}

// showReplay - plays the round back one board per move, pausing between
// frames. A cancelled context cuts the replay short.
func (that *Server) showReplay(ctx context.Context, game *entity.Game) {
	for _, grid := range game.Replay() {
		that.renderer.RenderGrid(grid)

		select {
		case <-ctx.Done():
			return
		case <-time.After(that.replayFrameDelay):
		}
	}
}

func (that *Server) prompt(ctx context.Context, question string) (string, error) {
	that.sendLine(question)

	line, err := that.reader.ReadLine(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// promptYesNo - asks a question and reports whether the answer was "y"; any
// other answer means no.
func (that *Server) promptYesNo(ctx context.Context, question string) (bool, error) {
	answer, err := that.prompt(ctx, question)
	if err != nil {
		return false, err
	}

	return strings.ToLower(answer) == "y", nil
}

// endAbruptly - closes out a session whose input went away mid-game.
func (that *Server) endAbruptly(log *slog.Logger, err error) error {
	that.sendLine(interruptText)

	log.Info("session ended abruptly", "reason", err)

	return nil
}

func (that *Server) sendLine(format string, a ...interface{}) {
	SendText(that.out, format+"\n", a...)
}

func (that *Server) sendError(message string) {
	SendText(that.out, "\n"+message+"\n\n")
}

func isInputEnd(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
