package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg/identifier"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

var ErrMatchAlreadyStarted = errors.New("match already started")

type scoreboard interface {
	AddWin(playerName string) int
	Wins(playerName string) int
	Totals() map[string]int
}

// MatchManager - drives one match between two players: rounds, moves and the
// running score. A win is credited exactly once, at the moment a round
// transitions to finished.
type MatchManager struct {
	logger *slog.Logger
	scores scoreboard
	rng    *rand.Rand
	tracer trace.Tracer

	game    *entity.Game
	round   int
	roundID string
}

func NewMatchManager(logger *slog.Logger, scores scoreboard, rng *rand.Rand, tracer trace.Tracer) *MatchManager {
	return &MatchManager{
		logger: logger,

		scores: scores,
		rng:    rng,
		tracer: tracer,
	}
}

// NewMatch - creates the match game and starts its first round.
func (that *MatchManager) NewMatch(ctx context.Context, player1Name, player2Name string) (*entity.Game, error) {
	if that.game != nil {
		return nil, ErrMatchAlreadyStarted
	}

	that.game = entity.NewGame(player1Name, player2Name)

	that.logger.Info("match started", "player1", player1Name, "player2", player2Name)

	return that.StartNextRound(ctx)
}

// StartNextRound - resets the board and opens the next round with a random
// starting player.
func (that *MatchManager) StartNextRound(ctx context.Context) (*entity.Game, error) {
	if that.game == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	that.game.Reset(that.rng)
	that.round++
	that.roundID = identifier.GenerateRoundID()

	_, span := that.tracer.Start(ctx, "round.start",
		trace.WithAttributes(
			attribute.Int("round.number", that.round),
			attribute.String("round.id", that.roundID),
			attribute.String("round.opening_mark", that.game.Turn),
		))
	span.End()

	that.logger.Info("round started", "round", that.round, "roundID", that.roundID, "turn", that.game.Turn)

	return that.game, nil
}

// ApplyMove - applies a move for the player holding the turn, at a 1-based
// board position. When the move decides the round, the winner's score is
// credited before returning.
func (that *MatchManager) ApplyMove(ctx context.Context, position int) (*entity.Game, error) {
	if that.game == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	_, span := that.tracer.Start(ctx, "round.move",
		trace.WithAttributes(
			attribute.Int("board.position", position),
			attribute.String("player.mark", that.game.Turn),
		))
	defer span.End()

	if err := tictactoe.ApplyMove(that.game, position); err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	if that.game.IsFinished() {
		that.settleRound(span)
	}

	return that.game, nil
}

// settleRound - records the round's outcome. ApplyMove rejects moves on a
// finished round, so a round settles at most once.
func (that *MatchManager) settleRound(span trace.Span) {
	log := that.logger.With("method", "settleRound")

	span.SetAttributes(
		attribute.String("round.id", that.roundID),
		attribute.Int("round.moves", len(that.game.Moves)),
		attribute.Bool("round.draw", that.game.IsDraw()),
	)

	if that.game.IsDraw() {
		log.Info("round finished in a draw", "round", that.round, "moves", len(that.game.Moves))
		return
	}

	winner := that.game.WinnerPlayer()
	total := that.scores.AddWin(winner.Name)

	span.SetAttributes(attribute.String("round.winner", winner.Name))

	log.Info("round finished", "round", that.round, "winner", winner.Name, "wins", total)
}

// Game - returns the match game, nil before NewMatch.
func (that *MatchManager) Game() *entity.Game {
	return that.game
}

// Round - returns the current round number, starting at 1.
func (that *MatchManager) Round() int {
	return that.round
}

// RoundID - returns the current round's id.
func (that *MatchManager) RoundID() string {
	return that.roundID
}

// Wins - returns the named player's running win total.
func (that *MatchManager) Wins(playerName string) int {
	return that.scores.Wins(playerName)
}

// Scores - returns a copy of all win totals recorded this match.
func (that *MatchManager) Scores() map[string]int {
	return that.scores.Totals()
}
