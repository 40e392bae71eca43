package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type moveCache interface {
	Get(ctx context.Context, player entity.Cell, board *entity.Board) (int, error)
	Set(ctx context.Context, player entity.Cell, board *entity.Board, move int) error
}

// Options configures a match. In VsAI mode the human plays AIMark's
// opponent and every accepted human move is answered by the engine.
type Options struct {
	VsAI        bool
	AIMark      entity.Cell
	FirstPlayer entity.Cell
}

// DefaultOptions mirrors the classic setup: O opens, the computer plays X.
func DefaultOptions() Options {
	return Options{
		VsAI:        false,
		AIMark:      entity.PlayerX,
		FirstPlayer: entity.PlayerO,
	}
}

// Match drives one game session on a single board. It is not safe for
// concurrent use.
type Match struct {
	logger *slog.Logger
	cache  moveCache
	stats  *CalcStats

	id      string
	opts    Options
	board   *entity.Board
	turn    entity.Cell
	outcome tictactoe.Outcome
	lastAI  int
}

// NewMatch creates a match on an empty board. cache may be nil.
func NewMatch(logger *slog.Logger, cache moveCache, opts Options) (*Match, error) {
	if !opts.AIMark.IsPlayer() {
		return nil, fmt.Errorf("%w: ai mark %q", apperror.ErrInvalidMark, opts.AIMark)
	}

	if opts.VsAI {
		opts.FirstPlayer = opts.AIMark.Opponent()
	}

	if !opts.FirstPlayer.IsPlayer() {
		return nil, fmt.Errorf("%w: first player %q", apperror.ErrInvalidMark, opts.FirstPlayer)
	}

	id := uuid.NewString()

	match := &Match{
		logger: logger.With("component", "match", "match_id", id),
		cache:  cache,
		stats:  NewCalcStats(defaultStatsWindow),
		id:     id,
		opts:   opts,
		board:  entity.NewBoard(),
	}
	match.Reset()

	return match, nil
}

func (that *Match) ID() string {
	return that.id
}

// Reset empties the board and starts over with the first player.
func (that *Match) Reset() {
	that.board.Reset()
	that.turn = that.opts.FirstPlayer
	that.outcome = tictactoe.Outcome{Line: []int{}, Player: that.turn}
	that.lastAI = -1

	that.logger.Debug("match reset")
}

// Play puts the current player's mark at row, col. In VsAI mode the engine
// replies before Play returns.
func (that *Match) Play(ctx context.Context, row, col int) (*entity.Match, error) {
	if that.outcome.Concluded {
		return that.State(), apperror.ErrGameFinished
	}

	if !that.board.InBounds(row, col) {
		return that.State(), fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, row, col)
	}

	if !that.board.Place(row, col, that.turn) {
		return that.State(), fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, row, col)
	}

	that.logger.Debug("move played", "player", that.turn.String(), "row", row, "col", col)

	if that.conclude(that.turn) {
		return that.State(), nil
	}

	if !that.opts.VsAI {
		that.turn = that.turn.Opponent()

		return that.State(), nil
	}

	if err := that.replyAsAI(ctx); err != nil {
		return that.State(), fmt.Errorf("failed ai reply: %w", err)
	}

	return that.State(), nil
}

// AutoMove plays the engine's choice for the current player.
func (that *Match) AutoMove(ctx context.Context) (*entity.Match, error) {
	if that.outcome.Concluded {
		return that.State(), apperror.ErrGameFinished
	}

	move, err := that.bestMove(ctx, that.turn)
	if err != nil {
		return that.State(), fmt.Errorf("failed find best move: %w", err)
	}

	row, col := that.board.RowCol(move)

	return that.Play(ctx, row, col)
}

// RowCol converts a flat board index to row and col.
func (that *Match) RowCol(idx int) (int, int) {
	return that.board.RowCol(idx)
}

func (that *Match) Stats() Stats {
	return that.stats.Snapshot()
}

// State returns a snapshot of the session.
func (that *Match) State() *entity.Match {
	matchType := entity.TwoPlayersType
	if that.opts.VsAI {
		matchType = entity.WithBotType
	}

	state := entity.NewMatchSnapshot(that.id, matchType, that.board, that.turn)
	state.LastAIMove = that.lastAI

	if that.outcome.Concluded {
		state.Status = entity.StatusFinished
		state.Turn = ""
		state.Winner = entity.MarkTie
		state.Line = append(state.Line, that.outcome.Line...)

		if that.outcome.IsWin() {
			state.Winner = that.outcome.Player.String()
		}
	}

	return state
}

func (that *Match) replyAsAI(ctx context.Context) error {
	move, err := that.bestMove(ctx, that.opts.AIMark)
	if err != nil {
		return err
	}

	if !that.board.PlaceAt(move, that.opts.AIMark) {
		return fmt.Errorf("%w: index %d", apperror.ErrCellOccupied, move)
	}

	that.lastAI = move
	that.logger.Debug("ai move played", "player", that.opts.AIMark.String(), "index", move)

	that.conclude(that.opts.AIMark)

	return nil
}

// conclude records the outcome once mover's move ended the game.
func (that *Match) conclude(mover entity.Cell) bool {
	outcome := tictactoe.FindWinner(that.board, mover)
	if !outcome.Concluded {
		return false
	}

	that.outcome = outcome
	that.logger.Info("match concluded", "winner", outcome.Player.String(), "line", outcome.Line, "moves", that.board.MoveCount())

	return true
}

// bestMove asks the cache first and falls back to a full search.
func (that *Match) bestMove(ctx context.Context, player entity.Cell) (int, error) {
	log := that.logger.With("method", "bestMove")

	if that.cache != nil {
		move, err := that.cache.Get(ctx, player, that.board)
		switch {
		case err == nil && move >= 0 && move < that.board.Size() && that.board.At(move) == entity.Empty:
			log.Debug("cached move", "index", move)
			return move, nil
		case err != nil && !errors.Is(err, apperror.ErrMoveNotCached):
			log.Warn("failed to read move cache", "error", err)
		}
	}

	start := time.Now()
	move, err := tictactoe.FindBestMove(that.board, player)
	elapsed := time.Since(start)
	if err != nil {
		return 0, fmt.Errorf("search failed: %w", err)
	}

	that.stats.Add(elapsed)
	log.Debug("move calculated", "index", move, "elapsed", elapsed)

	if that.cache != nil {
		if err = that.cache.Set(ctx, player, that.board, move); err != nil {
			log.Warn("failed to write move cache", "error", err)
		}
	}

	return move, nil
}
