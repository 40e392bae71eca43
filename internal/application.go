package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the configured number of engine self-play matches.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	opts, err := matchOptions(conf)
	if err != nil {
		return err
	}

	newMatch := func() (*usecase.Match, error) {
		return usecase.NewMatch(logger, nil, opts)
	}

	if conf.MoveCache.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		moveCache := repository.NewMoveCacheRepository(redisStorage, conf.MoveCache.TTL)
		if conf.MoveCache.FlushOnStart {
			if err = moveCache.DeleteAll(ctx); err != nil {
				return fmt.Errorf("could not flush move cache: %w", err)
			}
		}

		newMatch = func() (*usecase.Match, error) {
			return usecase.NewMatch(logger, moveCache, opts)
		}
	}

	for game := range conf.Match.SelfPlayGames {
		match, err := newMatch()
		if err != nil {
			return fmt.Errorf("failed create match: %w", err)
		}

		state, err := selfPlay(ctx, match)
		if err != nil {
			return fmt.Errorf("self-play game %d failed: %w", game+1, err)
		}

		stats := match.Stats()
		log.Info("Self-play game finished",
			"game", game+1,
			"match_id", state.ID,
			"winner", state.Winner,
			"line", state.Line,
			"board", state.Board,
			"last_calc", stats.Last,
			"longest_calc", stats.Longest,
			"shortest_calc", stats.Shortest,
		)
	}

	return nil
}

// selfPlay lets the engine move for both sides until the match is over.
func selfPlay(ctx context.Context, match *usecase.Match) (*entity.Match, error) {
	state := match.State()

	for !state.IsFinished() {
		if err := ctx.Err(); err != nil {
			return state, fmt.Errorf("interrupted: %w", err)
		}

		var err error
		if state, err = match.AutoMove(ctx); err != nil {
			return state, err
		}
	}

	return state, nil
}

func matchOptions(conf *config.Config) (usecase.Options, error) {
	opts := usecase.DefaultOptions()

	aiMark, err := entity.ParseCell(conf.Match.AIMark)
	if err != nil {
		return opts, fmt.Errorf("invalid ai mark: %w", err)
	}

	firstPlayer, err := entity.ParseCell(conf.Match.FirstPlayer)
	if err != nil {
		return opts, fmt.Errorf("invalid first player: %w", err)
	}

	opts.VsAI = conf.Match.VsAI
	opts.AIMark = aiMark
	opts.FirstPlayer = firstPlayer

	return opts, nil
}
