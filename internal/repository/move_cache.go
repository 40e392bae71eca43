package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const moveKeyPrefix = "move:"

type MoveCacheRepository interface {
	Get(ctx context.Context, player entity.Cell, board *entity.Board) (int, error)
	Set(ctx context.Context, player entity.Cell, board *entity.Board, move int) error
	DeleteAll(ctx context.Context) error
}

type dbMoveCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveCacheRepository stores best moves in Redis. A zero ttl keeps
// entries forever.
func NewMoveCacheRepository(client *redis.Client, ttl time.Duration) MoveCacheRepository {
	return &dbMoveCache{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMoveCache) Get(ctx context.Context, player entity.Cell, board *entity.Board) (int, error) {
	move, err := that.client.Get(ctx, moveKey(player, board)).Int()

	if errors.Is(err, redis.Nil) {
		return 0, apperror.ErrMoveNotCached
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get move: %w", err)
	}

	return move, nil
}

func (that *dbMoveCache) Set(ctx context.Context, player entity.Cell, board *entity.Board, move int) error {
	if err := that.client.Set(ctx, moveKey(player, board), move, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

// DeleteAll drops every cached move.
func (that *dbMoveCache) DeleteAll(ctx context.Context) error {
	iter := that.client.Scan(ctx, 0, moveKeyPrefix+"*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan moves: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := that.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete moves: %w", err)
	}

	return nil
}

// moveKey is "move:<player>:<cells>", one character per cell.
func moveKey(player entity.Cell, board *entity.Board) string {
	var sb strings.Builder
	sb.WriteString(moveKeyPrefix)
	sb.WriteString(player.String())
	sb.WriteByte(':')

	for _, cell := range board.Cells() {
		sb.WriteByte(encodeCell(cell))
	}

	return sb.String()
}

func encodeCell(cell entity.Cell) byte {
	switch cell {
	case entity.PlayerX:
		return 'X'
	case entity.PlayerO:
		return 'O'
	default:
		return '-'
	}
}
