package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestStatsStore(t *testing.T) (*StatsStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return NewStatsStore(client), mr
}

func TestStatsStore_RecordGame_NewPlayer(t *testing.T) {
	t.Parallel()

	s, mr := newTestStatsStore(t)
	defer mr.Close()
	ctx := context.Background()

	err := s.RecordGame(ctx, "p1", "Alice", "undercover", true)
	assert.NoError(t, err)

	stats, err := s.GetPlayerStats(ctx, "p1")
	assert.NoError(t, err)
	assert.Equal(t, "p1", stats.PlayerID)
	assert.Equal(t, 1, stats.GamesPlayed["undercover"])
	assert.Equal(t, 1, stats.GamesWon["undercover"])
	assert.NotZero(t, stats.LastPlayedAt)
}

func TestStatsStore_RecordGame_Accumulates(t *testing.T) {
	t.Parallel()

	s, mr := newTestStatsStore(t)
	defer mr.Close()
	ctx := context.Background()

	assert.NoError(t, s.RecordGame(ctx, "p1", "Alice", "undercover", true))
	assert.NoError(t, s.RecordGame(ctx, "p1", "Alice", "undercover", false))
	assert.NoError(t, s.RecordGame(ctx, "p1", "Alice", "hotseat", false))

	stats, err := s.GetPlayerStats(ctx, "p1")
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.GamesPlayed["undercover"])
	assert.Equal(t, 1, stats.GamesWon["undercover"])
	assert.Equal(t, 1, stats.GamesPlayed["hotseat"])
	assert.Equal(t, 0, stats.GamesWon["hotseat"])
}

func TestStatsStore_GetPlayerStats_Unknown(t *testing.T) {
	t.Parallel()

	s, mr := newTestStatsStore(t)
	defer mr.Close()

	// Unknown player gets empty stats, not an error
	stats, err := s.GetPlayerStats(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Empty(t, stats.GamesPlayed)
	assert.Empty(t, stats.GamesWon)
	assert.Zero(t, stats.LastPlayedAt)
}

func TestStatsStore_TotalGames(t *testing.T) {
	t.Parallel()

	s, mr := newTestStatsStore(t)
	defer mr.Close()
	ctx := context.Background()

	counts, err := s.TotalGames(ctx)
	assert.NoError(t, err)
	assert.Empty(t, counts)

	// Counted once per participant, so two players in one game count twice
	assert.NoError(t, s.RecordGame(ctx, "p1", "Alice", "undercover", true))
	assert.NoError(t, s.RecordGame(ctx, "p2", "Bob", "undercover", false))
	assert.NoError(t, s.RecordGame(ctx, "p1", "Alice", "hotseat", false))

	counts, err = s.TotalGames(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), counts["undercover"])
	assert.Equal(t, int64(1), counts["hotseat"])
}

func TestStatsStore_RecordSpin(t *testing.T) {
	t.Parallel()

	s, mr := newTestStatsStore(t)
	defer mr.Close()
	ctx := context.Background()

	total, err := s.TotalSpins(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)

	assert.NoError(t, s.RecordSpin(ctx))
	assert.NoError(t, s.RecordSpin(ctx))

	total, err = s.TotalSpins(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
