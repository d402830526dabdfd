//go:build !production

package testutil

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/party-games/internal/protocol"
)

// MockStats 对局统计 mock
type MockStats struct {
	mock.Mock
}

func (m *MockStats) RecordGame(ctx context.Context, playerID, playerName, gameType string, won bool) error {
	args := m.Called(ctx, playerID, playerName, gameType, won)
	return args.Error(0)
}

func (m *MockStats) RecordSpin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStats) GetPlayerStats(ctx context.Context, playerID string) (*protocol.StatsPayload, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*protocol.StatsPayload), args.Error(1)
}

// GameRecord 一条对局记录
type GameRecord struct {
	PlayerID string
	GameType string
	Won      bool
}

// RecordingStats 内存版统计，记录所有调用供断言（对局结束在 goroutine 里上报，需要加锁）
type RecordingStats struct {
	mu    sync.Mutex
	Games []GameRecord
	Spins int
}

func (s *RecordingStats) RecordGame(_ context.Context, playerID, _, gameType string, won bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Games = append(s.Games, GameRecord{PlayerID: playerID, GameType: gameType, Won: won})
	return nil
}

func (s *RecordingStats) RecordSpin(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Spins++
	return nil
}

// SpinCount 返回累计转动次数
func (s *RecordingStats) SpinCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Spins
}

// Snapshot 返回对局记录的副本
func (s *RecordingStats) Snapshot() []GameRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]GameRecord, len(s.Games))
	copy(out, s.Games)
	return out
}

func (s *RecordingStats) GetPlayerStats(_ context.Context, playerID string) (*protocol.StatsPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &protocol.StatsPayload{
		PlayerID:    playerID,
		GamesPlayed: map[string]int{},
		GamesWon:    map[string]int{},
	}
	for _, g := range s.Games {
		if g.PlayerID != playerID {
			continue
		}
		stats.GamesPlayed[g.GameType]++
		if g.Won {
			stats.GamesWon[g.GameType]++
		}
	}
	return stats, nil
}
