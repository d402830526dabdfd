package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/party-games/internal/protocol"
)

const (
	// Redis key
	playerStatsKey  = "player:stats:"
	spinCounterKey  = "counter:spins"
	gamesCounterKey = "counter:games" // hash: 游戏类型 → 参与人次

	// 玩家统计过期时间，长期不玩自动清理
	statsExpiration = 90 * 24 * time.Hour
)

// PlayerStats 玩家统计数据（Redis 序列化用）
type PlayerStats struct {
	PlayerID     string         `json:"player_id"`
	PlayerName   string         `json:"player_name"`
	GamesPlayed  map[string]int `json:"games_played"` // 按游戏类型
	GamesWon     map[string]int `json:"games_won"`
	LastPlayedAt int64          `json:"last_played_at"`
	CreatedAt    int64          `json:"created_at"`
}

// StatsStore 基于 Redis 的对局统计存储
type StatsStore struct {
	redis *redis.Client
}

// NewStatsStore 创建统计存储
func NewStatsStore(client *redis.Client) *StatsStore {
	return &StatsStore{redis: client}
}

// loadStats 读取玩家统计，不存在时返回 nil
func (s *StatsStore) loadStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	data, err := s.redis.Get(ctx, playerStatsKey+playerID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// saveStats 保存玩家统计并刷新过期时间
func (s *StatsStore) saveStats(ctx context.Context, stats *PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, playerStatsKey+stats.PlayerID, data, statsExpiration).Err()
}

// RecordGame 记录一局游戏结果
func (s *StatsStore) RecordGame(ctx context.Context, playerID, playerName, gameType string, won bool) error {
	stats, err := s.loadStats(ctx, playerID)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = &PlayerStats{
			PlayerID:    playerID,
			GamesPlayed: make(map[string]int),
			GamesWon:    make(map[string]int),
			CreatedAt:   time.Now().Unix(),
		}
	}

	stats.PlayerName = playerName
	stats.GamesPlayed[gameType]++
	if won {
		stats.GamesWon[gameType]++
	}
	stats.LastPlayedAt = time.Now().Unix()

	if err := s.redis.HIncrBy(ctx, gamesCounterKey, gameType, 1).Err(); err != nil {
		return err
	}
	return s.saveStats(ctx, stats)
}

// TotalGames 各游戏类型的全局参与人次
func (s *StatsStore) TotalGames(ctx context.Context) (map[string]int64, error) {
	raw, err := s.redis.HGetAll(ctx, gamesCounterKey).Result()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(raw))
	for gameType, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		counts[gameType] = n
	}
	return counts, nil
}

// GetPlayerStats 获取玩家统计，从未玩过的玩家返回空统计
func (s *StatsStore) GetPlayerStats(ctx context.Context, playerID string) (*protocol.StatsPayload, error) {
	stats, err := s.loadStats(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return &protocol.StatsPayload{
			PlayerID:    playerID,
			GamesPlayed: map[string]int{},
			GamesWon:    map[string]int{},
		}, nil
	}
	return &protocol.StatsPayload{
		PlayerID:     stats.PlayerID,
		GamesPlayed:  stats.GamesPlayed,
		GamesWon:     stats.GamesWon,
		LastPlayedAt: stats.LastPlayedAt,
	}, nil
}

// RecordSpin 全局转盘计数 +1
func (s *StatsStore) RecordSpin(ctx context.Context) error {
	return s.redis.Incr(ctx, spinCounterKey).Err()
}

// TotalSpins 全局转盘累计次数
func (s *StatsStore) TotalSpins(ctx context.Context) (int64, error) {
	n, err := s.redis.Get(ctx, spinCounterKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}
