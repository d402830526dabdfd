package types

import (
	"context"

	"github.com/palemoky/party-games/internal/protocol"
)

// ClientInterface 客户端接口
type ClientInterface interface {
	GetID() string
	GetName() string
	SetName(name string)
	GetRoom() string
	SetRoom(roomCode string)
	SendMessage(msg *protocol.Message)
	Close()
}

// ServerContext 服务器上下文接口 - 避免循环依赖
type ServerContext interface {
	IsMaintenanceMode() bool
	GetOnlineCount() int
}

// StatsRecorder 对局统计接口，未配置 Redis 时为 nil
type StatsRecorder interface {
	RecordGame(ctx context.Context, playerID, playerName, gameType string, won bool) error
	RecordSpin(ctx context.Context) error
	GetPlayerStats(ctx context.Context, playerID string) (*protocol.StatsPayload, error)
}

// RoomError 房间错误
type RoomError struct {
	Code    int
	Message string
}

func (e *RoomError) Error() string {
	return e.Message
}
