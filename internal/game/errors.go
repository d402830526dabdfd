package game

import (
	"github.com/palemoky/party-games/internal/protocol"
	"github.com/palemoky/party-games/internal/server/types"
)

// RoomError 别名，省去游戏逻辑里到处写 types 前缀
type RoomError = types.RoomError

// 预定义的房间操作错误
var (
	ErrRoomNotFound = &RoomError{Code: protocol.ErrCodeRoomNotFound, Message: "房间号无效"}
	ErrRoomFull     = &RoomError{Code: protocol.ErrCodeRoomFull, Message: "房间已满"}
	ErrNotInRoom    = &RoomError{Code: protocol.ErrCodeNotInRoom, Message: "您不在房间中"}
	ErrGameStarted  = &RoomError{Code: protocol.ErrCodeGameStarted, Message: "游戏已经开始了"}
	ErrGameNotStart = &RoomError{Code: protocol.ErrCodeGameNotStart, Message: "游戏尚未开始"}
	ErrNotHost      = &RoomError{Code: protocol.ErrCodeNotHost, Message: "只有房主可以进行此操作"}
	ErrNotYourTurn  = &RoomError{Code: protocol.ErrCodeNotYourTurn, Message: "还没轮到您"}
	ErrAlreadyActed = &RoomError{Code: protocol.ErrCodeAlreadyActed, Message: "您本轮已经操作过了"}
	ErrOutOfPhase   = &RoomError{Code: protocol.ErrCodeOutOfPhase, Message: "当前阶段不能进行此操作"}
)

// playerCountError 人数条件不满足的错误
func playerCountError(text string) *RoomError {
	return &RoomError{Code: protocol.ErrCodePlayerCount, Message: text}
}
