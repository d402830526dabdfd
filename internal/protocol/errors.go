package protocol

// 错误码
const (
	ErrCodeUnknown           = 1000
	ErrCodeInvalidMsg        = 1001
	ErrCodeRateLimit         = 1002 // 速率限制
	ErrCodeRoomNotFound      = 2001 // 房间号无效
	ErrCodeRoomFull          = 2002
	ErrCodeNotInRoom         = 2003
	ErrCodeGameStarted       = 2004 // 游戏已开始，无法加入
	ErrCodeGameNotStart      = 3001
	ErrCodeNotHost           = 3002 // 仅房主可操作
	ErrCodePlayerCount       = 3003 // 玩家人数不满足条件
	ErrCodeNotYourTurn       = 3004
	ErrCodeAlreadyActed      = 3005 // 本轮已操作过
	ErrCodeOutOfPhase        = 3006 // 当前阶段不允许该操作
	ErrCodeServerMaintenance = 5003 // 服务器维护中
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:           "未知错误",
	ErrCodeInvalidMsg:        "无效的消息格式",
	ErrCodeRateLimit:         "请求过于频繁",
	ErrCodeRoomNotFound:      "房间号无效",
	ErrCodeRoomFull:          "房间已满",
	ErrCodeNotInRoom:         "您不在房间中",
	ErrCodeGameStarted:       "游戏已经开始了",
	ErrCodeGameNotStart:      "游戏尚未开始",
	ErrCodeNotHost:           "只有房主可以进行此操作",
	ErrCodePlayerCount:       "玩家人数不满足条件",
	ErrCodeNotYourTurn:       "还没轮到您",
	ErrCodeAlreadyActed:      "您本轮已经操作过了",
	ErrCodeOutOfPhase:        "当前阶段不能进行此操作",
	ErrCodeServerMaintenance: "服务器维护中",
}
