package game

import (
	"github.com/google/uuid"

	"github.com/palemoky/party-games/internal/protocol"
	"github.com/palemoky/party-games/internal/server/types"
)

// 身份标识
const (
	RoleCivilian   = "civilian"   // 平民
	RoleUndercover = "undercover" // 卧底
	RoleBlank      = "blank"      // 白板

	// 白板拿到的占位词
	blankWord = "???"
)

// Player 房间中的玩家
type Player struct {
	ID     string // 服务端生成，连接生命周期内不变
	Name   string
	IsHost bool

	// 按局状态，重开时整体复位
	IsAlive            bool
	IsUndercover       bool
	IsBlank            bool
	Word               string
	HasGivenHint       bool
	SubmittedQuestions []string

	// 指向传输层的非持有引用，仅用于定向发消息
	Client types.ClientInterface
}

// NewPlayer 创建玩家。ID 沿用连接 ID，统计查询无需再做映射。
func NewPlayer(name string, client types.ClientInterface, isHost bool) *Player {
	id := uuid.New().String()
	if client != nil {
		id = client.GetID()
	}
	return &Player{
		ID:      id,
		Name:    name,
		IsHost:  isHost,
		IsAlive: true,
		Client:  client,
	}
}

// Info 返回对外快照
func (p *Player) Info() protocol.PlayerInfo {
	return protocol.PlayerInfo{
		ID:      p.ID,
		Name:    p.Name,
		IsHost:  p.IsHost,
		IsAlive: p.IsAlive,
	}
}

// Role 返回当前身份标识
func (p *Player) Role() string {
	switch {
	case p.IsBlank:
		return RoleBlank
	case p.IsUndercover:
		return RoleUndercover
	default:
		return RoleCivilian
	}
}

// ResetGameState 清除上一局残留（身份、词语、存活、描述与交题标记）
func (p *Player) ResetGameState() {
	p.IsAlive = true
	p.IsUndercover = false
	p.IsBlank = false
	p.Word = ""
	p.HasGivenHint = false
	p.SubmittedQuestions = nil
}

// Send 定向发消息，连接已断开时静默丢弃
func (p *Player) Send(msg *protocol.Message) {
	if p.Client != nil {
		p.Client.SendMessage(msg)
	}
}
