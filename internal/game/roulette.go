package game

import (
	"context"
	"log"
	"math/rand"

	"github.com/palemoky/party-games/internal/protocol"
)

// RouletteState 转盘游戏的房间状态
type RouletteState struct {
	SpinCount int // 本局累计转动次数
}

// rouletteModule 幸运转盘：双人对饮小游戏。
// 随机结果由服务端决定并统一广播，两端动画不会出现分歧；
// 除转动计数外没有持久比分，计分展示是客户端本地的事。
type rouletteModule struct{}

func (rouletteModule) Type() GameType  { return GameRoulette }
func (rouletteModule) MinPlayers() int { return 2 }
func (rouletteModule) MaxPlayers() int { return 2 }

func (rouletteModule) Init(r *Room) {
	r.Roulette = RouletteState{}
}

func (rouletteModule) Start(r *Room, _ StartSettings) error {
	r.Phase = PhaseSpin
	log.Printf("🎡 房间 %s 转盘开局", r.Code)
	r.Broadcast(protocol.MustNewMessage(protocol.MsgGameStarted, protocol.RouletteStartedPayload{
		GameType:    string(GameRoulette),
		WheelConfig: wheelSegments,
	}))
	return nil
}

func (rouletteModule) HandleSpin(r *Room, p *Player) error {
	if r.Phase != PhaseSpin {
		return ErrOutOfPhase
	}

	segmentIndex := rand.Intn(len(wheelSegments))
	segment := wheelSegments[segmentIndex]
	// 发原始模板，双人模式下客户端自己代入两个昵称
	text := segment.Texts[rand.Intn(len(segment.Texts))]

	r.Roulette.SpinCount++
	r.Broadcast(protocol.MustNewMessage(protocol.MsgSpinStarted, protocol.SpinStartedPayload{
		SegmentIndex: segmentIndex,
		Segment:      segment,
		Text:         text,
		SpinnerID:    p.ID,
		SpinCount:    r.Roulette.SpinCount,
	}))

	if r.mgr.stats != nil {
		go func() { _ = r.mgr.stats.RecordSpin(context.Background()) }()
	}
	return nil
}

func (rouletteModule) HandleNextTurn(r *Room) error {
	if r.Phase != PhaseSpin {
		return ErrOutOfPhase
	}
	// 纯界面复位信号，不改任何状态
	r.Broadcast(protocol.MustNewMessage(protocol.MsgSpinReset, nil))
	return nil
}
