package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/palemoky/party-games/internal/protocol"
)

// 出题模式
const (
	QuestionModeDefault = "default" // 内置题库
	QuestionModeCustom  = "custom"  // 玩家自己出题
)

// Room 游戏房间。房间内的所有操作都在 mu 下串行执行，
// 不同房间之间互不影响。
type Room struct {
	Code         string
	GameType     GameType
	QuestionMode string
	Phase        Phase
	HostID       string
	Players      map[string]*Player
	Order        []string // 加入顺序
	CreatedAt    time.Time

	// Votes 投票表，voter → target，每轮整体重建。
	// 以投票人为 key，重复投票自然覆盖，不会重复计票。
	Votes map[string]string

	// 各模块的状态，开房时统一预置
	Hotseat    HotseatState
	Undercover UndercoverState
	Roulette   RouletteState

	// generation 在重开与删除时递增，延迟事件触发前要核对，
	// 核对失败直接丢弃
	generation int

	mgr *Manager
	mu  sync.Mutex
}

// Started 游戏是否已离开大厅
func (r *Room) Started() bool {
	return r.Phase != PhaseLobby
}

// Broadcast 广播给房间内所有玩家
func (r *Room) Broadcast(msg *protocol.Message) {
	for _, p := range r.Players {
		p.Send(msg)
	}
}

// BroadcastExcept 广播给除指定玩家外的所有人
func (r *Room) BroadcastExcept(exceptID string, msg *protocol.Message) {
	for id, p := range r.Players {
		if id != exceptID {
			p.Send(msg)
		}
	}
}

// PlayersInfo 按加入顺序返回全部玩家快照
func (r *Room) PlayersInfo() []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, 0, len(r.Order))
	for _, id := range r.Order {
		if p, ok := r.Players[id]; ok {
			infos = append(infos, p.Info())
		}
	}
	return infos
}

// AlivePlayers 按加入顺序返回存活玩家
func (r *Room) AlivePlayers() []*Player {
	alive := make([]*Player, 0, len(r.Order))
	for _, id := range r.Order {
		if p, ok := r.Players[id]; ok && p.IsAlive {
			alive = append(alive, p)
		}
	}
	return alive
}

// AlivePlayersInfo 按加入顺序返回存活玩家快照
func (r *Room) AlivePlayersInfo() []protocol.PlayerInfo {
	alive := r.AlivePlayers()
	infos := make([]protocol.PlayerInfo, 0, len(alive))
	for _, p := range alive {
		infos = append(infos, p.Info())
	}
	return infos
}

// connectedCount 仍有连接的玩家数
func (r *Room) connectedCount() int {
	count := 0
	for _, p := range r.Players {
		if p.Client != nil {
			count++
		}
	}
	return count
}

// Host 返回房主，可能为 nil
func (r *Room) Host() *Player {
	return r.Players[r.HostID]
}

// firstAlive 按加入顺序返回首个存活玩家
func (r *Room) firstAlive() *Player {
	for _, id := range r.Order {
		if p, ok := r.Players[id]; ok && p.IsAlive {
			return p
		}
	}
	return nil
}

// firstConnected 按加入顺序返回首个在线玩家
func (r *Room) firstConnected() *Player {
	for _, id := range r.Order {
		if p, ok := r.Players[id]; ok && p.Client != nil {
			return p
		}
	}
	return nil
}

// removeFromOrder 从加入顺序中移除玩家
func (r *Room) removeFromOrder(playerID string) {
	for i, id := range r.Order {
		if id == playerID {
			r.Order = append(r.Order[:i], r.Order[i+1:]...)
			return
		}
	}
}

// purgeVotesFor 清掉投给指定玩家的选票。目标离场后这些票不再有效，
// 留着会把已离场的玩家重新选出来
func (r *Room) purgeVotesFor(targetID string) {
	for voter, target := range r.Votes {
		if target == targetID {
			delete(r.Votes, voter)
		}
	}
}

// initModules 预置三个模块的空闲状态，开销很小
func (r *Room) initModules() {
	for _, m := range registry {
		m.Init(r)
	}
}

// schedule 按房间代数调度延迟事件：触发时重新上锁并核对代数，
// 房间已重开或删除则直接丢弃
func (r *Room) schedule(d time.Duration, fn func()) {
	gen := r.generation
	r.mgr.schedule(d, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.generation != gen {
			return
		}
		fn()
	})
}

// shuffledIDs 返回打乱后的玩家 ID 副本
func shuffledIDs(ids []string) []string {
	shuffled := make([]string, len(ids))
	copy(shuffled, ids)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
