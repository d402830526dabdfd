package game

import (
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/palemoky/party-games/internal/config"
	"github.com/palemoky/party-games/internal/protocol"
	"github.com/palemoky/party-games/internal/server/types"
)

const (
	// 房间号长度
	roomCodeLength = 6
	// 房间号字符集，去掉了易混淆的 0/O/1/I
	roomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Manager 房间注册表：创建、查找、删除与空房回收都在这里。
// 时钟与调度器可注入，测试不依赖真实计时器。
type Manager struct {
	cfg   *config.GameConfig
	stats types.StatsRecorder // 可为 nil

	rooms map[string]*Room
	mu    sync.RWMutex

	// byClient 由独立的锁保护，可在持有房间锁时安全更新
	byClient map[string]string // clientID → roomCode
	clientMu sync.Mutex

	now      func() time.Time
	schedule func(d time.Duration, fn func())
}

// registerClient 记录客户端所在房间
func (m *Manager) registerClient(clientID, code string) {
	m.clientMu.Lock()
	defer m.clientMu.Unlock()
	m.byClient[clientID] = code
}

// unregisterClient 移除客户端的房间记录，返回其所在房间号
func (m *Manager) unregisterClient(clientID string) (string, bool) {
	m.clientMu.Lock()
	defer m.clientMu.Unlock()
	code, ok := m.byClient[clientID]
	if ok {
		delete(m.byClient, clientID)
	}
	return code, ok
}

// lookupClient 查询客户端所在房间号
func (m *Manager) lookupClient(clientID string) (string, bool) {
	m.clientMu.Lock()
	defer m.clientMu.Unlock()
	code, ok := m.byClient[clientID]
	return code, ok
}

// NewManager 创建房间管理器
func NewManager(cfg *config.GameConfig, stats types.StatsRecorder) *Manager {
	return &Manager{
		cfg:      cfg,
		stats:    stats,
		rooms:    make(map[string]*Room),
		byClient: make(map[string]string),
		now:      time.Now,
		schedule: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
}

// SetClock 注入时钟与调度器（测试用）
func (m *Manager) SetClock(now func() time.Time, schedule func(time.Duration, func())) {
	m.now = now
	m.schedule = schedule
}

// CreateRoom 创建房间，创建者即房主
func (m *Manager) CreateRoom(client types.ClientInterface, playerName, gameTypeStr string) (*protocol.RoomCreatedPayload, error) {
	gameType := GameHotseat
	if gameTypeStr != "" {
		if !ValidGameType(gameTypeStr) {
			return nil, ErrOutOfPhase
		}
		gameType = GameType(gameTypeStr)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	code := m.generateRoomCode()
	room := &Room{
		Code:         code,
		GameType:     gameType,
		QuestionMode: QuestionModeDefault,
		Phase:        PhaseLobby,
		Players:      make(map[string]*Player),
		CreatedAt:    m.now(),
		Votes:        make(map[string]string),
		mgr:          m,
	}
	room.initModules()

	host := NewPlayer(playerName, client, true)
	room.HostID = host.ID
	room.Players[host.ID] = host
	room.Order = append(room.Order, host.ID)

	m.rooms[code] = room
	m.registerClient(client.GetID(), code)
	client.SetRoom(code)

	log.Printf("🏠 房间 %s 已创建（%s），房主 %s", code, gameType, host.Name)

	payload := &protocol.RoomCreatedPayload{
		RoomCode: code,
		PlayerID: host.ID,
		GameType: string(gameType),
		Players:  room.PlayersInfo(),
	}
	if gameType == GameRoulette {
		payload.WheelConfig = WheelConfig()
	}
	return payload, nil
}

// JoinRoom 加入房间。房间号不区分大小写。
func (m *Manager) JoinRoom(client types.ClientInterface, code, playerName string) (*protocol.RoomJoinedPayload, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	m.mu.RLock()
	room := m.rooms[code]
	m.mu.RUnlock()
	if room == nil {
		return nil, ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if mod, ok := moduleFor(room.GameType); ok {
		if max := mod.MaxPlayers(); max > 0 && len(room.Players) >= max {
			return nil, ErrRoomFull
		}
	}
	if room.Started() {
		return nil, ErrGameStarted
	}

	player := NewPlayer(playerName, client, false)
	room.Players[player.ID] = player
	room.Order = append(room.Order, player.ID)
	m.registerClient(client.GetID(), code)
	client.SetRoom(code)

	log.Printf("👤 玩家 %s 加入房间 %s", player.Name, code)

	room.BroadcastExcept(player.ID, protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.RosterPayload{
		Players: room.PlayersInfo(),
	}))

	payload := &protocol.RoomJoinedPayload{
		RoomCode:     code,
		PlayerID:     player.ID,
		GameType:     string(room.GameType),
		QuestionMode: room.QuestionMode,
		Players:      room.PlayersInfo(),
	}
	if room.GameType == GameRoulette {
		payload.WheelConfig = WheelConfig()
	}
	return payload, nil
}

// ChangeGameType 切换游戏类型，仅房主可用
func (m *Manager) ChangeGameType(client types.ClientInterface, gameTypeStr string) error {
	return m.withHost(client, func(r *Room, _ *Player) error {
		if !ValidGameType(gameTypeStr) {
			return ErrOutOfPhase
		}
		gameType := GameType(gameTypeStr)
		mod, _ := moduleFor(gameType)

		// 切换时只卡卧底下限和人数上限，其余下限等开局再查，
		// 这样一个人先建房选好玩法再发二维码邀请也没问题
		if gameType == GameUndercover && len(r.Players) < mod.MinPlayers() {
			return playerCountError(countHint(gameType))
		}
		if max := mod.MaxPlayers(); max > 0 && len(r.Players) > max {
			return playerCountError(countHint(gameType))
		}

		r.GameType = gameType
		payload := protocol.GameTypeChangedPayload{GameType: gameTypeStr}
		if gameType == GameRoulette {
			payload.WheelConfig = WheelConfig()
		}
		r.Broadcast(protocol.MustNewMessage(protocol.MsgGameTypeChanged, payload))
		return nil
	})
}

// ChangeQuestionMode 切换热座出题模式，仅房主可用
func (m *Manager) ChangeQuestionMode(client types.ClientInterface, mode string) error {
	return m.withHost(client, func(r *Room, _ *Player) error {
		if mode != QuestionModeDefault && mode != QuestionModeCustom {
			return ErrOutOfPhase
		}
		r.QuestionMode = mode
		r.Broadcast(protocol.MustNewMessage(protocol.MsgQuestionModeChanged, protocol.QuestionModeChangedPayload{
			QuestionMode: mode,
		}))
		return nil
	})
}

// StartGame 开始游戏，仅房主可用
func (m *Manager) StartGame(client types.ClientInterface, settings StartSettings) error {
	return m.withHost(client, func(r *Room, _ *Player) error {
		if r.Started() {
			return ErrGameStarted
		}
		mod, _ := moduleFor(r.GameType)
		if len(r.Players) < mod.MinPlayers() {
			return playerCountError(countHint(r.GameType))
		}
		return mod.Start(r, settings)
	})
}

// RestartGame 重开：清空所有模块状态与玩家残留，回到大厅
func (m *Manager) RestartGame(client types.ClientInterface) error {
	return m.withHost(client, func(r *Room, _ *Player) error {
		r.generation++ // 作废所有未触发的延迟事件
		r.Phase = PhaseLobby
		r.Votes = make(map[string]string)
		r.initModules()
		for _, p := range r.Players {
			p.ResetGameState()
		}

		log.Printf("🔄 房间 %s 已重开", r.Code)
		r.Broadcast(protocol.MustNewMessage(protocol.MsgGameRestarted, protocol.RosterPayload{
			Players: r.PlayersInfo(),
		}))
		return nil
	})
}

// LeaveRoom 主动离开，与掉线同一处理
func (m *Manager) LeaveRoom(client types.ClientInterface) {
	m.HandleDisconnect(client)
}

// HandleDisconnect 处理断开：
// 卧底局进行中只标记阵亡（与被票出的玩家对后续流程无区别）并立即检查胜负；
// 其他情况直接移除。房主离开时移交给首个存活玩家；房间空了进入宽限期。
func (m *Manager) HandleDisconnect(client types.ClientInterface) {
	code, ok := m.unregisterClient(client.GetID())
	if !ok {
		return
	}
	m.mu.RLock()
	room := m.rooms[code]
	m.mu.RUnlock()
	if room == nil {
		return
	}
	client.SetRoom("")

	room.mu.Lock()
	defer room.mu.Unlock()

	player := room.playerByClient(client.GetID())
	if player == nil {
		return
	}

	keepAsDead := room.GameType == GameUndercover && room.Started() && room.Phase != PhaseEnded
	if keepAsDead {
		player.IsAlive = false
		player.Client = nil
		delete(room.Votes, player.ID)
		room.purgeVotesFor(player.ID)

		room.Broadcast(protocol.MustNewMessage(protocol.MsgPlayerDisconnected, protocol.PlayerDisconnectedPayload{
			PlayerName: player.Name,
			Players:    room.PlayersInfo(),
		}))

		// 掉线可能直接决定胜负；即便终局，下面的房主移交仍要照常进行，
		// 否则重开操作会卡在已离场的房主手里
		(undercoverModule{}).resolveDisconnect(room, player)
	} else {
		delete(room.Players, player.ID)
		room.removeFromOrder(player.ID)
		delete(room.Votes, player.ID)
		room.purgeVotesFor(player.ID)

		// 掉线者可能正好是全场在等的最后一票
		if room.GameType == GameHotseat && room.Started() {
			(hotseatModule{}).resolveDisconnect(room)
		}
	}

	log.Printf("👋 玩家 %s 离开房间 %s", player.Name, room.Code)

	// 卧底局里阵亡的掉线玩家仍留在名单里，按在线连接数判断房间是否空了
	if room.connectedCount() == 0 {
		m.scheduleDeletion(room.Code)
		return
	}

	// 房主移交给首个存活玩家，找不到就给任意在线玩家
	if room.HostID == player.ID {
		player.IsHost = false
		next := room.firstAlive()
		if next == nil {
			next = room.firstConnected()
		}
		if next != nil {
			room.HostID = next.ID
			next.IsHost = true
			log.Printf("👑 房间 %s 房主移交给 %s", room.Code, next.Name)
		}
	}

	if !keepAsDead {
		room.Broadcast(protocol.MustNewMessage(protocol.MsgPlayerLeft, protocol.RosterPayload{
			Players: room.PlayersInfo(),
		}))
	}
}

// --- 游戏操作入口：按模块能力分发 ---

// Vote 投票（热座与卧底共用）
func (m *Manager) Vote(client types.ClientInterface, targetID string) error {
	return m.withStartedRoom(client, func(r *Room, p *Player, mod Module) error {
		vh, ok := mod.(VoteHandler)
		if !ok {
			return ErrOutOfPhase
		}
		return vh.HandleVote(r, p, targetID)
	})
}

// SubmitQuestions 提交自定义问题
func (m *Manager) SubmitQuestions(client types.ClientInterface, questions []string) error {
	return m.withRoomPlayer(client, func(r *Room, p *Player, mod Module) error {
		qc, ok := mod.(QuestionCollector)
		if !ok {
			return ErrOutOfPhase
		}
		return qc.HandleSubmitQuestions(r, p, questions)
	})
}

// NextQuestion 进入下一题
func (m *Manager) NextQuestion(client types.ClientInterface) error {
	return m.withStartedRoom(client, func(r *Room, _ *Player, mod Module) error {
		ra, ok := mod.(RoundAdvancer)
		if !ok {
			return ErrOutOfPhase
		}
		return ra.HandleNextQuestion(r)
	})
}

// GiveHint 描述完毕
func (m *Manager) GiveHint(client types.ClientInterface) error {
	return m.withStartedRoom(client, func(r *Room, p *Player, mod Module) error {
		hh, ok := mod.(HintHandler)
		if !ok {
			return ErrOutOfPhase
		}
		return hh.HandleHint(r, p)
	})
}

// GuessWord 白板猜词
func (m *Manager) GuessWord(client types.ClientInterface, word string) error {
	return m.withStartedRoom(client, func(r *Room, p *Player, mod Module) error {
		gh, ok := mod.(GuessHandler)
		if !ok {
			return ErrOutOfPhase
		}
		return gh.HandleGuess(r, p, word)
	})
}

// RequestSpin 请求转动转盘
func (m *Manager) RequestSpin(client types.ClientInterface) error {
	return m.withStartedRoom(client, func(r *Room, p *Player, mod Module) error {
		sh, ok := mod.(SpinHandler)
		if !ok {
			return ErrOutOfPhase
		}
		return sh.HandleSpin(r, p)
	})
}

// RequestNextTurn 转盘下一轮
func (m *Manager) RequestNextTurn(client types.ClientInterface) error {
	return m.withStartedRoom(client, func(r *Room, _ *Player, mod Module) error {
		sh, ok := mod.(SpinHandler)
		if !ok {
			return ErrOutOfPhase
		}
		return sh.HandleNextTurn(r)
	})
}

// --- 查询 ---

// RoomExists 房间是否存在（供二维码接口使用）
func (m *Manager) RoomExists(code string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.rooms[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// RoomCount 当前房间数
func (m *Manager) RoomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// ActiveGamesCount 进行中的游戏数量（优雅关闭时等待）
func (m *Manager) ActiveGamesCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, room := range m.rooms {
		room.mu.Lock()
		if room.Started() && room.Phase != PhaseEnded {
			count++
		}
		room.mu.Unlock()
	}
	return count
}

// --- 内部辅助 ---

// roomOf 通过客户端找到房间
func (m *Manager) roomOf(client types.ClientInterface) (*Room, bool) {
	code, ok := m.lookupClient(client.GetID())
	if !ok {
		return nil, false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	room, ok := m.rooms[code]
	return room, ok
}

// withRoomPlayer 在房间锁内执行操作
func (m *Manager) withRoomPlayer(client types.ClientInterface, fn func(*Room, *Player, Module) error) error {
	room, ok := m.roomOf(client)
	if !ok {
		return ErrNotInRoom
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	player := room.playerByClient(client.GetID())
	if player == nil {
		return ErrNotInRoom
	}
	mod, _ := moduleFor(room.GameType)
	return fn(room, player, mod)
}

// withStartedRoom 同 withRoomPlayer，但要求游戏已开始
func (m *Manager) withStartedRoom(client types.ClientInterface, fn func(*Room, *Player, Module) error) error {
	return m.withRoomPlayer(client, func(r *Room, p *Player, mod Module) error {
		if !r.Started() {
			return ErrGameNotStart
		}
		return fn(r, p, mod)
	})
}

// withHost 同 withRoomPlayer，但要求操作者是房主
func (m *Manager) withHost(client types.ClientInterface, fn func(*Room, *Player) error) error {
	return m.withRoomPlayer(client, func(r *Room, p *Player, _ Module) error {
		if r.HostID != p.ID {
			return ErrNotHost
		}
		return fn(r, p)
	})
}

// playerByClient 通过客户端 ID 找到房间内的玩家
func (r *Room) playerByClient(clientID string) *Player {
	for _, p := range r.Players {
		if p.Client != nil && p.Client.GetID() == clientID {
			return p
		}
	}
	return nil
}

// generateRoomCode 生成唯一房间号，调用方需持有 m.mu
func (m *Manager) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[rand.Intn(len(roomCodeChars))]
		}
		codeStr := string(code)
		if _, exists := m.rooms[codeStr]; !exists {
			return codeStr
		}
	}
}

// scheduleDeletion 空房间进入宽限期，期间有人加入则放弃删除
func (m *Manager) scheduleDeletion(code string) {
	grace := m.cfg.GracePeriodDuration()
	log.Printf("🏠 房间 %s 已空，%s 后删除", code, grace)

	m.schedule(grace, func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		room, ok := m.rooms[code]
		if !ok {
			return
		}
		room.mu.Lock()
		defer room.mu.Unlock()

		if room.connectedCount() > 0 {
			return // 宽限期内有人回来了
		}
		room.generation++
		delete(m.rooms, code)
		log.Printf("🏠 房间 %s 已删除", code)
	})
}

// countHint 人数要求的提示文案
func countHint(t GameType) string {
	switch t {
	case GameUndercover:
		return "谁是卧底至少需要 4 名玩家"
	case GameRoulette:
		return "幸运转盘只支持 2 名玩家"
	default:
		return "热座至少需要 2 名玩家"
	}
}
