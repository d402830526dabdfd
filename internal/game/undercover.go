package game

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/palemoky/party-games/internal/protocol"
)

// EliminatedRecord 出局记录
type EliminatedRecord struct {
	ID            string
	Name          string
	WasUndercover bool
	WasBlank      bool
}

// UndercoverState 谁是卧底的房间状态
type UndercoverState struct {
	WordPair        [2]string // [平民词, 卧底词]
	PlayerOrder     []string  // 本轮描述顺序（随机，与身份无关）
	TurnIndex       int
	RoundNumber     int
	UndercoverCount int
	HasBlank        bool
	WaitingForBlank string // 等待猜词的白板玩家 ID，空表示无
	Eliminated      []EliminatedRecord
}

// undercoverModule 谁是卧底：隐藏身份、轮流描述、投票淘汰
type undercoverModule struct{}

func (undercoverModule) Type() GameType  { return GameUndercover }
func (undercoverModule) MinPlayers() int { return 4 }
func (undercoverModule) MaxPlayers() int { return 0 }

func (undercoverModule) Init(r *Room) {
	r.Undercover = UndercoverState{RoundNumber: 1}
}

func (undercoverModule) Start(r *Room, settings StartSettings) error {
	st := &r.Undercover
	total := len(r.Players)

	// 白板：默认 5 人及以上才有，房主可覆盖
	hasBlank := total >= 5
	if settings.IncludeBlank != nil {
		hasBlank = *settings.IncludeBlank
	}

	// 卧底人数：默认 (N - 白板) / 3，至少 1 个，房主可覆盖
	undercoverCount := (total - boolToInt(hasBlank)) / 3
	if undercoverCount < 1 {
		undercoverCount = 1
	}
	if settings.UndercoverCount > 0 {
		undercoverCount = settings.UndercoverCount
	}

	// 至少留一个平民
	maxImpostors := total - 1
	if undercoverCount+boolToInt(hasBlank) > maxImpostors {
		undercoverCount = maxImpostors - boolToInt(hasBlank)
		if undercoverCount < 1 {
			undercoverCount = 1
		}
	}

	st.UndercoverCount = undercoverCount
	st.HasBlank = hasBlank
	st.WordPair = wordPairs[rand.Intn(len(wordPairs))]

	// 身份分配：打乱后前若干个是卧底，紧随其后的是白板
	shuffled := shuffledIDs(r.Order)
	undercoverIDs := make(map[string]bool, undercoverCount)
	for _, id := range shuffled[:undercoverCount] {
		undercoverIDs[id] = true
	}
	blankID := ""
	if hasBlank {
		blankID = shuffled[undercoverCount]
	}

	for id, p := range r.Players {
		p.IsAlive = true
		p.HasGivenHint = false
		switch {
		case undercoverIDs[id]:
			p.IsUndercover = true
			p.IsBlank = false
			p.Word = st.WordPair[1]
		case id == blankID:
			p.IsUndercover = false
			p.IsBlank = true
			p.Word = blankWord
		default:
			p.IsUndercover = false
			p.IsBlank = false
			p.Word = st.WordPair[0]
		}
	}

	// 描述顺序与身份无关
	st.PlayerOrder = shuffledIDs(r.Order)
	st.TurnIndex = 0
	st.RoundNumber = 1
	st.WaitingForBlank = ""
	st.Eliminated = nil
	r.Votes = make(map[string]string)
	r.Phase = PhaseHints

	log.Printf("🕵️ 房间 %s 卧底开局：%d 人，%d 卧底，白板=%v", r.Code, total, undercoverCount, hasBlank)

	// 每人的词语不同，逐个私发
	for _, p := range r.Players {
		role := RoleCivilian
		if p.IsBlank {
			role = RoleBlank
		} else if p.IsUndercover && settings.RevealUndercover {
			role = RoleUndercover
		}
		p.Send(protocol.MustNewMessage(protocol.MsgGameStarted, protocol.UndercoverStartedPayload{
			GameType:        string(GameUndercover),
			YourWord:        p.Word,
			YourRole:        role,
			UndercoverCount: undercoverCount,
			HasBlank:        hasBlank,
			Players:         r.PlayersInfo(),
			CurrentPlayerID: st.PlayerOrder[0],
			RoundNumber:     1,
		}))
	}
	return nil
}

// currentTurnID 当前描述者的玩家 ID，非描述阶段返回空
func (st *UndercoverState) currentTurnID(r *Room) string {
	if r.Phase != PhaseHints || st.TurnIndex >= len(st.PlayerOrder) {
		return ""
	}
	return st.PlayerOrder[st.TurnIndex]
}

func (u undercoverModule) HandleHint(r *Room, p *Player) error {
	st := &r.Undercover
	if r.Phase != PhaseHints {
		return ErrOutOfPhase
	}
	if st.currentTurnID(r) != p.ID {
		return ErrNotYourTurn
	}
	if !p.IsAlive {
		return ErrOutOfPhase
	}
	if p.HasGivenHint {
		return ErrAlreadyActed
	}

	p.HasGivenHint = true
	st.advanceTurn(r)
	u.afterTurnAdvance(r, p)
	return nil
}

// advanceTurn 把回合指针移到下一个存活且未描述的玩家
func (st *UndercoverState) advanceTurn(r *Room) {
	st.TurnIndex++
	for st.TurnIndex < len(st.PlayerOrder) {
		next, ok := r.Players[st.PlayerOrder[st.TurnIndex]]
		if ok && next.IsAlive && !next.HasGivenHint {
			break
		}
		st.TurnIndex++
	}
}

// afterTurnAdvance 指针移动后判断是进投票还是继续描述
func (undercoverModule) afterTurnAdvance(r *Room, justActed *Player) {
	st := &r.Undercover
	alive := r.AlivePlayers()

	allHinted := true
	hintsCount := 0
	for _, p := range alive {
		if p.HasGivenHint {
			hintsCount++
		} else {
			allHinted = false
		}
	}

	if allHinted || st.TurnIndex >= len(st.PlayerOrder) {
		r.Phase = PhaseVote
		r.Broadcast(protocol.MustNewMessage(protocol.MsgVotePhase, protocol.VotePhasePayload{
			Players:     r.AlivePlayersInfo(),
			RoundNumber: st.RoundNumber,
		}))
		return
	}

	r.Broadcast(protocol.MustNewMessage(protocol.MsgHintGiven, protocol.HintGivenPayload{
		PlayerID:     justActed.ID,
		PlayerName:   justActed.Name,
		NextPlayerID: st.PlayerOrder[st.TurnIndex],
		HintsCount:   hintsCount,
		TotalPlayers: len(alive),
	}))
}

func (u undercoverModule) HandleVote(r *Room, p *Player, targetID string) error {
	if r.Phase != PhaseVote {
		return ErrOutOfPhase
	}
	if !p.IsAlive {
		// 已出局玩家的票必须拒绝，不能计入
		return ErrOutOfPhase
	}
	target, ok := r.Players[targetID]
	if !ok || !target.IsAlive {
		// 目标不合法，静默忽略
		return nil
	}

	r.Votes[p.ID] = targetID
	alive := r.AlivePlayers()

	r.Broadcast(protocol.MustNewMessage(protocol.MsgVoteReceived, protocol.VoteReceivedPayload{
		PlayerID:     p.ID,
		TotalVotes:   len(r.Votes),
		TotalPlayers: len(alive),
	}))

	if len(r.Votes) == len(alive) {
		u.processElimination(r)
	}
	return nil
}

// processElimination 全员投完后结算：平票无人出局，否则淘汰得票最高者
func (u undercoverModule) processElimination(r *Room) {
	st := &r.Undercover
	winners, _ := tallyVotes(r.Votes)

	if len(winners) > 1 {
		r.Broadcast(protocol.MustNewMessage(protocol.MsgVoteTie, protocol.VoteTiePayload{
			Message: "平票！本轮无人出局。",
		}))
		u.startNewRound(r)
		return
	}

	eliminated := r.Players[winners[0]]
	eliminated.IsAlive = false
	st.Eliminated = append(st.Eliminated, EliminatedRecord{
		ID:            eliminated.ID,
		Name:          eliminated.Name,
		WasUndercover: eliminated.IsUndercover,
		WasBlank:      eliminated.IsBlank,
	})

	// 白板出局：先让他猜词，胜负判定全部挂起
	if eliminated.IsBlank {
		st.WaitingForBlank = eliminated.ID
		r.Phase = PhaseAwaitGuess
		eliminated.Send(protocol.MustNewMessage(protocol.MsgBlankGuess, protocol.BlankGuessPayload{
			Message: "你被投出局了！猜出平民的词还有机会翻盘。",
		}))
		r.Broadcast(protocol.MustNewMessage(protocol.MsgBlankEliminated, protocol.BlankEliminatedPayload{
			PlayerName: eliminated.Name,
			Message:    fmt.Sprintf("%s 是白板！", eliminated.Name),
		}))
		return
	}

	details := r.voteDetails()
	if winner, message, over := u.checkVictory(r); over {
		u.endGame(r, winner, message, details)
		return
	}

	r.Broadcast(protocol.MustNewMessage(protocol.MsgPlayerEliminated, protocol.PlayerEliminatedPayload{
		EliminatedPlayer: eliminated.Name,
		WasUndercover:    eliminated.IsUndercover,
		WasBlank:         false,
		VoteDetails:      details,
		RemainingPlayers: r.AlivePlayersInfo(),
	}))

	// 公告停留片刻再开下一轮
	r.schedule(r.mgr.cfg.EliminationDelayDuration(), func() {
		if r.Phase != PhaseVote {
			return
		}
		u.startNewRound(r)
	})
}

func (u undercoverModule) HandleGuess(r *Room, p *Player, word string) error {
	st := &r.Undercover
	if r.Phase != PhaseAwaitGuess {
		return ErrOutOfPhase
	}
	if st.WaitingForBlank != p.ID {
		return ErrNotYourTurn
	}

	st.WaitingForBlank = ""
	guess := strings.ToLower(strings.TrimSpace(word))
	correct := strings.ToLower(st.WordPair[0])

	if guess == correct {
		u.endGame(r, RoleBlank, fmt.Sprintf("🎭 白板猜出了「%s」，白板获胜！", st.WordPair[0]), nil)
		return nil
	}

	if winner, message, over := u.checkVictory(r); over {
		u.endGame(r, winner, message, nil)
		return nil
	}

	r.Broadcast(protocol.MustNewMessage(protocol.MsgGuessFailed, protocol.GuessFailedPayload{
		Message: fmt.Sprintf("猜错了！不是「%s」。", word),
	}))
	u.startNewRound(r)
	return nil
}

// checkVictory 胜负判定：
// 场上没有卧底和白板 → 平民胜；
// 存活的卧底+白板 ≥ 存活平民 → 卧底阵营胜
func (undercoverModule) checkVictory(r *Room) (winner, message string, over bool) {
	var civilians, impostors int
	for _, p := range r.AlivePlayers() {
		if p.IsUndercover || p.IsBlank {
			impostors++
		} else {
			civilians++
		}
	}

	switch {
	case impostors == 0:
		return RoleCivilian, "🎉 平民找出了所有卧底，平民获胜！", true
	case impostors >= civilians:
		return RoleUndercover, "🕵️ 卧底人数占优，卧底获胜！", true
	default:
		return "", "", false
	}
}

// startNewRound 新一轮描述：重洗存活玩家顺序，清空描述标记与投票
func (undercoverModule) startNewRound(r *Room) {
	st := &r.Undercover
	st.RoundNumber++
	st.TurnIndex = 0
	r.Votes = make(map[string]string)

	aliveIDs := make([]string, 0, len(r.Order))
	for _, p := range r.AlivePlayers() {
		p.HasGivenHint = false
		aliveIDs = append(aliveIDs, p.ID)
	}
	st.PlayerOrder = shuffledIDs(aliveIDs)
	r.Phase = PhaseHints

	r.Broadcast(protocol.MustNewMessage(protocol.MsgNewRound, protocol.NewRoundPayload{
		RoundNumber:     st.RoundNumber,
		CurrentPlayerID: st.PlayerOrder[0],
		Players:         r.AlivePlayersInfo(),
	}))
}

// endGame 结束游戏并揭示全部身份与词语
func (u undercoverModule) endGame(r *Room, winner, message string, details []protocol.VoteDetail) {
	st := &r.Undercover
	r.Phase = PhaseEnded
	st.WaitingForBlank = ""

	revealed := make([]protocol.RevealedPlayer, 0, len(r.Order))
	for _, id := range r.Order {
		if p, ok := r.Players[id]; ok {
			revealed = append(revealed, protocol.RevealedPlayer{
				Name: p.Name,
				Role: p.Role(),
				Word: p.Word,
			})
		}
	}

	log.Printf("🏁 房间 %s 卧底结束，%s 获胜", r.Code, winner)
	r.Broadcast(protocol.MustNewMessage(protocol.MsgUndercoverGameEnd, protocol.UndercoverGameEndPayload{
		Winner:      winner,
		Message:     message,
		WordPair:    st.WordPair,
		VoteDetails: details,
		AllPlayers:  revealed,
	}))
	u.recordStats(r, winner)
}

// recordStats 归档对局统计。卧底阵营获胜时白板按卧底方计胜
func (undercoverModule) recordStats(r *Room, winner string) {
	if r.mgr.stats == nil {
		return
	}
	for _, p := range r.Players {
		won := false
		switch winner {
		case RoleCivilian:
			won = !p.IsUndercover && !p.IsBlank
		case RoleUndercover:
			won = p.IsUndercover || p.IsBlank
		case RoleBlank:
			won = p.IsBlank
		}
		go func(id, name string, won bool) {
			_ = r.mgr.stats.RecordGame(context.Background(), id, name, string(GameUndercover), won)
		}(p.ID, p.Name, won)
	}
}

// resolveDisconnect 处理卧底局中的掉线。进入前玩家已被标记阵亡，
// 本人的选票和投给他的选票都已清除。
func (u undercoverModule) resolveDisconnect(r *Room, leaver *Player) {
	st := &r.Undercover

	if winner, message, over := u.checkVictory(r); over {
		u.endGame(r, winner, message, nil)
		return
	}

	switch r.Phase {
	case PhaseAwaitGuess:
		// 白板没猜词就走了，按猜错处理
		if st.WaitingForBlank == leaver.ID {
			st.WaitingForBlank = ""
			u.startNewRound(r)
		}
	case PhaseHints:
		// 掉线的正好是当前描述者，回合顺延
		if st.currentTurnID(r) == leaver.ID {
			st.advanceTurn(r)
			u.afterTurnAdvance(r, leaver)
		}
	case PhaseVote:
		// 缺席者不再计入应投人数，可能正好齐票
		alive := r.AlivePlayers()
		if len(r.Votes) > 0 && len(r.Votes) == len(alive) {
			u.processElimination(r)
		}
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
