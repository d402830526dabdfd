package game

import (
	"context"
	"log"
	"math/rand"
	"strings"

	"github.com/palemoky/party-games/internal/protocol"
)

// HotseatState 热座游戏的房间状态
type HotseatState struct {
	QuestionIndex   int
	Questions       []string        // 打乱后的题目池，从前往后消费
	CustomQuestions []string        // 自定义模式下玩家提交的题目
	Submitted       map[string]bool // 已交题的玩家
	Results         []protocol.RoundResult
	ResultsShown    bool // 本题已结算，等房主进入下一题
}

// hotseatModule 热座投票游戏："谁最有可能……"，每轮全员互投
type hotseatModule struct{}

func (hotseatModule) Type() GameType  { return GameHotseat }
func (hotseatModule) MinPlayers() int { return 2 }
func (hotseatModule) MaxPlayers() int { return 0 }

func (hotseatModule) Init(r *Room) {
	r.Hotseat = HotseatState{
		Questions: shuffledQuestions(hotseatQuestions),
		Submitted: make(map[string]bool),
	}
}

func (h hotseatModule) Start(r *Room, settings StartSettings) error {
	if settings.QuestionMode != "" {
		if settings.QuestionMode != QuestionModeDefault && settings.QuestionMode != QuestionModeCustom {
			return ErrOutOfPhase
		}
		r.QuestionMode = settings.QuestionMode
	}

	if r.QuestionMode == QuestionModeCustom {
		// 先收题，收齐后再正式开局
		r.Phase = PhaseCollecting
		r.Broadcast(protocol.MustNewMessage(protocol.MsgCollectQuestions, protocol.CollectQuestionsPayload{
			TotalPlayers: len(r.Players),
		}))
		return nil
	}

	h.startRounds(r)
	return nil
}

// startRounds 进入第一题
func (hotseatModule) startRounds(r *Room) {
	st := &r.Hotseat
	st.QuestionIndex = 0
	st.Results = nil
	r.Votes = make(map[string]string)

	if r.QuestionMode == QuestionModeDefault {
		st.Questions = shuffledQuestions(hotseatQuestions)
	}

	r.Phase = PhaseQuestion
	total := hotseatTotalQuestions(r)
	log.Printf("🎮 房间 %s 热座开局，共 %d 题", r.Code, total)

	r.Broadcast(protocol.MustNewMessage(protocol.MsgGameStarted, protocol.HotseatStartedPayload{
		GameType:       string(GameHotseat),
		Question:       st.Questions[0],
		QuestionNumber: 1,
		TotalQuestions: total,
		Players:        r.PlayersInfo(),
	}))
}

// hotseatTotalQuestions 题目总数：
// 自定义模式用完整自定义题池；默认模式按人数 × 系数，但不超过题库大小
func hotseatTotalQuestions(r *Room) int {
	st := &r.Hotseat
	if r.QuestionMode == QuestionModeCustom {
		return len(st.Questions)
	}
	limit := len(r.Players) * r.mgr.cfg.QuestionMultiplier
	if limit < len(st.Questions) {
		return limit
	}
	return len(st.Questions)
}

func (h hotseatModule) HandleSubmitQuestions(r *Room, p *Player, questions []string) error {
	if r.Phase != PhaseCollecting {
		return ErrOutOfPhase
	}
	st := &r.Hotseat
	if st.Submitted[p.ID] {
		// 重复提交直接忽略，不计入
		return nil
	}

	var valid []string
	for _, q := range questions {
		if strings.TrimSpace(q) != "" {
			valid = append(valid, q)
		}
	}
	st.CustomQuestions = append(st.CustomQuestions, valid...)
	st.Submitted[p.ID] = true
	p.SubmittedQuestions = questions

	r.Broadcast(protocol.MustNewMessage(protocol.MsgPlayerSubmittedQuestions, protocol.PlayerSubmittedQuestionsPayload{
		PlayerName:     p.Name,
		SubmittedCount: len(st.Submitted),
		TotalPlayers:   len(r.Players),
	}))

	if len(st.Submitted) < len(r.Players) {
		return nil
	}

	// 收齐了。没人出题就从内置题库里随机补足
	if len(st.CustomQuestions) == 0 {
		st.CustomQuestions = randomQuestions(len(r.Players) * 3)
	}
	st.Questions = shuffledQuestions(st.CustomQuestions)

	r.Broadcast(protocol.MustNewMessage(protocol.MsgAllQuestionsCollected, protocol.AllQuestionsCollectedPayload{
		TotalQuestions: len(st.Questions),
	}))

	// 给客户端留出展示"收题完成"的时间再出第一题
	r.schedule(r.mgr.cfg.CollectDelayDuration(), func() {
		if r.Phase != PhaseCollecting {
			return
		}
		h.startRounds(r)
	})
	return nil
}

func (h hotseatModule) HandleVote(r *Room, p *Player, targetID string) error {
	if r.Phase != PhaseQuestion || r.Hotseat.ResultsShown {
		return ErrOutOfPhase
	}
	if _, ok := r.Players[targetID]; !ok {
		// 目标不存在（可能刚离开），静默忽略
		return nil
	}

	// 以投票人为 key，重复投票覆盖旧票
	r.Votes[p.ID] = targetID

	r.Broadcast(protocol.MustNewMessage(protocol.MsgVoteReceived, protocol.VoteReceivedPayload{
		PlayerID:     p.ID,
		TotalVotes:   len(r.Votes),
		TotalPlayers: len(r.Players),
	}))

	if len(r.Votes) == len(r.Players) {
		h.processResults(r)
	}
	return nil
}

// processResults 全员投完后结算本题，同一题只结算一次
func (hotseatModule) processResults(r *Room) {
	st := &r.Hotseat
	st.ResultsShown = true
	winnerIDs, maxVotes := tallyVotes(r.Votes)

	winnerNames := make([]string, 0, len(winnerIDs))
	for _, id := range winnerIDs {
		if p, ok := r.Players[id]; ok {
			winnerNames = append(winnerNames, p.Name)
		}
	}
	details := r.voteDetails()

	st.Results = append(st.Results, protocol.RoundResult{
		Question: st.Questions[st.QuestionIndex],
		Winners:  winnerNames,
		Votes:    maxVotes,
		Details:  details,
	})

	r.Broadcast(protocol.MustNewMessage(protocol.MsgQuestionResults, protocol.QuestionResultsPayload{
		Winners:        winnerNames,
		Votes:          maxVotes,
		VoteDetails:    details,
		IsLastQuestion: st.QuestionIndex >= hotseatTotalQuestions(r)-1,
	}))
}

// resolveDisconnect 有人退出后重查齐票：掉线者可能正好是全场在等的最后一票
func (h hotseatModule) resolveDisconnect(r *Room) {
	if r.Phase != PhaseQuestion || r.Hotseat.ResultsShown {
		return
	}
	if len(r.Votes) > 0 && len(r.Votes) == len(r.Players) {
		h.processResults(r)
	}
}

func (h hotseatModule) HandleNextQuestion(r *Room) error {
	if r.Phase != PhaseQuestion {
		return ErrOutOfPhase
	}
	st := &r.Hotseat
	st.QuestionIndex++
	st.ResultsShown = false
	r.Votes = make(map[string]string)

	if st.QuestionIndex >= hotseatTotalQuestions(r) {
		r.Phase = PhaseEnded
		log.Printf("🏁 房间 %s 热座结束，共 %d 题", r.Code, len(st.Results))
		r.Broadcast(protocol.MustNewMessage(protocol.MsgGameEnded, protocol.GameEndedPayload{
			Results: st.Results,
		}))
		h.recordStats(r)
		return nil
	}

	r.Broadcast(protocol.MustNewMessage(protocol.MsgNewQuestion, protocol.NewQuestionPayload{
		Question:       st.Questions[st.QuestionIndex],
		QuestionNumber: st.QuestionIndex + 1,
		TotalQuestions: hotseatTotalQuestions(r),
		Players:        r.PlayersInfo(),
	}))
	return nil
}

// recordStats 归档对局统计（未配置 Redis 时跳过）
func (hotseatModule) recordStats(r *Room) {
	if r.mgr.stats == nil {
		return
	}
	for _, p := range r.Players {
		go func(id, name string) {
			_ = r.mgr.stats.RecordGame(context.Background(), id, name, string(GameHotseat), false)
		}(p.ID, p.Name)
	}
}

// shuffledQuestions 返回打乱后的题目副本
func shuffledQuestions(questions []string) []string {
	shuffled := make([]string, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// randomQuestions 从内置题库随机取 count 道题
func randomQuestions(count int) []string {
	shuffled := shuffledQuestions(hotseatQuestions)
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
