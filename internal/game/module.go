package game

// GameType 游戏类型标签
type GameType string

const (
	GameHotseat    GameType = "hotseat"    // 热座投票
	GameUndercover GameType = "undercover" // 谁是卧底
	GameRoulette   GameType = "roulette"   // 幸运转盘
)

// Phase 房间阶段
type Phase string

const (
	PhaseLobby      Phase = "lobby"       // 等待开始
	PhaseCollecting Phase = "collecting"  // 热座：收集自定义问题
	PhaseQuestion   Phase = "question"    // 热座：答题投票中
	PhaseHints      Phase = "hints"       // 卧底：轮流描述
	PhaseVote       Phase = "vote"        // 卧底：投票
	PhaseAwaitGuess Phase = "await_guess" // 卧底：等待白板猜词
	PhaseSpin       Phase = "spin"        // 转盘进行中
	PhaseEnded      Phase = "ended"       // 已结束，等待重开
)

// StartSettings 开局设置，按游戏类型取用
type StartSettings struct {
	QuestionMode     string // 热座出题模式，空则沿用房间设置
	UndercoverCount  int    // 卧底人数，0 表示按人数推算
	IncludeBlank     *bool  // 是否有白板，nil 表示按人数推算
	RevealUndercover bool   // 是否向卧底揭示真实身份
}

// Module 游戏模块：三种游戏各实现一份，挂在同一个房间上
type Module interface {
	Type() GameType
	// Init 在房间上预置本模块的空闲状态，创建与重开时都会调用
	Init(r *Room)
	// Start 校验人数并开局，调用方已持有房间锁
	Start(r *Room, settings StartSettings) error
	MinPlayers() int
	// MaxPlayers 返回人数上限，0 表示不限
	MaxPlayers() int
}

// 模块可选能力，传输层按能力分发，不做字符串分支
type (
	// VoteHandler 处理玩家投票
	VoteHandler interface {
		HandleVote(r *Room, p *Player, targetID string) error
	}

	// QuestionCollector 处理自定义问题提交
	QuestionCollector interface {
		HandleSubmitQuestions(r *Room, p *Player, questions []string) error
	}

	// RoundAdvancer 处理进入下一题
	RoundAdvancer interface {
		HandleNextQuestion(r *Room) error
	}

	// HintHandler 处理"描述完毕"
	HintHandler interface {
		HandleHint(r *Room, p *Player) error
	}

	// GuessHandler 处理白板猜词
	GuessHandler interface {
		HandleGuess(r *Room, p *Player, word string) error
	}

	// SpinHandler 处理转盘操作
	SpinHandler interface {
		HandleSpin(r *Room, p *Player) error
		HandleNextTurn(r *Room) error
	}
)

// registry 封闭的模块表，新增游戏在此注册
var registry = map[GameType]Module{
	GameHotseat:    hotseatModule{},
	GameUndercover: undercoverModule{},
	GameRoulette:   rouletteModule{},
}

// moduleFor 按类型取模块
func moduleFor(t GameType) (Module, bool) {
	m, ok := registry[t]
	return m, ok
}

// ValidGameType 判断游戏类型是否存在
func ValidGameType(t string) bool {
	_, ok := registry[GameType(t)]
	return ok
}
