package protocol

// PlayerInfo 玩家信息（对外快照）
type PlayerInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsHost  bool   `json:"is_host"`
	IsAlive bool   `json:"is_alive"`
}

// WheelSegment 转盘扇区配置
type WheelSegment struct {
	Color  string   `json:"color"`  // 扇区颜色
	Name   string   `json:"name"`   // 扇区标题，可含 {player1}/{player2} 占位符
	Count  int      `json:"count"`  // 罚酒杯数
	Target string   `json:"target"` // player1/player2/none/both/player1_gives/player2_gives/game/jackpot
	Texts  []string `json:"texts"`  // 惩罚文案模板
}

// VoteDetail 单条投票明细（投票人 → 被投人，按名字）
type VoteDetail struct {
	Voter    string `json:"voter"`
	VotedFor string `json:"voted_for"`
}

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// CreateRoomPayload 创建房间请求
type CreateRoomPayload struct {
	PlayerName string `json:"player_name"`
	GameType   string `json:"game_type,omitempty"` // 缺省为 hotseat
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	RoomCode   string `json:"room_code"`
	PlayerName string `json:"player_name"`
}

// ChangeGameTypePayload 切换游戏类型请求
type ChangeGameTypePayload struct {
	GameType string `json:"game_type"`
}

// ChangeQuestionModePayload 切换出题模式请求
type ChangeQuestionModePayload struct {
	QuestionMode string `json:"question_mode"` // default / custom
}

// StartGamePayload 开始游戏请求（设置项按游戏类型取用）
type StartGamePayload struct {
	QuestionMode     string `json:"question_mode,omitempty"`     // 热座：出题模式
	UndercoverCount  int    `json:"undercover_count,omitempty"`  // 卧底：卧底人数，0 表示默认
	IncludeBlank     *bool  `json:"include_blank,omitempty"`     // 卧底：是否有白板，nil 表示默认
	RevealUndercover bool   `json:"reveal_undercover,omitempty"` // 卧底：是否向卧底揭示身份
}

// SubmitQuestionsPayload 提交自定义问题
type SubmitQuestionsPayload struct {
	Questions []string `json:"questions"`
}

// VotePayload 投票请求
type VotePayload struct {
	TargetID string `json:"target_id"`
}

// GuessWordPayload 白板猜词请求
type GuessWordPayload struct {
	Word string `json:"word"`
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID string `json:"player_id"`
}

// PongPayload 心跳响应
type PongPayload struct {
	Timestamp  int64 `json:"timestamp"`   // 原样返回客户端时间戳
	ServerTime int64 `json:"server_time"` // 服务器时间戳（毫秒）
}

// RoomCreatedPayload 房间创建成功响应
type RoomCreatedPayload struct {
	RoomCode    string         `json:"room_code"`
	PlayerID    string         `json:"player_id"`
	GameType    string         `json:"game_type"`
	Players     []PlayerInfo   `json:"players"`
	WheelConfig []WheelSegment `json:"wheel_config,omitempty"` // 仅转盘模式
}

// RoomJoinedPayload 加入房间成功响应
type RoomJoinedPayload struct {
	RoomCode     string         `json:"room_code"`
	PlayerID     string         `json:"player_id"`
	GameType     string         `json:"game_type"`
	QuestionMode string         `json:"question_mode"`
	Players      []PlayerInfo   `json:"players"`
	WheelConfig  []WheelSegment `json:"wheel_config,omitempty"`
}

// RosterPayload 房间名单变更（加入/离开/重置共用）
type RosterPayload struct {
	Players []PlayerInfo `json:"players"`
}

// PlayerDisconnectedPayload 玩家掉线通知（卧底局中保留为阵亡）
type PlayerDisconnectedPayload struct {
	PlayerName string       `json:"player_name"`
	Players    []PlayerInfo `json:"players"`
}

// GameTypeChangedPayload 游戏类型切换通知
type GameTypeChangedPayload struct {
	GameType    string         `json:"game_type"`
	WheelConfig []WheelSegment `json:"wheel_config,omitempty"`
}

// QuestionModeChangedPayload 出题模式切换通知
type QuestionModeChangedPayload struct {
	QuestionMode string `json:"question_mode"`
}

// --- 热座游戏 Payloads ---

// CollectQuestionsPayload 进入收题阶段
type CollectQuestionsPayload struct {
	TotalPlayers int `json:"total_players"`
}

// PlayerSubmittedQuestionsPayload 交题进度
type PlayerSubmittedQuestionsPayload struct {
	PlayerName     string `json:"player_name"`
	SubmittedCount int    `json:"submitted_count"`
	TotalPlayers   int    `json:"total_players"`
}

// AllQuestionsCollectedPayload 收题完成
type AllQuestionsCollectedPayload struct {
	TotalQuestions int `json:"total_questions"`
}

// HotseatStartedPayload 热座游戏开始
type HotseatStartedPayload struct {
	GameType       string       `json:"game_type"`
	Question       string       `json:"question"`
	QuestionNumber int          `json:"question_number"`
	TotalQuestions int          `json:"total_questions"`
	Players        []PlayerInfo `json:"players"`
}

// VoteReceivedPayload 投票进度（热座/卧底共用）
type VoteReceivedPayload struct {
	PlayerID     string `json:"player_id"`
	TotalVotes   int    `json:"total_votes"`
	TotalPlayers int    `json:"total_players"`
}

// QuestionResultsPayload 本题投票结果
type QuestionResultsPayload struct {
	Winners        []string     `json:"winners"`
	Votes          int          `json:"votes"`
	VoteDetails    []VoteDetail `json:"vote_details"`
	IsLastQuestion bool         `json:"is_last_question"`
}

// NewQuestionPayload 下一题
type NewQuestionPayload struct {
	Question       string       `json:"question"`
	QuestionNumber int          `json:"question_number"`
	TotalQuestions int          `json:"total_questions"`
	Players        []PlayerInfo `json:"players"`
}

// RoundResult 单题的归档结果
type RoundResult struct {
	Question string       `json:"question"`
	Winners  []string     `json:"winners"`
	Votes    int          `json:"votes"`
	Details  []VoteDetail `json:"details"`
}

// GameEndedPayload 热座游戏结束
type GameEndedPayload struct {
	Results []RoundResult `json:"results"`
}

// --- 谁是卧底 Payloads ---

// UndercoverStartedPayload 卧底游戏开始（逐个私发，词语各不相同）
type UndercoverStartedPayload struct {
	GameType        string       `json:"game_type"`
	YourWord        string       `json:"your_word"`
	YourRole        string       `json:"your_role"` // civilian / undercover / blank
	UndercoverCount int          `json:"undercover_count"`
	HasBlank        bool         `json:"has_blank"`
	Players         []PlayerInfo `json:"players"`
	CurrentPlayerID string       `json:"current_player_id"`
	RoundNumber     int          `json:"round_number"`
}

// HintGivenPayload 描述进度
type HintGivenPayload struct {
	PlayerID     string `json:"player_id"`
	PlayerName   string `json:"player_name"`
	NextPlayerID string `json:"next_player_id"`
	HintsCount   int    `json:"hints_count"`
	TotalPlayers int    `json:"total_players"`
}

// VotePhasePayload 进入投票阶段
type VotePhasePayload struct {
	Players     []PlayerInfo `json:"players"` // 仅存活玩家
	RoundNumber int          `json:"round_number"`
}

// VoteTiePayload 平票
type VoteTiePayload struct {
	Message string `json:"message"`
}

// PlayerEliminatedPayload 出局公告
type PlayerEliminatedPayload struct {
	EliminatedPlayer string       `json:"eliminated_player"`
	WasUndercover    bool         `json:"was_undercover"`
	WasBlank         bool         `json:"was_blank"`
	VoteDetails      []VoteDetail `json:"vote_details"`
	RemainingPlayers []PlayerInfo `json:"remaining_players"`
}

// BlankGuessPayload 私发白板猜词提示
type BlankGuessPayload struct {
	Message string `json:"message"`
}

// BlankEliminatedPayload 白板出局公告
type BlankEliminatedPayload struct {
	PlayerName string `json:"player_name"`
	Message    string `json:"message"`
}

// GuessFailedPayload 白板猜错
type GuessFailedPayload struct {
	Message string `json:"message"`
}

// NewRoundPayload 新一轮描述
type NewRoundPayload struct {
	RoundNumber     int          `json:"round_number"`
	CurrentPlayerID string       `json:"current_player_id"`
	Players         []PlayerInfo `json:"players"` // 仅存活玩家
}

// RevealedPlayer 终局揭示的玩家身份
type RevealedPlayer struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Word string `json:"word"`
}

// UndercoverGameEndPayload 卧底游戏结束
type UndercoverGameEndPayload struct {
	Winner      string           `json:"winner"` // civilian / undercover / blank
	Message     string           `json:"message"`
	WordPair    [2]string        `json:"word_pair"`
	VoteDetails []VoteDetail     `json:"vote_details,omitempty"`
	AllPlayers  []RevealedPlayer `json:"all_players"`
}

// --- 转盘 Payloads ---

// RouletteStartedPayload 转盘游戏开始
type RouletteStartedPayload struct {
	GameType    string         `json:"game_type"`
	WheelConfig []WheelSegment `json:"wheel_config"`
}

// SpinStartedPayload 转盘结果（所有客户端播放同一动画）
type SpinStartedPayload struct {
	SegmentIndex int          `json:"segment_index"`
	Segment      WheelSegment `json:"segment"`
	Text         string       `json:"text"` // 原始模板，客户端代入双方昵称
	SpinnerID    string       `json:"spinner_id"`
	SpinCount    int          `json:"spin_count"` // 本局累计转动次数
}

// --- 统计 Payloads ---

// StatsPayload 个人统计
type StatsPayload struct {
	PlayerID     string         `json:"player_id"`
	GamesPlayed  map[string]int `json:"games_played"` // 按游戏类型
	GamesWon     map[string]int `json:"games_won"`
	LastPlayedAt int64          `json:"last_played_at"`
}

// OnlineCountPayload 在线人数
type OnlineCountPayload struct {
	Count int `json:"count"`
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
