package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgCreateRoom         MessageType = "create_room"          // 创建房间
	MsgJoinRoom           MessageType = "join_room"            // 加入房间
	MsgLeaveRoom          MessageType = "leave_room"           // 离开房间
	MsgChangeGameType     MessageType = "change_game_type"     // 切换游戏类型
	MsgChangeQuestionMode MessageType = "change_question_mode" // 切换出题模式
	MsgStartGame          MessageType = "start_game"           // 开始游戏
	MsgRestartGame        MessageType = "restart_game"         // 重新开始

	// 热座（投票）游戏操作
	MsgSubmitQuestions MessageType = "submit_questions" // 提交自定义问题
	MsgVote            MessageType = "vote"             // 投票（热座/卧底共用）
	MsgNextQuestion    MessageType = "next_question"    // 下一题

	// 谁是卧底操作
	MsgGiveHint  MessageType = "give_hint"  // 描述完毕
	MsgGuessWord MessageType = "guess_word" // 白板猜词

	// 转盘操作
	MsgRequestSpin     MessageType = "request_spin"      // 请求转动转盘
	MsgRequestNextTurn MessageType = "request_next_turn" // 下一轮（重置界面）

	// 统计操作
	MsgGetStats       MessageType = "get_stats"        // 查询个人统计
	MsgGetOnlineCount MessageType = "get_online_count" // 查询在线人数
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected          MessageType = "connected"           // 连接成功
	MsgPong               MessageType = "pong"                // 心跳 pong
	MsgPlayerDisconnected MessageType = "player_disconnected" // 玩家掉线（卧底局中保留）

	// 房间相关
	MsgRoomCreated         MessageType = "room_created"          // 房间创建成功
	MsgRoomJoined          MessageType = "room_joined"           // 加入房间成功
	MsgPlayerJoined        MessageType = "player_joined"         // 其他玩家加入
	MsgPlayerLeft          MessageType = "player_left"           // 玩家离开
	MsgGameTypeChanged     MessageType = "game_type_changed"     // 游戏类型已切换
	MsgQuestionModeChanged MessageType = "question_mode_changed" // 出题模式已切换
	MsgGameStarted         MessageType = "game_started"          // 游戏开始
	MsgGameRestarted       MessageType = "game_restarted"        // 游戏已重置

	// 热座游戏流程
	MsgCollectQuestions         MessageType = "collect_questions"          // 进入收题阶段
	MsgPlayerSubmittedQuestions MessageType = "player_submitted_questions" // 有玩家交题
	MsgAllQuestionsCollected    MessageType = "all_questions_collected"    // 收题完成
	MsgVoteReceived             MessageType = "vote_received"              // 收到投票
	MsgQuestionResults          MessageType = "question_results"           // 本题结果
	MsgNewQuestion              MessageType = "new_question"               // 下一题内容
	MsgGameEnded                MessageType = "game_ended"                 // 热座游戏结束

	// 谁是卧底流程
	MsgHintGiven         MessageType = "hint_given"          // 有人描述完毕
	MsgVotePhase         MessageType = "vote_phase"          // 进入投票阶段
	MsgVoteTie           MessageType = "vote_tie"            // 平票，无人出局
	MsgPlayerEliminated  MessageType = "player_eliminated"   // 有人出局
	MsgBlankGuess        MessageType = "blank_guess"         // 私发：白板请猜词
	MsgBlankEliminated   MessageType = "blank_eliminated"    // 白板出局公告
	MsgGuessFailed       MessageType = "guess_failed"        // 白板猜错
	MsgNewRound          MessageType = "new_round"           // 新一轮描述
	MsgUndercoverGameEnd MessageType = "undercover_game_end" // 卧底游戏结束

	// 转盘流程
	MsgSpinStarted MessageType = "spin_started" // 转盘开始转动
	MsgSpinReset   MessageType = "spin_reset"   // 重置转盘界面

	// 统计
	MsgStats       MessageType = "stats"        // 个人统计
	MsgOnlineCount MessageType = "online_count" // 在线人数

	// 错误
	MsgError MessageType = "error" // 错误消息
)
