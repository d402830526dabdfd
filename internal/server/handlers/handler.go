package handlers

import (
	"errors"
	"log"
	"runtime/debug"

	"github.com/palemoky/party-games/internal/game"
	"github.com/palemoky/party-games/internal/protocol"
	"github.com/palemoky/party-games/internal/server/types"
)

// HandlerDeps 处理器依赖
type HandlerDeps struct {
	Server  types.ServerContext
	Manager *game.Manager
	Stats   types.StatsRecorder // 可为 nil
}

// Handler 消息处理器
type Handler struct {
	server   types.ServerContext
	manager  *game.Manager
	stats    types.StatsRecorder
	handlers map[protocol.MessageType]handlerFunc
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		server:  deps.Server,
		manager: deps.Manager,
		stats:   deps.Stats,
	}
	h.initHandlers()
	return h
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// 连接操作
		protocol.MsgPing: h.handlePing,

		// 房间操作
		protocol.MsgCreateRoom:         h.handleCreateRoom,
		protocol.MsgJoinRoom:           h.handleJoinRoom,
		protocol.MsgLeaveRoom:          func(c types.ClientInterface, _ *protocol.Message) { h.handleLeaveRoom(c) },
		protocol.MsgChangeGameType:     h.handleChangeGameType,
		protocol.MsgChangeQuestionMode: h.handleChangeQuestionMode,
		protocol.MsgStartGame:          h.handleStartGame,
		protocol.MsgRestartGame:        func(c types.ClientInterface, _ *protocol.Message) { h.handleRestartGame(c) },

		// 热座操作
		protocol.MsgSubmitQuestions: h.handleSubmitQuestions,
		protocol.MsgVote:            h.handleVote,
		protocol.MsgNextQuestion:    func(c types.ClientInterface, _ *protocol.Message) { h.handleNextQuestion(c) },

		// 谁是卧底操作
		protocol.MsgGiveHint:  func(c types.ClientInterface, _ *protocol.Message) { h.handleGiveHint(c) },
		protocol.MsgGuessWord: h.handleGuessWord,

		// 转盘操作
		protocol.MsgRequestSpin:     func(c types.ClientInterface, _ *protocol.Message) { h.handleRequestSpin(c) },
		protocol.MsgRequestNextTurn: func(c types.ClientInterface, _ *protocol.Message) { h.handleRequestNextTurn(c) },

		// 信息查询
		protocol.MsgGetStats:       func(c types.ClientInterface, _ *protocol.Message) { h.handleGetStats(c) },
		protocol.MsgGetOnlineCount: func(c types.ClientInterface, _ *protocol.Message) { h.handleGetOnlineCount(c) },
	}
}

// Handle 处理消息。单条消息的 panic 不拖垮整个连接。
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("💥 处理 %s 消息时 panic: %v\n%s", msg.Type, r, debug.Stack())
			client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeUnknown))
		}
	}()

	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	log.Printf("⚠️  未知消息类型: '%s' (来自玩家: %s, ID: %s)", msg.Type, client.GetName(), client.GetID())
	client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// sendError 把错误翻译成协议错误消息
func sendError(client types.ClientInterface, err error) {
	var roomErr *types.RoomError
	if errors.As(err, &roomErr) {
		client.SendMessage(protocol.NewErrorMessageWithText(roomErr.Code, roomErr.Message))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
