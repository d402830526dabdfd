package handlers

import (
	"strings"

	"github.com/palemoky/party-games/internal/game"
	"github.com/palemoky/party-games/internal/protocol"
	"github.com/palemoky/party-games/internal/server/types"
)

// resolveName 取玩家提供的昵称，留空用连接上的随机兜底
func resolveName(client types.ClientInterface, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return client.GetName()
	}
	client.SetName(name)
	return name
}

// handleCreateRoom 处理创建房间
func (h *Handler) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	// 维护模式下不再开新房
	if h.server.IsMaintenanceMode() {
		client.SendMessage(protocol.NewErrorMessageWithText(
			protocol.ErrCodeServerMaintenance, "服务器维护中，暂停创建房间"))
		return
	}

	payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 如果已在房间中，先离开
	if client.GetRoom() != "" {
		h.manager.LeaveRoom(client)
	}

	created, err := h.manager.CreateRoom(client, resolveName(client, payload.PlayerName), payload.GameType)
	if err != nil {
		sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, created))
}

// handleJoinRoom 处理加入房间
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	if h.server.IsMaintenanceMode() {
		client.SendMessage(protocol.NewErrorMessageWithText(
			protocol.ErrCodeServerMaintenance, "服务器维护中，暂停加入房间"))
		return
	}

	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if client.GetRoom() != "" {
		h.manager.LeaveRoom(client)
	}

	joined, err := h.manager.JoinRoom(client, payload.RoomCode, resolveName(client, payload.PlayerName))
	if err != nil {
		sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, joined))
}

// handleLeaveRoom 处理离开房间
func (h *Handler) handleLeaveRoom(client types.ClientInterface) {
	if client.GetRoom() == "" {
		return
	}
	h.manager.LeaveRoom(client)
}

// handleChangeGameType 处理切换游戏类型
func (h *Handler) handleChangeGameType(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ChangeGameTypePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.manager.ChangeGameType(client, payload.GameType); err != nil {
		sendError(client, err)
	}
}

// handleChangeQuestionMode 处理切换出题模式
func (h *Handler) handleChangeQuestionMode(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ChangeQuestionModePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.manager.ChangeQuestionMode(client, payload.QuestionMode); err != nil {
		sendError(client, err)
	}
}

// handleStartGame 处理开始游戏
func (h *Handler) handleStartGame(client types.ClientInterface, msg *protocol.Message) {
	// 开局设置可整体缺省
	settings := game.StartSettings{}
	if len(msg.Payload) > 0 {
		payload, err := protocol.ParsePayload[protocol.StartGamePayload](msg)
		if err != nil {
			client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			return
		}
		settings = game.StartSettings{
			QuestionMode:     payload.QuestionMode,
			UndercoverCount:  payload.UndercoverCount,
			IncludeBlank:     payload.IncludeBlank,
			RevealUndercover: payload.RevealUndercover,
		}
	}

	if err := h.manager.StartGame(client, settings); err != nil {
		sendError(client, err)
	}
}

// handleRestartGame 处理重新开始
func (h *Handler) handleRestartGame(client types.ClientInterface) {
	if err := h.manager.RestartGame(client); err != nil {
		sendError(client, err)
	}
}
