package handlers

import (
	"github.com/palemoky/party-games/internal/protocol"
	"github.com/palemoky/party-games/internal/server/types"
)

// handleSubmitQuestions 处理自定义问题提交
func (h *Handler) handleSubmitQuestions(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.SubmitQuestionsPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.manager.SubmitQuestions(client, payload.Questions); err != nil {
		sendError(client, err)
	}
}

// handleVote 处理投票（热座与卧底共用）
func (h *Handler) handleVote(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.VotePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.manager.Vote(client, payload.TargetID); err != nil {
		sendError(client, err)
	}
}

// handleNextQuestion 处理进入下一题
func (h *Handler) handleNextQuestion(client types.ClientInterface) {
	if err := h.manager.NextQuestion(client); err != nil {
		sendError(client, err)
	}
}

// handleGiveHint 处理"描述完毕"
func (h *Handler) handleGiveHint(client types.ClientInterface) {
	if err := h.manager.GiveHint(client); err != nil {
		sendError(client, err)
	}
}

// handleGuessWord 处理白板猜词
func (h *Handler) handleGuessWord(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.GuessWordPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.manager.GuessWord(client, payload.Word); err != nil {
		sendError(client, err)
	}
}

// handleRequestSpin 处理转盘请求
func (h *Handler) handleRequestSpin(client types.ClientInterface) {
	if err := h.manager.RequestSpin(client); err != nil {
		sendError(client, err)
	}
}

// handleRequestNextTurn 处理转盘下一轮
func (h *Handler) handleRequestNextTurn(client types.ClientInterface) {
	if err := h.manager.RequestNextTurn(client); err != nil {
		sendError(client, err)
	}
}
