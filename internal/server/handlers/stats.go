package handlers

import (
	"context"
	"time"

	"github.com/palemoky/party-games/internal/protocol"
	"github.com/palemoky/party-games/internal/server/types"
)

// handlePing 心跳，原样返回客户端时间戳
func (h *Handler) handlePing(client types.ClientInterface, msg *protocol.Message) {
	var ts int64
	if len(msg.Payload) > 0 {
		if payload, err := protocol.ParsePayload[protocol.PingPayload](msg); err == nil {
			ts = payload.Timestamp
		}
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		Timestamp:  ts,
		ServerTime: time.Now().UnixMilli(),
	}))
}

// handleGetStats 获取个人统计
func (h *Handler) handleGetStats(client types.ClientInterface) {
	if h.stats == nil {
		// 未配置统计存储，返回空统计
		client.SendMessage(protocol.MustNewMessage(protocol.MsgStats, protocol.StatsPayload{
			PlayerID:    client.GetID(),
			GamesPlayed: map[string]int{},
			GamesWon:    map[string]int{},
		}))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	stats, err := h.stats.GetPlayerStats(ctx, client.GetID())
	if err != nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "获取统计失败"))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgStats, stats))
}

// handleGetOnlineCount 获取在线人数（按需）
func (h *Handler) handleGetOnlineCount(client types.ClientInterface) {
	client.SendMessage(protocol.MustNewMessage(protocol.MsgOnlineCount, protocol.OnlineCountPayload{
		Count: h.server.GetOnlineCount(),
	}))
}
