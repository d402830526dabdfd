package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/party-games/internal/config"
	"github.com/palemoky/party-games/internal/game"
	"github.com/palemoky/party-games/internal/protocol"
	"github.com/palemoky/party-games/internal/testutil"
)

// stubServer is a minimal ServerContext for driving the handler directly.
type stubServer struct {
	maintenance bool
	online      int
}

func (s *stubServer) IsMaintenanceMode() bool { return s.maintenance }
func (s *stubServer) GetOnlineCount() int     { return s.online }

func newTestHandler(srv *stubServer) *Handler {
	cfg := config.Default()
	return NewHandler(HandlerDeps{
		Server:  srv,
		Manager: game.NewManager(&cfg.Game, nil),
	})
}

func msgOf(t *testing.T, msgType protocol.MessageType, payload any) *protocol.Message {
	t.Helper()
	msg, err := protocol.NewMessage(msgType, payload)
	require.NoError(t, err)
	return msg
}

func TestHandle_UnknownType(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&stubServer{})
	c := &testutil.SimpleClient{ID: "c1", Name: "乱入者"}

	h.Handle(c, &protocol.Message{Type: "teleport"})

	msg := c.LastOfType(protocol.MsgError)
	require.NotNil(t, msg)
	errPayload, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeInvalidMsg, errPayload.Code)
}

func TestHandle_Ping(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&stubServer{})
	c := &testutil.SimpleClient{ID: "c1"}

	h.Handle(c, msgOf(t, protocol.MsgPing, protocol.PingPayload{Timestamp: 12345}))

	msg := c.LastOfType(protocol.MsgPong)
	require.NotNil(t, msg)
	pong, err := protocol.ParsePayload[protocol.PongPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), pong.Timestamp)
	assert.NotZero(t, pong.ServerTime)
}

func TestHandle_CreateRoom(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&stubServer{})
	c := &testutil.SimpleClient{ID: "c1"}

	h.Handle(c, msgOf(t, protocol.MsgCreateRoom, protocol.CreateRoomPayload{PlayerName: "阿狸"}))

	msg := c.LastOfType(protocol.MsgRoomCreated)
	require.NotNil(t, msg)
	created, err := protocol.ParsePayload[protocol.RoomCreatedPayload](msg)
	require.NoError(t, err)
	assert.Len(t, created.RoomCode, 6)
	assert.Equal(t, "hotseat", created.GameType)
	assert.Equal(t, "阿狸", c.Name, "provided name sticks to the connection")
	assert.Equal(t, created.RoomCode, c.RoomCode)
}

func TestHandle_CreateRoom_BlankNameGetsFallback(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&stubServer{})
	c := &testutil.SimpleClient{ID: "c1", Name: "随机兜底"}

	h.Handle(c, msgOf(t, protocol.MsgCreateRoom, protocol.CreateRoomPayload{PlayerName: "   "}))

	msg := c.LastOfType(protocol.MsgRoomCreated)
	require.NotNil(t, msg)
	created, err := protocol.ParsePayload[protocol.RoomCreatedPayload](msg)
	require.NoError(t, err)
	require.Len(t, created.Players, 1)
	assert.Equal(t, "随机兜底", created.Players[0].Name)
}

func TestHandle_CreateRoom_Maintenance(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&stubServer{maintenance: true})
	c := &testutil.SimpleClient{ID: "c1"}

	h.Handle(c, msgOf(t, protocol.MsgCreateRoom, protocol.CreateRoomPayload{PlayerName: "p"}))

	msg := c.LastOfType(protocol.MsgError)
	require.NotNil(t, msg)
	errPayload, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeServerMaintenance, errPayload.Code)
	assert.Equal(t, 0, c.CountOfType(protocol.MsgRoomCreated))
}

func TestHandle_JoinRoom_FullFlow(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&stubServer{})
	host := &testutil.SimpleClient{ID: "c1"}
	h.Handle(host, msgOf(t, protocol.MsgCreateRoom, protocol.CreateRoomPayload{PlayerName: "房主"}))
	created, err := protocol.ParsePayload[protocol.RoomCreatedPayload](host.LastOfType(protocol.MsgRoomCreated))
	require.NoError(t, err)

	guest := &testutil.SimpleClient{ID: "c2"}
	h.Handle(guest, msgOf(t, protocol.MsgJoinRoom, protocol.JoinRoomPayload{
		RoomCode:   created.RoomCode,
		PlayerName: "客人",
	}))

	msg := guest.LastOfType(protocol.MsgRoomJoined)
	require.NotNil(t, msg)
	joined, err := protocol.ParsePayload[protocol.RoomJoinedPayload](msg)
	require.NoError(t, err)
	assert.Len(t, joined.Players, 2)
	assert.Equal(t, 1, host.CountOfType(protocol.MsgPlayerJoined))
}

func TestHandle_JoinRoom_BadCode(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&stubServer{})
	c := &testutil.SimpleClient{ID: "c1"}

	h.Handle(c, msgOf(t, protocol.MsgJoinRoom, protocol.JoinRoomPayload{RoomCode: "NOPE42", PlayerName: "p"}))

	msg := c.LastOfType(protocol.MsgError)
	require.NotNil(t, msg)
	errPayload, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeRoomNotFound, errPayload.Code)
}

func TestHandle_InvalidPayload(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&stubServer{})
	c := &testutil.SimpleClient{ID: "c1"}

	h.Handle(c, &protocol.Message{Type: protocol.MsgJoinRoom, Payload: []byte(`{"room_code":42}`)})

	msg := c.LastOfType(protocol.MsgError)
	require.NotNil(t, msg)
	errPayload, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeInvalidMsg, errPayload.Code)
}

func TestHandle_StartGame_DefaultSettings(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&stubServer{})
	host := &testutil.SimpleClient{ID: "c1"}
	h.Handle(host, msgOf(t, protocol.MsgCreateRoom, protocol.CreateRoomPayload{PlayerName: "房主"}))
	created, err := protocol.ParsePayload[protocol.RoomCreatedPayload](host.LastOfType(protocol.MsgRoomCreated))
	require.NoError(t, err)

	guest := &testutil.SimpleClient{ID: "c2"}
	h.Handle(guest, msgOf(t, protocol.MsgJoinRoom, protocol.JoinRoomPayload{RoomCode: created.RoomCode, PlayerName: "客人"}))

	// Empty payload means all defaults
	h.Handle(host, &protocol.Message{Type: protocol.MsgStartGame})

	assert.Equal(t, 1, guest.CountOfType(protocol.MsgGameStarted))
}

func TestHandle_GetStats_NoStore(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&stubServer{})
	c := &testutil.SimpleClient{ID: "c1"}

	h.Handle(c, &protocol.Message{Type: protocol.MsgGetStats})

	msg := c.LastOfType(protocol.MsgStats)
	require.NotNil(t, msg)
	stats, err := protocol.ParsePayload[protocol.StatsPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, "c1", stats.PlayerID)
	assert.Empty(t, stats.GamesPlayed)
}

func TestHandle_GetOnlineCount(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&stubServer{online: 7})
	c := &testutil.SimpleClient{ID: "c1"}

	h.Handle(c, &protocol.Message{Type: protocol.MsgGetOnlineCount})

	msg := c.LastOfType(protocol.MsgOnlineCount)
	require.NotNil(t, msg)
	count, err := protocol.ParsePayload[protocol.OnlineCountPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, 7, count.Count)
}

func TestHandle_RouletteSpin_SameResultForBoth(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&stubServer{})
	host := &testutil.SimpleClient{ID: "c1"}
	h.Handle(host, msgOf(t, protocol.MsgCreateRoom, protocol.CreateRoomPayload{
		PlayerName: "甲",
		GameType:   "roulette",
	}))
	created, err := protocol.ParsePayload[protocol.RoomCreatedPayload](host.LastOfType(protocol.MsgRoomCreated))
	require.NoError(t, err)

	guest := &testutil.SimpleClient{ID: "c2"}
	h.Handle(guest, msgOf(t, protocol.MsgJoinRoom, protocol.JoinRoomPayload{RoomCode: created.RoomCode, PlayerName: "乙"}))
	h.Handle(host, &protocol.Message{Type: protocol.MsgStartGame})
	h.Handle(guest, &protocol.Message{Type: protocol.MsgRequestSpin})

	hostSpin, err := protocol.ParsePayload[protocol.SpinStartedPayload](host.LastOfType(protocol.MsgSpinStarted))
	require.NoError(t, err)
	guestSpin, err := protocol.ParsePayload[protocol.SpinStartedPayload](guest.LastOfType(protocol.MsgSpinStarted))
	require.NoError(t, err)

	// Both players must see the exact same server-chosen outcome
	assert.Equal(t, hostSpin.SegmentIndex, guestSpin.SegmentIndex)
	assert.Equal(t, hostSpin.Text, guestSpin.Text)
	assert.Equal(t, "c2", hostSpin.SpinnerID)
}

func TestHandle_VoteWithoutRoom(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&stubServer{})
	c := &testutil.SimpleClient{ID: "c1"}

	h.Handle(c, msgOf(t, protocol.MsgVote, protocol.VotePayload{TargetID: "x"}))

	msg := c.LastOfType(protocol.MsgError)
	require.NotNil(t, msg)
	errPayload, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeNotInRoom, errPayload.Code)
}
