package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/party-games/internal/protocol"
	"github.com/palemoky/party-games/internal/server/types"
	"github.com/palemoky/party-games/internal/testutil"
)

func startRoulette(t *testing.T, stats types.StatsRecorder) *fixture {
	t.Helper()
	f := newFixture(t, stats)
	f.addPlayers(t, "roulette", 2)
	require.NoError(t, f.m.StartGame(f.clients[0], StartSettings{}))
	return f
}

func TestRoulette_Start(t *testing.T) {
	t.Parallel()

	f := startRoulette(t, nil)
	assert.Equal(t, PhaseSpin, f.room(t).Phase)

	msg := f.clients[1].LastOfType(protocol.MsgGameStarted)
	require.NotNil(t, msg)
	started, err := protocol.ParsePayload[protocol.RouletteStartedPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, "roulette", started.GameType)
	assert.Len(t, started.WheelConfig, len(wheelSegments))
}

func TestRoulette_SpinBroadcastsSameResult(t *testing.T) {
	t.Parallel()

	f := startRoulette(t, nil)
	require.NoError(t, f.m.RequestSpin(f.clients[1]))

	// Both clients must see the exact same outcome
	var results [2]*protocol.SpinStartedPayload
	for i, c := range f.clients {
		msg := c.LastOfType(protocol.MsgSpinStarted)
		require.NotNil(t, msg)
		spin, err := protocol.ParsePayload[protocol.SpinStartedPayload](msg)
		require.NoError(t, err)
		results[i] = spin
	}
	assert.Equal(t, results[0].SegmentIndex, results[1].SegmentIndex)
	assert.Equal(t, results[0].Text, results[1].Text)

	spin := results[0]
	require.Less(t, spin.SegmentIndex, len(wheelSegments))
	assert.Equal(t, wheelSegments[spin.SegmentIndex].Name, spin.Segment.Name)
	assert.Contains(t, wheelSegments[spin.SegmentIndex].Texts, spin.Text)
	assert.Equal(t, f.ids[1], spin.SpinnerID)
	assert.Equal(t, 1, spin.SpinCount)
}

func TestRoulette_SpinCountAccumulates(t *testing.T) {
	t.Parallel()

	f := startRoulette(t, nil)
	require.NoError(t, f.m.RequestSpin(f.clients[0]))
	require.NoError(t, f.m.RequestSpin(f.clients[1]))
	require.NoError(t, f.m.RequestSpin(f.clients[0]))

	msg := f.clients[0].LastOfType(protocol.MsgSpinStarted)
	spin, err := protocol.ParsePayload[protocol.SpinStartedPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, 3, spin.SpinCount)
}

func TestRoulette_NextTurnResets(t *testing.T) {
	t.Parallel()

	f := startRoulette(t, nil)
	require.NoError(t, f.m.RequestSpin(f.clients[0]))
	require.NoError(t, f.m.RequestNextTurn(f.clients[1]))

	assert.Equal(t, 1, f.clients[0].CountOfType(protocol.MsgSpinReset))
	// Reset is purely cosmetic, the counter keeps going
	assert.Equal(t, 1, f.room(t).Roulette.SpinCount)
}

func TestRoulette_SpinRecordsStats(t *testing.T) {
	t.Parallel()

	stats := &testutil.RecordingStats{}
	f := startRoulette(t, stats)
	require.NoError(t, f.m.RequestSpin(f.clients[0]))

	assert.Eventually(t, func() bool {
		return stats.SpinCount() == 1
	}, time.Second, 10*time.Millisecond)
}
