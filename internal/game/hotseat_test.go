package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/party-games/internal/protocol"
)

func startHotseat(t *testing.T, n int) *fixture {
	t.Helper()
	f := newFixture(t, nil)
	f.addPlayers(t, "hotseat", n)
	require.NoError(t, f.m.StartGame(f.clients[0], StartSettings{}))
	return f
}

func TestHotseat_Start_DefaultMode(t *testing.T) {
	t.Parallel()

	f := startHotseat(t, 3)
	r := f.room(t)
	assert.Equal(t, PhaseQuestion, r.Phase)

	msg := f.clients[2].LastOfType(protocol.MsgGameStarted)
	require.NotNil(t, msg)
	started, err := protocol.ParsePayload[protocol.HotseatStartedPayload](msg)
	require.NoError(t, err)
	assert.NotEmpty(t, started.Question)
	assert.Equal(t, 1, started.QuestionNumber)
	// 3 players x default multiplier 5, capped by library size
	assert.Equal(t, 15, started.TotalQuestions)
	assert.Len(t, started.Players, 3)
}

func TestHotseat_TotalQuestions_CappedByLibrary(t *testing.T) {
	t.Parallel()

	// Enough players to exceed the built-in library
	f := startHotseat(t, 8)
	msg := f.clients[0].LastOfType(protocol.MsgGameStarted)
	require.NotNil(t, msg)
	started, err := protocol.ParsePayload[protocol.HotseatStartedPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, len(hotseatQuestions), started.TotalQuestions)
}

func TestHotseat_VoteRound(t *testing.T) {
	t.Parallel()

	f := startHotseat(t, 3)
	target := f.ids[2]

	require.NoError(t, f.m.Vote(f.clients[0], target))
	require.NoError(t, f.m.Vote(f.clients[1], target))
	// Results only come once everyone has voted
	assert.Equal(t, 0, f.clients[0].CountOfType(protocol.MsgQuestionResults))

	require.NoError(t, f.m.Vote(f.clients[2], f.ids[0]))

	msg := f.clients[1].LastOfType(protocol.MsgQuestionResults)
	require.NotNil(t, msg)
	results, err := protocol.ParsePayload[protocol.QuestionResultsPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, []string{"player2"}, results.Winners)
	assert.Equal(t, 2, results.Votes)
	assert.Len(t, results.VoteDetails, 3)
	assert.False(t, results.IsLastQuestion)
}

func TestHotseat_VoteOverwrite(t *testing.T) {
	t.Parallel()

	f := startHotseat(t, 2)

	// player0 changes their mind before the round closes
	require.NoError(t, f.m.Vote(f.clients[0], f.ids[0]))
	require.NoError(t, f.m.Vote(f.clients[0], f.ids[1]))
	require.NoError(t, f.m.Vote(f.clients[1], f.ids[1]))

	msg := f.clients[0].LastOfType(protocol.MsgQuestionResults)
	require.NotNil(t, msg)
	results, err := protocol.ParsePayload[protocol.QuestionResultsPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, []string{"player1"}, results.Winners)
	assert.Equal(t, 2, results.Votes)
}

func TestHotseat_RevoteAfterResultsRejected(t *testing.T) {
	t.Parallel()

	f := startHotseat(t, 3)
	r := f.room(t)

	for i := range f.clients {
		require.NoError(t, f.m.Vote(f.clients[i], f.ids[0]))
	}
	require.Len(t, r.Hotseat.Results, 1)

	// A late re-vote must not settle the same question twice
	assert.Equal(t, ErrOutOfPhase, f.m.Vote(f.clients[1], f.ids[2]))
	assert.Len(t, r.Hotseat.Results, 1)
	assert.Equal(t, 1, f.clients[0].CountOfType(protocol.MsgQuestionResults))

	// The next question opens voting again
	require.NoError(t, f.m.NextQuestion(f.clients[0]))
	require.NoError(t, f.m.Vote(f.clients[1], f.ids[2]))
}

func TestHotseat_DisconnectCompletesTally(t *testing.T) {
	t.Parallel()

	f := startHotseat(t, 3)
	r := f.room(t)

	require.NoError(t, f.m.Vote(f.clients[0], f.ids[1]))
	require.NoError(t, f.m.Vote(f.clients[1], f.ids[1]))
	assert.Equal(t, 0, f.clients[0].CountOfType(protocol.MsgQuestionResults))

	// The missing ballot leaves with its owner, the round settles without it
	f.m.HandleDisconnect(f.clients[2])

	require.Len(t, r.Hotseat.Results, 1)
	assert.Equal(t, []string{"player1"}, r.Hotseat.Results[0].Winners)
	assert.Equal(t, 1, f.clients[0].CountOfType(protocol.MsgQuestionResults))
}

func TestHotseat_VoteUnknownTargetIgnored(t *testing.T) {
	t.Parallel()

	f := startHotseat(t, 2)

	require.NoError(t, f.m.Vote(f.clients[0], "nobody"))
	assert.Empty(t, f.room(t).Votes, "vote for a missing player must not count")
}

func TestHotseat_NextQuestion(t *testing.T) {
	t.Parallel()

	f := startHotseat(t, 2)
	require.NoError(t, f.m.Vote(f.clients[0], f.ids[1]))
	require.NoError(t, f.m.Vote(f.clients[1], f.ids[0]))

	require.NoError(t, f.m.NextQuestion(f.clients[0]))

	msg := f.clients[1].LastOfType(protocol.MsgNewQuestion)
	require.NotNil(t, msg)
	next, err := protocol.ParsePayload[protocol.NewQuestionPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, 2, next.QuestionNumber)
	assert.Empty(t, f.room(t).Votes, "votes reset between questions")
}

func TestHotseat_GameEnd(t *testing.T) {
	t.Parallel()

	f := startHotseat(t, 2)
	total := hotseatTotalQuestions(f.room(t))

	for i := 0; i < total; i++ {
		require.NoError(t, f.m.Vote(f.clients[0], f.ids[1]))
		require.NoError(t, f.m.Vote(f.clients[1], f.ids[1]))
		require.NoError(t, f.m.NextQuestion(f.clients[0]))
	}

	r := f.room(t)
	assert.Equal(t, PhaseEnded, r.Phase)

	msg := f.clients[0].LastOfType(protocol.MsgGameEnded)
	require.NotNil(t, msg)
	ended, err := protocol.ParsePayload[protocol.GameEndedPayload](msg)
	require.NoError(t, err)
	assert.Len(t, ended.Results, total)

	// The last results broadcast flagged the final question
	last := f.clients[0].LastOfType(protocol.MsgQuestionResults)
	results, err := protocol.ParsePayload[protocol.QuestionResultsPayload](last)
	require.NoError(t, err)
	assert.True(t, results.IsLastQuestion)
}

func TestHotseat_CustomMode_Collect(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.addPlayers(t, "hotseat", 2)
	require.NoError(t, f.m.StartGame(f.clients[0], StartSettings{QuestionMode: QuestionModeCustom}))
	assert.Equal(t, PhaseCollecting, f.room(t).Phase)
	assert.Equal(t, 1, f.clients[1].CountOfType(protocol.MsgCollectQuestions))

	// Blank entries are dropped, the rest pooled
	require.NoError(t, f.m.SubmitQuestions(f.clients[0], []string{"谁最能吃辣？", "  ", ""}))
	assert.Equal(t, 0, f.clients[0].CountOfType(protocol.MsgAllQuestionsCollected))

	require.NoError(t, f.m.SubmitQuestions(f.clients[1], []string{"谁最爱睡懒觉？"}))
	assert.Equal(t, 1, f.clients[0].CountOfType(protocol.MsgAllQuestionsCollected))

	// First question arrives only after the collect delay
	assert.Equal(t, PhaseCollecting, f.room(t).Phase)
	f.firePending()

	r := f.room(t)
	assert.Equal(t, PhaseQuestion, r.Phase)
	assert.Len(t, r.Hotseat.Questions, 2)
}

func TestHotseat_CustomMode_DuplicateSubmitIgnored(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.addPlayers(t, "hotseat", 2)
	require.NoError(t, f.m.StartGame(f.clients[0], StartSettings{QuestionMode: QuestionModeCustom}))

	require.NoError(t, f.m.SubmitQuestions(f.clients[0], []string{"第一次"}))
	require.NoError(t, f.m.SubmitQuestions(f.clients[0], []string{"第二次"}))

	r := f.room(t)
	assert.Len(t, r.Hotseat.CustomQuestions, 1, "second submit from the same player is ignored")
	assert.Equal(t, PhaseCollecting, r.Phase)
}

func TestHotseat_CustomMode_EmptyPoolBackfilled(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.addPlayers(t, "hotseat", 2)
	require.NoError(t, f.m.StartGame(f.clients[0], StartSettings{QuestionMode: QuestionModeCustom}))

	// Nobody actually wrote a question
	require.NoError(t, f.m.SubmitQuestions(f.clients[0], nil))
	require.NoError(t, f.m.SubmitQuestions(f.clients[1], []string{"   "}))
	f.firePending()

	r := f.room(t)
	assert.Equal(t, PhaseQuestion, r.Phase)
	assert.Len(t, r.Hotseat.Questions, 6, "backfilled with 3 per player from the library")
}

func TestHotseat_SubmitOutOfPhase(t *testing.T) {
	t.Parallel()

	f := startHotseat(t, 2)
	assert.Equal(t, ErrOutOfPhase, f.m.SubmitQuestions(f.clients[0], []string{"太晚了"}))
}

func TestHotseat_VoteOutOfPhase(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.addPlayers(t, "hotseat", 2)
	require.NoError(t, f.m.StartGame(f.clients[0], StartSettings{QuestionMode: QuestionModeCustom}))

	// Still collecting, voting not open yet
	assert.Equal(t, ErrOutOfPhase, f.m.Vote(f.clients[0], f.ids[1]))
}
