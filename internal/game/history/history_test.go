package history

import (
	"testing"

	"github.com/lonng/liaptong/internal/game/engine"
	"github.com/lonng/liaptong/internal/game/piece"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_RecordAndModel(t *testing.T) {
	h := New(7, "123456", "game-1", 2, [piece.Seats]string{"a", "b", "c", "d"})

	assert.False(t, h.Record(engine.HandsDealt{Round: 2, Multiplier: 1}))
	assert.False(t, h.Record(engine.Declared{Round: 2, PlayerID: "a", Value: 1}))
	assert.False(t, h.Record(engine.RedealTriggered{Round: 2, Multiplier: 2}))
	assert.Empty(t, h.Declarations, "redeal drops declarations")
	assert.False(t, h.Record(engine.HandsDealt{Round: 2, Multiplier: 2}))
	assert.False(t, h.Record(engine.Declared{Round: 2, PlayerID: "a", Value: 0}))
	assert.False(t, h.Record(engine.TurnResolved{Round: 2, Winner: "b", CapturedPilesDelta: 1}))
	assert.False(t, h.Record(engine.PhaseChanged{Round: 2}))

	end := engine.RoundResult{
		Round:      2,
		Multiplier: 2,
		Players:    [piece.Seats]string{"a", "b", "c", "d"},
		Deltas:     [piece.Seats]int{6, -2, 12, -4},
	}
	assert.True(t, h.Record(engine.RoundScored{RoundResult: end}))

	h.SetHands([piece.Seats]piece.Pieces{{piece.New(piece.General, piece.Red)}})

	m, err := h.Model()
	require.NoError(t, err)
	assert.Equal(t, int64(7), m.RoomId)
	assert.Equal(t, "123456", m.RoomNo)
	assert.Equal(t, 2, m.Round)
	assert.Equal(t, 2, m.Multiplier)
	assert.Equal(t, "c", m.PlayerName2)
	assert.Equal(t, 12, m.ScoreChange2)
	assert.Equal(t, -4, m.ScoreChange3)

	snap, err := Decode(m.Snapshot)
	require.NoError(t, err)
	assert.Len(t, snap.Dealt, 2)
	assert.Len(t, snap.Redeals, 1)
	require.Len(t, snap.Declarations, 1)
	assert.Equal(t, 0, snap.Declarations[0].Value)
	assert.Len(t, snap.Turns, 1)
	require.NotNil(t, snap.End)
	assert.Equal(t, end.Deltas, snap.End.Deltas)
	assert.Equal(t, 14, snap.Hands[0][0].Value)
}

func TestMatchStats(t *testing.T) {
	stats := MatchStats{}
	stats.Push(&engine.RoundResult{
		Players:  [piece.Seats]string{"a", "b", "c", "d"},
		Declared: [piece.Seats]int{0, 2, 3, 1},
		Captured: [piece.Seats]int{0, 2, 5, 1},
		Deltas:   [piece.Seats]int{3, 7, -2, 6},
		Hits:     [piece.Seats]bool{true, true, false, true},
	})
	stats.Push(&engine.RoundResult{
		Players:  [piece.Seats]string{"a", "b", "c", "d"},
		Declared: [piece.Seats]int{1, 2, 3, 1},
		Captured: [piece.Seats]int{1, 0, 3, 4},
		Deltas:   [piece.Seats]int{6, -2, 8, -3},
		Hits:     [piece.Seats]bool{true, false, true, false},
	})
	stats.Push(nil)

	assert.Equal(t, 2, stats.Round())
	res := stats.Result()
	assert.Equal(t, &Record{Hits: 2, Perfect: 1, Captured: 1, TotalScore: 9}, res["a"])
	assert.Equal(t, &Record{Hits: 1, Perfect: 0, Captured: 2, TotalScore: 5}, res["b"])
	assert.Equal(t, &Record{Hits: 1, Captured: 8, TotalScore: 6}, res["c"])
}
