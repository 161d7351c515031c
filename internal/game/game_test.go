package game

import (
	"testing"
	"time"

	"github.com/lonng/liaptong/internal/game/piece"
	"github.com/lonng/liaptong/internal/game/rule"
	"github.com/lonng/liaptong/pkg/constant"
	"github.com/lonng/liaptong/pkg/errutil"
	"github.com/lonng/liaptong/protocol"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	defer viper.Reset()

	cfg := LoadConfig()
	assert.Equal(t, rule.DefaultOptions(), cfg.Rules)
	assert.Equal(t, defaultRedealTimeout, cfg.RedealTimeout)
	assert.Equal(t, minHeartbeat, cfg.Heartbeat)
	assert.Empty(t, cfg.CryptoKey)

	viper.Set("core.heartbeat", 30)
	viper.Set("game-server.port", 33251)
	viper.Set("game.hit_bonus", 10)
	viper.Set("game.max_redeals", 0)
	viper.Set("game.redeal_mode", "simultaneous")
	viper.Set("game.redeal_timeout", 15)

	cfg = LoadConfig()
	assert.Equal(t, ":33251", cfg.Addr)
	assert.Equal(t, 30*time.Second, cfg.Heartbeat)
	assert.Equal(t, 10, cfg.Rules.HitBonus)
	assert.Equal(t, 0, cfg.Rules.MaxRedeals)
	assert.Equal(t, constant.RedealSimultaneous, cfg.Rules.RedealMode)
	assert.Equal(t, 15*time.Second, cfg.RedealTimeout)
}

func TestVerifyOptions(t *testing.T) {
	base := rule.DefaultOptions()

	opts, err := verifyOptions(base, nil)
	require.NoError(t, err)
	assert.Equal(t, base, opts)

	opts, err = verifyOptions(base, &protocol.RoomOptions{RedealMode: "simultaneous", WinThreshold: 100})
	require.NoError(t, err)
	assert.Equal(t, constant.RedealSimultaneous, opts.RedealMode)
	assert.Equal(t, 100, opts.WinThreshold)
	assert.Equal(t, constant.RedealSequential, base.RedealMode, "base untouched")

	_, err = verifyOptions(base, &protocol.RoomOptions{RedealMode: "random"})
	assert.True(t, errutil.Is(err, errutil.ErrInvalidParameter))

	_, err = verifyOptions(base, &protocol.RoomOptions{WinThreshold: 7})
	assert.True(t, errutil.Is(err, errutil.ErrInvalidParameter))
}

func TestToProtocolPieces(t *testing.T) {
	ps := toProtocolPieces(dealA()[0][:2])
	require.Len(t, ps, 2)
	assert.Equal(t, protocol.Piece{Kind: G.String(), Color: piece.Red.String(), Value: 14}, ps[0])
	assert.Equal(t, 8, ps[1].Value)
}

func TestManager_RoomQueries(t *testing.T) {
	m := NewManager(Config{Rules: rule.DefaultOptions()})
	assert.Empty(t, m.RoomSummaries())

	_, err := m.RoomView("12")
	assert.True(t, errutil.Is(err, errutil.ErrIllegalParameter))
	_, err = m.RoomView("654321")
	assert.True(t, errutil.Is(err, errutil.ErrRoomNotFound))

	r, _ := newTestRoom(t, rule.DefaultOptions(), dealA())
	r.onDestroy = m.removeRoom
	require.NoError(t, m.rooms.add(r))

	_, err = m.RoomView("123456")
	assert.True(t, errutil.Is(err, errutil.ErrIllegalPhase), "not started")

	p := newPlayer(nil, 1, "human")
	_, err = r.seat(p)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, r.addBot())
	}
	require.NoError(t, r.ready(p))

	v, err := m.RoomView("123456")
	require.NoError(t, err)
	assert.Empty(t, v.Hand, "spectators see no hand")
	assert.Len(t, v.Players, 4)

	list := m.RoomSummaries()
	require.Len(t, list, 1)
	assert.Equal(t, "123456", list[0].RoomNo)

	assert.True(t, m.roomNumberExists("123456"))
	no, ok := m.numbers.Next()
	require.True(t, ok)
	assert.NotEqual(t, "123456", no.String())

	assert.True(t, errutil.Is(m.Kick(1), errutil.ErrPlayerNotFound))
}
