package game

import (
	"github.com/lonng/liaptong/internal/game/engine"
	"github.com/lonng/liaptong/pkg/errutil"
	"github.com/lonng/liaptong/pkg/room"
	"github.com/lonng/liaptong/protocol"
)

// RoomSummaries lists the live rooms for the web api.
func (m *RoomManager) RoomSummaries() []protocol.RoomSummary {
	rooms := m.rooms.all()
	list := make([]protocol.RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		list = append(list, r.summary())
	}
	return list
}

// RoomView returns the spectator view of a running room.
func (m *RoomManager) RoomView(no string) (engine.View, error) {
	if !room.Number(no).Valid() {
		return engine.View{}, errutil.Rejectf(errutil.ErrIllegalParameter, "invalid room number %q", no)
	}
	r, err := m.rooms.get(room.Number(no))
	if err != nil {
		return engine.View{}, err
	}
	return r.view("")
}

func (m *RoomManager) BroadcastSystemMessage(message string) {
	if err := m.group.Broadcast("onBroadcast", &protocol.StringMessage{Message: message}); err != nil {
		logger.Errorf("系统消息广播失败: %v", err)
	}
}

// Kick closes the player's connection. A player in a running game is taken
// over by the server until reconnecting.
func (m *RoomManager) Kick(uid int64) error {
	p, ok := m.player(uid)
	if !ok || p.session == nil {
		return errutil.Rejectf(errutil.ErrPlayerNotFound, "player %d is not online", uid)
	}
	p.logger.Info("玩家被踢下线")
	p.session.Close()
	return nil
}
