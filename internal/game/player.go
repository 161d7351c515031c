package game

import (
	"fmt"
	"strconv"

	"github.com/lonng/liaptong/internal/game/engine"
	"github.com/lonng/liaptong/pkg/room"
	"github.com/lonng/liaptong/protocol"

	"github.com/lonng/nano/session"
	log "github.com/sirupsen/logrus"
)

const noSeat = -1

type Player struct {
	uid   int64  // 用户ID, 机器人为0
	id    string // 引擎中的玩家ID
	name  string // 玩家名字
	isBot bool

	// 玩家数据
	session *session.Session
	offline bool

	room *Room // 当前房间
	seat int   // 当前玩家在桌上的方位

	logger *log.Entry // 日志
}

func newPlayer(s *session.Session, uid int64, name string) *Player {
	p := &Player{
		uid:    uid,
		id:     strconv.FormatInt(uid, 10),
		name:   name,
		seat:   noSeat,
		logger: log.WithField(fieldPlayer, uid),
	}

	if s != nil {
		p.bindSession(s)
	}
	return p
}

func newBot(no room.Number, seat int) *Player {
	id := fmt.Sprintf("bot-%s-%d", no, seat)
	return &Player{
		id:     id,
		name:   fmt.Sprintf("机器人%d", seat+1),
		isBot:  true,
		seat:   noSeat,
		logger: log.WithFields(log.Fields{fieldRoom: no, fieldPlayer: id}),
	}
}

func (p *Player) setRoom(r *Room, seat int) {
	if r == nil {
		p.logger.Error("房间为空")
		return
	}

	p.room = r
	p.seat = seat
	p.logger = log.WithFields(log.Fields{fieldRoom: r.roomNo, fieldPlayer: p.id})
}

func (p *Player) leaveRoom() {
	p.room = nil
	p.seat = noSeat
	p.logger = log.WithField(fieldPlayer, p.id)
}

func (p *Player) bindSession(s *session.Session) {
	p.session = s
	p.session.Set(kCurPlayer, p)
}

func (p *Player) removeSession() {
	if p.session == nil {
		return
	}
	p.session.Remove(kCurPlayer)
	p.session = nil
}

// push sends a message to the player, silently dropping it for bots and
// disconnected players.
func (p *Player) push(route string, v interface{}) {
	if p.session == nil || p.offline {
		return
	}
	if err := p.session.Push(route, v); err != nil {
		p.logger.Errorf("推送消息失败: Route=%s, Error=%v", route, err)
	}
}

func (p *Player) engineSeat() engine.Seat {
	return engine.Seat{ID: p.id, Name: p.name, IsBot: p.isBot}
}

func (p *Player) seatInfo(ready bool) protocol.SeatInfo {
	return protocol.SeatInfo{
		Seat:    p.seat,
		UID:     p.uid,
		Name:    p.name,
		IsBot:   p.isBot,
		IsReady: ready,
		Offline: p.offline,
	}
}

func (p *Player) Uid() int64 {
	return p.uid
}
