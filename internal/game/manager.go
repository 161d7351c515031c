package game

import (
	"sync"

	"github.com/lonng/liaptong/db"
	"github.com/lonng/liaptong/internal/game/piece"
	"github.com/lonng/liaptong/internal/security"
	"github.com/lonng/liaptong/pkg/errutil"
	"github.com/lonng/liaptong/pkg/room"
	"github.com/lonng/liaptong/protocol"

	"github.com/lonng/nano"
	"github.com/lonng/nano/component"
	"github.com/lonng/nano/session"
)

// RoomManager is the nano component every client request goes through.
type RoomManager struct {
	component.Base
	group   *nano.Group // 所有在线玩家
	rooms   *roomStore
	numbers *room.Generator
	cfg     Config

	mu      sync.RWMutex
	players map[int64]*Player // 在线或在局中的玩家
}

func NewManager(cfg Config) *RoomManager {
	m := &RoomManager{
		group:   nano.NewGroup("_SYSTEM_MESSAGE_BROADCAST"),
		rooms:   newRoomStore(),
		cfg:     cfg,
		players: map[int64]*Player{},
	}
	m.numbers = room.NewGenerator(0, m.roomNumberExists)
	return m
}

func (m *RoomManager) AfterInit() {
	session.Lifetime.OnClosed(m.onSessionClosed)
}

func (m *RoomManager) roomNumberExists(no string) bool {
	if m.rooms.exists(no) {
		return true
	}
	if !db.Enabled() {
		return false
	}
	return db.RoomNumberExists(no)
}

func (m *RoomManager) player(uid int64) (*Player, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.players[uid]
	return p, ok
}

func (m *RoomManager) setPlayer(p *Player) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.players[p.uid] = p
}

func (m *RoomManager) removePlayer(uid int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.players, uid)
}

func (m *RoomManager) onSessionClosed(s *session.Session) {
	p, err := playerWithSession(s)
	if err != nil {
		return
	}
	// 已被新连接顶替
	if p.session != s {
		return
	}

	m.group.Leave(s)
	if r := p.room; r != nil {
		r.setOffline(p)
	}
	p.removeSession()

	if p.room == nil {
		m.removePlayer(p.uid)
	}
	p.logger.Info("玩家断开连接")
}

// removeRoom is called by a room once it is destroyed, with the room lock held.
func (m *RoomManager) removeRoom(r *Room) {
	m.rooms.remove(r.roomNo)

	m.mu.Lock()
	defer m.mu.Unlock()
	for uid, p := range m.players {
		if p.session == nil && p.room == nil {
			delete(m.players, uid)
		}
	}
	logger.Infof("房间已移除: 房间=%s, 剩余房间数=%d", r.roomNo, m.rooms.count())
}

func (m *RoomManager) newDealer() piece.Dealer {
	if m.cfg.NewDealer != nil {
		return m.cfg.NewDealer()
	}
	return piece.NewShuffleDealer(nil, 0)
}

func (m *RoomManager) roomResponse(r *Room, p *Player) *protocol.RoomResponse {
	r.mu.Lock()
	defer r.mu.Unlock()

	return &protocol.RoomResponse{
		RoomNo: r.roomNo.String(),
		Seat:   p.seat,
		Seats:  r.seatInfos(),
	}
}

// Login binds the session to a player. A returning player takes over its
// previous seat and receives a full view of the running game.
func (m *RoomManager) Login(s *session.Session, req *protocol.LoginRequest) error {
	if req.UID <= 0 {
		return errorResponse(s, errutil.Rejectf(errutil.ErrInvalidParameter, "invalid uid %d", req.UID))
	}

	p, ok := m.player(req.UID)
	if ok {
		if old := p.session; old != nil && old != s {
			m.group.Leave(old)
			p.removeSession()
			old.Close()
		}
		p.bindSession(s)
		p.logger.Info("玩家重新连接")
	} else {
		if !security.ValidateName(req.Name) {
			return errorResponse(s, errutil.Rejectf(errutil.ErrInvalidParameter, "invalid name %q", req.Name))
		}
		p = newPlayer(s, req.UID, req.Name)
		m.setPlayer(p)
		p.logger.Infof("玩家登录: 名字=%s", req.Name)
	}

	if err := s.Bind(req.UID); err != nil {
		return errorResponse(s, err)
	}
	m.group.Add(s)

	resp := &protocol.LoginResponse{UID: p.uid, Name: p.name}
	r := p.room
	if r != nil {
		resp.RoomNo = r.roomNo.String()
	}
	if err := s.Response(resp); err != nil {
		return err
	}

	if r != nil && p.offline {
		r.setOnline(p)
	}
	return nil
}

func (m *RoomManager) CreateRoom(s *session.Session, req *protocol.CreateRoomRequest) error {
	p, err := playerWithSession(s)
	if err != nil {
		return errorResponse(s, err)
	}
	if p.room != nil {
		return errorResponse(s, errutil.Rejectf(errutil.ErrAlreadyInRoom, "already in room %s", p.room.roomNo))
	}

	rules, err := verifyOptions(m.cfg.Rules, req.Options)
	if err != nil {
		return errorResponse(s, err)
	}

	no, ok := m.numbers.Next()
	if !ok {
		return errorResponse(s, errutil.Reject(errutil.ErrServerInternal, "no room number available"))
	}

	r := newRoom(no, p.uid, roomOptions{
		rules:   rules,
		timeout: m.cfg.RedealTimeout,
		dealer:  m.newDealer(),
	})
	r.onDestroy = m.removeRoom
	if err := m.rooms.add(r); err != nil {
		return errorResponse(s, err)
	}

	if db.Enabled() {
		row := r.model()
		if err := db.InsertRoom(row); err != nil {
			logger.Errorf("保存房间记录失败: 房间=%s, Error=%v", no, err)
		} else {
			r.id = row.Id
		}
	}

	if _, err := r.seat(p); err != nil {
		r.destroy()
		return errorResponse(s, err)
	}

	logger.Infof("创建房间: 房间=%s, 创建者=%d, 规则=%+v", no, p.uid, rules)
	return s.Response(m.roomResponse(r, p))
}

func (m *RoomManager) JoinRoom(s *session.Session, req *protocol.JoinRoomRequest) error {
	p, err := playerWithSession(s)
	if err != nil {
		return errorResponse(s, err)
	}

	no := room.Number(req.RoomNo)
	if !no.Valid() {
		return errorResponse(s, errutil.Rejectf(errutil.ErrIllegalParameter, "invalid room number %q", req.RoomNo))
	}
	r, err := m.rooms.get(no)
	if err != nil {
		return errorResponse(s, err)
	}
	if _, err := r.seat(p); err != nil {
		return errorResponse(s, err)
	}
	return s.Response(m.roomResponse(r, p))
}

// roomOf returns the caller and its room.
func (m *RoomManager) roomOf(s *session.Session) (*Player, *Room, error) {
	p, err := playerWithSession(s)
	if err != nil {
		return nil, nil, err
	}
	r := p.room
	if r == nil {
		return nil, nil, errutil.Reject(errutil.ErrRoomNotFound, "not in a room")
	}
	return p, r, nil
}

// reply answers a room action with success or the rejection.
func reply(s *session.Session, err error) error {
	if err != nil {
		return errorResponse(s, err)
	}
	return s.Response(protocol.SuccessResponse)
}

func (m *RoomManager) AddBot(s *session.Session, _ *protocol.EmptyRequest) error {
	_, r, err := m.roomOf(s)
	if err != nil {
		return errorResponse(s, err)
	}
	return reply(s, r.addBot())
}

func (m *RoomManager) Ready(s *session.Session, _ *protocol.EmptyRequest) error {
	p, r, err := m.roomOf(s)
	if err != nil {
		return errorResponse(s, err)
	}
	return reply(s, r.ready(p))
}

func (m *RoomManager) Declare(s *session.Session, req *protocol.DeclareRequest) error {
	p, r, err := m.roomOf(s)
	if err != nil {
		return errorResponse(s, err)
	}
	return reply(s, r.declare(p, req.Value))
}

func (m *RoomManager) Play(s *session.Session, req *protocol.PlayRequest) error {
	p, r, err := m.roomOf(s)
	if err != nil {
		return errorResponse(s, err)
	}
	return reply(s, r.play(p, req.Indices))
}

func (m *RoomManager) Redeal(s *session.Session, req *protocol.RedealRequest) error {
	p, r, err := m.roomOf(s)
	if err != nil {
		return errorResponse(s, err)
	}
	return reply(s, r.decideRedeal(p, req.Accept))
}

func (m *RoomManager) Restart(s *session.Session, _ *protocol.EmptyRequest) error {
	_, r, err := m.roomOf(s)
	if err != nil {
		return errorResponse(s, err)
	}
	return reply(s, r.restart())
}

// Sync answers with the caller's view of the game.
func (m *RoomManager) Sync(s *session.Session, _ *protocol.EmptyRequest) error {
	p, r, err := m.roomOf(s)
	if err != nil {
		return errorResponse(s, err)
	}
	v, err := r.view(p.id)
	if err != nil {
		return errorResponse(s, err)
	}
	return s.Response(v)
}

func (m *RoomManager) Exit(s *session.Session, _ *protocol.EmptyRequest) error {
	p, r, err := m.roomOf(s)
	if err != nil {
		return errorResponse(s, err)
	}
	if err := r.exit(p); err != nil {
		return errorResponse(s, err)
	}
	return s.Response(protocol.SuccessResponse)
}
