package game

import (
	"strings"
	"sync"
	"time"

	"github.com/lonng/liaptong/db"
	"github.com/lonng/liaptong/db/model"
	"github.com/lonng/liaptong/internal/async"
	"github.com/lonng/liaptong/internal/game/engine"
	"github.com/lonng/liaptong/internal/game/history"
	"github.com/lonng/liaptong/internal/game/piece"
	"github.com/lonng/liaptong/internal/game/rule"
	"github.com/lonng/liaptong/pkg/constant"
	"github.com/lonng/liaptong/pkg/errutil"
	"github.com/lonng/liaptong/pkg/room"
	"github.com/lonng/liaptong/protocol"

	"github.com/lonng/nano"
	"github.com/lonng/nano/session"
	log "github.com/sirupsen/logrus"
)

// broadcaster is the part of nano.Group a room needs.
type broadcaster interface {
	Add(s *session.Session) error
	Leave(s *session.Session) error
	Broadcast(route string, v interface{}) error
	Close() error
}

type roomOptions struct {
	rules   rule.Options
	timeout time.Duration // 弱牌重发决策超时, 0表示不限时
	dealer  piece.Dealer
	group   broadcaster
}

// Room owns one game. Every access to the engine goes through the room lock.
type Room struct {
	id         int64 // 数据库ID, 未启用数据库时为0
	roomNo     room.Number
	creator    int64
	createdAt  int64
	finishedAt int64
	opts       rule.Options
	timeout    time.Duration
	dealer     piece.Dealer

	mu      sync.Mutex
	status  constant.RoomStatus
	players [piece.Seats]*Player // nil 表示空位
	prepare *prepareContext
	redeal  *redealContext
	engine  *engine.Engine
	group   broadcaster
	history *history.History
	stats   history.MatchStats
	logger  *log.Entry

	onDestroy func(*Room)
}

func newRoom(no room.Number, creator int64, opts roomOptions) *Room {
	r := &Room{
		roomNo:    no,
		creator:   creator,
		createdAt: time.Now().Unix(),
		opts:      opts.rules,
		timeout:   opts.timeout,
		dealer:    opts.dealer,
		status:    constant.RoomStatusCreated,
		prepare:   newPrepareContext(),
		group:     opts.group,
		stats:     history.MatchStats{},
		logger:    log.WithField(fieldRoom, no),
	}
	if r.dealer == nil {
		r.dealer = piece.NewShuffleDealer(nil, 0)
	}
	if r.group == nil {
		r.group = nano.NewGroup(no.String())
	}
	r.redeal = newRedealContext(r)
	return r
}

func (r *Room) broadcast(route string, v interface{}) {
	if err := r.group.Broadcast(route, v); err != nil {
		r.logger.Errorf("广播消息失败: Route=%s, Error=%v", route, err)
	}
}

func (r *Room) firstEmpty() int {
	for seat, p := range r.players {
		if p == nil {
			return seat
		}
	}
	return noSeat
}

func (r *Room) isFull() bool {
	return r.firstEmpty() == noSeat
}

func (r *Room) humanCount() int {
	count := 0
	for _, p := range r.players {
		if p != nil && !p.isBot {
			count++
		}
	}
	return count
}

func (r *Room) playerByID(id string) *Player {
	for _, p := range r.players {
		if p != nil && p.id == id {
			return p
		}
	}
	return nil
}

func (r *Room) seatInfos() []protocol.SeatInfo {
	infos := make([]protocol.SeatInfo, 0, piece.Seats)
	for seat, p := range r.players {
		if p == nil {
			continue
		}
		infos = append(infos, p.seatInfo(r.prepare.isReady(seat)))
	}
	return infos
}

func (r *Room) names() [piece.Seats]string {
	var names [piece.Seats]string
	for seat, p := range r.players {
		if p != nil {
			names[seat] = p.name
		}
	}
	return names
}

func (r *Room) seat(p *Player) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.seatLocked(p)
}

func (r *Room) seatLocked(p *Player) (int, error) {
	if r.status != constant.RoomStatusCreated {
		return noSeat, errutil.Rejectf(errutil.ErrIllegalPhase, "room %s is %s", r.roomNo, r.status)
	}
	if p.room != nil {
		return noSeat, errutil.Rejectf(errutil.ErrAlreadyInRoom, "player %s already in room %s", p.id, p.room.roomNo)
	}

	seat := r.firstEmpty()
	if seat == noSeat {
		return noSeat, errutil.Rejectf(errutil.ErrRoomFull, "room %s is full", r.roomNo)
	}

	r.players[seat] = p
	p.setRoom(r, seat)
	if p.isBot {
		r.prepare.ready(seat)
	}
	if p.session != nil {
		if err := r.group.Add(p.session); err != nil {
			p.logger.Errorf("加入房间频道失败: %v", err)
		}
	}

	r.logger.Infof("玩家加入房间: 玩家=%s, 座位=%d, 机器人=%t", p.id, seat, p.isBot)
	r.broadcast(routePlayerEnter, &protocol.PlayerEnterRoom{Seats: r.seatInfos()})
	return seat, nil
}

// addBot fills the first empty seat with a bot.
func (r *Room) addBot() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seat := r.firstEmpty()
	if seat == noSeat {
		return errutil.Rejectf(errutil.ErrRoomFull, "room %s is full", r.roomNo)
	}
	if _, err := r.seatLocked(newBot(r.roomNo, seat)); err != nil {
		return err
	}
	return r.tryStart()
}

func (r *Room) ready(p *Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != constant.RoomStatusCreated {
		return errutil.Rejectf(errutil.ErrIllegalPhase, "room %s is %s", r.roomNo, r.status)
	}
	if r.prepare.isReady(p.seat) {
		return nil
	}

	r.prepare.ready(p.seat)
	r.broadcast(routePlayerReady, &protocol.PlayerReady{UID: p.uid, Seat: p.seat})
	return r.tryStart()
}

// tryStart starts the game once every seat is taken and ready.
func (r *Room) tryStart() error {
	if !r.isFull() || r.prepare.readyCount() < piece.Seats {
		return nil
	}

	var seats [piece.Seats]engine.Seat
	for i, p := range r.players {
		seats[i] = p.engineSeat()
	}
	e, err := engine.New(r.opts, seats, r.dealer, engine.WithLogger(r.logger))
	if err != nil {
		return err
	}

	r.engine = e
	r.status = constant.RoomStatusPlaying
	r.logger.Infof("游戏开始: 游戏=%s, 玩家=%v", e.ID(), r.names())
	r.persist()
	return r.apply(e.Start)
}

func (r *Room) playing() (*engine.Engine, error) {
	if r.status == constant.RoomStatusDestroy {
		return nil, errutil.Rejectf(errutil.ErrRoomNotFound, "room %s destroyed", r.roomNo)
	}
	if r.engine == nil {
		return nil, errutil.Rejectf(errutil.ErrIllegalPhase, "room %s has not started", r.roomNo)
	}
	return r.engine, nil
}

// apply runs one engine action and publishes what it produced. The events of
// a failed action are published too, an aborted round emits its diagnostics.
func (r *Room) apply(action func() ([]engine.Event, error)) error {
	events, err := action()
	r.dispatch(events)
	if err != nil {
		if errutil.Is(err, errutil.ErrInternalInvariant) {
			r.logger.Errorf("牌局异常: %v", err)
		}
		return err
	}

	r.driveBots()
	return nil
}

func (r *Room) declare(p *Player, value int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.playing()
	if err != nil {
		return err
	}
	return r.apply(func() ([]engine.Event, error) { return e.Declare(p.id, value) })
}

func (r *Room) play(p *Player, indices []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.playing()
	if err != nil {
		return err
	}
	return r.apply(func() ([]engine.Event, error) { return e.Play(p.id, indices) })
}

func (r *Room) decideRedeal(p *Player, accept bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.playing()
	if err != nil {
		return err
	}
	return r.apply(func() ([]engine.Event, error) { return e.RedealDecision(p.id, accept) })
}

// restart re-deals a round aborted by an invariant violation.
func (r *Room) restart() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.playing()
	if err != nil {
		return err
	}
	return r.apply(e.Restart)
}

// view returns what the player sees. Unknown ids get the spectator view.
func (r *Room) view(id string) (engine.View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.playing()
	if err != nil {
		return engine.View{}, err
	}
	return e.View(id), nil
}

func (r *Room) summary() protocol.RoomSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := protocol.RoomSummary{
		RoomNo:     r.roomNo.String(),
		Phase:      constant.PhaseWaiting.String(),
		Multiplier: 1,
		CreatedAt:  r.createdAt,
	}
	for _, p := range r.players {
		if p != nil {
			s.Players = append(s.Players, p.name)
		}
	}
	if e := r.engine; e != nil {
		s.Phase = e.Phase().String()
		s.Round = e.RoundNumber()
		s.Multiplier = e.Multiplier()
	}
	return s
}

// dispatch records and publishes engine events in order.
func (r *Room) dispatch(events []engine.Event) {
	for _, ev := range events {
		r.record(ev)
		r.broadcast(ev.Route(), ev)

		switch e := ev.(type) {
		case engine.HandsDealt:
			r.pushHands(e)

		case engine.RedealRequested:
			r.startRedealCountdown(e.Pending)

		case engine.RedealTriggered:
			r.redeal.stop()

		case engine.PhaseChanged:
			if e.From == constant.PhasePreparation.String() {
				r.redeal.stop()
			}

		case engine.RoundScored:
			res := e.RoundResult
			r.stats.Push(&res)
			r.persist()

		case engine.GameEnded:
			r.status = constant.RoomStatusFinished
			r.finishedAt = time.Now().Unix()
			r.logger.Infof("房间游戏结束: 赢家=%v, 统计=%+v", e.Winners, r.stats.Result())
			r.persist()

		case engine.RoundAborted:
			r.redeal.stop()
			r.history = nil
			r.logger.Errorf("本局中止, 等待重新发牌: %s", e.Reason)
		}
	}
}

// record feeds the round history and saves it once the round is scored.
func (r *Room) record(ev engine.Event) {
	if d, ok := ev.(engine.HandsDealt); ok {
		if r.history == nil || r.history.Round() != d.Round {
			r.history = history.New(r.id, r.roomNo.String(), r.engine.ID(), d.Round, r.names())
		}
		r.history.SetHands(r.hands())
	}
	if r.history == nil {
		return
	}
	if !r.history.Record(ev) {
		return
	}

	h := r.history
	r.history = nil
	if !db.Enabled() {
		return
	}
	logger := r.logger
	async.Run(func() {
		if err := h.Save(); err != nil {
			logger.Errorf("保存牌局记录失败: 局数=%d, Error=%v", h.Round(), err)
		}
	})
}

func (r *Room) hands() [piece.Seats]piece.Pieces {
	var hands [piece.Seats]piece.Pieces
	for seat, p := range r.players {
		if v, ok := r.engine.Player(p.id); ok {
			hands[seat] = v.Hand
		}
	}
	return hands
}

// pushHands sends every player their own hand only.
func (r *Room) pushHands(d engine.HandsDealt) {
	weak := map[string]bool{}
	for _, id := range d.Weak {
		weak[id] = true
	}
	for _, p := range r.players {
		v, ok := r.engine.Player(p.id)
		if !ok {
			continue
		}
		p.push(routeHand, &protocol.Hand{
			Round:      d.Round,
			Multiplier: d.Multiplier,
			Pieces:     toProtocolPieces(v.Hand),
			Weak:       weak[p.id],
		})
	}
}

func (r *Room) startRedealCountdown(pending []string) {
	if r.timeout <= 0 {
		return
	}
	secs := int32(r.timeout / time.Second)
	r.redeal.start(secs)
	r.broadcast(routeRedealCountdown, &protocol.RedealCountdown{Pending: pending, Seconds: int(secs)})
}

// redealTimeout declines for every weak player who has not answered. It is
// called with the room lock held.
func (r *Room) redealTimeout() {
	if r.engine == nil || !r.engine.RedealPending() {
		return
	}

	e := r.engine
	multiplier := e.Multiplier()
	r.logger.Infof("重发决策超时, 未决策玩家视为不重发: %v", e.PendingDeciders())
	for e.RedealPending() && e.Multiplier() == multiplier {
		pending := e.PendingDeciders()
		if len(pending) == 0 {
			break
		}
		events, err := e.RedealDecision(pending[0], false)
		r.dispatch(events)
		if err != nil {
			r.logger.Errorf("超时自动决策失败: %v", err)
			return
		}
	}
	r.driveBots()
}

// auto reports whether the server acts for the player: bots always, humans
// while disconnected.
func (r *Room) auto(p *Player) bool {
	return p.isBot || p.offline
}

// driveBots lets bots and disconnected players act until a connected human
// is awaited.
func (r *Room) driveBots() {
	for step := 0; step < maxBotSteps; step++ {
		if r.engine == nil {
			return
		}
		p := r.awaitingAuto()
		if p == nil {
			return
		}
		events, err := r.autoAct(p)
		r.dispatch(events)
		if err != nil {
			p.logger.Errorf("托管操作失败: %v", err)
			return
		}
	}
	r.logger.Warnf("托管连续操作达到上限: %d", maxBotSteps)
}

func (r *Room) awaitingAuto() *Player {
	for _, id := range r.engine.Awaiting() {
		if p := r.playerByID(id); p != nil && r.auto(p) {
			return p
		}
	}
	return nil
}

func (r *Room) autoAct(p *Player) ([]engine.Event, error) {
	e := r.engine
	v := e.View(p.id)
	switch e.Phase() {
	case constant.PhasePreparation:
		return e.RedealDecision(p.id, botRedeal(v))
	case constant.PhaseDeclaration:
		return e.Declare(p.id, botDeclare(v, r.opts))
	case constant.PhaseTurn:
		return e.Play(p.id, botPlay(v))
	}
	return nil, errutil.Rejectf(errutil.ErrIllegalPhase, "nothing to do during %s", e.Phase())
}

// exit frees the player's seat. Seats cannot be left while a game is running.
func (r *Room) exit(p *Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status == constant.RoomStatusPlaying {
		return errutil.Reject(errutil.ErrIllegalPhase, "cannot leave during a game")
	}
	r.removeLocked(p)
	return nil
}

func (r *Room) removeLocked(p *Player) {
	seat := p.seat
	if seat < 0 || seat >= piece.Seats || r.players[seat] != p {
		return
	}

	r.players[seat] = nil
	r.prepare.cancel(seat)
	if p.session != nil {
		r.group.Leave(p.session)
	}
	p.leaveRoom()

	r.logger.Infof("玩家离开房间: 玩家=%s, 座位=%d", p.id, seat)
	r.broadcast(routePlayerExit, &protocol.PlayerExit{UID: p.uid, Seat: seat})

	if r.humanCount() == 0 {
		r.destroyLocked()
	}
}

// setOffline handles a dropped connection. Waiting rooms release the seat,
// running games hand the player over to the server.
func (r *Room) setOffline(p *Player) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != constant.RoomStatusPlaying {
		r.removeLocked(p)
		return
	}

	p.offline = true
	if p.session != nil {
		r.group.Leave(p.session)
	}
	r.broadcast(routeOfflineStatus, &protocol.PlayerOfflineStatus{UID: p.uid, Offline: true})
	r.logger.Infof("玩家掉线, 进入托管: 玩家=%s", p.id)
	r.driveBots()
}

// setOnline returns a reconnected player to the game and its channel.
func (r *Room) setOnline(p *Player) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.offline = false
	if p.session != nil {
		if err := r.group.Add(p.session); err != nil {
			p.logger.Errorf("重新加入房间频道失败: %v", err)
		}
	}
	r.broadcast(routeOfflineStatus, &protocol.PlayerOfflineStatus{UID: p.uid, Offline: false})

	if r.engine != nil {
		p.push(routeSync, r.engine.View(p.id))
	}
}

func (r *Room) destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.destroyLocked()
}

func (r *Room) destroyLocked() {
	if r.status == constant.RoomStatusDestroy {
		return
	}
	if r.status != constant.RoomStatusFinished {
		r.status = constant.RoomStatusDestroy
	}

	r.redeal.stop()
	r.broadcast(routeRoomDestroyed, &protocol.StringMessage{Message: r.roomNo.String()})
	for seat, p := range r.players {
		if p != nil {
			p.leaveRoom()
			r.players[seat] = nil
		}
	}
	r.group.Close()
	r.persist()
	r.logger.Info("房间已销毁")

	// 销毁后不再接受任何操作
	r.status = constant.RoomStatusDestroy
	if r.onDestroy != nil {
		r.onDestroy(r)
	}
}

// persist writes the room row when the database is enabled. Called with the
// room lock held.
func (r *Room) persist() {
	if !db.Enabled() || r.id == 0 {
		return
	}
	m := r.model()
	async.Run(func() {
		if err := db.UpdateRoom(m); err != nil {
			log.Errorf("更新房间记录失败: 房间=%s, Error=%v", m.RoomNo, err)
		}
	})
}

func (r *Room) model() *model.Room {
	m := &model.Room{
		Id:           r.id,
		RoomNo:       r.roomNo.String(),
		Creator:      r.creator,
		RedealMode:   r.opts.RedealMode.String(),
		WinThreshold: r.opts.WinThreshold,
		Status:       int(r.status),
		CreatedAt:    r.createdAt,
		FinishedAt:   r.finishedAt,
	}

	var (
		uids   [piece.Seats]int64
		names  = r.names()
		scores [piece.Seats]int
	)
	for seat, p := range r.players {
		if p == nil {
			continue
		}
		uids[seat] = p.uid
		if r.engine != nil {
			if v, ok := r.engine.Player(p.id); ok {
				scores[seat] = v.TotalScore
			}
		}
	}
	m.Player0, m.Player1, m.Player2, m.Player3 = uids[0], uids[1], uids[2], uids[3]
	m.PlayerName0, m.PlayerName1, m.PlayerName2, m.PlayerName3 = names[0], names[1], names[2], names[3]
	m.ScoreChange0, m.ScoreChange1, m.ScoreChange2, m.ScoreChange3 = scores[0], scores[1], scores[2], scores[3]

	if e := r.engine; e != nil {
		m.GameId = e.ID()
		m.Round = e.RoundNumber()
		if res, ok := e.GameEnd(); ok {
			m.Winners = strings.Join(res.Winners, ",")
		}
	}
	return m
}
