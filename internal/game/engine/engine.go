package engine

import (
	"github.com/lonng/liaptong/internal/game/piece"
	"github.com/lonng/liaptong/internal/game/rule"
	"github.com/lonng/liaptong/pkg/constant"
	"github.com/lonng/liaptong/pkg/errutil"

	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Option func(*Engine)

func WithLogger(logger *log.Entry) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithID overrides the generated game id.
func WithID(id string) Option {
	return func(e *Engine) {
		e.state.ID = id
	}
}

// Engine drives one game from the first deal to game over. It is synchronous
// and not safe for concurrent use: the owner must serialize every call. Each
// action either fails without touching the state or is applied completely and
// returns the events it produced.
type Engine struct {
	opts   rule.Options
	dealer piece.Dealer
	state  *GameState
	seats  map[string]int
	events []Event
	logger *log.Entry
}

func New(opts rule.Options, seats [piece.Seats]Seat, dealer piece.Dealer, options ...Option) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, errors.New("engine requires a dealer")
	}

	e := &Engine{
		opts:   opts,
		dealer: dealer,
		seats:  make(map[string]int, piece.Seats),
		state: &GameState{
			WinThreshold: opts.WinThreshold,
			Phase:        constant.PhaseWaiting,
		},
	}

	for i, s := range seats {
		if s.ID == "" {
			return nil, errutil.Rejectf(errutil.ErrIllegalParameter, "seat %d has no player", i)
		}
		if _, dup := e.seats[s.ID]; dup {
			return nil, errutil.Rejectf(errutil.ErrIllegalParameter, "player %s seated twice", s.ID)
		}
		e.seats[s.ID] = i
		e.state.Players[i] = &Player{
			ID:       s.ID,
			Name:     s.Name,
			IsBot:    s.IsBot,
			Seat:     i,
			Declared: undeclared,
		}
	}

	for _, opt := range options {
		opt(e)
	}
	if e.state.ID == "" {
		e.state.ID = uuid.New()
	}
	if e.logger == nil {
		e.logger = log.WithField("component", "engine")
	}
	e.logger = e.logger.WithField("game", e.state.ID)

	return e, nil
}

func (e *Engine) ID() string {
	return e.state.ID
}

func (e *Engine) Phase() constant.Phase {
	return e.state.Phase
}

func (e *Engine) RoundNumber() int {
	return e.state.RoundNumber
}

// Multiplier is the score multiplier of the current round.
func (e *Engine) Multiplier() int {
	if e.state.Round == nil {
		return 1
	}
	return e.state.Round.Multiplier
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

func (e *Engine) flush() []Event {
	events := e.events
	e.events = nil
	return events
}

func (e *Engine) setPhase(to constant.Phase) {
	from := e.state.Phase
	if from == to {
		return
	}
	e.state.Phase = to
	e.logger.Debugf("阶段变化: %s -> %s, 局数=%d", from, to, e.state.RoundNumber)
	e.emit(PhaseChanged{Round: e.state.RoundNumber, From: from.String(), To: to.String()})
}

func (e *Engine) player(id string) (*Player, error) {
	seat, ok := e.seats[id]
	if !ok {
		return nil, errutil.Rejectf(errutil.ErrPlayerNotFound, "player %s is not seated", id)
	}
	return e.state.Players[seat], nil
}

// guard rejects any action once the game is over or the round was aborted.
func (e *Engine) guard() error {
	switch e.state.Phase {
	case constant.PhaseGameOver:
		return errutil.Reject(errutil.ErrIllegalPhase, "game is over")
	case constant.PhaseAborted:
		return errutil.Reject(errutil.ErrIllegalPhase, "round aborted, restart required")
	case constant.PhaseWaiting:
		return errutil.Reject(errutil.ErrIllegalPhase, "game not started")
	}
	return nil
}

// abort stops the current round after an invariant violation.
func (e *Engine) abort(cause error) error {
	err := errutil.Reject(errutil.ErrInternalInvariant, cause.Error())
	e.logger.Errorf("本局异常中止: 局数=%d, Error=%v", e.state.RoundNumber, cause)
	e.setPhase(constant.PhaseAborted)
	e.emit(RoundAborted{Round: e.state.RoundNumber, Reason: cause.Error()})
	return err
}

// Start deals the first round.
func (e *Engine) Start() ([]Event, error) {
	if e.state.Phase != constant.PhaseWaiting {
		return nil, errutil.Rejectf(errutil.ErrIllegalPhase, "game already started, phase=%s", e.state.Phase)
	}

	e.logger.Infof("游戏开始: 玩家=%v", e.state.ids([]int{0, 1, 2, 3}))
	err := e.startRound(1)
	return e.flush(), err
}

// Restart re-deals a round aborted by an invariant violation. Total scores are
// kept; zero streaks and declarations fall back to where the round began.
func (e *Engine) Restart() ([]Event, error) {
	if e.state.Phase != constant.PhaseAborted {
		return nil, errutil.Rejectf(errutil.ErrIllegalPhase, "nothing to restart, phase=%s", e.state.Phase)
	}

	if r := e.state.Round; r != nil {
		r.rollback(e.state.Players)
	}
	for _, p := range e.state.Players {
		p.resetRound()
	}
	err := e.startRound(e.state.RoundNumber)
	return e.flush(), err
}

func (e *Engine) startRound(number int) error {
	e.state.RoundNumber = number
	e.state.Round = newRound(number, e.state.Players)
	e.setPhase(constant.PhasePreparation)
	return e.deal()
}

func (e *Engine) deal() error {
	r := e.state.Round

	hands, err := e.dealer.Deal()
	if err != nil {
		return e.abort(errors.Wrap(err, "deal failed"))
	}
	size := len(hands[0])
	for seat, h := range hands {
		if len(h) == 0 || len(h) != size {
			return e.abort(errors.Errorf("seat %d dealt %d pieces, expect %d", seat, len(h), size))
		}
		for _, pc := range h {
			if !pc.Valid() {
				return e.abort(errors.Errorf("seat %d dealt invalid piece %v", seat, pc))
			}
		}
	}
	starter := piece.HighestHolder(hands)
	if starter == noSeat {
		return e.abort(errors.New("no starter could be found in the deal"))
	}

	var sizes [piece.Seats]int
	for seat, p := range e.state.Players {
		p.Hand = hands[seat]
		p.Declared = undeclared
		p.Captured = 0
		sizes[seat] = len(p.Hand)
		p.Hand.Sort()
	}
	r.Starter = starter

	weak := e.weakSeats()
	e.emit(HandsDealt{
		Round:      r.Number,
		Multiplier: r.Multiplier,
		Redeals:    r.Redeals,
		Starter:    e.state.Players[r.Starter].ID,
		HandSizes:  sizes,
		Weak:       e.state.ids(weak),
	})
	e.logger.Debugf("发牌完成: 局数=%d, 首家=%d, 弱牌=%v, 倍数=%d", r.Number, r.Starter, weak, r.Multiplier)

	if len(weak) == 0 {
		return e.enterDeclaration()
	}
	if r.Redeals >= e.opts.MaxRedeals {
		e.logger.Infof("重发次数已达上限(%d), 弱牌玩家不再询问: %v", e.opts.MaxRedeals, weak)
		return e.enterDeclaration()
	}

	r.redeal = newRedealContext(e.opts.RedealMode, weak)
	e.emit(RedealRequested{
		Round:   r.Number,
		Mode:    e.opts.RedealMode.String(),
		Weak:    e.state.ids(weak),
		Pending: e.state.ids(r.redeal.pending()),
	})
	return nil
}

// weakSeats lists the weak hands in seat order starting from the round starter.
func (e *Engine) weakSeats() []int {
	var weak []int
	r := e.state.Round
	for i := 0; i < piece.Seats; i++ {
		seat := (r.Starter + i) % piece.Seats
		if piece.IsWeak(e.state.Players[seat].Hand, e.opts.WeakThreshold) {
			weak = append(weak, seat)
		}
	}
	return weak
}

// RedealDecision records a weak player's answer to the redeal offer.
func (e *Engine) RedealDecision(id string, accept bool) ([]Event, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}
	p, err := e.player(id)
	if err != nil {
		return nil, err
	}

	r := e.state.Round
	if e.state.Phase != constant.PhasePreparation || r.redeal == nil {
		return nil, errutil.Reject(errutil.ErrInvalidRedealState, "no redeal decision pending")
	}
	rc := r.redeal
	if !rc.isWeak(p.Seat) {
		return nil, errutil.Rejectf(errutil.ErrInvalidRedealState, "player %s has no weak hand", id)
	}
	if rc.decided(p.Seat) {
		return nil, errutil.Rejectf(errutil.ErrInvalidRedealState, "player %s already decided", id)
	}
	if seat, ok := rc.current(); ok && seat != p.Seat {
		return nil, errutil.Rejectf(errutil.ErrOutOfTurn, "waiting for %s to decide", e.state.Players[seat].ID)
	}

	rc.record(p.Seat, accept)
	e.emit(RedealDecided{
		Round:    r.Number,
		PlayerID: id,
		Accept:   accept,
		Received: rc.received(),
		Needed:   rc.needed(),
		Pending:  e.state.ids(rc.pending()),
	})
	e.logger.Debugf("玩家重发决策: 玩家=%s, 同意=%t, 已决策=%d/%d", id, accept, rc.received(), rc.needed())

	if !rc.complete() {
		return e.flush(), nil
	}

	if accepted := rc.accepted(); len(accepted) > 0 {
		err = e.redeal(accepted)
	} else {
		err = e.enterDeclaration()
	}
	return e.flush(), err
}

func (e *Engine) redeal(accepted []int) error {
	r := e.state.Round
	r.Multiplier++
	r.Redeals++
	for _, p := range e.state.Players {
		p.resetRound()
	}
	r.clear()

	e.logger.Infof("弱牌重发: 局数=%d, 同意=%v, 倍数=%d", r.Number, accepted, r.Multiplier)
	e.emit(RedealTriggered{
		Round:      r.Number,
		Multiplier: r.Multiplier,
		Redeals:    r.Redeals,
		AcceptedBy: e.state.ids(accepted),
	})
	return e.deal()
}

func (e *Engine) enterDeclaration() error {
	e.state.Round.redeal = nil
	e.setPhase(constant.PhaseDeclaration)
	return nil
}

// Declare records a pile declaration for the player whose turn it is to declare.
func (e *Engine) Declare(id string, value int) ([]Event, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}
	p, err := e.player(id)
	if err != nil {
		return nil, err
	}
	if e.state.Phase != constant.PhaseDeclaration {
		return nil, errutil.Rejectf(errutil.ErrIllegalPhase, "cannot declare during %s", e.state.Phase)
	}

	r := e.state.Round
	if seat := r.declareOrder(len(r.Declared)); seat != p.Seat {
		return nil, errutil.Rejectf(errutil.ErrOutOfTurn, "waiting for %s to declare", e.state.Players[seat].ID)
	}

	isLast := len(r.Declared) == piece.Seats-1
	total := r.totalDeclared(e.state.Players)
	if err := rule.ValidateDeclaration(value, isLast, total, p.ZeroStreak, e.opts); err != nil {
		e.logger.Debugf("报墩被拒绝: 玩家=%s, 报墩=%d, 已报总数=%d, 连续报0=%d, Error=%v",
			id, value, total, p.ZeroStreak, err)
		return nil, err
	}

	p.Declared = value
	p.ZeroStreak = rule.NextZeroStreak(value, p.ZeroStreak)
	p.Declarations = append(p.Declarations, value)
	r.Declared = append(r.Declared, p.Seat)

	ev := Declared{Round: r.Number, PlayerID: id, Value: value, Total: total + value}
	if !isLast {
		ev.Next = e.state.Players[r.declareOrder(len(r.Declared))].ID
	}
	e.emit(ev)

	if isLast {
		e.enterTurns()
	}
	return e.flush(), nil
}

func (e *Engine) enterTurns() {
	r := e.state.Round
	e.setPhase(constant.PhaseTurn)
	r.Current = newTurn(0, r.Starter)
}

// Play submits the pieces at the given hand indices for the acting player.
func (e *Engine) Play(id string, indices []int) ([]Event, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}
	p, err := e.player(id)
	if err != nil {
		return nil, err
	}
	if e.state.Phase != constant.PhaseTurn {
		return nil, errutil.Rejectf(errutil.ErrIllegalPhase, "cannot play during %s", e.state.Phase)
	}

	r := e.state.Round
	t := r.Current
	if seat := t.next(); seat != p.Seat {
		return nil, errutil.Rejectf(errutil.ErrOutOfTurn, "waiting for %s to play", e.state.Players[seat].ID)
	}

	picked, rest, err := p.Hand.Pick(indices)
	if err != nil {
		return nil, errutil.Reject(errutil.ErrIllegalPlay, err.Error())
	}

	isStarter := len(t.Plays) == 0
	if isStarter {
		if len(picked) > rule.MaxPlaySize {
			return nil, errutil.Rejectf(errutil.ErrIllegalPlay, "cannot play more than %d pieces", rule.MaxPlaySize)
		}
		if !rule.Classify(picked).Valid() {
			return nil, errutil.Rejectf(errutil.ErrIllegalPlay, "%v is not a valid combination", picked)
		}
	} else if len(picked) != t.RequiredCount {
		return nil, errutil.Rejectf(errutil.ErrIllegalPlay, "expect %d pieces, got %d", t.RequiredCount, len(picked))
	}

	if isStarter {
		t.RequiredCount = len(picked)
	}
	p.Hand = rest
	t.Plays = append(t.Plays, PlayRecord{PlayerID: id, Seat: p.Seat, Pieces: picked, Turn: t.Index})

	ev := Played{Round: r.Number, Turn: t.Index, PlayerID: id, Pieces: picked.Clone()}
	if !t.complete() {
		ev.Next = e.state.Players[t.next()].ID
	}
	e.emit(ev)
	e.logger.Debugf("玩家出牌: 玩家=%s, 轮次=%d, 出牌=%v, 余牌=%d", id, t.Index, picked, len(p.Hand))

	if t.complete() {
		err = e.resolveTurn()
	}
	return e.flush(), err
}

func (e *Engine) resolveTurn() error {
	r := e.state.Round
	t := r.Current

	followers := make([]piece.Pieces, 0, len(t.Plays)-1)
	for _, play := range t.Plays[1:] {
		followers = append(followers, play.Pieces)
	}
	out, err := rule.Resolve(t.Plays[0].Pieces, followers)
	if err != nil {
		return e.abort(errors.Wrapf(err, "turn %d cannot be resolved", t.Index))
	}

	winner := e.state.Players[t.Plays[out.Winner].Seat]
	t.Winner = winner.Seat
	winner.Captured++
	r.Turns = append(r.Turns, t)
	r.Current = nil

	plays := clonePlays(t.Plays)
	e.emit(TurnResolved{
		Round:              r.Number,
		Turn:               t.Index,
		Winner:             winner.ID,
		CapturedPilesDelta: 1,
		PlayType:           out.Type.String(),
		Plays:              plays,
		Matching:           out.Matching,
	})
	e.logger.Debugf("本轮结束: 轮次=%d, 牌型=%s, 赢家=%s", t.Index, out.Type, winner.ID)

	empty, err := e.checkInvariants()
	if err != nil {
		return e.abort(err)
	}
	if empty {
		return e.score()
	}

	r.Current = newTurn(len(r.Turns), winner.Seat)
	return nil
}

// checkInvariants verifies hand sizes stay equal and captured piles match the
// turns played. It reports whether every hand is empty.
func (e *Engine) checkInvariants() (bool, error) {
	r := e.state.Round
	size := len(e.state.Players[0].Hand)
	captured := 0
	for _, p := range e.state.Players {
		if len(p.Hand) != size {
			return false, errors.Errorf("hand sizes diverged: seat %d holds %d, seat 0 holds %d", p.Seat, len(p.Hand), size)
		}
		captured += p.Captured
	}
	if captured != len(r.Turns) {
		return false, errors.Errorf("captured piles %d do not match turns played %d", captured, len(r.Turns))
	}
	return size == 0, nil
}

func (e *Engine) score() error {
	r := e.state.Round
	e.setPhase(constant.PhaseScoring)

	res := &RoundResult{Round: r.Number, Multiplier: r.Multiplier}
	for seat, p := range e.state.Players {
		delta := rule.Score(p.Declared, p.Captured, r.Multiplier, e.opts)
		p.TotalScore += delta

		res.Players[seat] = p.ID
		res.Declared[seat] = p.Declared
		res.Captured[seat] = p.Captured
		res.Deltas[seat] = delta
		res.Totals[seat] = p.TotalScore
		res.Hits[seat] = rule.Hit(p.Declared, p.Captured)
	}
	e.state.lastRound = res
	e.emit(RoundScored{RoundResult: *res})
	e.logger.Infof("本局结算: 局数=%d, 倍数=%d, 报墩=%v, 收墩=%v, 得分=%v, 总分=%v",
		r.Number, r.Multiplier, res.Declared, res.Captured, res.Deltas, res.Totals)

	totals := e.state.totals()
	if winners := rule.Winners(totals[:], e.state.WinThreshold); len(winners) > 0 {
		e.state.result = &GameResult{
			Rounds:  r.Number,
			Winners: e.state.ids(winners),
			Players: res.Players,
			Totals:  totals,
		}
		e.setPhase(constant.PhaseGameOver)
		ended := *e.state.result
		ended.Winners = append([]string(nil), ended.Winners...)
		e.emit(GameEnded{GameResult: ended})
		e.logger.Infof("游戏结束: 赢家=%v, 总分=%v", e.state.result.Winners, totals)
		return nil
	}

	for _, p := range e.state.Players {
		p.resetRound()
	}
	return e.startRound(r.Number + 1)
}
