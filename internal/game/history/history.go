package history

import (
	"encoding/json"
	"time"

	"github.com/lonng/liaptong/db"
	"github.com/lonng/liaptong/db/model"
	"github.com/lonng/liaptong/internal/game/engine"
	"github.com/lonng/liaptong/internal/game/piece"
)

// SnapShot is the replay of one round, stored as JSON.
type SnapShot struct {
	Dealt        []engine.HandsDealt       `json:"dealt"` // 每次发牌, 重发时有多条
	Hands        [piece.Seats]piece.Pieces `json:"hands"`
	Redeals      []engine.RedealTriggered  `json:"redeals"`
	Declarations []engine.Declared         `json:"declarations"`
	Turns        []engine.TurnResolved     `json:"turns"`
	End          *engine.RoundResult       `json:"end"`
}

type History struct {
	roomID  int64
	roomNo  string
	gameID  string
	round   int
	beginAt int64
	endAt   int64
	players [piece.Seats]string

	SnapShot
}

func New(roomID int64, roomNo, gameID string, round int, players [piece.Seats]string) *History {
	return &History{
		roomID:  roomID,
		roomNo:  roomNo,
		gameID:  gameID,
		round:   round,
		beginAt: time.Now().Unix(),
		players: players,
	}
}

func (h *History) Round() int {
	return h.round
}

// SetHands records the hands of the latest deal. Redeals overwrite the
// previous hands.
func (h *History) SetHands(hands [piece.Seats]piece.Pieces) {
	for i, hand := range hands {
		h.Hands[i] = hand.Clone()
	}
}

// Record appends the events that belong to the replay. It reports whether the
// round is complete.
func (h *History) Record(ev engine.Event) bool {
	switch e := ev.(type) {
	case engine.HandsDealt:
		h.Dealt = append(h.Dealt, e)
	case engine.RedealTriggered:
		h.Redeals = append(h.Redeals, e)
		h.Declarations = nil
	case engine.Declared:
		h.Declarations = append(h.Declarations, e)
	case engine.TurnResolved:
		h.Turns = append(h.Turns, e)
	case engine.RoundScored:
		res := e.RoundResult
		h.End = &res
		h.endAt = time.Now().Unix()
		return true
	}
	return false
}

// Model converts the history into its database row.
func (h *History) Model() (*model.History, error) {
	data, err := json.Marshal(&h.SnapShot)
	if err != nil {
		return nil, err
	}

	t := &model.History{
		RoomId:      h.roomID,
		RoomNo:      h.roomNo,
		GameId:      h.gameID,
		Round:       h.round,
		Multiplier:  1,
		BeginAt:     h.beginAt,
		EndAt:       h.endAt,
		PlayerName0: h.players[0],
		PlayerName1: h.players[1],
		PlayerName2: h.players[2],
		PlayerName3: h.players[3],
		Snapshot:    string(data),
	}
	if end := h.End; end != nil {
		t.Multiplier = end.Multiplier
		t.ScoreChange0 = end.Deltas[0]
		t.ScoreChange1 = end.Deltas[1]
		t.ScoreChange2 = end.Deltas[2]
		t.ScoreChange3 = end.Deltas[3]
	}
	if t.EndAt == 0 {
		t.EndAt = time.Now().Unix()
	}
	return t, nil
}

func (h *History) Save() error {
	t, err := h.Model()
	if err != nil {
		return err
	}
	return db.InsertHistory(t)
}

// Decode parses a stored snapshot.
func Decode(snapshot string) (*SnapShot, error) {
	s := &SnapShot{}
	if err := json.Unmarshal([]byte(snapshot), s); err != nil {
		return nil, err
	}
	return s, nil
}

// Record 玩家的对局统计
type Record struct {
	Hits       int `json:"hits"`       // 报中次数
	Perfect    int `json:"perfect"`    // 报0且未收墩次数
	Captured   int `json:"captured"`   // 收墩总数
	TotalScore int `json:"totalScore"` // 总分
}

// MatchStats 场统计, 按玩家
type MatchStats map[string][]*Record

// Push folds one round result into the per-player statistics.
func (ps MatchStats) Push(res *engine.RoundResult) {
	if res == nil {
		return
	}
	for seat, id := range res.Players {
		r := &Record{
			Captured:   res.Captured[seat],
			TotalScore: res.Deltas[seat],
		}
		if res.Hits[seat] {
			r.Hits = 1
			if res.Declared[seat] == 0 {
				r.Perfect = 1
			}
		}
		ps[id] = append(ps[id], r)
	}
}

func (ps MatchStats) Result() map[string]*Record {
	ret := make(map[string]*Record)

	for p, records := range ps {
		sum := &Record{}
		for _, m := range records {
			sum.Hits += m.Hits
			sum.Perfect += m.Perfect
			sum.Captured += m.Captured
			sum.TotalScore += m.TotalScore
		}
		ret[p] = sum
	}
	return ret
}

func (ps MatchStats) Round() int {
	round := 0
	for _, r := range ps {
		if l := len(r); l > round {
			round = l
		}
	}

	return round
}
