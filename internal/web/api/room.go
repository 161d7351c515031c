package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/lonng/liaptong/db"
	"github.com/lonng/liaptong/db/model"
	"github.com/lonng/liaptong/internal/game/engine"
	"github.com/lonng/liaptong/pkg/constant"
	"github.com/lonng/liaptong/pkg/errutil"
	"github.com/lonng/liaptong/pkg/whitelist"
	"github.com/lonng/liaptong/protocol"
	"github.com/lonng/nex"
)

// RoomProvider exposes the live rooms of the game server.
type RoomProvider interface {
	RoomSummaries() []protocol.RoomSummary
	RoomView(no string) (engine.View, error)
}

func MakeRoomService(rooms RoomProvider) http.Handler {
	s := &roomService{rooms: rooms}
	router := mux.NewRouter()
	router.Handle("/v1/room/live", nex.Handler(s.liveList)).Methods("GET")      //正在进行的房间
	router.Handle("/v1/room/live/{no}", nex.Handler(s.liveView)).Methods("GET") //观战视图
	router.Handle("/v1/room/player/{id}", nex.Handler(roomList)).Methods("GET") //玩家参与过的房间
	router.Handle("/v1/room/{id:[0-9]+}", nex.Handler(roomByID)).Methods("GET") //房间记录
	return router
}

type roomService struct {
	rooms RoomProvider
}

func (s *roomService) liveList(r *http.Request) (*protocol.RoomListResponse, error) {
	if !whitelist.VerifyIP(r.RemoteAddr) {
		return nil, errutil.ErrPermissionDenied
	}
	list := s.rooms.RoomSummaries()
	return &protocol.RoomListResponse{Data: list, Total: len(list)}, nil
}

func (s *roomService) liveView(r *http.Request) (*protocol.RoomViewResponse, error) {
	if !whitelist.VerifyIP(r.RemoteAddr) {
		return nil, errutil.ErrPermissionDenied
	}
	no, ok := mux.Vars(r)["no"]
	if !ok || no == "" {
		return nil, errutil.ErrInvalidParameter
	}
	v, err := s.rooms.RoomView(no)
	if err != nil {
		return nil, err
	}
	return &protocol.RoomViewResponse{Data: v}, nil
}

func toRoomRecord(p *model.Room) protocol.RoomRecord {
	const format = "2006-01-02 15:04:05"
	return protocol.RoomRecord{
		Id:           p.Id,
		RoomNo:       p.RoomNo,
		Creator:      p.Creator,
		RedealMode:   p.RedealMode,
		WinThreshold: p.WinThreshold,
		Status:       constant.RoomStatus(p.Status).String(),
		Round:        p.Round,
		Player0:      p.Player0,
		Player1:      p.Player1,
		Player2:      p.Player2,
		Player3:      p.Player3,
		PlayerName0:  p.PlayerName0,
		PlayerName1:  p.PlayerName1,
		PlayerName2:  p.PlayerName2,
		PlayerName3:  p.PlayerName3,
		ScoreChange0: p.ScoreChange0,
		ScoreChange1: p.ScoreChange1,
		ScoreChange2: p.ScoreChange2,
		ScoreChange3: p.ScoreChange3,
		Winners:      p.Winners,
		CreatedAt:    p.CreatedAt,
		CreatedAtStr: time.Unix(p.CreatedAt, 0).Format(format),
		FinishedAt:   p.FinishedAt,
	}
}

func pathID(r *http.Request, key string) (int64, error) {
	idStr, ok := mux.Vars(r)[key]
	if !ok || idStr == "" {
		return 0, errutil.ErrInvalidParameter
	}
	id, err := strconv.ParseInt(idStr, 10, 0)
	if err != nil {
		return 0, errutil.ErrInvalidParameter
	}
	return id, nil
}

func roomList(r *http.Request) (*protocol.RoomRecordListResponse, error) {
	if !whitelist.VerifyIP(r.RemoteAddr) {
		return nil, errutil.ErrPermissionDenied
	}
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}

	ps, total, err := db.RoomList(id)
	if err != nil {
		return nil, err
	}
	list := make([]protocol.RoomRecord, total)
	for i := range ps {
		list[i] = toRoomRecord(&ps[i])
	}
	return &protocol.RoomRecordListResponse{Data: list, Total: total}, nil
}

func roomByID(r *http.Request) (*protocol.RoomRecordResponse, error) {
	if !whitelist.VerifyIP(r.RemoteAddr) {
		return nil, errutil.ErrPermissionDenied
	}
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}

	p, err := db.QueryRoom(id)
	if err != nil {
		return nil, err
	}
	rec := toRoomRecord(p)
	return &protocol.RoomRecordResponse{Data: &rec}, nil
}
