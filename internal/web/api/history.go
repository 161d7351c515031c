package api

import (
	"net/http"
	"time"

	"github.com/lonng/liaptong/db"
	"github.com/lonng/liaptong/db/model"
	"github.com/lonng/liaptong/pkg/errutil"
	"github.com/lonng/liaptong/pkg/whitelist"
	"github.com/lonng/liaptong/protocol"
	"github.com/lonng/nex"

	"github.com/gorilla/mux"
	"golang.org/x/net/context"
)

const (
	format = "01-02 15:04:05"
)

func MakeHistoryService() http.Handler {
	router := mux.NewRouter()
	router.Handle("/v1/history/lite/{room_id}", nex.Handler(historyList)).Methods("GET") //获取历史列表(lite),参数为房间记录ID
	router.Handle("/v1/history/{id}", nex.Handler(historyByID)).Methods("GET")           //获取历史记录
	return router
}

func toHistoryLite(p *model.History) protocol.HistoryLite {
	return protocol.HistoryLite{
		Id:           p.Id,
		RoomNo:       p.RoomNo,
		Round:        p.Round,
		Multiplier:   p.Multiplier,
		BeginAt:      p.BeginAt,
		BeginAtStr:   time.Unix(p.BeginAt, 0).Format(format),
		EndAt:        p.EndAt,
		PlayerName0:  p.PlayerName0,
		PlayerName1:  p.PlayerName1,
		PlayerName2:  p.PlayerName2,
		PlayerName3:  p.PlayerName3,
		ScoreChange0: p.ScoreChange0,
		ScoreChange1: p.ScoreChange1,
		ScoreChange2: p.ScoreChange2,
		ScoreChange3: p.ScoreChange3,
	}
}

func HistoryByID(id int64) (*protocol.History, error) {
	p, err := db.QueryHistory(id)
	if err != nil {
		return nil, err
	}
	return &protocol.History{
		HistoryLite: toHistoryLite(p),
		Snapshot:    p.Snapshot,
	}, nil
}

func HistoryLiteList(roomID int64) ([]protocol.HistoryLite, int64, error) {
	//默认全部
	ps, total, err := db.QueryHistoriesByRoomID(roomID)
	if err != nil {
		return nil, 0, err
	}
	list := make([]protocol.HistoryLite, total)
	for i := range ps {
		list[i] = toHistoryLite(&ps[i])
	}
	return list, int64(len(list)), nil
}

func historyList(_ context.Context, r *http.Request) (*protocol.HistoryLiteListResponse, error) {
	if !whitelist.VerifyIP(r.RemoteAddr) {
		return nil, errutil.ErrPermissionDenied
	}
	id, err := pathID(r, "room_id")
	if err != nil {
		return nil, err
	}

	list, t, err := HistoryLiteList(id)
	if err != nil {
		return nil, err
	}
	return &protocol.HistoryLiteListResponse{Data: list, Total: t}, nil
}

func historyByID(r *http.Request) (interface{}, error) {
	if !whitelist.VerifyIP(r.RemoteAddr) {
		return nil, errutil.ErrPermissionDenied
	}
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}

	h, err := HistoryByID(id)
	if err != nil {
		return nil, err
	}
	return protocol.HistoryByIDResponse{Data: h}, nil
}
