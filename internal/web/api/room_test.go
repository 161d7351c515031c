package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lonng/liaptong/internal/game/engine"
	"github.com/lonng/liaptong/pkg/errutil"
	"github.com/lonng/liaptong/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRooms struct{}

func (fakeRooms) RoomSummaries() []protocol.RoomSummary {
	return []protocol.RoomSummary{{RoomNo: "123456", Phase: "turn", Round: 2, Multiplier: 1}}
}

func (fakeRooms) RoomView(no string) (engine.View, error) {
	if no != "123456" {
		return engine.View{}, errutil.ErrRoomNotFound
	}
	return engine.View{GameID: "g1", Phase: "turn", Round: 2, Seat: -1}, nil
}

func get(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRoomService_Live(t *testing.T) {
	h := MakeRoomService(fakeRooms{})

	w := get(t, h, "/v1/room/live")
	require.Equal(t, http.StatusOK, w.Code)
	var list protocol.RoomListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "123456", list.Data[0].RoomNo)

	w = get(t, h, "/v1/room/live/123456")
	require.Equal(t, http.StatusOK, w.Code)
	var view struct {
		Data engine.View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "g1", view.Data.GameID)
	assert.Equal(t, 2, view.Data.Round)
}

func TestRoomService_Errors(t *testing.T) {
	h := MakeRoomService(fakeRooms{})

	for _, url := range []string{
		"/v1/room/live/000000",
		"/v1/room/1", // 未启用数据库
		"/v1/room/player/abc",
	} {
		w := get(t, h, url)
		var resp protocol.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), url)
		assert.NotZero(t, resp.Code, url)
		assert.NotEmpty(t, resp.Error, url)
	}
}
