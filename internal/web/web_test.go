package web

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

type fakeService struct {
	messages []string
	kicked   []int64
}

func (f *fakeService) RoomSummaries() []protocol.RoomSummary { return nil }

func (f *fakeService) RoomView(no string) (engine.View, error) {
	return engine.View{}, errutil.ErrRoomNotFound
}

func (f *fakeService) BroadcastSystemMessage(message string) {
	f.messages = append(f.messages, message)
}

func (f *fakeService) Kick(uid int64) error {
	if uid != 7 {
		return errutil.ErrPlayerNotFound
	}
	f.kicked = append(f.kicked, uid)
	return nil
}

func serve(h http.Handler, url, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	if remote != "" {
		req.RemoteAddr = remote
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	h := startupService(&fakeService{})
	w := serve(h, "/ping", "")
	assert.JSONEq(t, `"pong"`, w.Body.String())
}

func TestGM(t *testing.T) {
	svc := &fakeService{}
	h := startupService(svc)

	var resp protocol.ErrorResponse
	w := serve(h, "/v1/gm/broadcast?message=hello+world", "10.0.0.2:5000")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errutil.Code(errutil.ErrPermissionDenied), resp.Code)
	assert.Empty(t, svc.messages)

	serve(h, "/v1/gm/broadcast?message=hello+world", "127.0.0.1:5000")
	assert.Equal(t, []string{"hello world"}, svc.messages)

	serve(h, "/v1/gm/kick?uid=7", "127.0.0.1:5000")
	assert.Equal(t, []int64{7}, svc.kicked)

	w = serve(h, "/v1/gm/kick?uid=8", "127.0.0.1:5000")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errutil.Code(errutil.ErrPlayerNotFound), resp.Code)
}

func TestRoomViewError(t *testing.T) {
	h := startupService(&fakeService{})

	var resp protocol.ErrorResponse
	w := serve(h, "/v1/room/live/123456", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errutil.Code(errutil.ErrRoomNotFound), resp.Code)
}
