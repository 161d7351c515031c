package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/lonng/liaptong/pkg/errutil"
	"github.com/lonng/liaptong/protocol"
	"github.com/lonng/nex"
	log "github.com/sirupsen/logrus"
)

// gmService is what the GM commands act on.
type gmService interface {
	BroadcastSystemMessage(message string)
	Kick(uid int64) error
}

type gm struct {
	svc gmService
}

// authFilter 只允许本机访问GM命令
func authFilter(_ context.Context, r *http.Request) (context.Context, error) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return context.Background(), errutil.ErrPermissionDenied
	}

	if host != "127.0.0.1" {
		return context.Background(), errutil.ErrPermissionDenied
	}

	return context.Background(), nil
}

func (g *gm) broadcast(query *nex.Form) (*protocol.StringMessage, error) {
	message := strings.TrimSpace(query.Get("message"))
	if message == "" || len([]rune(message)) < 5 {
		return nil, errors.New("消息不可小于5个字")
	}
	log.Infof("系统消息广播: %s", message)
	g.svc.BroadcastSystemMessage(message)
	return protocol.SuccessMessage, nil
}

func (g *gm) kick(query *nex.Form) (*protocol.StringMessage, error) {
	uid := query.Int64OrDefault("uid", -1)
	if uid <= 0 {
		return nil, errutil.ErrIllegalParameter
	}

	log.Infof("踢玩家下线: Uid=%d", uid)
	if err := g.svc.Kick(uid); err != nil {
		return nil, err
	}

	return protocol.SuccessMessage, nil
}
