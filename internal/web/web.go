package web

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lonng/liaptong/db"
	"github.com/lonng/liaptong/internal/web/api"
	"github.com/lonng/liaptong/pkg/algoutil"
	"github.com/lonng/liaptong/pkg/errutil"
	"github.com/lonng/liaptong/pkg/whitelist"
	"github.com/lonng/liaptong/protocol"
	"github.com/lonng/nex"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Service is the part of the game server the http api exposes.
type Service interface {
	api.RoomProvider
	gmService
}

var logger = log.WithField("component", "http")

// SetupDatabase connects MySQL when database.enable is set. The returned
// closer is never nil.
func SetupDatabase() func() {
	if !viper.GetBool("database.enable") {
		logger.Info("数据库未启用, 房间与牌局记录不会保存")
		return func() {}
	}

	dsn := db.BuildDSN(
		viper.GetString("database.host"),
		viper.GetInt("database.port"),
		viper.GetString("database.username"),
		viper.GetString("database.password"),
		viper.GetString("database.dbname"),
		viper.GetString("database.args"))

	return db.MustStartup(
		dsn,
		db.MaxIdleConns(viper.GetInt("database.max_idle_conns")),
		db.MaxOpenConns(viper.GetInt("database.max_open_conns")),
		db.ShowSQL(viper.GetBool("database.show_sql")))
}

func enableWhiteList() {
	whitelist.Setup(viper.GetStringSlice("whitelist.ip"))
}

func version() (*protocol.Version, error) {
	return &protocol.Version{
		Version: viper.GetString("update.version"),
	}, nil
}

func pongHandler() (string, error) {
	return "pong", nil
}

func logRequest(ctx context.Context, r *http.Request) (context.Context, error) {
	if uri := r.RequestURI; uri != "/ping" {
		logger.Debugf("Method=%s, RemoteAddr=%s URL=%s", r.Method, r.RemoteAddr, uri)
	}
	return ctx, nil
}

func encodeError(err error) interface{} {
	return &protocol.ErrorResponse{
		Code:  errutil.Code(err),
		Error: errutil.Reason(err),
	}
}

func startupService(svc Service) http.Handler {
	var (
		mux = http.NewServeMux()
		g   = &gm{svc: svc}
	)

	nex.Before(logRequest)
	nex.SetErrorEncoder(encodeError)
	mux.Handle("/v1/room/", api.MakeRoomService(svc))
	mux.Handle("/v1/history/", api.MakeHistoryService())
	mux.Handle("/v1/version", nex.Handler(version))

	// GM系统命令
	mux.Handle("/v1/gm/broadcast", nex.Handler(g.broadcast).Before(authFilter)) // 消息广播
	mux.Handle("/v1/gm/kick", nex.Handler(g.kick).Before(authFilter))           // 踢人

	mux.Handle("/ping", nex.Handler(pongHandler))

	return algoutil.AccessControl(algoutil.OptionControl(mux))
}

// Startup 开启web服务, 阻塞直到收到退出信号
func Startup(svc Service) {
	// enable white list
	enableWhiteList()

	var (
		addr      = viper.GetString("webserver.addr")
		cert      = viper.GetString("webserver.certificates.cert")
		key       = viper.GetString("webserver.certificates.key")
		enableSSL = viper.GetBool("webserver.enable_ssl")
	)

	logger.Infof("Web service addr: %s(enable ssl: %v)", addr, enableSSL)
	go func() {
		// http service
		mux := startupService(svc)
		if enableSSL {
			log.Fatal(http.ListenAndServeTLS(addr, cert, key, mux))
		} else {
			log.Fatal(http.ListenAndServe(addr, mux))
		}
	}()

	sg := make(chan os.Signal, 1)
	signal.Notify(sg, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	// stop server
	s := <-sg
	log.Infof("got signal: %s", s.String())
}
