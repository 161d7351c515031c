package db

import (
	"time"

	"github.com/lonng/liaptong/db/model"
	"github.com/lonng/liaptong/pkg/errutil"

	_ "github.com/go-sql-driver/mysql"
	"github.com/go-xorm/xorm"
	log "github.com/sirupsen/logrus"
)

var (
	database *xorm.Engine
	logger   = log.WithField("component", "model")
	chDie    chan struct{}
)

type options struct {
	showSQL      bool
	maxOpenConns int
	maxIdleConns int
}

// ModelOption specifies an option for dialing the database.
type ModelOption func(*options)

// MaxIdleConns specifies the max idle connect numbers.
func MaxIdleConns(i int) ModelOption {
	return func(opts *options) {
		opts.maxIdleConns = i
	}
}

// MaxOpenConns specifies the max open connect numbers.
func MaxOpenConns(i int) ModelOption {
	return func(opts *options) {
		opts.maxOpenConns = i
	}
}

// ShowSQL specifies whether the executed sql is logged.
func ShowSQL(show bool) ModelOption {
	return func(opts *options) {
		opts.showSQL = show
	}
}

// Enabled reports whether MustStartup has connected the database.
func Enabled() bool {
	return database != nil
}

func disabled() error {
	return errutil.Reject(errutil.ErrDBOperation, "database disabled")
}

func envInit() {
	// 定时ping数据库, 保持连接池连接
	go func() {
		ticker := time.NewTicker(time.Minute * 5)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := database.Ping(); err != nil {
					logger.Errorf("数据库连接异常: %v", err)
				}
			case <-chDie:
				return
			}
		}
	}()
}

// MustStartup creates the database connection and returns its closer.
func MustStartup(dsn string, opts ...ModelOption) func() {
	settings := &options{
		maxIdleConns: defaultMaxConns,
		maxOpenConns: defaultMaxConns,
		showSQL:      true,
	}

	// options handle
	for _, opt := range opts {
		opt(settings)
	}

	logger.Infof("ShowSQL=%t MaxIdleConn=%v MaxOpenConn=%v", settings.showSQL, settings.maxIdleConns, settings.maxOpenConns)

	// create database instance
	db, err := xorm.NewEngine("mysql", dsn)
	if err != nil {
		panic(err)
	}
	database = db

	// 设置日志相关
	database.SetLogger(&Logger{Entry: logger.WithField("orm", "xorm")})

	chDie = make(chan struct{})

	// options
	database.SetMaxIdleConns(settings.maxIdleConns)
	database.SetMaxOpenConns(settings.maxOpenConns)
	database.ShowSQL(settings.showSQL)

	syncSchema()
	envInit()

	closer := func() {
		close(chDie)
		database.Close()
		database = nil
		logger.Info("stopped")
	}

	return closer
}

func syncSchema() {
	if err := database.StoreEngine("InnoDB").Sync2(
		new(model.Room),
		new(model.History),
	); err != nil {
		panic(err)
	}
}
