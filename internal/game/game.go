package game

import (
	"fmt"
	"time"

	"github.com/lonng/liaptong/internal/game/piece"
	"github.com/lonng/liaptong/internal/game/rule"
	"github.com/lonng/liaptong/pkg/constant"

	"github.com/lonng/nano"
	"github.com/lonng/nano/component"
	"github.com/lonng/nano/pipeline"
	"github.com/lonng/nano/serialize/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = log.WithField("component", "game")

// Config 游戏服配置
type Config struct {
	Addr          string
	Heartbeat     time.Duration
	CryptoKey     string // 为空时不加密
	Rules         rule.Options
	RedealTimeout time.Duration

	// 测试时注入固定发牌, 为空时随机洗牌
	NewDealer func() piece.Dealer
}

// LoadConfig reads the game section from viper, falling back to the default
// rules for missing keys.
func LoadConfig() Config {
	rules := rule.DefaultOptions()
	if viper.IsSet("game.weak_threshold") {
		rules.WeakThreshold = viper.GetInt("game.weak_threshold")
	}
	if viper.IsSet("game.perfect_avoid_bonus") {
		rules.PerfectAvoidBonus = viper.GetInt("game.perfect_avoid_bonus")
	}
	if viper.IsSet("game.hit_bonus") {
		rules.HitBonus = viper.GetInt("game.hit_bonus")
	}
	if viper.IsSet("game.win_threshold") {
		rules.WinThreshold = viper.GetInt("game.win_threshold")
	}
	if viper.IsSet("game.max_redeals") {
		rules.MaxRedeals = viper.GetInt("game.max_redeals")
	}
	if viper.IsSet("game.redeal_mode") {
		rules.RedealMode = constant.ParseRedealMode(viper.GetString("game.redeal_mode"))
	}

	timeout := defaultRedealTimeout
	if viper.IsSet("game.redeal_timeout") {
		timeout = time.Duration(viper.GetInt("game.redeal_timeout")) * time.Second
	}

	heartbeat := time.Duration(viper.GetInt("core.heartbeat")) * time.Second
	if heartbeat < minHeartbeat {
		heartbeat = minHeartbeat
	}

	return Config{
		Addr:          fmt.Sprintf(":%d", viper.GetInt("game-server.port")),
		Heartbeat:     heartbeat,
		CryptoKey:     viper.GetString("core.crypto_key"),
		Rules:         rules,
		RedealTimeout: timeout,
	}
}

// Startup 初始化游戏服务器, 阻塞直到服务退出
func Startup(m *RoomManager) {
	cfg := m.cfg
	logger.Infof("当前游戏规则: %+v, 重发决策超时: %v, 心跳时间间隔: %v", cfg.Rules, cfg.RedealTimeout, cfg.Heartbeat)
	logger.Info("game service starup")

	// register game handler
	comps := &component.Components{}
	comps.Register(m)

	opts := []nano.Option{
		nano.WithHeartbeatInterval(cfg.Heartbeat),
		nano.WithLogger(log.WithField("component", "nano")),
		nano.WithSerializer(json.NewSerializer()),
		nano.WithComponents(comps),
	}

	// 加密管道
	if cfg.CryptoKey != "" {
		c := newCrypto(cfg.CryptoKey)
		pip := pipeline.New()
		pip.Inbound().PushBack(c.inbound)
		pip.Outbound().PushBack(c.outbound)
		opts = append(opts, nano.WithPipeline(pip))
	}

	nano.Listen(cfg.Addr, opts...)
}
