package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"sync"
	"time"

	"github.com/lonng/liaptong/internal/async"
	"github.com/lonng/liaptong/internal/game"
	"github.com/lonng/liaptong/internal/hooks"
	"github.com/lonng/liaptong/internal/web"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	// base application info
	app.Name = "liaptong server"
	app.Author = "Liaptong"
	app.Version = "0.0.1"
	app.Copyright = "liaptong team reserved"
	app.Usage = "pile declaration game server"

	// flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "./configs/config.toml",
			Usage: "load configuration from `FILE`",
		},
		cli.StringFlag{
			Name:  "env",
			Value: ".env",
			Usage: "load environment overrides from `FILE` when present",
		},
		cli.BoolFlag{
			Name:  "cpuprofile",
			Usage: "enable cpu profile",
		},
	}

	app.Action = serve
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) {
	if env := c.String("env"); env != "" {
		if _, err := os.Stat(env); err == nil {
			if err := godotenv.Load(env); err != nil {
				log.Warnf("加载环境变量文件失败: %s, Error=%v", env, err)
			}
		}
	}

	viper.SetConfigType("toml")
	viper.SetConfigFile(c.String("config"))
	if err := viper.ReadInConfig(); err != nil {
		log.Warnf("读取配置文件失败: %v", err)
	}

	// LIAPTONG_GAME_WIN_THRESHOLD 覆盖 game.win_threshold
	viper.SetEnvPrefix("liaptong")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

func serve(c *cli.Context) error {
	loadConfig(c)

	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if viper.GetBool("core.debug") {
		log.SetLevel(log.DebugLevel)
		log.AddHook(hooks.NewSourceHook(log.WarnLevel, log.ErrorLevel, log.FatalLevel, log.PanicLevel))
	}

	if c.Bool("cpuprofile") {
		filename := fmt.Sprintf("cpuprofile-%d.pprof", time.Now().Unix())
		f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE, os.ModePerm)
		if err != nil {
			panic(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	// setup database
	closer := web.SetupDatabase()
	defer closer()

	manager := game.NewManager(game.LoadConfig())

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() { defer wg.Done(); game.Startup(manager) }() // 开启游戏服
	go func() { defer wg.Done(); web.Startup(manager) }()  // 开启web服务器

	wg.Wait()

	// 等待未完成的数据库写入
	async.Wait(5 * time.Second)
	return nil
}
