package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/diamonds/consts"
	"github.com/ratel-online/diamonds/diamonds/local"
	"github.com/ratel-online/diamonds/diamonds/ui"
	"github.com/ratel-online/diamonds/network"
	"github.com/ratel-online/diamonds/state"
)

type config struct {
	mode     string
	addr     string
	wsAddr   string
	opponent string
	delay    time.Duration
}

func loadConfig(args []string, getenv func(string) string) (config, error) {
	delay := consts.RoundDelay
	if value := getenv("DIAMONDS_DELAY"); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return config{}, fmt.Errorf("%w: DIAMONDS_DELAY %s", consts.ErrorsInputInvalid, err)
		}
		delay = parsed
	}
	cfg := config{}
	flags := flag.NewFlagSet("diamonds", flag.ContinueOnError)
	flags.StringVar(&cfg.mode, "mode", envOr(getenv, "DIAMONDS_MODE", consts.ModeLocal), "local or serve")
	flags.StringVar(&cfg.addr, "addr", envOr(getenv, "DIAMONDS_ADDR", ":9999"), "tcp listen address")
	flags.StringVar(&cfg.wsAddr, "ws-addr", envOr(getenv, "DIAMONDS_WS_ADDR", ":9998"), "websocket listen address, empty to disable")
	flags.StringVar(&cfg.opponent, "opponent", envOr(getenv, "DIAMONDS_OPPONENT", consts.OpponentHighest), "computer strategy: highest or random")
	flags.DurationVar(&cfg.delay, "delay", delay, "pause after each round at the console")
	if err := flags.Parse(args); err != nil {
		return config{}, err
	}

	if cfg.mode != consts.ModeLocal && cfg.mode != consts.ModeServe {
		return config{}, fmt.Errorf("%w%s", consts.ErrorsModeInvalid, cfg.mode)
	}
	valid := false
	for _, opponent := range consts.Opponents {
		valid = valid || opponent == cfg.opponent
	}
	if !valid {
		return config{}, fmt.Errorf("%w%s", consts.ErrorsOpponentInvalid, cfg.opponent)
	}
	return cfg, nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	rand.Seed(time.Now().UnixNano())

	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}

	if cfg.mode == consts.ModeLocal {
		console := ui.NewConsole(os.Stdin, nil, cfg.delay)
		if _, err := local.Run(console, cfg.opponent); err != nil && !errors.Is(err, consts.ErrorsExist) {
			log.Error(err)
			os.Exit(1)
		}
		return
	}

	machine := state.NewMachine(cfg.opponent)
	if cfg.wsAddr != "" {
		async.Async(func() {
			log.Error(network.NewWebsocketServer(cfg.wsAddr, machine).Serve())
		})
	}
	log.Error(network.NewTcpServer(cfg.addr, machine).Serve())
}
