// Command trajectory-server answers trajectory prediction requests over websocket
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/artillery/config"
	"github.com/lixenwraith/artillery/feed"
)

var (
	addrFlag   = flag.String("addr", "", "Listen address, overrides the config value")
	configFlag = flag.String("config", "", "TOML config file")
)

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "err", err)
		os.Exit(1)
	}

	srv := feed.NewServer(feedConfig(cfg.Feed, *addrFlag))
	if err := srv.Run(ctx); err != nil {
		slog.ErrorContext(ctx, "server error", "err", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "server shutdown complete")
}

// feedConfig maps the file section onto service settings, addr wins when set
func feedConfig(c config.Feed, addr string) *feed.Config {
	fc := feed.DefaultConfig()
	fc.Address = c.Address
	if addr != "" {
		fc.Address = addr
	}
	if c.ReadTimeout > 0 {
		fc.ReadTimeout = c.ReadTimeout
	}
	if c.WriteTimeout > 0 {
		fc.WriteTimeout = c.WriteTimeout
	}
	fc.MaxSteps = c.MaxSteps
	return fc
}
