// Command circuitd serves circuit analysis over HTTP.
//
//	circuitd -addr :8090 -max-steps 1000000 -timeout 2s
//
// See package httpapi for routes and status codes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/circuitloop/circuit"
	"github.com/katalvlaran/circuitloop/httpapi"
)

func main() {
	cfg := httpapi.DefaultConfig()
	var lang string
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.IntVar(&cfg.MaxSteps, "max-steps", cfg.MaxSteps, "loop search budget per request (0 = unlimited)")
	flag.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request analysis timeout (0 = none)")
	flag.IntVar(&cfg.MaxWireLength, "max-wire-length", cfg.MaxWireLength, "cap on the summed wire length of one schematic (0 = unlimited)")
	flag.Int64Var(&cfg.MaxBodyBytes, "max-body", cfg.MaxBodyBytes, "maximum request body size in bytes")
	flag.StringVar(&lang, "lang", string(cfg.Lang), "default feedback language (fr or en)")
	level := zap.LevelFlag("log-level", zap.InfoLevel, "set log level")
	flag.Parse()

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(*level)
	log, err := zcfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "circuitd:", err)
		os.Exit(2)
	}
	defer log.Sync() //nolint:errcheck

	if cfg.Lang, err = circuit.ParseLang(lang); err != nil {
		log.Fatal("bad -lang", zap.Error(err))
	}
	if cfg.MaxSteps < 0 {
		log.Fatal("bad -max-steps", zap.Int("max_steps", cfg.MaxSteps))
	}
	if cfg.MaxWireLength < 0 {
		log.Fatal("bad -max-wire-length", zap.Int("max_wire_length", cfg.MaxWireLength))
	}

	srv := httpapi.NewServer(cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	select {
	case err = <-errc:
		if err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err = srv.Stop(shutdown); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}
}
