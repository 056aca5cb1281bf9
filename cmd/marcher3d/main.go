package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/lukaszgryglicki/marcher3d/internal/config"
	"github.com/lukaszgryglicki/marcher3d/internal/logging"
	"github.com/lukaszgryglicki/marcher3d/internal/marcher3d"
	"github.com/lukaszgryglicki/marcher3d/internal/stream"
	"github.com/lukaszgryglicki/marcher3d/internal/terminal"
	"github.com/lukaszgryglicki/marcher3d/internal/window"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	env, err := config.Load()
	if err != nil {
		return err
	}
	level := env.LogLevel
	if env.Debug {
		level = "debug"
	}
	logger, err := logging.New(level, os.Stderr)
	if err != nil {
		return err
	}
	marcher3d.Debug = env.Debug
	if env.Profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfgPath := marcher3d.ConfigPath
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	v, cfg, err := marcher3d.Setup(cfgPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.ContextWithLogger(ctx, logger)
	logger.Debug("starting", logging.String("mode", string(env.Mode)), logging.String("config", cfgPath))

	switch env.Mode {
	case config.ModeTerminal:
		return terminal.Run(ctx, v, terminal.Options{Raw: env.Raw, Fit: true})
	case config.ModeWindow:
		return window.Run(v)
	case config.ModeServe:
		s := stream.NewServer(v, stream.Options{PingInterval: env.PingInterval, MaxClients: env.MaxClients})
		return stream.ListenAndServe(ctx, env.Addr, s)
	case config.ModePNG, config.ModeGIF:
		return marcher3d.Export(v, cfg, string(env.Mode), env.Out)
	}
	return fmt.Errorf("mode %q: %w", env.Mode, config.ErrInvalidMode)
}
