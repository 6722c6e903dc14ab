package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/xuanyeovo/sudoku-tui/internal/config"
	"github.com/xuanyeovo/sudoku-tui/internal/game"
	"github.com/xuanyeovo/sudoku-tui/internal/sudoku"
	"github.com/xuanyeovo/sudoku-tui/internal/ui"
)

var (
	log = logrus.New()

	configPath string
	level      int
	hardness   int
)

func init() {
	const (
		defaultConfigPath = "sudoku.json"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
	flag.IntVar(&level, "level", 0, "grid level, side = level*level (overrides config)")
	flag.IntVar(&hardness, "hardness", 0, "initial difficulty 1-6 (overrides config)")
}

// setupLogging sends every package logger to a rotating file. The
// terminal belongs to the renderer, so nothing may write to stdout or
// stderr while the session runs.
func setupLogging(cfg *config.Config) error {
	logLevel, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.Path,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Level:      logLevel,
		Formatter:  &logrus.TextFormatter{DisableColors: true},
	})
	if err != nil {
		return fmt.Errorf("log file hook: %w", err)
	}

	for _, l := range []*logrus.Logger{log, sudoku.Log, game.Log, ui.Log} {
		l.SetLevel(logLevel)
		l.SetOutput(io.Discard)
		l.AddHook(hook)
	}
	return nil
}

func run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if level > 0 {
		cfg.Level = level
	}
	if hardness > 0 {
		cfg.Hardness = hardness
	}

	if err := setupLogging(cfg); err != nil {
		return err
	}
	log.WithFields(cfg.Fields()).Info("starting up")

	r := rand.New(rand.NewPCG(
		uint64(time.Now().UnixNano()),
		uint64(os.Getpid()),
	))
	machine, err := game.New(cfg.Level, cfg.Hardness, r)
	if err != nil {
		return fmt.Errorf("level %d: %w", cfg.Level, err)
	}

	surface, err := ui.NewTerminalSurface()
	if err != nil {
		return err
	}
	defer surface.Close()

	session, err := ui.Start(surface, machine)
	if err != nil {
		return err
	}
	defer session.Close()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		return session.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		session.Stop()
		return nil
	})
	return g.Wait()
}

func main() {
	// run's defers tear the terminal down before the error gets here,
	// so printing is safe on every exit path.
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.WithError(err).Error("exited with error")
		os.Exit(1)
	}
	log.Info("bye")
}
