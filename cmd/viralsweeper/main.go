package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/viralsweeper/internal/command"
	"github.com/vancomm/viralsweeper/internal/config"
	"github.com/vancomm/viralsweeper/internal/logging"
	"github.com/vancomm/viralsweeper/internal/sweeper"
	"github.com/vancomm/viralsweeper/internal/tui"
)

var (
	configPath string
	batch      bool
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", config.DefaultPath, usage)
	flag.StringVar(&configPath, "c", config.DefaultPath, usage+" (shorthand)")
	flag.BoolVar(&batch, "batch", false, "read commands from stdin instead of opening the board")
}

func createRand(seed *config.Seed) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(seed.Hi, seed.Lo))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func run(ctx context.Context, stop context.CancelFunc, log *logrus.Logger, rnd *rand.Rand) error {
	model, err := tui.New(func() (*sweeper.Session, error) {
		return sweeper.NewSession(sweeper.DefaultParams(), rnd)
	}, log)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		final, err := p.Run()
		if err != nil {
			return err
		}
		if m, ok := final.(tui.Model); ok {
			return m.Err()
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		p.Quit()
		return nil
	})

	return g.Wait()
}

// fatal reports to both the log file and the terminal, the logger itself
// never writes to stderr.
func fatal(log *logrus.Logger, msg string, err error) {
	log.WithError(err).Error(msg)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load config %s: %v\n", configPath, err)
		os.Exit(1)
	}

	log, err := logging.Setup(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to set up logging: %v\n", err)
		os.Exit(1)
	}
	sweeper.Log = log

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	rnd := createRand(cfg.Seed)

	if batch {
		s, err := sweeper.NewSession(sweeper.DefaultParams(), rnd)
		if err != nil {
			fatal(log, "unable to start a game", err)
		}
		event, err := command.Run(s, os.Stdin, os.Stdout, log.WithField("session", s.ID()))
		if err != nil {
			fatal(log, "batch failed", err)
		}
		log.WithField("outcome", event).Info("shut down")
		return
	}

	if err := run(mainCtx, stop, log, rnd); err != nil &&
		!errors.Is(err, tea.ErrProgramKilled) {
		fatal(log, "error running program", err)
	}
	log.Info("shut down")
}
