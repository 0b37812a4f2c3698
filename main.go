package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-bitlife/model"
	"github.com/sheikhrachel/go-bitlife/utils"
)

const defaultConfigFile = "config.json"

var errOutOfRange = errors.New("flag value out of range")

func main() {
	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses flags, loads configuration and drives the game until it finishes
// or ctx is cancelled
func run(ctx context.Context, out, logOut io.Writer, args []string) error {
	config, err := parseFlags(args, logOut)
	if err != nil {
		return err
	}

	logger, err := utils.NewLogger(logOut, config.LogLevel, config.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	g, err := initializeGame(config, logger, model.NewRand(config.Seed))
	if err != nil {
		return err
	}
	g.displayGameInfo()

	// The loop goroutine owns the grid; the renderer only sees snapshots.
	// A failure on either side cancels the other.
	var (
		eg, egCtx = errgroup.WithContext(ctx)
		frames    = make(chan frame, 1)
		renderer  = &model.TerminalRenderer{Out: out}
	)
	eg.Go(func() error {
		return g.loop(egCtx, frames)
	})
	eg.Go(func() error {
		return renderFrames(renderer, frames)
	})
	return eg.Wait()
}

// parseFlags loads the config file and applies any explicitly set flags on top of it
func parseFlags(args []string, output io.Writer) (utils.Config, error) {
	flagSet := flag.NewFlagSet("go-bitlife", flag.ContinueOnError)
	flagSet.SetOutput(output)

	var (
		configFlag      = flagSet.String("config", defaultConfigFile, "Path to a JSON or YAML config file.")
		widthFlag       = flagSet.Uint("width", 0, "Grid width in cells.")
		heightFlag      = flagSet.Uint("height", 0, "Grid height in cells.")
		seedFlag        = flagSet.Int64("seed", 0, "Random seed, 0 seeds from the clock.")
		generationsFlag = flagSet.Int("generations", 0, "Stop after this many generations, 0 runs forever.")
		frameRateFlag   = flagSet.Duration("frame-rate", 0, "Delay between generations.")
		logLevelFlag    = flagSet.String("log-level", "", "Logging level: debug, info, warn or error.")
	)

	if err := flagSet.Parse(args); err != nil {
		return utils.Config{}, errors.Wrap(err, "[parseFlags]")
	}

	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	config, err := utils.LoadConfig(*configFlag)
	if err != nil {
		if set["config"] || !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		// Fall back to defaults when the default config file is absent
		config = utils.DefaultConfig()
	}

	if set["width"] {
		if config.Width, err = dimensionFlag("width", *widthFlag); err != nil {
			return config, err
		}
	}
	if set["height"] {
		if config.Height, err = dimensionFlag("height", *heightFlag); err != nil {
			return config, err
		}
	}
	if set["seed"] {
		config.Seed = *seedFlag
	}
	if set["generations"] {
		config.MaxGenerations = *generationsFlag
	}
	if set["frame-rate"] {
		config.FrameRate = *frameRateFlag
	}
	if set["log-level"] {
		config.LogLevel = *logLevelFlag
	}
	return config, config.Validate()
}

// dimensionFlag narrows a -width or -height value to the grid's 32-bit range
func dimensionFlag(name string, v uint) (uint32, error) {
	if uint64(v) > math.MaxUint32 {
		return 0, errors.Wrapf(errOutOfRange, "[parseFlags] -%s %d exceeds %d", name, v, uint64(math.MaxUint32))
	}
	return uint32(v), nil
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
