package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-bitlife/model"
	"github.com/sheikhrachel/go-bitlife/utils"
)

// refreshInterval forces a restart every this many generations
const refreshInterval = 200

// frame is one rendered generation. cells is a GetCells snapshot, so the
// renderer never touches the grid.
type frame struct {
	generation int
	status     string
	width      uint32
	height     uint32
	cells      []uint32
}

// game owns the grid and everything the simulation loop needs around it.
// Only the loop goroutine touches the grid.
type game struct {
	config  utils.Config
	grid    *model.Grid
	stats   *utils.Stats
	history *model.History
	rng     *rand.Rand
	logger  *slog.Logger
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, logger *slog.Logger, rng *rand.Rand) (*game, error) {
	grid, err := model.NewGrid(config.Width, config.Height, nil)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}

	g := &game{
		config:  config,
		grid:    grid,
		stats:   utils.NewStats(),
		history: model.NewHistory(model.DefaultHistorySize),
		rng:     rng,
		logger:  logger,
	}
	if err := g.seed(); err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}
	return g, nil
}

// seed fills the board, stamping known patterns first when enabled
func (g *game) seed() error {
	random := model.RandomSeed(g.rng, g.config.RandomDensity)
	if g.config.Patterns {
		return g.grid.ResetWithInterestingPatterns(random)
	}

	g.grid.Clear()
	var coords []model.Coord
	for row := uint32(0); row < g.grid.Height(); row++ {
		for col := uint32(0); col < g.grid.Width(); col++ {
			if random() {
				coords = append(coords, model.Coord{Row: row, Col: col})
			}
		}
	}
	return g.grid.SetCells(coords)
}

// displayGameInfo logs the initial game information
func (g *game) displayGameInfo() {
	g.logger.Info("game initialized",
		"width", g.grid.Width(),
		"height", g.grid.Height(),
		"living", g.grid.CountLivingCells(),
		"patterns", g.config.Patterns,
		"auto_restart", g.config.AutoRestart,
	)
}

// updateGameState updates stats and history and returns status information
func (g *game) updateGameState(generation int, lastFrameTime time.Time) (int, float64, string, bool) {
	livingCells := g.grid.CountLivingCells()
	density := float64(livingCells) / float64(uint64(g.grid.Width())*uint64(g.grid.Height())) * 100

	g.stats.Update(generation, livingCells, time.Since(lastFrameTime))

	hash := g.grid.Hash()
	isStagnant := g.history.IsStagnant(hash)
	g.history.Record(hash)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// gameStatus formats the status lines shown above the board
func (g *game) gameStatus(generation, livingCells int, density float64, status string, lastRestartGen int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Fprintf(&b, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())
	fmt.Fprintf(&b, "Restarts: %d | Injected cells: %d\n", g.stats.Restarts, g.stats.InjectedCells)

	if generation > lastRestartGen {
		fmt.Fprintf(&b, "Generations since restart: %d\n", generation-lastRestartGen)
	}
	b.WriteByte('\n')
	return b.String()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%refreshInterval == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the board in place
func (g *game) restartGame(reason string) error {
	if err := g.seed(); err != nil {
		return errors.Wrap(err, "[restartGame]")
	}
	g.history.Reset()
	g.stats.RecordRestart(reason)
	g.logger.Info("game restarted", "reason", reason, "restarts", g.stats.Restarts, "living", g.grid.CountLivingCells())
	return nil
}

// loop runs generations until the limit is reached or ctx is cancelled,
// sending a snapshot of each one to frames. frames is closed on return.
func (g *game) loop(ctx context.Context, frames chan<- frame) error {
	defer close(frames)

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		if ctx.Err() != nil {
			g.shutdown(generation)
			return nil
		}

		frameStart := time.Now()
		livingCells, density, status, isStagnant := g.updateGameState(generation, lastFrameTime)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		f := frame{
			generation: generation,
			status:     g.gameStatus(generation, livingCells, density, status, lastRestartGen),
			width:      g.grid.Width(),
			height:     g.grid.Height(),
			cells:      g.grid.GetCells(),
		}
		select {
		case <-ctx.Done():
			g.shutdown(generation)
			return nil
		case frames <- f:
		}

		if g.config.MaxGenerations > 0 && generation >= g.config.MaxGenerations {
			g.logger.Info("reached maximum generations", "limit", g.config.MaxGenerations)
			return nil
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, g.config)
		if shouldRestart && g.config.AutoRestart {
			if err := g.restartGame(restartReason); err != nil {
				return err
			}
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < g.config.StagnationThreshold {
			g.logger.Debug("injecting random life", "generation", generation, "count", g.config.InjectionCount)
			if err := g.grid.InjectRandomLife(g.rng, g.config.InjectionCount); err != nil {
				return errors.Wrap(err, "[loop]")
			}
			g.stats.RecordInjection(g.config.InjectionCount)
		}

		g.grid.Advance()
		generation++

		if err := sleep(ctx, g.config.FrameRate); err != nil {
			g.shutdown(generation)
			return nil
		}
	}
}

func (g *game) shutdown(generation int) {
	g.logger.Info("shutting down",
		"generations", generation,
		"restarts", g.stats.Restarts,
		"injected_cells", g.stats.InjectedCells,
		"runtime", g.stats.Runtime().Round(time.Millisecond),
		"avg_population", fmt.Sprintf("%.1f", g.stats.AveragePopulation),
	)
}

// renderFrames draws each frame until frames is closed
func renderFrames(renderer *model.TerminalRenderer, frames <-chan frame) error {
	for f := range frames {
		if err := renderer.Clear(); err != nil {
			return errors.Wrapf(err, "[renderFrames] generation %d", f.generation)
		}
		if _, err := fmt.Fprint(renderer.Out, f.status); err != nil {
			return errors.Wrapf(err, "[renderFrames] generation %d", f.generation)
		}
		if err := renderer.DisplayCells(f.width, f.height, f.cells); err != nil {
			return errors.Wrapf(err, "[renderFrames] generation %d", f.generation)
		}
	}
	return nil
}
