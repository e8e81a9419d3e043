package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blarbs/internal/core"
	"github.com/vovakirdan/blarbs/internal/inspect"
	"github.com/vovakirdan/blarbs/internal/platform/ansi"
	"github.com/vovakirdan/blarbs/internal/registry"
)

var (
	flagTicks    int
	flagVariant  string
	flagMoves    string
	flagNoChaser bool
	flagDump     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a game headlessly",
	Long: `Starts a round and feeds the player one move per tick from --moves.
Ticks after the moves run out only advance the chaser. The run stops
after --ticks ticks or when the round ends.

Moves are letters U, D, L, R; spaces and commas are ignored.

Examples:
  blarbs simulate --moves DDDLLD --no-chaser
  blarbs simulate --variant open --ticks 200 --seed 7 --dump
  blarbs simulate --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 500, "Maximum ticks to run")
	simulateCmd.Flags().StringVar(&flagVariant, "variant", "classic", "Rule variant")
	simulateCmd.Flags().StringVar(&flagMoves, "moves", "", "Player moves, one per tick")
	simulateCmd.Flags().BoolVar(&flagNoChaser, "no-chaser", false, "Run without the chaser")
	simulateCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the final arena")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagVariant) {
		return fmt.Errorf("unknown variant %q (run 'blarbs list')", flagVariant)
	}
	moves, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagNoChaser {
		cfg.Chaser.Disabled = true
	}

	g, err := registry.Create(flagVariant, registry.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}
	seed := runSeed()
	g.Reset(core.RuntimeConfig{Seed: seed})
	logger.Info("simulating", "variant", flagVariant, "seed", seed, "ticks", flagTicks)

	res := g.Step(core.FrameFor(core.ActionStart))
	logEvents(logger, res.Tick, res.Events)

	ticks := 0
	for ticks < flagTicks && !res.State.GameOver {
		in := core.NewInputFrame()
		if ticks < len(moves) {
			in.Set(core.ActionForDir(moves[ticks]))
		}
		res = g.Step(in)
		logEvents(logger, res.Tick, res.Events)
		ticks++
	}

	st := g.State()
	fmt.Printf("variant %s  seed %d  ticks %d\n", flagVariant, seed, ticks)
	fmt.Printf("mode %s  score %d  lives %s\n", st.Mode, st.Score, livesLabel(st.Lives))

	if flagDump {
		screen := inspect.NewScreen()
		g.Render(screen)
		return ansi.Print(os.Stdout, screen)
	}
	return nil
}

// parseMoves reads a move string such as "DDD LLD" or "d,d,l".
func parseMoves(s string) ([]core.Dir, error) {
	var dirs []core.Dir
	for i, r := range s {
		if r == ',' || r == ' ' || r == '\t' {
			continue
		}
		d, err := core.ParseDir(string(r))
		if err != nil {
			return nil, fmt.Errorf("--moves: position %d: %w", i, err)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

func livesLabel(n int) string {
	if n == 0 {
		return "unlimited"
	}
	return strings.Repeat("♥", n)
}
