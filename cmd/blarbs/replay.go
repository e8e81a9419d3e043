package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blarbs/internal/inspect"
	"github.com/vovakirdan/blarbs/internal/platform/ansi"
	"github.com/vovakirdan/blarbs/internal/replay"
)

var flagReplayDump bool

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run a replay script",
	Long: `Runs a YAML replay script against a fresh session and checks every
expect step. The process exits non-zero on the first failed expectation.

--seed overrides the script's seed. The chaser only runs when the
script sets "chaser: true".

Examples:
  blarbs replay ./scripts/claim.yaml
  blarbs replay ./scripts/claim.yaml --dump --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayDump, "dump", false, "Print the final arena")
}

func runReplay(cmd *cobra.Command, args []string) error {
	sc, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		sc.Seed = flagSeed
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := replay.NewSession(sc, cfg, logger)
	if err != nil {
		return err
	}
	logger.Debug("replaying", "script", args[0], "session", s.SessionID(), "steps", len(sc.Steps))

	rep, runErr := replay.Run(s, sc)
	for _, sr := range rep.Steps {
		logEvents(logger, sr.Tick, sr.Events)
		fmt.Printf("%3d  tick %-5d %-24s %d events\n", sr.Index, sr.Tick, sr.Step, len(sr.Events))
	}

	fmt.Printf("mode %s  score %d  lives %s  boxes %d  frozen %d  claimable %d\n",
		rep.State.Mode, rep.State.Score, livesLabel(rep.State.Lives),
		rep.Stats.Boxes, rep.Stats.Frozen, rep.Stats.Claimable)

	if flagReplayDump {
		screen := inspect.NewScreen()
		s.Render(screen)
		if err := ansi.Print(os.Stdout, screen); err != nil {
			return err
		}
	}
	return runErr
}
