package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blarbs/internal/arena"
	"github.com/vovakirdan/blarbs/internal/inspect"
	"github.com/vovakirdan/blarbs/internal/platform/ansi"
)

var flagRaw bool

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the arena layout",
	Long: `Draws the arena built from the configured stick layout.

With --raw the layout rows are printed in the config file format
(H = horizontal, V = vertical, . = hole), ready to paste into blarbs.yaml.`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print layout rows instead of the drawing")
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	l, err := cfg.ArenaLayout()
	if err != nil {
		return err
	}

	if flagRaw {
		for _, row := range l.Rows() {
			fmt.Println(row)
		}
		return nil
	}

	ar := arena.NewWithLayout(l)
	screen := inspect.NewScreen()
	inspect.Draw(screen, ar)
	if err := ansi.Print(os.Stdout, screen); err != nil {
		return err
	}

	st := inspect.Summarize(ar)
	fmt.Printf("sticks %d  frozen %d  boxes %d  claimable %d\n",
		st.Sticks, st.Frozen, st.Boxes, st.Claimable)
	return nil
}
