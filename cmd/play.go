package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"localfm/core/player"
	"localfm/model"
)

var playCount int

// consoleSink prints what would be handed to the platform media
// element. Playback itself is the host's job.
type consoleSink struct{}

func (consoleSink) Play(track *model.LibraryEntry, path string) error {
	fmt.Printf("%s %s — %s  %s\n",
		color.GreenString("▶"), color.CyanString(track.Title), track.Artist,
		color.New(color.Faint).Sprint(path))
	return nil
}

var playCmd = &cobra.Command{
	Use:   "play <station-id>",
	Short: "Run a station: rank the library and emit the next tracks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		st, err := a.stations.GetByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		p := player.New(a.cache, a.stations, consoleSink{}, a.cfg.MusicDir, a.cfg.HistorySize)

		pick, err := p.PlayStation(cmd.Context(), st)
		if err != nil {
			return err
		}
		if pick == nil {
			color.Yellow("Library is empty; nothing to play.")
			return nil
		}

		for i := 1; i < playCount; i++ {
			next, err := p.Next(cmd.Context())
			if err != nil {
				return err
			}
			if next == nil {
				break
			}
		}
		return nil
	},
}

func init() {
	playCmd.Flags().IntVarP(&playCount, "count", "n", 5, "how many tracks to emit")
	rootCmd.AddCommand(playCmd)
}
