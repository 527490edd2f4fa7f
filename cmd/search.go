package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"localfm/core/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tracks, artists, albums and stations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		return a.searcher.Search(cmd.Context(), args[0], func(results []search.Result) {
			if len(results) == 0 {
				color.Yellow("No matches for %q", args[0])
				return
			}
			for _, r := range results {
				switch v := r.(type) {
				case search.TrackResult:
					fmt.Printf("%s  %s — %s\n",
						color.New(color.Faint).Sprint("track  "),
						color.CyanString(v.Track.Title), v.Track.Artist)
				case search.ArtistResult:
					fmt.Printf("%s  %s (%d tracks)\n",
						color.New(color.Faint).Sprint("artist "),
						color.CyanString(v.Artist), len(v.Tracks))
				case search.AlbumResult:
					fmt.Printf("%s  %s — %s (%d tracks)\n",
						color.New(color.Faint).Sprint("album  "),
						color.CyanString(v.Album), v.Artist, len(v.Tracks))
				case search.StationResult:
					fmt.Printf("%s  %s\n",
						color.New(color.Faint).Sprint("station"),
						color.CyanString(v.Station.Name))
				}
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
