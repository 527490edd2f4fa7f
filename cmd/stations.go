package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"localfm/model"
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "Manage radio stations",
}

var stationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stations",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		stations, err := a.stations.GetAll(cmd.Context())
		if err != nil {
			return err
		}
		if len(stations) == 0 {
			color.Yellow("No stations yet. Run `localfm sync` to discover some.")
			return nil
		}
		for _, st := range stations {
			marker := " "
			if st.IsFavorite {
				marker = color.YellowString("*")
			}
			kind := ""
			switch {
			case st.IsTemporary:
				kind = color.New(color.Faint).Sprint(" (temporary)")
			case st.IsAutoGenerated:
				kind = color.New(color.Faint).Sprint(" (auto)")
			}
			var parts []string
			for _, c := range st.Criteria {
				parts = append(parts, fmt.Sprintf("%s=%s:%.2f", c.Attribute, c.Value, c.Weight))
			}
			fmt.Printf("%s %s  %s%s\n", marker, st.ID, color.CyanString(st.Name), kind)
			if len(parts) > 0 {
				fmt.Printf("     %s\n", strings.Join(parts, "  "))
			}
		}
		return nil
	},
}

var stationSeedQuery string

var stationsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a station from tracks matching a seed query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if stationSeedQuery == "" {
			return fmt.Errorf("--seed is required")
		}

		groups, err := a.cache.GetArtistsByName(cmd.Context(), stationSeedQuery)
		if err != nil {
			return err
		}
		var seeds []*model.LibraryEntry
		for _, tracks := range groups {
			seeds = append(seeds, tracks...)
		}
		if len(seeds) == 0 {
			return fmt.Errorf("no tracks match seed query %q", stationSeedQuery)
		}

		// A broad artist station: albums are incidental to why these
		// seeds belong together.
		st, err := a.stations.CreateFromSeeds(cmd.Context(), args[0], seeds,
			map[model.CriterionAttribute]float64{model.AttrAlbum: 0.3})
		if err != nil {
			return err
		}
		color.Green("Created station %q from %d seed tracks", st.Name, len(seeds))
		return nil
	},
}

var stationsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a station",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.stations.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		color.Green("Station %s deleted", args[0])
		return nil
	},
}

var stationsFavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a station's favorite flag",
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
		fav := !st.IsFavorite
		if _, err := a.stations.Update(cmd.Context(), st.ID, model.StationPatch{IsFavorite: &fav}); err != nil {
			return err
		}
		if fav {
			color.Green("Station %q favorited", st.Name)
		} else {
			color.Green("Station %q unfavorited", st.Name)
		}
		return nil
	},
}

func init() {
	stationsCreateCmd.Flags().StringVar(&stationSeedQuery, "seed", "", "artist query selecting the seed tracks")
	stationsCmd.AddCommand(stationsListCmd, stationsCreateCmd, stationsDeleteCmd, stationsFavoriteCmd)
	rootCmd.AddCommand(stationsCmd)
}
