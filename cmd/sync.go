package cmd

import (
	"fmt"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"localfm/core/library"
)

var syncDir string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the library cache against the music directory",
	Long: `Scans the music directory, removes cache entries whose files are
gone and ingests files the cache has never seen. When anything
changed, station auto-discovery runs afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		root := syncDir
		if root == "" {
			root = a.cfg.MusicDir
		}
		color.Cyan("Syncing library from %s", root)

		var bar *pb.ProgressBar
		onProgress := func(p library.Progress) {
			if p.Total == 0 {
				if bar != nil {
					bar.Finish()
				}
				return
			}
			if bar == nil {
				bar = pb.StartNew(p.Total)
			}
			bar.SetCurrent(int64(p.Current))
		}

		if err := a.cache.Sync(cmd.Context(), root, onProgress); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		entries, err := a.cache.GetAllEntries(cmd.Context())
		if err != nil {
			return err
		}
		color.Green("Library synced: %d tracks cached", len(entries))
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVarP(&syncDir, "dir", "d", "", "music directory to sync (defaults to LOCALFM_MUSIC_DIR)")
	rootCmd.AddCommand(syncCmd)
}
