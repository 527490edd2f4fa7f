package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"localfm/config"
	"localfm/core/library"
	"localfm/core/metadata"
	"localfm/core/scanner"
	"localfm/core/search"
	"localfm/core/station"
	"localfm/db"
	"localfm/logger"
	"localfm/repository"
)

var rootCmd = &cobra.Command{
	Use:   "localfm",
	Short: "localfm builds personal radio stations from your local music library",
	Long: `localfm scans a local music directory into a durable library cache,
discovers radio stations from what you actually own, and scores tracks
against weighted station criteria for continuous playback.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles the wired services a subcommand needs. Everything is
// constructed here and injected; no package keeps singleton state.
type app struct {
	cfg      *config.Config
	store    *gorm.DB
	cache    *library.Cache
	stations *station.Service
	searcher *search.Searcher
}

// newApp loads config, opens the store and wires the service graph.
func newApp() (*app, error) {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})

	store, err := db.Connect(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(store); err != nil {
		db.Close(store)
		return nil, err
	}

	entryRepo := repository.NewLibraryRepository(store)
	artRepo := repository.NewAlbumArtRepository(store)
	stationRepo := repository.NewStationRepository(store)

	discovery := station.NewDiscovery(entryRepo, stationRepo)
	discovery.MinLibrarySize = cfg.MinLibrarySize
	discovery.MinGroupSize = cfg.MinGroupSize

	cache := library.NewCache(entryRepo, artRepo, scanner.New(), metadata.NewExtractor(), discovery)
	stations := station.NewService(stationRepo)

	return &app{
		cfg:      cfg,
		store:    store,
		cache:    cache,
		stations: stations,
		searcher: search.NewSearcher(cache, stations),
	}, nil
}

func (a *app) close() {
	if err := db.Close(a.store); err != nil {
		logger.Warn("failed to close store", logger.ErrorField(err))
	}
}
