package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ryanditko/Prova-RPA/internal/collect"
	"github.com/Ryanditko/Prova-RPA/internal/config"
	"github.com/Ryanditko/Prova-RPA/internal/logger"
	"github.com/Ryanditko/Prova-RPA/internal/openweather"
	"github.com/Ryanditko/Prova-RPA/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagDB     string
	flagLimit  int
	flagCities []string
)

var rootCmd = &cobra.Command{
	Use:   "clima",
	Short: "Collect current weather readings into a local database",
	Long: `clima fetches the current weather for a configured list of cities from
OpenWeatherMap, stores each reading in a local SQLite file, prints a
formatted summary per city and lists the most recent stored rows.`,
	SilenceUsage: true,
	RunE:         runCollect,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to the readings database")
	rootCmd.PersistentFlags().IntVar(&flagLimit, "limit", 0, "number of recent readings to list")
	rootCmd.Flags().StringSliceVar(&flagCities, "city", nil, "city to collect (repeatable; overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clima %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	key, err := cfg.ResolveAPIKey()
	if err != nil {
		return err
	}

	cities := cfg.Cities
	if len(flagCities) > 0 {
		cities = flagCities
	}

	log := logger.New(cfg.LogLevel)

	st, err := store.Open(dbPath(cfg))
	if err != nil {
		return err
	}
	defer st.Close()

	client := openweather.NewClient(openweather.DefaultBaseURL, key, cfg.Units, cfg.Lang, log)

	runner := &collect.Runner{
		Fetcher: client,
		Store:   st,
		Log:     log,
		Out:     cmd.OutOrStdout(),
	}

	sum, err := runner.Run(cmd.Context(), cities, limit(cfg))
	if err != nil {
		return err
	}

	log.Infof("done: %d collected, %d skipped", sum.Collected, sum.Failed)
	return nil
}

func dbPath(cfg *config.Config) string {
	if flagDB != "" {
		return flagDB
	}
	return cfg.DatabasePath()
}

func limit(cfg *config.Config) int {
	if flagLimit > 0 {
		return flagLimit
	}
	return cfg.GetRecentLimit()
}

// exitCode maps the error taxonomy to distinct process exit codes:
// configuration failures, storage failures, everything else. Per-city fetch
// failures are handled inside the run and still exit zero.
func exitCode(err error) int {
	var cfgErr *config.Error
	var stErr *store.Error
	switch {
	case errors.As(err, &cfgErr):
		return 2
	case errors.As(err, &stErr):
		return 3
	default:
		return 1
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
