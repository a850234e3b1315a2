package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ryanditko/Prova-RPA/internal/config"
	"github.com/Ryanditko/Prova-RPA/internal/report"
	"github.com/Ryanditko/Prova-RPA/internal/store"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the most recent stored readings without fetching",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}

		st, err := store.Open(dbPath(cfg))
		if err != nil {
			return err
		}
		defer st.Close()

		rows, err := st.Recent(limit(cfg))
		if err != nil {
			return err
		}

		report.WriteRecent(cmd.OutOrStdout(), rows)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}

		path := dbPath(cfg)
		st, err := store.Open(path)
		if err != nil {
			return err
		}
		defer st.Close()

		count, size, err := st.Stats(path)
		if err != nil {
			return err
		}

		fmt.Printf("Database: %s\n", path)
		fmt.Printf("Readings: %d\n", count)
		fmt.Printf("Size: %s\n", formatBytes(size))
		return nil
	},
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
