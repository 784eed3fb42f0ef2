package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/thoth/mirror"
)

var (
	syncPublishers  []string
	syncConcurrency int
	syncLimit       int
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror publishers and their works into the local database",
	Long: `Copy each configured publisher, its works, their contributors and subjects
into the local database. Works that the remote no longer lists are deleted
after every remote work has been stored.

Targets come from sync.targets in the config, or from --publisher.`,
	Example: `  thoth sync
  thoth sync --publisher 85fd969a-a16c-480b-b641-cb9adf979c3b --limit 500`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringSliceVar(&syncPublishers, "publisher", nil, "publisher IDs to sync instead of sync.targets")
	syncCmd.Flags().IntVar(&syncConcurrency, "concurrency", 0, "targets synced at once (overrides sync.concurrency)")
	syncCmd.Flags().IntVar(&syncLimit, "limit", 0, "works fetched per publisher (overrides sync.limit)")
}

// syncTargets resolves the targets, filling endpoint and version from the
// thoth section
func syncTargets() []mirror.Target {
	var targets []mirror.Target
	if len(syncPublishers) > 0 {
		for _, id := range syncPublishers {
			targets = append(targets, mirror.Target{Publisher: strings.TrimSpace(id)})
		}
	} else {
		for _, t := range cfg.Sync.Targets {
			targets = append(targets, mirror.Target{Publisher: t.Publisher, Endpoint: t.Endpoint, Version: t.Version})
		}
	}

	for i := range targets {
		if targets[i].Endpoint == "" {
			targets[i].Endpoint = cfg.Thoth.Endpoint
		}
		if targets[i].Version == "" {
			targets[i].Version = cfg.Thoth.Version
		}
	}
	return targets
}

func runSync(cmd *cobra.Command, args []string) error {
	targets := syncTargets()
	if len(targets) == 0 {
		return fmt.Errorf("no sync targets: set sync.targets in config or pass --publisher")
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	concurrency, limit := cfg.Sync.Concurrency, cfg.Sync.Limit
	if syncConcurrency > 0 {
		concurrency = syncConcurrency
	}
	if syncLimit > 0 {
		limit = syncLimit
	}

	syncer := mirror.NewSyncer(st, mirror.ClientFactory(logger, clientOptions()...), logger,
		mirror.WithConcurrency(concurrency),
		mirror.WithLimit(limit),
	)

	logger.Info().Int("targets", len(targets)).Msg("Starting sync")
	results, err := syncer.Run(cmd.Context(), targets)

	out := cmd.OutOrStdout()
	for _, r := range results {
		if r.Publisher == "" {
			continue
		}
		fmt.Fprintf(out, "✓ %s [%s]: %d works synced, %d verified, %d deleted\n",
			r.Publisher, r.Target.Publisher, r.Synced, r.Verified, r.Deleted)
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	return nil
}
