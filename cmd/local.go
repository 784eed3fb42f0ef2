package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/thoth/store"
)

// localCmd groups commands reading the local mirror
var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Browse the local database mirror",
}

func init() {
	rootCmd.AddCommand(localCmd)

	localCmd.AddCommand(
		&cobra.Command{
			Use:   "works <publisherId>",
			Short: "List the mirrored works of a publisher",
			Args:  cobra.ExactArgs(1),
			RunE:  runLocalWorks,
		},
		&cobra.Command{
			Use:   "work <workId>",
			Short: "Show a mirrored work with its contributors and subjects",
			Args:  cobra.ExactArgs(1),
			RunE:  runLocalWork,
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Count the rows of each mirrored table",
			Args:  cobra.NoArgs,
			RunE:  runLocalStats,
		},
	)
}

func instance() string {
	return strings.TrimRight(cfg.Thoth.Endpoint, "/")
}

func runLocalWorks(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	publisher, err := st.Publisher(cmd.Context(), instance(), args[0])
	if err != nil {
		return err
	}
	works, err := st.WorksByPublisher(cmd.Context(), publisher)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d works\n", publisher, len(works))
	for _, w := range works {
		fmt.Fprintf(out, "• %s [%s]\n", w, w.ThothID)
	}
	return nil
}

func runLocalWork(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	work, err := st.Work(cmd.Context(), instance(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, work)
	if work.DOI != "" {
		fmt.Fprintf(out, "  DOI: %s\n", work.DOI)
	}
	fmt.Fprintf(out, "  Export: %s\n", work.ExportURL())

	contributions := slices.Clone(work.Contributions)
	slices.SortFunc(contributions, func(a, b store.Contribution) int {
		return a.ContributionOrdinal - b.ContributionOrdinal
	})
	for _, c := range contributions {
		name := ""
		if c.Contributor != nil {
			name = c.Contributor.FullName
		}
		fmt.Fprintf(out, "  %s: %s\n", c.ContributionType, name)
	}
	for _, s := range work.Subjects {
		fmt.Fprintf(out, "  %s %s: %s\n", s.SubjectType, s.SubjectCode, s.Display())
	}
	return nil
}

func runLocalStats(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	counts, err := st.Counts(cmd.Context())
	if err != nil {
		return err
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%-14s %d\n", name, counts[name])
	}
	return nil
}
