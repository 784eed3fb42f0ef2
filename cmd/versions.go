package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/thoth/thoth"
)

var showQueries bool

// versionsCmd lists the API versions this client speaks
var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List the supported Thoth API versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, v := range thoth.SupportedVersions() {
			marker := " "
			if v == cfg.Thoth.Version {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, v)

			if !showQueries {
				continue
			}
			api, err := thoth.NewAPI(v, nil, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "    queries:   %s\n", strings.Join(api.Queries(), ", "))
			fmt.Fprintf(out, "    mutations: %s\n", strings.Join(api.Mutations(), ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionsCmd)

	versionsCmd.Flags().BoolVar(&showQueries, "operations", false, "also list each version's queries and mutations")
}
