package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/thoth/rest"
)

// exportCmd groups the export API commands
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Read the Thoth export API",
	Long: `Read metadata formats, specifications and platforms from the Thoth export
API, and render works or whole publishers in an export specification.`,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.AddCommand(
		newExportListCmd("formats", "List export formats", (*rest.Client).Formats),
		newExportGetCmd("format <id>", "Fetch one export format", (*rest.Client).Format),
		newExportListCmd("specifications", "List export specifications", (*rest.Client).Specifications),
		newExportGetCmd("specification <id>", "Fetch one export specification", (*rest.Client).Specification),
		newExportListCmd("platforms", "List distribution platforms", (*rest.Client).Platforms),
		newExportGetCmd("platform <id>", "Fetch one distribution platform", (*rest.Client).Platform),
		&cobra.Command{
			Use:     "work <specification> <workId>",
			Short:   "Render a work in an export specification",
			Example: "  thoth export work onix_3.0::project_muse e0f748b2-984f-45cc-8b9e-13989c31dda4",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printExportText(cmd, func(ctx context.Context, c *rest.Client) (string, error) {
					return c.SpecificationWork(ctx, args[0], args[1])
				})
			},
		},
		&cobra.Command{
			Use:   "publisher <specification> <publisherId>",
			Short: "Render every work of a publisher in an export specification",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printExportText(cmd, func(ctx context.Context, c *rest.Client) (string, error) {
					return c.SpecificationPublisher(ctx, args[0], args[1])
				})
			},
		},
	)
}

func newExportListCmd(use, short string, list func(*rest.Client, context.Context) (*rest.Response, error)) *cobra.Command {
	var where string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newExportClient()
			if err != nil {
				return err
			}
			res, err := list(client, cmd.Context())
			if err != nil {
				return err
			}
			return printExport(cmd, res, where)
		},
	}
	cmd.Flags().StringVar(&where, "where", "", "client-side expr filter over the returned records")
	return cmd
}

func newExportGetCmd(use, short string, get func(*rest.Client, context.Context, string) (*rest.Response, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newExportClient()
			if err != nil {
				return err
			}
			res, err := get(client, cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printExport(cmd, res, "")
		},
	}
}

func printExport(cmd *cobra.Command, res *rest.Response, where string) error {
	p := newPrinter(cmd, where)
	if done, err := p.printRaw(res.Raw); done {
		return err
	}
	return p.print(cmd.Context(), res)
}

func printExportText(cmd *cobra.Command, render func(context.Context, *rest.Client) (string, error)) error {
	client, err := newExportClient()
	if err != nil {
		return err
	}
	text, err := render(cmd.Context(), client)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), text)
	return err
}
