package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var mutationFields []string

// mutateCmd represents the mutate command
var mutateCmd = &cobra.Command{
	Use:     "mutate <mutation>",
	Aliases: []string{"create"},
	Short:   "Apply a mutation such as createWork",
	Long: `Apply a write operation to Thoth and print the identifier it returns.

Field values are passed as --field name=value and must use the names the
mutation declares for the selected API version. Run "thoth mutations" to see
them.`,
	Example: `  thoth mutate createPublisher --field publisherName="Punctum Books" --field publisherUrl=https://punctumbooks.com
  thoth mutate createSubject -f workId=... -f subjectType=BIC -f subjectCode=JFD -f subjectOrdinal=1`,
	Args: cobra.ExactArgs(1),
	RunE: runMutate,
}

// mutationsCmd lists the mutations of the selected version
var mutationsCmd = &cobra.Command{
	Use:   "mutations [mutation]",
	Short: "List mutations and their fields for the selected API version",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMutations,
}

func init() {
	rootCmd.AddCommand(mutateCmd, mutationsCmd)

	mutateCmd.Flags().StringArrayVarP(&mutationFields, "field", "f", nil, "mutation field as name=value (repeatable)")
}

// parseFields splits name=value pairs; a later pair overrides an earlier one
func parseFields(pairs []string) (map[string]any, error) {
	data := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid field %q: expected name=value", pair)
		}
		data[name] = value
	}
	return data, nil
}

func runMutate(cmd *cobra.Command, args []string) error {
	name := args[0]

	data, err := parseFields(mutationFields)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	if !client.Supports(name) {
		return fmt.Errorf("mutation %s is not available in API version %s", name, client.Version())
	}
	if err := login(cmd.Context(), client, cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
		return err
	}

	id, err := client.Mutate(cmd.Context(), name, data)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

func runMutations(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	names := client.Mutations()
	if len(args) == 1 {
		if !slices.Contains(names, args[0]) {
			return fmt.Errorf("mutation %s is not available in API version %s", args[0], client.Version())
		}
		names = args
	}

	out := cmd.OutOrStdout()
	for _, name := range names {
		spec, _ := client.Mutation(name)
		fields := make([]string, 0, len(spec.Fields))
		for _, f := range spec.Fields {
			fields = append(fields, f.Name)
		}
		fmt.Fprintf(out, "%s -> %s\n  %s\n", name, spec.Returns, strings.Join(fields, ", "))
	}
	return nil
}
