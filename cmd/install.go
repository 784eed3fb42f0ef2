package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/thoth/store"
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install <bic|bisac|thema> <file.csv>...",
	Short: "Load subject classification headings into the local database",
	Long: `Load classification headings from CSV files so mirrored subjects display
their heading instead of the bare code.

  bic    BIC.csv and BICQuals.csv   (Code, Heading)
  bisac  bisac.csv                  (BISAC Code, Thema Literal 1)
  thema  thema.csv                  (Code, English Heading)

Installing the same file twice updates the headings in place.`,
	Example:   "  thoth install bic BIC.csv BICQuals.csv",
	Args:      cobra.MinimumNArgs(2),
	ValidArgs: schemeNames(),
	RunE:      runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func schemeNames() []string {
	names := make([]string, 0, len(store.Schemes()))
	for _, s := range store.Schemes() {
		names = append(names, string(s))
	}
	return names
}

func runInstall(cmd *cobra.Command, args []string) error {
	scheme, err := store.ParseScheme(args[0])
	if err != nil {
		return fmt.Errorf("%w (expected one of %s)", err, strings.Join(schemeNames(), ", "))
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	total := 0
	for _, path := range args[1:] {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		n, err := st.ImportHeadings(cmd.Context(), scheme, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d headings\n", path, n)
		total += n
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed %d %s headings\n", total, scheme)
	return nil
}
