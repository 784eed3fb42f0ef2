package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/thoth/thoth"
)

const (
	groupQuery = "query"
	groupCount = "count"
)

// paramFlags binds thoth.Params to command flags
type paramFlags struct {
	limit            int
	offset           int
	filter           string
	order            string
	publishers       []string
	workType         string
	workStatus       string
	workTypes        []string
	workStatuses     []string
	publicationType  string
	contributionType string
	seriesType       string
	languageCode     string
	languageRelation string
	currencyCode     string
	subjectType      string
	locationPlatform string
}

func (f *paramFlags) register(cmd *cobra.Command, paging bool) {
	flags := cmd.Flags()
	if paging {
		flags.IntVar(&f.limit, "limit", thoth.DefaultLimit, "maximum number of records")
		flags.IntVar(&f.offset, "offset", thoth.DefaultOffset, "number of records to skip")
		flags.StringVar(&f.order, "order", "", "sort field with optional direction, e.g. PUBLICATION_DATE:DESC")
	}
	flags.StringVar(&f.filter, "filter", "", "server-side text filter")
	flags.StringSliceVar(&f.publishers, "publishers", nil, "restrict to publisher IDs")
	flags.StringVar(&f.workType, "work-type", "", "work type, e.g. MONOGRAPH")
	flags.StringVar(&f.workStatus, "work-status", "", "work status, e.g. ACTIVE")
	flags.StringSliceVar(&f.workTypes, "work-types", nil, "work types (0.8.0 and later)")
	flags.StringSliceVar(&f.workStatuses, "work-statuses", nil, "work statuses (0.8.0 and later)")
	flags.StringVar(&f.publicationType, "publication-type", "", "publication type, e.g. PAPERBACK")
	flags.StringVar(&f.contributionType, "contribution-type", "", "contribution type, e.g. AUTHOR")
	flags.StringVar(&f.seriesType, "series-type", "", "series type, e.g. JOURNAL")
	flags.StringVar(&f.languageCode, "language-code", "", "language code, e.g. ENG")
	flags.StringVar(&f.languageRelation, "language-relation", "", "language relation, e.g. ORIGINAL")
	flags.StringVar(&f.currencyCode, "currency-code", "", "currency code, e.g. GBP")
	flags.StringVar(&f.subjectType, "subject-type", "", "subject type, e.g. BIC")
	flags.StringVar(&f.locationPlatform, "location-platform", "", "location platform (0.8.0 and later)")
}

func (f *paramFlags) params() thoth.Params {
	p := thoth.Params{
		Limit:            f.limit,
		Offset:           f.offset,
		Filter:           f.filter,
		Publishers:       f.publishers,
		WorkType:         upper(f.workType),
		WorkStatus:       upper(f.workStatus),
		WorkTypes:        upperAll(f.workTypes),
		WorkStatuses:     upperAll(f.workStatuses),
		PublicationType:  upper(f.publicationType),
		ContributionType: upper(f.contributionType),
		SeriesType:       upper(f.seriesType),
		LanguageCode:     upper(f.languageCode),
		LanguageRelation: upper(f.languageRelation),
		CurrencyCode:     upper(f.currencyCode),
		SubjectType:      upper(f.subjectType),
		LocationPlatform: upper(f.locationPlatform),
	}
	if f.order != "" {
		field, direction, _ := strings.Cut(f.order, ":")
		p.Order = &thoth.Order{Field: upper(field), Direction: direction}
	}
	return p
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func upperAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = upper(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: groupQuery, Title: "Queries:"},
		&cobra.Group{ID: groupCount, Title: "Counts:"},
	)

	for _, e := range thoth.Entities {
		rootCmd.AddCommand(newListCmd(e), newGetCmd(e), newCountCmd(e))
	}
	rootCmd.AddCommand(newWorkByDOICmd())
}

func newListCmd(e thoth.Entity) *cobra.Command {
	var (
		flags paramFlags
		where string
	)

	cmd := &cobra.Command{
		Use:     e.Plural,
		Short:   fmt.Sprintf("List %s", e.Plural),
		GroupID: groupQuery,
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf("  thoth %s --limit 10 --filter open\n  thoth %s --where 'count(\"contributions\") > 1' -o json", e.Plural, e.Plural),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.List(cmd.Context(), e.Plural, flags.params())
			if err != nil {
				return err
			}

			p := newPrinter(cmd, where)
			if done, err := p.printRaw(res.Raw); done {
				return err
			}
			return p.print(cmd.Context(), res)
		},
	}
	flags.register(cmd, true)
	cmd.Flags().StringVar(&where, "where", "", "client-side expr filter over the returned records")
	return cmd
}

func newGetCmd(e thoth.Entity) *cobra.Command {
	return &cobra.Command{
		Use:     e.Name + " <" + e.IDArg + ">",
		Short:   fmt.Sprintf("Fetch a single %s by %s", e.Name, e.IDArg),
		GroupID: groupQuery,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.Get(cmd.Context(), e.Name, args[0])
			if err != nil {
				return err
			}

			p := newPrinter(cmd, "")
			if done, err := p.printRaw(res.Raw); done {
				return err
			}
			return p.print(cmd.Context(), res)
		},
	}
}

func newWorkByDOICmd() *cobra.Command {
	return &cobra.Command{
		Use:     "workByDoi <doi>",
		Aliases: []string{"work-by-doi"},
		Short:   "Fetch a work by its DOI URL",
		GroupID: groupQuery,
		Args:    cobra.ExactArgs(1),
		Example: "  thoth workByDoi https://doi.org/10.11647/OBP.0001",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.WorkByDOI(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := newPrinter(cmd, "")
			if done, err := p.printRaw(res.Raw); done {
				return err
			}
			return p.print(cmd.Context(), res)
		},
	}
}

func newCountCmd(e thoth.Entity) *cobra.Command {
	var flags paramFlags

	cmd := &cobra.Command{
		Use:     e.Count,
		Short:   fmt.Sprintf("Count %s", e.Plural),
		GroupID: groupCount,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.CountResponse(cmd.Context(), e.Count, flags.params())
			if err != nil {
				return err
			}

			p := newPrinter(cmd, "")
			if done, err := p.printRaw(res.Raw); done {
				return err
			}
			n, err := res.Int()
			if err != nil {
				return err
			}
			return p.value(n)
		},
	}
	flags.register(cmd, false)
	return cmd
}
