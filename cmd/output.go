package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/thoth/filter"
	"github.com/s0up4200/thoth/structure"
)

// result is what every query command hands to the printer
type result interface {
	Structured() (any, error)
}

// printer renders results in the configured output format
type printer struct {
	out    io.Writer
	format string
	raw    bool
	where  string
}

func newPrinter(cmd *cobra.Command, where string) *printer {
	return &printer{
		out:    cmd.OutOrStdout(),
		format: cfg.Output.Format,
		raw:    rawOutput,
		where:  where,
	}
}

// printRaw writes the server body when --raw is set and reports whether it did
func (p *printer) printRaw(body string) (bool, error) {
	if !p.raw {
		return false, nil
	}
	if p.where != "" {
		return true, errors.New("--where cannot be combined with --raw")
	}
	_, err := fmt.Fprintln(p.out, body)
	return true, err
}

// print renders a structured result, filtering lists by --where
func (p *printer) print(ctx context.Context, res result) error {
	value, err := res.Structured()
	if err != nil {
		return err
	}

	switch v := value.(type) {
	case []*structure.Record:
		records, err := filter.Apply(ctx, p.where, v)
		if err != nil {
			return err
		}
		return p.records(records)
	case *structure.Record:
		if p.where != "" {
			records, err := filter.Apply(ctx, p.where, []*structure.Record{v})
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return nil
			}
		}
		return p.record(v)
	case nil:
		_, err := fmt.Fprintln(p.out, "null")
		return err
	default:
		return p.value(v)
	}
}

func (p *printer) records(records []*structure.Record) error {
	if p.format != "object" {
		return p.value(records)
	}
	for _, r := range records {
		if _, err := fmt.Fprintln(p.out, r.String()); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) record(r *structure.Record) error {
	if p.format != "object" {
		return p.value(r)
	}
	_, err := fmt.Fprintln(p.out, r.String())
	return err
}

// value encodes v as JSON or YAML; the object format falls back to %v
func (p *printer) value(v any) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(p.out, v)
		return err
	}
}
