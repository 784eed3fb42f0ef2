package store

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"
)

// Scheme is a subject classification scheme with installable headings
type Scheme string

const (
	SchemeBIC   Scheme = "bic"
	SchemeBISAC Scheme = "bisac"
	SchemeThema Scheme = "thema"
)

// ErrMissingColumn indicates a classification file without a required column
var ErrMissingColumn = errors.New("csv missing column")

// columns names the code and heading columns of each scheme's source file
var columns = map[Scheme][2]string{
	SchemeBIC:   {"Code", "Heading"},
	SchemeBISAC: {"BISAC Code", "Thema Literal 1"},
	SchemeThema: {"Code", "English Heading"},
}

// Schemes lists the installable schemes
func Schemes() []Scheme {
	return []Scheme{SchemeBIC, SchemeBISAC, SchemeThema}
}

// ParseScheme validates a scheme name
func ParseScheme(name string) (Scheme, error) {
	s := Scheme(strings.ToLower(name))
	if _, ok := columns[s]; !ok {
		return "", fmt.Errorf("unknown classification scheme %q", name)
	}
	return s, nil
}

// Heading is one code and its heading
type Heading struct {
	Code    string
	Heading string
}

// ParseHeadings reads a classification CSV with a header row
func ParseHeadings(scheme Scheme, r io.Reader) ([]Heading, error) {
	cols, ok := columns[scheme]
	if !ok {
		return nil, fmt.Errorf("unknown classification scheme %q", scheme)
	}

	reader := csv.NewReader(stripBOM(bufio.NewReader(r)))
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s header: %w", scheme, err)
	}

	idx := map[string]int{}
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	codeIdx, ok := idx[cols[0]]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, cols[0])
	}
	headingIdx, ok := idx[cols[1]]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, cols[1])
	}

	var headings []Heading
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", scheme, err)
		}
		if codeIdx >= len(rec) || strings.TrimSpace(rec[codeIdx]) == "" {
			continue
		}
		h := Heading{Code: strings.TrimSpace(rec[codeIdx])}
		if headingIdx < len(rec) {
			h.Heading = strings.TrimSpace(rec[headingIdx])
		}
		headings = append(headings, h)
	}
	return headings, nil
}

// ImportHeadings reads a classification CSV and stores its headings,
// updating those already present. It returns the number of rows read.
func (s *Store) ImportHeadings(ctx context.Context, scheme Scheme, r io.Reader) (int, error) {
	headings, err := ParseHeadings(scheme, r)
	if err != nil {
		return 0, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, h := range headings {
			if err := upsertHeading(tx, scheme, h); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to import %s: %w", scheme, err)
	}

	s.logger.Info().Str("scheme", string(scheme)).Int("headings", len(headings)).Msg("Classification installed")
	return len(headings), nil
}

func upsertHeading(tx *gorm.DB, scheme Scheme, h Heading) error {
	assign := map[string]any{"heading": h.Heading}
	switch scheme {
	case SchemeBIC:
		return tx.Where(BIC{Code: h.Code}).Assign(assign).FirstOrCreate(&BIC{}).Error
	case SchemeBISAC:
		return tx.Where(BISAC{Code: h.Code}).Assign(assign).FirstOrCreate(&BISAC{}).Error
	default:
		return tx.Where(Thema{Code: h.Code}).Assign(assign).FirstOrCreate(&Thema{}).Error
	}
}

func stripBOM(r *bufio.Reader) io.Reader {
	if b, err := r.Peek(3); err == nil && string(b) == "\xef\xbb\xbf" {
		r.Discard(3)
	}
	return r
}
