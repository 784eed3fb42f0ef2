package structure

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultEndpoints maps every Thoth query operation to the type its records
// carry.
func DefaultEndpoints() map[string]string {
	return map[string]string{
		"contribution":  "Contribution",
		"contributions": "Contribution",
		"contributor":   "Contributor",
		"contributors":  "Contributor",
		"funder":        "Funder",
		"funders":       "Funder",
		"funding":       "Funding",
		"fundings":      "Funding",
		"imprint":       "Imprint",
		"imprints":      "Imprint",
		"institution":   "Institution",
		"institutions":  "Institution",
		"issue":         "Issue",
		"issues":        "Issue",
		"language":      "Language",
		"languages":     "Language",
		"location":      "Location",
		"locations":     "Location",
		"price":         "Price",
		"prices":        "Price",
		"publication":   "Publication",
		"publications":  "Publication",
		"publisher":     "Publisher",
		"publishers":    "Publisher",
		"reference":     "Reference",
		"references":    "Reference",
		"series":        "Series",
		"serieses":      "Series",
		"subject":       "Subject",
		"subjects":      "Subject",
		"work":          "Work",
		"workByDoi":     "Work",
		"works":         "Work",
	}
}

// DefaultFormatters returns a fresh formatter table for every entity type
func DefaultFormatters() Formatters {
	return Formatters{
		"Contribution": formatContribution,
		"Contributor":  formatContributor,
		"Funder":       formatFunder,
		"Funding":      formatFunding,
		"Imprint":      formatImprint,
		"Institution":  formatInstitution,
		"Issue":        formatIssue,
		"Language":     formatLanguage,
		"Location":     formatLocation,
		"Price":        formatPrice,
		"Publication":  formatPublication,
		"Publisher":    formatPublisher,
		"Reference":    formatReference,
		"Series":       formatSeries,
		"Subject":      formatSubject,
		"Work":         formatWork,
	}
}

// Authors lists the authors and editors of a work in contribution order,
// each followed by ", ". Editors are suffixed with " (ed.)".
func Authors(work *Record) string {
	if work == nil {
		return ""
	}

	type entry struct {
		ordinal int
		name    string
	}
	byOrdinal := map[int]string{}
	for _, c := range work.List("contributions") {
		switch c.Str("contributionType") {
		case "AUTHOR":
			byOrdinal[c.Int("contributionOrdinal")] = c.Str("fullName")
		case "EDITOR":
			byOrdinal[c.Int("contributionOrdinal")] = c.Str("fullName") + " (ed.)"
		}
	}

	entries := make([]entry, 0, len(byOrdinal))
	for ordinal, name := range byOrdinal {
		entries = append(entries, entry{ordinal: ordinal, name: name})
	}
	slices.SortFunc(entries, func(a, b entry) int { return a.ordinal - b.ordinal })

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.name)
		b.WriteString(", ")
	}
	return b.String()
}

// Year returns the first four characters of a date, or "n.d." when empty
func Year(date string) string {
	if date == "" {
		return "n.d."
	}
	if len(date) < 4 {
		return date
	}
	return date[:4]
}

// citation renders "fullTitle (place: publisher, year)" for a work
func citation(work *Record) string {
	if work == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s: %s, %s)",
		work.Str("fullTitle"),
		work.Str("place"),
		work.Str("imprint.publisher.publisherName"),
		Year(work.Str("publicationDate")))
}

func formatWork(r *Record) string {
	return fmt.Sprintf("%s%s [%s]", Authors(r), citation(r), r.Str("workId"))
}

func formatPublisher(r *Record) string {
	return fmt.Sprintf("%s (%s)", r.Str("publisherName"), r.Str("publisherId"))
}

func formatImprint(r *Record) string {
	return fmt.Sprintf("%s (%s/%s) [%s]",
		r.Str("imprintName"), r.Str("publisher.publisherName"), r.Str("publisherId"), r.Str("imprintId"))
}

func formatContribution(r *Record) string {
	return fmt.Sprintf("%s (%s of %s) [%s]",
		r.Str("fullName"), r.Str("contributionType"), r.Str("work.fullTitle"), r.Str("contributionId"))
}

func formatContributor(r *Record) string {
	return fmt.Sprintf("%s (%s of %s) [%s]",
		r.Str("fullName"),
		r.Str("contributions.0.contributionType"),
		r.Str("contributions.0.work.fullTitle"),
		r.Str("contributorId"))
}

func formatFunder(r *Record) string {
	return fmt.Sprintf("%s funded %d books [%s]", r.Str("funderName"), r.Len("fundings"), r.Str("funderId"))
}

func formatInstitution(r *Record) string {
	return fmt.Sprintf("%s funded %d books [%s]", r.Str("institutionName"), r.Len("fundings"), r.Str("institutionId"))
}

func formatFunding(r *Record) string {
	funder := r.Str("funder.funderName")
	if funder == "" {
		funder = r.Str("institution.institutionName")
	}
	return fmt.Sprintf("%s funded %s [%s]", funder, r.Str("work.fullTitle"), r.Str("fundingId"))
}

func formatIssue(r *Record) string {
	return fmt.Sprintf("%s in %s (%s) [%s]",
		r.Str("work.fullTitle"),
		r.Str("series.seriesName"),
		r.Str("series.imprint.publisher.publisherName"),
		r.Str("issueId"))
}

func formatLanguage(r *Record) string {
	return fmt.Sprintf("%s is in %s (%s) [%s]",
		r.Str("work.fullTitle"), r.Str("languageCode"), r.Str("languageRelation"), r.Str("languageId"))
}

func formatPrice(r *Record) string {
	return fmt.Sprintf("%s costs %s%s [%s]",
		citation(r.Child("publication.work")), r.Str("unitPrice"), r.Str("currencyCode"), r.Str("priceId"))
}

func formatPublication(r *Record) string {
	work := r.Child("work")
	prices := ""
	if list := r.List("prices"); len(list) > 0 {
		prices = fmt.Sprintf("(%s%s)", list[0].Str("unitPrice"), list[0].Str("currencyCode"))
	}
	return fmt.Sprintf("%s%s [%s] %s [%s]",
		Authors(work), citation(work), r.Str("publicationType"), prices, r.Str("publicationId"))
}

func formatSeries(r *Record) string {
	return fmt.Sprintf("%s (%s) [%s]",
		r.Str("seriesName"), r.Str("imprint.publisher.publisherName"), r.Str("seriesId"))
}

func formatSubject(r *Record) string {
	return fmt.Sprintf("%s is in the %s subject area (%s) [%s]",
		r.Str("work.fullTitle"), r.Str("subjectCode"), r.Str("subjectType"), r.Str("subjectId"))
}

func formatLocation(r *Record) string {
	return fmt.Sprintf("%s at %s (%s) [%s]",
		r.Str("publication.work.fullTitle"), r.Str("landingPage"), r.Str("locationPlatform"), r.Str("locationId"))
}

func formatReference(r *Record) string {
	label := r.Str("unstructuredCitation")
	if label == "" {
		label = r.Str("doi")
	}
	return fmt.Sprintf("%s [%s]", label, r.Str("referenceId"))
}

// Field returns a formatter that renders a single field; REST records use it
func Field(name string) Formatter {
	return func(r *Record) string {
		return r.Str(name)
	}
}
