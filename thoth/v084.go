package thoth

var seriesFields084 = with(without(seriesFields042, "__typename"), "seriesDescription", "seriesCfpUrl", "__typename")

// schema084 adds series descriptions and calls for papers
func schema084() *schema {
	s := schema080().derive("0.8.4")
	s.entity("series", seriesFields084,
		with(listParams, "seriesType"),
		with(countedFilter, "seriesType"))
	s.mutation("createSeries", "seriesId",
		q("imprintId"), u("seriesType"), q("seriesName"), q("issnPrint"), q("issnDigital"),
		q("seriesUrl"), q("seriesDescription"), q("seriesCfpUrl"))
	return s
}

// Thoth084 binds API version 0.8.4
type Thoth084 struct {
	*Thoth080
}

func newThoth084(b *base) *Thoth084 {
	return &Thoth084{Thoth080: newThoth080(b)}
}
