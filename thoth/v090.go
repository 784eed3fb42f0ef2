package thoth

var referenceFields = []string{
	"referenceId", "workId", "referenceOrdinal", "doi", "unstructuredCitation", "issn", "isbn",
	"journalTitle", "articleTitle", "seriesTitle", "volumeTitle", "edition", "author", "volume",
	"issue", "firstPage", "componentNumber", "standardDesignator", "standardsBodyName",
	"standardsBodyAcronym", "url", "publicationDate", "retrievalDate", "createdAt", "updatedAt",
	"work { workId fullTitle }",
	"__typename",
}

var workFields090 = with(without(workFields080, "__typename"),
	"references { referenceId referenceOrdinal doi unstructuredCitation }", "__typename")

// schema090 adds citation references
func schema090() *schema {
	s := schema084().derive("0.9.0")
	s.workFields(workFields090)
	s.entity("reference", referenceFields, listParams, nil)
	s.mutation("createReference", "referenceId",
		q("workId"), u("referenceOrdinal"), q("doi"), q("unstructuredCitation"), q("issn"),
		q("isbn"), q("journalTitle"), q("articleTitle"), q("seriesTitle"), q("volumeTitle"),
		u("edition"), q("author"), q("volume"), q("issue"), q("firstPage"), q("componentNumber"),
		q("standardDesignator"), q("standardsBodyName"), q("standardsBodyAcronym"), q("url"),
		q("publicationDate"), q("retrievalDate"))
	return s
}

// Thoth090 binds API version 0.9.0
type Thoth090 struct {
	*Thoth084
}

func newThoth090(b *base) *Thoth090 {
	return &Thoth090{Thoth084: newThoth084(b)}
}
