// Package structure turns decoded Thoth responses into addressable records
// with a human-readable summary per entity type.
//
// A Builder owns its formatter table. Each Record keeps a reference to the
// formatter chosen for it when it was built, so records of different kinds
// can be rendered side by side.
//
//	b := structure.NewBuilder(structure.DefaultFormatters(), structure.DefaultEndpoints())
//	works, err := b.Records("works", data)
//	for _, w := range works {
//		fmt.Println(w) // Author, Title (Place: Publisher, 2021) [workId]
//	}
package structure
