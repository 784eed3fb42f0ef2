package thoth

var workFields050 = with(without(workFields042, "__typename"), "updatedAtWithRelations", "__typename")

// schema050 adds the relation-aware update timestamp to works
func schema050() *schema {
	s := schema042().derive("0.5.0")
	s.workFields(workFields050)
	return s
}

// Thoth050 binds API version 0.5.0
type Thoth050 struct {
	*Thoth042
}

func newThoth050(b *base) *Thoth050 {
	return &Thoth050{Thoth042: newThoth042(b)}
}
