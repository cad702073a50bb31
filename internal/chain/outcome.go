package chain

import (
	"remapper/internal/diagnostic"
	"remapper/internal/symbol"
)

// Outcome is the result of one reconstruction run.
type Outcome struct {
	// Generations is the chain, oldest first.
	Generations []*symbol.Generation
	// Hops are ordered newest first: Hops[0] maps the newest generation.
	Hops []*Hop

	Classes    Lineage[*symbol.Class]
	Methods    Lineage[*symbol.Method]
	Fields     Lineage[*symbol.Field]
	Parameters Lineage[*symbol.Parameter]

	// Histories are ordered like the newest generation's classes.
	Histories []*History

	Diagnostics diagnostic.Diagnostics
	Stats       Stats

	histories map[symbol.Handle]*History
}

// Newest returns the generation whose symbols the lineages describe.
func (o *Outcome) Newest() *symbol.Generation {
	return o.Generations[len(o.Generations)-1]
}

// History returns the history of a newest-generation class.
func (o *Outcome) History(c *symbol.Class) (*History, bool) {
	h, ok := o.histories[c.Handle()]
	return h, ok
}

// Stats summarises a run.
type Stats struct {
	Hops []HopStats `yaml:"hops"`

	Classes    KindStats `yaml:"classes"`
	Methods    KindStats `yaml:"methods"`
	Fields     KindStats `yaml:"fields"`
	Parameters KindStats `yaml:"parameters"`

	// RejuvenatedClasses counts classes recovered from older hops.
	RejuvenatedClasses int `yaml:"rejuvenated_classes"`
	// RejuvenatedMembers counts methods and fields of recovered classes.
	RejuvenatedMembers int `yaml:"rejuvenated_members"`
	// ResidualMembers counts methods and fields recovered from histories.
	ResidualMembers int `yaml:"residual_members"`
}

// HopStats counts the mappings of one hop.
type HopStats struct {
	Newer   string `yaml:"newer"`
	Older   string `yaml:"older"`
	Classes int    `yaml:"classes"`
	Methods int    `yaml:"methods"`
	Fields  int    `yaml:"fields"`
}

// KindStats counts the final partition of one kind.
type KindStats struct {
	Mapped   int `yaml:"mapped"`
	Unmapped int `yaml:"unmapped"`
}
