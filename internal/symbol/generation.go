package symbol

import "fmt"

// Generation is one immutable bytecode snapshot.
type Generation struct {
	Name  string
	Index int

	Classes []*Class

	methods []*Method
	fields  []*Field
	params  []*Parameter
	byName  map[string]*Class
}

// Methods returns every method of the generation in insertion order.
func (g *Generation) Methods() []*Method { return g.methods }

// Fields returns every field of the generation in insertion order.
func (g *Generation) Fields() []*Field { return g.fields }

// Parameters returns every parameter of the generation in insertion order.
func (g *Generation) Parameters() []*Parameter { return g.params }

// Class looks a class up by internal name.
func (g *Generation) Class(name string) (*Class, bool) {
	c, ok := g.byName[name]
	return c, ok
}

func (g *Generation) String() string {
	return fmt.Sprintf("%s(#%d)", g.Name, g.Index)
}

// Builder assembles a Generation and assigns handles. A Builder must not be
// used after Build.
type Builder struct {
	gen   *Generation
	built bool
}

// NewBuilder starts a generation at the given chain position (0 = oldest).
func NewBuilder(name string, index int) *Builder {
	return &Builder{
		gen: &Generation{
			Name:   name,
			Index:  index,
			byName: make(map[string]*Class),
		},
	}
}

// Class adds a class. Adding the same name twice returns an error.
func (b *Builder) Class(name, super string, interfaces ...string) (*Class, error) {
	if b.built {
		return nil, fmt.Errorf("generation %s already built", b.gen.Name)
	}

	if _, dup := b.gen.byName[name]; dup {
		return nil, fmt.Errorf("duplicate class %q in generation %s", name, b.gen.Name)
	}

	c := &Class{
		ref:        Handle{Gen: b.gen.Index, Kind: KindClass, Index: len(b.gen.Classes)},
		Name:       name,
		Super:      super,
		Interfaces: interfaces,
	}
	b.gen.Classes = append(b.gen.Classes, c)
	b.gen.byName[name] = c

	return c, nil
}

// Method adds a method to c; its parameters are derived from desc.
func (b *Builder) Method(c *Class, name, desc string, code ...Instruction) (*Method, error) {
	if b.built {
		return nil, fmt.Errorf("generation %s already built", b.gen.Name)
	}

	paramDescs, err := ParamDescs(desc)
	if err != nil {
		return nil, fmt.Errorf("method %s.%s: %w", c.Name, name, err)
	}

	for _, existing := range c.Methods {
		if existing.Name == name && existing.Desc == desc {
			return nil, fmt.Errorf("duplicate method %s.%s%s", c.Name, name, desc)
		}
	}

	m := &Method{
		ref:   Handle{Gen: b.gen.Index, Kind: KindMethod, Index: len(b.gen.methods)},
		Owner: c,
		Name:  name,
		Desc:  desc,
		Code:  code,
	}

	for i, pd := range paramDescs {
		p := &Parameter{
			ref:    Handle{Gen: b.gen.Index, Kind: KindParameter, Index: len(b.gen.params)},
			Method: m,
			Index:  i,
			Desc:   pd,
		}
		m.Params = append(m.Params, p)
		b.gen.params = append(b.gen.params, p)
	}

	c.Methods = append(c.Methods, m)
	b.gen.methods = append(b.gen.methods, m)

	return m, nil
}

// Field adds a field to c.
func (b *Builder) Field(c *Class, name, desc string) (*Field, error) {
	if b.built {
		return nil, fmt.Errorf("generation %s already built", b.gen.Name)
	}

	for _, existing := range c.Fields {
		if existing.Name == name && existing.Desc == desc {
			return nil, fmt.Errorf("duplicate field %s.%s:%s", c.Name, name, desc)
		}
	}

	f := &Field{
		ref:   Handle{Gen: b.gen.Index, Kind: KindField, Index: len(b.gen.fields)},
		Owner: c,
		Name:  name,
		Desc:  desc,
	}
	c.Fields = append(c.Fields, f)
	b.gen.fields = append(b.gen.fields, f)

	return f, nil
}

// Build freezes and returns the generation.
func (b *Builder) Build() *Generation {
	b.built = true
	return b.gen
}
