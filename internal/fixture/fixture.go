// Package fixture reads chains of generations from YAML.
//
// A fixture lists generations oldest first. Symbols of older generations
// may carry identities; instructions use the textual form accepted by
// symbol.ParseInstruction:
//
//	generations:
//	  - name: v1
//	    classes:
//	      - name: com/acme/Foo
//	        id: C1
//	        fields:
//	          - {name: count, desc: I, id: F1}
//	        methods:
//	          - name: run
//	            desc: (I)V
//	            id: M1
//	            params: [P1]
//	            code:
//	              - ILOAD 1
//	              - INVOKESTATIC com/acme/Bar log (I)V
//	              - RETURN
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"remapper/internal/symbol"
)

// File is the YAML document.
type File struct {
	Generations []Generation `yaml:"generations"`
}

// Generation is one snapshot.
type Generation struct {
	Name    string  `yaml:"name"`
	Classes []Class `yaml:"classes"`
}

// Class is one class of a snapshot.
type Class struct {
	Name       string   `yaml:"name"`
	Super      string   `yaml:"super"`
	Interfaces []string `yaml:"interfaces"`
	ID         string   `yaml:"id"`
	Fields     []Field  `yaml:"fields"`
	Methods    []Method `yaml:"methods"`
}

// Field is one field.
type Field struct {
	Name string `yaml:"name"`
	Desc string `yaml:"desc"`
	ID   string `yaml:"id"`
}

// Method is one method. Params holds parameter identities by position.
type Method struct {
	Name   string   `yaml:"name"`
	Desc   string   `yaml:"desc"`
	ID     string   `yaml:"id"`
	Params []string `yaml:"params"`
	Code   []string `yaml:"code"`
}

// LoadFile reads and builds the generations of a fixture file.
func LoadFile(path string) ([]*symbol.Generation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	return Parse(data)
}

// Parse builds the generations described by YAML data. Generation indices
// follow document order.
func Parse(data []byte) ([]*symbol.Generation, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fixture YAML: %w", err)
	}

	return f.Build()
}

// Build turns the document into generations.
func (f *File) Build() ([]*symbol.Generation, error) {
	gens := make([]*symbol.Generation, 0, len(f.Generations))

	for i, g := range f.Generations {
		name := g.Name
		if name == "" {
			name = fmt.Sprintf("g%d", i)
		}

		gen, err := buildGeneration(name, i, g.Classes)
		if err != nil {
			return nil, fmt.Errorf("generation %s: %w", name, err)
		}

		gens = append(gens, gen)
	}

	return gens, nil
}

func buildGeneration(name string, index int, classes []Class) (*symbol.Generation, error) {
	b := symbol.NewBuilder(name, index)

	for _, cd := range classes {
		super := cd.Super
		if super == "" {
			super = "java/lang/Object"
		}

		c, err := b.Class(cd.Name, super, cd.Interfaces...)
		if err != nil {
			return nil, err
		}

		c.Identity = cd.ID

		for _, fd := range cd.Fields {
			f, err := b.Field(c, fd.Name, fd.Desc)
			if err != nil {
				return nil, err
			}

			f.Identity = fd.ID
		}

		for _, md := range cd.Methods {
			if err := addMethod(b, c, md); err != nil {
				return nil, fmt.Errorf("method %s.%s%s: %w", c.Name, md.Name, md.Desc, err)
			}
		}
	}

	return b.Build(), nil
}

func addMethod(b *symbol.Builder, c *symbol.Class, md Method) error {
	code := make([]symbol.Instruction, 0, len(md.Code))

	for i, line := range md.Code {
		in, err := symbol.ParseInstruction(line)
		if err != nil {
			return fmt.Errorf("instruction %d: %w", i, err)
		}

		code = append(code, in)
	}

	m, err := b.Method(c, md.Name, md.Desc, code...)
	if err != nil {
		return err
	}

	if len(md.Params) > len(m.Params) {
		return fmt.Errorf("%d parameter ids for %d parameters", len(md.Params), len(m.Params))
	}

	m.Identity = md.ID
	for i, id := range md.Params {
		m.Params[i].Identity = id
	}

	return nil
}
