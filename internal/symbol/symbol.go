package symbol

import (
	"strconv"
	"strings"

	"remapper/internal/common"
)

// Class is one class of a generation.
type Class struct {
	ref Handle

	Name       string // internal name, e.g. "java/util/ArrayList"
	Super      string
	Interfaces []string
	Access     int

	Methods []*Method
	Fields  []*Field

	// Identity is the id carried over from an external identity source.
	// Empty when the generation supplies names only (or is the unnamed one).
	Identity string
}

// Handle returns the class handle.
func (c *Class) Handle() Handle { return c.ref }

// Enclosing returns the bucket a class is grouped under when matching:
// the outer class name for nested classes, otherwise the package path.
func (c *Class) Enclosing() string {
	if i := strings.LastIndexByte(c.Name, '$'); i >= 0 {
		return c.Name[:i]
	}

	return common.Package(c.Name)
}

func (c *Class) String() string { return c.Name }

// Method is one method of a class.
type Method struct {
	ref Handle

	Owner  *Class
	Name   string
	Desc   string
	Access int
	Code   []Instruction
	Params []*Parameter

	Identity string
}

// Handle returns the method handle.
func (m *Method) Handle() Handle { return m.ref }

// Body returns the comparable bytecode body of the method.
func (m *Method) Body() Body {
	return Body{Desc: m.Desc, Code: m.Code}
}

// IsLambda reports whether the method is a compiler-generated lambda body.
func (m *Method) IsLambda() bool {
	return strings.HasPrefix(m.Name, "lambda$")
}

func (m *Method) String() string { return m.Owner.Name + "." + m.Name + m.Desc }

// Field is one field of a class.
type Field struct {
	ref Handle

	Owner  *Class
	Name   string
	Desc   string
	Access int

	Identity string
}

// Handle returns the field handle.
func (f *Field) Handle() Handle { return f.ref }

func (f *Field) String() string { return f.Owner.Name + "." + f.Name + ":" + f.Desc }

// Parameter is one positional parameter of a method.
type Parameter struct {
	ref Handle

	Method *Method
	Index  int
	Desc   string

	Identity string
}

// Handle returns the parameter handle.
func (p *Parameter) Handle() Handle { return p.ref }

func (p *Parameter) String() string {
	return p.Method.String() + "#" + strconv.Itoa(p.Index)
}

// Body is the part of a method the matchers compare.
type Body struct {
	Desc string
	Code []Instruction
}
