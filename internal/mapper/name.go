package mapper

import (
	"slices"
	"strconv"
	"strings"

	"remapper/internal/match"
	"remapper/internal/symbol"
)

// Name maps each source to the first unclaimed candidate with an equal key.
// It behaves like SingleEntry with PickKey, but indexes candidates by key.
type Name[T Symbol] struct {
	Key func(T) string
}

// Map implements Mapper.
func (n Name[T]) Map(sources, candidates []T) Result[T] {
	if len(candidates) == 0 || len(sources) == 0 {
		return Unmapped(sources, candidates)
	}

	byKey := make(map[string][]T, len(candidates))
	for _, c := range candidates {
		k := n.Key(c)
		byKey[k] = append(byKey[k], c)
	}

	picker := PickFunc[T](func(src T, pool *Pool[T]) (T, bool) {
		for _, c := range byKey[n.Key(src)] {
			if pool.Contains(c) {
				return c, true
			}
		}

		var zero T

		return zero, false
	})

	return pickAll(picker, sources, NewPool(candidates))
}

// ClassName keys a class by internal name.
func ClassName(c *symbol.Class) string { return c.Name }

// MethodName keys a method by name and descriptor.
func MethodName(m *symbol.Method) string { return m.Name + m.Desc }

// FieldName keys a field by name and descriptor.
func FieldName(f *symbol.Field) string { return f.Name + ":" + f.Desc }

// FieldDesc keys a field by descriptor alone.
func FieldDesc(f *symbol.Field) string { return f.Desc }

// ClassShape keys a class by member counts and erased member descriptors,
// which survive renaming of the class and of the types it references.
func ClassShape(c *symbol.Class) string {
	fields := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		fields[i] = eraseDesc(f.Desc)
	}

	methods := make([]string, len(c.Methods))
	for i, m := range c.Methods {
		methods[i] = eraseDesc(m.Desc)
	}

	slices.Sort(fields)
	slices.Sort(methods)

	var b strings.Builder
	b.WriteString("f" + strconv.Itoa(len(fields)) + "m" + strconv.Itoa(len(methods)))
	b.WriteString("|" + strings.Join(fields, ","))
	b.WriteString("|" + strings.Join(methods, ","))

	return b.String()
}

// eraseDesc replaces every class type "Lname;" with "L;".
func eraseDesc(desc string) string {
	var b strings.Builder

	for i := 0; i < len(desc); i++ {
		b.WriteByte(desc[i])

		if desc[i] != 'L' {
			continue
		}

		semi := strings.IndexByte(desc[i:], ';')
		if semi < 0 {
			b.WriteString(desc[i+1:])
			break
		}

		b.WriteByte(';')
		i += semi
	}

	return b.String()
}

// ByName orders classes by internal name.
func ByName(a, b *symbol.Class) bool { return a.Name < b.Name }

// FieldsByName orders fields by name then descriptor.
func FieldsByName(a, b *symbol.Field) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}

	return a.Desc < b.Desc
}

// Bytecode maps methods whose bodies the matcher accepts.
func Bytecode(m match.Matcher) SingleEntry[*symbol.Method] {
	return SingleEntry[*symbol.Method]{
		Picker: PickFirst(func(src, cand *symbol.Method) bool {
			return m.Match(src.Body(), cand.Body()) == match.Match
		}),
	}
}

// ParameterType maps parameters with equal type descriptors, ignoring names.
func ParameterType() SingleEntry[*symbol.Parameter] {
	return SingleEntry[*symbol.Parameter]{
		Picker: PickFirst(func(src, cand *symbol.Parameter) bool {
			return src.Desc == cand.Desc
		}),
	}
}
