package mapper

import (
	"errors"

	"remapper/internal/match"
	"remapper/internal/symbol"
)

// Strategies holds the mapper delegated to for each symbol kind.
type Strategies struct {
	Classes    Mapper[*symbol.Class]
	Methods    Mapper[*symbol.Method]
	Fields     Mapper[*symbol.Field]
	Parameters Mapper[*symbol.Parameter]
}

// ErrMissingStrategy is returned by Validate when a kind has no mapper.
var ErrMissingStrategy = errors.New("missing mapping strategy")

// Validate checks that every kind has a mapper.
func (s Strategies) Validate() error {
	switch {
	case s.Classes == nil:
		return errors.Join(ErrMissingStrategy, errors.New("classes"))
	case s.Methods == nil:
		return errors.Join(ErrMissingStrategy, errors.New("methods"))
	case s.Fields == nil:
		return errors.Join(ErrMissingStrategy, errors.New("fields"))
	case s.Parameters == nil:
		return errors.Join(ErrMissingStrategy, errors.New("parameters"))
	default:
		return nil
	}
}

// DefaultStrategies assembles the standard strategy set around a
// configured fuzzy matcher.
//
// Classes: equal names, then a greedy shape alignment per enclosing bucket.
// Methods: lambdas and ordinary methods apart; equal name and descriptor,
// exact bodies, flipped boolean returns, then fuzzy bodies.
// Fields: equal name and descriptor, then a greedy descriptor alignment.
// Parameters: equal descriptors.
func DefaultStrategies(diff match.Diff) Strategies {
	methods := Phased[*symbol.Method]{
		Name[*symbol.Method]{Key: MethodName},
		Bytecode(match.Direct{}),
		Bytecode(match.BooleanFlip{Next: match.Direct{}}),
		Bytecode(match.Delegating{match.BooleanFlip{Next: diff}, diff}),
	}

	return Strategies{
		Classes: Phased[*symbol.Class]{
			Name[*symbol.Class]{Key: ClassName},
			GroupedBy((*symbol.Class).Enclosing, Mapper[*symbol.Class](Aligned[*symbol.Class]{
				Less:   ByName,
				Picker: PickKey(ClassShape),
			})),
		},
		Methods: GroupedBy(MethodFamily, Mapper[*symbol.Method](methods)),
		Fields: Phased[*symbol.Field]{
			Name[*symbol.Field]{Key: FieldName},
			Aligned[*symbol.Field]{Less: FieldsByName, Picker: PickKey(FieldDesc)},
		},
		Parameters: ParameterType(),
	}
}

// MethodFamily separates compiler-generated lambda bodies from ordinary methods.
func MethodFamily(m *symbol.Method) string {
	if m.IsLambda() {
		return "lambda"
	}

	return "method"
}
