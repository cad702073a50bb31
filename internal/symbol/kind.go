package symbol

import "fmt"

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the symbol category a Handle refers to.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindClass
	KindMethod
	KindField
	KindParameter

	// KindTotal is the number of valid kinds.
	KindTotal = int(iota) - 1
)

// Handle is a stable integer identifier of a symbol inside one generation.
type Handle struct {
	Gen   int
	Kind  Kind
	Index int
}

// String formats the handle as "g<gen>/<kind>#<index>".
func (h Handle) String() string {
	return fmt.Sprintf("g%d/%s#%d", h.Gen, h.Kind, h.Index)
}

// IsZero reports whether the handle was never assigned.
func (h Handle) IsZero() bool {
	return h.Kind == 0
}
