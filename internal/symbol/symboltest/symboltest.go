// Package symboltest builds generations for tests without error plumbing.
package symboltest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"remapper/internal/symbol"
)

// Gen wraps a symbol.Builder and fails the test on any builder error.
type Gen struct {
	t testing.TB
	b *symbol.Builder
}

// New starts a generation at chain position index.
func New(t testing.TB, name string, index int) *Gen {
	t.Helper()
	return &Gen{t: t, b: symbol.NewBuilder(name, index)}
}

// Class adds a class extending java/lang/Object.
func (g *Gen) Class(name string) *symbol.Class {
	g.t.Helper()

	c, err := g.b.Class(name, "java/lang/Object")
	require.NoError(g.t, err)

	return c
}

// Method adds a method.
func (g *Gen) Method(c *symbol.Class, name, desc string, code ...symbol.Instruction) *symbol.Method {
	g.t.Helper()

	m, err := g.b.Method(c, name, desc, code...)
	require.NoError(g.t, err)

	return m
}

// Field adds a field.
func (g *Gen) Field(c *symbol.Class, name, desc string) *symbol.Field {
	g.t.Helper()

	f, err := g.b.Field(c, name, desc)
	require.NoError(g.t, err)

	return f
}

// Build freezes the generation.
func (g *Gen) Build() *symbol.Generation {
	return g.b.Build()
}

// Calls returns a body of INVOKESTATIC instructions owner.name<i>()V, one
// per name, followed by RETURN. Distinct names give distinct instructions.
func Calls(owner string, names ...string) []symbol.Instruction {
	code := make([]symbol.Instruction, 0, len(names)+1)
	for _, n := range names {
		code = append(code, symbol.MemberInsn(symbol.OpInvokeStatic, owner, n, "()V"))
	}

	return append(code, symbol.Insn(symbol.OpReturn))
}
