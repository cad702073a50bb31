package fixture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remapper/internal/chain"
	"remapper/internal/symbol"
)

func TestLoadFile(t *testing.T) {
	gens, err := LoadFile("testdata/vanishing.yaml")
	require.NoError(t, err)
	require.Len(t, gens, 3)

	assert.Equal(t, []string{"v1", "v2", "v3"}, []string{gens[0].Name, gens[1].Name, gens[2].Name})
	assert.Equal(t, 2, gens[2].Index)

	client, ok := gens[0].Class("a/Client")
	require.True(t, ok)
	assert.Equal(t, "C-client", client.Identity)
	assert.Equal(t, "java/lang/Object", client.Super)
	assert.Equal(t, "F-timeout", client.Fields[0].Identity)

	retry, _ := gens[0].Class("a/Retry")
	backoff := retry.Methods[0]
	assert.Equal(t, "M-backoff", backoff.Identity)
	require.Len(t, backoff.Params, 1)
	assert.Equal(t, "P-backoff-0", backoff.Params[0].Identity)
	assert.Equal(t, []symbol.Instruction{
		symbol.Insn(symbol.OpLload, 0),
		symbol.MemberInsn(symbol.OpInvokeStatic, "java/lang/Thread", "sleep", "(J)V"),
		symbol.Insn(symbol.OpReturn),
	}, backoff.Code)

	newest := gens[2]
	assert.Len(t, newest.Methods(), 3)
	assert.Empty(t, newest.Classes[0].Identity)
}

func TestLoadFile_Reconstructs(t *testing.T) {
	gens, err := LoadFile("testdata/vanishing.yaml")
	require.NoError(t, err)

	out, err := chain.NewReconstructor(chain.DefaultConfig(), nil).Reconstruct(context.Background(), gens)
	require.NoError(t, err)

	assert.Empty(t, out.Classes.Unmapped)
	assert.Empty(t, out.Methods.Unmapped)
	assert.Empty(t, out.Fields.Unmapped)
	assert.Empty(t, out.Parameters.Unmapped)

	via := make(map[string]chain.Via)
	for _, l := range out.Methods.Links {
		via[l.Source.Name] = l.Via
	}

	assert.Equal(t, map[string]chain.Via{
		"a": chain.ViaDirect,
		"b": chain.ViaResidual,
		"c": chain.ViaRejuvenation,
	}, via)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"syntax", "generations: [", "failed to parse fixture YAML"},
		{"duplicate class", `
generations:
  - classes: [{name: a/A}, {name: a/A}]
`, `generation g0: duplicate class "a/A"`},
		{"bad opcode", `
generations:
  - name: v1
    classes:
      - name: a/A
        methods:
          - {name: m, desc: ()V, code: [FROB]}
`, `generation v1: method a/A.m()V: instruction 0: unknown opcode "FROB"`},
		{"bad descriptor", `
generations:
  - classes:
      - name: a/A
        methods: [{name: m, desc: "(Q)V"}]
`, "method a/A.m(Q)V"},
		{"too many parameter ids", `
generations:
  - classes:
      - name: a/A
        methods: [{name: m, desc: "(I)V", params: [p0, p1]}]
`, "2 parameter ids for 1 parameters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
