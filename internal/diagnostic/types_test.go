package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeRejuvenated, "recovered from g0", "g2", "a/B")
	d.AddWarning(CodeUnmapped, "no counterpart", "g2", "a/C")
	assert.False(t, d.HasErrors())

	var other Diagnostics
	other.AddError(CodeParallelism, "must not be negative", "", "parallelism")
	other.AddError(CodeLogLevel, `unknown level "loud"`, "", "")
	d.Merge(other)

	require.True(t, d.HasErrors())
	assert.Equal(t, 1, d.Count(CodeUnmapped))
	assert.Equal(t, 0, d.Count(CodeSupplier))
	assert.EqualError(t, d.Error(), `parallelism: [E003] must not be negative; [E004] unknown level "loud"`)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Code: CodeUnmapped, Message: "no counterpart", Generation: "g2", Symbol: "a/C.run()V"}
	assert.Equal(t, "[g2] a/C.run()V: [W001] no counterpart", d.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
