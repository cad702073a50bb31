package chain

//go:generate go tool stringer -type=Via -trimprefix=Via -output=via_string.go

// Via records which reconstruction step produced a link.
type Via int

const (
	_ Via = iota

	// ViaDirect links come from the hop between the two newest generations.
	ViaDirect
	// ViaRejuvenation links come from a class recovered from an older hop,
	// or from its members.
	ViaRejuvenation
	// ViaResidual links come from replaying members against a class history.
	ViaResidual
)
