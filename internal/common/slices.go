package common

// UnknownStr is the String form of out-of-range enum values.
const UnknownStr = "unknown"

// Map applies f to every element.
func Map[S ~[]E, E, R any](s S, f func(E) R) []R {
	out := make([]R, len(s))
	for i, e := range s {
		out[i] = f(e)
	}

	return out
}

// Filter returns the elements for which keep is true, in order.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	var out S

	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}
