package symbol

import (
	"fmt"
	"strings"
)

// ReturnDesc returns the return type of a method descriptor, e.g. "Z" for "(I)Z".
func ReturnDesc(methodDesc string) string {
	i := strings.LastIndexByte(methodDesc, ')')
	if i < 0 {
		return ""
	}

	return methodDesc[i+1:]
}

// ReturnsBoolean reports whether a method descriptor returns boolean.
func ReturnsBoolean(methodDesc string) bool {
	return ReturnDesc(methodDesc) == "Z"
}

// ParamDescs splits the parameter list of a method descriptor into
// individual field descriptors.
func ParamDescs(methodDesc string) ([]string, error) {
	if !strings.HasPrefix(methodDesc, "(") {
		return nil, fmt.Errorf("method descriptor %q does not start with '('", methodDesc)
	}

	end := strings.IndexByte(methodDesc, ')')
	if end < 0 {
		return nil, fmt.Errorf("method descriptor %q has no ')'", methodDesc)
	}

	var out []string

	params := methodDesc[1:end]
	for i := 0; i < len(params); {
		start := i
		for i < len(params) && params[i] == '[' {
			i++
		}

		if i >= len(params) {
			return nil, fmt.Errorf("truncated array type in %q", methodDesc)
		}

		switch params[i] {
		case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
			i++
		case 'L':
			semi := strings.IndexByte(params[i:], ';')
			if semi < 0 {
				return nil, fmt.Errorf("unterminated class type in %q", methodDesc)
			}

			i += semi + 1
		default:
			return nil, fmt.Errorf("invalid type %q in %q", params[i], methodDesc)
		}

		out = append(out, params[start:i])
	}

	return out, nil
}
