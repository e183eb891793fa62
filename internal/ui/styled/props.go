package styled

import "sort"

// Props is a set of style properties. Values are ints, float64s, strings (literal
// or "$token" references), tokens.Offset for shadow offsets, or nested Props under
// the state keys.
type Props map[string]any

// Nested state style keys.
const (
	HoverStyle = "hoverStyle"
	PressStyle = "pressStyle"
	FocusStyle = "focusStyle"
)

func isStateKey(key string) bool {
	return key == HoverStyle || key == PressStyle || key == FocusStyle
}

// Clone returns a shallow copy. Nested state props are copied one level deep.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		if nested, ok := v.(Props); ok {
			out[k] = nested.Clone()
			continue
		}
		out[k] = v
	}
	return out
}

// Keys returns the property names, sorted.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge layers the given props left to right; later values win per property.
func Merge(layers ...Props) Props {
	out := Props{}
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}

// Bool formats a boolean variant value.
func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
