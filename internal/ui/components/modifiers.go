package components

import (
	"strconv"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/styled"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

// Modifier sets inline props from token keys. Modifiers are applied in order,
// so a later modifier wins for the same property.
type Modifier func(styled.Props)

func spaceProp(name string, key tokens.Key) Modifier {
	return func(p styled.Props) { p[name] = tokens.Ref(key) }
}

// Background sets the background color, e.g. Background("$primary").
func Background(ref string) Modifier {
	return func(p styled.Props) { p["backgroundColor"] = ref }
}

// Foreground sets the text color.
func Foreground(ref string) Modifier {
	return func(p styled.Props) { p["color"] = ref }
}

// BorderColor sets the border color.
func BorderColor(ref string) Modifier {
	return func(p styled.Props) { p["borderColor"] = ref }
}

// Bordered draws a border of the given width in pixels.
func Bordered(width int) Modifier {
	return func(p styled.Props) { p["borderWidth"] = width }
}

// BorderRadius sets the radius token.
func BorderRadius(key tokens.Key) Modifier {
	return func(p styled.Props) { p["borderRadius"] = tokens.Ref(key) }
}

// Padding sets padding on every side.
func Padding(key tokens.Key) Modifier { return spaceProp("padding", key) }

// PaddingX sets horizontal padding.
func PaddingX(key tokens.Key) Modifier { return spaceProp("paddingHorizontal", key) }

// PaddingY sets vertical padding.
func PaddingY(key tokens.Key) Modifier { return spaceProp("paddingVertical", key) }

// Margin sets margin on every side.
func Margin(key tokens.Key) Modifier { return spaceProp("margin", key) }

// MarginX sets horizontal margin.
func MarginX(key tokens.Key) Modifier { return spaceProp("marginHorizontal", key) }

// MarginY sets vertical margin.
func MarginY(key tokens.Key) Modifier { return spaceProp("marginVertical", key) }

// MarginTop sets the top margin.
func MarginTop(key tokens.Key) Modifier { return spaceProp("marginTop", key) }

// Gap sets the gap between children.
func Gap(key tokens.Key) Modifier { return spaceProp("gap", key) }

// FontSize sets a font size step, e.g. FontSize(6) for "$6".
func FontSize(step int) Modifier {
	return func(p styled.Props) { p["fontSize"] = stepRef(step) }
}

// FontWeight sets a font weight step.
func FontWeight(step int) Modifier {
	return func(p styled.Props) { p["fontWeight"] = stepRef(step) }
}

// Wrap lets a horizontal stack break onto several lines.
func Wrap() Modifier {
	return func(p styled.Props) { p["flexWrap"] = "wrap" }
}

// Elevation spreads a shadow level, as in Shadow.
func Elevation(key tokens.Key) Modifier {
	shadow := Shadow(key)
	return func(p styled.Props) {
		for k, v := range shadow {
			p[k] = v
		}
	}
}

// PressStyle adds props applied while pressed.
func PressStyle(props styled.Props) Modifier {
	return stateProps(styled.PressStyle, props)
}

// HoverStyle adds props applied while hovered.
func HoverStyle(props styled.Props) Modifier {
	return stateProps(styled.HoverStyle, props)
}

// FocusStyle adds props applied while focused.
func FocusStyle(props styled.Props) Modifier {
	return stateProps(styled.FocusStyle, props)
}

func stateProps(key string, props styled.Props) Modifier {
	return func(p styled.Props) {
		existing, _ := p[key].(styled.Props)
		p[key] = styled.Merge(existing, props)
	}
}

func stepRef(step int) string {
	if step <= 0 {
		return tokens.Ref(tokens.True)
	}
	return "$" + strconv.Itoa(step)
}
