package styled

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/fonts"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

// Resolver looks up token references for one theme. Keys are passed without the
// leading "$"; Color also accepts literals.
type Resolver interface {
	Space(key string) (int, bool)
	Size(key string) (tokens.SizeValue, bool)
	Radius(key string) (int, bool)
	ZIndex(key string) (int, bool)
	Color(ref string) (lipgloss.TerminalColor, bool)
	Font(name string) (fonts.Font, bool)
	Animation(name string) bool
	HasMedia(name string) bool
}

// Kind classifies a property by the token table its references resolve against.
type Kind int

const (
	KindNone Kind = iota
	KindSpace
	KindSize
	KindRadius
	KindZIndex
	KindColor
	KindFontFamily
	KindFontSize
	KindFontWeight
	KindLineHeight
	KindLetterSpacing
)

func (k Kind) String() string {
	switch k {
	case KindSpace:
		return "space"
	case KindSize:
		return "size"
	case KindRadius:
		return "radius"
	case KindZIndex:
		return "zIndex"
	case KindColor:
		return "color"
	case KindFontFamily:
		return "font"
	case KindFontSize:
		return "fontSize"
	case KindFontWeight:
		return "fontWeight"
	case KindLineHeight:
		return "lineHeight"
	case KindLetterSpacing:
		return "letterSpacing"
	default:
		return "none"
	}
}

var propertyKinds = map[string]Kind{
	"padding":           KindSpace,
	"paddingTop":        KindSpace,
	"paddingRight":      KindSpace,
	"paddingBottom":     KindSpace,
	"paddingLeft":       KindSpace,
	"paddingHorizontal": KindSpace,
	"paddingVertical":   KindSpace,
	"margin":            KindSpace,
	"marginTop":         KindSpace,
	"marginRight":       KindSpace,
	"marginBottom":      KindSpace,
	"marginLeft":        KindSpace,
	"marginHorizontal":  KindSpace,
	"marginVertical":    KindSpace,
	"gap":               KindSpace,
	"top":               KindSpace,
	"right":             KindSpace,
	"bottom":            KindSpace,
	"left":              KindSpace,

	"width":     KindSize,
	"height":    KindSize,
	"minWidth":  KindSize,
	"maxWidth":  KindSize,
	"minHeight": KindSize,
	"maxHeight": KindSize,
	"size":      KindSize,

	"borderRadius":            KindRadius,
	"borderTopLeftRadius":     KindRadius,
	"borderTopRightRadius":    KindRadius,
	"borderBottomLeftRadius":  KindRadius,
	"borderBottomRightRadius": KindRadius,

	"zIndex": KindZIndex,

	"color":             KindColor,
	"backgroundColor":   KindColor,
	"borderColor":       KindColor,
	"borderTopColor":    KindColor,
	"borderBottomColor": KindColor,
	"borderLeftColor":   KindColor,
	"borderRightColor":  KindColor,
	"shadowColor":       KindColor,
	"outlineColor":      KindColor,

	"fontFamily":    KindFontFamily,
	"fontSize":      KindFontSize,
	"fontWeight":    KindFontWeight,
	"lineHeight":    KindLineHeight,
	"letterSpacing": KindLetterSpacing,
}

// KindOf returns the token kind for a property name.
func KindOf(property string) Kind {
	return propertyKinds[property]
}

// DefaultFontFamily is used for font scale lookups when fontFamily is unset.
const DefaultFontFamily = "$body"
