package components

import (
	"github.com/alexisbeaulieu97/zoomies/internal/ui/media"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/styled"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

// SpaceRefs lists the space token references, e.g. Spacing.MD == "$md".
type SpaceRefs struct {
	XXXS, XXS, XS, SM, MD, LG, XL, XXL, XXXL string
}

// RadiusRefs lists the radius token references.
type RadiusRefs struct {
	None, XS, SM, MD, LG, XL, XXL, Full string
}

var (
	// Spacing holds the space token references.
	Spacing = SpaceRefs{
		XXXS: tokens.Ref(tokens.XXXS),
		XXS:  tokens.Ref(tokens.XXS),
		XS:   tokens.Ref(tokens.XS),
		SM:   tokens.Ref(tokens.SM),
		MD:   tokens.Ref(tokens.MD),
		LG:   tokens.Ref(tokens.LG),
		XL:   tokens.Ref(tokens.XL),
		XXL:  tokens.Ref(tokens.XXL),
		XXXL: tokens.Ref(tokens.XXXL),
	}

	// Radius holds the radius token references.
	Radius = RadiusRefs{
		None: tokens.Ref(tokens.None),
		XS:   tokens.Ref(tokens.XS),
		SM:   tokens.Ref(tokens.SM),
		MD:   tokens.Ref(tokens.MD),
		LG:   tokens.Ref(tokens.LG),
		XL:   tokens.Ref(tokens.XL),
		XXL:  tokens.Ref(tokens.XXL),
		Full: tokens.Ref(tokens.Full),
	}
)

// Shadow returns the props for an elevation level (sm, md, lg, xl), ready to be
// spread into a component. Unknown keys yield nil.
func Shadow(key tokens.Key) styled.Props {
	s, ok := tokens.ShadowFor(key)
	if !ok {
		return nil
	}
	return styled.Props{
		"shadowColor":   s.Color,
		"shadowOffset":  s.Offset,
		"shadowOpacity": s.Opacity,
		"shadowRadius":  s.Radius,
		"elevation":     s.Elevation,
	}
}

func shadowOffset(width, height int) tokens.Offset {
	return tokens.Offset{Width: width, Height: height}
}

// Responsive maps width breakpoints (xs..xxl) to values.
type Responsive[T any] map[string]T

// Pick returns the value of the narrowest active breakpoint, or fallback when
// none of the set breakpoints is active.
func (r Responsive[T]) Pick(ctx RenderContext, fallback T) T {
	for _, name := range []string{media.XS, media.SM, media.MD, media.LG, media.XL, media.XXL} {
		v, ok := r[name]
		if ok && ctx.IsActive(name) {
			return v
		}
	}
	return fallback
}
