package tokens

// Offset is a shadow displacement in pixels.
type Offset struct {
	Width  int
	Height int
}

// Shadow describes an elevation level.
type Shadow struct {
	Color     string
	Offset    Offset
	Opacity   float64
	Radius    int
	Elevation int
}

var shadowKeys = []Key{SM, MD, LG, XL}

var shadows = map[Key]Shadow{
	SM: {Color: "$shadowColor", Offset: Offset{Width: 0, Height: 1}, Opacity: 0.05, Radius: 2, Elevation: 1},
	MD: {Color: "$shadowColor", Offset: Offset{Width: 0, Height: 2}, Opacity: 0.1, Radius: 4, Elevation: 2},
	LG: {Color: "$shadowColor", Offset: Offset{Width: 0, Height: 4}, Opacity: 0.15, Radius: 8, Elevation: 4},
	XL: {Color: "$shadowColor", Offset: Offset{Width: 0, Height: 8}, Opacity: 0.2, Radius: 16, Elevation: 8},
}

// ShadowFor returns the shadow registered under key.
func ShadowFor(key Key) (Shadow, bool) {
	s, ok := shadows[key]
	return s, ok
}

// ShadowKeys returns the elevation keys from lowest to highest.
func ShadowKeys() []Key {
	out := make([]Key, len(shadowKeys))
	copy(out, shadowKeys)
	return out
}
