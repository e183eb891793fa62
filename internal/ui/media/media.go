// Package media defines the named responsive conditions registered with the
// styling engine and evaluates them against a viewport.
package media

import "github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"

// Query is a media condition. Zero bounds and empty capabilities are unset;
// set bounds are inclusive.
type Query struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
	Hover     string
	Pointer   string
}

// Viewport is the output surface the conditions are evaluated against, in pixels.
type Viewport struct {
	Width   int
	Height  int
	Hover   string
	Pointer string
}

// Matches reports whether the viewport satisfies every set bound of the query.
func (q Query) Matches(vp Viewport) bool {
	if q.MinWidth > 0 && vp.Width < q.MinWidth {
		return false
	}
	if q.MaxWidth > 0 && vp.Width > q.MaxWidth {
		return false
	}
	if q.MinHeight > 0 && vp.Height < q.MinHeight {
		return false
	}
	if q.MaxHeight > 0 && vp.Height > q.MaxHeight {
		return false
	}
	if q.Hover != "" && q.Hover != vp.Hover {
		return false
	}
	if q.Pointer != "" && q.Pointer != vp.Pointer {
		return false
	}
	return true
}

// Condition is a named query.
type Condition struct {
	Name  string
	Query Query
}

// Set is an ordered collection of named conditions.
type Set struct {
	conditions []Condition
}

// Breakpoint names.
const (
	XS            = "xs"
	SM            = "sm"
	MD            = "md"
	LG            = "lg"
	XL            = "xl"
	XXL           = "xxl"
	GtXS          = "gtXs"
	GtSM          = "gtSm"
	GtMD          = "gtMd"
	GtLG          = "gtLg"
	Short         = "short"
	Tall          = "tall"
	HoverNone     = "hoverNone"
	PointerCoarse = "pointerCoarse"
)

// Width boundaries shared by the max-width and gt* conditions.
const (
	boundXS  = 660
	boundSM  = 800
	boundMD  = 1020
	boundLG  = 1280
	boundXL  = 1420
	boundXXL = 1600

	boundHeight = 820
)

// Default returns the registered media conditions.
func Default() Set {
	return NewSet(
		Condition{XS, Query{MaxWidth: boundXS}},
		Condition{SM, Query{MaxWidth: boundSM}},
		Condition{MD, Query{MaxWidth: boundMD}},
		Condition{LG, Query{MaxWidth: boundLG}},
		Condition{XL, Query{MaxWidth: boundXL}},
		Condition{XXL, Query{MaxWidth: boundXXL}},
		Condition{GtXS, Query{MinWidth: boundXS + 1}},
		Condition{GtSM, Query{MinWidth: boundSM + 1}},
		Condition{GtMD, Query{MinWidth: boundMD + 1}},
		Condition{GtLG, Query{MinWidth: boundLG + 1}},
		Condition{Short, Query{MaxHeight: boundHeight}},
		Condition{Tall, Query{MinHeight: boundHeight}},
		Condition{HoverNone, Query{Hover: "none"}},
		Condition{PointerCoarse, Query{Pointer: "coarse"}},
	)
}

// NewSet builds a set from conditions in declaration order.
func NewSet(conditions ...Condition) Set {
	out := make([]Condition, len(conditions))
	copy(out, conditions)
	return Set{conditions: out}
}

// Lookup returns the query registered under name.
func (s Set) Lookup(name string) (Query, bool) {
	for _, c := range s.conditions {
		if c.Name == name {
			return c.Query, true
		}
	}
	return Query{}, false
}

// Has reports whether name is registered.
func (s Set) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Matches reports whether the named condition holds for the viewport.
// Unknown names never match.
func (s Set) Matches(name string, vp Viewport) bool {
	q, ok := s.Lookup(name)
	return ok && q.Matches(vp)
}

// Active returns the names of every matching condition, in declaration order.
func (s Set) Active(vp Viewport) []string {
	active := make([]string, 0, len(s.conditions))
	for _, c := range s.conditions {
		if c.Query.Matches(vp) {
			active = append(active, c.Name)
		}
	}
	return active
}

// Conditions returns a copy of the registered conditions.
func (s Set) Conditions() []Condition {
	out := make([]Condition, len(s.conditions))
	copy(out, s.conditions)
	return out
}

// With returns a copy with name bound to q, replacing an existing entry in place.
func (s Set) With(name string, q Query) Set {
	out := s.Conditions()
	for i := range out {
		if out[i].Name == name {
			out[i].Query = q
			return Set{conditions: out}
		}
	}
	return Set{conditions: append(out, Condition{Name: name, Query: q})}
}

// FromTerminal converts a terminal size in cells to a viewport. Terminals have
// neither hover nor a fine pointer.
func FromTerminal(cols, rows int) Viewport {
	return Viewport{
		Width:   cols * tokens.CellWidth,
		Height:  rows * tokens.CellHeight,
		Hover:   "none",
		Pointer: "coarse",
	}
}
