// Package tokens holds the design token tables: spacing, size, radius, z-index and
// shadow. Every table maps a short semantic key to an authored literal. Tables are
// built once and never mutated; With returns a modified copy.
package tokens

import "strings"

// Key names a token inside a table.
type Key string

// Scale keys shared by the space, size and z-index tables.
const (
	XXXS Key = "xxxs"
	XXS  Key = "xxs"
	XS   Key = "xs"
	SM   Key = "sm"
	MD   Key = "md"
	LG   Key = "lg"
	XL   Key = "xl"
	XXL  Key = "xxl"
	XXXL Key = "xxxl"

	// True is the key the engine uses for a bare `space={true}`.
	True Key = "true"
	None Key = "none"
	Full Key = "full"
	Auto Key = "auto"
)

type entry struct {
	key   Key
	value int
}

// Table is an ordered, read-only mapping from token key to an integer value
// (pixels for space and radius, stacking order for z-index).
type Table struct {
	name    string
	entries []entry
}

func newTable(name string, entries ...entry) Table {
	return Table{name: name, entries: entries}
}

// Name returns the table's token kind, e.g. "space".
func (t Table) Name() string {
	return t.name
}

// Get looks up a key.
func (t Table) Get(key Key) (int, bool) {
	for _, e := range t.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return 0, false
}

// Has reports whether the key is registered.
func (t Table) Has(key Key) bool {
	_, ok := t.Get(key)
	return ok
}

// Keys returns the keys in scale order.
func (t Table) Keys() []Key {
	keys := make([]Key, 0, len(t.entries))
	for _, e := range t.entries {
		keys = append(keys, e.key)
	}
	return keys
}

// Len returns the number of registered keys.
func (t Table) Len() int {
	return len(t.entries)
}

// With returns a copy of the table with key set to value. Unknown keys are appended.
func (t Table) With(key Key, value int) Table {
	entries := make([]entry, len(t.entries), len(t.entries)+1)
	copy(entries, t.entries)
	for i := range entries {
		if entries[i].key == key {
			entries[i].value = value
			return Table{name: t.name, entries: entries}
		}
	}
	entries = append(entries, entry{key: key, value: value})
	return Table{name: t.name, entries: entries}
}

var (
	space = newTable("space",
		entry{XXXS, 2},
		entry{XXS, 4},
		entry{XS, 8},
		entry{SM, 12},
		entry{MD, 16},
		entry{LG, 24},
		entry{XL, 32},
		entry{XXL, 48},
		entry{XXXL, 64},
	)

	radius = newTable("radius",
		entry{None, 0},
		entry{XS, 2},
		entry{SM, 4},
		entry{MD, 8},
		entry{LG, 12},
		entry{XL, 16},
		entry{XXL, 24},
		entry{Full, 999},
	)

	zIndex = newTable("zIndex",
		entry{XXXS, 0},
		entry{XXS, 1},
		entry{XS, 2},
		entry{SM, 3},
		entry{MD, 4},
		entry{LG, 5},
		entry{XL, 10},
		entry{XXL, 100},
		entry{XXXL, 1000},
	)
)

// Spacing returns the app spacing scale (xxxs..xxxl) without the engine default key.
func Spacing() Table {
	return space
}

// Space returns the space tokens registered with the engine: the spacing scale
// plus True, which aliases md.
func Space() Table {
	md, _ := space.Get(MD)
	return space.With(True, md)
}

// Radius returns the border radius tokens.
func Radius() Table {
	return radius
}

// ZIndex returns the stacking order tokens. The engine requires them to share
// the space table's keys.
func ZIndex() Table {
	return zIndex
}

// Ref formats a token reference, e.g. Ref(MD) == "$md".
func Ref(key Key) string {
	return "$" + string(key)
}

// ParseRef strips the leading "$" from a token reference.
func ParseRef(ref string) (string, bool) {
	if !strings.HasPrefix(ref, "$") || len(ref) < 2 {
		return "", false
	}
	return ref[1:], true
}
