package tokens

// SizeValue is a size token: either a pixel length or a keyword such as "100%".
type SizeValue struct {
	Pixels  int
	Keyword string
}

// IsKeyword reports whether the size is a keyword rather than a length.
func (s SizeValue) IsKeyword() bool {
	return s.Keyword != ""
}

// SizeTable is the ordered size token table.
type SizeTable struct {
	lengths  Table
	keywords map[Key]string
}

// Size returns the size tokens: every space token plus "full" and "auto".
func Size() SizeTable {
	return SizeTable{
		lengths: Space(),
		keywords: map[Key]string{
			Full: "100%",
			Auto: "auto",
		},
	}
}

// Get looks up a size token.
func (s SizeTable) Get(key Key) (SizeValue, bool) {
	if px, ok := s.lengths.Get(key); ok {
		return SizeValue{Pixels: px}, true
	}
	if kw, ok := s.keywords[key]; ok {
		return SizeValue{Keyword: kw}, true
	}
	return SizeValue{}, false
}

// Keys returns length keys in scale order followed by the keyword keys.
func (s SizeTable) Keys() []Key {
	keys := s.lengths.Keys()
	return append(keys, Full, Auto)
}

// WithLengths returns a copy backed by a different length table.
func (s SizeTable) WithLengths(lengths Table) SizeTable {
	s.lengths = lengths
	return s
}
