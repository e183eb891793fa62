package components

import (
	"github.com/alexisbeaulieu97/zoomies/internal/ui"
)

// Badge is a small pill on the primary color.
type Badge struct {
	*Stack
}

// NewBadge creates a badge around children; see BadgeText.
func NewBadge(children ...ui.Renderable) *Badge {
	return &Badge{Stack: NewStack(badgeDef, children...)}
}

// BadgeText is the label styled for a badge.
func BadgeText(content string) *Text {
	return newText(badgeTextDef, content)
}

// LabelBadge creates a badge holding a single label.
func LabelBadge(label string) *Badge {
	return NewBadge(BadgeText(label))
}
