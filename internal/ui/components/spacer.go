package components

import (
	"strings"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/styled"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

// Spacer renders empty space sized by a space token: blank lines in a column,
// blank cells in a row.
type Spacer struct {
	BaseComponent
	horizontal bool
}

// NewSpacer creates a vertical spacer of the given space token.
func NewSpacer(key tokens.Key) *Spacer {
	s := &Spacer{BaseComponent: NewBaseComponent(spacerDef)}
	s.SetProps(styled.Props{"size": tokens.Ref(key)})
	return s
}

// HorizontalSpacer creates a spacer that adds columns instead of lines.
func HorizontalSpacer(key tokens.Key) *Spacer {
	s := NewSpacer(key)
	s.horizontal = true
	return s
}

// View renders the spacer with the default context.
func (s *Spacer) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the spacer as blank space.
func (s *Spacer) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.orDefault()
	px, _ := styled.Pixels(s.ResolveProps(ctx)["size"], func(key string) (int, bool) {
		size, ok := ctx.Scope.Size(key)
		return size.Pixels, ok && !size.IsKeyword()
	})

	if s.horizontal {
		return strings.Repeat(" ", tokens.Cells(px))
	}
	rows := tokens.Rows(px)
	if rows == 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat(" \n", rows), "\n")
}
