package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/config"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/media"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/styled"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/theme"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

func contextFor(t *testing.T, themeName string, cols, rows int) RenderContext {
	t.Helper()
	ctx, err := NewContext(config.Default(), themeName, media.FromTerminal(cols, rows))
	require.NoError(t, err)
	return ctx
}

func TestDefinitionsResolveOnlyKnownTokens(t *testing.T) {
	require.NoError(t, config.Default().Validate(Definitions()...))
}

func TestDefinitionFor(t *testing.T) {
	def, ok := DefinitionFor("CustomButton")
	require.True(t, ok)
	assert.Equal(t, "View", def.Parent().Name())

	_, ok = DefinitionFor("Missing")
	assert.False(t, ok)
}

func TestNewContextRejectsUnknownTheme(t *testing.T) {
	_, err := NewContext(config.Default(), "sepia", media.FromTerminal(80, 24))
	require.Error(t, err)
}

func TestDefaultContext(t *testing.T) {
	ctx := DefaultContext()
	assert.Equal(t, theme.NameLight, ctx.Scope.ThemeName())
	assert.True(t, ctx.IsActive(media.XS))
	assert.False(t, ctx.IsActive(media.GtXS))
}

func TestTypographyWrappers(t *testing.T) {
	ctx := DefaultContext()

	cases := []struct {
		text   *Text
		size   string
		weight string
		family string
	}{
		{Heading("h"), "$9", "$7", "$heading"},
		{Title("t"), "$7", "$6", "$heading"},
		{Subtitle("s"), "$5", "$6", "$body"},
		{Body("b"), "$4", "$4", "$body"},
		{Caption("c"), "$2", "$4", "$body"},
	}
	for _, tc := range cases {
		props := tc.text.ResolveProps(ctx)
		assert.Equal(t, tc.size, props["fontSize"], tc.text.Definition().Name())
		assert.Equal(t, tc.weight, props["fontWeight"], tc.text.Definition().Name())
		assert.Equal(t, tc.family, props["fontFamily"], tc.text.Definition().Name())
	}

	assert.Equal(t, "$colorTransparent", Caption("c").ResolveProps(ctx)["color"])
	assert.True(t, Heading("h").ComputeStyle(ctx, Heading("h").ResolveProps(ctx)).GetBold())
	assert.False(t, Body("b").ComputeStyle(ctx, Body("b").ResolveProps(ctx)).GetBold())
}

func TestCustomButtonDefaults(t *testing.T) {
	button := NewCustomButton(NewText("Go"))

	variant, ok := button.Variant("variant")
	require.True(t, ok)
	assert.Equal(t, string(ButtonPrimary), variant)

	size, ok := button.Variant("size")
	require.True(t, ok)
	assert.Equal(t, string(SizeMedium), size)

	props := button.ResolveProps(DefaultContext())
	assert.Equal(t, "$primary", props["backgroundColor"])
	assert.Equal(t, "$md", props["paddingHorizontal"])
	assert.Equal(t, "$sm", props["paddingVertical"])
}

func TestCustomButtonVariantsLayer(t *testing.T) {
	ctx := DefaultContext()

	outline := NewCustomButton().WithVariant(ButtonOutline).WithSize(SizeLarge)
	props := outline.ResolveProps(ctx)
	assert.Equal(t, "transparent", props["backgroundColor"])
	assert.Equal(t, 2, props["borderWidth"])
	assert.Equal(t, "$lg", props["paddingHorizontal"])

	disabled := NewCustomButton().WithDisabled(true)
	disabled.SetState(styled.State{Hover: true, Press: true})
	assert.Equal(t, 0.5, disabled.ResolveProps(ctx)["opacity"])

	enabled := NewCustomButton()
	enabled.SetState(styled.State{Hover: true})
	assert.Equal(t, 0.9, enabled.ResolveProps(ctx)["opacity"])
}

func TestCustomInputFocusAndError(t *testing.T) {
	ctx := DefaultContext()

	input := NewCustomInput(Caption("Enter text..."))
	assert.Equal(t, "$borderColor", input.ResolveProps(ctx)["borderColor"])

	input.WithFocused(true)
	props := input.ResolveProps(ctx)
	assert.Equal(t, "$primary", props["borderColor"])
	assert.Equal(t, 2, props["borderWidth"])

	errored := NewCustomInput().WithError(true)
	assert.Equal(t, "$error", errored.ResolveProps(ctx)["borderColor"])
}

func TestResponsiveContainerFollowsMedia(t *testing.T) {
	narrow := contextFor(t, theme.NameLight, 90, 40)
	medium := contextFor(t, theme.NameLight, 110, 40)
	wide := contextFor(t, theme.NameLight, 140, 40)

	box := ResponsiveContainer(Body("content"))
	assert.Equal(t, "$md", box.ResolveProps(narrow)["paddingHorizontal"])
	assert.Equal(t, "$lg", box.ResolveProps(medium)["paddingHorizontal"])

	props := box.ResolveProps(wide)
	assert.Equal(t, "$xl", props["paddingHorizontal"])
	assert.Equal(t, 1200, props["maxWidth"])
}

func TestResponsiveContainerCentersOnWideViewports(t *testing.T) {
	ctx := contextFor(t, theme.NameLight, 200, 60).WithParentWidth(200)

	out := ResponsiveContainer(Body("content")).ViewWithContext(ctx)
	assert.Equal(t, 200, lipgloss.Width(out))
	assert.Contains(t, out, "content")

	firstLine := strings.Split(out, "\n")[0]
	assert.True(t, strings.HasPrefix(firstLine, strings.Repeat(" ", 25)), "left gutter expected: %q", firstLine)
}

func TestContainerFillsParentWidth(t *testing.T) {
	ctx := DefaultContext().WithParentWidth(60)

	out := NewContainer(Body("hello")).ViewWithContext(ctx)
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 60, lipgloss.Width(line))
	}
	assert.Contains(t, out, "  hello")
}

func TestCardRendersBorderAndShadow(t *testing.T) {
	ctx := DefaultContext().WithParentWidth(40)

	out := NewCard(Body("inside")).WithTitle("Card").ViewWithContext(ctx)
	assert.Contains(t, out, "Card")
	assert.Contains(t, out, "inside")
	assert.Contains(t, out, lipgloss.RoundedBorder().TopLeft)
	assert.Contains(t, out, "░")
}

func TestStackGaps(t *testing.T) {
	ctx := DefaultContext()

	column := Column(NewText("a"), NewText("b")).ViewWithContext(ctx)
	assert.Equal(t, 3, lipgloss.Height(column))

	row := Row(NewText("a"), NewText("b")).ViewWithContext(ctx)
	assert.Equal(t, "a  b", row)

	tight := YStack(NewText("a"), NewText("b")).ViewWithContext(ctx)
	assert.Equal(t, "a\nb", tight)
}

func TestRowWrapsWhenNarrow(t *testing.T) {
	ctx := DefaultContext().WithParentWidth(5)

	out := XStack(NewText("aaa"), NewText("bbb")).With(Gap(tokens.XS), Wrap()).ViewWithContext(ctx)
	assert.Equal(t, 3, lipgloss.Height(out))
}

func TestInlinePropsAcceptShorthands(t *testing.T) {
	ctx := DefaultContext()

	view := View(NewText("x")).WithProps(styled.Props{"p": "$md", "bg": "$primary", "padding": "$lg"})
	props := view.ResolveProps(ctx)
	assert.Equal(t, "$lg", props["padding"])
	assert.Equal(t, "$primary", props["backgroundColor"])
	assert.NotContains(t, props, "p")
}

func TestModifiers(t *testing.T) {
	view := View().With(
		Background("$primary"),
		Padding(tokens.LG),
		BorderRadius(tokens.LG),
		Elevation(tokens.MD),
		FontSize(6),
		FontWeight(0),
	)
	props := view.Props()
	assert.Equal(t, "$primary", props["backgroundColor"])
	assert.Equal(t, "$lg", props["padding"])
	assert.Equal(t, "$lg", props["borderRadius"])
	assert.Equal(t, 2, props["elevation"])
	assert.Equal(t, "$6", props["fontSize"])
	assert.Equal(t, "$true", props["fontWeight"])
}

func TestButtonPressFeedback(t *testing.T) {
	ctx := DefaultContext()

	button := PrimaryButton("Primary Button")
	props := button.ResolveProps(ctx)
	assert.Equal(t, "$primary", props["backgroundColor"])
	assert.NotContains(t, props, "opacity")

	button.WithPressed(true)
	assert.Equal(t, 0.8, button.ResolveProps(ctx)["opacity"])
	assert.Contains(t, button.ViewWithContext(ctx), "Primary Button")
}

func TestThemesResolveDifferentColors(t *testing.T) {
	light := contextFor(t, theme.NameLight, 80, 24)
	dark := contextFor(t, theme.NameDark, 80, 24)

	card := NewCard(Body("x"))
	lightBG := card.ComputeStyle(light, card.ResolveProps(light)).GetBackground()
	darkBG := card.ComputeStyle(dark, card.ResolveProps(dark)).GetBackground()
	assert.NotEqual(t, lightBG, darkBG)
}

func TestStatusIndicator(t *testing.T) {
	ctx := DefaultContext()

	dot := NewStatusIndicator("")
	assert.Equal(t, StatusOffline, dot.Status())
	assert.Equal(t, "$neutral400", dot.ResolveProps(ctx)["backgroundColor"])

	busy := NewStatusIndicator(StatusBusy)
	assert.Equal(t, "$error", busy.ResolveProps(ctx)["backgroundColor"])

	out := busy.ViewWithContext(ctx)
	assert.Equal(t, 2, lipgloss.Width(out))
	assert.Equal(t, 1, lipgloss.Height(out))
}

func TestBadge(t *testing.T) {
	out := LabelBadge("New").ViewWithContext(DefaultContext())
	assert.Contains(t, out, "New")
}

func TestResponsivePick(t *testing.T) {
	values := Responsive[string]{media.XS: "$sm", media.MD: "$lg"}

	assert.Equal(t, "$sm", values.Pick(contextFor(t, theme.NameLight, 80, 24), "$md"))
	assert.Equal(t, "$lg", values.Pick(contextFor(t, theme.NameLight, 110, 24), "$md"))
	assert.Equal(t, "$md", values.Pick(contextFor(t, theme.NameLight, 250, 24), "$md"))
}

func TestShadowRefs(t *testing.T) {
	md := Shadow(tokens.MD)
	require.NotNil(t, md)
	assert.Equal(t, 2, md["elevation"])
	assert.Equal(t, "$shadowColor", md["shadowColor"])
	assert.Nil(t, Shadow("huge"))

	assert.Equal(t, "$md", Spacing.MD)
	assert.Equal(t, "$full", Radius.Full)
}

func TestDividerFillsAvailableWidth(t *testing.T) {
	out := HorizontalDivider().ViewWithContext(DefaultContext().WithParentWidth(12))
	assert.Equal(t, strings.Repeat("─", 12), out)
}

func TestSpacer(t *testing.T) {
	ctx := DefaultContext()
	assert.Equal(t, 2, lipgloss.Height(NewSpacer(tokens.XL).ViewWithContext(ctx)))
	assert.Equal(t, 3, lipgloss.Width(HorizontalSpacer(tokens.LG).ViewWithContext(ctx)))
}

func TestPanelHeaderReplacesPrevious(t *testing.T) {
	panel := NewPanel(Body("a")).WithTitle("First").WithTitle("Second")
	require.Len(t, panel.Children(), 2)

	out := panel.ViewWithContext(DefaultContext().WithParentWidth(40))
	assert.Contains(t, out, "Second")
	assert.NotContains(t, out, "First")
}

func TestAppliersRunAfterProps(t *testing.T) {
	text := NewText("x").WithProps(styled.Props{"fontWeight": "$7"}).WithAppliers(
		func(s lipgloss.Style, _ *config.Scope) lipgloss.Style { return s.Bold(false) },
	)
	ctx := DefaultContext()
	assert.False(t, text.ComputeStyle(ctx, text.ResolveProps(ctx)).GetBold())
}

func TestAlertTones(t *testing.T) {
	ctx := DefaultContext().WithParentWidth(60)

	alert := NewAlert("Saved")
	assert.Equal(t, AlertInfo, alert.Tone())

	for _, tone := range AlertTones() {
		out := NewAlert("Saved").WithTone(tone).WithTitle("Status").ViewWithContext(ctx)
		assert.Contains(t, out, "Saved")
		assert.Contains(t, out, "Status")
		assert.Contains(t, out, alertTones[tone].icon)
	}

	out := ErrorAlert("Failed").WithIcon("!").ViewWithContext(ctx)
	assert.Contains(t, out, "!")
	assert.NotContains(t, out, "✗")
}

func TestAlertBorderFollowsTone(t *testing.T) {
	ctx := DefaultContext()

	info := InfoAlert("x")
	errAlert := ErrorAlert("x")
	infoStyle := info.ComputeStyle(ctx, info.ResolveProps(ctx))
	errStyle := errAlert.ComputeStyle(ctx, errAlert.ResolveProps(ctx))

	assert.NotEqual(t, infoStyle.GetBorderTopForeground(), errStyle.GetBorderTopForeground())
}

func TestHeaderLevelsAndRule(t *testing.T) {
	ctx := DefaultContext().WithParentWidth(30)

	plain := NewHeader("Gallery").ViewWithContext(ctx)
	assert.Equal(t, "Gallery", strings.TrimSpace(strings.Split(plain, "\n")[0]))
	assert.NotContains(t, plain, "─")

	full := NewHeader("Gallery").WithLevel(2).WithSubtitle("every variant").WithRule().ViewWithContext(ctx)
	assert.Contains(t, full, "every variant")
	assert.Contains(t, full, "─")

	h := NewHeader("x").WithLevel(9)
	assert.Equal(t, 6, h.Level())
	assert.Equal(t, 1, NewHeader("x").WithLevel(0).Level())
}

func TestZeroContextRendersWithDefaults(t *testing.T) {
	var zero RenderContext

	assert.NotPanics(t, func() {
		out := NewCard(Body("hi")).ViewWithContext(zero)
		assert.Contains(t, out, "hi")
		assert.Equal(t, NewCard(Body("hi")).View(), out)
	})
	assert.NotPanics(t, func() {
		assert.Contains(t, NewAlert("careful").WithTone(AlertWarning).ViewWithContext(zero), "careful")
		assert.Contains(t, NewHeader("Title").WithRule().ViewWithContext(zero), "Title")
		assert.Equal(t, "  ", HorizontalSpacer(tokens.MD).ViewWithContext(zero))
		_ = HorizontalDivider().ViewWithContext(zero)
		_ = PrimaryButton("Go").ViewWithContext(zero)
	})

	filled := zero.orDefault()
	require.NotNil(t, filled.Scope)
	assert.Equal(t, theme.NameLight, filled.Scope.ThemeName())
	assert.Equal(t, DefaultContext().Active, filled.Active)
}

func TestContainerCapsToViewportWithoutParentWidth(t *testing.T) {
	ctx := contextFor(t, theme.NameLight, 200, 50)
	require.Zero(t, ctx.ParentWidth)

	long := strings.TrimSpace(strings.Repeat("word ", 80))
	out := NewContainer(Body(long)).ViewWithContext(ctx)

	limit := tokens.Cells(1200)
	assert.LessOrEqual(t, lipgloss.Width(out), limit)
	assert.Greater(t, lipgloss.Width(out), limit-10)

	narrow := contextFor(t, theme.NameLight, 100, 50)
	assert.Greater(t, lipgloss.Width(NewContainer(Body(long)).ViewWithContext(narrow)), limit,
		"a viewport narrower than the cap leaves the container unbounded")
}
