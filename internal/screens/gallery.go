package screens

import (
	"fmt"

	"github.com/alexisbeaulieu97/zoomies/internal/ui"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/components"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

// Gallery renders every example styled component in each of its variants.
type Gallery struct{}

// Title implements Screen.
func (Gallery) Title() string { return "Gallery" }

// Animated reports that the gallery pulses its animated card.
func (Gallery) Animated() bool { return true }

// Build implements Screen.
func (Gallery) Build(ctx components.RenderContext, frame Frame) ui.Renderable {
	return components.NewContainer(
		components.Section(
			components.NewHeader("Component Gallery").
				WithSubtitle("Every example component in each of its variants").
				WithRule(),
			gallerySection("Buttons", buttonMatrix()...),
			gallerySection("Inputs",
				components.NewCustomInput(components.Body("Default")),
				components.NewCustomInput(components.Body("Focused")).WithFocused(true),
				components.NewCustomInput(components.Body("Invalid")).WithError(true),
			),
			gallerySection("Responsive",
				components.ResponsiveContainer(
					components.Body(fmt.Sprintf("Active breakpoints: %v", ctx.Active)),
				),
			),
			gallerySection("Animated",
				components.NewAnimatedCard(components.Body("Hover highlight follows the quick timing")).
					WithHovered(frame.Pulse),
			),
			gallerySection("Status", statusRow()),
			gallerySection("Badges",
				components.XStack(
					components.LabelBadge("new"),
					components.LabelBadge("beta"),
				).With(components.Gap(tokens.XS)),
			),
			gallerySection("Alerts", alerts()...),
			gallerySection("Dividers",
				components.HorizontalDivider(),
				components.DashedDivider(),
				components.DottedDivider(),
			),
		),
	)
}

func gallerySection(title string, children ...ui.Renderable) ui.Renderable {
	return components.NewPanel(children...).WithTitle(title)
}

func buttonMatrix() []ui.Renderable {
	rows := make([]ui.Renderable, 0, len(components.ButtonSizes())+1)
	for _, size := range components.ButtonSizes() {
		row := components.XStack().With(components.Gap(tokens.SM), components.Wrap())
		for _, variant := range components.ButtonVariants() {
			row.Add(components.NewCustomButton(components.NewText(fmt.Sprintf("%s %s", variant, size))).
				WithVariant(variant).
				WithSize(size))
		}
		rows = append(rows, row)
	}
	rows = append(rows, components.NewCustomButton(components.NewText("disabled")).WithDisabled(true))
	return rows
}

func statusRow() ui.Renderable {
	row := components.XStack().With(components.Gap(tokens.MD), components.Wrap())
	for _, status := range components.Statuses() {
		row.Add(components.XStack(
			components.NewStatusIndicator(status),
			components.Caption(string(status)),
		).With(components.Gap(tokens.XS)))
	}
	return row
}

func alerts() []ui.Renderable {
	out := make([]ui.Renderable, 0, len(components.AlertTones()))
	for _, tone := range components.AlertTones() {
		out = append(out, components.NewAlert(fmt.Sprintf("A %s message", tone)).WithTone(tone))
	}
	return out
}
