package screens

import (
	"fmt"

	"github.com/alexisbeaulieu97/zoomies/internal/ui"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/components"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

// HomeTitle is the heading shown at the top of the home screen.
const HomeTitle = "Welcome to Zoomies"

var spacingExampleKeys = []tokens.Key{
	tokens.XXXS, tokens.XXS, tokens.XS, tokens.SM, tokens.MD, tokens.LG, tokens.XL,
}

// Home is the welcome screen showing the stock components side by side.
type Home struct{}

// Title implements Screen.
func (Home) Title() string { return "Home" }

// Build implements Screen.
func (Home) Build(ctx components.RenderContext, _ Frame) ui.Renderable {
	intro := components.NewCard(
		components.YStack(
			components.Title("Tamagui Setup Complete!"),
			components.Body("This is an example of using Tamagui with proper spacing and styling. "+
				"All components use the centralized theme configuration."),
		).With(components.Gap(tokens.MD)),
	)

	colored := components.View(
		components.NewText("Colored Card with Shadow").With(
			components.Foreground("$backgroundStrong"),
			components.FontSize(6),
			components.FontWeight(6),
		),
		components.NewText(fmt.Sprintf("You can use spacing tokens like %s, %s, %s",
			components.Spacing.SM, components.Spacing.MD, components.Spacing.LG)).With(
			components.Foreground("$backgroundStrong"),
			components.FontSize(4),
			components.MarginTop(tokens.SM),
		),
	).With(
		components.Background("$primary"),
		components.Padding(tokens.LG),
		components.BorderRadius(tokens.LG),
	).WithProps(components.Shadow(tokens.MD))

	buttons := components.XStack(
		components.PrimaryButton("Primary Button"),
		components.SecondaryButton("Secondary Button"),
	).With(components.Gap(tokens.MD), components.Wrap())

	return components.NewContainer(
		components.Section(
			components.Heading(HomeTitle),
			intro,
			colored,
			buttons,
			spacingExamples(ctx),
		),
	)
}

func spacingExamples(ctx components.RenderContext) ui.Renderable {
	rows := []ui.Renderable{
		components.NewText("Spacing Examples").With(
			components.FontSize(5),
			components.FontWeight(6),
			components.Foreground("$color"),
		),
	}

	space := ctx.Scope.Config().Space()
	for _, key := range spacingExampleKeys {
		px, _ := space.Get(key)
		rows = append(rows, components.NewText(fmt.Sprintf("• %s: %dpx", key, px)).With(
			components.FontSize(3),
			components.Foreground("$colorTransparent"),
		))
	}

	return components.YStack(rows...).With(
		components.Gap(tokens.MD),
		components.Padding(tokens.LG),
		components.Background("$background"),
		components.BorderRadius(tokens.MD),
		components.Bordered(1),
		components.BorderColor("$borderColor"),
	)
}
