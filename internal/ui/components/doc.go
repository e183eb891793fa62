// Package components provides the pre-styled terminal components built on the
// styled definitions: layout boxes, typography and a few example controls.
//
// # Rendering
//
// Every component renders with View(), which uses DefaultContext (light theme,
// 80x24 viewport), or with ViewWithContext for an explicit theme scope and
// viewport:
//
//	ctx, err := components.NewContext(config.Default(), theme.NameDark, media.FromTerminal(120, 40))
//	out := components.NewCard(components.Title("Hello")).ViewWithContext(ctx)
//
// A context holds no global state, so two themes can render side by side.
//
// # Layering
//
// A component resolves its definition for the current variants, interaction
// state and active media conditions, then layers its inline props on top.
// Inline props accept the engine shorthands ("p", "bg", "px", ...) and token
// references ("$md", "$primary"). Modifiers set the same props from typed keys:
//
//	components.View(children...).With(
//		components.Background("$primary"),
//		components.Padding(tokens.LG),
//		components.BorderRadius(tokens.LG),
//		components.Elevation(tokens.MD),
//	)
//
// StyleFunc appliers run last and see the raw lipgloss style.
//
// # Components
//
// Layout: View, YStack, XStack, Container, Section, Row, Column, Card, Panel.
// Typography: Text, Heading, Title, Subtitle, Body, Caption.
// Controls: Button, Divider, Spacer.
// Examples: Badge, BadgeText, CustomButton, CustomInput, ResponsiveContainer,
// AnimatedCard, StatusIndicator.
//
// Definitions lists every styled definition so a configuration can validate
// their token references.
package components
