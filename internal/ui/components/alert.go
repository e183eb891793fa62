package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/zoomies/internal/ui"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/styled"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

// AlertTone is an Alert "tone" value.
type AlertTone string

const (
	AlertInfo    AlertTone = "info"
	AlertSuccess AlertTone = "success"
	AlertWarning AlertTone = "warning"
	AlertError   AlertTone = "error"
)

var alertTones = map[AlertTone]struct{ color, icon string }{
	AlertInfo:    {"$primary", "ℹ"},
	AlertSuccess: {"$success", "✓"},
	AlertWarning: {"$warning", "⚠"},
	AlertError:   {"$error", "✗"},
}

var alertDef = styled.Styled(viewDef, "Alert", styled.Props{
	"borderWidth":       1,
	"borderRadius":      "$sm",
	"paddingHorizontal": "$sm",
	"gap":               "$xxs",
	"backgroundColor":   "$backgroundStrong",
},
	styled.WithVariants(styled.VariantGroup{Name: "tone", Values: map[string]styled.Props{
		string(AlertInfo):    {"borderColor": alertTones[AlertInfo].color},
		string(AlertSuccess): {"borderColor": alertTones[AlertSuccess].color},
		string(AlertWarning): {"borderColor": alertTones[AlertWarning].color},
		string(AlertError):   {"borderColor": alertTones[AlertError].color},
	}}),
	styled.WithDefaults(map[string]string{"tone": string(AlertInfo)}),
)

// Alert is a bordered notification whose border and icon follow its tone.
type Alert struct {
	*Stack
	message string
	title   string
	icon    string
}

// NewAlert creates an info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{Stack: NewStack(alertDef), message: message}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.orDefault()
	tone := alertTones[a.Tone()]
	icon := a.icon
	if icon == "" {
		icon = tone.icon
	}

	children := make([]ui.Renderable, 0, 2)
	if a.title != "" {
		children = append(children, Subtitle(a.title).With(Foreground(tone.color)))
	}
	children = append(children, XStack(
		NewText(icon).With(Foreground(tone.color)),
		Body(a.message),
	).With(Gap(tokens.XS)))

	a.SetChildren(children)
	return a.Stack.ViewWithContext(ctx)
}

// WithTone sets the alert tone.
func (a *Alert) WithTone(tone AlertTone) *Alert {
	a.SetVariant("tone", string(tone))
	return a
}

// Tone returns the effective tone.
func (a *Alert) Tone() AlertTone {
	v, _ := a.Variant("tone")
	return AlertTone(v)
}

// WithIcon replaces the tone's icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a title above the message.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithStyle sets the alert style (applied to container).
func (a *Alert) WithStyle(style lipgloss.Style) *Alert {
	a.SetStyle(style)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// SetMessage updates the alert message.
func (a *Alert) SetMessage(message string) *Alert {
	a.message = message
	return a
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithTone(AlertSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithTone(AlertWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithTone(AlertError)
}

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithTone(AlertInfo)
}

// AlertTones lists the tones in declaration order.
func AlertTones() []AlertTone {
	return []AlertTone{AlertInfo, AlertSuccess, AlertWarning, AlertError}
}
