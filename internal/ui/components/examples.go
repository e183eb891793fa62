package components

import (
	"github.com/alexisbeaulieu97/zoomies/internal/ui"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/styled"
)

// ButtonVariant is a CustomButton "variant" value.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGhost     ButtonVariant = "ghost"
)

// ButtonVariants lists the variant values in declaration order.
func ButtonVariants() []ButtonVariant {
	return []ButtonVariant{ButtonPrimary, ButtonSecondary, ButtonOutline, ButtonGhost}
}

// ButtonSize is a CustomButton "size" value.
type ButtonSize string

const (
	SizeSmall  ButtonSize = "sm"
	SizeMedium ButtonSize = "md"
	SizeLarge  ButtonSize = "lg"
)

// ButtonSizes lists the size values in declaration order.
func ButtonSizes() []ButtonSize {
	return []ButtonSize{SizeSmall, SizeMedium, SizeLarge}
}

// CustomButton is a view with variant, size and disabled options.
type CustomButton struct {
	*Stack
}

// NewCustomButton creates a button around children; defaults are primary, md.
func NewCustomButton(children ...ui.Renderable) *CustomButton {
	return &CustomButton{Stack: NewStack(customButtonDef, children...)}
}

// WithVariant selects the visual variant.
func (b *CustomButton) WithVariant(v ButtonVariant) *CustomButton {
	b.SetVariant("variant", string(v))
	return b
}

// WithSize selects the padding size.
func (b *CustomButton) WithSize(s ButtonSize) *CustomButton {
	b.SetVariant("size", string(s))
	return b
}

// WithDisabled dims the button and neutralises its hover and press styles.
func (b *CustomButton) WithDisabled(disabled bool) *CustomButton {
	b.SetVariant("disabled", styled.Bool(disabled))
	return b
}

// CustomInput is a bordered field that highlights on focus and on error.
type CustomInput struct {
	*Stack
}

// NewCustomInput creates an input around its content, e.g. a placeholder.
func NewCustomInput(children ...ui.Renderable) *CustomInput {
	return &CustomInput{Stack: NewStack(customInputDef, children...)}
}

// WithError toggles the error variant.
func (i *CustomInput) WithError(hasError bool) *CustomInput {
	i.SetVariant("error", styled.Bool(hasError))
	return i
}

// WithFocused toggles the focus state.
func (i *CustomInput) WithFocused(focused bool) *CustomInput {
	s := i.State()
	s.Focus = focused
	i.SetState(s)
	return i
}

// ResponsiveContainer widens its padding on larger viewports and centers
// itself above the md breakpoint.
func ResponsiveContainer(children ...ui.Renderable) *Stack {
	return NewStack(responsiveContainerDef, children...)
}

// AnimatedCard is a card whose border highlights on hover.
type AnimatedCard struct {
	*Stack
}

// NewAnimatedCard creates an animated card around children.
func NewAnimatedCard(children ...ui.Renderable) *AnimatedCard {
	return &AnimatedCard{Stack: NewStack(animatedCardDef, children...)}
}

// WithHovered toggles the hover state.
func (c *AnimatedCard) WithHovered(hovered bool) *AnimatedCard {
	s := c.State()
	s.Hover = hovered
	c.SetState(s)
	return c
}

// Status is a StatusIndicator "status" value.
type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
	StatusBusy    Status = "busy"
	StatusAway    Status = "away"
)

// Statuses lists the status values in declaration order.
func Statuses() []Status {
	return []Status{StatusOnline, StatusOffline, StatusBusy, StatusAway}
}

// StatusIndicator is a small colored dot; the default status is offline.
type StatusIndicator struct {
	*Stack
}

// NewStatusIndicator creates an indicator for status. An empty status keeps
// the default.
func NewStatusIndicator(status Status) *StatusIndicator {
	s := &StatusIndicator{Stack: NewStack(statusIndicatorDef)}
	if status != "" {
		s.SetVariant("status", string(status))
	}
	return s
}

// Status returns the effective status.
func (s *StatusIndicator) Status() Status {
	v, _ := s.Variant("status")
	return Status(v)
}
