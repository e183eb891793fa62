package styled

// VariantGroup is an enumerated set of override props selected by value.
type VariantGroup struct {
	Name   string
	Values map[string]Props
}

// MediaRule applies props while the named media condition is active.
type MediaRule struct {
	Name  string
	Props Props
}

// State is the per-render interaction state supplied by the caller.
type State struct {
	Hover bool
	Press bool
	Focus bool
}

// Selection carries everything a render call chooses: variant values, interaction
// state and the names of the active media conditions.
type Selection struct {
	Variants map[string]string
	State    State
	Media    []string
}

// Definition is an immutable styled component declaration.
type Definition struct {
	name      string
	parent    *Definition
	base      Props
	variants  []VariantGroup
	defaults  map[string]string
	media     []MediaRule
	hover     Props
	press     Props
	focus     Props
	animation string
}

// Option configures a Definition.
type Option func(*Definition)

// WithVariants appends variant groups in declaration order.
func WithVariants(groups ...VariantGroup) Option {
	return func(d *Definition) {
		d.variants = append(d.variants, groups...)
	}
}

// WithDefaults declares the default value per variant group.
func WithDefaults(defaults map[string]string) Option {
	return func(d *Definition) {
		for k, v := range defaults {
			d.defaults[k] = v
		}
	}
}

// WithMedia adds a responsive rule.
func WithMedia(name string, props Props) Option {
	return func(d *Definition) {
		d.media = append(d.media, MediaRule{Name: name, Props: props})
	}
}

// WithHover sets the hover style.
func WithHover(props Props) Option {
	return func(d *Definition) {
		d.hover = Merge(d.hover, props)
	}
}

// WithPress sets the press style.
func WithPress(props Props) Option {
	return func(d *Definition) {
		d.press = Merge(d.press, props)
	}
}

// WithFocus sets the focus style.
func WithFocus(props Props) Option {
	return func(d *Definition) {
		d.focus = Merge(d.focus, props)
	}
}

// WithAnimation names the timing used for state transitions.
func WithAnimation(name string) Option {
	return func(d *Definition) {
		d.animation = name
	}
}

// New declares a root definition.
func New(name string, base Props, opts ...Option) *Definition {
	return Styled(nil, name, base, opts...)
}

// Styled declares a definition extending parent. The parent's layers apply first.
func Styled(parent *Definition, name string, base Props, opts ...Option) *Definition {
	d := &Definition{
		name:     name,
		parent:   parent,
		base:     Props{},
		defaults: map[string]string{},
		hover:    Props{},
		press:    Props{},
		focus:    Props{},
	}

	for k, v := range base {
		nested, isNested := v.(Props)
		switch {
		case k == HoverStyle && isNested:
			d.hover = Merge(d.hover, nested)
		case k == PressStyle && isNested:
			d.press = Merge(d.press, nested)
		case k == FocusStyle && isNested:
			d.focus = Merge(d.focus, nested)
		default:
			d.base[k] = v
		}
	}

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the component name.
func (d *Definition) Name() string {
	return d.name
}

// Parent returns the extended definition, or nil.
func (d *Definition) Parent() *Definition {
	return d.parent
}

// Animation returns the animation name, inherited from the parent when unset.
func (d *Definition) Animation() string {
	for _, def := range d.reverseChain() {
		if def.animation != "" {
			return def.animation
		}
	}
	return ""
}

// chain returns the definitions from the root parent down to d.
func (d *Definition) chain() []*Definition {
	var out []*Definition
	for cur := d; cur != nil; cur = cur.parent {
		out = append([]*Definition{cur}, out...)
	}
	return out
}

func (d *Definition) reverseChain() []*Definition {
	var out []*Definition
	for cur := d; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}
	return out
}

// Variants returns every variant group visible to d, parents first.
func (d *Definition) Variants() []VariantGroup {
	var out []VariantGroup
	for _, def := range d.chain() {
		out = append(out, def.variants...)
	}
	return out
}

// DefaultVariants returns the effective defaults; a child's default overrides
// its parent's for the same group.
func (d *Definition) DefaultVariants() map[string]string {
	out := map[string]string{}
	for _, def := range d.chain() {
		for k, v := range def.defaults {
			out[k] = v
		}
	}
	return out
}

// SelectedVariant returns the value group resolves to under sel: the explicit
// selection when present, otherwise the declared default.
func (d *Definition) SelectedVariant(group string, sel Selection) (string, bool) {
	if v, ok := sel.Variants[group]; ok && v != "" {
		return v, true
	}
	v, ok := d.DefaultVariants()[group]
	return v, ok
}

// Resolve layers the definition for one render call.
func (d *Definition) Resolve(sel Selection) Props {
	out := Props{}
	hover, press, focus := Props{}, Props{}, Props{}

	layer := func(p Props) {
		for k, v := range p {
			nested, isNested := v.(Props)
			switch {
			case k == HoverStyle && isNested:
				mergeInto(hover, nested)
			case k == PressStyle && isNested:
				mergeInto(press, nested)
			case k == FocusStyle && isNested:
				mergeInto(focus, nested)
			default:
				out[k] = v
			}
		}
	}

	chain := d.chain()
	for _, def := range chain {
		layer(def.base)
		mergeInto(hover, def.hover)
		mergeInto(press, def.press)
		mergeInto(focus, def.focus)
	}

	defaults := d.DefaultVariants()
	for _, def := range chain {
		for _, group := range def.variants {
			value := sel.Variants[group.Name]
			if value == "" {
				value = defaults[group.Name]
			}
			if p, ok := group.Values[value]; ok {
				layer(p)
			}
		}
	}

	active := make(map[string]struct{}, len(sel.Media))
	for _, name := range sel.Media {
		active[name] = struct{}{}
	}
	for _, def := range chain {
		for _, rule := range def.media {
			if _, ok := active[rule.Name]; ok {
				layer(rule.Props)
			}
		}
	}

	if sel.State.Hover {
		mergeInto(out, hover)
	}
	if sel.State.Focus {
		mergeInto(out, focus)
	}
	if sel.State.Press {
		mergeInto(out, press)
	}
	return out
}

func mergeInto(dst, src Props) {
	for k, v := range src {
		dst[k] = v
	}
}

// layers lists every props set declared on the chain with a label, for validation.
func (d *Definition) layers() []labelledProps {
	var out []labelledProps
	for _, def := range d.chain() {
		out = append(out, labelledProps{def.name, def.base})
		out = append(out, labelledProps{def.name + ".hoverStyle", def.hover})
		out = append(out, labelledProps{def.name + ".pressStyle", def.press})
		out = append(out, labelledProps{def.name + ".focusStyle", def.focus})
		for _, group := range def.variants {
			for value, p := range group.Values {
				out = append(out, labelledProps{def.name + "." + group.Name + "." + value, p})
				for _, key := range []string{HoverStyle, PressStyle, FocusStyle} {
					if nested, ok := p[key].(Props); ok {
						out = append(out, labelledProps{def.name + "." + group.Name + "." + value + "." + key, nested})
					}
				}
			}
		}
		for _, rule := range def.media {
			out = append(out, labelledProps{def.name + ".$" + rule.Name, rule.Props})
		}
	}
	return out
}

type labelledProps struct {
	label string
	props Props
}
