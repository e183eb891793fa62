package styled

import (
	"errors"
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/fonts"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
	zerrors "github.com/alexisbeaulieu97/zoomies/pkg/errors"
)

// Validate checks every token reference, media name, animation and default
// variant declared on d and its parents against r. All problems are joined.
func Validate(d *Definition, r Resolver) error {
	if d == nil {
		return nil
	}

	var errs []error
	for _, layer := range d.layers() {
		errs = append(errs, validateProps(layer.label, layer.props, r)...)
	}

	for _, def := range d.chain() {
		for _, rule := range def.media {
			if !r.HasMedia(rule.Name) {
				errs = append(errs, zerrors.NewTokenError("media", rule.Name).In(def.name, "$"+rule.Name))
			}
		}
		if def.animation != "" && !r.Animation(def.animation) {
			errs = append(errs, zerrors.NewTokenError("animation", def.animation).In(def.name, "animation"))
		}
	}

	groups := map[string]VariantGroup{}
	for _, group := range d.Variants() {
		groups[group.Name] = group
	}
	defaults := d.DefaultVariants()
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value := defaults[name]
		group, ok := groups[name]
		if !ok {
			errs = append(errs, zerrors.NewValidationError(d.name+".defaultVariants."+name, "no such variant group", nil))
			continue
		}
		if _, ok := group.Values[value]; !ok {
			errs = append(errs, zerrors.NewValidationError(
				d.name+".defaultVariants."+name,
				fmt.Sprintf("default %q is not a declared value", value),
				nil,
			))
		}
	}

	return errors.Join(errs...)
}

func validateProps(label string, props Props, r Resolver) []error {
	var errs []error
	font, _ := FontFor(props, r)

	for _, prop := range props.Keys() {
		if isStateKey(prop) {
			continue
		}
		ref, ok := props[prop].(string)
		if !ok {
			continue
		}
		kind := KindOf(prop)
		key, isRef := tokens.ParseRef(ref)
		if kind == KindColor {
			if _, ok := r.Color(ref); !ok {
				errs = append(errs, zerrors.NewTokenError(kind.String(), ref).In(label, prop))
			}
			continue
		}
		if !isRef {
			continue
		}
		if !resolves(kind, key, font, r) {
			errs = append(errs, zerrors.NewTokenError(kind.String(), key).In(label, prop))
		}
	}
	return errs
}

func resolves(kind Kind, key string, font fonts.Font, r Resolver) bool {
	switch kind {
	case KindSpace:
		_, ok := r.Space(key)
		return ok
	case KindSize:
		_, ok := r.Size(key)
		return ok
	case KindRadius:
		_, ok := r.Radius(key)
		return ok
	case KindZIndex:
		_, ok := r.ZIndex(key)
		return ok
	case KindFontFamily:
		_, ok := r.Font(key)
		return ok
	case KindFontSize, KindFontWeight, KindLineHeight, KindLetterSpacing:
		step, ok := fonts.ParseStep(key)
		if !ok {
			return false
		}
		switch kind {
		case KindFontSize:
			_, ok = font.Size(step)
		case KindFontWeight:
			_, ok = font.Weight(step)
		case KindLineHeight:
			_, ok = font.LineHeight(step)
		default:
			_, ok = font.LetterSpacing(step)
		}
		return ok
	default:
		return true
	}
}
