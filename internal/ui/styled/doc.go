// Package styled implements the "styled factory + variant table" used to declare
// pre-styled components.
//
// A Definition pairs base properties with ordered variant groups, default variant
// selections, media rules and interaction state styles. Resolve layers them into a
// flat property set:
//
//  1. base properties, from the root parent definition down to this one
//  2. each variant group in declaration order, using the selected value or the
//     declared default
//  3. media rules whose condition is active, in declaration order
//  4. hover, focus and press styles when the matching state is set
//
// Later layers overwrite earlier ones per property. Render then maps the flat set
// onto a lipgloss.Style through a Resolver that looks up "$token" references.
package styled
