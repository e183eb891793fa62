package components

import (
	"github.com/alexisbeaulieu97/zoomies/internal/ui/media"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/styled"
)

// Primitives the pre-styled components extend.
var (
	viewDef   = styled.New("View", styled.Props{"flexDirection": "column"})
	yStackDef = styled.New("YStack", styled.Props{"flexDirection": "column"})
	xStackDef = styled.New("XStack", styled.Props{"flexDirection": "row"})
	textDef   = styled.New("Text", styled.Props{"fontFamily": "$body", "color": "$color"})

	buttonDef = styled.New("Button", styled.Props{
		"backgroundColor":   "$background",
		"color":             "$color",
		"borderWidth":       1,
		"borderColor":       "$borderColor",
		"borderRadius":      "$md",
		"paddingHorizontal": "$md",
		"paddingVertical":   "$xs",
		styled.HoverStyle: styled.Props{
			"backgroundColor": "$backgroundHover",
			"borderColor":     "$borderColorHover",
		},
		styled.PressStyle: styled.Props{
			"backgroundColor": "$backgroundPress",
			"borderColor":     "$borderColorPress",
		},
		styled.FocusStyle: styled.Props{
			"borderColor": "$borderColorFocus",
		},
	})

	dividerDef = styled.New("Divider", styled.Props{"color": "$borderColor"})
	spacerDef  = styled.New("Spacer", styled.Props{"size": "$md"})
)

// Layout wrappers.
var (
	containerDef = styled.Styled(viewDef, "Container", styled.Props{
		"width":             "100%",
		"maxWidth":          1200,
		"marginHorizontal":  "auto",
		"paddingHorizontal": "$md",
	})

	cardDef = styled.Styled(viewDef, "Card", styled.Props{
		"backgroundColor": "$backgroundStrong",
		"borderRadius":    "$lg",
		"padding":         "$lg",
		"borderWidth":     1,
		"borderColor":     "$borderColor",
		"shadowColor":     "$shadowColor",
		"shadowOffset":    shadowOffset(0, 2),
		"shadowOpacity":   0.1,
		"shadowRadius":    8,
	})

	sectionDef = styled.Styled(yStackDef, "Section", styled.Props{
		"gap":             "$md",
		"paddingVertical": "$lg",
	})

	rowDef = styled.Styled(xStackDef, "Row", styled.Props{
		"gap":        "$md",
		"alignItems": "center",
	})

	columnDef = styled.Styled(yStackDef, "Column", styled.Props{
		"gap": "$md",
	})

	panelDef = styled.Styled(yStackDef, "Panel", styled.Props{
		"gap":             "$md",
		"padding":         "$lg",
		"backgroundColor": "$background",
		"borderRadius":    "$md",
		"borderWidth":     1,
		"borderColor":     "$borderColor",
	})
)

// Typography wrappers.
var (
	headingDef = styled.Styled(textDef, "Heading", styled.Props{
		"fontFamily": "$heading",
		"fontSize":   "$9",
		"fontWeight": "$7",
		"color":      "$color",
		"lineHeight": "$9",
	})

	titleDef = styled.Styled(textDef, "Title", styled.Props{
		"fontFamily": "$heading",
		"fontSize":   "$7",
		"fontWeight": "$6",
		"color":      "$color",
		"lineHeight": "$7",
	})

	subtitleDef = styled.Styled(textDef, "Subtitle", styled.Props{
		"fontFamily": "$body",
		"fontSize":   "$5",
		"fontWeight": "$6",
		"color":      "$color",
		"lineHeight": "$5",
	})

	bodyDef = styled.Styled(textDef, "Body", styled.Props{
		"fontFamily": "$body",
		"fontSize":   "$4",
		"fontWeight": "$4",
		"color":      "$color",
		"lineHeight": "$4",
	})

	captionDef = styled.Styled(textDef, "Caption", styled.Props{
		"fontFamily": "$body",
		"fontSize":   "$2",
		"fontWeight": "$4",
		"color":      "$colorTransparent",
		"lineHeight": "$2",
	})
)

// Example styled components.
var (
	badgeDef = styled.Styled(viewDef, "Badge", styled.Props{
		"paddingHorizontal": "$sm",
		"paddingVertical":   "$xxs",
		"borderRadius":      "$full",
		"backgroundColor":   "$primary",
		"alignSelf":         "flex-start",
	})

	badgeTextDef = styled.Styled(textDef, "BadgeText", styled.Props{
		"fontSize":   "$2",
		"fontWeight": "$6",
		"color":      "$backgroundStrong",
	})

	customButtonDef = styled.Styled(viewDef, "CustomButton", styled.Props{
		"borderRadius":   "$md",
		"justifyContent": "center",
		"alignItems":     "center",
		"cursor":         "pointer",
		styled.HoverStyle: styled.Props{
			"opacity": 0.9,
		},
		styled.PressStyle: styled.Props{
			"opacity": 0.8,
			"scale":   0.98,
		},
	},
		styled.WithVariants(
			styled.VariantGroup{Name: "variant", Values: map[string]styled.Props{
				string(ButtonPrimary):   {"backgroundColor": "$primary"},
				string(ButtonSecondary): {"backgroundColor": "$secondary"},
				string(ButtonOutline): {
					"backgroundColor": "transparent",
					"borderWidth":     2,
					"borderColor":     "$primary",
				},
				string(ButtonGhost): {"backgroundColor": "transparent"},
			}},
			styled.VariantGroup{Name: "size", Values: map[string]styled.Props{
				string(SizeSmall):  {"paddingHorizontal": "$sm", "paddingVertical": "$xs"},
				string(SizeMedium): {"paddingHorizontal": "$md", "paddingVertical": "$sm"},
				string(SizeLarge):  {"paddingHorizontal": "$lg", "paddingVertical": "$md"},
			}},
			styled.VariantGroup{Name: "disabled", Values: map[string]styled.Props{
				"true": {
					"opacity":         0.5,
					"cursor":          "not-allowed",
					styled.HoverStyle: styled.Props{"opacity": 0.5},
					styled.PressStyle: styled.Props{"opacity": 0.5, "scale": 1},
				},
			}},
		),
		styled.WithDefaults(map[string]string{
			"variant": string(ButtonPrimary),
			"size":    string(SizeMedium),
		}),
	)

	customInputDef = styled.Styled(viewDef, "CustomInput", styled.Props{
		"borderWidth":       1,
		"borderColor":       "$borderColor",
		"borderRadius":      "$md",
		"paddingHorizontal": "$md",
		"paddingVertical":   "$sm",
		"backgroundColor":   "$backgroundStrong",
		styled.FocusStyle: styled.Props{
			"borderColor": "$primary",
			"borderWidth": 2,
		},
	},
		styled.WithVariants(styled.VariantGroup{Name: "error", Values: map[string]styled.Props{
			"true": {"borderColor": "$error"},
		}}),
	)

	responsiveContainerDef = styled.Styled(viewDef, "ResponsiveContainer", styled.Props{
		"width":             "100%",
		"paddingHorizontal": "$md",
	},
		styled.WithMedia(media.GtSM, styled.Props{
			"paddingHorizontal": "$lg",
		}),
		styled.WithMedia(media.GtMD, styled.Props{
			"paddingHorizontal": "$xl",
			"maxWidth":          1200,
			"marginHorizontal":  "auto",
		}),
	)

	animatedCardDef = styled.Styled(viewDef, "AnimatedCard", styled.Props{
		"backgroundColor": "$backgroundStrong",
		"borderRadius":    "$lg",
		"padding":         "$lg",
		"borderWidth":     1,
		"borderColor":     "$borderColor",
		styled.HoverStyle: styled.Props{
			"scale":       1.02,
			"borderColor": "$primary",
		},
		styled.PressStyle: styled.Props{
			"scale": 0.98,
		},
	}, styled.WithAnimation("quick"))

	statusIndicatorDef = styled.Styled(viewDef, "StatusIndicator", styled.Props{
		"width":        12,
		"height":       12,
		"borderRadius": "$full",
	},
		styled.WithVariants(styled.VariantGroup{Name: "status", Values: map[string]styled.Props{
			string(StatusOnline):  {"backgroundColor": "$primary500"},
			string(StatusOffline): {"backgroundColor": "$neutral400"},
			string(StatusBusy):    {"backgroundColor": "$error"},
			string(StatusAway):    {"backgroundColor": "$accent500"},
		}}),
		styled.WithDefaults(map[string]string{"status": string(StatusOffline)}),
	)
)

var definitions = []*styled.Definition{
	viewDef, yStackDef, xStackDef, textDef, buttonDef, dividerDef, spacerDef,
	containerDef, cardDef, sectionDef, rowDef, columnDef, panelDef,
	headingDef, titleDef, subtitleDef, bodyDef, captionDef,
	badgeDef, badgeTextDef, customButtonDef, customInputDef,
	responsiveContainerDef, animatedCardDef, statusIndicatorDef,
	alertDef, headerDef,
}

// Definitions returns every styled definition the package registers, for
// validation against a configuration.
func Definitions() []*styled.Definition {
	out := make([]*styled.Definition, len(definitions))
	copy(out, definitions)
	return out
}

// DefinitionFor looks up a registered definition by component name.
func DefinitionFor(name string) (*styled.Definition, bool) {
	for _, def := range definitions {
		if def.Name() == name {
			return def, true
		}
	}
	return nil, false
}
