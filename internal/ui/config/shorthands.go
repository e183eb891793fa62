package config

// defaultShorthands mirrors the engine's standard shorthand set.
var defaultShorthands = map[string]string{
	"ac":   "alignContent",
	"ai":   "alignItems",
	"als":  "alignSelf",
	"b":    "bottom",
	"bc":   "backgroundColor",
	"bg":   "backgroundColor",
	"bbc":  "borderBottomColor",
	"bblr": "borderBottomLeftRadius",
	"bbrr": "borderBottomRightRadius",
	"bbw":  "borderBottomWidth",
	"blc":  "borderLeftColor",
	"blw":  "borderLeftWidth",
	"boc":  "borderColor",
	"br":   "borderRadius",
	"brc":  "borderRightColor",
	"brw":  "borderRightWidth",
	"btc":  "borderTopColor",
	"btlr": "borderTopLeftRadius",
	"btrr": "borderTopRightRadius",
	"btw":  "borderTopWidth",
	"bw":   "borderWidth",
	"col":  "color",
	"dsp":  "display",
	"f":    "flex",
	"fb":   "flexBasis",
	"fd":   "flexDirection",
	"fg":   "flexGrow",
	"fs":   "flexShrink",
	"fw":   "flexWrap",
	"h":    "height",
	"jc":   "justifyContent",
	"l":    "left",
	"m":    "margin",
	"mah":  "maxHeight",
	"maw":  "maxWidth",
	"mb":   "marginBottom",
	"mih":  "minHeight",
	"miw":  "minWidth",
	"ml":   "marginLeft",
	"mr":   "marginRight",
	"mt":   "marginTop",
	"mx":   "marginHorizontal",
	"my":   "marginVertical",
	"o":    "opacity",
	"ov":   "overflow",
	"p":    "padding",
	"pb":   "paddingBottom",
	"pe":   "pointerEvents",
	"pl":   "paddingLeft",
	"pos":  "position",
	"pr":   "paddingRight",
	"pt":   "paddingTop",
	"px":   "paddingHorizontal",
	"py":   "paddingVertical",
	"r":    "right",
	"t":    "top",
	"ta":   "textAlign",
	"tt":   "textTransform",
	"w":    "width",
	"zi":   "zIndex",
}
