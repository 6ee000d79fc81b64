package cssenv

// valueKind is a bit set of the component types a property accepts.
type valueKind uint16

const (
	kindLength valueKind = 1 << iota
	kindPercentage
	kindNumber
	kindInteger
	kindColor
	kindTime
	kindAngle
	kindString
	kindURL
	kindImage
	kindAny
)

// grammar describes the values a property accepts.
type grammar struct {
	kinds    valueKind
	keywords []string
	max      int  // components per group, 0 = unlimited
	comma    bool // comma-separated groups allowed
	slash    bool // "/" separator allowed
}

// accepts reports whether the keyword is listed for the property.
func (g grammar) accepts(keyword string) bool {
	for _, k := range g.keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

var (
	sizing      = []string{"auto", "min-content", "max-content", "fit-content"}
	flexAlign   = []string{"flex-start", "flex-end", "center", "baseline", "stretch", "start", "end", "normal", "self-start", "self-end"}
	borderStyle = []string{"none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset"}
	lineWidth   = []string{"thin", "medium", "thick"}
	overflow    = []string{"visible", "hidden", "scroll", "auto", "clip"}
)

func join(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// properties maps a CSS property key to its value grammar.
// Vendor-prefixed keys resolve to their unprefixed entry.
var properties = map[string]grammar{
	// Visual
	"color":            {kinds: kindColor, max: 1},
	"background-color": {kinds: kindColor, max: 1},
	"background":       {kinds: kindAny, comma: true, slash: true},
	"background-image": {kinds: kindImage, keywords: []string{"none"}, max: 1, comma: true},
	"opacity":          {kinds: kindNumber | kindPercentage, max: 1},
	"border":           {kinds: kindLength | kindColor, keywords: join(borderStyle, lineWidth), max: 3},
	"border-color":     {kinds: kindColor, max: 4},
	"border-style":     {keywords: borderStyle, max: 4},
	"border-width":     {kinds: kindLength, keywords: lineWidth, max: 4},
	"border-radius":    {kinds: kindLength | kindPercentage, max: 4, slash: true},
	"box-shadow":       {kinds: kindLength | kindColor, keywords: []string{"none", "inset"}, comma: true},
	"fill":             {kinds: kindColor | kindURL, keywords: []string{"none"}, max: 2},
	"stroke":           {kinds: kindColor | kindURL, keywords: []string{"none"}, max: 2},
	"stroke-width":     {kinds: kindLength | kindPercentage | kindNumber, max: 1},
	"visibility":       {keywords: []string{"visible", "hidden", "collapse"}, max: 1},
	"cursor": {
		kinds:    kindURL,
		keywords: []string{"auto", "default", "none", "pointer", "text", "move", "not-allowed", "wait", "help", "crosshair", "grab", "grabbing", "progress", "zoom-in", "zoom-out"},
		max:      1,
		comma:    true,
	},

	// Layout
	"display": {
		keywords: []string{"block", "inline", "inline-block", "flex", "inline-flex", "grid", "inline-grid", "none", "contents", "table", "table-row", "table-cell", "list-item", "flow-root", "flow"},
		max:      2,
	},
	"position":        {keywords: []string{"static", "relative", "absolute", "fixed", "sticky"}, max: 1},
	"top":             {kinds: kindLength | kindPercentage, keywords: []string{"auto"}, max: 1},
	"right":           {kinds: kindLength | kindPercentage, keywords: []string{"auto"}, max: 1},
	"bottom":          {kinds: kindLength | kindPercentage, keywords: []string{"auto"}, max: 1},
	"left":            {kinds: kindLength | kindPercentage, keywords: []string{"auto"}, max: 1},
	"width":           {kinds: kindLength | kindPercentage, keywords: sizing, max: 1},
	"height":          {kinds: kindLength | kindPercentage, keywords: sizing, max: 1},
	"min-width":       {kinds: kindLength | kindPercentage, keywords: sizing, max: 1},
	"min-height":      {kinds: kindLength | kindPercentage, keywords: sizing, max: 1},
	"max-width":       {kinds: kindLength | kindPercentage, keywords: join(sizing, []string{"none"}), max: 1},
	"max-height":      {kinds: kindLength | kindPercentage, keywords: join(sizing, []string{"none"}), max: 1},
	"margin":          {kinds: kindLength | kindPercentage, keywords: []string{"auto"}, max: 4},
	"margin-top":      {kinds: kindLength | kindPercentage, keywords: []string{"auto"}, max: 1},
	"margin-right":    {kinds: kindLength | kindPercentage, keywords: []string{"auto"}, max: 1},
	"margin-bottom":   {kinds: kindLength | kindPercentage, keywords: []string{"auto"}, max: 1},
	"margin-left":     {kinds: kindLength | kindPercentage, keywords: []string{"auto"}, max: 1},
	"padding":         {kinds: kindLength | kindPercentage, max: 4},
	"padding-top":     {kinds: kindLength | kindPercentage, max: 1},
	"padding-right":   {kinds: kindLength | kindPercentage, max: 1},
	"padding-bottom":  {kinds: kindLength | kindPercentage, max: 1},
	"padding-left":    {kinds: kindLength | kindPercentage, max: 1},
	"box-sizing":      {keywords: []string{"content-box", "border-box"}, max: 1},
	"overflow":        {keywords: overflow, max: 2},
	"overflow-x":      {keywords: overflow, max: 1},
	"overflow-y":      {keywords: overflow, max: 1},
	"z-index":         {kinds: kindInteger, keywords: []string{"auto"}, max: 1},
	"flex":            {kinds: kindNumber | kindLength | kindPercentage, keywords: []string{"auto", "none", "content"}, max: 3},
	"flex-grow":       {kinds: kindNumber, max: 1},
	"flex-shrink":     {kinds: kindNumber, max: 1},
	"flex-basis":      {kinds: kindLength | kindPercentage, keywords: join(sizing, []string{"content"}), max: 1},
	"flex-direction":  {keywords: []string{"row", "row-reverse", "column", "column-reverse"}, max: 1},
	"flex-wrap":       {keywords: []string{"nowrap", "wrap", "wrap-reverse"}, max: 1},
	"order":           {kinds: kindInteger, max: 1},
	"justify-content": {keywords: []string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly", "start", "end", "left", "right", "normal", "stretch"}, max: 1},
	"align-items":     {keywords: flexAlign, max: 1},
	"align-self":      {keywords: join([]string{"auto"}, flexAlign), max: 1},
	"align-content":   {keywords: []string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly", "stretch", "normal", "start", "end"}, max: 1},
	"gap":             {kinds: kindLength | kindPercentage, keywords: []string{"normal"}, max: 2},
	"row-gap":         {kinds: kindLength | kindPercentage, keywords: []string{"normal"}, max: 1},
	"column-gap":      {kinds: kindLength | kindPercentage, keywords: []string{"normal"}, max: 1},
	"aspect-ratio":    {kinds: kindNumber, keywords: []string{"auto"}, max: 3, slash: true},
	"vertical-align": {
		kinds:    kindLength | kindPercentage,
		keywords: []string{"baseline", "sub", "super", "text-top", "text-bottom", "middle", "top", "bottom"},
		max:      1,
	},
	"object-fit":            {keywords: []string{"fill", "contain", "cover", "none", "scale-down"}, max: 1},
	"grid-template-columns": {kinds: kindAny},
	"grid-template-rows":    {kinds: kindAny},

	// Typography
	"font-size": {
		kinds:    kindLength | kindPercentage,
		keywords: []string{"xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large", "xxx-large", "larger", "smaller"},
		max:      1,
	},
	"font-weight":     {kinds: kindNumber, keywords: []string{"normal", "bold", "bolder", "lighter"}, max: 1},
	"font-family":     {kinds: kindAny, comma: true},
	"font-style":      {keywords: []string{"normal", "italic", "oblique"}, max: 1},
	"line-height":     {kinds: kindNumber | kindLength | kindPercentage, keywords: []string{"normal"}, max: 1},
	"letter-spacing":  {kinds: kindLength, keywords: []string{"normal"}, max: 1},
	"text-align":      {keywords: []string{"left", "right", "center", "justify", "start", "end", "match-parent"}, max: 1},
	"text-decoration": {kinds: kindColor | kindLength, keywords: []string{"none", "underline", "overline", "line-through", "solid", "double", "dotted", "dashed", "wavy"}},
	"text-transform":  {keywords: []string{"none", "capitalize", "uppercase", "lowercase", "full-width"}, max: 1},
	"white-space":     {keywords: []string{"normal", "nowrap", "pre", "pre-wrap", "pre-line", "break-spaces"}, max: 1},
	"content":         {kinds: kindString | kindURL | kindAny, keywords: []string{"none", "normal"}},

	// Effects
	"transform":           {kinds: kindAny, keywords: []string{"none"}},
	"transition":          {kinds: kindAny, comma: true},
	"transition-duration": {kinds: kindTime, max: 1, comma: true},
	"animation":           {kinds: kindAny, comma: true},
	"animation-duration":  {kinds: kindTime, max: 1, comma: true},
	"filter":              {kinds: kindAny, keywords: []string{"none"}},
	"pointer-events":      {keywords: []string{"auto", "none", "visiblepainted", "visiblefill", "visiblestroke", "visible", "painted", "fill", "stroke", "all"}, max: 1},
	"user-select":         {keywords: []string{"auto", "none", "text", "all", "contain"}, max: 1},
	"appearance":          {keywords: []string{"none", "auto", "menulist-button", "textfield"}, max: 1},
}

// cssWideKeywords are valid for every property.
var cssWideKeywords = map[string]bool{
	"inherit":      true,
	"initial":      true,
	"unset":        true,
	"revert":       true,
	"revert-layer": true,
}

var lengthUnits = map[string]bool{
	"px": true, "em": true, "rem": true, "ex": true, "ch": true,
	"vw": true, "vh": true, "vmin": true, "vmax": true,
	"svw": true, "svh": true, "lvw": true, "lvh": true, "dvw": true, "dvh": true,
	"cm": true, "mm": true, "q": true, "in": true, "pt": true, "pc": true,
	"fr": true,
}

var timeUnits = map[string]bool{"s": true, "ms": true}

var angleUnits = map[string]bool{"deg": true, "rad": true, "grad": true, "turn": true}

var colorFunctions = map[string]bool{
	"rgb": true, "rgba": true, "hsl": true, "hsla": true, "hwb": true,
	"lab": true, "lch": true, "oklab": true, "oklch": true, "color": true, "color-mix": true,
}

var mathFunctions = map[string]bool{
	"calc": true, "min": true, "max": true, "clamp": true,
}

var imageFunctions = map[string]bool{
	"url": true, "image-set": true,
	"linear-gradient": true, "radial-gradient": true, "conic-gradient": true,
	"repeating-linear-gradient": true, "repeating-radial-gradient": true, "repeating-conic-gradient": true,
}

var namedColors = map[string]bool{
	"transparent": true, "currentcolor": true,
	"black": true, "white": true, "red": true, "green": true, "blue": true,
	"yellow": true, "orange": true, "purple": true, "pink": true, "brown": true,
	"gray": true, "grey": true, "silver": true, "gold": true, "navy": true,
	"teal": true, "olive": true, "maroon": true, "lime": true, "aqua": true,
	"fuchsia": true, "cyan": true, "magenta": true, "indigo": true, "violet": true,
	"crimson": true, "coral": true, "salmon": true, "tomato": true, "khaki": true,
	"beige": true, "ivory": true, "lavender": true, "turquoise": true, "tan": true,
	"chocolate": true, "firebrick": true, "darkgray": true, "darkgrey": true,
	"lightgray": true, "lightgrey": true, "dimgray": true, "dimgrey": true,
	"darkblue": true, "lightblue": true, "skyblue": true, "steelblue": true,
	"royalblue": true, "darkgreen": true, "lightgreen": true, "seagreen": true,
	"forestgreen": true, "darkred": true, "orangered": true, "hotpink": true,
	"deeppink": true, "rebeccapurple": true, "slategray": true, "slategrey": true,
	"whitesmoke": true, "gainsboro": true, "aliceblue": true, "mintcream": true,
}
