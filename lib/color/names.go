package color

// namedColors maps xcolor-style names to hex. The base set follows the CSS
// values the LaTeX color/xcolor packages resolve to on screen; the
// capitalized entries are the commonly used dvipsnames.
var namedColors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#ff0000",
	"green":     "#00ff00",
	"blue":      "#0000ff",
	"cyan":      "#00ffff",
	"magenta":   "#ff00ff",
	"yellow":    "#ffff00",
	"orange":    "#ffa500",
	"purple":    "#800080",
	"pink":      "#ffc0cb",
	"brown":     "#a52a2a",
	"gray":      "#808080",
	"grey":      "#808080",
	"darkgray":  "#a9a9a9",
	"darkgrey":  "#a9a9a9",
	"lightgray": "#d3d3d3",
	"lightgrey": "#d3d3d3",
	"lime":      "#00ff00",
	"olive":     "#808000",
	"teal":      "#008080",
	"navy":      "#000080",
	"maroon":    "#800000",
	"silver":    "#c0c0c0",
	"aqua":      "#00ffff",
	"fuchsia":   "#ff00ff",
	"violet":    "#ee82ee",

	"Apricot":        "#fbb982",
	"Aquamarine":     "#00b5be",
	"Bittersweet":    "#c04f17",
	"BlueGreen":      "#00b5be",
	"BlueViolet":     "#473992",
	"BrickRed":       "#b6321c",
	"BurntOrange":    "#f7921d",
	"CadetBlue":      "#74729a",
	"CarnationPink":  "#f282b4",
	"Cerulean":       "#00a2e3",
	"CornflowerBlue": "#41b0e4",
	"Dandelion":      "#fdbc42",
	"DarkOrchid":     "#a4538a",
	"Emerald":        "#00a99d",
	"ForestGreen":    "#009b55",
	"Goldenrod":      "#ffdf42",
	"GreenYellow":    "#dfe674",
	"JungleGreen":    "#00a99a",
	"Lavender":       "#f49ec4",
	"LimeGreen":      "#8dc73e",
	"Mahogany":       "#a9341f",
	"Maroon":         "#af3235",
	"Melon":          "#f89e7b",
	"MidnightBlue":   "#006795",
	"Mulberry":       "#a93c93",
	"NavyBlue":       "#006eb8",
	"OliveGreen":     "#3c8031",
	"OrangeRed":      "#ed135a",
	"Orchid":         "#af72b0",
	"Peach":          "#f7965a",
}
