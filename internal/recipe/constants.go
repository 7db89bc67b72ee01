package recipe

// Rounding precision
const (
	// AmountPrecision is the number of decimals kept on scaled amounts
	AmountPrecision = 3
	// FractionPrecision is the number of decimals used to match a fraction glyph
	FractionPrecision = 2
)

// fractionGlyphs maps a two-decimal remainder to its Unicode fraction.
// Remainders missing from the table print as plain decimals.
var fractionGlyphs = map[string]string{
	"0.25": "¼",
	"0.33": "⅓",
	"0.50": "½",
	"0.67": "⅔",
	"0.75": "¾",
}

// Placeholder syntax used in step instructions
const (
	placeholderOpen   = "{"
	placeholderClose  = "}"
	groupTokenPrefix  = "group:"
	listSeparator     = ", "
	listConjunction   = " and "
	listOxfordPrefix  = ", and "
	ingredientPattern = "%s %s %s"
)
