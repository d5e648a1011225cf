package charmap

// asciiTable folds typographic punctuation, signs, and accented Latin
// letters to plain ASCII equivalents. Every replacement is pure ASCII.
var asciiTable = map[rune]string{
	// quotes and guillemets
	'«': "<<",
	'»': ">>",
	'‹': "<",
	'›': ">",
	'‘': "'",
	'’': "'",
	'‚': ",",
	'“': `"`,
	'”': `"`,
	'„': `"`,
	'′': "'",
	'″': `"`,

	// dashes, signs, and marks
	'—': "-",
	'–': "-",
	'−': "-",
	'≤': "<=",
	'≥': ">=",
	'≠': "!=",
	'±': "+/-",
	'×': "x",
	'÷': "/",
	'·': "*",
	'•': "*",
	'…': "...",
	'©': "(c)",
	'®': "(r)",
	'™': "(tm)",
	'°': " deg",
	'½': "1/2",
	'¼': "1/4",
	'¾': "3/4",

	// accented and ligature letters
	'á': "a",
	'à': "a",
	'â': "a",
	'ã': "a",
	'ä': "a",
	'å': "a",
	'Á': "A",
	'À': "A",
	'Â': "A",
	'Ã': "A",
	'Ä': "A",
	'Å': "A",
	'æ': "ae",
	'Æ': "AE",
	'ç': "c",
	'č': "c",
	'ć': "c",
	'Ç': "C",
	'Č': "C",
	'Ć': "C",
	'ð': "d",
	'Ð': "D",
	'é': "e",
	'è': "e",
	'ê': "e",
	'ë': "e",
	'É': "E",
	'È': "E",
	'Ê': "E",
	'Ë': "E",
	'í': "i",
	'ì': "i",
	'î': "i",
	'ï': "i",
	'Í': "I",
	'Ì': "I",
	'Î': "I",
	'Ï': "I",
	'ñ': "n",
	'Ñ': "N",
	'ó': "o",
	'ò': "o",
	'ô': "o",
	'õ': "o",
	'ö': "o",
	'ø': "o",
	'Ó': "O",
	'Ò': "O",
	'Ô': "O",
	'Õ': "O",
	'Ö': "O",
	'Ø': "O",
	'œ': "oe",
	'Œ': "OE",
	'ś': "s",
	'š': "s",
	'ş': "s",
	'Ś': "S",
	'Š': "S",
	'Ş': "S",
	'ß': "ss",
	'þ': "th",
	'Þ': "Th",
	'ú': "u",
	'ù': "u",
	'û': "u",
	'ü': "u",
	'Ú': "U",
	'Ù': "U",
	'Û': "U",
	'Ü': "U",
	'ý': "y",
	'ÿ': "y",
	'Ý': "Y",
	'ź': "z",
	'ż': "z",
	'ž': "z",
	'Ź': "Z",
	'Ż': "Z",
	'Ž': "Z",

	// spaces and separators
	'\u00a0': " ",  // no-break space
	'\u2002': " ",  // en space
	'\u2003': " ",  // em space
	'\u2009': " ",  // thin space
	'\u2029': "\n", // paragraph separator
}
