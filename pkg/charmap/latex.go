package charmap

// latexTable renders the same code points as asciiTable in LaTeX
// markup. It additionally carries entries for the ASCII characters
// LaTeX treats specially; table entries are consulted before the ASCII
// passthrough, so those characters come out escaped.
var latexTable = map[rune]string{
	// quotes and guillemets
	'«': `{\guillemotleft}`,
	'»': `{\guillemotright}`,
	'‹': `{\guilsinglleft}`,
	'›': `{\guilsinglright}`,
	'‘': "`",
	'’': "'",
	'‚': `{\quotesinglbase}`,
	'“': "``",
	'”': "''",
	'„': `{\quotedblbase}`,
	'′': `$'$`,
	'″': `$''$`,

	// dashes, signs, and marks
	'—': `---`,
	'–': `--`,
	'−': `$-$`,
	'≤': `$\leq$`,
	'≥': `$\geq$`,
	'≠': `$\neq$`,
	'±': `$\pm$`,
	'×': `$\times$`,
	'÷': `$\div$`,
	'·': `$\cdot$`,
	'•': `$\bullet$`,
	'…': `{\ldots}`,
	'©': `{\textcopyright}`,
	'®': `{\textregistered}`,
	'™': `{\texttrademark}`,
	'°': `{\textdegree}`,
	'½': `{\textonehalf}`,
	'¼': `{\textonequarter}`,
	'¾': `{\textthreequarters}`,

	// accented and ligature letters
	'á': `{\'{a}}`,
	'à': "{\\`{a}}",
	'â': `{\^{a}}`,
	'ã': `{\~{a}}`,
	'ä': `{\"{a}}`,
	'å': `{\aa}`,
	'Á': `{\'{A}}`,
	'À': "{\\`{A}}",
	'Â': `{\^{A}}`,
	'Ã': `{\~{A}}`,
	'Ä': `{\"{A}}`,
	'Å': `{\AA}`,
	'æ': `{\ae}`,
	'Æ': `{\AE}`,
	'ç': `{\c{c}}`,
	'č': `{\v{c}}`,
	'ć': `{\'{c}}`,
	'Ç': `{\c{C}}`,
	'Č': `{\v{C}}`,
	'Ć': `{\'{C}}`,
	'ð': `{\dh}`,
	'Ð': `{\DH}`,
	'é': `{\'{e}}`,
	'è': "{\\`{e}}",
	'ê': `{\^{e}}`,
	'ë': `{\"{e}}`,
	'É': `{\'{E}}`,
	'È': "{\\`{E}}",
	'Ê': `{\^{E}}`,
	'Ë': `{\"{E}}`,
	'í': `{\'{\i}}`,
	'ì': "{\\`{\\i}}",
	'î': `{\^{\i}}`,
	'ï': `{\"{\i}}`,
	'Í': `{\'{I}}`,
	'Ì': "{\\`{I}}",
	'Î': `{\^{I}}`,
	'Ï': `{\"{I}}`,
	'ñ': `{\~{n}}`,
	'Ñ': `{\~{N}}`,
	'ó': `{\'{o}}`,
	'ò': "{\\`{o}}",
	'ô': `{\^{o}}`,
	'õ': `{\~{o}}`,
	'ö': `{\"{o}}`,
	'ø': `{\o}`,
	'Ó': `{\'{O}}`,
	'Ò': "{\\`{O}}",
	'Ô': `{\^{O}}`,
	'Õ': `{\~{O}}`,
	'Ö': `{\"{O}}`,
	'Ø': `{\O}`,
	'œ': `{\oe}`,
	'Œ': `{\OE}`,
	'ś': `{\'{s}}`,
	'š': `{\v{s}}`,
	'ş': `{\c{s}}`,
	'Ś': `{\'{S}}`,
	'Š': `{\v{S}}`,
	'Ş': `{\c{S}}`,
	'ß': `{\ss}`,
	'þ': `{\th}`,
	'Þ': `{\TH}`,
	'ú': `{\'{u}}`,
	'ù': "{\\`{u}}",
	'û': `{\^{u}}`,
	'ü': `{\"{u}}`,
	'Ú': `{\'{U}}`,
	'Ù': "{\\`{U}}",
	'Û': `{\^{U}}`,
	'Ü': `{\"{U}}`,
	'ý': `{\'{y}}`,
	'ÿ': `{\"{y}}`,
	'Ý': `{\'{Y}}`,
	'ź': `{\'{z}}`,
	'ż': `{\.{z}}`,
	'ž': `{\v{z}}`,
	'Ź': `{\'{Z}}`,
	'Ż': `{\.{Z}}`,
	'Ž': `{\v{Z}}`,

	// spaces and separators
	'\u00a0': `~`,
	'\u2002': `\enskip `,
	'\u2003': `\quad `,
	'\u2009': `\thinspace `,
	'\u2029': `\par `,

	// ASCII characters LaTeX treats specially; the only ASCII keys in
	// any builtin table
	'#':  `\#`,
	'$':  `\$`,
	'%':  `\%`,
	'&':  `\&`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `{\textasciitilde}`,
	'^':  `{\textasciicircum}`,
	'_':  `{\textunderscore}`,
	'\\': `{\textbackslash}`,
	'<':  `{$<$}`,
	'=':  `{$=$}`,
	'>':  `{$>$}`,
}
