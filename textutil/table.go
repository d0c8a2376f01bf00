package textutil

// transliterations maps characters and character sequences to plain ASCII.
// Keys may span several runes; Normalize always prefers the longest match.
var transliterations = map[string]string{
	// Latin-1 Supplement
	"À": "A", "Á": "A", "Â": "A", "Ã": "A", "Ä": "A", "Å": "A",
	"Æ": "AE", "Ç": "C", "È": "E", "É": "E", "Ê": "E", "Ë": "E",
	"Ì": "I", "Í": "I", "Î": "I", "Ï": "I", "Ð": "D", "Ñ": "N",
	"Ò": "O", "Ó": "O", "Ô": "O", "Õ": "O", "Ö": "O", "Ø": "O",
	"Ù": "U", "Ú": "U", "Û": "U", "Ü": "U", "Ý": "Y", "Þ": "TH",
	"ß": "ss", "à": "a", "á": "a", "â": "a", "ã": "a", "ä": "a",
	"å": "a", "æ": "ae", "ç": "c", "è": "e", "é": "e", "ê": "e",
	"ë": "e", "ì": "i", "í": "i", "î": "i", "ï": "i", "ð": "d",
	"ñ": "n", "ò": "o", "ó": "o", "ô": "o", "õ": "o", "ö": "o",
	"ø": "o", "ù": "u", "ú": "u", "û": "u", "ü": "u", "ý": "y",
	"þ": "th", "ÿ": "y",
	// Latin Extended-A
	"Ā": "A", "ā": "a", "Ă": "A", "ă": "a", "Ą": "A", "ą": "a",
	"Ć": "C", "ć": "c", "Ĉ": "C", "ĉ": "c", "Ċ": "C", "ċ": "c",
	"Č": "C", "č": "c", "Ď": "D", "ď": "d", "Đ": "D", "đ": "d",
	"Ē": "E", "ē": "e", "Ĕ": "E", "ĕ": "e", "Ė": "E", "ė": "e",
	"Ę": "E", "ę": "e", "Ě": "E", "ě": "e", "Ĝ": "G", "ĝ": "g",
	"Ğ": "G", "ğ": "g", "Ġ": "G", "ġ": "g", "Ģ": "G", "ģ": "g",
	"Ĥ": "H", "ĥ": "h", "Ħ": "H", "ħ": "h", "Ĩ": "I", "ĩ": "i",
	"Ī": "I", "ī": "i", "Ĭ": "I", "ĭ": "i", "Į": "I", "į": "i",
	"İ": "I", "ı": "i", "Ĳ": "IJ", "ĳ": "ij", "Ĵ": "J", "ĵ": "j",
	"Ķ": "K", "ķ": "k", "ĸ": "k", "Ĺ": "L", "ĺ": "l", "Ļ": "L",
	"ļ": "l", "Ľ": "L", "ľ": "l", "Ŀ": "L", "ŀ": "l", "Ł": "L",
	"ł": "l", "Ń": "N", "ń": "n", "Ņ": "N", "ņ": "n", "Ň": "N",
	"ň": "n", "ŉ": "n", "Ŋ": "N", "ŋ": "n", "Ō": "O", "ō": "o",
	"Ŏ": "O", "ŏ": "o", "Ő": "O", "ő": "o", "Œ": "OE", "œ": "oe",
	"Ŕ": "R", "ŕ": "r", "Ŗ": "R", "ŗ": "r", "Ř": "R", "ř": "r",
	"Ś": "S", "ś": "s", "Ŝ": "S", "ŝ": "s", "Ş": "S", "ş": "s",
	"Š": "S", "š": "s", "Ţ": "T", "ţ": "t", "Ť": "T", "ť": "t",
	"Ŧ": "T", "ŧ": "t", "Ũ": "U", "ũ": "u", "Ū": "U", "ū": "u",
	"Ŭ": "U", "ŭ": "u", "Ů": "U", "ů": "u", "Ű": "U", "ű": "u",
	"Ų": "U", "ų": "u", "Ŵ": "W", "ŵ": "w", "Ŷ": "Y", "ŷ": "y",
	"Ÿ": "Y", "Ź": "Z", "ź": "z", "Ż": "Z", "ż": "z", "Ž": "Z",
	"ž": "z", "ſ": "s",
	// Latin Extended-B
	"ƀ": "b", "Ɓ": "B", "Ƃ": "B", "ƃ": "b", "Ƈ": "C", "ƈ": "c",
	"Ɖ": "D", "Ɗ": "D", "Ƌ": "D", "ƌ": "d", "Ƒ": "F", "ƒ": "f",
	"Ɠ": "G", "Ɨ": "I", "Ƙ": "K", "ƙ": "k", "ƚ": "l", "Ɲ": "N",
	"ƞ": "n", "Ơ": "O", "ơ": "o", "Ƣ": "OI", "ƣ": "oi", "Ƥ": "P",
	"ƥ": "p", "ƫ": "t", "Ƭ": "T", "ƭ": "t", "Ʈ": "T", "Ư": "U",
	"ư": "u", "Ʋ": "V", "Ƴ": "Y", "ƴ": "y", "Ƶ": "Z", "ƶ": "z",
	"Ǆ": "DZ", "ǅ": "Dz", "ǆ": "dz", "Ǉ": "LJ", "ǈ": "Lj", "ǉ": "lj",
	"Ǌ": "NJ", "ǋ": "Nj", "ǌ": "nj", "Ǎ": "A", "ǎ": "a", "Ǐ": "I",
	"ǐ": "i", "Ǒ": "O", "ǒ": "o", "Ǔ": "U", "ǔ": "u", "Ǖ": "U",
	"ǖ": "u", "Ǘ": "U", "ǘ": "u", "Ǚ": "U", "ǚ": "u", "Ǜ": "U",
	"ǜ": "u", "Ǟ": "A", "ǟ": "a", "Ǡ": "A", "ǡ": "a", "Ǣ": "AE",
	"ǣ": "ae", "Ǥ": "G", "ǥ": "g", "Ǧ": "G", "ǧ": "g", "Ǩ": "K",
	"ǩ": "k", "Ǫ": "O", "ǫ": "o", "Ǭ": "O", "ǭ": "o", "ǰ": "j",
	"Ǳ": "DZ", "ǲ": "Dz", "ǳ": "dz", "Ǵ": "G", "ǵ": "g", "Ǹ": "N",
	"ǹ": "n", "Ǻ": "A", "ǻ": "a", "Ǽ": "AE", "ǽ": "ae", "Ǿ": "O",
	"ǿ": "o", "Ȁ": "A", "ȁ": "a", "Ȃ": "A", "ȃ": "a", "Ȅ": "E",
	"ȅ": "e", "Ȇ": "E", "ȇ": "e", "Ȉ": "I", "ȉ": "i", "Ȋ": "I",
	"ȋ": "i", "Ȍ": "O", "ȍ": "o", "Ȏ": "O", "ȏ": "o", "Ȑ": "R",
	"ȑ": "r", "Ȓ": "R", "ȓ": "r", "Ȕ": "U", "ȕ": "u", "Ȗ": "U",
	"ȗ": "u", "Ș": "S", "ș": "s", "Ț": "T", "ț": "t", "Ȟ": "H",
	"ȟ": "h", "Ȥ": "Z", "ȥ": "z", "Ȧ": "A", "ȧ": "a", "Ȩ": "E",
	"ȩ": "e", "Ȫ": "O", "ȫ": "o", "Ȭ": "O", "ȭ": "o", "Ȯ": "O",
	"ȯ": "o", "Ȱ": "O", "ȱ": "o", "Ȳ": "Y", "ȳ": "y",
	// Latin Extended Additional
	"Ḃ": "B", "ḃ": "b", "Ḋ": "D", "ḋ": "d", "Ḍ": "D", "ḍ": "d",
	"Ḟ": "F", "ḟ": "f", "Ḣ": "H", "ḣ": "h", "Ḥ": "H", "ḥ": "h",
	"Ḱ": "K", "ḱ": "k", "Ḳ": "K", "ḳ": "k", "Ḷ": "L", "ḷ": "l",
	"Ṁ": "M", "ṁ": "m", "Ṃ": "M", "ṃ": "m", "Ṅ": "N", "ṅ": "n",
	"Ṇ": "N", "ṇ": "n", "Ṗ": "P", "ṗ": "p", "Ṙ": "R", "ṙ": "r",
	"Ṛ": "R", "ṛ": "r", "Ṡ": "S", "ṡ": "s", "Ṣ": "S", "ṣ": "s",
	"Ṫ": "T", "ṫ": "t", "Ṭ": "T", "ṭ": "t", "Ṽ": "V", "ṽ": "v",
	"Ẁ": "W", "ẁ": "w", "Ẃ": "W", "ẃ": "w", "Ẅ": "W", "ẅ": "w",
	"Ẍ": "X", "ẍ": "x", "Ẏ": "Y", "ẏ": "y", "Ẑ": "Z", "ẑ": "z",
	"Ẓ": "Z", "ẓ": "z", "ẖ": "h", "ẗ": "t", "ẘ": "w", "ẙ": "y",
	"ẞ": "SS", "Ạ": "A", "ạ": "a", "Ả": "A", "ả": "a", "Ấ": "A",
	"ấ": "a", "Ầ": "A", "ầ": "a", "Ẩ": "A", "ẩ": "a", "Ẫ": "A",
	"ẫ": "a", "Ậ": "A", "ậ": "a", "Ắ": "A", "ắ": "a", "Ằ": "A",
	"ằ": "a", "Ẳ": "A", "ẳ": "a", "Ẵ": "A", "ẵ": "a", "Ặ": "A",
	"ặ": "a", "Ẹ": "E", "ẹ": "e", "Ẻ": "E", "ẻ": "e", "Ẽ": "E",
	"ẽ": "e", "Ế": "E", "ế": "e", "Ề": "E", "ề": "e", "Ể": "E",
	"ể": "e", "Ễ": "E", "ễ": "e", "Ệ": "E", "ệ": "e", "Ỉ": "I",
	"ỉ": "i", "Ị": "I", "ị": "i", "Ọ": "O", "ọ": "o", "Ỏ": "O",
	"ỏ": "o", "Ố": "O", "ố": "o", "Ồ": "O", "ồ": "o", "Ổ": "O",
	"ổ": "o", "Ỗ": "O", "ỗ": "o", "Ộ": "O", "ộ": "o", "Ớ": "O",
	"ớ": "o", "Ờ": "O", "ờ": "o", "Ở": "O", "ở": "o", "Ỡ": "O",
	"ỡ": "o", "Ợ": "O", "ợ": "o", "Ụ": "U", "ụ": "u", "Ủ": "U",
	"ủ": "u", "Ứ": "U", "ứ": "u", "Ừ": "U", "ừ": "u", "Ử": "U",
	"ử": "u", "Ữ": "U", "ữ": "u", "Ự": "U", "ự": "u", "Ỳ": "Y",
	"ỳ": "y", "Ỵ": "Y", "ỵ": "y", "Ỷ": "Y", "ỷ": "y", "Ỹ": "Y",
	"ỹ": "y",
	// Ligatures and presentation forms
	"ﬀ": "ff", "ﬁ": "fi", "ﬂ": "fl", "ﬃ": "ffi", "ﬄ": "ffl", "ﬅ": "st",
	"ﬆ": "st", "Ꜳ": "AA", "ꜳ": "aa", "Ꜵ": "AO", "ꜵ": "ao", "Ꜷ": "AU",
	"ꜷ": "au", "Ꜹ": "AV", "ꜹ": "av", "Ꜽ": "AY", "ꜽ": "ay", "Ꝏ": "OO",
	"ꝏ": "oo", "ᵫ": "ue", "ꭣ": "uo",
	// Cyrillic
	"А": "A", "Б": "B", "В": "V", "Г": "G", "Д": "D", "Е": "E",
	"Ё": "Yo", "Ж": "Zh", "З": "Z", "И": "I", "Й": "Y", "К": "K",
	"Л": "L", "М": "M", "Н": "N", "О": "O", "П": "P", "Р": "R",
	"С": "S", "Т": "T", "У": "U", "Ф": "F", "Х": "Kh", "Ц": "Ts",
	"Ч": "Ch", "Ш": "Sh", "Щ": "Shch", "Ы": "Y", "Э": "E", "Ю": "Yu",
	"Я": "Ya", "а": "a", "б": "b", "в": "v", "г": "g", "д": "d",
	"е": "e", "ё": "yo", "ж": "zh", "з": "z", "и": "i", "й": "y",
	"к": "k", "л": "l", "м": "m", "н": "n", "о": "o", "п": "p",
	"р": "r", "с": "s", "т": "t", "у": "u", "ф": "f", "х": "kh",
	"ц": "ts", "ч": "ch", "ш": "sh", "щ": "shch", "ы": "y", "э": "e",
	"ю": "yu", "я": "ya", "Є": "Ye", "є": "ye", "І": "I", "і": "i",
	"Ї": "Yi", "ї": "yi", "Ґ": "G", "ґ": "g", "Ў": "U", "ў": "u",
	"Ђ": "Dj", "ђ": "dj", "Ј": "J", "ј": "j", "Љ": "Lj", "љ": "lj",
	"Њ": "Nj", "њ": "nj", "Ћ": "C", "ћ": "c", "Џ": "Dz", "џ": "dz",
	"Ѓ": "Gj", "ѓ": "gj", "Ќ": "Kj", "ќ": "kj", "Ѕ": "Dz", "ѕ": "dz",
	"Ъ": "", "ъ": "", "Ь": "", "ь": "",
	// Greek
	"Α": "A", "Β": "B", "Γ": "G", "Δ": "D", "Ε": "E", "Ζ": "Z",
	"Η": "I", "Θ": "Th", "Ι": "I", "Κ": "K", "Λ": "L", "Μ": "M",
	"Ν": "N", "Ξ": "X", "Ο": "O", "Π": "P", "Ρ": "R", "Σ": "S",
	"Τ": "T", "Υ": "Y", "Φ": "F", "Χ": "Ch", "Ψ": "Ps", "Ω": "O",
	"α": "a", "β": "b", "γ": "g", "δ": "d", "ε": "e", "ζ": "z",
	"η": "i", "θ": "th", "ι": "i", "κ": "k", "λ": "l", "μ": "m",
	"ν": "n", "ξ": "x", "ο": "o", "π": "p", "ρ": "r", "σ": "s",
	"ς": "s", "τ": "t", "υ": "y", "φ": "f", "χ": "ch", "ψ": "ps",
	"ω": "o", "Ά": "A", "Έ": "E", "Ή": "I", "Ί": "I", "Ό": "O",
	"Ύ": "Y", "Ώ": "O", "ά": "a", "έ": "e", "ή": "i", "ί": "i",
	"ό": "o", "ύ": "y", "ώ": "o", "Ϊ": "I", "ϊ": "i", "Ϋ": "Y",
	"ϋ": "y", "ΐ": "i", "ΰ": "y",
	// Typographic punctuation, spaces and symbols
	"‘": "'", "’": "'", "‚": "'", "‛": "'", "′": "'", "“": "\"",
	"”": "\"", "„": "\"", "‟": "\"", "″": "\"", "«": "\"", "»": "\"",
	"‹": "'", "›": "'", "‐": "-", "‑": "-", "‒": "-", "–": "-",
	"—": "-", "―": "-", "−": "-", "…": "...", "•": "*", "·": ".",
	"\u00a0": " ", "\u2002": " ", "\u2003": " ", "\u2009": " ", "\u202f": " ", "©": "(c)",
	"®": "(r)", "™": "(tm)", "¼": "1/4", "½": "1/2", "¾": "3/4", "×": "x",
	"÷": "/", "¹": "1", "²": "2", "³": "3",
	// Decomposed sequences (base letter followed by a combining mark)
	"A\u0300": "A", "A\u0301": "A", "A\u0302": "A", "A\u0303": "A", "A\u0308": "A", "E\u0300": "E",
	"E\u0301": "E", "E\u0302": "E", "E\u0303": "E", "E\u0308": "E", "I\u0300": "I", "I\u0301": "I",
	"I\u0302": "I", "I\u0303": "I", "I\u0308": "I", "O\u0300": "O", "O\u0301": "O", "O\u0302": "O",
	"O\u0303": "O", "O\u0308": "O", "U\u0300": "U", "U\u0301": "U", "U\u0302": "U", "U\u0303": "U",
	"U\u0308": "U", "a\u0300": "a", "a\u0301": "a", "a\u0302": "a", "a\u0303": "a", "a\u0308": "a",
	"e\u0300": "e", "e\u0301": "e", "e\u0302": "e", "e\u0303": "e", "e\u0308": "e", "i\u0300": "i",
	"i\u0301": "i", "i\u0302": "i", "i\u0303": "i", "i\u0308": "i", "o\u0300": "o", "o\u0301": "o",
	"o\u0302": "o", "o\u0303": "o", "o\u0308": "o", "u\u0300": "u", "u\u0301": "u", "u\u0302": "u",
	"u\u0303": "u", "u\u0308": "u", "A\u030a": "A", "a\u030a": "a", "C\u0327": "C", "c\u0327": "c",
	"N\u0303": "N", "n\u0303": "n", "Y\u0301": "Y", "y\u0301": "y", "y\u0308": "y", "C\u030c": "C",
	"S\u030c": "S", "Z\u030c": "Z", "c\u030c": "c", "s\u030c": "s", "z\u030c": "z", "Е\u0308": "Yo",
	"е\u0308": "yo", "И\u0306": "Y", "и\u0306": "y",
}
