package randstr

// Names of the predefined character sets accepted by Generate.
const (
	SetHex                = "hex"
	SetOctal              = "octal"
	SetDigits             = "digits"
	SetLower              = "lower"
	SetUpper              = "upper"
	SetLetters            = "letters"
	SetLowerUnambiguous   = "lowerUnambiguous"
	SetUpperUnambiguous   = "upperUnambiguous"
	SetLettersUnambiguous = "lettersUnambiguous"
	SetPunctuation        = "punctuation"
	SetPunctuationSafe    = "punctuationSafe"
)

const (
	lower = "abcdefghijklmnopqrstuvwxyz"
	upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// l and o are easily mistaken for 1 and 0, I and O likewise
	lowerUnambiguous = "abcdefghijkmnpqrstuvwxyz"
	upperUnambiguous = "ABCDEFGHJKLMNPQRSTUVWXYZ"
)

var charSets = map[string]string{
	SetHex:                "0123456789abcdef",
	SetOctal:              "01234567",
	SetDigits:             "0123456789",
	SetLower:              lower,
	SetUpper:              upper,
	SetLetters:            lower + upper,
	SetLowerUnambiguous:   lowerUnambiguous,
	SetUpperUnambiguous:   upperUnambiguous,
	SetLettersUnambiguous: lowerUnambiguous + upperUnambiguous,
	SetPunctuation:        "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~",
	// characters left alone by URL component encoding, minus the HTML-significant quote
	SetPunctuationSafe: "!()*-._~",
}

// CharSet returns the characters of a predefined set.
func CharSet(name string) (string, bool) {
	s, ok := charSets[name]
	return s, ok
}
