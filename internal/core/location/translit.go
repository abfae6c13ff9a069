package location

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Russian to Latin, the reversed "ru" table of the transliterate package
var ruToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "j", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch", 'ш': "sh", 'щ': "sch", 'ъ': "'",
	'ы': "y", 'ь': "'", 'э': "e", 'ю': "ju", 'я': "ja",
}

// TransliterateRune returns the Latin spelling of a Cyrillic rune.
// Upper-case input gives a capitalized result; other runes pass through.
func TransliterateRune(r rune) string {
	latin, ok := ruToLatin[unicode.ToLower(r)]
	if !ok {
		return string(r)
	}
	if unicode.IsUpper(r) {
		first, size := utf8.DecodeRuneInString(latin)
		return strings.ToUpper(string(first)) + latin[size:]
	}
	return latin
}

// transliterateFirst transliterates the first rune of s, or returns "" for empty s
func transliterateFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return TransliterateRune(r)
}
