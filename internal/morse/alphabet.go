// Package morse encodes text as International Morse Code and keys it
// through a sounder with standard timing ratios.
package morse

import "strings"

// Symbol is one Morse primitive: a dit or a dah.
type Symbol byte

const (
	Dit Symbol = '.'
	Dah Symbol = '-'
)

// Element is one encoded input character: either a symbol sequence or a
// word boundary (Break set, Symbols empty).
type Element struct {
	Rune    rune
	Symbols []Symbol
	Break   bool
}

// alphabet maps uppercase runes to their dit/dah patterns. Space is absent;
// it is handled as a word boundary in Encode.
var alphabet = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..",
	'E': ".", 'F': "..-.", 'G': "--.", 'H': "....",
	'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.",
	'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--",
	'4': "....-", '5': ".....", '6': "-....", '7': "--...",
	'8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '\'': ".----.",
	'!': "-.-.--", '/': "-..-.", '(': "-.--.", ')': "-.--.-",
	'&': ".-...", ':': "---...", ';': "-.-.-.", '=': "-...-",
	'+': ".-.-.", '-': "-....-", '_': "..--.-", '"': ".-..-.",
	'$': "...-..-", '@': ".--.-.",

	// Accented Latin letters keyed as their base letters. Traditional
	// Morse has no codes for these; the ligatures keep their own.
	'Á': ".-", 'É': ".", 'Í': "..", 'Ó': "---", 'Ú': "..-",
	'Æ': ".-.-", 'Œ': "---.",
}

// folds collapses the remaining accented Latin vowels onto base letters.
var folds = []struct {
	base rune
	set  string
}{
	{'A', "ÀÂÄÃÅĀĂĄ"},
	{'E', "ÈÊËĒĔĖĘĚ"},
	{'I', "ÌÎÏĪĬĮĨ"},
	{'O', "ÒÔÖÕŌŎŐ"},
	{'U', "ÙÛÜŪŬŮŰŲ"},
}

// Encode converts text to a sequence of Morse elements. Lookup is
// case-insensitive; a space becomes a word boundary; runes with no code
// are dropped.
func Encode(text string) []Element {
	result := make([]Element, 0, len(text))
	for _, r := range strings.ToUpper(text) {
		if r == ' ' {
			result = append(result, Element{Rune: r, Break: true})
			continue
		}
		pattern, ok := lookup(r)
		if !ok {
			continue
		}
		result = append(result, Element{Rune: r, Symbols: symbols(pattern)})
	}
	return result
}

func lookup(r rune) (string, bool) {
	if pattern, ok := alphabet[r]; ok {
		return pattern, true
	}
	for _, fold := range folds {
		if strings.ContainsRune(fold.set, r) {
			return alphabet[fold.base], true
		}
	}
	return "", false
}

func symbols(pattern string) []Symbol {
	out := make([]Symbol, len(pattern))
	for i := 0; i < len(pattern); i++ {
		out[i] = Symbol(pattern[i])
	}
	return out
}
