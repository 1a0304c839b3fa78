package codec

import "unicode"

// UnknownRune is substituted for characters missing from the alphabet.
const UnknownRune = '?'

// UnknownCode is the pattern sent for characters missing from the alphabet.
const UnknownCode = "..--.."

// alphabet maps upper-case characters to their dot/dash pattern.
var alphabet = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",

	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",

	'.': ".-.-.-", ',': "--..--", '?': UnknownCode, '\'': ".----.",
	'!': "-.-.--", '/': "-..-.", '(': "-.--.", ')': "-.--.-",
	'&': ".-...", ':': "---...", ';': "-.-.-.", '=': "-...-",
	'+': ".-.-.", '-': "-....-", '_': "..--.-", '"': ".-..-.",
	'$': "...-..-", '@': ".--.-.",
}

// Lookup returns the dot/dash pattern for r. Lookup is case-insensitive.
func Lookup(r rune) (string, bool) {
	code, ok := alphabet[unicode.ToUpper(r)]
	return code, ok
}

// Characters returns every character present in the alphabet.
func Characters() []rune {
	out := make([]rune, 0, len(alphabet))
	for r := range alphabet {
		out = append(out, r)
	}
	return out
}
