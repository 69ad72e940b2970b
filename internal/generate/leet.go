package generate

import "strings"

// LeetTable maps letters to their leetspeak digits. Both cases of a
// letter map to the same digit; everything else passes through
var LeetTable = map[rune]rune{
	'a': '4', 'A': '4',
	'e': '3', 'E': '3',
	'i': '1', 'I': '1',
	'o': '0', 'O': '0',
	's': '5', 'S': '5',
}

// Leet rewrites a word with the leetspeak substitutions. The result is
// a fixed point: applying Leet to its own output changes nothing
func Leet(word string) string {
	return strings.Map(func(r rune) rune {
		if sub, ok := LeetTable[r]; ok {
			return sub
		}
		return r
	}, word)
}
