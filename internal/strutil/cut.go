package strutil

import "strings"

// Cut behaves like strings.Cut, but for a single byte separator. If there's no
// separator, the whole string is returned as a prefix.
func Cut(str string, sep byte) (prefix, postfix string, found bool) {
	if i := strings.IndexByte(str, sep); i != -1 {
		return str[:i], str[i+1:], true
	}

	return str, "", false
}

// CutFrom is Cut, except the separator is kept as the first character of the postfix.
func CutFrom(str string, sep byte) (prefix, postfix string, found bool) {
	if i := strings.IndexByte(str, sep); i != -1 {
		return str[:i], str[i:], true
	}

	return str, "", false
}
