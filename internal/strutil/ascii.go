package strutil

import (
	"github.com/indigo-web/utils/uf"
)

// LowerASCII folds the case of ASCII letters only. No locale-dependent rules are
// applied, so non-ASCII bytes are left untouched. The original string is returned
// if nothing has to be changed.
func LowerASCII(str string) string {
	for i := 0; i < len(str); i++ {
		if isUpper(str[i]) {
			return uf.B2S(lowerFrom(str, i))
		}
	}

	return str
}

func lowerFrom(str string, offset int) []byte {
	buff := make([]byte, len(str))
	copy(buff, str)

	for i := offset; i < len(buff); i++ {
		if isUpper(buff[i]) {
			buff[i] |= 0x20
		}
	}

	return buff
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}
