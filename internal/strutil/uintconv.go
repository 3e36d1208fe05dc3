package strutil

import "math"

// ParsePort parses leading decimal digits of the string, ignoring everything
// starting from the first non-digit character, just as atoi does. Leading whitespaces
// and a single plus sign are skipped as well. Empty input, negative numbers, input
// not starting with a digit or a value overflowing uint16 result in 0.
func ParsePort(raw string) (port uint16) {
	raw = lstripSpace(raw)
	if len(raw) > 0 && raw[0] == '+' {
		raw = raw[1:]
	}

	var num uint32

	for i := 0; i < len(raw); i++ {
		char := raw[i] - '0'
		if char > 9 {
			break
		}

		num = num*10 + uint32(char)
		if num > math.MaxUint16 {
			return 0
		}
	}

	return uint16(num)
}

func lstripSpace(str string) string {
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
		default:
			return str[i:]
		}
	}

	return ""
}
