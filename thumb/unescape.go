package thumb

import (
	"fmt"
	"strconv"
	"strings"
)

// unescapeTwice applies JavaScript string-literal unescaping twice, for
// data escaped once when embedded in a script and once more when that
// script was serialized into the saved page.
func unescapeTwice(s string) (string, error) {
	once, err := unescapeJS(s)
	if err != nil {
		return "", err
	}
	return unescapeJS(once)
}

// unescapeJS decodes JavaScript string-literal escapes: \uXXXX, \xXX and
// the single-character escapes. Unknown escapes are kept verbatim;
// malformed \u and \x sequences are an error.
func unescapeJS(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'u':
			if i+5 > len(s) {
				return "", fmt.Errorf("truncated \\u escape at offset %d", i)
			}
			v, err := strconv.ParseUint(s[i+1:i+5], 16, 32)
			if err != nil {
				return "", fmt.Errorf("malformed \\u escape at offset %d", i)
			}
			b.WriteRune(rune(v))
			i += 4
		case 'x':
			if i+3 > len(s) {
				return "", fmt.Errorf("truncated \\x escape at offset %d", i)
			}
			v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return "", fmt.Errorf("malformed \\x escape at offset %d", i)
			}
			b.WriteByte(byte(v))
			i += 2
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\\', '\'', '"', '/':
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}
