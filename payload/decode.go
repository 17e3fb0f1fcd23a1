// SPDX-License-Identifier: EPL-2.0

package payload

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// isSpace reports ASCII whitespace as defined for forgiving base64:
// space, tab, line feed, form feed and carriage return.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isAlphabet(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '+', c == '/':
		return true
	}
	return false
}

// Decode decodes standard-alphabet base64 text into bytes.
//
// Errors wrap ErrMalformedInput and name the offset in s where decoding
// failed.
func Decode(s string) ([]byte, error) {
	clean, err := strip(s)
	if err != nil {
		return nil, err
	}

	out, err := base64.RawStdEncoding.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return out, nil
}

// strip removes whitespace and valid trailing padding, and rejects any
// character outside the alphabet.
func strip(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	var padding []int
	for i := range len(s) {
		c := s[i]
		switch {
		case isSpace(c):
			continue
		case isAlphabet(c), c == '=':
			if c == '=' {
				padding = append(padding, i)
			}
			b.WriteByte(c)
		default:
			return "", fmt.Errorf("%w: illegal character %q at offset %d", ErrMalformedInput, c, i)
		}
	}

	clean := b.String()

	if len(clean)%4 == 0 {
		switch {
		case strings.HasSuffix(clean, "=="):
			clean = clean[:len(clean)-2]
		case strings.HasSuffix(clean, "="):
			clean = clean[:len(clean)-1]
		}
	}

	if strings.Contains(clean, "=") {
		// the first '=' left in clean is the first one in s
		return "", fmt.Errorf("%w: unexpected padding at offset %d", ErrMalformedInput, padding[0])
	}

	if len(clean)%4 == 1 {
		return "", fmt.Errorf("%w: invalid length %d", ErrMalformedInput, len(clean))
	}

	return clean, nil
}
