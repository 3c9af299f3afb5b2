package colorspace

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseError reports a color literal that does not match any accepted form.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// Parse reads a textual color. Accepted forms, case-insensitive:
//   - hex with an optional '#': "1A1B26", "#1a1b26", "#fff"
//   - functional: "rgb(26, 27, 38)"
//   - SVG 1.1 / CSS named colors: "cornflowerblue"
func Parse(s string) (GammaRGB, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	if text == "" {
		return GammaRGB{}, &ParseError{Input: s, Reason: "empty color"}
	}

	if strings.HasPrefix(text, "rgb(") {
		return parseFunctional(s, text)
	}

	digits := strings.TrimPrefix(text, "#")
	if isHex(digits) && (len(digits) == 3 || len(digits) == 6) {
		return parseHex(digits), nil
	}
	if strings.HasPrefix(text, "#") {
		return GammaRGB{}, &ParseError{Input: s, Reason: "hex colors must have 3 or 6 hex digits"}
	}

	if named, ok := colornames.Map[text]; ok {
		return GammaRGB{R: named.R, G: named.G, B: named.B}, nil
	}

	return GammaRGB{}, &ParseError{Input: s, Reason: "not a hex, rgb() or named color"}
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(s string) GammaRGB {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseFunctional(input, text string) (GammaRGB, error) {
	if !strings.HasSuffix(text, ")") {
		return GammaRGB{}, &ParseError{Input: input, Reason: "missing closing parenthesis"}
	}
	inner := text[len("rgb(") : len(text)-1]
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return GammaRGB{}, &ParseError{Input: input, Reason: fmt.Sprintf("rgb() takes 3 channels, got %d", len(parts))}
	}

	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return GammaRGB{}, &ParseError{Input: input, Reason: fmt.Sprintf("channel %d must be an integer in [0,255]", i+1)}
		}
		channels[i] = uint8(v)
	}
	return GammaRGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func parseHex(digits string) GammaRGB {
	if len(digits) == 3 {
		return GammaRGB{
			R: hexNibble(digits[0]) * 17,
			G: hexNibble(digits[1]) * 17,
			B: hexNibble(digits[2]) * 17,
		}
	}
	return GammaRGB{
		R: hexNibble(digits[0])<<4 | hexNibble(digits[1]),
		G: hexNibble(digits[2])<<4 | hexNibble(digits[3]),
		B: hexNibble(digits[4])<<4 | hexNibble(digits[5]),
	}
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9') && !('a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

// hexNibble expects a lowercase hex digit already validated by isHex.
func hexNibble(c byte) uint8 {
	if c <= '9' {
		return c - '0'
	}
	return c - 'a' + 10
}
