package blueprint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tessera-ui/tessera"
)

// ErrBadExpression indicates a length expression could not be parsed.
var ErrBadExpression = errors.New("bad length expression")

// ParseValue parses a textual length expression into a Value. An
// expression is one or more signed terms, each a number with an
// optional unit suffix:
//
//	"20"                  pixels
//	"50%"                 percent of the parent axis
//	"1.5rem"              multiples of the font size
//	"5vw + 2vh"           viewport percentages
//	"20 + 50% - 1.5rem"   any combination
func ParseValue(input string) (tessera.Value, error) {
	var out tessera.Value
	s := strings.TrimSpace(input)
	if s == "" {
		return out, fmt.Errorf("empty expression: %w", ErrBadExpression)
	}

	i := 0
	for first := true; i < len(s); first = false {
		for i < len(s) && s[i] == ' ' {
			i++
		}
		sign := float32(1)
		switch {
		case i < len(s) && s[i] == '+':
			i++
		case i < len(s) && s[i] == '-':
			sign = -1
			i++
		case !first:
			return out, fmt.Errorf("%q: expected + or - at offset %d: %w", input, i, ErrBadExpression)
		}
		for i < len(s) && s[i] == ' ' {
			i++
		}

		start := i
		for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
			i++
		}
		if start == i {
			return out, fmt.Errorf("%q: expected a number at offset %d: %w", input, start, ErrBadExpression)
		}
		n, err := strconv.ParseFloat(s[start:i], 32)
		if err != nil {
			return out, fmt.Errorf("%q: %v: %w", input, err, ErrBadExpression)
		}
		scaled := sign * float32(n)

		unitStart := i
		for i < len(s) && (s[i] == '%' || s[i] >= 'a' && s[i] <= 'z') {
			i++
		}
		switch unit := s[unitStart:i]; unit {
		case "", "px":
			out = out.Add(tessera.Abs(scaled))
		case "%":
			out = out.Add(tessera.Rel(scaled))
		case "rem", "em":
			out = out.Add(tessera.Rem(scaled))
		case "vw":
			out = out.Add(tessera.Vw(scaled))
		case "vh":
			out = out.Add(tessera.Vh(scaled))
		default:
			return out, fmt.Errorf("%q: unknown unit %q: %w", input, unit, ErrBadExpression)
		}
	}
	return out, nil
}

// parseXY parses a two-element expression pair. An empty pair yields
// the zero XY.
func parseXY(pair []string, field string) (tessera.XY, error) {
	var out tessera.XY
	if len(pair) == 0 {
		return out, nil
	}
	if len(pair) != 2 {
		return out, fmt.Errorf("%s: want [x, y], got %d elements: %w", field, len(pair), ErrBadDocument)
	}
	x, err := ParseValue(pair[0])
	if err != nil {
		return out, fmt.Errorf("%s: %w", field, err)
	}
	y, err := ParseValue(pair[1])
	if err != nil {
		return out, fmt.Errorf("%s: %w", field, err)
	}
	return tessera.XY{X: x, Y: y}, nil
}
