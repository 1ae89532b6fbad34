package face

import (
	"strings"

	"github.com/matzehuels/whisker/pkg/errors"
)

// Expression names a face state the render loop can ask for.
// The zero value is [Neutral].
type Expression uint8

const (
	Neutral Expression = iota
	Happy
	Angry
)

var expressionNames = [...]string{
	Neutral: "neutral",
	Happy:   "happy",
	Angry:   "angry",
}

// Expressions returns every known expression in declaration order.
func Expressions() []Expression {
	return []Expression{Neutral, Happy, Angry}
}

func (e Expression) String() string {
	if int(e) < len(expressionNames) {
		return expressionNames[e]
	}
	return "unknown"
}

// Valid reports whether e is one of the declared expressions.
func (e Expression) Valid() bool {
	return int(e) < len(expressionNames)
}

// ParseExpression resolves a case-insensitive expression name.
// "normal" is accepted as an alias for neutral.
func ParseExpression(s string) (Expression, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "normal" {
		return Neutral, nil
	}
	for i, n := range expressionNames {
		if n == name {
			return Expression(i), nil
		}
	}
	return Neutral, errors.New(errors.ErrCodeInvalidExpression,
		"unknown expression %q (want one of %s)", s, strings.Join(expressionNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (e Expression) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidExpression, "invalid expression %d", e)
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so expressions can be
// decoded straight from config files.
func (e *Expression) UnmarshalText(text []byte) error {
	v, err := ParseExpression(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ConfigFor returns the configuration drawn for e. The mapping is static.
//
// Happy and Angry resolve to the same configuration. There is no dedicated
// happy glyph yet, so both use the angry mouth with raised brows.
func ConfigFor(e Expression) Config {
	switch e {
	case Happy, Angry:
		return Config{}.WithMouth(MouthAngry).WithBrows(BrowsUp)
	default:
		return Config{}
	}
}
