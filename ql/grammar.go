package ql

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

/*
This file contains a participle grammar for queue expressions. An expression
names a source of values and optionally asks for duplicates to be removed and
for the queue to drain largest-first:

	ints(3, 1, 2) order desc
	chars("EDUCATION SHOULD ESCHEW OBFUCATION") unique
	random(10, 20, 47);
*/

////////////////////////////////////////////////////////////////////////////////

var (
	Options = []participle.Option{ // nolint:gochecknoglobals
		participle.Lexer(
			lexer.MustSimple([]lexer.SimpleRule{
				{Name: "QuotedString", Pattern: `"(?:\\.|[^"])*"`},
				{Name: "Word", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
				{Name: "Integer", Pattern: `[-+]?\d+`},
				{Name: "Punct", Pattern: `[(),;]`},
				{Name: "whitespace", Pattern: `\s+`},
			}),
		),
		participle.Unquote("QuotedString"),
	}

	parser = participle.MustBuild[Expression](Options...) // nolint:gochecknoglobals
)

// Expression is a complete queue expression.
type Expression struct {
	Source     Source `@@`
	Unique     bool   `@"unique"?`
	Descending bool   `( "order" ( @"desc" | "asc" ) )?`
	Terminator string `";"?`
}

// Source is the origin of the values fed to the queue. Exactly one field is
// set.
type Source struct {
	Ints    *Ints    `  @@`
	Strings *Strings `| @@`
	Chars   *Chars   `| @@`
	Random  *Random  `| @@`
}

// Ints is a literal list of integers.
type Ints struct {
	Values []int64 `"ints" "(" ( @Integer ( "," @Integer )* )? ")"`
}

// Strings is a literal list of quoted strings.
type Strings struct {
	Values []string `"strings" "(" ( @QuotedString ( "," @QuotedString )* )? ")"`
}

// Chars splits a quoted string into its characters.
type Chars struct {
	Text string `"chars" "(" @QuotedString ")"`
}

// Random draws Count integers from [0, Bound). Seed is optional.
type Random struct {
	Count int    `"random" "(" @Integer`
	Bound int    `"," @Integer`
	Seed  *int64 `( "," @Integer )? ")"`
}

// Parse parses a queue expression.
func Parse(s string) (*Expression, error) {
	expr, err := parser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression: %w", err)
	}
	return expr, nil
}

// Name returns a short name for the source.
func (s Source) Name() string {
	switch {
	case s.Ints != nil:
		return "ints"
	case s.Strings != nil:
		return "strings"
	case s.Chars != nil:
		return "chars"
	case s.Random != nil:
		return "random"
	default:
		return ""
	}
}
