// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package circuit implements the benchmark-driver side of the engine: a
// small textual netlist grammar and a builder that maps a topologically
// sorted gate list onto kernel node ids, following the circuit driver
// contract of spec §6.
package circuit

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/fatih/color"
)

// netlistLexer tokenizes one gate per line:
//
//	<id> <KIND> <operand-ids...>
//
// with INPUT lines naming only an id. Lines starting with # are comments.
var netlistLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `#[^\n]*`, nil},
		{"Int", `[0-9]+`, nil},
		{"Ident", `[A-Z_]+`, nil},
		{"EOL", `[\r\n]+`, nil},
		{"Whitespace", `[ \t]+`, nil},
	},
})

// Gate is one line of a netlist: a gate id, its kind, and the ids of its
// operands (empty for INPUT). The trailing run of EOLs (more than one when
// comment-only lines follow) is captured but discarded; it exists only to
// keep one gate's operand list from swallowing the next line's gate id.
type Gate struct {
	ID       int    `@Int`
	Kind     string `@Ident`
	Operands []int  `@Int*`
	End      string `@EOL*`
}

// Netlist is a topologically sorted list of gates. Line breaks before the
// first gate (left by leading comment lines) are skipped.
type Netlist struct {
	Gates []*Gate `EOL* @@*`
}

var parser = participle.MustBuild[Netlist](
	participle.Lexer(netlistLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// ParseNetlist parses source (the contents of a netlist file named name,
// used only for error messages) into a Netlist.
func ParseNetlist(name, source string) (*Netlist, error) {
	net, err := parser.ParseString(name, source)
	if err != nil {
		reportParseError(source, err)
		return nil, err
	}
	return net, nil
}

// reportParseError prints a caret-style diagnostic for a netlist syntax
// error, in the style of the corpus's own parser front ends.
func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("unexpected error: %s", err)
		return
	}
	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("syntax error at unknown location: %s", err)
		return
	}
	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"
	color.Red("syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("-> %s\n", pe.Message())
}
